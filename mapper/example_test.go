package mapper_test

import (
	"fmt"
	"strings"

	"hash-mapper/mapper"
)

func ExampleBuilder() {
	upcase := mapper.FilterFunc(func(v any) (any, error) {
		return strings.ToUpper(v.(string)), nil
	})

	person := mapper.NewBuilder("Person").
		Map("/names/first", "/first_name", mapper.ToFilter(upcase)).
		Map("/names/last", "/last_name").
		MustBuild()

	project := mapper.NewBuilder("Project").
		Map("/name", "/project_name").
		Map("/author_hash", "/author", mapper.Using(person)).
		Map("/status", "/state", mapper.Default("draft")).
		MustBuild()

	out, err := project.Normalize(map[string]any{
		"name":        "hash mapper",
		"author_hash": map[string]any{"names": map[string]any{"first": "ada", "last": "lovelace"}},
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(out)

	back, err := project.Denormalize(out)
	if err != nil {
		panic(err)
	}

	fmt.Println(back)
	// Output:
	// map[author:map[first_name:ADA last_name:lovelace] project_name:hash mapper state:draft]
	// map[author_hash:map[names:map[first:ADA last:lovelace]] name:hash mapper status:draft]
}

func ExampleExtend() {
	base := mapper.NewBuilder("Base").
		Map("/id", "/identifier").
		MustBuild()

	detailed := mapper.Extend("Detailed", base).
		Map("/tags[0]", "/primary_tag").
		AfterNormalize(func(_, output any, opts mapper.Options) (any, error) {
			output.(map[string]any)["tenant"] = opts["tenant"]
			return output, nil
		}).
		MustBuild()

	out, err := detailed.Normalize(
		map[string]any{"id": 7, "tags": []any{"go", "yaml"}},
		mapper.WithOptions(mapper.Options{"tenant": "acme"}),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(out)
	fmt.Println(len(base.Rules()), len(detailed.Rules()))
	// Output:
	// map[identifier:7 primary_tag:go tenant:acme]
	// 1 2
}

func ExampleParsePath() {
	p := mapper.MustParsePath("/a/names[1]/first")

	for _, seg := range p.Segments() {
		fmt.Println(seg.Key, seg.HasIndex, seg.Index)
	}

	_, err := mapper.ParsePath("/a//b")
	fmt.Println(err != nil)
	// Output:
	// a false 0
	// names true 1
	// first false 0
	// true
}
