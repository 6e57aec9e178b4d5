package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hash-mapper/mapper"
)

func TestInspectCmd_Mappers(t *testing.T) {
	out, _, err := execute(t, "", "inspect", "-m", "testdata/project.yaml")
	require.NoError(t, err)

	for _, want := range []string{"Person", "Project", "TaggedProject"} {
		assert.Contains(t, out, want)
	}
}

func TestInspectCmd_Rules(t *testing.T) {
	out, _, err := execute(t, "", "inspect", "-m", "testdata/project.yaml", "-n", "TaggedProject")
	require.NoError(t, err)

	for _, want := range []string{"/author_hash", "Person", "/tags[0]", "/primary_tag", "active", "hooks: AfterNormalize=1"} {
		assert.Contains(t, out, want)
	}
}

func TestInspectCmd_UnknownMapper(t *testing.T) {
	_, _, err := execute(t, "", "inspect", "-m", "testdata/project.yaml", "-n", "Persn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "Person"`)
}

func TestFilterSides(t *testing.T) {
	upper := mapper.FilterFunc(func(v any) (any, error) { return v, nil })

	m := mapper.NewBuilder("Sides").
		Map("/a", "/b").
		Map("/c", "/d", mapper.ToFilter(upper)).
		Map("/e", "/f", mapper.FromFilter(upper), mapper.ToFilter(upper)).
		MustBuild()

	rules := m.Rules()
	assert.Equal(t, "", filterSides(rules[0]))
	assert.Equal(t, "to", filterSides(rules[1]))
	assert.Equal(t, "from,to", filterSides(rules[2]))
}

func TestDelegateName(t *testing.T) {
	child := mapper.NewBuilder("Child").MustBuild()

	assert.Equal(t, "", delegateName(nil))
	assert.Equal(t, "Child", delegateName(child))
}
