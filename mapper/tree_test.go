package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customKey string

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		node  any
		key   string
		value any
		found bool
	}{
		{"string map", map[string]any{"name": "ismael"}, "name", "ismael", true},
		{"symbol map", map[Symbol]any{"name": "ismael"}, "name", "ismael", true},
		{"any map with string key", map[any]any{"name": "ismael"}, "name", "ismael", true},
		{"any map with symbol key", map[any]any{Symbol("name"): "ismael"}, "name", "ismael", true},
		{"string key wins", map[any]any{"name": "str", Symbol("name"): "sym"}, "name", "str", true},
		{"nil string key falls back to symbol", map[any]any{"name": nil, Symbol("name"): "sym"}, "name", "sym", true},
		{"named string key type", map[customKey]int{"age": 43}, "age", 43, true},
		{"false is present", map[string]any{"exists": false}, "exists", false, true},
		{"zero is present", map[string]any{"n": 0}, "n", 0, true},
		{"nil is absent", map[string]any{"exists": nil}, "exists", nil, false},
		{"missing key", map[string]any{}, "exists", nil, false},
		{"typed nil is absent", map[string]any{"m": map[string]any(nil)}, "m", nil, false},
		{"not a map", "scalar", "name", nil, false},
		{"list", []any{1, 2}, "name", nil, false},
		{"nil node", nil, "name", nil, false},
		{"int keyed map", map[int]any{1: "x"}, "1", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := Lookup(tt.node, tt.key)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.value, v)
		})
	}
}

func TestIndex(t *testing.T) {
	v, ok := Index([]any{"a", "b"}, 1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	v, ok = Index([]string{"a", "b"}, 0)
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = Index([2]int{7, 8}, 1)
	assert.True(t, ok)
	assert.Equal(t, 8, v)

	_, ok = Index([]any{"a"}, 3)
	assert.False(t, ok)

	_, ok = Index([]any{nil}, 0)
	assert.False(t, ok)

	_, ok = Index([]any{"a"}, -1)
	assert.False(t, ok)

	_, ok = Index(map[string]any{"0": "x"}, 0)
	assert.False(t, ok)

	_, ok = Index("abc", 0)
	assert.False(t, ok)
}

func TestAsList(t *testing.T) {
	items, ok := AsList([]string{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, items)

	_, ok = AsList([]byte("abc"))
	assert.False(t, ok)

	_, ok = AsList(map[string]any{})
	assert.False(t, ok)

	_, ok = AsList(nil)
	assert.False(t, ok)
}

func TestExtract(t *testing.T) {
	doc := map[string]any{
		"arrays": map[string]any{
			"names":   []any{"ismael", "celis"},
			"company": "New Bamboo",
		},
	}

	v, ok := extract(doc, MustParsePath("/arrays/names[1]").walk)
	assert.True(t, ok)
	assert.Equal(t, "celis", v)

	_, ok = extract(doc, MustParsePath("/arrays/company/name").walk)
	assert.False(t, ok, "descending into a scalar is a missing value")

	_, ok = extract(doc, MustParsePath("/arrays/company[0]").walk)
	assert.False(t, ok, "indexing a scalar is a missing value")

	_, ok = extract(doc, MustParsePath("/arrays/names[5]").walk)
	assert.False(t, ok)
}

func leafValue(v any) func() (any, error) {
	return func() (any, error) { return v, nil }
}

func TestInsert_CreatesContainers(t *testing.T) {
	out := map[string]any{}

	_, res, err := insert(out, MustParsePath("/arrays/names[1]").walk, leafValue("celis"))
	require.NoError(t, err)
	assert.Equal(t, written, res)

	_, res, err = insert(out, MustParsePath("/arrays/names[0]").walk, leafValue("ismael"))
	require.NoError(t, err)
	assert.Equal(t, written, res)

	_, res, err = insert(out, MustParsePath("/arrays/company").walk, leafValue("New Bamboo"))
	require.NoError(t, err)
	assert.Equal(t, written, res)

	assert.Equal(t, map[string]any{
		"arrays": map[string]any{
			"names":   []any{"ismael", "celis"},
			"company": "New Bamboo",
		},
	}, out)
}

func TestInsert_ListOfMaps(t *testing.T) {
	out := map[string]any{}

	_, _, err := insert(out, MustParsePath("/people[1]/name").walk, leafValue("joe"))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"people": []any{nil, map[string]any{"name": "joe"}},
	}, out)
}

func TestInsert_PresentValueWins(t *testing.T) {
	out := map[string]any{"flag": false}

	_, res, err := insert(out, MustParsePath("/flag").walk, leafValue(true))
	require.NoError(t, err)
	assert.Equal(t, occupied, res)
	assert.Equal(t, false, out["flag"])
}

func TestInsert_NilIsOverwritten(t *testing.T) {
	out := map[string]any{"flag": nil}

	_, res, err := insert(out, MustParsePath("/flag").walk, leafValue(true))
	require.NoError(t, err)
	assert.Equal(t, written, res)
	assert.Equal(t, true, out["flag"])
}

func TestInsert_ScalarInTheWay(t *testing.T) {
	out := map[string]any{"a": "scalar"}

	_, res, err := insert(out, MustParsePath("/a/b").walk, leafValue(1))
	require.NoError(t, err)
	assert.Equal(t, mismatch, res)
	assert.Equal(t, map[string]any{"a": "scalar"}, out)
}

func TestInsert_LeafNotEvaluatedWhenOccupied(t *testing.T) {
	out := map[string]any{"a": 1}
	called := false

	_, _, err := insert(out, MustParsePath("/a").walk, func() (any, error) {
		called = true
		return 2, nil
	})
	require.NoError(t, err)
	assert.False(t, called)
}
