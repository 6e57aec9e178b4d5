package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectYAML = `
version: "1"
mappers:
  - name: Person
    rules:
      - from: /names/first
        to: /first_name
        filter: {from: trim, to: [trim, upcase]}
      - from: /names/last
        to: /last_name
  - name: Project
    description: Top level project document
    rules:
      - from: /name
        to: /project_name
      - from: /author_hash
        to: /author
        using: Person
      - from: /status
        to: /state
        default: active
      - from: /archived
        to: /is_archived
        default: false
      - from: /owner
        to: /owner_id
        default: null
  - name: DetailedProject
    extends: Project
    imports: Audit
    hooks:
      after_normalize: compact
      before_denormalize: [compact_input]
    rules:
      - from: /tagid
        to: /tag_id
        filter: to_i
  - name: Audit
    rules:
      - from: /audit/created
        to: /created_at
`

func TestParse(t *testing.T) {
	mf, err := Parse([]byte(projectYAML))
	require.NoError(t, err)
	require.NotNil(t, mf)

	assert.Equal(t, "1", mf.Version)
	require.Len(t, mf.Mappers, 4)
	assert.Equal(t, []string{"Person", "Project", "DetailedProject", "Audit"}, mf.Names())

	person := mf.Mappers[0]
	require.Len(t, person.Rules, 2)
	assert.Equal(t, "/names/first", person.Rules[0].From)
	assert.Equal(t, "/first_name", person.Rules[0].To)
	assert.Equal(t, StringOrArray{"trim"}, person.Rules[0].Filter.From)
	assert.Equal(t, StringOrArray{"trim", "upcase"}, person.Rules[0].Filter.To)
	assert.True(t, person.Rules[1].Filter.IsZero())

	project := mf.Find("Project")
	require.NotNil(t, project)
	assert.Equal(t, "Top level project document", project.Description)
	assert.Equal(t, "Person", project.Rules[1].Using)

	// Defaults: a string, false, and an explicit null meaning none
	assert.Equal(t, Some("active"), project.Rules[2].Default)
	assert.Equal(t, Some(false), project.Rules[3].Default)
	assert.False(t, project.Rules[4].Default.Set)
	assert.False(t, project.Rules[0].Default.Set)

	detailed := mf.Find("DetailedProject")
	require.NotNil(t, detailed)
	assert.Equal(t, "Project", detailed.Extends)
	assert.Equal(t, StringOrArray{"Audit"}, detailed.Imports)
	assert.Equal(t, StringOrArray{"compact"}, detailed.Hooks["after_normalize"])
	assert.Equal(t, StringOrArray{"compact_input"}, detailed.Hooks["before_denormalize"])
	assert.Equal(t, StringOrArray{"to_i"}, detailed.Rules[0].Filter.To)
	assert.Empty(t, detailed.Rules[0].Filter.From)

	assert.Equal(t, []string{"Project", "Audit"}, detailed.Dependencies())
	assert.Nil(t, mf.Find("Missing"))
}

func TestParse_Defaults(t *testing.T) {
	mf, err := Parse([]byte(`
mappers:
  - name: "  Spaced  "
    extends: " Base "
    rules:
      - from: a
        to: b
        using: " Other "
`))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, mf.Version)
	assert.Equal(t, "Spaced", mf.Mappers[0].Name)
	assert.Equal(t, "Base", mf.Mappers[0].Extends)
	assert.Equal(t, "Other", mf.Mappers[0].Rules[0].Using)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "syntax", yaml: "mappers: [\n"},
		{name: "imports mapping", yaml: "mappers:\n  - name: A\n    imports: {x: y}\n"},
		{name: "filter number list", yaml: "mappers:\n  - name: A\n    rules:\n      - from: a\n        to: b\n        filter: [[x]]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	mf, err := Parse([]byte(projectYAML))
	require.NoError(t, err)

	data, err := Marshal(mf)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, mf, again)

	// Shorthand forms are kept
	assert.Contains(t, string(data), "filter: to_i")
	assert.Contains(t, string(data), "imports: Audit")
	assert.NotContains(t, string(data), "null")
}

func TestLoadAndWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mapping.yaml")

	require.NoError(t, os.WriteFile(path, []byte(projectYAML), 0o644))

	mf, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, mf.Mappers, 4)

	out := filepath.Join(dir, "copy.yaml")
	require.NoError(t, WriteFile(mf, out))

	copied, err := LoadFile(out)
	require.NoError(t, err)
	assert.Equal(t, mf, copied)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read mapping file")
}
