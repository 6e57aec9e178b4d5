package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Empty(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())
	assert.Empty(t, d.All())
}

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	d.AddError("unknown_mapper", `unknown mapper "Persn"`, "Project", "/author", "Person")
	d.AddError("malformed_path", "bad path", "", "")
	d.AddWarning("unreachable_rule", "destination already written", "Project", "/name")

	require.True(t, d.HasErrors())
	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		`[Project] /author: [unknown_mapper] unknown mapper "Persn" (did you mean "Person"?); [malformed_path] bad path`,
		err.Error())
}

func TestDiagnostics_MergeAndAll(t *testing.T) {
	var a, b Diagnostics
	a.AddInfo("note", "first", "", "")
	b.AddWarning("warn", "second", "M", "")
	b.AddError("err", "third", "M", "/x")

	a.Merge(b)

	all := a.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(7).String())
}
