package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Severities(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddInfo("unordered_stages", "stages reordered", "", "")
	d.AddWarning("zero_length", "maps nothing", "seed-to-soil", "entry 2")
	assert.True(t, d.IsValid())

	d.AddError("overlap", "sources overlap", "soil-to-fertilizer", "entry 1")
	assert.True(t, d.HasErrors())
	assert.Equal(t, []string{"overlap", "zero_length", "unordered_stages"}, d.Codes())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "[soil-to-fertilizer] entry 1: [overlap] sources overlap", err.Error())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddError("x", "first", "", "")
	b.AddError("y", "second", "", "")
	b.AddWarning("z", "third", "", "")

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
	assert.Equal(t, "[x] first; [y] second", a.Error().Error())
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Severity:    DiagnosticWarning,
		Code:        "broken_chain",
		Message:     `stage starts from "soul" but the previous stage produces "soil"`,
		Stage:       "soul-to-fertilizer",
		Suggestions: []string{"soil"},
	}

	assert.Equal(t,
		`[soul-to-fertilizer]: [broken_chain] stage starts from "soul" but the previous stage produces "soil" (did you mean soil?)`,
		d.String())
	assert.Equal(t, "warning", d.Severity.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
