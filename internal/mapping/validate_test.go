package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"range-remapper/internal/diagnostic"
)

func TestValidate_ValidMapping(t *testing.T) {
	f, err := LoadFile("testdata/almanac.txt")
	require.NoError(t, err)

	res := Validate(f)
	assert.True(t, res.IsValid())
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.Infos)
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	assert.Equal(t, []string{"file_is_nil"}, res.Codes())
}

func TestValidate_OutOfCategoryOrder(t *testing.T) {
	f, err := LoadFile("testdata/almanac_shuffled.yaml")
	require.NoError(t, err)

	res := Validate(f)
	assert.True(t, res.IsValid())
	assert.Equal(t, []string{"broken_chain", "unordered_stages"}, res.Codes())
	assert.Equal(t, "seed-to-soil", res.Warnings[0].Stage)
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name  string
		input string
		codes []string
		valid bool
	}{
		{
			name:  "empty pipeline",
			input: "seeds: 1 2\n",
			codes: []string{"empty_pipeline"},
			valid: true,
		},
		{
			name:  "zero length entry",
			input: "a-to-b map:\n1 2 0\n",
			codes: []string{"zero_length"},
			valid: true,
		},
		{
			name:  "overlap",
			input: "a-to-b map:\n0 10 10\n100 15 10\n",
			codes: []string{"overlap"},
		},
		{
			name:  "destination overflow",
			input: "a-to-b map:\n18446744073709551615 0 2\n",
			codes: []string{"destination_overflow"},
		},
		{
			name:  "odd seeds",
			input: "seeds: 1 2 3\n\na-to-b map:\n1 2 3\n",
			codes: []string{"odd_seed_count"},
			valid: true,
		},
		{
			name:  "seed range overflow",
			input: "seeds: 18446744073709551615 2\n\na-to-b map:\n1 2 3\n",
			codes: []string{"seed_range_overflow"},
			valid: true,
		},
		{
			name:  "category loop",
			input: "a-to-b map:\n1 2 3\n\nb-to-a map:\n1 2 3\n",
			codes: []string{},
			valid: true,
		},
		{
			name:  "out of order loop",
			input: "b-to-a map:\n1 2 3\n\nc-to-b map:\n1 2 3\n\na-to-c map:\n1 2 3\n",
			codes: []string{"broken_chain", "broken_chain"},
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.input), FormatText)
			require.NoError(t, err)

			res := Validate(f)
			assert.Equal(t, tt.codes, res.Codes())
			assert.Equal(t, tt.valid, res.IsValid())
		})
	}
}

func TestValidate_OverlapLocation(t *testing.T) {
	f, err := Parse([]byte("a-to-b map:\n100 15 10\n0 10 10\n"), FormatText)
	require.NoError(t, err)

	res := Validate(f)
	require.Len(t, res.Errors, 1)

	d := res.Errors[0]
	assert.Equal(t, "a-to-b", d.Stage)
	assert.Equal(t, "entry 2", d.Location)
	assert.Contains(t, d.Message, "(entry 1)")
}

func TestValidate_BrokenChainSuggestion(t *testing.T) {
	// "soul" is not produced by anything, so the stages cannot be chained
	// by category and stay in declared order.
	input := `seed-to-soil map:
1 2 3

soul-to-fertilizer map:
4 5 6
`

	f, err := Parse([]byte(input), FormatText)
	require.NoError(t, err)

	res := Validate(f)
	assert.True(t, res.IsValid())
	require.Len(t, res.Warnings, 1)

	w := res.Warnings[0]
	assert.Equal(t, diagnostic.DiagnosticWarning, w.Severity)
	assert.Equal(t, "broken_chain", w.Code)
	assert.Equal(t, "soul-to-fertilizer", w.Stage)
	assert.Equal(t, []string{"soil"}, w.Suggestions)
}
