package rangemap

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_Valid(t *testing.T) {
	problems := Check([]Entry{
		{Destination: 50, Source: 98, Length: 2},
		{Destination: 52, Source: 50, Length: 48},
	})

	assert.Empty(t, problems)
}

func TestCheck_Problems(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		codes   []string
		fatal   bool
	}{
		{
			name:    "zero length",
			entries: []Entry{{Destination: 1, Source: 2, Length: 0}},
			codes:   []string{CodeZeroLength},
		},
		{
			name:    "source overflow",
			entries: []Entry{{Destination: 0, Source: math.MaxUint64, Length: 2}},
			codes:   []string{CodeSourceOverflow},
			fatal:   true,
		},
		{
			name:    "destination overflow",
			entries: []Entry{{Destination: math.MaxUint64 - 1, Source: 0, Length: 2}},
			codes:   []string{CodeDestinationOverflow},
			fatal:   true,
		},
		{
			name: "overlap",
			entries: []Entry{
				{Destination: 0, Source: 10, Length: 10},
				{Destination: 100, Source: 15, Length: 10},
			},
			codes: []string{CodeOverlap},
			fatal: true,
		},
		{
			name: "overlap hidden behind a short entry",
			entries: []Entry{
				{Destination: 0, Source: 0, Length: 100},
				{Destination: 500, Source: 10, Length: 1},
				{Destination: 700, Source: 50, Length: 1},
			},
			codes: []string{CodeOverlap, CodeOverlap},
			fatal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := Check(tt.entries)
			require.Len(t, problems, len(tt.codes))

			for i, p := range problems {
				assert.Equal(t, tt.codes[i], p.Code)
				assert.Equal(t, tt.fatal, p.Fatal)
				assert.True(t, errors.Is(p, ErrConfiguration))
			}
		})
	}
}

func TestCheck_TouchingIsNotOverlap(t *testing.T) {
	problems := Check([]Entry{
		{Destination: 0, Source: 0, Length: 10},
		{Destination: 0, Source: 10, Length: 10},
	})

	assert.Empty(t, problems)
}

func TestCheck_OverlapPositions(t *testing.T) {
	problems := Check([]Entry{
		{Destination: 100, Source: 15, Length: 10},
		{Destination: 0, Source: 10, Length: 10},
	})

	require.Len(t, problems, 1)
	assert.Equal(t, 1, problems[0].Index)
	assert.Equal(t, 0, problems[0].Other)
	assert.Contains(t, problems[0].Error(), "entry 1")
}

func TestNewChecked(t *testing.T) {
	m, err := NewChecked(
		Entry{Destination: 50, Source: 98, Length: 2},
		Entry{Destination: 7, Source: 3, Length: 0},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, uint64(51), m.MapValue(99))

	_, err = NewChecked(
		Entry{Destination: 0, Source: 10, Length: 10},
		Entry{Destination: 100, Source: 15, Length: 10},
		Entry{Destination: math.MaxUint64, Source: 40, Length: 1},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, CodeOverlap, cfgErr.Code)
}
