package mapping

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	yaml := `
version: "1"
seeds: [79, 14]
stages:
  - from: seed
    to: soil
    entries:
      - [50, 98, 2]
      - {destination: 52, source: 50, length: 48}
  - name: custom
    entries: []
`

	f, err := Parse([]byte(yaml), FormatYAML)
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, []uint64{79, 14}, f.Seeds)
	require.Len(t, f.Stages, 2)

	st := f.Stages[0]
	assert.Equal(t, "seed", st.From)
	assert.Equal(t, "soil", st.To)
	assert.Equal(t, "seed-to-soil", st.Label())
	assert.True(t, st.IsChained())
	assert.Equal(t, []EntryDef{
		{Destination: 50, Source: 98, Length: 2},
		{Destination: 52, Source: 50, Length: 48},
	}, st.Entries)

	assert.Equal(t, "custom", f.Stages[1].Label())
	assert.False(t, f.Stages[1].IsChained())
	assert.Empty(t, f.Stages[1].Entries)
}

func TestParseMinimal(t *testing.T) {
	yaml := `
stages:
  - entries:
      - [1, 2, 3]
`

	f, err := Parse([]byte(yaml), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version) // Default version
	require.Len(t, f.Stages, 1)
	assert.Equal(t, "", f.Stages[0].Label())
	assert.Equal(t, "stage 1", f.stageLabel(0))
}

func TestParseYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "short triple",
			yaml: "stages:\n  - entries:\n      - [1, 2]\n",
		},
		{
			name: "negative value",
			yaml: "stages:\n  - entries:\n      - [1, -2, 3]\n",
		},
		{
			name: "scalar entry",
			yaml: "stages:\n  - entries:\n      - 7\n",
		},
		{
			name: "not yaml",
			yaml: "stages: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), FormatYAML)
			assert.Error(t, err)
		})
	}
}

func TestParseTOML(t *testing.T) {
	toml := `
seeds = [79, 14]

[[stages]]
from = "seed"
to = "soil"
entries = [[50, 98, 2], [52, 50, 48]]
`

	f, err := Parse([]byte(toml), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, []uint64{79, 14}, f.Seeds)
	require.Len(t, f.Stages, 1)
	assert.Equal(t, "seed-to-soil", f.Stages[0].Label())
	assert.Equal(t, EntryDef{Destination: 52, Source: 50, Length: 48}, f.Stages[0].Entries[1])
}

func TestParseTOML_Errors(t *testing.T) {
	_, err := Parse([]byte("[[stages]]\nentries = [[1, 2]]\n"), FormatTOML)
	assert.Error(t, err)

	_, err = Parse([]byte("[[stages]]\nentries = [[1, 2, 3]]\nbogus = 1\n"), FormatTOML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stages.bogus")
}

func TestLoadFile_AllFormatsAgree(t *testing.T) {
	text, err := LoadFile("testdata/almanac.txt")
	require.NoError(t, err)

	toml, err := LoadFile("testdata/almanac.toml")
	require.NoError(t, err)

	assert.Equal(t, text, toml)

	yaml, err := LoadFile("testdata/almanac.yaml")
	require.NoError(t, err)

	assert.Equal(t, text, yaml)

	shuffled, err := LoadFile("testdata/almanac_shuffled.yaml")
	require.NoError(t, err)

	ordered, reordered, err := OrderStages(shuffled.Stages)
	require.NoError(t, err)
	assert.True(t, reordered)
	assert.Equal(t, text.Stages, ordered)
	assert.Equal(t, text.Seeds, shuffled.Seeds)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read definition file")
}

func TestWriteFile_RoundTrip(t *testing.T) {
	src, err := LoadFile("testdata/almanac.txt")
	require.NoError(t, err)

	dir := t.TempDir()

	for _, name := range []string{"out.yaml", "out.toml", "out.txt"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, WriteFile(src, path))

			back, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, src, back)
		})
	}
}

func TestMarshalYAML_FlowEntries(t *testing.T) {
	f := &File{
		Version: "1",
		Seeds:   []uint64{1, 2},
		Stages: []StageDef{{
			From:    "a",
			To:      "b",
			Entries: []EntryDef{{Destination: 50, Source: 98, Length: 2}},
		}},
	}

	data, err := Marshal(f, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- [50, 98, 2]")
	assert.Contains(t, string(data), "seeds: [1, 2]")
}

func TestMarshalTOML_Range(t *testing.T) {
	f := &File{Stages: []StageDef{{
		Entries: []EntryDef{{Destination: 1 << 63, Source: 0, Length: 1}},
	}}}

	_, err := Marshal(f, FormatTOML)
	require.Error(t, err)
	assert.ErrorIs(t, err, errTOMLRange)

	_, err = Marshal(f, FormatYAML)
	assert.NoError(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("a/b.yml"))
	assert.Equal(t, FormatYAML, FormatFromPath("b.YAML"))
	assert.Equal(t, FormatTOML, FormatFromPath("b.toml"))
	assert.Equal(t, FormatText, FormatFromPath("input"))

	for _, f := range Formats {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, got)

	_, err = ParseFormat("json")
	assert.Error(t, err)
	assert.Equal(t, "Format(9)", Format(9).String())
}

func TestSeedIntervals(t *testing.T) {
	f := &File{Seeds: []uint64{79, 14, 55, 13}}

	ivs, err := f.SeedIntervals()
	require.NoError(t, err)
	require.Len(t, ivs, 2)
	assert.Equal(t, uint64(79), ivs[0].Start)
	assert.Equal(t, uint64(13), ivs[1].Length)

	_, err = (&File{Seeds: []uint64{1, 2, 3}}).SeedIntervals()
	assert.ErrorIs(t, err, ErrOddSeeds)

	_, err = (&File{Seeds: []uint64{1 << 63, 1 << 63}}).SeedIntervals()
	assert.Error(t, err)
}

func TestCategories(t *testing.T) {
	f, err := LoadFile("testdata/almanac_shuffled.yaml")
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"humidity", "location", "seed", "soil", "fertilizer", "water", "light", "temperature"},
		f.Categories())
}
