package mapping

import (
	"errors"
	"fmt"

	"range-remapper/internal/common"
	"range-remapper/internal/interval"
	"range-remapper/internal/rangemap"
)

// ErrOddSeeds is returned when seed values cannot be read as
// (start, length) pairs.
var ErrOddSeeds = errors.New("seed ranges need an even number of values")

// File represents the root of a pipeline definition document.
type File struct {
	// Version of the definition schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Seeds are the values to push through the pipeline. Read pairwise they
	// are (start, length) seed ranges.
	Seeds []uint64 `yaml:"seeds,omitempty,flow"`

	// Stages are applied in declared order.
	Stages []StageDef `yaml:"stages"`
}

// StageDef defines one stage.
type StageDef struct {
	// Name labels the stage. Defaults to "<from>-to-<to>".
	Name string `yaml:"name,omitempty"`

	// From is the category the stage reads, e.g. "seed".
	From string `yaml:"from,omitempty"`

	// To is the category the stage produces, e.g. "soil".
	To string `yaml:"to,omitempty"`

	// Entries are the (destination, source, length) triples of the stage.
	Entries []EntryDef `yaml:"entries"`
}

// EntryDef is one (destination, source, length) triple.
type EntryDef struct {
	Destination uint64 `yaml:"destination"`
	Source      uint64 `yaml:"source"`
	Length      uint64 `yaml:"length"`
}

// Label returns the display name of the stage, or "" if it has none.
func (s *StageDef) Label() string {
	if s.Name != "" {
		return s.Name
	}

	if s.From != "" && s.To != "" {
		return s.From + "-to-" + s.To
	}

	return ""
}

// IsChained returns true if the stage names both of its categories.
func (s *StageDef) IsChained() bool {
	return s.From != "" && s.To != ""
}

// RangeEntries converts the stage entries for rangemap.
func (s *StageDef) RangeEntries() []rangemap.Entry {
	out := make([]rangemap.Entry, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.RangeEntry()
	}

	return out
}

// RangeEntry converts the triple for rangemap.
func (e EntryDef) RangeEntry() rangemap.Entry {
	return rangemap.Entry{Destination: e.Destination, Source: e.Source, Length: e.Length}
}

// stageLabel names stage i for messages, falling back to its position.
func (f *File) stageLabel(i int) string {
	if l := f.Stages[i].Label(); l != "" {
		return l
	}

	return fmt.Sprintf("stage %d", i+1)
}

// SeedIntervals reads the seeds as (start, length) pairs.
func (f *File) SeedIntervals() ([]interval.Interval, error) {
	pairs, ok := common.Pairs(f.Seeds)
	if !ok {
		return nil, fmt.Errorf("%w: got %d", ErrOddSeeds, len(f.Seeds))
	}

	out := make([]interval.Interval, 0, len(pairs))

	for i, p := range pairs {
		iv, err := interval.New(p[0], p[1])
		if err != nil {
			return nil, fmt.Errorf("seed range %d: %w", i+1, err)
		}

		out = append(out, iv)
	}

	return out, nil
}

// Categories returns every category named by the stages, in order of first
// appearance.
func (f *File) Categories() []string {
	var out []string

	seen := map[string]struct{}{}
	add := func(c string) {
		if c == "" {
			return
		}

		if _, ok := seen[c]; ok {
			return
		}

		seen[c] = struct{}{}
		out = append(out, c)
	}

	for i := range f.Stages {
		add(f.Stages[i].From)
		add(f.Stages[i].To)
	}

	return out
}
