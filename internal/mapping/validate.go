package mapping

import (
	"fmt"

	"range-remapper/internal/diagnostic"
	"range-remapper/internal/interval"
	"range-remapper/internal/match"
	"range-remapper/internal/rangemap"
)

// maxSuggestDistance bounds the edits allowed in a "did you mean" hint.
const maxSuggestDistance = 2

// Validate checks a definition and reports every problem found. It does not
// stop at the first error.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "definition is nil", "", "")
		return res
	}

	if len(f.Stages) == 0 {
		res.AddWarning("empty_pipeline", "no stages defined; every value maps to itself", "", "")
	}

	for i := range f.Stages {
		res.Merge(validateEntries(f.stageLabel(i), f.Stages[i].Entries))
	}

	validateChain(res, f)
	validateSeeds(res, f.Seeds)

	return res
}

// validateEntries reports the stage contract violations of one stage.
func validateEntries(stage string, entries []EntryDef) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	rangeEntries := make([]rangemap.Entry, len(entries))
	for i, e := range entries {
		rangeEntries[i] = e.RangeEntry()
	}

	for _, p := range rangemap.Check(rangeEntries) {
		loc := fmt.Sprintf("entry %d", p.Index+1)

		switch {
		case p.Code == rangemap.CodeOverlap:
			res.AddError(p.Code, fmt.Sprintf("%s (entry %d)", p.Message, p.Other+1), stage, loc)
		case p.Fatal:
			res.AddError(p.Code, p.Message, stage, loc)
		default:
			res.AddWarning(p.Code, p.Message, stage, loc)
		}
	}

	return res
}

// validateChain checks that each stage reads what the previous one produces.
// Stages run in declared order; when a category ordering exists that would
// chain them, an info diagnostic points at it.
func validateChain(res *diagnostic.Diagnostics, f *File) {
	categories := f.Categories()
	broken := false

	for i := 1; i < len(f.Stages); i++ {
		prev, cur := &f.Stages[i-1], &f.Stages[i]
		if prev.To == "" || cur.From == "" || prev.To == cur.From {
			continue
		}

		broken = true

		res.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticWarning,
			Code:        "broken_chain",
			Message:     fmt.Sprintf("stage reads %q but the previous stage produces %q", cur.From, prev.To),
			Stage:       f.stageLabel(i),
			Suggestions: match.Closest(cur.From, categories, maxSuggestDistance),
		})
	}

	if !broken {
		return
	}

	if _, reordered, err := OrderStages(f.Stages); err == nil && reordered {
		res.AddInfo("unordered_stages",
			"stages are not in category order; they run as declared unless reordering is enabled", "", "")
	}
}

// validateSeeds checks that the seeds can be read as ranges.
func validateSeeds(res *diagnostic.Diagnostics, seeds []uint64) {
	if len(seeds)%2 != 0 {
		res.AddWarning("odd_seed_count",
			fmt.Sprintf("%d seeds cannot be read as (start, length) ranges", len(seeds)), "", "seeds")

		return
	}

	for i := 0; i+1 < len(seeds); i += 2 {
		if _, ok := interval.AddChecked(seeds[i], seeds[i+1]); !ok {
			res.AddWarning("seed_range_overflow",
				fmt.Sprintf("seed range %d %d overflows uint64", seeds[i], seeds[i+1]), "", fmt.Sprintf("seed range %d", i/2+1))
		}
	}
}
