package rangemap

import (
	"errors"
	"fmt"
	"slices"

	"range-remapper/internal/interval"
)

// ErrConfiguration is matched by every ConfigurationError.
var ErrConfiguration = errors.New("invalid stage configuration")

// Problem codes reported by Check.
const (
	CodeZeroLength          = "zero_length"
	CodeSourceOverflow      = "source_overflow"
	CodeDestinationOverflow = "destination_overflow"
	CodeOverlap             = "overlap"
)

// ConfigurationError describes one entry that breaks the stage contract.
type ConfigurationError struct {
	// Code identifies the kind of problem.
	Code string
	// Index is the position of the offending entry.
	Index int
	// Other is the position of the conflicting entry for overlaps, else -1.
	Other int
	// Fatal problems make the stage unusable; the rest are dropped at build
	// time.
	Fatal bool
	// Message is the human-readable description.
	Message string
}

// Error implements error.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("entry %d: [%s] %s", e.Index, e.Code, e.Message)
}

// Unwrap makes errors.Is(err, ErrConfiguration) hold.
func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// Check reports every contract violation among entries, ordered by entry
// position. It returns nil for a valid stage.
func Check(entries []Entry) []*ConfigurationError {
	var problems []*ConfigurationError

	usable := make([]int, 0, len(entries))

	for i, e := range entries {
		if e.Length == 0 {
			problems = append(problems, &ConfigurationError{
				Code:    CodeZeroLength,
				Index:   i,
				Other:   -1,
				Message: fmt.Sprintf("entry %d %d %d has zero length and maps nothing", e.Destination, e.Source, e.Length),
			})

			continue
		}

		ok := true

		if _, fits := interval.AddChecked(e.Source, e.Length); !fits {
			problems = append(problems, &ConfigurationError{
				Code:    CodeSourceOverflow,
				Index:   i,
				Other:   -1,
				Fatal:   true,
				Message: fmt.Sprintf("source %d + length %d overflows uint64", e.Source, e.Length),
			})
			ok = false
		}

		if _, fits := interval.AddChecked(e.Destination, e.Length); !fits {
			problems = append(problems, &ConfigurationError{
				Code:    CodeDestinationOverflow,
				Index:   i,
				Other:   -1,
				Fatal:   true,
				Message: fmt.Sprintf("destination %d + length %d overflows uint64", e.Destination, e.Length),
			})
			ok = false
		}

		if ok {
			usable = append(usable, i)
		}
	}

	problems = append(problems, overlaps(entries, usable)...)

	slices.SortStableFunc(problems, func(a, b *ConfigurationError) int {
		return a.Index - b.Index
	})

	return problems
}

// overlaps sweeps the usable entries in source order, remembering the entry
// reaching furthest so far.
func overlaps(entries []Entry, usable []int) []*ConfigurationError {
	if len(usable) < 2 {
		return nil
	}

	order := append([]int(nil), usable...)
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case entries[a].Source < entries[b].Source:
			return -1
		case entries[a].Source > entries[b].Source:
			return 1
		default:
			return 0
		}
	})

	var problems []*ConfigurationError

	reach := order[0]

	for _, i := range order[1:] {
		cur, prev := entries[i].SourceInterval(), entries[reach].SourceInterval()
		if cur.Overlaps(prev) {
			first, second := min(i, reach), max(i, reach)
			problems = append(problems, &ConfigurationError{
				Code:  CodeOverlap,
				Index: second,
				Other: first,
				Fatal: true,
				Message: fmt.Sprintf("source %s overlaps source %s of entry %d",
					entries[second].SourceInterval(), entries[first].SourceInterval(), first),
			})
		}

		if cur.End() > prev.End() {
			reach = i
		}
	}

	return problems
}

// NewChecked builds a stage like New after verifying the entries. Fatal
// problems are joined into the returned error; zero-length entries are
// dropped.
func NewChecked(entries ...Entry) (*RangeMap, error) {
	var errs []error

	for _, p := range Check(entries) {
		if p.Fatal {
			errs = append(errs, p)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Length > 0 {
			kept = append(kept, e)
		}
	}

	return New(kept...), nil
}
