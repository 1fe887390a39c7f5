package interval

import (
	"slices"
)

// TotalLength returns the sum of the lengths of all intervals in set.
// Overlapping intervals are counted once per occurrence.
func TotalLength(set []Interval) uint64 {
	var total uint64
	for _, iv := range set {
		total += iv.Length
	}

	return total
}

// MinStart returns the smallest start in set, ignoring empty intervals.
// The second result is false when set holds no non-empty interval.
func MinStart(set []Interval) (uint64, bool) {
	var (
		lowest uint64
		found  bool
	)

	for _, iv := range set {
		if iv.IsEmpty() {
			continue
		}

		if !found || iv.Start < lowest {
			lowest = iv.Start
			found = true
		}
	}

	return lowest, found
}

// SortByStart sorts set in place by start, then by length.
func SortByStart(set []Interval) {
	slices.SortFunc(set, compare)
}

// Normalize returns the minimal sorted representation of set: empty
// intervals dropped, overlapping and adjacent intervals merged. The input is
// not modified. The normalized set covers exactly the values set covers.
func Normalize(set []Interval) []Interval {
	sorted := make([]Interval, 0, len(set))
	for _, iv := range set {
		if !iv.IsEmpty() {
			sorted = append(sorted, iv)
		}
	}

	if len(sorted) == 0 {
		return nil
	}

	SortByStart(sorted)

	out := sorted[:1]
	for _, iv := range sorted[1:] {
		last := &out[len(out)-1]
		if iv.Start > last.End() {
			out = append(out, iv)
			continue
		}

		if end := iv.End(); end > last.End() {
			last.Length = end - last.Start
		}
	}

	return out
}

func compare(a, b Interval) int {
	switch {
	case a.Start < b.Start:
		return -1
	case a.Start > b.Start:
		return 1
	case a.Length < b.Length:
		return -1
	case a.Length > b.Length:
		return 1
	default:
		return 0
	}
}
