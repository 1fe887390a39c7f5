package match

import (
	"slices"
	"strings"
)

// Distance computes the Levenshtein distance between two strings, counted
// in runes: the minimum number of single-rune insertions, deletions or
// substitutions turning one into the other.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	// Two rows over the shorter string.
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Closest returns the candidates within maxDistance edits of name, nearest
// first, ties in alphabetical order. Comparison ignores case. Exact matches
// and duplicates are left out.
func Closest(name string, candidates []string, maxDistance int) []string {
	type scored struct {
		name string
		dist int
	}

	var hits []scored

	seen := map[string]struct{}{}
	target := strings.ToLower(name)

	for _, c := range candidates {
		if _, ok := seen[c]; ok || c == name {
			continue
		}

		seen[c] = struct{}{}

		if d := Distance(target, strings.ToLower(c)); d <= maxDistance {
			hits = append(hits, scored{name: c, dist: d})
		}
	}

	slices.SortFunc(hits, func(a, b scored) int {
		if a.dist != b.dist {
			return a.dist - b.dist
		}

		return strings.Compare(a.name, b.name)
	})

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}

	return out
}
