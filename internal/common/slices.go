package common

// UnknownStr is the name printed for out-of-range enum values.
const UnknownStr = "unknown"

// Pairs splits s into consecutive pairs. The second result is false when s
// has an odd length; the trailing element is then left out.
func Pairs[S ~[]E, E any](s S) ([][2]E, bool) {
	pairs := make([][2]E, 0, len(s)/2)
	for i := 0; i+1 < len(s); i += 2 {
		pairs = append(pairs, [2]E{s[i], s[i+1]})
	}

	return pairs, len(s)%2 == 0
}
