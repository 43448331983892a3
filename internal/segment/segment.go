// Package segment implements inter-annotator agreement metrics for text
// segmentation: Pk, WindowDiff, and pairwise Cohen's Kappa over binary
// boundary sequences, plus the pairwise aggregation that averages a metric
// across every unordered pair of annotators for one item.
package segment

// DefaultBoundary is the symbol that marks a segment break in an encoded
// boundary sequence.
const DefaultBoundary = 1

// Encode turns a sequence of boundary positions into a binary indicator
// vector of the given length: index i is 1 iff i appears in markers, else 0.
// Markers beyond length are ignored; an annotator whose markers are sparse
// relative to length gets a zero tail.
func Encode(markers []int, length int) []int {
	vec := make([]int, length)
	for _, m := range markers {
		if m >= 0 && m < length {
			vec[m] = DefaultBoundary
		}
	}
	return vec
}

// countBoundaries returns the number of positions in seg holding the
// boundary symbol.
func countBoundaries(seg []int, boundary int) int {
	count := 0
	for _, v := range seg {
		if v == boundary {
			count++
		}
	}
	return count
}
