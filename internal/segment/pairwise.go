package segment

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// PairScore scores two boundary indicator vectors of equal length. All
// metrics used with the pairwise aggregation are symmetric, so the order of
// the two vectors does not matter.
type PairScore func(a, b []int) (float64, error)

// PairwiseMean evaluates a symmetric scoring function over every unordered
// pair of annotations for one item and returns the arithmetic mean of the
// pair scores.
//
// Each annotation is a sequence of non-negative marker positions. All
// annotations are first encoded to binary indicator vectors of a shared
// length, the global maximum marker plus one, so annotators whose markers
// are sparse get a zero tail. At least two annotations are required, and a
// failure on any pair aborts the whole item.
func PairwiseMean(annotations [][]int, score PairScore) (float64, error) {
	if len(annotations) < 2 {
		return 0, fmt.Errorf("at least two annotators required, got %d", len(annotations))
	}

	maxMarker := -1
	for i, markers := range annotations {
		for _, m := range markers {
			if m < 0 {
				return 0, fmt.Errorf("annotator %d has negative marker %d", i, m)
			}
			if m > maxMarker {
				maxMarker = m
			}
		}
	}
	if maxMarker < 0 {
		return 0, fmt.Errorf("no markers in any annotation")
	}

	length := maxMarker + 1
	encoded := make([][]int, len(annotations))
	for i, markers := range annotations {
		encoded[i] = Encode(markers, length)
	}

	scores := make([]float64, 0, len(encoded)*(len(encoded)-1)/2)
	for i := 0; i < len(encoded); i++ {
		for j := i + 1; j < len(encoded); j++ {
			s, err := score(encoded[i], encoded[j])
			if err != nil {
				return 0, fmt.Errorf("annotator pair (%d, %d): %w", i, j, err)
			}
			scores = append(scores, s)
		}
	}
	return stat.Mean(scores, nil), nil
}

// PairwiseKappa returns the mean Cohen's Kappa over all annotator pairs.
func PairwiseKappa(annotations [][]int) (float64, error) {
	return PairwiseMean(annotations, Kappa)
}

// PairwisePk returns the mean Pk over all annotator pairs. The window size
// is derived per pair from the first vector of the pair.
func PairwisePk(annotations [][]int, boundary int) (float64, error) {
	return PairwiseMean(annotations, func(a, b []int) (float64, error) {
		return Pk(a, b, 0, boundary)
	})
}

// PairwiseWindowDiff returns the mean WindowDiff over all annotator pairs
// using a fixed window size k.
func PairwiseWindowDiff(annotations [][]int, k, boundary int, weighted bool) (float64, error) {
	return PairwiseMean(annotations, func(a, b []int) (float64, error) {
		return WindowDiff(a, b, k, boundary, weighted)
	})
}
