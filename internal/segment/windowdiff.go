package segment

import "fmt"

// WindowDiff computes the WindowDiff score for a pair of segmentations of
// equal length. A window of width k slides across both sequences; at each
// position the absolute difference between the two windows' boundary counts
// is taken. Unweighted, a position contributes min(1, diff), so the result
// is the fraction of windows that differ, in [0, 1]. Weighted, the raw
// difference accumulates and the result can exceed 1.
//
// Unlike Pk, which only checks boundary presence, WindowDiff counts
// boundaries per window and so penalises differences in boundary density.
func WindowDiff(seg1, seg2 []int, k, boundary int, weighted bool) (float64, error) {
	if len(seg1) != len(seg2) {
		return 0, fmt.Errorf("segmentations have unequal length: %d != %d", len(seg1), len(seg2))
	}
	if k < 1 || k > len(seg1) {
		return 0, fmt.Errorf("window size %d out of range for segmentation length %d", k, len(seg1))
	}

	wd := 0
	for i := 0; i+k <= len(seg1); i++ {
		diff := countBoundaries(seg1[i:i+k], boundary) - countBoundaries(seg2[i:i+k], boundary)
		if diff < 0 {
			diff = -diff
		}
		if !weighted && diff > 1 {
			diff = 1
		}
		wd += diff
	}
	return float64(wd) / float64(len(seg1)-k+1), nil
}
