package segment

import (
	"fmt"
	"math"
)

// Pk computes the Pk metric for a pair of segmentations. A segmentation is
// any sequence over a two-symbol vocabulary where the boundary symbol marks
// the edge of a segment. A probe window of width k slides across both
// sequences; each position where the two windows disagree on whether they
// contain a boundary counts as an error. The result is the error rate over
// all window positions, in [0, 1], with 0 meaning the probe gives the same
// verdict everywhere.
//
// If k is 0 it is derived from the reference as half the mean reference
// segment length: round(len(ref) / (2 × boundary count in ref)). A
// reference without any boundary symbol cannot supply a window size and is
// rejected.
func Pk(ref, hyp []int, k, boundary int) (float64, error) {
	if len(ref) != len(hyp) {
		return 0, fmt.Errorf("segmentations have unequal length: %d != %d", len(ref), len(hyp))
	}
	if k == 0 {
		n := countBoundaries(ref, boundary)
		if n == 0 {
			return 0, fmt.Errorf("reference segmentation has no boundary symbols, cannot derive window size")
		}
		k = int(math.Round(float64(len(ref)) / (2 * float64(n))))
		if k < 1 {
			k = 1
		}
	}
	if k < 1 || k > len(ref) {
		return 0, fmt.Errorf("window size %d out of range for segmentation length %d", k, len(ref))
	}

	errs := 0
	for i := 0; i+k <= len(ref); i++ {
		r := countBoundaries(ref[i:i+k], boundary) > 0
		h := countBoundaries(hyp[i:i+k], boundary) > 0
		if r != h {
			errs++
		}
	}
	return float64(errs) / float64(len(ref)-k+1), nil
}
