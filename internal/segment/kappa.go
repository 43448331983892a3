package segment

import "fmt"

// Kappa computes Cohen's Kappa for two binary indicator vectors of equal
// length: observed agreement corrected for the agreement expected by chance
// under each annotator's marginal distribution. 1 is perfect agreement, 0
// is agreement no better than chance, and negative values are worse than
// chance.
//
// When both vectors are constant with the same value the chance agreement
// is 1 and the statistic is undefined; that case is rejected explicitly
// rather than returning NaN.
func Kappa(a, b []int) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("indicator vectors have unequal length: %d != %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("indicator vectors are empty")
	}

	// 2x2 cross-tabulation; any non-zero value counts as a boundary.
	var confusion [2][2]int
	for i := range a {
		x, y := 0, 0
		if a[i] != 0 {
			x = 1
		}
		if b[i] != 0 {
			y = 1
		}
		confusion[x][y]++
	}

	total := float64(len(a))
	observed := float64(confusion[0][0]+confusion[1][1]) / total

	aPositive := float64(confusion[1][0]+confusion[1][1]) / total
	bPositive := float64(confusion[0][1]+confusion[1][1]) / total
	chance := aPositive*bPositive + (1-aPositive)*(1-bPositive)

	if chance == 1 {
		return 0, fmt.Errorf("degenerate marginal distribution: both annotations are the constant %d", a[0])
	}
	return (observed - chance) / (1 - chance), nil
}
