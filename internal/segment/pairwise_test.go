package segment

import (
	"math"
	"testing"
)

func TestPairwiseMeanRequiresTwoAnnotators(t *testing.T) {
	score := func(a, b []int) (float64, error) { return 0, nil }

	if _, err := PairwiseMean([][]int{}, score); err == nil {
		t.Error("expected error for zero annotators, got nil")
	}
	if _, err := PairwiseMean([][]int{{1, 2}}, score); err == nil {
		t.Error("expected error for a single annotator, got nil")
	}
}

func TestPairwiseMeanRejectsBadMarkers(t *testing.T) {
	score := func(a, b []int) (float64, error) { return 0, nil }

	if _, err := PairwiseMean([][]int{{1, -3}, {2}}, score); err == nil {
		t.Error("expected error for negative marker, got nil")
	}
	if _, err := PairwiseMean([][]int{{}, {}}, score); err == nil {
		t.Error("expected error for marker-free annotations, got nil")
	}
}

func TestPairwiseMeanAveragesAllPairs(t *testing.T) {
	// Three annotators make three pairs; a scorer that counts shared
	// boundary positions gives distinct per-pair values to average.
	annotations := [][]int{{0, 1}, {1, 2}, {2, 3}}
	overlap := func(a, b []int) (float64, error) {
		shared := 0
		for i := range a {
			if a[i] != 0 && b[i] != 0 {
				shared++
			}
		}
		return float64(shared), nil
	}

	// Pairs share 1, 0, and 1 positions respectively.
	got, err := PairwiseMean(annotations, overlap)
	if err != nil {
		t.Fatalf("PairwiseMean returned error: %v", err)
	}
	want := 2.0 / 3.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("PairwiseMean = %f, want %f", got, want)
	}
}

func TestPairwiseMetricsOnIdenticalAnnotations(t *testing.T) {
	// Three annotators marking the same boundaries: Pk and WindowDiff are
	// 0 and Kappa is exactly 1 for every pair.
	annotations := [][]int{{3, 10}, {3, 10}, {3, 10}}

	kappa, err := PairwiseKappa(annotations)
	if err != nil {
		t.Fatalf("PairwiseKappa returned error: %v", err)
	}
	if kappa != 1.0 {
		t.Errorf("PairwiseKappa = %f, want 1.0", kappa)
	}

	pk, err := PairwisePk(annotations, DefaultBoundary)
	if err != nil {
		t.Fatalf("PairwisePk returned error: %v", err)
	}
	if pk != 0.0 {
		t.Errorf("PairwisePk = %f, want 0.0", pk)
	}

	wd, err := PairwiseWindowDiff(annotations, 3, DefaultBoundary, false)
	if err != nil {
		t.Fatalf("PairwiseWindowDiff returned error: %v", err)
	}
	if wd != 0.0 {
		t.Errorf("PairwiseWindowDiff = %f, want 0.0", wd)
	}
}

func TestPairwiseWindowDiffKnownValue(t *testing.T) {
	// Markers {3, 10} and {4, 9} encode to length 11. With k=3 there are
	// 9 window positions and the counts differ at three of them.
	got, err := PairwiseWindowDiff([][]int{{3, 10}, {4, 9}}, 3, DefaultBoundary, false)
	if err != nil {
		t.Fatalf("PairwiseWindowDiff returned error: %v", err)
	}
	want := 3.0 / 9.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("PairwiseWindowDiff = %f, want %f", got, want)
	}
}

func TestPairwiseMeanPropagatesPairErrors(t *testing.T) {
	// The shared encoded length is 2, smaller than the window, so every
	// pair fails and the aggregate must report the error.
	if _, err := PairwiseWindowDiff([][]int{{0}, {1}}, 5, DefaultBoundary, false); err == nil {
		t.Error("expected error when window exceeds encoded length, got nil")
	}
}
