package segment

import (
	"math"
	"strings"
	"testing"

	"github.com/onpoeet/cadence-detection/internal/testutil"
)

func TestPk(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		hyp      string
		k        int
		expected float64
	}{
		{"identical segmentations", strings.Repeat("0100", 100), strings.Repeat("0100", 100), 2, 0.0},
		{"all boundaries hypothesis", strings.Repeat("0100", 100), strings.Repeat("1", 400), 2, 199.0 / 399.0},
		{"no boundaries hypothesis", strings.Repeat("0100", 100), strings.Repeat("0", 400), 2, 200.0 / 399.0},
		{"identical short", "000100000010", "000100000010", 3, 0.0},
		{"window equals length", "0100", "0100", 4, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pk(testutil.Seg(tt.ref), testutil.Seg(tt.hyp), tt.k, DefaultBoundary)
			if err != nil {
				t.Fatalf("Pk returned error: %v", err)
			}
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Pk(%q, %q, %d) = %f, want %f", tt.ref, tt.hyp, tt.k, got, tt.expected)
			}
		})
	}
}

func TestPkDerivedWindowSize(t *testing.T) {
	// Mean segment length of "0100"*100 is 4, so the derived window is 2
	// and the score must match the explicit k=2 call.
	ref := testutil.Seg(strings.Repeat("0100", 100))
	hyp := testutil.Seg(strings.Repeat("1", 400))

	derived, err := Pk(ref, hyp, 0, DefaultBoundary)
	if err != nil {
		t.Fatalf("Pk with derived k returned error: %v", err)
	}
	explicit, err := Pk(ref, hyp, 2, DefaultBoundary)
	if err != nil {
		t.Fatalf("Pk with explicit k returned error: %v", err)
	}
	if derived != explicit {
		t.Errorf("derived-k score %f != explicit-k score %f", derived, explicit)
	}
}

func TestPkSymmetry(t *testing.T) {
	a := testutil.Seg("000100000010")
	b := testutil.Seg("000010000100")

	ab, err := Pk(a, b, 3, DefaultBoundary)
	if err != nil {
		t.Fatalf("Pk(a, b) returned error: %v", err)
	}
	ba, err := Pk(b, a, 3, DefaultBoundary)
	if err != nil {
		t.Fatalf("Pk(b, a) returned error: %v", err)
	}
	if ab != ba {
		t.Errorf("Pk not symmetric: %f != %f", ab, ba)
	}
}

func TestPkRange(t *testing.T) {
	pairs := [][2]string{
		{"000100000010", "000010000100"},
		{"010101010101", "000000000001"},
		{"100000000000", "000000000001"},
	}
	for _, pair := range pairs {
		got, err := Pk(testutil.Seg(pair[0]), testutil.Seg(pair[1]), 3, DefaultBoundary)
		if err != nil {
			t.Fatalf("Pk(%q, %q) returned error: %v", pair[0], pair[1], err)
		}
		if got < 0 || got > 1 {
			t.Errorf("Pk(%q, %q) = %f, outside [0, 1]", pair[0], pair[1], got)
		}
	}
}

func TestPkErrors(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		hyp  string
		k    int
	}{
		{"unequal lengths", "0100", "01000", 2},
		{"window wider than sequence", "0100", "0100", 5},
		{"negative window", "0100", "0100", -1},
		{"no boundaries for derived window", "0000", "0100", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Pk(testutil.Seg(tt.ref), testutil.Seg(tt.hyp), tt.k, DefaultBoundary); err == nil {
				t.Errorf("Pk(%q, %q, %d) expected error, got nil", tt.ref, tt.hyp, tt.k)
			}
		})
	}
}
