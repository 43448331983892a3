// Package agreement evaluates inter-annotator agreement across a corpus of
// cadence annotations. For each item it computes the pairwise mean of
// Cohen's Kappa, Pk, and WindowDiff over all annotator pairs, and it
// reduces the per-item scores into corpus-wide means. Results come back as
// structured records rather than console output so callers can print,
// persist, or chart them.
package agreement

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/stat"

	"github.com/onpoeet/cadence-detection/internal/annotations"
	"github.com/onpoeet/cadence-detection/internal/segment"
)

// Options controls one evaluation run.
type Options struct {
	// WindowSize is the WindowDiff window width. Pk always derives its
	// window from the reference segment length.
	WindowSize int

	// Boundary is the symbol marking a segment break in encoded vectors.
	Boundary int

	// Weighted selects the weighted WindowDiff variant, which accumulates
	// raw boundary-count differences instead of capping each window at 1.
	Weighted bool
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{WindowSize: 3, Boundary: segment.DefaultBoundary}
}

// ItemScores holds the three pairwise-mean scores for one item.
type ItemScores struct {
	ItemID     string  `json:"item_id"`
	Annotators int     `json:"annotators"`
	Kappa      float64 `json:"kappa"`
	Pk         float64 `json:"pk"`
	WindowDiff float64 `json:"window_diff"`
}

// ItemFailure records an item whose evaluation was rejected.
type ItemFailure struct {
	ItemID string `json:"item_id"`
	Reason string `json:"reason"`
}

// Summary holds per-item scores and the corpus-wide reduction for one run.
type Summary struct {
	Items    []ItemScores  `json:"items"`
	Failures []ItemFailure `json:"failures,omitempty"`

	MeanKappa      float64 `json:"mean_kappa"`
	MeanPk         float64 `json:"mean_pk"`
	MeanWindowDiff float64 `json:"mean_window_diff"`

	StdDevKappa      float64 `json:"stddev_kappa"`
	StdDevPk         float64 `json:"stddev_pk"`
	StdDevWindowDiff float64 `json:"stddev_window_diff"`
}

// Evaluate scores every item in the corpus. A failure on one item does not
// abort the run: the item is recorded under Failures with a diagnostic and
// the remaining items are still evaluated. Corpus means cover only the
// items that succeeded.
func Evaluate(corpus annotations.Corpus, opts Options) *Summary {
	summary := &Summary{}

	for _, itemID := range corpus.ItemIDs() {
		scores, err := EvaluateItem(itemID, corpus[itemID], opts)
		if err != nil {
			log.Printf("skipping item %s: %v", itemID, err)
			summary.Failures = append(summary.Failures, ItemFailure{ItemID: itemID, Reason: err.Error()})
			continue
		}
		summary.Items = append(summary.Items, scores)
	}

	if len(summary.Items) > 0 {
		kappas := make([]float64, len(summary.Items))
		pks := make([]float64, len(summary.Items))
		wds := make([]float64, len(summary.Items))
		for i, item := range summary.Items {
			kappas[i] = item.Kappa
			pks[i] = item.Pk
			wds[i] = item.WindowDiff
		}
		summary.MeanKappa = stat.Mean(kappas, nil)
		summary.MeanPk = stat.Mean(pks, nil)
		summary.MeanWindowDiff = stat.Mean(wds, nil)
		summary.StdDevKappa = stat.StdDev(kappas, nil)
		summary.StdDevPk = stat.StdDev(pks, nil)
		summary.StdDevWindowDiff = stat.StdDev(wds, nil)
	}
	return summary
}

// EvaluateItem computes the three pairwise-mean scores for a single item.
func EvaluateItem(itemID string, set annotations.AnnotationSet, opts Options) (ItemScores, error) {
	if len(set) < 2 {
		return ItemScores{}, fmt.Errorf("at least two annotators required, got %d", len(set))
	}
	sequences := set.Sequences()

	kappa, err := segment.PairwiseKappa(sequences)
	if err != nil {
		return ItemScores{}, fmt.Errorf("kappa: %w", err)
	}
	pk, err := segment.PairwisePk(sequences, opts.Boundary)
	if err != nil {
		return ItemScores{}, fmt.Errorf("pk: %w", err)
	}
	wd, err := segment.PairwiseWindowDiff(sequences, opts.WindowSize, opts.Boundary, opts.Weighted)
	if err != nil {
		return ItemScores{}, fmt.Errorf("windowdiff: %w", err)
	}

	return ItemScores{
		ItemID:     itemID,
		Annotators: len(set),
		Kappa:      kappa,
		Pk:         pk,
		WindowDiff: wd,
	}, nil
}
