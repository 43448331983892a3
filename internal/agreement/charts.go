package agreement

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteHTMLReport renders a self-contained HTML bar chart of the per-item
// scores to path. One bar series per metric, items on the X axis.
func WriteHTMLReport(path string, summary *Summary) error {
	if len(summary.Items) == 0 {
		return fmt.Errorf("no scored items to chart")
	}

	itemIDs := make([]string, len(summary.Items))
	kappaData := make([]opts.BarData, len(summary.Items))
	pkData := make([]opts.BarData, len(summary.Items))
	wdData := make([]opts.BarData, len(summary.Items))
	for i, item := range summary.Items {
		itemIDs[i] = item.ItemID
		kappaData[i] = opts.BarData{Value: item.Kappa}
		pkData[i] = opts.BarData{Value: item.Pk}
		wdData[i] = opts.BarData{Value: item.WindowDiff}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Annotator Agreement", Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Inter-annotator agreement per item",
			Subtitle: fmt.Sprintf("global means: K=%.4f Pk=%.4f WD=%.4f over %d items", summary.MeanKappa, summary.MeanPk, summary.MeanWindowDiff, len(summary.Items)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "item"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "score"}),
	)

	bar.SetXAxis(itemIDs).
		AddSeries("Kappa", kappaData).
		AddSeries("Pk", pkData).
		AddSeries("WindowDiff", wdData)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
