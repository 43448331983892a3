package agreement

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WriteScorePlot saves a PNG line plot of the per-item scores to path.
// Items appear on the X axis in evaluation order; one line per metric.
func WriteScorePlot(path string, summary *Summary) error {
	if len(summary.Items) == 0 {
		return fmt.Errorf("no scored items to plot")
	}

	p := plot.New()
	p.Title.Text = "Inter-annotator agreement per item"
	p.X.Label.Text = "Item"
	p.Y.Label.Text = "Score"

	kappaPts := make(plotter.XYs, len(summary.Items))
	pkPts := make(plotter.XYs, len(summary.Items))
	wdPts := make(plotter.XYs, len(summary.Items))
	for i, item := range summary.Items {
		x := float64(i)
		kappaPts[i] = plotter.XY{X: x, Y: item.Kappa}
		pkPts[i] = plotter.XY{X: x, Y: item.Pk}
		wdPts[i] = plotter.XY{X: x, Y: item.WindowDiff}
	}

	series := []struct {
		name  string
		pts   plotter.XYs
		color color.RGBA
	}{
		{"Kappa", kappaPts, color.RGBA{R: 31, G: 119, B: 180, A: 255}},
		{"Pk", pkPts, color.RGBA{R: 255, G: 127, B: 14, A: 255}},
		{"WindowDiff", wdPts, color.RGBA{R: 44, G: 160, B: 44, A: 255}},
	}
	for _, s := range series {
		line, err := plotter.NewLine(s.pts)
		if err != nil {
			return fmt.Errorf("failed to build %s line: %w", s.name, err)
		}
		line.Color = s.color
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(s.name, line)
	}

	if err := p.Save(12*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
