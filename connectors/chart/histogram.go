package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WriteHistogram renders a histogram of values into a PNG at path.
// The output directory is created if absent; an existing file is overwritten.
func WriteHistogram(values []float64, bins int, path string) error {
	p := plot.New()
	p.Title.Text = "Revenue Leakage Distribution"
	p.X.Label.Text = "Revenue Leakage (USD)"
	p.Y.Label.Text = "Number of Customers"

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return fmt.Errorf("histogram: %w", err)
	}
	p.Add(h)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("histogram %s: %w", path, err)
	}
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("histogram %s: %w", path, err)
	}
	return nil
}
