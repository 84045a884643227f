package selection

import (
	"io"

	"github.com/YuminosukeSato/laptopfeat/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Chart draws the selected coefficients as a bar chart with dashed lines at
// ±Threshold and writes it to w. format is any format gonum/plot supports,
// e.g. "png", "svg" or "pdf".
func (r *Report) Chart(w io.Writer, format string) error {
	if len(r.Entries) == 0 {
		return errors.NewValueError("Report.Chart", "no selected columns to draw")
	}

	p := plot.New()
	p.Title.Text = "Correlation with " + r.Label
	p.Y.Label.Text = "Pearson r"
	p.Y.Min, p.Y.Max = -1, 1

	bars, err := plotter.NewBarChart(plotter.Values(r.Coefficients()), vg.Points(20))
	if err != nil {
		return errors.Wrap(err, "bar chart")
	}
	p.Add(bars)
	p.NominalX(r.Names()...)

	for _, level := range []float64{r.Threshold, -r.Threshold} {
		level := level
		line := plotter.NewFunction(func(float64) float64 { return level })
		line.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(line)
	}

	width := vg.Length(len(r.Entries)+2) * vg.Centimeter * 1.5
	wt, err := p.WriterTo(width, 10*vg.Centimeter, format)
	if err != nil {
		return errors.Wrapf(err, "render %s", format)
	}
	_, err = wt.WriteTo(w)
	return err
}
