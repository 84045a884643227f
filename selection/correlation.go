// Package selection picks feature columns by their linear correlation with
// a label column.
package selection

import (
	"math"

	"github.com/YuminosukeSato/laptopfeat/core/frame"
	"github.com/YuminosukeSato/laptopfeat/metrics"
	"github.com/YuminosukeSato/laptopfeat/pkg/errors"
	"github.com/YuminosukeSato/laptopfeat/pkg/log"
)

// Correlation is the Pearson coefficient of one column against the label.
type Correlation struct {
	Name        string
	Coefficient float64
}

// Report lists the columns whose |r| exceeds Threshold, in table order.
type Report struct {
	Label     string
	Threshold float64
	Entries   []Correlation
}

// Names returns the selected column names.
func (r *Report) Names() []string {
	names := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		names[i] = e.Name
	}
	return names
}

// Coefficients returns the coefficients aligned with Names.
func (r *Report) Coefficients() []float64 {
	out := make([]float64, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.Coefficient
	}
	return out
}

// Apply returns the selected columns of table followed by the label column.
func (r *Report) Apply(table *frame.Table) (*frame.Table, error) {
	return table.Select(append(r.Names(), r.Label)...)
}

// CorrelationSelector keeps columns with |r| strictly greater than its threshold.
type CorrelationSelector struct {
	threshold float64
}

// NewCorrelationSelector validates threshold, which must be non-negative.
// Thresholds of 1 or more select nothing.
func NewCorrelationSelector(threshold float64) (*CorrelationSelector, error) {
	if threshold < 0 || math.IsNaN(threshold) {
		return nil, errors.NewValidationError("threshold", "must be non-negative", threshold)
	}
	return &CorrelationSelector{threshold: threshold}, nil
}

// Threshold returns the configured threshold.
func (s *CorrelationSelector) Threshold() float64 { return s.threshold }

// Select correlates every non-label column with label. Columns with zero
// variance or without two finite rows have an undefined (NaN) coefficient
// and are never selected.
func (s *CorrelationSelector) Select(table *frame.Table, label string) (*Report, error) {
	all, err := Correlations(table, label)
	if err != nil {
		return nil, err
	}

	report := &Report{Label: label, Threshold: s.threshold}
	for _, c := range all {
		if math.Abs(c.Coefficient) > s.threshold {
			report.Entries = append(report.Entries, c)
		}
	}

	log.GetLoggerWithName("selection").Info("correlated features selected",
		log.OperationKey, log.OperationSelect,
		log.LabelKey, label,
		log.ThresholdKey, s.threshold,
		log.FeaturesKey, len(report.Entries),
		log.SamplesKey, table.Rows(),
	)
	return report, nil
}

// Select is shorthand for NewCorrelationSelector(threshold) followed by Select.
func Select(table *frame.Table, label string, threshold float64) (*Report, error) {
	s, err := NewCorrelationSelector(threshold)
	if err != nil {
		return nil, err
	}
	return s.Select(table, label)
}

// Correlations returns the coefficient of every non-label column against
// label, in table order, without filtering. Rows where either value is NaN
// or ±Inf are skipped for that pair only; a pair left with fewer than two
// rows gets a NaN coefficient.
func Correlations(table *frame.Table, label string) ([]Correlation, error) {
	y, err := table.Column(label)
	if err != nil {
		return nil, errors.Wrap(err, "label")
	}
	if table.Rows() < 2 {
		return nil, errors.NewValueError("Correlations", "at least 2 samples are required")
	}
	logger := log.GetLoggerWithName("selection")

	var out []Correlation
	for i, name := range table.Names() {
		if name == label {
			continue
		}
		xs, ys := finitePairs(table.ColumnAt(i), y)
		r := math.NaN()
		if len(xs) >= 2 {
			if r, err = metrics.Pearson(xs, ys); err != nil {
				return nil, errors.Wrapf(err, "column %q", name)
			}
		}
		if skipped := table.Rows() - len(xs); skipped > 0 {
			logger.Debug("non-finite rows skipped",
				log.ColumnKey, name,
				log.LabelKey, label,
				log.OmittedKey, skipped,
			)
		}
		out = append(out, Correlation{Name: name, Coefficient: r})
	}
	return out, nil
}

// finitePairs keeps the rows where both x and y are finite.
func finitePairs(x, y []float64) ([]float64, []float64) {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if isFinite(x[i]) && isFinite(y[i]) {
			xs = append(xs, x[i])
			ys = append(ys, y[i])
		}
	}
	return xs, ys
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
