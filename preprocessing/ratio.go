// Package preprocessing derives new numeric features from an existing table.
package preprocessing

import (
	"github.com/YuminosukeSato/laptopfeat/core/frame"
	"github.com/YuminosukeSato/laptopfeat/pkg/errors"
	"github.com/YuminosukeSato/laptopfeat/pkg/log"
	"gonum.org/v1/gonum/floats"
)

// RatioName returns the name of the column a / b.
func RatioName(a, b string) string {
	return a + "_per_" + b
}

// OmittedPair records a column pair for which no ratio was produced.
type OmittedPair struct {
	Numerator   string
	Denominator string
	Row         int // first row whose denominator is zero
}

// RatioResult is the outcome of RatioGenerator.Generate.
type RatioResult struct {
	// Table holds the ratio columns only, in pair order.
	Table *frame.Table
	// Omitted lists pairs dropped because of a zero denominator.
	Omitted []OmittedPair
	// Reversed lists columns produced as j/i by the reciprocal fallback.
	Reversed []string
}

// RatioGenerator builds "{A}_per_{B}" columns for every unordered pair of
// feature columns, A before B in table order.
type RatioGenerator struct {
	reciprocalFallback bool
}

// RatioOption configures a RatioGenerator.
type RatioOption func(*RatioGenerator)

// WithReciprocalFallback makes the generator try B/A when A/B would divide
// by zero. The pair is still omitted if both columns contain a zero.
func WithReciprocalFallback(enabled bool) RatioOption {
	return func(g *RatioGenerator) {
		g.reciprocalFallback = enabled
	}
}

// NewRatioGenerator creates a RatioGenerator. By default a pair whose
// denominator column contains a zero is omitted.
func NewRatioGenerator(opts ...RatioOption) *RatioGenerator {
	g := &RatioGenerator{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate computes the ratio columns of table. The label column, if label
// is not empty, must exist; it is never paired and never returned. The
// output schema depends on the data: see RatioResult.Omitted.
func (g *RatioGenerator) Generate(table *frame.Table, label string) (*RatioResult, error) {
	if label != "" && !table.Has(label) {
		return nil, errors.NewValidationError("label", "label column not in table", label)
	}
	logger := log.GetLoggerWithName("preprocessing.ratio").With(log.LabelKey, label)

	var features []string
	for _, name := range table.Names() {
		if name != label {
			features = append(features, name)
		}
	}
	cols := make([][]float64, len(features))
	zeros := make([]int, len(features))
	for k, name := range features {
		cols[k], _ = table.Column(name)
		zeros[k] = errors.FirstZero(cols[k])
	}

	res := &RatioResult{}
	var names []string
	var out [][]float64
	for i := 0; i < len(features); i++ {
		for j := i + 1; j < len(features); j++ {
			num, den := i, j
			if zeros[j] >= 0 {
				if !g.reciprocalFallback || zeros[i] >= 0 {
					res.Omitted = append(res.Omitted, OmittedPair{
						Numerator:   features[i],
						Denominator: features[j],
						Row:         zeros[j],
					})
					logger.Debug("ratio omitted",
						"numerator", features[i],
						"denominator", features[j],
						log.ReasonKey, "zero denominator",
						"row", zeros[j],
					)
					continue
				}
				num, den = j, i
				res.Reversed = append(res.Reversed, RatioName(features[j], features[i]))
			}

			ratio := make([]float64, table.Rows())
			floats.DivTo(ratio, cols[num], cols[den])
			names = append(names, RatioName(features[num], features[den]))
			out = append(out, ratio)
		}
	}

	if len(names) == 0 {
		res.Table = frame.NewEmpty(table.Rows())
	} else {
		t, err := frame.New(names, out)
		if err != nil {
			return nil, err
		}
		res.Table = t
	}

	logger.Info("ratio features generated",
		log.OperationKey, log.OperationGenerate,
		log.SamplesKey, table.Rows(),
		log.FeaturesKey, res.Table.Width(),
		log.OmittedKey, len(res.Omitted),
	)
	return res, nil
}

// Transform implements model.FeatureGenerator and returns only the ratio table.
func (g *RatioGenerator) Transform(table *frame.Table, label string) (*frame.Table, error) {
	res, err := g.Generate(table, label)
	if err != nil {
		return nil, err
	}
	return res.Table, nil
}
