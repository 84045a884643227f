package extract

import (
	"sort"

	"github.com/YuminosukeSato/laptopfeat/core/frame"
	"github.com/YuminosukeSato/laptopfeat/core/model"
	"github.com/YuminosukeSato/laptopfeat/pkg/errors"
	"github.com/YuminosukeSato/laptopfeat/pkg/log"
)

// Source column names of the laptop dataset.
const (
	ColumnMemory = "Memory"
	ColumnCPU    = "Cpu"
	ColumnScreen = "ScreenResolution"
	ColumnGPU    = "Gpu"
)

// Records holds the raw columns of a dataset, keyed by column name.
// Loading them from CSV or a dataframe is left to the caller.
type Records struct {
	Text    map[string][]string
	Numeric map[string][]float64
}

type binding struct {
	source    string
	extractor model.ColumnExtractor
}

// LaptopExtractor runs one ColumnExtractor per source column and joins the
// outputs, followed by any numeric passthrough columns, into one Table.
type LaptopExtractor struct {
	bindings []binding
	numeric  []string
}

// LaptopOption configures a LaptopExtractor.
type LaptopOption func(*LaptopExtractor)

// WithExtractor binds ext to the source column. An existing binding for the
// same source is replaced in place; a new one is appended.
func WithExtractor(source string, ext model.ColumnExtractor) LaptopOption {
	return func(l *LaptopExtractor) {
		for i := range l.bindings {
			if l.bindings[i].source == source {
				l.bindings[i].extractor = ext
				return
			}
		}
		l.bindings = append(l.bindings, binding{source: source, extractor: ext})
	}
}

// WithoutExtractor removes the binding for source.
func WithoutExtractor(source string) LaptopOption {
	return func(l *LaptopExtractor) {
		kept := l.bindings[:0]
		for _, b := range l.bindings {
			if b.source != source {
				kept = append(kept, b)
			}
		}
		l.bindings = kept
	}
}

// WithNumeric appends already numeric columns (e.g. "Inches", "Price_euros")
// to the output unchanged.
func WithNumeric(names ...string) LaptopOption {
	return func(l *LaptopExtractor) {
		l.numeric = append(l.numeric, names...)
	}
}

// NewLaptopExtractor binds the default extractors to Memory, Cpu,
// ScreenResolution and Gpu, then applies opts. The Option values are passed
// to each default extractor.
func NewLaptopExtractor(extractorOpts []Option, opts ...LaptopOption) *LaptopExtractor {
	l := &LaptopExtractor{
		bindings: []binding{
			{ColumnMemory, NewMemoryExtractor(nil, extractorOpts...)},
			{ColumnCPU, NewCPUExtractor(extractorOpts...)},
			{ColumnScreen, NewScreenExtractor(extractorOpts...)},
			{ColumnGPU, NewGPUExtractor(nil, extractorOpts...)},
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Sources returns the bound source columns in output order.
func (l *LaptopExtractor) Sources() []string {
	out := make([]string, len(l.bindings))
	for i, b := range l.bindings {
		out[i] = b.source
	}
	return out
}

// OutputNames lists every output column in order.
func (l *LaptopExtractor) OutputNames() []string {
	var names []string
	for _, b := range l.bindings {
		names = append(names, b.extractor.OutputNames()...)
	}
	return append(names, l.numeric...)
}

// Extract builds the combined numeric table. Every used column must exist
// in rec and all of them must have the same length.
func (l *LaptopExtractor) Extract(rec Records) (*frame.Table, error) {
	rows, err := l.rowCount(rec)
	if err != nil {
		return nil, err
	}
	logger := log.GetLoggerWithName("extract.laptop")

	parts := make([]*frame.Table, 0, len(l.bindings)+1)
	for _, b := range l.bindings {
		t, err := b.extractor.Extract(rec.Text[b.source])
		if err != nil {
			return nil, errors.Wrapf(err, "extract %s", b.source)
		}
		parts = append(parts, t)
	}
	if len(l.numeric) > 0 {
		cols := make([][]float64, len(l.numeric))
		for i, name := range l.numeric {
			cols[i] = rec.Numeric[name]
		}
		t, err := frame.New(l.numeric, cols)
		if err != nil {
			return nil, err
		}
		parts = append(parts, t)
	}

	out, err := frame.NewEmpty(rows).Concat(parts...)
	if err != nil {
		return nil, err
	}
	logger.Info("laptop features extracted",
		log.OperationKey, log.OperationExtract,
		log.SamplesKey, out.Rows(),
		log.FeaturesKey, out.Width(),
	)
	return out, nil
}

func (l *LaptopExtractor) rowCount(rec Records) (int, error) {
	lengths := make(map[string]int)
	for _, b := range l.bindings {
		col, ok := rec.Text[b.source]
		if !ok {
			return 0, errors.NewValidationError("records", "missing text column", b.source)
		}
		lengths[b.source] = len(col)
	}
	for _, name := range l.numeric {
		col, ok := rec.Numeric[name]
		if !ok {
			return 0, errors.NewValidationError("records", "missing numeric column", name)
		}
		lengths[name] = len(col)
	}

	// sorted so the reported mismatch is deterministic
	names := make([]string, 0, len(lengths))
	for name := range lengths {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return 0, nil
	}
	rows := lengths[names[0]]
	for _, name := range names[1:] {
		if lengths[name] != rows {
			return 0, errors.NewDimensionError("LaptopExtractor.Extract "+name, rows, lengths[name], 0)
		}
	}
	return rows, nil
}
