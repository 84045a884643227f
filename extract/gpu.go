package extract

import (
	"github.com/YuminosukeSato/laptopfeat/core/frame"
	"github.com/YuminosukeSato/laptopfeat/core/parallel"
	"github.com/YuminosukeSato/laptopfeat/parse"
	"github.com/YuminosukeSato/laptopfeat/pkg/log"
)

// GPUExtractor one-hot encodes the GPU vendor: one column per configured
// vendor ("gpu_intel", "gpu_amd", "gpu_nvidia" by default) plus "gpu_other".
type GPUExtractor struct {
	classifier *parse.GpuClassifier
	names      []string
	settings   settings
}

// NewGPUExtractor creates a GPUExtractor. A nil classifier uses the default
// vendor order.
func NewGPUExtractor(classifier *parse.GpuClassifier, opts ...Option) *GPUExtractor {
	if classifier == nil {
		// the default vendor list always validates
		classifier, _ = parse.NewGpuClassifier()
	}
	vendors := classifier.Vendors()
	names := make([]string, 0, len(vendors)+1)
	for _, v := range vendors {
		names = append(names, GPUColumn(v))
	}
	names = append(names, GPUColumn(parse.VendorOther))
	return &GPUExtractor{classifier: classifier, names: names, settings: newSettings(opts)}
}

// GPUColumn returns the output column name for vendor v.
func GPUColumn(v parse.GpuVendor) string {
	return "gpu_" + v.Key()
}

// OutputNames implements model.ColumnExtractor.
func (g *GPUExtractor) OutputNames() []string {
	return append([]string(nil), g.names...)
}

// Extract implements model.ColumnExtractor. Exactly one column is 1 per row.
func (g *GPUExtractor) Extract(values []string) (*frame.Table, error) {
	vendors := g.classifier.Vendors()
	slot := make(map[parse.GpuVendor]int, len(vendors)+1)
	for i, v := range vendors {
		slot[v] = i
	}
	slot[parse.VendorOther] = len(vendors)

	cols := make([][]float64, len(g.names))
	for j := range cols {
		cols[j] = make([]float64, len(values))
	}
	err := parallel.ParallelizeErrWithThreshold(len(values), g.settings.threshold, func(start, end int) error {
		for i := start; i < end; i++ {
			cols[slot[g.classifier.Classify(values[i])]][i] = 1
		}
		return nil
	})
	if err != nil {
		log.GetLoggerWithName("extract.gpu").Error("gpu column failed", err,
			log.OperationKey, log.OperationExtract,
			log.SamplesKey, len(values),
		)
		return nil, err
	}

	return frame.New(g.names, cols)
}
