package extract

import (
	"github.com/YuminosukeSato/laptopfeat/core/frame"
	"github.com/YuminosukeSato/laptopfeat/core/parallel"
	"github.com/YuminosukeSato/laptopfeat/parse"
	"github.com/YuminosukeSato/laptopfeat/pkg/errors"
	"github.com/YuminosukeSato/laptopfeat/pkg/log"
)

// CPUGHz is the output column of CPUExtractor.
const CPUGHz = "cpu_ghz"

// CPUExtractor turns a Cpu column into clock speeds. A value without a
// trailing "<number>GHz" token fails the whole column with a *errors.RowError
// wrapping the *errors.InvalidFormatError of the first bad row.
type CPUExtractor struct {
	settings settings
}

// NewCPUExtractor creates a CPUExtractor.
func NewCPUExtractor(opts ...Option) *CPUExtractor {
	return &CPUExtractor{settings: newSettings(opts)}
}

// OutputNames implements model.ColumnExtractor.
func (c *CPUExtractor) OutputNames() []string {
	return []string{CPUGHz}
}

// Extract implements model.ColumnExtractor.
func (c *CPUExtractor) Extract(values []string) (*frame.Table, error) {
	ghz := make([]float64, len(values))

	err := parallel.ParallelizeErrWithThreshold(len(values), c.settings.threshold, func(start, end int) error {
		for i := start; i < end; i++ {
			v, err := parse.ParseClockSpeed(values[i])
			if err != nil {
				return errors.NewRowError(ColumnCPU, i, err)
			}
			ghz[i] = v
		}
		return nil
	})
	if err != nil {
		log.GetLoggerWithName("extract.cpu").Error("cpu column rejected", err,
			log.OperationKey, log.OperationExtract,
			log.SamplesKey, len(values),
		)
		return nil, err
	}

	return frame.New(c.OutputNames(), [][]float64{ghz})
}
