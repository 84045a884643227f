package extract

import (
	"github.com/YuminosukeSato/laptopfeat/core/frame"
	"github.com/YuminosukeSato/laptopfeat/core/parallel"
	"github.com/YuminosukeSato/laptopfeat/parse"
	"github.com/YuminosukeSato/laptopfeat/pkg/errors"
	"github.com/YuminosukeSato/laptopfeat/pkg/log"
)

// Output columns of ScreenExtractor.
const (
	ScreenWidth  = "screen_width"
	ScreenHeight = "screen_height"
	PixelCount   = "pixel_count"
	Touchscreen  = "touchscreen"
)

// ScreenExtractor turns a ScreenResolution column into dimensions, pixel
// count and a touchscreen flag. Resolution errors are strict, like CPUExtractor.
type ScreenExtractor struct {
	settings settings
}

// NewScreenExtractor creates a ScreenExtractor.
func NewScreenExtractor(opts ...Option) *ScreenExtractor {
	return &ScreenExtractor{settings: newSettings(opts)}
}

// OutputNames implements model.ColumnExtractor.
func (s *ScreenExtractor) OutputNames() []string {
	return []string{ScreenWidth, ScreenHeight, PixelCount, Touchscreen}
}

// Extract implements model.ColumnExtractor.
func (s *ScreenExtractor) Extract(values []string) (*frame.Table, error) {
	n := len(values)
	width := make([]float64, n)
	height := make([]float64, n)
	pixels := make([]float64, n)
	touch := make([]float64, n)

	err := parallel.ParallelizeErrWithThreshold(n, s.settings.threshold, func(start, end int) error {
		for i := start; i < end; i++ {
			res, err := parse.ParseResolution(values[i])
			if err != nil {
				return errors.NewRowError(ColumnScreen, i, err)
			}
			width[i] = float64(res.Width)
			height[i] = float64(res.Height)
			pixels[i] = res.Pixels()
			touch[i] = boolToFloat(parse.HasTouchscreen(values[i]))
		}
		return nil
	})
	if err != nil {
		log.GetLoggerWithName("extract.screen").Error("resolution column rejected", err,
			log.OperationKey, log.OperationExtract,
			log.SamplesKey, n,
		)
		return nil, err
	}

	return frame.New(s.OutputNames(), [][]float64{width, height, pixels, touch})
}
