// Package extract applies the field parsers to whole columns and returns
// aligned numeric tables.
package extract

import "github.com/YuminosukeSato/laptopfeat/core/parallel"

// Option configures an extractor.
type Option func(*settings)

type settings struct {
	threshold int
}

func newSettings(opts []Option) settings {
	s := settings{threshold: parallel.DefaultThreshold}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithParallelThreshold sets the row count above which rows are parsed
// concurrently. Zero or negative values make every non-empty column parallel.
func WithParallelThreshold(n int) Option {
	return func(s *settings) {
		s.threshold = n
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
