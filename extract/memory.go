package extract

import (
	"strings"

	"github.com/YuminosukeSato/laptopfeat/core/frame"
	"github.com/YuminosukeSato/laptopfeat/core/parallel"
	"github.com/YuminosukeSato/laptopfeat/parse"
	"github.com/YuminosukeSato/laptopfeat/pkg/errors"
	"github.com/YuminosukeSato/laptopfeat/pkg/log"
)

// Output columns of MemoryExtractor.
const (
	TotalSizeGB = "total_size_gb"
	HasSSD      = "has_ssd"
	HasHDD      = "has_hdd"
	HasOther    = "has_other"
)

// MemoryExtractor turns a Memory column into total size and media flags.
//
// The flags come from a substring search of the raw text, not from the
// parsed entry types, so they stay correct whatever label policy the parser
// uses. Unreadable values count as zero GB and are reported once per call
// through errors.Warn.
type MemoryExtractor struct {
	parser   *parse.MemoryParser
	settings settings
}

// NewMemoryExtractor creates a MemoryExtractor. A nil parser means
// parse.NewMemoryParser().
func NewMemoryExtractor(parser *parse.MemoryParser, opts ...Option) *MemoryExtractor {
	if parser == nil {
		parser = parse.NewMemoryParser()
	}
	return &MemoryExtractor{parser: parser, settings: newSettings(opts)}
}

// OutputNames implements model.ColumnExtractor.
func (m *MemoryExtractor) OutputNames() []string {
	return []string{TotalSizeGB, HasSSD, HasHDD, HasOther}
}

// Extract implements model.ColumnExtractor. It never fails on content; only
// a panic while parsing a row is returned, as a *errors.PanicError.
func (m *MemoryExtractor) Extract(values []string) (*frame.Table, error) {
	n := len(values)
	total := make([]float64, n)
	ssd := make([]float64, n)
	hdd := make([]float64, n)
	other := make([]float64, n)
	malformed := make([]bool, n)

	err := parallel.ParallelizeErrWithThreshold(n, m.settings.threshold, func(start, end int) error {
		for i := start; i < end; i++ {
			text := values[i]
			entries, ok := m.parser.TryParse(text)
			malformed[i] = !ok
			for _, e := range entries {
				total[i] += e.SizeGB
			}
			isSSD := strings.Contains(text, "SSD")
			isHDD := strings.Contains(text, "HDD")
			ssd[i] = boolToFloat(isSSD)
			hdd[i] = boolToFloat(isHDD)
			other[i] = boolToFloat(!isSSD && !isHDD)
		}
		return nil
	})
	logger := log.GetLoggerWithName("extract.memory")
	if err != nil {
		logger.Error("memory column failed", err,
			log.OperationKey, log.OperationExtract,
			log.SamplesKey, n,
		)
		return nil, err
	}

	count, example := 0, ""
	for i, bad := range malformed {
		if bad {
			if count == 0 {
				example = values[i]
			}
			count++
		}
	}

	logger.Debug("memory column extracted",
		log.OperationKey, log.OperationExtract,
		log.SamplesKey, n,
		log.MalformedKey, count,
		log.ParallelKey, n > m.settings.threshold,
	)
	if count > 0 {
		errors.Warn(errors.NewMalformedValueWarning("memory", count, n, example))
	}

	return frame.New(m.OutputNames(), [][]float64{total, ssd, hdd, other})
}
