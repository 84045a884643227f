// Standard attribute keys for feature extraction logging.
//
// Keys follow a dotted naming convention ("data.samples", "ml.component") so
// logs from different components can be filtered consistently.

package log

// Operation context
const (
	// ComponentKey identifies the package or extractor emitting the record.
	// Examples: "extract.memory", "preprocessing.ratio", "selection"
	ComponentKey = "ml.component"

	// OperationKey specifies the operation being performed.
	// Standard values are the Operation* constants below.
	OperationKey = "ml.operation"

	// ColumnKey names the source column being processed.
	ColumnKey = "data.column"

	// LabelKey names the label column used by ratio generation or selection.
	LabelKey = "data.label"
)

// Data shape
const (
	// SamplesKey indicates the number of rows processed.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of columns produced or consumed.
	FeaturesKey = "data.features"

	// MalformedKey counts values a tolerant parser could not interpret.
	MalformedKey = "data.malformed"

	// OmittedKey counts derived columns that were dropped.
	OmittedKey = "data.omitted"
)

// Performance
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// ParallelKey records whether rows were processed in parallel.
	ParallelKey = "perf.parallel"
)

// Selection
const (
	// ThresholdKey records the correlation threshold used by selection.
	ThresholdKey = "selection.threshold"

	// CoefficientKey records a correlation coefficient.
	CoefficientKey = "selection.coefficient"
)

// Error context
const (
	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"

	// StacktraceKey contains the stack trace extracted from cockroachdb/errors.
	StacktraceKey = "error.stacktrace"

	// ReasonKey explains why a value or column was rejected.
	ReasonKey = "error.reason"
)

// Standard attribute values.
const (
	OperationParse    = "parse"
	OperationExtract  = "extract"
	OperationGenerate = "generate"
	OperationSelect   = "select"
	OperationLoad     = "load"
)
