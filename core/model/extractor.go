// Package model defines the interfaces shared by column extractors and
// feature generators.
package model

import "github.com/YuminosukeSato/laptopfeat/core/frame"

// ColumnExtractor turns one raw text column into one or more numeric
// columns aligned with the input rows.
type ColumnExtractor interface {
	// Extract parses every value and returns a table with len(values) rows.
	Extract(values []string) (*frame.Table, error)

	// OutputNames lists the columns Extract produces, in order.
	OutputNames() []string
}

// FeatureGenerator derives new columns from a numeric table.
type FeatureGenerator interface {
	// Transform returns the derived columns only; the label column is never
	// part of the result.
	Transform(table *frame.Table, label string) (*frame.Table, error)
}
