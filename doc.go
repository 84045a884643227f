// Package laptopfeat turns the free-text columns of a laptop specification
// dataset into numeric features for regression models.
//
// Raw fields such as "128GB Flash Storage +  1TB HDD", "Intel Core i7 7700HQ
// 2.8GHz", "IPS Panel Touchscreen 2560x1440" and "Nvidia GeForce GTX 1050"
// become memory size and media flags, clock speed, screen geometry and a
// one-hot GPU vendor encoding. Two dataset-level utilities work on the
// resulting table: pairwise ratio features and correlation-based selection
// against a label column.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/laptopfeat/extract"
//	    "github.com/YuminosukeSato/laptopfeat/preprocessing"
//	    "github.com/YuminosukeSato/laptopfeat/selection"
//	)
//
//	func main() {
//	    records := extract.Records{
//	        Text: map[string][]string{
//	            extract.ColumnMemory: {"128GB SSD", "1TB HDD", "256GB SSD +  1TB HDD"},
//	            extract.ColumnCPU:    {"Intel Core i5 2.3GHz", "AMD A9-Series 9420 3GHz", "Intel Core i7 2.8GHz"},
//	            extract.ColumnScreen: {"1440x900", "1366x768", "Touchscreen 1920x1080"},
//	            extract.ColumnGPU:    {"Intel Iris Plus Graphics 640", "AMD Radeon 530", "Nvidia GeForce GTX 1050"},
//	        },
//	        Numeric: map[string][]float64{"Price_euros": {1339.69, 499.0, 1499.0}},
//	    }
//
//	    table, err := extract.NewLaptopExtractor(nil, extract.WithNumeric("Price_euros")).Extract(records)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    ratios, err := preprocessing.NewRatioGenerator().Generate(table, "Price_euros")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("ratio features:", ratios.Table.Names())
//
//	    report, err := selection.Select(table, "Price_euros", 0.5)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("selected:", report.Names())
//	}
//
// # Packages
//
//   - parse: single-field parsers (memory, clock speed, resolution, GPU vendor)
//   - extract: column extractors and the combined LaptopExtractor
//   - preprocessing: pairwise ratio feature generation
//   - selection: Pearson correlation selection and bar chart rendering
//   - metrics: Pearson correlation
//   - core/frame: immutable named-column numeric table
//   - core/model: extractor interfaces
//   - core/parallel: row-range parallel processing
//   - pkg/config: YAML configuration
//   - pkg/errors, pkg/log: structured errors, warnings and logging
//
// # Error Handling
//
// Parsers follow three policies. Memory parsing is tolerant: unreadable
// values become zero and are reported once per column as a
// MalformedValueWarning. Clock speed and resolution parsing are strict and
// fail with an InvalidFormatError wrapped in a RowError that carries the row
// index. Ratio generation skips pairs whose denominator contains zero and
// lists them in RatioResult.Omitted.
//
// # Performance
//
// Column extractors parse rows concurrently when a column has more than
// 1000 rows (see extract.WithParallelThreshold). Output order never depends
// on scheduling.
package laptopfeat
