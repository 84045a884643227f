package errors

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestNewInvalidFormatError(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		reason  string
		wantMsg string
	}{
		{
			name:    "missing unit",
			field:   "cpu",
			value:   "Intel Core i5",
			reason:  "last token has no GHz marker",
			wantMsg: `laptopfeat: invalid cpu format "Intel Core i5": last token has no GHz marker`,
		},
		{
			name:    "bad resolution",
			field:   "resolution",
			value:   "1920-1080",
			reason:  "expected WIDTHxHEIGHT",
			wantMsg: `laptopfeat: invalid resolution format "1920-1080": expected WIDTHxHEIGHT`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewInvalidFormatError(tt.field, tt.value, tt.reason)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}

			var formatErr *InvalidFormatError
			if !As(err, &formatErr) {
				t.Fatal("Error should be castable to *InvalidFormatError")
			}
			if formatErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", formatErr.Field, tt.field)
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("frame.New", 3, 2, 0)

	want := "laptopfeat: frame.New: dimension mismatch on axis 0 (rows). Expected 3, got 2"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("threshold", "must be non-negative", -0.5)

	want := "laptopfeat: validation failed for parameter 'threshold': must be non-negative (got: -0.5)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValidationError")
	}
}

func TestRowErrorUnwrap(t *testing.T) {
	inner := NewInvalidFormatError("cpu", "AMD A9", "no GHz marker")
	err := NewRowError("Cpu", 7, inner)

	if !strings.Contains(err.Error(), "column Cpu, row 7") {
		t.Errorf("Error() = %v, want row context", err.Error())
	}

	// RowErrorとInvalidFormatErrorの両方に辿れること
	var rowErr *RowError
	if !As(err, &rowErr) || rowErr.Row != 7 {
		t.Fatalf("expected *RowError with row 7, got %v", err)
	}
	var formatErr *InvalidFormatError
	if !As(err, &formatErr) {
		t.Error("RowError should unwrap to *InvalidFormatError")
	}
}

func TestMalformedValueWarning(t *testing.T) {
	w := NewMalformedValueWarning("memory", 2, 10, "N/A")

	want := `2 of 10 memory values could not be parsed and were set to zero (first: "N/A")`
	if w.Error() != want {
		t.Errorf("Error() = %v, want %v", w.Error(), want)
	}
}

func TestWarnRouting(t *testing.T) {
	var got []error
	SetZerologWarnFunc(nil)
	SetWarningHandler(func(w error) { got = append(got, w) })
	defer SetWarningHandler(nil)

	Warn(NewMalformedValueWarning("memory", 1, 1, "?"))
	if len(got) != 1 {
		t.Fatalf("handler received %d warnings, want 1", len(got))
	}

	// zerolog関数が設定されていればそちらが優先される
	var zerologGot int
	SetZerologWarnFunc(func(error) { zerologGot++ })
	defer SetZerologWarnFunc(nil)

	Warn(NewMalformedValueWarning("memory", 1, 1, "?"))
	if zerologGot != 1 || len(got) != 1 {
		t.Errorf("zerolog func calls = %d, handler calls = %d; want 1, 1", zerologGot, len(got))
	}
}

func TestWrapAndIs(t *testing.T) {
	wrapped := Wrap(ErrColumnNotFound, "in RatioGenerator.Generate")

	if !Is(wrapped, ErrColumnNotFound) {
		t.Error("Expected Is(wrapped, ErrColumnNotFound) to be true")
	}
	if !strings.Contains(wrapped.Error(), "in RatioGenerator.Generate") {
		t.Error("Expected wrapped error to contain wrapping message")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrEmptyData, "column %s has %d rows", "Memory", 0)

	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}
	if !strings.Contains(wrapped.Error(), "column Memory has 0 rows") {
		t.Errorf("unexpected message %q", wrapped.Error())
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("pearson", []float64{1, 2, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := CheckNumericalStability("pearson", []float64{1, math.NaN(), 3})
	var numErr *NumericalInstabilityError
	if !As(err, &numErr) {
		t.Fatalf("expected *NumericalInstabilityError, got %v", err)
	}
	if numErr.Index != 1 {
		t.Errorf("Index = %d, want 1", numErr.Index)
	}
}

func TestFirstZero(t *testing.T) {
	tests := []struct {
		values []float64
		want   int
	}{
		{[]float64{1, 2, 3}, -1},
		{[]float64{0, 0}, 0},
		{[]float64{4, -1, 0, 2}, 2},
		{nil, -1},
	}
	for _, tt := range tests {
		if got := FirstZero(tt.values); got != tt.want {
			t.Errorf("FirstZero(%v) = %d, want %d", tt.values, got, tt.want)
		}
	}
}
