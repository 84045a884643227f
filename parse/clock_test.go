package parse

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/laptopfeat/pkg/errors"
)

func TestParseClockSpeed(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    float64
		wantErr bool
	}{
		{name: "decimal", text: "Intel Core i5 2.3GHz", want: 2.3},
		{name: "integer", text: "AMD A9-Series 9420 3GHz", want: 3},
		{name: "extra spaces", text: "  Intel Core i7 7700HQ   2.8GHz ", want: 2.8},
		{name: "missing unit", text: "Intel Core i5", wantErr: true},
		{name: "unit without number", text: "Intel Core GHz", wantErr: true},
		{name: "unit not last", text: "2.3GHz Intel Core i5", wantErr: true},
		{name: "empty", text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClockSpeed(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClockSpeed(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if tt.wantErr {
				var formatErr *errors.InvalidFormatError
				if !errors.As(err, &formatErr) {
					t.Errorf("error should be *InvalidFormatError, got %T", err)
				} else if formatErr.Field != "cpu" {
					t.Errorf("Field = %q, want cpu", formatErr.Field)
				}
				return
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ParseClockSpeed(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
