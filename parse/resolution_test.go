package parse

import (
	"testing"

	"github.com/YuminosukeSato/laptopfeat/pkg/errors"
)

func TestParseResolution(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Resolution
		wantErr bool
	}{
		{name: "full hd", text: "Full HD 1920x1080", want: Resolution{1920, 1080}},
		{name: "bare", text: "1366x768", want: Resolution{1366, 768}},
		{name: "touchscreen prefix", text: "IPS Panel Touchscreen / 4K Ultra HD 3840x2160", want: Resolution{3840, 2160}},
		{name: "no separator", text: "Full HD", wantErr: true},
		{name: "three parts", text: "1920x1080x2", wantErr: true},
		{name: "non-integer", text: "19.2x1080", wantErr: true},
		{name: "empty", text: "   ", wantErr: true},
		{name: "negative width", text: "Full HD -1920x1080", wantErr: true},
		{name: "signed height", text: "1920x+1080", wantErr: true},
		{name: "zero height", text: "1920x0", wantErr: true},
		{name: "missing width", text: "x1080", wantErr: true},
		{name: "leading zeros", text: "01366x0768", want: Resolution{1366, 768}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResolution(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseResolution(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if tt.wantErr {
				var formatErr *errors.InvalidFormatError
				if !errors.As(err, &formatErr) {
					t.Errorf("error should be *InvalidFormatError, got %T", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseResolution(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestResolutionPixels(t *testing.T) {
	r, err := ParseResolution("Full HD 1920x1080")
	if err != nil {
		t.Fatal(err)
	}
	if r.Pixels() != 2073600.0 {
		t.Errorf("Pixels() = %v, want 2073600", r.Pixels())
	}
}

func TestHasTouchscreen(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"IPS Panel Full HD / Touchscreen 1920x1080", true},
		{"Touchscreen 2560x1440", true},
		{"Full HD 1920x1080", false},
		{"touchscreen 1366x768", false},
	}
	for _, tt := range tests {
		if got := HasTouchscreen(tt.text); got != tt.want {
			t.Errorf("HasTouchscreen(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
