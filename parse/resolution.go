package parse

import (
	"strconv"
	"strings"

	"github.com/YuminosukeSato/laptopfeat/pkg/errors"
)

// TouchscreenMarker is searched for anywhere in a ScreenResolution field.
const TouchscreenMarker = "Touchscreen"

// Resolution is a screen size in pixels.
type Resolution struct {
	Width  int
	Height int
}

// Pixels returns Width × Height.
func (r Resolution) Pixels() float64 {
	return float64(r.Width) * float64(r.Height)
}

// ParseResolution parses the last token of a field like
// "IPS Panel Full HD 1920x1080" as WIDTHxHEIGHT.
func ParseResolution(text string) (Resolution, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Resolution{}, errors.NewInvalidFormatError("resolution", text, "empty value")
	}
	parts := strings.Split(fields[len(fields)-1], "x")
	if len(parts) != 2 {
		return Resolution{}, errors.NewInvalidFormatError("resolution", text, "expected WIDTHxHEIGHT")
	}
	w, err := parseDimension(parts[0])
	if err != nil {
		return Resolution{}, errors.NewInvalidFormatError("resolution", text, "width "+err.Error())
	}
	h, err := parseDimension(parts[1])
	if err != nil {
		return Resolution{}, errors.NewInvalidFormatError("resolution", text, "height "+err.Error())
	}
	return Resolution{Width: w, Height: h}, nil
}

// parseDimension accepts only unsigned decimal digits with a positive value.
func parseDimension(s string) (int, error) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, errors.New("is not an unsigned integer")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrap(err, "is out of range")
	}
	if n == 0 {
		return 0, errors.New("must be positive")
	}
	return n, nil
}

// HasTouchscreen reports whether the whole field mentions a touchscreen.
func HasTouchscreen(text string) bool {
	return strings.Contains(text, TouchscreenMarker)
}
