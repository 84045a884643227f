package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/laptopfeat/pkg/errors"
)

// ClockUnit is the marker the last token of a Cpu field must carry.
const ClockUnit = "GHz"

var clockNumber = regexp.MustCompile(`^\d+(?:\.\d+)?`)

// ParseClockSpeed extracts the clock speed in GHz from a Cpu field such as
// "Intel Core i5 2.3GHz". The last whitespace-separated token must contain
// "GHz" and start with a number.
func ParseClockSpeed(text string) (float64, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, errors.NewInvalidFormatError("cpu", text, "empty value")
	}
	last := fields[len(fields)-1]
	if !strings.Contains(last, ClockUnit) {
		return 0, errors.NewInvalidFormatError("cpu", text, "last token has no "+ClockUnit+" marker")
	}
	num := clockNumber.FindString(last)
	if num == "" {
		return 0, errors.NewInvalidFormatError("cpu", text, "no numeric value before "+ClockUnit)
	}
	ghz, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, errors.NewInvalidFormatError("cpu", text, err.Error())
	}
	return ghz, nil
}
