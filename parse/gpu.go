package parse

import (
	"strings"

	"github.com/YuminosukeSato/laptopfeat/pkg/errors"
)

// GpuVendor is a GPU manufacturer name as it appears in Gpu fields.
type GpuVendor string

const (
	VendorIntel  GpuVendor = "Intel"
	VendorAMD    GpuVendor = "AMD"
	VendorNvidia GpuVendor = "Nvidia"
	VendorOther  GpuVendor = "Other"
)

// DefaultVendorOrder returns the default match order: Intel, AMD, Nvidia.
func DefaultVendorOrder() []GpuVendor {
	return []GpuVendor{VendorIntel, VendorAMD, VendorNvidia}
}

// GpuClassifier maps a Gpu field to the first vendor of its ordered list
// whose name occurs in the text.
type GpuClassifier struct {
	vendors []GpuVendor
}

// Key returns the normalized vendor name: trimmed, lower-cased and with
// spaces replaced by '_'. Vendors with equal keys share an output column.
func (v GpuVendor) Key() string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(string(v))), " ", "_")
}

// NewGpuClassifier creates a classifier that tries vendors in the given
// order. With no vendors it uses DefaultVendorOrder. Vendors are compared by
// Key, so empty names, "Other" in any case and duplicates such as
// "ARM Mali" / "arm mali" are rejected.
func NewGpuClassifier(vendors ...GpuVendor) (*GpuClassifier, error) {
	if len(vendors) == 0 {
		vendors = DefaultVendorOrder()
	}
	seen := make(map[string]bool, len(vendors))
	for _, v := range vendors {
		key := v.Key()
		switch {
		case key == "":
			return nil, errors.NewValidationError("vendors", "vendor name must not be empty", vendors)
		case key == VendorOther.Key():
			return nil, errors.NewValidationError("vendors", "Other is the fallback and cannot be listed", v)
		case seen[key]:
			return nil, errors.NewValidationError("vendors", "duplicate vendor", v)
		}
		seen[key] = true
	}
	return &GpuClassifier{vendors: append([]GpuVendor(nil), vendors...)}, nil
}

// Classify returns the first matching vendor, or VendorOther.
func (c *GpuClassifier) Classify(text string) GpuVendor {
	for _, v := range c.vendors {
		if strings.Contains(text, string(v)) {
			return v
		}
	}
	return VendorOther
}

// Vendors returns the match order.
func (c *GpuClassifier) Vendors() []GpuVendor {
	return append([]GpuVendor(nil), c.vendors...)
}
