package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/laptopfeat/pkg/errors"
)

// MediaType classifies a storage device.
type MediaType int

const (
	// MediaOther covers flash storage, hybrid drives and anything unreadable.
	MediaOther MediaType = iota
	MediaSSD
	MediaHDD
)

// String returns "SSD", "HDD" or "Other".
func (m MediaType) String() string {
	switch m {
	case MediaSSD:
		return "SSD"
	case MediaHDD:
		return "HDD"
	default:
		return "Other"
	}
}

// LabelPolicy decides what MemoryEntry.Label holds for MediaOther entries.
type LabelPolicy int

const (
	// PreserveLabel keeps the text after the size, e.g. "Flash Storage".
	PreserveLabel LabelPolicy = iota
	// CollapseLabel replaces it with "Other".
	CollapseLabel
)

// String returns "preserve" or "collapse".
func (p LabelPolicy) String() string {
	if p == CollapseLabel {
		return "collapse"
	}
	return "preserve"
}

// ParseLabelPolicy parses "preserve" or "collapse".
func ParseLabelPolicy(s string) (LabelPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "preserve":
		return PreserveLabel, nil
	case "collapse":
		return CollapseLabel, nil
	default:
		return PreserveLabel, errors.NewValidationError("label_policy", "must be preserve or collapse", s)
	}
}

// MemoryEntry is one storage device of a Memory field.
type MemoryEntry struct {
	SizeGB float64
	Type   MediaType
	Label  string // "SSD", "HDD", or the free-text remainder for MediaOther
}

// GB per TB; storage sizes are normalized to GB.
const gbPerTB = 1024

var memorySize = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(GB|TB)`)

// MemoryParser parses Memory fields such as "256GB SSD + 1TB HDD".
type MemoryParser struct {
	policy LabelPolicy
}

// MemoryOption configures a MemoryParser.
type MemoryOption func(*MemoryParser)

// WithLabelPolicy sets how non-SSD/HDD labels are reported.
func WithLabelPolicy(policy LabelPolicy) MemoryOption {
	return func(p *MemoryParser) {
		p.policy = policy
	}
}

// NewMemoryParser returns a parser using PreserveLabel unless configured otherwise.
func NewMemoryParser(opts ...MemoryOption) *MemoryParser {
	p := &MemoryParser{policy: PreserveLabel}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Policy returns the configured label policy.
func (p *MemoryParser) Policy() LabelPolicy { return p.policy }

// ParseSingle parses one storage device description. Text without a
// "<number>GB" or "<number>TB" size yields {0, MediaOther, "Other"}.
func (p *MemoryParser) ParseSingle(text string) MemoryEntry {
	entry, _ := p.parseSingle(text)
	return entry
}

// Parse parses a Memory field. A '+' separates two devices, which are
// parsed independently; otherwise the result has one entry.
func (p *MemoryParser) Parse(text string) []MemoryEntry {
	entries, _ := p.TryParse(text)
	return entries
}

// TryParse is Parse that also reports whether every device had a readable
// size. Callers use it to count malformed values without failing.
func (p *MemoryParser) TryParse(text string) ([]MemoryEntry, bool) {
	if !strings.Contains(text, "+") {
		e, ok := p.parseSingle(text)
		return []MemoryEntry{e}, ok
	}
	left, right := SplitMemory(text)
	l, okL := p.parseSingle(left)
	r, okR := p.parseSingle(right)
	return []MemoryEntry{l, r}, okL && okR
}

func (p *MemoryParser) parseSingle(text string) (MemoryEntry, bool) {
	loc := memorySize.FindStringSubmatchIndex(text)
	if loc == nil {
		return MemoryEntry{Type: MediaOther, Label: MediaOther.String()}, false
	}
	size, err := strconv.ParseFloat(text[loc[2]:loc[3]], 64)
	if err != nil {
		return MemoryEntry{Type: MediaOther, Label: MediaOther.String()}, false
	}
	if text[loc[4]:loc[5]] == "TB" {
		size *= gbPerTB
	}

	rest := strings.TrimSpace(text[loc[1]:])
	entry := MemoryEntry{SizeGB: size}
	switch {
	case strings.Contains(rest, "SSD"):
		entry.Type, entry.Label = MediaSSD, MediaSSD.String()
	case strings.Contains(rest, "HDD"):
		entry.Type, entry.Label = MediaHDD, MediaHDD.String()
	default:
		entry.Type, entry.Label = MediaOther, MediaOther.String()
		if p.policy == PreserveLabel && rest != "" {
			entry.Label = rest
		}
	}
	return entry, true
}

// SplitMemory splits text at the first '+' and trims both halves. Without a
// '+' it returns the trimmed text and "".
func SplitMemory(text string) (string, string) {
	i := strings.Index(text, "+")
	if i < 0 {
		return strings.TrimSpace(text), ""
	}
	return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+1:])
}
