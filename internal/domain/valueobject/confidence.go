package valueobject

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type confidenceState uint8

const (
	confidenceMeasured confidenceState = iota + 1
	confidenceNotApplicable
	confidenceUnavailable
)

// Confidence is a bounded percentage, or a sentinel when it could not be measured.
type Confidence struct {
	value decimal.Decimal
	state confidenceState
}

var (
	// ConfidenceNotApplicable is reported when the oracle cannot expose what the estimate needs.
	ConfidenceNotApplicable = Confidence{state: confidenceNotApplicable}
	// ConfidenceUnavailable is reported when the estimate failed at evaluation time.
	ConfidenceUnavailable = Confidence{state: confidenceUnavailable}
)

var (
	confidenceFloor   = decimal.Zero
	confidenceCeiling = decimal.NewFromInt(100)
)

// NewConfidence builds a measured confidence in [0, 100].
func NewConfidence(pct decimal.Decimal) (Confidence, error) {
	if pct.LessThan(confidenceFloor) || pct.GreaterThan(confidenceCeiling) {
		return Confidence{}, fmt.Errorf("confidence %s outside [0, 100]", pct)
	}
	return Confidence{value: pct, state: confidenceMeasured}, nil
}

// ConfidenceFromString reconstructs a confidence from its String form.
func ConfidenceFromString(s string) (Confidence, error) {
	switch s {
	case "N/A":
		return ConfidenceNotApplicable, nil
	case "Unavailable":
		return ConfidenceUnavailable, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Confidence{}, fmt.Errorf("invalid confidence: %q", s)
	}
	return NewConfidence(d)
}

// Value returns the percentage and whether it was measured.
func (c Confidence) Value() (decimal.Decimal, bool) {
	return c.value, c.state == confidenceMeasured
}

func (c Confidence) IsMeasured() bool { return c.state == confidenceMeasured }

func (c Confidence) IsZero() bool { return c.state == 0 }

func (c Confidence) Equal(other Confidence) bool {
	return c.state == other.state && c.value.Equal(other.value)
}

func (c Confidence) String() string {
	switch c.state {
	case confidenceMeasured:
		return c.value.StringFixed(2)
	case confidenceNotApplicable:
		return "N/A"
	case confidenceUnavailable:
		return "Unavailable"
	default:
		return ""
	}
}

// MarshalJSON emits a number when measured and the sentinel text otherwise.
func (c Confidence) MarshalJSON() ([]byte, error) {
	if c.state == confidenceMeasured {
		return []byte(c.value.StringFixed(2)), nil
	}
	return json.Marshal(c.String())
}
