package valueobject

import "fmt"

// Impact is the direction a single factor pushes a decision.
type Impact int

const (
	ImpactNegative Impact = -1
	ImpactNeutral  Impact = 0
	ImpactPositive Impact = 1
)

// ImpactFromString parses the signed textual form ("+1", "-1", "0").
func ImpactFromString(s string) (Impact, error) {
	switch s {
	case "+1", "1":
		return ImpactPositive, nil
	case "-1":
		return ImpactNegative, nil
	case "0":
		return ImpactNeutral, nil
	default:
		return ImpactNeutral, fmt.Errorf("invalid impact: %q", s)
	}
}

// Score returns the signed integer contribution to a total score.
func (i Impact) Score() int { return int(i) }

func (i Impact) String() string {
	switch i {
	case ImpactPositive:
		return "+1"
	case ImpactNegative:
		return "-1"
	default:
		return "0"
	}
}
