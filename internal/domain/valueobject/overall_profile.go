package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OverallProfile summarises favorability into a single label.
type OverallProfile struct {
	value string
}

var (
	OverallProfileExcellent = OverallProfile{value: "Excellent"}
	OverallProfileGood      = OverallProfile{value: "Good"}
	OverallProfileAverage   = OverallProfile{value: "Average"}
	OverallProfilePoor      = OverallProfile{value: "Poor"}
)

var (
	excellentFloor = decimal.NewFromInt(70)
	goodFloor      = decimal.NewFromInt(50)
	averageFloor   = decimal.NewFromInt(30)
)

// OverallProfileFromFavorability maps a favorability percentage to its label.
// Lower bounds are inclusive.
func OverallProfileFromFavorability(favorability decimal.Decimal) OverallProfile {
	switch {
	case favorability.GreaterThanOrEqual(excellentFloor):
		return OverallProfileExcellent
	case favorability.GreaterThanOrEqual(goodFloor):
		return OverallProfileGood
	case favorability.GreaterThanOrEqual(averageFloor):
		return OverallProfileAverage
	default:
		return OverallProfilePoor
	}
}

// OverallProfileFromString reconstructs a label from persistence.
func OverallProfileFromString(s string) (OverallProfile, error) {
	switch s {
	case "Excellent":
		return OverallProfileExcellent, nil
	case "Good":
		return OverallProfileGood, nil
	case "Average":
		return OverallProfileAverage, nil
	case "Poor":
		return OverallProfilePoor, nil
	default:
		return OverallProfile{}, fmt.Errorf("invalid overall profile: %q", s)
	}
}

func (o OverallProfile) String() string { return o.value }

func (o OverallProfile) IsZero() bool { return o.value == "" }

func (o OverallProfile) Equal(other OverallProfile) bool { return o.value == other.value }
