package valueobject

import "fmt"

// CustomerTier is the presentation category derived from a predicted rate.
type CustomerTier struct {
	label      string
	background string
	text       string
}

var (
	TierPremium   = CustomerTier{label: "Premium Customer", background: "#4B0082", text: "#FFFFFF"}
	TierHighValue = CustomerTier{label: "High-Value Customer", background: "#1E90FF", text: "#FFFFFF"}
	TierStandard  = CustomerTier{label: "Standard Customer", background: "#E0E0E0", text: "#333333"}
	TierLowTier   = CustomerTier{label: "Low-Tier Customer", background: "#FF6B6B", text: "#FFFFFF"}
)

// CustomerTierFromLabel reconstructs a tier from its persisted label.
func CustomerTierFromLabel(label string) (CustomerTier, error) {
	for _, t := range []CustomerTier{TierPremium, TierHighValue, TierStandard, TierLowTier} {
		if t.label == label {
			return t, nil
		}
	}
	return CustomerTier{}, fmt.Errorf("invalid customer tier: %q", label)
}

func (t CustomerTier) Label() string { return t.label }

// BackgroundColor is the hex colour used behind the tier badge.
func (t CustomerTier) BackgroundColor() string { return t.background }

// TextColor is the hex colour used for the tier badge text.
func (t CustomerTier) TextColor() string { return t.text }

func (t CustomerTier) String() string { return t.label }

func (t CustomerTier) IsZero() bool { return t.label == "" }

func (t CustomerTier) Equal(other CustomerTier) bool { return t.label == other.label }
