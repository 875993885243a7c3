package valueobject

import (
	"fmt"
	"strings"
)

// Profile selects the decision family a customer is evaluated for.
type Profile struct {
	value string
}

const (
	profileFD   = "FD"
	profileLoan = "LOAN"
)

var (
	ProfileFD   = Profile{value: profileFD}
	ProfileLoan = Profile{value: profileLoan}
)

// ProfileFromString parses a profile selector. Matching is case-insensitive.
func ProfileFromString(s string) (Profile, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case profileFD, "FIXED_DEPOSIT":
		return ProfileFD, nil
	case profileLoan:
		return ProfileLoan, nil
	default:
		return Profile{}, fmt.Errorf("invalid profile: %q", s)
	}
}

// Profiles lists every supported profile in a stable order.
func Profiles() []Profile {
	return []Profile{ProfileFD, ProfileLoan}
}

func (p Profile) String() string { return p.value }

// Key is the lower-case form used in manifests, metrics and cache keys.
func (p Profile) Key() string { return strings.ToLower(p.value) }

func (p Profile) IsZero() bool { return p.value == "" }

func (p Profile) Equal(other Profile) bool { return p.value == other.value }

// IsLoan reports whether the profile carries an eligibility gate.
func (p Profile) IsLoan() bool { return p.value == profileLoan }
