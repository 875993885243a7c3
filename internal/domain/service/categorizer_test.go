package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bibbank/decisioning/internal/domain/service"
	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

func TestCategorizer_Categorize(t *testing.T) {
	c := service.NewCategorizer()

	tests := []struct {
		name    string
		profile valueobject.Profile
		rate    string
		want    valueobject.CustomerTier
	}{
		{"fd premium at bound", valueobject.ProfileFD, "9.0", valueobject.TierPremium},
		{"fd high value below premium", valueobject.ProfileFD, "8.99", valueobject.TierHighValue},
		{"fd high value at bound", valueobject.ProfileFD, "7", valueobject.TierHighValue},
		{"fd standard", valueobject.ProfileFD, "5.5", valueobject.TierStandard},
		{"fd low tier", valueobject.ProfileFD, "4.99", valueobject.TierLowTier},
		{"fd negative rate", valueobject.ProfileFD, "-1", valueobject.TierLowTier},
		{"loan premium at bound", valueobject.ProfileLoan, "9.0", valueobject.TierPremium},
		{"loan high value", valueobject.ProfileLoan, "9.5", valueobject.TierHighValue},
		{"loan high value at bound", valueobject.ProfileLoan, "10", valueobject.TierHighValue},
		{"loan standard at bound", valueobject.ProfileLoan, "13", valueobject.TierStandard},
		{"loan low tier", valueobject.ProfileLoan, "13.01", valueobject.TierLowTier},
		{"loan zero rate", valueobject.ProfileLoan, "0", valueobject.TierPremium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Categorize(decimal.RequireFromString(tt.rate), tt.profile)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategorizer_InvertedBetweenProfiles(t *testing.T) {
	c := service.NewCategorizer()
	rate := decimal.RequireFromString("9.5")

	assert.Equal(t, valueobject.TierPremium, c.Categorize(rate, valueobject.ProfileFD))
	assert.Equal(t, valueobject.TierHighValue, c.Categorize(rate, valueobject.ProfileLoan))
}
