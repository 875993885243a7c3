package service

import (
	"github.com/shopspring/decimal"

	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

// tierBand assigns a tier when the rate passes the band's bound.
type tierBand struct {
	bound decimal.Decimal
	tier  valueobject.CustomerTier
}

// FD rates are good when high; bands are checked top-down with >=.
var fdTierBands = []tierBand{
	{bound: decimal.NewFromInt(9), tier: valueobject.TierPremium},
	{bound: decimal.NewFromInt(7), tier: valueobject.TierHighValue},
	{bound: decimal.NewFromInt(5), tier: valueobject.TierStandard},
}

// Loan rates are good when low; bands are checked bottom-up with <=.
var loanTierBands = []tierBand{
	{bound: decimal.NewFromInt(9), tier: valueobject.TierPremium},
	{bound: decimal.NewFromInt(10), tier: valueobject.TierHighValue},
	{bound: decimal.NewFromInt(13), tier: valueobject.TierStandard},
}

// Categorizer maps a predicted rate onto a customer tier.
type Categorizer struct{}

func NewCategorizer() *Categorizer {
	return &Categorizer{}
}

// Categorize is total: any rate, including negative or zero, lands in exactly one tier.
func (c *Categorizer) Categorize(rate decimal.Decimal, profile valueobject.Profile) valueobject.CustomerTier {
	if profile.IsLoan() {
		for _, b := range loanTierBands {
			if rate.LessThanOrEqual(b.bound) {
				return b.tier
			}
		}
		return valueobject.TierLowTier
	}

	for _, b := range fdTierBands {
		if rate.GreaterThanOrEqual(b.bound) {
			return b.tier
		}
	}
	return valueobject.TierLowTier
}
