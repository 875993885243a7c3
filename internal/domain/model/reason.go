package model

import (
	"github.com/shopspring/decimal"

	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

// ReasonEntry is one factor's contribution to a decision explanation.
// NumericalImpact is a plain percentage (0.25 means +0.25%).
type ReasonEntry struct {
	Factor          string
	Description     string
	Impact          valueobject.Impact
	NumericalImpact decimal.Decimal
}

// Consistent reports whether the impact direction agrees with the numeric sign.
func (r ReasonEntry) Consistent() bool {
	switch r.Impact {
	case valueobject.ImpactPositive:
		return !r.NumericalImpact.IsNegative()
	case valueobject.ImpactNegative:
		return !r.NumericalImpact.IsPositive()
	default:
		return r.NumericalImpact.IsZero()
	}
}

// SummaryTable is the ordered factor-by-factor explanation.
type SummaryTable []ReasonEntry

// TotalScore sums the signed impacts.
func (t SummaryTable) TotalScore() int {
	total := 0
	for _, e := range t {
		total += e.Impact.Score()
	}
	return total
}

// Counts returns the number of positive and negative entries. Neutral entries are in neither.
func (t SummaryTable) Counts() (positive, negative int) {
	for _, e := range t {
		switch e.Impact {
		case valueobject.ImpactPositive:
			positive++
		case valueobject.ImpactNegative:
			negative++
		}
	}
	return positive, negative
}

// Favorability is the share of positive entries among non-neutral ones, as a
// percentage. It is zero when every entry is neutral.
func (t SummaryTable) Favorability() decimal.Decimal {
	pos, neg := t.Counts()
	if pos+neg == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(pos) * 100).Div(decimal.NewFromInt(int64(pos + neg)))
}

func (t SummaryTable) OverallProfile() valueobject.OverallProfile {
	return valueobject.OverallProfileFromFavorability(t.Favorability())
}

// ChartSeries returns factor labels and their numeric impacts for plotting.
func (t SummaryTable) ChartSeries() (labels []string, values []float64) {
	labels = make([]string, 0, len(t))
	values = make([]float64, 0, len(t))
	for _, e := range t {
		labels = append(labels, e.Factor)
		values = append(values, e.NumericalImpact.InexactFloat64())
	}
	return labels, values
}

// Explanation is the rule-based account of a decision.
type Explanation struct {
	Table           SummaryTable
	PositiveReasons []string
	NegativeReasons []string
}

func (e Explanation) TotalScore() int { return e.Table.TotalScore() }

func (e Explanation) Favorability() decimal.Decimal { return e.Table.Favorability() }

func (e Explanation) OverallProfile() valueobject.OverallProfile { return e.Table.OverallProfile() }
