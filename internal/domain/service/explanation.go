package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

// predicate tests a validated feature set against one band.
type predicate func(f model.ValidatedFeatures) bool

func numberAtLeast(field string, n float64) predicate {
	return func(f model.ValidatedFeatures) bool {
		v, ok := f.Numeric(field)
		return ok && v >= n
	}
}

func numberAtMost(field string, n float64) predicate {
	return func(f model.ValidatedFeatures) bool {
		v, ok := f.Numeric(field)
		return ok && v <= n
	}
}

func numberBelow(field string, n float64) predicate {
	return func(f model.ValidatedFeatures) bool {
		v, ok := f.Numeric(field)
		return ok && v < n
	}
}

func categoryIs(field, want string) predicate {
	return func(f model.ValidatedFeatures) bool {
		v, ok := f.Category(field)
		return ok && v == want
	}
}

func otherwise(model.ValidatedFeatures) bool { return true }

// band is one row of a factor's rule table. The first matching band wins.
type band struct {
	when        predicate
	description string
	reason      string
	impact      valueobject.Impact
	numeric     decimal.Decimal
}

type factorRule struct {
	factor string
	// historyBased factors are neutralised for customers with no recorded history.
	historyBased bool
	bands        []band
}

func pct(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var fdRules = []factorRule{
	{
		factor:       "Credit History",
		historyBased: true,
		bands: []band{
			{numberAtLeast(model.FieldCreditHistory, 750), "Excellent credit history", "Excellent credit history, indicating strong financial discipline.", valueobject.ImpactPositive, pct("0.25")},
			{numberAtLeast(model.FieldCreditHistory, 500), "Good with minor issues", "Good credit history with minor issues.", valueobject.ImpactPositive, pct("0.20")},
			{otherwise, "Low credit history", "Low credit history, considered a risk factor.", valueobject.ImpactNegative, pct("-0.30")},
		},
	},
	{
		factor:       "Risk Rating",
		historyBased: true,
		bands: []band{
			{numberAtMost(model.FieldRiskRating, 10), "Low (Safe investor)", "Low risk rating, considered a safe investor.", valueobject.ImpactPositive, pct("0.10")},
			{numberAtMost(model.FieldRiskRating, 30), "Moderate", "Moderate risk rating, acceptable for investment.", valueobject.ImpactPositive, pct("0.08")},
			{otherwise, "High risk", "High risk rating, may reduce interest rate benefits.", valueobject.ImpactNegative, pct("-0.15")},
		},
	},
	{
		factor: "Age",
		bands: []band{
			{numberBelow(model.FieldAge, 35), "Young investor", "Young investor, potentially longer investment horizon.", valueobject.ImpactPositive, pct("0.18")},
			{numberAtMost(model.FieldAge, 60), "Middle-aged investor", "Middle-aged investor with steady financial behavior.", valueobject.ImpactPositive, pct("0.10")},
			{otherwise, "Senior investor", "Senior investor, shorter investment horizon.", valueobject.ImpactNegative, pct("-0.20")},
		},
	},
	{
		factor:       "Customer Relationship Years",
		historyBased: true,
		bands: []band{
			{numberAtLeast(model.FieldRelationshipYears, 15), "Very long-term", "Very long-term relationship with the bank.", valueobject.ImpactPositive, pct("0.10")},
			{numberAtLeast(model.FieldRelationshipYears, 10), "Long-term", "Long-term relationship with the bank.", valueobject.ImpactPositive, pct("0.08")},
			{otherwise, "Short-term", "Relatively new customer.", valueobject.ImpactNegative, pct("-0.10")},
		},
	},
	{
		factor: "Past Transactions",
		bands: []band{
			{categoryIs(model.FieldPastTransactions, "Positive"), "Positive transaction history", "Positive transaction history indicating good account management.", valueobject.ImpactPositive, pct("0.07")},
			{categoryIs(model.FieldPastTransactions, "Neutral"), "Neutral transaction history", "Neutral transaction history gives no evidence of good account management.", valueobject.ImpactNegative, pct("-0.15")},
			{otherwise, "Negative transactions", "Negative transaction history may affect trust level.", valueobject.ImpactNegative, pct("-0.15")},
		},
	},
	{
		factor: "Market Trends",
		bands: []band{
			{categoryIs(model.FieldMarketTrends, "Favorable"), "Favorable", "Favorable market trends contribute to better FD rates.", valueobject.ImpactPositive, pct("0.04")},
			{categoryIs(model.FieldMarketTrends, "Neutral"), "Neutral", "Neutral market trends have a balanced effect.", valueobject.ImpactPositive, pct("0.02")},
			{otherwise, "Unfavorable", "Unfavorable market trends may limit the interest rate.", valueobject.ImpactNegative, pct("-0.05")},
		},
	},
}

var loanRules = []factorRule{
	{
		factor:       "Credit History",
		historyBased: true,
		bands: []band{
			{numberAtLeast(model.FieldCreditHistory, 750), "Excellent credit history", "Excellent credit history, indicating strong financial discipline.", valueobject.ImpactPositive, pct("0.25")},
			{numberAtLeast(model.FieldCreditHistory, 500), "Good with minor issues", "Good credit history with minor issues.", valueobject.ImpactPositive, pct("0.20")},
			{otherwise, "Low credit history", "Low credit history, considered a risk factor.", valueobject.ImpactNegative, pct("-0.30")},
		},
	},
	{
		factor: "Family Credit History",
		bands: []band{
			{numberAtLeast(model.FieldFamilyCreditHistory, 750), "Excellent credit history", "Excellent family credit history supports repayment capacity.", valueobject.ImpactPositive, pct("0.18")},
			{numberAtLeast(model.FieldFamilyCreditHistory, 500), "Good with minor issues", "Good family credit history with minor issues.", valueobject.ImpactPositive, pct("0.15")},
			{otherwise, "Low credit history", "Low family credit history, considered a risk factor.", valueobject.ImpactNegative, pct("-0.25")},
		},
	},
	{
		factor:       "Risk Rating",
		historyBased: true,
		bands: []band{
			{numberAtMost(model.FieldRiskRating, 10), "Low (Safe investor)", "Low risk rating, considered a safe borrower.", valueobject.ImpactPositive, pct("0.10")},
			{numberAtMost(model.FieldRiskRating, 30), "Moderate", "Moderate risk rating, acceptable for lending.", valueobject.ImpactPositive, pct("0.08")},
			{otherwise, "High risk", "High risk rating, may increase the interest rate.", valueobject.ImpactNegative, pct("-0.15")},
		},
	},
	{
		factor: "Age & Behavior",
		bands: []band{
			{numberBelow(model.FieldAge, 35), "Young and dynamic", "Young borrower with a long repayment horizon.", valueobject.ImpactPositive, pct("0.18")},
			{numberAtMost(model.FieldAge, 60), "Middle-aged with steady financial habits", "Middle-aged borrower with steady financial habits.", valueobject.ImpactPositive, pct("0.10")},
			{otherwise, "Older age", "Older age shortens the repayment horizon.", valueobject.ImpactNegative, pct("-0.20")},
		},
	},
	{
		factor:       "Bank Relationship",
		historyBased: true,
		bands: []band{
			{numberAtLeast(model.FieldRelationshipYears, 15), "Very long-term", "Very long-term relationship with the bank.", valueobject.ImpactPositive, pct("0.10")},
			{numberAtLeast(model.FieldRelationshipYears, 10), "Long-term", "Long-term relationship with the bank.", valueobject.ImpactPositive, pct("0.08")},
			{otherwise, "Short-term", "Relatively new customer.", valueobject.ImpactNegative, pct("-0.10")},
		},
	},
	{
		factor: "Account Management",
		bands: []band{
			{categoryIs(model.FieldPastTransactions, "Positive"), "Positive transaction history", "Positive transaction history indicating good account management.", valueobject.ImpactPositive, pct("0.07")},
			{otherwise, "Negative transactions", "Negative transaction history may affect trust level.", valueobject.ImpactNegative, pct("-0.15")},
		},
	},
	{
		factor: "Market Trends",
		bands: []band{
			{categoryIs(model.FieldMarketTrends, "Favorable"), "Favorable", "Favorable market trends support better loan terms.", valueobject.ImpactPositive, pct("0.04")},
			{categoryIs(model.FieldMarketTrends, "Neutral"), "Neutral", "Neutral market trends have a balanced effect.", valueobject.ImpactPositive, pct("0.02")},
			{otherwise, "Unfavorable", "Unfavorable market trends may tighten loan terms.", valueobject.ImpactNegative, pct("-0.05")},
		},
	},
}

// ExplanationGenerator builds the factor-by-factor reasons table. It reads only
// the validated features, never the oracle's output.
type ExplanationGenerator struct{}

func NewExplanationGenerator() *ExplanationGenerator {
	return &ExplanationGenerator{}
}

// Explain evaluates the profile's rule table. For loans, a customer with no
// recorded history has the history-based factors neutralised before aggregation.
func (g *ExplanationGenerator) Explain(f model.ValidatedFeatures) (model.Explanation, error) {
	rules := fdRules
	if f.Profile.IsLoan() {
		rules = loanRules
	}
	neutralise := f.Profile.IsLoan() && f.IsNewCustomer()

	exp := model.Explanation{
		Table:           make(model.SummaryTable, 0, len(rules)),
		PositiveReasons: []string{},
		NegativeReasons: []string{},
	}

	for _, rule := range rules {
		b, ok := rule.match(f)
		if !ok {
			return model.Explanation{}, fmt.Errorf("no band matched factor %s", rule.factor)
		}

		entry := model.ReasonEntry{
			Factor:          rule.factor,
			Description:     b.description,
			Impact:          b.impact,
			NumericalImpact: b.numeric,
		}
		if neutralise && rule.historyBased {
			entry.Impact = valueobject.ImpactNeutral
			entry.NumericalImpact = decimal.Zero
		}
		if !entry.Consistent() {
			return model.Explanation{}, fmt.Errorf("factor %s: impact %s disagrees with %s%%", rule.factor, entry.Impact, entry.NumericalImpact)
		}

		switch entry.Impact {
		case valueobject.ImpactPositive:
			exp.PositiveReasons = append(exp.PositiveReasons, b.reason)
		case valueobject.ImpactNegative:
			exp.NegativeReasons = append(exp.NegativeReasons, b.reason)
		}
		exp.Table = append(exp.Table, entry)
	}

	return exp, nil
}

func (r factorRule) match(f model.ValidatedFeatures) (band, bool) {
	for _, b := range r.bands {
		if b.when(f) {
			return b, true
		}
	}
	return band{}, false
}
