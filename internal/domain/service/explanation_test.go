package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/internal/domain/service"
	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

func fdFeatures() model.ValidatedFeatures {
	return model.ValidatedFeatures{
		Profile:           valueobject.ProfileFD,
		CreditHistory:     780,
		RiskRating:        8,
		Age:               29,
		RelationshipYears: 12,
		PastTransactions:  valueobject.PastTransactionsPositive,
		MarketTrend:       valueobject.MarketTrendFavorable,
	}
}

func loanFeatures() model.ValidatedFeatures {
	return model.ValidatedFeatures{
		Profile:             valueobject.ProfileLoan,
		CreditHistory:       720,
		FamilyCreditHistory: 680,
		RiskRating:          18,
		Age:                 41,
		RelationshipYears:   6,
		PastTransactions:    valueobject.PastTransactionsPositive,
		MarketTrend:         valueobject.MarketTrendNeutral,
	}
}

func factor(t *testing.T, exp model.Explanation, name string) model.ReasonEntry {
	t.Helper()
	for _, e := range exp.Table {
		if e.Factor == name {
			return e
		}
	}
	t.Fatalf("factor %q not in table", name)
	return model.ReasonEntry{}
}

func TestExplanationGenerator_FD(t *testing.T) {
	g := service.NewExplanationGenerator()

	exp, err := g.Explain(fdFeatures())
	require.NoError(t, err)

	require.Len(t, exp.Table, 6)
	assert.Equal(t, "Credit History", exp.Table[0].Factor)
	assert.Equal(t, "Market Trends", exp.Table[5].Factor)

	credit := factor(t, exp, "Credit History")
	assert.Equal(t, valueobject.ImpactPositive, credit.Impact)
	assert.True(t, credit.NumericalImpact.Equal(decimal.RequireFromString("0.25")))

	tenure := factor(t, exp, "Customer Relationship Years")
	assert.True(t, tenure.NumericalImpact.Equal(decimal.RequireFromString("0.08")))

	assert.Equal(t, 6, exp.TotalScore())
	assert.True(t, exp.Favorability().Equal(decimal.NewFromInt(100)))
	assert.Equal(t, valueobject.OverallProfileExcellent, exp.OverallProfile())
	assert.Contains(t, exp.PositiveReasons, "Excellent credit history, indicating strong financial discipline.")
	assert.Contains(t, exp.PositiveReasons, "Favorable market trends contribute to better FD rates.")
	assert.Empty(t, exp.NegativeReasons)
}

func TestExplanationGenerator_CreditSweepMatchesBands(t *testing.T) {
	g := service.NewExplanationGenerator()
	f := fdFeatures()

	for credit := 0; credit <= 900; credit += 10 {
		f.CreditHistory = credit
		exp, err := g.Explain(f)
		require.NoError(t, err)

		entry := factor(t, exp, "Credit History")
		switch {
		case credit >= 750:
			assert.Equal(t, valueobject.ImpactPositive, entry.Impact, "credit %d", credit)
			assert.Equal(t, "0.25", entry.NumericalImpact.String(), "credit %d", credit)
		case credit >= 500:
			assert.Equal(t, valueobject.ImpactPositive, entry.Impact, "credit %d", credit)
			assert.Equal(t, "0.2", entry.NumericalImpact.String(), "credit %d", credit)
		default:
			assert.Equal(t, valueobject.ImpactNegative, entry.Impact, "credit %d", credit)
			assert.Equal(t, "-0.3", entry.NumericalImpact.String(), "credit %d", credit)
		}
		for _, e := range exp.Table {
			assert.True(t, e.Consistent(), "factor %s at credit %d", e.Factor, credit)
		}
	}
}

func TestExplanationGenerator_BandEdges(t *testing.T) {
	g := service.NewExplanationGenerator()

	tests := []struct {
		name   string
		mutate func(*model.ValidatedFeatures)
		factor string
		want   string
	}{
		{"risk at 10 is low", func(f *model.ValidatedFeatures) { f.RiskRating = 10 }, "Risk Rating", "0.1"},
		{"risk at 30 is moderate", func(f *model.ValidatedFeatures) { f.RiskRating = 30 }, "Risk Rating", "0.08"},
		{"risk at 31 is high", func(f *model.ValidatedFeatures) { f.RiskRating = 31 }, "Risk Rating", "-0.15"},
		{"age 34 is young", func(f *model.ValidatedFeatures) { f.Age = 34 }, "Age", "0.18"},
		{"age 35 is middle", func(f *model.ValidatedFeatures) { f.Age = 35 }, "Age", "0.1"},
		{"age 60 is middle", func(f *model.ValidatedFeatures) { f.Age = 60 }, "Age", "0.1"},
		{"age 61 is senior", func(f *model.ValidatedFeatures) { f.Age = 61 }, "Age", "-0.2"},
		{"tenure 15 is very long", func(f *model.ValidatedFeatures) { f.RelationshipYears = 15 }, "Customer Relationship Years", "0.1"},
		{"tenure 9 is short", func(f *model.ValidatedFeatures) { f.RelationshipYears = 9 }, "Customer Relationship Years", "-0.1"},
		{"neutral transactions are negative", func(f *model.ValidatedFeatures) { f.PastTransactions = valueobject.PastTransactionsNeutral }, "Past Transactions", "-0.15"},
		{"neutral market", func(f *model.ValidatedFeatures) { f.MarketTrend = valueobject.MarketTrendNeutral }, "Market Trends", "0.02"},
		{"unfavorable market", func(f *model.ValidatedFeatures) { f.MarketTrend = valueobject.MarketTrendUnfavorable }, "Market Trends", "-0.05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fdFeatures()
			tt.mutate(&f)
			exp, err := g.Explain(f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, factor(t, exp, tt.factor).NumericalImpact.String())
		})
	}
}

func TestExplanationGenerator_Loan(t *testing.T) {
	g := service.NewExplanationGenerator()

	exp, err := g.Explain(loanFeatures())
	require.NoError(t, err)

	require.Len(t, exp.Table, 7)
	family := factor(t, exp, "Family Credit History")
	assert.Equal(t, "Good with minor issues", family.Description)
	assert.Equal(t, "0.15", family.NumericalImpact.String())

	assert.Equal(t, "Middle-aged with steady financial habits", factor(t, exp, "Age & Behavior").Description)
	assert.Equal(t, "Neutral", factor(t, exp, "Market Trends").Description)

	relationship := factor(t, exp, "Bank Relationship")
	assert.Equal(t, valueobject.ImpactNegative, relationship.Impact)
	assert.Equal(t, []string{"Relatively new customer."}, exp.NegativeReasons)

	// six positive, one negative
	assert.Equal(t, 5, exp.TotalScore())
	assert.Equal(t, valueobject.OverallProfileExcellent, exp.OverallProfile())
}

func TestExplanationGenerator_NewCustomerOverride(t *testing.T) {
	g := service.NewExplanationGenerator()

	t.Run("loan history factors are neutralised", func(t *testing.T) {
		f := loanFeatures()
		f.CreditHistory, f.RiskRating, f.RelationshipYears = 0, 0, 0

		exp, err := g.Explain(f)
		require.NoError(t, err)

		for _, name := range []string{"Credit History", "Risk Rating", "Bank Relationship"} {
			e := factor(t, exp, name)
			assert.Equal(t, valueobject.ImpactNeutral, e.Impact, name)
			assert.True(t, e.NumericalImpact.IsZero(), name)
		}
		assert.Equal(t, valueobject.ImpactPositive, factor(t, exp, "Family Credit History").Impact)

		assert.Empty(t, exp.NegativeReasons)
		assert.Len(t, exp.PositiveReasons, 4)
		assert.Equal(t, 4, exp.TotalScore())
		assert.True(t, exp.Favorability().Equal(decimal.NewFromInt(100)))
	})

	t.Run("fd is not neutralised", func(t *testing.T) {
		f := fdFeatures()
		f.CreditHistory, f.RiskRating, f.RelationshipYears = 0, 0, 0

		exp, err := g.Explain(f)
		require.NoError(t, err)
		assert.Equal(t, valueobject.ImpactNegative, factor(t, exp, "Credit History").Impact)
		assert.Equal(t, valueobject.ImpactPositive, factor(t, exp, "Risk Rating").Impact)
	})

	t.Run("partial history is not a new customer", func(t *testing.T) {
		f := loanFeatures()
		f.CreditHistory, f.RiskRating, f.RelationshipYears = 0, 0, 1

		exp, err := g.Explain(f)
		require.NoError(t, err)
		assert.Equal(t, valueobject.ImpactNegative, factor(t, exp, "Credit History").Impact)
	})
}

func TestExplanationGenerator_Deterministic(t *testing.T) {
	g := service.NewExplanationGenerator()

	first, err := g.Explain(loanFeatures())
	require.NoError(t, err)
	second, err := g.Explain(loanFeatures())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRejectionReasons(t *testing.T) {
	t.Run("each rule contributes its own suggestion", func(t *testing.T) {
		f := loanFeatures()
		f.FamilyCreditHistory = 420
		f.RiskRating = 30
		f.Age = 64
		f.PastTransactions = valueobject.PastTransactionsNegative

		reasons := service.RejectionReasons(f)
		require.Len(t, reasons, 4)
		assert.Equal(t, "Low Credit History", reasons[0].Reason)
		assert.Equal(t, "Improve your credit score by paying bills on time.", reasons[0].Suggestion)
		assert.Equal(t, "High Risk Rating", reasons[1].Reason)
		assert.Equal(t, "Ineligible Age", reasons[2].Reason)
		assert.Equal(t, "Applicants must be between 21 and 60 years old.", reasons[2].Suggestion)
		assert.Equal(t, "Negative Past Transactions", reasons[3].Reason)
	})

	t.Run("age bounds are inclusive", func(t *testing.T) {
		for _, age := range []int{21, 60} {
			f := loanFeatures()
			f.Age = age
			assert.Empty(t, service.RejectionReasons(f), "age %d", age)
		}
		f := loanFeatures()
		f.Age = 20
		assert.Len(t, service.RejectionReasons(f), 1)
	})

	t.Run("a strong profile yields no reasons", func(t *testing.T) {
		reasons := service.RejectionReasons(loanFeatures())
		assert.NotNil(t, reasons)
		assert.Empty(t, reasons)
	})
}
