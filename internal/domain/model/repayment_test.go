package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/decisioning/internal/domain/model"
)

func TestPlanRepayment(t *testing.T) {
	t.Run("standard EMI", func(t *testing.T) {
		plan, err := model.PlanRepayment(decimal.NewFromInt(100000), decimal.NewFromInt(12), 1)
		require.NoError(t, err)

		assert.Equal(t, "8884.88", plan.EMI.StringFixed(2))
		assert.Equal(t, "106618.55", plan.TotalRepayment.StringFixed(2))
		assert.Equal(t, "6618.55", plan.InterestPayable.StringFixed(2))
		require.Len(t, plan.Schedule, 1)
		assert.True(t, plan.Schedule[0].ClosingBalance.IsZero())
		assert.True(t, plan.Schedule[0].Principal.Equal(decimal.NewFromInt(100000)))
	})

	t.Run("zero rate splits evenly", func(t *testing.T) {
		plan, err := model.PlanRepayment(decimal.NewFromInt(12000), decimal.Zero, 2)
		require.NoError(t, err)

		assert.True(t, plan.EMI.Equal(decimal.NewFromInt(500)))
		assert.True(t, plan.InterestPayable.IsZero())
		require.Len(t, plan.Schedule, 2)
		assert.True(t, plan.Schedule[0].ClosingBalance.Equal(decimal.NewFromInt(6000)))
		assert.True(t, plan.Schedule[1].OpeningBalance.Equal(decimal.NewFromInt(6000)))
		assert.True(t, plan.Schedule[1].ClosingBalance.IsZero())
	})

	t.Run("final year always closes at zero", func(t *testing.T) {
		plan, err := model.PlanRepayment(decimal.NewFromInt(500000), decimal.RequireFromString("9.5"), 5)
		require.NoError(t, err)
		require.Len(t, plan.Schedule, 5)
		last := plan.Schedule[4]
		assert.True(t, last.ClosingBalance.IsZero())
		assert.True(t, last.Principal.Equal(last.OpeningBalance))
		for i := 1; i < len(plan.Schedule); i++ {
			assert.True(t, plan.Schedule[i].OpeningBalance.Equal(plan.Schedule[i-1].ClosingBalance))
		}
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		_, err := model.PlanRepayment(decimal.Zero, decimal.NewFromInt(10), 1)
		assert.ErrorIs(t, err, model.ErrValidation)
		_, err = model.PlanRepayment(decimal.NewFromInt(1000), decimal.NewFromInt(-1), 1)
		assert.ErrorIs(t, err, model.ErrValidation)
		_, err = model.PlanRepayment(decimal.NewFromInt(1000), decimal.NewFromInt(10), 0)
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("tenure is capped", func(t *testing.T) {
		_, err := model.PlanRepayment(decimal.NewFromInt(100000), decimal.NewFromInt(10), model.MaxTenureYears)
		require.NoError(t, err)

		_, err = model.PlanRepayment(decimal.NewFromInt(100000), decimal.NewFromInt(10), model.MaxTenureYears+1)
		var vErr *model.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "tenure", vErr.Field)

		_, err = model.PlanRepayment(decimal.NewFromInt(100000), decimal.NewFromInt(10), 2_000_000_000)
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("rates that overflow the EMI are rejected", func(t *testing.T) {
		var plan model.RepaymentPlan
		var err error
		require.NotPanics(t, func() {
			plan, err = model.PlanRepayment(decimal.NewFromInt(100000), decimal.NewFromInt(1_000_000), model.MaxTenureYears)
		})
		var vErr *model.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "interest_rate", vErr.Field)
		assert.Empty(t, plan.Schedule)
	})
}

func TestQuoteMaturity(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("simple interest", func(t *testing.T) {
		q, err := model.QuoteMaturity(decimal.NewFromInt(10000), decimal.RequireFromString("7.5"), decimal.NewFromInt(2), start)
		require.NoError(t, err)
		assert.Equal(t, "11500.00", q.MaturityAmount.StringFixed(2))
		assert.Equal(t, time.Date(2028, 1, 1, 0, 0, 0, 0, time.UTC), q.MaturityDate)
	})

	t.Run("fractional years floor to whole days", func(t *testing.T) {
		q, err := model.QuoteMaturity(decimal.NewFromInt(10000), decimal.NewFromInt(6), decimal.RequireFromString("1.5"), start)
		require.NoError(t, err)
		assert.Equal(t, start.AddDate(0, 0, 547), q.MaturityDate)
		assert.Equal(t, "10900.00", q.MaturityAmount.StringFixed(2))
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := model.QuoteMaturity(decimal.Zero, decimal.NewFromInt(6), decimal.NewFromInt(1), start)
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("period is capped", func(t *testing.T) {
		_, err := model.QuoteMaturity(decimal.NewFromInt(10000), decimal.NewFromInt(6), decimal.NewFromInt(model.MaxTenureYears), start)
		require.NoError(t, err)

		_, err = model.QuoteMaturity(decimal.NewFromInt(10000), decimal.NewFromInt(6), decimal.RequireFromString("1e12"), start)
		var vErr *model.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "period", vErr.Field)
	})
}
