package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

func entry(impact valueobject.Impact, numeric string) model.ReasonEntry {
	return model.ReasonEntry{Factor: "f", Impact: impact, NumericalImpact: decimal.RequireFromString(numeric)}
}

func TestReasonEntry_Consistent(t *testing.T) {
	assert.True(t, entry(valueobject.ImpactPositive, "0.25").Consistent())
	assert.True(t, entry(valueobject.ImpactNegative, "-0.30").Consistent())
	assert.True(t, entry(valueobject.ImpactNeutral, "0").Consistent())

	assert.False(t, entry(valueobject.ImpactPositive, "-0.10").Consistent())
	assert.False(t, entry(valueobject.ImpactNegative, "0.10").Consistent())
	assert.False(t, entry(valueobject.ImpactNeutral, "0.02").Consistent())
}

func TestSummaryTable_Aggregates(t *testing.T) {
	t.Run("seven of ten positive is exactly seventy", func(t *testing.T) {
		var table model.SummaryTable
		for i := 0; i < 7; i++ {
			table = append(table, entry(valueobject.ImpactPositive, "0.10"))
		}
		for i := 0; i < 3; i++ {
			table = append(table, entry(valueobject.ImpactNegative, "-0.10"))
		}

		assert.True(t, table.Favorability().Equal(decimal.NewFromInt(70)))
		assert.Equal(t, valueobject.OverallProfileExcellent, table.OverallProfile())
		assert.Equal(t, 4, table.TotalScore())
	})

	t.Run("neutral entries are excluded from favorability", func(t *testing.T) {
		table := model.SummaryTable{
			entry(valueobject.ImpactNeutral, "0"),
			entry(valueobject.ImpactNeutral, "0"),
			entry(valueobject.ImpactPositive, "0.10"),
			entry(valueobject.ImpactNegative, "-0.10"),
		}
		pos, neg := table.Counts()
		assert.Equal(t, 1, pos)
		assert.Equal(t, 1, neg)
		assert.True(t, table.Favorability().Equal(decimal.NewFromInt(50)))
		assert.Equal(t, 0, table.TotalScore())
	})

	t.Run("all neutral gives zero favorability", func(t *testing.T) {
		table := model.SummaryTable{entry(valueobject.ImpactNeutral, "0")}
		assert.True(t, table.Favorability().IsZero())
		assert.Equal(t, valueobject.OverallProfilePoor, table.OverallProfile())
	})

	t.Run("chart series follows table order", func(t *testing.T) {
		table := model.SummaryTable{
			{Factor: "Credit History", Impact: valueobject.ImpactPositive, NumericalImpact: decimal.RequireFromString("0.25")},
			{Factor: "Market Trends", Impact: valueobject.ImpactNegative, NumericalImpact: decimal.RequireFromString("-0.05")},
		}
		labels, values := table.ChartSeries()
		assert.Equal(t, []string{"Credit History", "Market Trends"}, labels)
		assert.Equal(t, []float64{0.25, -0.05}, values)
	})
}
