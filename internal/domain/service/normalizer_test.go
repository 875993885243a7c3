package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/internal/domain/service"
	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

func TestFeatureNormalizer_Normalize(t *testing.T) {
	n := service.NewFeatureNormalizer()

	t.Run("coerces and encodes a FD profile", func(t *testing.T) {
		raw := fdInput()
		raw[model.FieldCreditHistory] = "780"
		raw[model.FieldAge] = 29.0
		raw["Customer_Name"] = "ignored"

		f, err := n.Normalize(raw, valueobject.ProfileFD, fdEncodings())
		require.NoError(t, err)

		assert.Equal(t, 780, f.CreditHistory)
		assert.Equal(t, 29, f.Age)
		assert.True(t, f.MarketTrend.Equal(valueobject.MarketTrendFavorable))

		code, ok := f.Code(model.FieldPastTransactions)
		require.True(t, ok)
		assert.Equal(t, 2, code)
	})

	t.Run("out of domain numbers pass through", func(t *testing.T) {
		raw := fdInput()
		raw[model.FieldRiskRating] = 150

		f, err := n.Normalize(raw, valueobject.ProfileFD, fdEncodings())
		require.NoError(t, err)
		assert.Equal(t, 150, f.RiskRating)
	})

	t.Run("missing field is a validation error", func(t *testing.T) {
		raw := loanInput()
		delete(raw, model.FieldFamilyCreditHistory)

		_, err := n.Normalize(raw, valueobject.ProfileLoan, loanEncodings())
		var vErr *model.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, model.FieldFamilyCreditHistory, vErr.Field)
	})

	t.Run("nil field is a validation error", func(t *testing.T) {
		raw := fdInput()
		raw[model.FieldAge] = nil

		_, err := n.Normalize(raw, valueobject.ProfileFD, fdEncodings())
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("non-numeric text is rejected", func(t *testing.T) {
		raw := fdInput()
		raw[model.FieldAge] = "thirty"

		_, err := n.Normalize(raw, valueobject.ProfileFD, fdEncodings())
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("numeric text is read as base 10", func(t *testing.T) {
		raw := fdInput()
		raw[model.FieldCreditHistory] = "0750"

		f, err := n.Normalize(raw, valueobject.ProfileFD, fdEncodings())
		require.NoError(t, err)
		assert.Equal(t, 750, f.CreditHistory)

		exp, err := service.NewExplanationGenerator().Explain(f)
		require.NoError(t, err)
		assert.Equal(t, "Excellent credit history", exp.Table[0].Description)
		assert.Equal(t, valueobject.ImpactPositive, exp.Table[0].Impact)
	})

	t.Run("hex text is rejected", func(t *testing.T) {
		raw := fdInput()
		raw[model.FieldCreditHistory] = "0x2EE"

		_, err := n.Normalize(raw, valueobject.ProfileFD, fdEncodings())
		var vErr *model.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, model.FieldCreditHistory, vErr.Field)
	})

	t.Run("fractional numbers are rejected", func(t *testing.T) {
		for _, v := range []any{750.9, "750.9"} {
			raw := fdInput()
			raw[model.FieldCreditHistory] = v

			_, err := n.Normalize(raw, valueobject.ProfileFD, fdEncodings())
			assert.ErrorIs(t, err, model.ErrValidation, "%v", v)
		}

		raw := fdInput()
		raw[model.FieldAge] = 60.5
		_, err := n.Normalize(raw, valueobject.ProfileFD, fdEncodings())
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("booleans are rejected for numeric fields", func(t *testing.T) {
		raw := fdInput()
		raw[model.FieldRelationshipYears] = true

		_, err := n.Normalize(raw, valueobject.ProfileFD, fdEncodings())
		var vErr *model.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, model.FieldRelationshipYears, vErr.Field)
	})

	t.Run("categorical value must be text", func(t *testing.T) {
		raw := fdInput()
		raw[model.FieldMarketTrends] = 1

		_, err := n.Normalize(raw, valueobject.ProfileFD, fdEncodings())
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("unknown category is an encoding error", func(t *testing.T) {
		raw := fdInput()
		raw[model.FieldMarketTrends] = "Unknown"

		_, err := n.Normalize(raw, valueobject.ProfileFD, fdEncodings())
		var encErr *model.EncodingError
		require.True(t, errors.As(err, &encErr))
		assert.Equal(t, model.FieldMarketTrends, encErr.Field)
		assert.Equal(t, "Unknown", encErr.Value)
	})

	t.Run("loan rejects neutral past transactions", func(t *testing.T) {
		raw := loanInput()
		raw[model.FieldPastTransactions] = "Neutral"

		_, err := n.Normalize(raw, valueobject.ProfileLoan, loanEncodings())
		assert.ErrorIs(t, err, model.ErrEncoding)

		_, err = n.Normalize(raw, valueobject.ProfileLoan, fdEncodings())
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("encoding table without a declared field is an oracle mismatch", func(t *testing.T) {
		table := model.NewEncodingTable(map[string][]string{
			model.FieldPastTransactions: {"Negative", "Neutral", "Positive"},
		})

		_, err := n.Normalize(fdInput(), valueobject.ProfileFD, table)
		assert.ErrorIs(t, err, model.ErrOracleUnavailable)
	})
}
