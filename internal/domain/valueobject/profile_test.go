package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

func TestProfileFromString(t *testing.T) {
	tests := []struct {
		input string
		want  valueobject.Profile
	}{
		{"FD", valueobject.ProfileFD},
		{"fd", valueobject.ProfileFD},
		{"fixed_deposit", valueobject.ProfileFD},
		{"LOAN", valueobject.ProfileLoan},
		{" loan ", valueobject.ProfileLoan},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := valueobject.ProfileFromString(tt.input)
			require.NoError(t, err)
			assert.True(t, p.Equal(tt.want))
		})
	}

	t.Run("rejects unknown profile", func(t *testing.T) {
		_, err := valueobject.ProfileFromString("MORTGAGE")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid profile")
	})
}

func TestProfile_Accessors(t *testing.T) {
	assert.Equal(t, "fd", valueobject.ProfileFD.Key())
	assert.Equal(t, "loan", valueobject.ProfileLoan.Key())
	assert.True(t, valueobject.ProfileLoan.IsLoan())
	assert.False(t, valueobject.ProfileFD.IsLoan())

	var zero valueobject.Profile
	assert.True(t, zero.IsZero())
	assert.Len(t, valueobject.Profiles(), 2)
}

func TestPastTransactionsFromString(t *testing.T) {
	t.Run("neutral is accepted for FD", func(t *testing.T) {
		pt, err := valueobject.PastTransactionsFromString(valueobject.ProfileFD, "Neutral")
		require.NoError(t, err)
		assert.True(t, pt.Equal(valueobject.PastTransactionsNeutral))
	})

	t.Run("neutral is rejected for loans", func(t *testing.T) {
		_, err := valueobject.PastTransactionsFromString(valueobject.ProfileLoan, "Neutral")
		assert.Error(t, err)
	})

	t.Run("values are case sensitive", func(t *testing.T) {
		_, err := valueobject.PastTransactionsFromString(valueobject.ProfileFD, "positive")
		assert.Error(t, err)
	})

	t.Run("negative is accepted for both", func(t *testing.T) {
		for _, p := range valueobject.Profiles() {
			pt, err := valueobject.PastTransactionsFromString(p, "Negative")
			require.NoError(t, err)
			assert.Equal(t, "Negative", pt.String())
		}
	})
}

func TestMarketTrendFromString(t *testing.T) {
	for _, s := range []string{"Favorable", "Neutral", "Unfavorable"} {
		mt, err := valueobject.MarketTrendFromString(s)
		require.NoError(t, err)
		assert.Equal(t, s, mt.String())
	}

	_, err := valueobject.MarketTrendFromString("Unknown")
	assert.Error(t, err)
}
