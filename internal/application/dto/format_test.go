package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bibbank/decisioning/internal/application/dto"
)

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "7.46%", dto.FormatPercent(decimal.RequireFromString("7.456")))
	assert.Equal(t, "0.00%", dto.FormatPercent(decimal.Zero))
}

func TestFormatSignedPercent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.25", "+0.25%"},
		{"-0.3", "-0.30%"},
		{"0", "0.00%"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.FormatSignedPercent(decimal.RequireFromString(tt.in)))
		})
	}
}
