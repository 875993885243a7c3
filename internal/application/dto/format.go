package dto

import "github.com/shopspring/decimal"

// FormatPercent renders a plain percentage with two decimals and a % suffix.
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

// FormatSignedPercent is FormatPercent with an explicit + on positive values.
func FormatSignedPercent(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + FormatPercent(d)
	}
	return FormatPercent(d)
}
