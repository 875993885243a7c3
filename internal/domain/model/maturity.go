package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MaturityQuote is the simple-interest payout of a fixed deposit.
type MaturityQuote struct {
	Amount         decimal.Decimal
	Rate           decimal.Decimal
	Years          decimal.Decimal
	MaturityAmount decimal.Decimal
	StartDate      time.Time
	MaturityDate   time.Time
}

var daysPerYear = decimal.NewFromInt(365)

// QuoteMaturity computes amount + amount*rate*years/100. The maturity date is
// the start plus whole days: floor(years * 365).
func QuoteMaturity(amount, rate, years decimal.Decimal, start time.Time) (MaturityQuote, error) {
	if !amount.IsPositive() {
		return MaturityQuote{}, &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if rate.IsNegative() {
		return MaturityQuote{}, &ValidationError{Field: "interest_rate", Reason: "must not be negative"}
	}
	if !years.IsPositive() {
		return MaturityQuote{}, &ValidationError{Field: "period", Reason: "must be positive"}
	}
	if years.GreaterThan(decimal.NewFromInt(MaxTenureYears)) {
		return MaturityQuote{}, &ValidationError{Field: "period", Reason: fmt.Sprintf("must be at most %d years", MaxTenureYears)}
	}

	interest := amount.Mul(rate).Mul(years).Div(decimal.NewFromInt(100))
	days := years.Mul(daysPerYear).Floor().IntPart()

	return MaturityQuote{
		Amount:         amount,
		Rate:           rate,
		Years:          years,
		MaturityAmount: amount.Add(interest).Round(2),
		StartDate:      start,
		MaturityDate:   start.AddDate(0, 0, int(days)),
	}, nil
}
