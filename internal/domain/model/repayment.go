package model

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// MaxTenureYears caps loan tenures and deposit periods accepted by the calculators.
const MaxTenureYears = 50

// RepaymentYear is one row of a yearly amortization schedule.
type RepaymentYear struct {
	Year           int
	OpeningBalance decimal.Decimal
	Paid           decimal.Decimal
	Interest       decimal.Decimal
	Principal      decimal.Decimal
	ClosingBalance decimal.Decimal
}

// RepaymentPlan is a fixed-EMI loan repayment summary.
type RepaymentPlan struct {
	Principal       decimal.Decimal
	AnnualRate      decimal.Decimal
	Years           int
	EMI             decimal.Decimal
	TotalRepayment  decimal.Decimal
	InterestPayable decimal.Decimal
	Schedule        []RepaymentYear
}

// PlanRepayment computes the monthly instalment for a loan and its yearly schedule.
//
//	r   = annualRate / 12 / 100
//	n   = years * 12
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1), or P / n when r is zero
//
// Yearly interest is charged on the opening balance at the annual rate and the
// final year pays off whatever remains. Monetary outputs are rounded to cents.
func PlanRepayment(principal, annualRate decimal.Decimal, years int) (RepaymentPlan, error) {
	if !principal.IsPositive() {
		return RepaymentPlan{}, &ValidationError{Field: "loan_amount", Reason: "must be positive"}
	}
	if annualRate.IsNegative() {
		return RepaymentPlan{}, &ValidationError{Field: "interest_rate", Reason: "must not be negative"}
	}
	if years <= 0 {
		return RepaymentPlan{}, &ValidationError{Field: "tenure", Reason: "must be at least one year"}
	}
	if years > MaxTenureYears {
		return RepaymentPlan{}, &ValidationError{Field: "tenure", Reason: fmt.Sprintf("must be at most %d years", MaxTenureYears)}
	}

	months := years * 12
	monthlyRate := annualRate.InexactFloat64() / 12 / 100

	var emi float64
	if monthlyRate == 0 {
		emi = principal.InexactFloat64() / float64(months)
	} else {
		factor := math.Pow(1+monthlyRate, float64(months))
		emi = principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
	}
	if math.IsNaN(emi) || math.IsInf(emi, 0) {
		return RepaymentPlan{}, &ValidationError{Field: "interest_rate", Reason: "too large to amortize"}
	}
	emiDec := decimal.NewFromFloat(emi)
	total := emiDec.Mul(decimal.NewFromInt(int64(months)))

	plan := RepaymentPlan{
		Principal:       principal,
		AnnualRate:      annualRate,
		Years:           years,
		EMI:             emiDec.Round(2),
		TotalRepayment:  total.Round(2),
		InterestPayable: total.Sub(principal).Round(2),
		Schedule:        make([]RepaymentYear, 0, years),
	}

	yearly := emiDec.Mul(decimal.NewFromInt(12))
	annual := annualRate.Div(decimal.NewFromInt(100))
	remaining := principal
	for year := 1; year <= years; year++ {
		interest := remaining.Mul(annual)
		principalPaid := yearly.Sub(interest)
		closing := remaining.Sub(principalPaid)

		if year == years {
			principalPaid = remaining
			closing = decimal.Zero
		}
		if closing.IsNegative() {
			closing = decimal.Zero
		}

		plan.Schedule = append(plan.Schedule, RepaymentYear{
			Year:           year,
			OpeningBalance: remaining.Round(2),
			Paid:           yearly.Round(2),
			Interest:       interest.Round(2),
			Principal:      principalPaid.Round(2),
			ClosingBalance: closing.Round(2),
		})
		remaining = closing
	}

	return plan, nil
}
