package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// EvaluateDecisionRequest carries a raw customer profile to be decided on.
type EvaluateDecisionRequest struct {
	TenantID    string         `json:"tenant_id"`
	CustomerRef string         `json:"customer_ref,omitempty"`
	Profile     string         `json:"profile"`
	Features    map[string]any `json:"features"`
}

// GetDecisionRequest identifies an audited decision.
type GetDecisionRequest struct {
	TenantID   string `json:"tenant_id"`
	DecisionID string `json:"decision_id"`
}

// PlanRepaymentRequest carries the inputs of the EMI calculator.
type PlanRepaymentRequest struct {
	LoanAmount   decimal.Decimal `json:"loan_amount"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	TenureYears  int             `json:"tenure"`
}

// QuoteDepositRequest carries the inputs of a fixed-deposit maturity quote.
// A zero StartDate means today.
type QuoteDepositRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	PeriodYears  decimal.Decimal `json:"period"`
	StartDate    time.Time       `json:"start_date,omitempty"`
}

// ReloadOracleRequest asks for the artifact manifest to be re-read.
type ReloadOracleRequest struct {
	Trigger string `json:"trigger,omitempty"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// TierResponse is the customer category and its display colours.
type TierResponse struct {
	Label           string `json:"label"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
}

// ReasonResponse is one row of the reasons table.
type ReasonResponse struct {
	Factor          string `json:"factor"`
	Description     string `json:"description"`
	Impact          string `json:"impact"`
	NumericalImpact string `json:"numerical_impact"`
}

// RejectionResponse pairs a reason with the suggested remedy.
type RejectionResponse struct {
	Reason     string `json:"reason"`
	Suggestion string `json:"suggestion"`
}

// ChartData is the factor impact series in table order.
type ChartData struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// DiagnosticsResponse surfaces non-fatal observations.
type DiagnosticsResponse struct {
	UnexplainedRejection bool   `json:"unexplained_rejection,omitempty"`
	ConfidenceNote       string `json:"confidence_note,omitempty"`
}

// DecisionResponse is the external representation of an evaluated decision.
// Rates are plain decimals; the *Display fields carry the formatted text.
type DecisionResponse struct {
	ID                  string              `json:"id"`
	TenantID            string              `json:"tenant_id"`
	CustomerRef         string              `json:"customer_ref,omitempty"`
	Profile             string              `json:"profile"`
	OracleVersion       string              `json:"oracle_version"`
	Eligible            *bool               `json:"eligible,omitempty"`
	InterestRate        decimal.Decimal     `json:"interest_rate"`
	InterestRateDisplay string              `json:"interest_rate_display"`
	MaxAmount           *decimal.Decimal    `json:"max_amount,omitempty"`
	Confidence          string              `json:"confidence"`
	ConfidenceDisplay   string              `json:"confidence_display"`
	Tier                TierResponse        `json:"tier"`
	ReasonsTable        []ReasonResponse    `json:"reasons_table"`
	PositiveReasons     []string            `json:"positive_reasons"`
	NegativeReasons     []string            `json:"negative_reasons"`
	TotalScore          int                 `json:"total_score"`
	Favorability        decimal.Decimal     `json:"favorability"`
	OverallProfile      string              `json:"overall_profile"`
	Rejections          []RejectionResponse `json:"rejections,omitempty"`
	ChartData           ChartData           `json:"chart_data"`
	Diagnostics         DiagnosticsResponse `json:"diagnostics"`
	Cached              bool                `json:"cached"`
	EvaluatedAt         time.Time           `json:"evaluated_at"`
}

// RepaymentYearResponse is one year of the amortization schedule.
type RepaymentYearResponse struct {
	Year           int             `json:"year"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Paid           decimal.Decimal `json:"paid"`
	Interest       decimal.Decimal `json:"interest"`
	Principal      decimal.Decimal `json:"principal"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}

// RepaymentPlanResponse is the EMI calculator's result.
type RepaymentPlanResponse struct {
	LoanAmount      decimal.Decimal         `json:"loan_amount"`
	InterestRate    decimal.Decimal         `json:"interest_rate"`
	TenureYears     int                     `json:"tenure"`
	EMI             decimal.Decimal         `json:"emi"`
	TotalRepayment  decimal.Decimal         `json:"total_repayment"`
	InterestPayable decimal.Decimal         `json:"interest_payable"`
	Schedule        []RepaymentYearResponse `json:"schedule"`
}

// DepositQuoteResponse is a fixed-deposit maturity quote.
type DepositQuoteResponse struct {
	Amount         decimal.Decimal `json:"amount"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	PeriodYears    decimal.Decimal `json:"period"`
	MaturityAmount decimal.Decimal `json:"maturity_amount"`
	StartDate      time.Time       `json:"start_date"`
	MaturityDate   time.Time       `json:"maturity_date"`
}

// ReloadOracleResponse describes the outcome of a reload.
type ReloadOracleResponse struct {
	PreviousVersion string   `json:"previous_version,omitempty"`
	Version         string   `json:"version"`
	Profiles        []string `json:"profiles"`
	Changed         bool     `json:"changed"`
}
