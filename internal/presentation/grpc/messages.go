package grpc

import "google.golang.org/protobuf/types/known/timestamppb"

// Proto-aligned request/response message types.

type EvaluateRequest struct {
	Profile     string         `json:"profile"`
	CustomerRef string         `json:"customer_ref,omitempty"`
	Features    map[string]any `json:"features"`
}

type EvaluateResponse struct {
	Decision *DecisionMsg `json:"decision"`
}

type GetDecisionRequest struct {
	ID string `json:"id"`
}

type GetDecisionResponse struct {
	Decision *DecisionMsg `json:"decision"`
}

type TierMsg struct {
	Label           string `json:"label"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
}

type ReasonMsg struct {
	Factor          string `json:"factor"`
	Description     string `json:"description"`
	Impact          string `json:"impact"`
	NumericalImpact string `json:"numerical_impact"`
}

type RejectionMsg struct {
	Reason     string `json:"reason"`
	Suggestion string `json:"suggestion"`
}

type ChartMsg struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type DecisionMsg struct {
	ID                   string                 `json:"id"`
	TenantID             string                 `json:"tenant_id"`
	CustomerRef          string                 `json:"customer_ref,omitempty"`
	Profile              string                 `json:"profile"`
	OracleVersion        string                 `json:"oracle_version"`
	Eligible             *bool                  `json:"eligible,omitempty"`
	InterestRate         string                 `json:"interest_rate"`
	InterestRateDisplay  string                 `json:"interest_rate_display"`
	MaxAmount            string                 `json:"max_amount,omitempty"`
	Confidence           string                 `json:"confidence"`
	ConfidenceDisplay    string                 `json:"confidence_display"`
	Tier                 *TierMsg               `json:"tier"`
	Reasons              []*ReasonMsg           `json:"reasons"`
	PositiveReasons      []string               `json:"positive_reasons"`
	NegativeReasons      []string               `json:"negative_reasons"`
	TotalScore           int32                  `json:"total_score"`
	Favorability         string                 `json:"favorability"`
	OverallProfile       string                 `json:"overall_profile"`
	Rejections           []*RejectionMsg        `json:"rejections,omitempty"`
	Chart                *ChartMsg              `json:"chart"`
	UnexplainedRejection bool                   `json:"unexplained_rejection,omitempty"`
	ConfidenceNote       string                 `json:"confidence_note,omitempty"`
	Cached               bool                   `json:"cached"`
	EvaluatedAt          *timestamppb.Timestamp `json:"evaluated_at"`
}

type PlanRepaymentRequest struct {
	LoanAmount   string `json:"loan_amount"`
	InterestRate string `json:"interest_rate"`
	TenureYears  int32  `json:"tenure"`
}

type RepaymentYearMsg struct {
	Year           int32  `json:"year"`
	OpeningBalance string `json:"opening_balance"`
	Paid           string `json:"paid"`
	Interest       string `json:"interest"`
	Principal      string `json:"principal"`
	ClosingBalance string `json:"closing_balance"`
}

type PlanRepaymentResponse struct {
	EMI             string              `json:"emi"`
	TotalRepayment  string              `json:"total_repayment"`
	InterestPayable string              `json:"interest_payable"`
	Schedule        []*RepaymentYearMsg `json:"schedule"`
}

type QuoteDepositRequest struct {
	Amount       string                 `json:"amount"`
	InterestRate string                 `json:"interest_rate"`
	PeriodYears  string                 `json:"period"`
	StartDate    *timestamppb.Timestamp `json:"start_date,omitempty"`
}

type QuoteDepositResponse struct {
	MaturityAmount string                 `json:"maturity_amount"`
	StartDate      *timestamppb.Timestamp `json:"start_date"`
	MaturityDate   *timestamppb.Timestamp `json:"maturity_date"`
}

type ReloadOracleRequest struct{}

type ReloadOracleResponse struct {
	PreviousVersion string   `json:"previous_version,omitempty"`
	Version         string   `json:"version"`
	Profiles        []string `json:"profiles"`
	Changed         bool     `json:"changed"`
}
