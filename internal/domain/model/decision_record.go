package model

import (
	"github.com/shopspring/decimal"

	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

// PredictionResult is what the oracle contributed to a decision.
// Rate and MaxAmount are zero for an ineligible loan.
type PredictionResult struct {
	Profile   valueobject.Profile
	Eligible  bool
	Rate      decimal.Decimal
	MaxAmount decimal.Decimal
}

// RejectionReason pairs a rule-based ineligibility cause with a remediation hint.
type RejectionReason struct {
	Reason     string
	Suggestion string
}

// Diagnostics carries non-fatal observations made while deciding.
type Diagnostics struct {
	// UnexplainedRejection is set when the oracle declined a loan but no
	// rejection rule matched.
	UnexplainedRejection bool
	ConfidenceNote       string
}

// DecisionRecord is the complete output of one evaluation.
type DecisionRecord struct {
	Prediction  PredictionResult
	Confidence  valueobject.Confidence
	Tier        valueobject.CustomerTier
	Explanation Explanation
	Rejections  []RejectionReason
	Diagnostics Diagnostics
}

func (r DecisionRecord) Profile() valueobject.Profile { return r.Prediction.Profile }

// Eligible is always true for FD decisions, which have no eligibility gate.
func (r DecisionRecord) Eligible() bool {
	return !r.Prediction.Profile.IsLoan() || r.Prediction.Eligible
}
