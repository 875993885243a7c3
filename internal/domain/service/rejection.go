package service

import (
	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

type rejectionRule struct {
	applies func(f model.ValidatedFeatures) bool
	reason  model.RejectionReason
}

var rejectionRules = []rejectionRule{
	{
		applies: func(f model.ValidatedFeatures) bool { return f.CreditHistory < 500 || f.FamilyCreditHistory < 500 },
		reason:  model.RejectionReason{Reason: "Low Credit History", Suggestion: "Improve your credit score by paying bills on time."},
	},
	{
		applies: func(f model.ValidatedFeatures) bool { return f.RiskRating >= 30 },
		reason:  model.RejectionReason{Reason: "High Risk Rating", Suggestion: "Reduce financial risks by clearing existing debts."},
	},
	{
		applies: func(f model.ValidatedFeatures) bool { return f.Age < 21 || f.Age > 60 },
		reason:  model.RejectionReason{Reason: "Ineligible Age", Suggestion: "Applicants must be between 21 and 60 years old."},
	},
	{
		applies: func(f model.ValidatedFeatures) bool { return f.PastTransactions.Equal(valueobject.PastTransactionsNegative) },
		reason:  model.RejectionReason{Reason: "Negative Past Transactions", Suggestion: "Maintain regular positive transactions."},
	},
}

// RejectionReasons lists every rule-based cause for a declined loan, in rule
// order. The result may be empty: the oracle can decline for reasons no rule covers.
func RejectionReasons(f model.ValidatedFeatures) []model.RejectionReason {
	reasons := []model.RejectionReason{}
	for _, r := range rejectionRules {
		if r.applies(f) {
			reasons = append(reasons, r.reason)
		}
	}
	return reasons
}
