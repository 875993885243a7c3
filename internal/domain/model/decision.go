package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/decisioning/internal/domain/event"
	"github.com/bibbank/decisioning/pkg/events"
)

// Decision is the audited envelope around a DecisionRecord.
type Decision struct {
	id            string
	tenantID      string
	customerRef   string
	oracleVersion string
	record        DecisionRecord
	evaluatedAt   time.Time

	events.Collector
}

// NewDecision wraps a freshly evaluated record and raises its events.
func NewDecision(tenantID, customerRef, oracleVersion string, record DecisionRecord, now time.Time) (Decision, error) {
	if record.Profile().IsZero() {
		return Decision{}, errors.New("decision record has no profile")
	}
	if oracleVersion == "" {
		return Decision{}, errors.New("oracle version is required")
	}

	d := Decision{
		id:            uuid.NewString(),
		tenantID:      tenantID,
		customerRef:   customerRef,
		oracleVersion: oracleVersion,
		record:        record,
		evaluatedAt:   now.UTC(),
	}

	d.Record(event.NewDecisionEvaluated(d.id, tenantID, customerRef, oracleVersion, summarize(record), d.evaluatedAt))
	if record.Diagnostics.UnexplainedRejection {
		d.Record(event.NewUnexplainedRejection(d.id, tenantID, customerRef, oracleVersion, d.evaluatedAt))
	}
	return d, nil
}

// ReconstructDecision rebuilds a decision from persistence without raising events.
func ReconstructDecision(id, tenantID, customerRef, oracleVersion string, record DecisionRecord, evaluatedAt time.Time) Decision {
	return Decision{
		id:            id,
		tenantID:      tenantID,
		customerRef:   customerRef,
		oracleVersion: oracleVersion,
		record:        record,
		evaluatedAt:   evaluatedAt,
	}
}

func (d Decision) ID() string { return d.id }

func (d Decision) TenantID() string { return d.tenantID }

func (d Decision) CustomerRef() string { return d.customerRef }

func (d Decision) OracleVersion() string { return d.oracleVersion }

func (d Decision) DecisionRecord() DecisionRecord { return d.record }

func (d Decision) EvaluatedAt() time.Time { return d.evaluatedAt }

func summarize(r DecisionRecord) event.DecisionSummary {
	s := event.DecisionSummary{
		Profile:        r.Profile().String(),
		Rate:           r.Prediction.Rate,
		MaxAmount:      r.Prediction.MaxAmount,
		Confidence:     r.Confidence.String(),
		Tier:           r.Tier.Label(),
		TotalScore:     r.Explanation.TotalScore(),
		Favorability:   r.Explanation.Favorability(),
		OverallProfile: r.Explanation.OverallProfile().String(),
	}
	if r.Profile().IsLoan() {
		eligible := r.Prediction.Eligible
		s.Eligible = &eligible
		for _, rej := range r.Rejections {
			s.RejectionReasons = append(s.RejectionReasons, rej.Reason)
		}
	}
	return s
}
