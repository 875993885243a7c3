package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bibbank/decisioning/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

const (
	EventTypeDecisionEvaluated    = "decisioning.decision.evaluated"
	EventTypeUnexplainedRejection = "decisioning.decision.unexplained_rejection"
	EventTypeOracleReloaded       = "decisioning.oracle.reloaded"

	aggregateDecision = "Decision"
	aggregateOracle   = "Oracle"
)

// DecisionSummary is the event-facing projection of a decision record.
type DecisionSummary struct {
	Profile          string          `json:"profile"`
	Eligible         *bool           `json:"eligible,omitempty"`
	Rate             decimal.Decimal `json:"rate"`
	MaxAmount        decimal.Decimal `json:"max_amount"`
	Confidence       string          `json:"confidence"`
	Tier             string          `json:"tier"`
	TotalScore       int             `json:"total_score"`
	Favorability     decimal.Decimal `json:"favorability"`
	OverallProfile   string          `json:"overall_profile"`
	RejectionReasons []string        `json:"rejection_reasons,omitempty"`
}

// DecisionEvaluated is raised for every successful evaluation.
type DecisionEvaluated struct {
	events.BaseEvent
	CustomerRef   string          `json:"customer_ref,omitempty"`
	OracleVersion string          `json:"oracle_version"`
	Summary       DecisionSummary `json:"summary"`
}

func NewDecisionEvaluated(decisionID, tenantID, customerRef, oracleVersion string, summary DecisionSummary, at time.Time) DecisionEvaluated {
	return DecisionEvaluated{
		BaseEvent:     events.NewBaseEvent(EventTypeDecisionEvaluated, decisionID, aggregateDecision, tenantID, at),
		CustomerRef:   customerRef,
		OracleVersion: oracleVersion,
		Summary:       summary,
	}
}

// UnexplainedRejection flags a declined loan for which no rejection rule held.
type UnexplainedRejection struct {
	events.BaseEvent
	CustomerRef   string `json:"customer_ref,omitempty"`
	OracleVersion string `json:"oracle_version"`
}

func NewUnexplainedRejection(decisionID, tenantID, customerRef, oracleVersion string, at time.Time) UnexplainedRejection {
	return UnexplainedRejection{
		BaseEvent:     events.NewBaseEvent(EventTypeUnexplainedRejection, decisionID, aggregateDecision, tenantID, at),
		CustomerRef:   customerRef,
		OracleVersion: oracleVersion,
	}
}

// OracleReloaded is raised after a new artifact set has been swapped in.
type OracleReloaded struct {
	events.BaseEvent
	PreviousVersion string   `json:"previous_version,omitempty"`
	Version         string   `json:"version"`
	Profiles        []string `json:"profiles"`
	Trigger         string   `json:"trigger"`
}

func NewOracleReloaded(previous, version string, profiles []string, trigger string, at time.Time) OracleReloaded {
	return OracleReloaded{
		BaseEvent:       events.NewBaseEvent(EventTypeOracleReloaded, version, aggregateOracle, "", at),
		PreviousVersion: previous,
		Version:         version,
		Profiles:        profiles,
		Trigger:         trigger,
	}
}
