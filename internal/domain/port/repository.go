package port

import (
	"context"

	"github.com/bibbank/decisioning/internal/domain/event"
	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

// DecisionRepository defines the audit persistence port.
type DecisionRepository interface {
	// Save stores the decision together with its pending domain events.
	Save(ctx context.Context, decision model.Decision) error

	// FindByID returns model.ErrDecisionNotFound when no decision matches.
	FindByID(ctx context.Context, tenantID, id string) (model.Decision, error)
}

// EventPublisher defines the port for publishing domain events directly.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// CacheKey identifies an evaluation: the same raw features against the same
// oracle version always produce the same record.
type CacheKey struct {
	Profile       valueobject.Profile
	OracleVersion string
	Features      map[string]any
}

// DecisionCache short-circuits repeated evaluations of identical inputs.
type DecisionCache interface {
	Get(ctx context.Context, key CacheKey) (model.DecisionRecord, bool, error)
	Set(ctx context.Context, key CacheKey, record model.DecisionRecord) error
}

// AnalyticsSink receives decisions for offline monitoring.
type AnalyticsSink interface {
	Record(ctx context.Context, decision model.Decision) error
}
