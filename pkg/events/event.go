// Package events holds the domain event contract shared by aggregates, the
// transactional outbox and the Kafka relay.
package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is the interface all domain events must implement.
type DomainEvent interface {
	EventID() string
	EventType() string
	AggregateID() string
	AggregateType() string
	TenantID() string
	OccurredAt() time.Time
}

// BaseEvent carries the envelope fields. It is embedded by concrete events so
// that the envelope is serialised alongside the event body.
type BaseEvent struct {
	ID        string    `json:"event_id"`
	Type      string    `json:"event_type"`
	Aggregate string    `json:"aggregate_id"`
	Kind      string    `json:"aggregate_type"`
	Tenant    string    `json:"tenant_id,omitempty"`
	At        time.Time `json:"occurred_at"`
}

// NewBaseEvent creates an envelope with a fresh event id stamped at the given time.
func NewBaseEvent(eventType, aggregateID, aggregateType, tenantID string, at time.Time) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Aggregate: aggregateID,
		Kind:      aggregateType,
		Tenant:    tenantID,
		At:        at.UTC(),
	}
}

func (e BaseEvent) EventID() string { return e.ID }

func (e BaseEvent) EventType() string { return e.Type }

func (e BaseEvent) AggregateID() string { return e.Aggregate }

func (e BaseEvent) AggregateType() string { return e.Kind }

func (e BaseEvent) TenantID() string { return e.Tenant }

func (e BaseEvent) OccurredAt() time.Time { return e.At }
