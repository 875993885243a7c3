package messaging

import (
	"context"
	"fmt"

	"github.com/bibbank/decisioning/internal/domain/event"
	"github.com/bibbank/decisioning/internal/domain/port"
	"github.com/bibbank/decisioning/pkg/events"
	"github.com/bibbank/decisioning/pkg/kafka"
)

// Compile-time interface checks.
var (
	_ port.EventPublisher   = (*Publisher)(nil)
	_ events.EntryPublisher = (*Publisher)(nil)
)

// Producer is satisfied by *kafka.Producer.
type Producer interface {
	Publish(ctx context.Context, topic string, messages ...kafka.Message) error
}

// Publisher writes events to the decisioning topic, keyed by aggregate id so
// that the events of one decision stay ordered.
type Publisher struct {
	producer Producer
	topic    string
}

func NewPublisher(producer Producer, topic string) *Publisher {
	return &Publisher{producer: producer, topic: topic}
}

// Publish sends events directly, bypassing the outbox.
func (p *Publisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	entries, err := events.NewOutboxEntries(evts)
	if err != nil {
		return err
	}
	return p.PublishEntries(ctx, entries...)
}

// PublishEntries sends outbox rows as they were stored.
func (p *Publisher) PublishEntries(ctx context.Context, entries ...events.OutboxEntry) error {
	if len(entries) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(entries))
	for _, e := range entries {
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.AggregateID),
			Value: e.Payload,
			Headers: map[string]string{
				"event_id":       e.ID,
				"event_type":     e.EventType,
				"aggregate_type": e.AggregateType,
				"tenant_id":      e.TenantID,
			},
		})
	}
	if err := p.producer.Publish(ctx, p.topic, msgs...); err != nil {
		return fmt.Errorf("publish %d events: %w", len(msgs), err)
	}
	return nil
}
