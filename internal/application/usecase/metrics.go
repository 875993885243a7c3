package usecase

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the decision instruments. A nil *Metrics records nothing.
type Metrics struct {
	evaluations metric.Int64Counter
	latency     metric.Float64Histogram
	cacheHits   metric.Int64Counter
	reloads     metric.Int64Counter
}

// NewMetrics registers the decision instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	evaluations, err := meter.Int64Counter("decisioning.evaluations",
		metric.WithDescription("Decision evaluations by profile and outcome"))
	if err != nil {
		return nil, fmt.Errorf("evaluations counter: %w", err)
	}
	latency, err := meter.Float64Histogram("decisioning.evaluation.duration",
		metric.WithDescription("Evaluation latency"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("latency histogram: %w", err)
	}
	cacheHits, err := meter.Int64Counter("decisioning.cache.hits",
		metric.WithDescription("Evaluations served from the decision cache"))
	if err != nil {
		return nil, fmt.Errorf("cache hits counter: %w", err)
	}
	reloads, err := meter.Int64Counter("decisioning.oracle.reloads",
		metric.WithDescription("Oracle reload attempts by result"))
	if err != nil {
		return nil, fmt.Errorf("reloads counter: %w", err)
	}
	return &Metrics{evaluations: evaluations, latency: latency, cacheHits: cacheHits, reloads: reloads}, nil
}

func (m *Metrics) recordEvaluation(ctx context.Context, profile, outcome string, started time.Time) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("profile", profile),
		attribute.String("outcome", outcome),
	)
	m.evaluations.Add(ctx, 1, attrs)
	m.latency.Record(ctx, time.Since(started).Seconds(), attrs)
}

func (m *Metrics) recordCacheHit(ctx context.Context, profile string) {
	if m == nil {
		return
	}
	m.cacheHits.Add(ctx, 1, metric.WithAttributes(attribute.String("profile", profile)))
}

func (m *Metrics) recordReload(ctx context.Context, result string) {
	if m == nil {
		return
	}
	m.reloads.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
