package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/internal/domain/port"
	"github.com/bibbank/decisioning/internal/infrastructure/codec"
	"github.com/bibbank/decisioning/pkg/events"
	pgpkg "github.com/bibbank/decisioning/pkg/postgres"
)

// Compile-time interface check.
var _ port.DecisionRepository = (*DecisionRepo)(nil)

// DecisionRepo is the audit store. Each decision is written together with
// its outbox rows.
type DecisionRepo struct {
	pool *pgxpool.Pool
}

func NewDecisionRepo(pool *pgxpool.Pool) *DecisionRepo {
	return &DecisionRepo{pool: pool}
}

func (r *DecisionRepo) Save(ctx context.Context, d model.Decision) error {
	record := d.DecisionRecord()
	payload, err := codec.EncodeRecord(record)
	if err != nil {
		return fmt.Errorf("encode decision record: %w", err)
	}
	entries, err := events.NewOutboxEntries(d.DomainEvents())
	if err != nil {
		return err
	}

	return pgpkg.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO decisions (
				id, tenant_id, customer_ref, profile, oracle_version, eligible,
				interest_rate, max_amount, confidence, tier, total_score,
				favorability, overall_profile, record, evaluated_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		`, d.ID(), d.TenantID(), d.CustomerRef(), record.Profile().String(), d.OracleVersion(),
			record.Eligible(), record.Prediction.Rate, record.Prediction.MaxAmount,
			record.Confidence.String(), record.Tier.Label(), record.Explanation.TotalScore(),
			record.Explanation.Favorability().Round(4), record.Explanation.OverallProfile().String(),
			payload, d.EvaluatedAt())
		if err != nil {
			return fmt.Errorf("insert decision: %w", err)
		}

		return insertOutbox(ctx, tx, entries)
	})
}

func (r *DecisionRepo) FindByID(ctx context.Context, tenantID, id string) (model.Decision, error) {
	var (
		decisionID    string
		tenant        string
		customerRef   string
		oracleVersion string
		payload       []byte
		evaluatedAt   time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, tenant_id, customer_ref, oracle_version, record, evaluated_at
		FROM decisions
		WHERE tenant_id = $1 AND id::text = $2
	`, tenantID, id).Scan(&decisionID, &tenant, &customerRef, &oracleVersion, &payload, &evaluatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Decision{}, model.ErrDecisionNotFound
		}
		return model.Decision{}, fmt.Errorf("query decision: %w", err)
	}

	record, err := codec.DecodeRecord(payload)
	if err != nil {
		return model.Decision{}, err
	}
	return model.ReconstructDecision(decisionID, tenant, customerRef, oracleVersion, record, evaluatedAt.UTC()), nil
}

func insertOutbox(ctx context.Context, q pgpkg.Querier, entries []events.OutboxEntry) error {
	for _, e := range entries {
		_, err := q.Exec(ctx, `
			INSERT INTO outbox (id, aggregate_id, aggregate_type, event_type, tenant_id, payload, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, e.ID, e.AggregateID, e.AggregateType, e.EventType, e.TenantID, e.Payload, e.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert outbox event: %w", err)
		}
	}
	return nil
}
