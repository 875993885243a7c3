package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bibbank/decisioning/internal/application/dto"
	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/internal/domain/port"
	"github.com/bibbank/decisioning/internal/domain/service"
	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

// Evaluator runs the decision engine.
type Evaluator interface {
	Evaluate(profile valueobject.Profile, raw map[string]any) (service.Evaluation, error)
}

// EvaluateDecisionUseCase evaluates a customer profile, audits the decision and
// fans it out to the cache and analytics.
type EvaluateDecisionUseCase struct {
	engine    Evaluator
	oracles   port.OracleProvider
	repo      port.DecisionRepository
	cache     port.DecisionCache
	analytics port.AnalyticsSink
	metrics   *Metrics
	tracer    trace.Tracer
	logger    *slog.Logger
	now       func() time.Time
}

// NewEvaluateDecisionUseCase wires dependencies. cache, analytics and metrics may be nil.
func NewEvaluateDecisionUseCase(
	engine Evaluator,
	oracles port.OracleProvider,
	repo port.DecisionRepository,
	cache port.DecisionCache,
	analytics port.AnalyticsSink,
	metrics *Metrics,
	logger *slog.Logger,
) *EvaluateDecisionUseCase {
	return &EvaluateDecisionUseCase{
		engine:    engine,
		oracles:   oracles,
		repo:      repo,
		cache:     cache,
		analytics: analytics,
		metrics:   metrics,
		tracer:    otel.Tracer("github.com/bibbank/decisioning/usecase"),
		logger:    logger,
		now:       time.Now,
	}
}

// Execute evaluates and persists one decision.
func (uc *EvaluateDecisionUseCase) Execute(
	ctx context.Context,
	req dto.EvaluateDecisionRequest,
) (dto.DecisionResponse, error) {
	started := uc.now()

	profile, err := valueobject.ProfileFromString(req.Profile)
	if err != nil {
		return dto.DecisionResponse{}, &model.ValidationError{Field: "profile", Reason: err.Error()}
	}

	ctx, span := uc.tracer.Start(ctx, "EvaluateDecision",
		trace.WithAttributes(attribute.String("decision.profile", profile.Key())))
	defer span.End()

	// 1. Cache lookup against the oracle version currently serving the profile.
	record, version, cached := uc.lookup(ctx, profile, req.Features)

	// 2. Run the engine on a miss.
	if !cached {
		evaluation, err := uc.engine.Evaluate(profile, req.Features)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "evaluation failed")
			uc.metrics.recordEvaluation(ctx, profile.Key(), "error", started)
			return dto.DecisionResponse{}, fmt.Errorf("evaluate decision: %w", err)
		}
		record, version = evaluation.Record, evaluation.OracleVersion
	}

	// 3. Wrap in the audited envelope.
	decision, err := model.NewDecision(req.TenantID, req.CustomerRef, version, record, uc.now())
	if err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("create decision: %w", err)
	}

	// 4. Persist together with the outbox events.
	if err := uc.repo.Save(ctx, decision); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		uc.metrics.recordEvaluation(ctx, profile.Key(), "error", started)
		return dto.DecisionResponse{}, fmt.Errorf("save decision: %w", err)
	}

	// 5. Best-effort fan-out.
	if uc.analytics != nil {
		if err := uc.analytics.Record(ctx, decision); err != nil {
			uc.logger.Warn("analytics sink rejected decision", "decision_id", decision.ID(), "error", err)
		}
	}
	if uc.cache != nil && !cached {
		key := port.CacheKey{Profile: profile, OracleVersion: version, Features: req.Features}
		if err := uc.cache.Set(ctx, key, record); err != nil {
			uc.logger.Warn("decision cache fill failed", "error", err)
		}
	}

	outcome := "eligible"
	if !record.Eligible() {
		outcome = "ineligible"
	}
	uc.metrics.recordEvaluation(ctx, profile.Key(), outcome, started)
	span.SetAttributes(
		attribute.String("decision.id", decision.ID()),
		attribute.String("decision.oracle_version", version),
		attribute.Bool("decision.cached", cached),
	)

	uc.logger.Info("decision evaluated",
		"decision_id", decision.ID(),
		"profile", profile.String(),
		"oracle_version", version,
		"tier", record.Tier.Label(),
		"cached", cached,
	)

	return toDecisionResponse(decision, cached), nil
}

func (uc *EvaluateDecisionUseCase) lookup(ctx context.Context, profile valueobject.Profile, features map[string]any) (model.DecisionRecord, string, bool) {
	if uc.cache == nil {
		return model.DecisionRecord{}, "", false
	}
	oracle, err := uc.oracles.Current(profile)
	if err != nil {
		// The engine reports the unavailable oracle.
		return model.DecisionRecord{}, "", false
	}

	version := oracle.Version()
	record, ok, err := uc.cache.Get(ctx, port.CacheKey{Profile: profile, OracleVersion: version, Features: features})
	if err != nil {
		uc.logger.Warn("decision cache lookup failed", "error", err)
		return model.DecisionRecord{}, "", false
	}
	if !ok {
		return model.DecisionRecord{}, "", false
	}
	uc.metrics.recordCacheHit(ctx, profile.Key())
	return record, version, true
}
