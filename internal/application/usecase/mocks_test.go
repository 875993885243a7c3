package usecase_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/bibbank/decisioning/internal/domain/event"
	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/internal/domain/port"
	"github.com/bibbank/decisioning/internal/domain/service"
	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

// --- Mock implementations ---

type mockEvaluator struct {
	evaluateFunc func(profile valueobject.Profile, raw map[string]any) (service.Evaluation, error)
	calls        int
}

func (m *mockEvaluator) Evaluate(profile valueobject.Profile, raw map[string]any) (service.Evaluation, error) {
	m.calls++
	return m.evaluateFunc(profile, raw)
}

type mockDecisionRepository struct {
	saveFunc     func(ctx context.Context, d model.Decision) error
	findByIDFunc func(ctx context.Context, tenantID, id string) (model.Decision, error)
	saved        []model.Decision
}

func (m *mockDecisionRepository) Save(ctx context.Context, d model.Decision) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, d)
	}
	m.saved = append(m.saved, d)
	return nil
}

func (m *mockDecisionRepository) FindByID(ctx context.Context, tenantID, id string) (model.Decision, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return model.Decision{}, model.ErrDecisionNotFound
}

type mockDecisionCache struct {
	mu      sync.Mutex
	records map[string]model.DecisionRecord
	getErr  error
	sets    int
}

func newMockDecisionCache() *mockDecisionCache {
	return &mockDecisionCache{records: map[string]model.DecisionRecord{}}
}

func cacheKeyString(k port.CacheKey) string {
	return k.Profile.String() + "|" + k.OracleVersion
}

func (m *mockDecisionCache) Get(_ context.Context, key port.CacheKey) (model.DecisionRecord, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return model.DecisionRecord{}, false, m.getErr
	}
	r, ok := m.records[cacheKeyString(key)]
	return r, ok, nil
}

func (m *mockDecisionCache) Set(_ context.Context, key port.CacheKey, record model.DecisionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	m.records[cacheKeyString(key)] = record
	return nil
}

type mockAnalyticsSink struct {
	recordFunc func(ctx context.Context, d model.Decision) error
	recorded   []model.Decision
}

func (m *mockAnalyticsSink) Record(ctx context.Context, d model.Decision) error {
	if m.recordFunc != nil {
		return m.recordFunc(ctx, d)
	}
	m.recorded = append(m.recorded, d)
	return nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockOracle struct {
	version string
}

func (m *mockOracle) Version() string { return m.version }

func (m *mockOracle) Encodings() model.EncodingTable { return model.EncodingTable{} }

func (m *mockOracle) Model(port.ModelRole) (port.Predictor, bool) { return nil, false }

type mockOracleProvider struct {
	currentFunc func(profile valueobject.Profile) (port.Oracle, error)
}

func (m *mockOracleProvider) Current(profile valueobject.Profile) (port.Oracle, error) {
	if m.currentFunc != nil {
		return m.currentFunc(profile)
	}
	return &mockOracle{version: "v1"}, nil
}

// --- Fixtures ---

func loanRecord(eligible bool) model.DecisionRecord {
	rec := model.DecisionRecord{
		Prediction: model.PredictionResult{
			Profile:   valueobject.ProfileLoan,
			Eligible:  eligible,
			Rate:      decimal.Zero,
			MaxAmount: decimal.Zero,
		},
		Confidence: valueobject.ConfidenceNotApplicable,
		Tier:       valueobject.TierPremium,
		Explanation: model.Explanation{
			Table: model.SummaryTable{
				{Factor: "Credit History", Description: "Excellent credit history", Impact: valueobject.ImpactPositive, NumericalImpact: decimal.RequireFromString("0.25")},
				{Factor: "Risk Rating", Description: "High risk", Impact: valueobject.ImpactNegative, NumericalImpact: decimal.RequireFromString("-0.15")},
			},
			PositiveReasons: []string{"Excellent credit history, indicating strong financial discipline."},
			NegativeReasons: []string{"High risk rating, may increase the interest rate."},
		},
	}
	if eligible {
		rec.Prediction.Rate = decimal.RequireFromString("9.75")
		rec.Prediction.MaxAmount = decimal.NewFromInt(350000)
		rec.Tier = valueobject.TierHighValue
	} else {
		rec.Rejections = []model.RejectionReason{{Reason: "High Risk Rating", Suggestion: "Reduce financial risks by clearing existing debts."}}
	}
	return rec
}

func evaluatorReturning(rec model.DecisionRecord) *mockEvaluator {
	return &mockEvaluator{evaluateFunc: func(valueobject.Profile, map[string]any) (service.Evaluation, error) {
		return service.Evaluation{Record: rec, OracleVersion: "v1"}, nil
	}}
}
