package grpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/bibbank/decisioning/internal/application/dto"
	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/pkg/auth"
)

// --- Mock implementations ---

type mockEvaluator struct {
	executeFunc func(ctx context.Context, req dto.EvaluateDecisionRequest) (dto.DecisionResponse, error)
	lastReq     dto.EvaluateDecisionRequest
}

func (m *mockEvaluator) Execute(ctx context.Context, req dto.EvaluateDecisionRequest) (dto.DecisionResponse, error) {
	m.lastReq = req
	if m.executeFunc != nil {
		return m.executeFunc(ctx, req)
	}
	return sampleDecision(req.TenantID), nil
}

type mockReader struct {
	executeFunc func(ctx context.Context, req dto.GetDecisionRequest) (dto.DecisionResponse, error)
}

func (m *mockReader) Execute(ctx context.Context, req dto.GetDecisionRequest) (dto.DecisionResponse, error) {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, req)
	}
	return sampleDecision(req.TenantID), nil
}

type mockPlanner struct{}

func (mockPlanner) Execute(_ context.Context, req dto.PlanRepaymentRequest) (dto.RepaymentPlanResponse, error) {
	if !req.LoanAmount.IsPositive() {
		return dto.RepaymentPlanResponse{}, fmt.Errorf("plan repayment: %w",
			&model.ValidationError{Field: "loan_amount", Reason: "must be positive"})
	}
	return dto.RepaymentPlanResponse{
		EMI:             decimal.RequireFromString("1000"),
		TotalRepayment:  decimal.RequireFromString("12000"),
		InterestPayable: decimal.RequireFromString("2000"),
		Schedule: []dto.RepaymentYearResponse{
			{Year: 1, OpeningBalance: decimal.NewFromInt(10000), ClosingBalance: decimal.Zero},
		},
	}, nil
}

type mockQuoter struct{}

func (mockQuoter) Execute(_ context.Context, req dto.QuoteDepositRequest) (dto.DepositQuoteResponse, error) {
	return dto.DepositQuoteResponse{
		MaturityAmount: decimal.RequireFromString("108000"),
		StartDate:      req.StartDate,
		MaturityDate:   req.StartDate.AddDate(0, 0, 365),
	}, nil
}

type mockReloader struct {
	trigger string
}

func (m *mockReloader) Execute(_ context.Context, req dto.ReloadOracleRequest) (dto.ReloadOracleResponse, error) {
	m.trigger = req.Trigger
	return dto.ReloadOracleResponse{Version: "2026.10.1+abc", Profiles: []string{"fd", "loan"}, Changed: true}, nil
}

func sampleDecision(tenantID string) dto.DecisionResponse {
	eligible := true
	amount := decimal.NewFromInt(675000)
	return dto.DecisionResponse{
		ID:                  "0d6b7c1e-5a3f-4d58-8f0e-4a6f2e9b1c11",
		TenantID:            tenantID,
		Profile:             "LOAN",
		OracleVersion:       "2026.10.1+abc",
		Eligible:            &eligible,
		InterestRate:        decimal.RequireFromString("9.5"),
		InterestRateDisplay: "9.50%",
		MaxAmount:           &amount,
		Confidence:          "97.65",
		Tier:                dto.TierResponse{Label: "High-Value", BackgroundColor: "#1E90FF", TextColor: "#FFFFFF"},
		ReasonsTable: []dto.ReasonResponse{
			{Factor: "Credit History", Description: "Excellent", Impact: "Positive", NumericalImpact: "+0.25%"},
		},
		Rejections:   []dto.RejectionResponse{{Reason: "r", Suggestion: "s"}},
		Favorability: decimal.NewFromInt(70),
		ChartData:    dto.ChartData{Labels: []string{"Credit History"}, Values: []float64{0.25}},
		EvaluatedAt:  time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC),
	}
}

func newTestHandler() (*DecisionHandler, *mockEvaluator, *mockReader, *mockReloader) {
	ev, rd, rl := &mockEvaluator{}, &mockReader{}, &mockReloader{}
	h := NewDecisionHandler(ev, rd, mockPlanner{}, mockQuoter{}, rl, slog.New(slog.DiscardHandler))
	return h, ev, rd, rl
}

func authed(tenantID string) context.Context {
	return auth.ContextWithClaims(context.Background(), &auth.Claims{TenantID: tenantID, Roles: []string{auth.RoleAdmin}})
}

// --- Tests ---

func TestDecisionHandler_Evaluate(t *testing.T) {
	t.Run("passes the tenant from claims and maps the record", func(t *testing.T) {
		h, ev, _, _ := newTestHandler()
		resp, err := h.Evaluate(authed("tenant-001"), &EvaluateRequest{Profile: "loan", Features: map[string]any{"Age": 30}})
		require.NoError(t, err)

		assert.Equal(t, "tenant-001", ev.lastReq.TenantID)
		assert.Equal(t, "loan", ev.lastReq.Profile)
		assert.Equal(t, "9.5", resp.Decision.InterestRate)
		assert.Equal(t, "675000", resp.Decision.MaxAmount)
		assert.Equal(t, "High-Value", resp.Decision.Tier.Label)
		require.Len(t, resp.Decision.Reasons, 1)
		assert.Equal(t, "+0.25%", resp.Decision.Reasons[0].NumericalImpact)
		require.Len(t, resp.Decision.Rejections, 1)
		assert.Equal(t, int64(1792400400), resp.Decision.EvaluatedAt.GetSeconds())
	})

	t.Run("requires claims", func(t *testing.T) {
		h, _, _, _ := newTestHandler()
		_, err := h.Evaluate(context.Background(), &EvaluateRequest{Profile: "fd"})
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	errCases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"validation", &model.ValidationError{Field: "Age", Reason: "missing"}, codes.InvalidArgument},
		{"encoding", &model.EncodingError{Field: "Market_Trends", Value: "Bullish"}, codes.InvalidArgument},
		{"oracle unavailable", &model.OracleUnavailableError{Profile: "LOAN", Reason: "not loaded"}, codes.Unavailable},
		{"unknown", errors.New("disk on fire"), codes.Internal},
	}
	for _, tc := range errCases {
		t.Run("maps "+tc.name, func(t *testing.T) {
			h, ev, _, _ := newTestHandler()
			ev.executeFunc = func(context.Context, dto.EvaluateDecisionRequest) (dto.DecisionResponse, error) {
				return dto.DecisionResponse{}, fmt.Errorf("evaluate: %w", tc.err)
			}
			_, err := h.Evaluate(authed("t"), &EvaluateRequest{Profile: "loan"})
			assert.Equal(t, tc.want, status.Code(err))
		})
	}
}

func TestDecisionHandler_GetDecision(t *testing.T) {
	h, _, rd, _ := newTestHandler()

	_, err := h.GetDecision(authed("t"), &GetDecisionRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	rd.executeFunc = func(context.Context, dto.GetDecisionRequest) (dto.DecisionResponse, error) {
		return dto.DecisionResponse{}, fmt.Errorf("find decision: %w", model.ErrDecisionNotFound)
	}
	_, err = h.GetDecision(authed("t"), &GetDecisionRequest{ID: "missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestDecisionHandler_Calculators(t *testing.T) {
	h, _, _, _ := newTestHandler()

	plan, err := h.PlanRepayment(context.Background(), &PlanRepaymentRequest{LoanAmount: "10000", InterestRate: "10", TenureYears: 1})
	require.NoError(t, err)
	assert.Equal(t, "1000.00", plan.EMI)
	require.Len(t, plan.Schedule, 1)
	assert.Equal(t, "0.00", plan.Schedule[0].ClosingBalance)

	_, err = h.PlanRepayment(context.Background(), &PlanRepaymentRequest{LoanAmount: "abc", InterestRate: "10", TenureYears: 1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.PlanRepayment(context.Background(), &PlanRepaymentRequest{LoanAmount: "0", InterestRate: "10", TenureYears: 1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	quote, err := h.QuoteDeposit(context.Background(), &QuoteDepositRequest{
		Amount: "100000", InterestRate: "8", PeriodYears: "1", StartDate: timestamppb.New(start),
	})
	require.NoError(t, err)
	assert.Equal(t, "108000.00", quote.MaturityAmount)
	assert.Equal(t, start.AddDate(0, 0, 365), quote.MaturityDate.AsTime())
}

func TestDecisionHandler_ReloadOracle(t *testing.T) {
	h, _, _, rl := newTestHandler()
	claims := &auth.Claims{Roles: []string{auth.RoleOperator}}
	claims.Subject = "ops-1"
	ctx := auth.ContextWithClaims(context.Background(), claims)

	resp, err := h.ReloadOracle(ctx, &ReloadOracleRequest{})
	require.NoError(t, err)
	assert.True(t, resp.Changed)
	assert.Equal(t, "grpc:ops-1", rl.trigger)
}

func TestServer_EndToEnd(t *testing.T) {
	jwtSvc, err := auth.NewJWTService(auth.JWTConfig{Secret: "e2e-secret", Expiration: time.Minute})
	require.NoError(t, err)

	h, _, _, _ := newTestHandler()
	srv := NewServer(h, ServerConfig{}, slog.New(slog.DiscardHandler), jwtSvc)
	srv.SetServing(true)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	conn, err := grpclib.NewClient("passthrough:///bufnet",
		grpclib.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpclib.WithTransportCredentials(insecure.NewCredentials()),
		grpclib.WithDefaultCallOptions(grpclib.ForceCodec(Codec{})),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	health, err := grpc_health_v1.NewHealthClient(conn).Check(context.Background(),
		&grpc_health_v1.HealthCheckRequest{Service: serviceName})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, health.GetStatus())

	customer, err := jwtSvc.GenerateToken("portal", "tenant-042", []string{auth.RoleCustomer})
	require.NoError(t, err)
	callCtx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+customer)

	var evalResp EvaluateResponse
	err = conn.Invoke(callCtx, MethodEvaluate, &EvaluateRequest{Profile: "loan", Features: map[string]any{"Age": 30}}, &evalResp)
	require.NoError(t, err)
	assert.Equal(t, "tenant-042", evalResp.Decision.TenantID)
	assert.Equal(t, "97.65", evalResp.Decision.Confidence)

	var reloadResp ReloadOracleResponse
	err = conn.Invoke(callCtx, MethodReloadOracle, &ReloadOracleRequest{}, &reloadResp)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	err = conn.Invoke(context.Background(), MethodEvaluate, &EvaluateRequest{Profile: "fd"}, &evalResp)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
