package grpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/bibbank/decisioning/internal/application/dto"
	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/pkg/auth"
)

// Policy lists the roles allowed on each DecisionService method.
var Policy = auth.Policy{
	MethodEvaluate:      {auth.RoleAdmin, auth.RoleOperator, auth.RoleCustomer, auth.RoleAPIClient},
	MethodGetDecision:   {auth.RoleAdmin, auth.RoleOperator, auth.RoleAuditor},
	MethodPlanRepayment: {auth.RoleAdmin, auth.RoleOperator, auth.RoleCustomer, auth.RoleAPIClient},
	MethodQuoteDeposit:  {auth.RoleAdmin, auth.RoleOperator, auth.RoleCustomer, auth.RoleAPIClient},
	MethodReloadOracle:  {auth.RoleAdmin, auth.RoleOperator},
}

type DecisionEvaluator interface {
	Execute(ctx context.Context, req dto.EvaluateDecisionRequest) (dto.DecisionResponse, error)
}

type DecisionReader interface {
	Execute(ctx context.Context, req dto.GetDecisionRequest) (dto.DecisionResponse, error)
}

type RepaymentPlanner interface {
	Execute(ctx context.Context, req dto.PlanRepaymentRequest) (dto.RepaymentPlanResponse, error)
}

type DepositQuoter interface {
	Execute(ctx context.Context, req dto.QuoteDepositRequest) (dto.DepositQuoteResponse, error)
}

type OracleReloader interface {
	Execute(ctx context.Context, req dto.ReloadOracleRequest) (dto.ReloadOracleResponse, error)
}

// tenantIDFromContext extracts the tenant ID from JWT claims in the context.
func tenantIDFromContext(ctx context.Context) (string, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok || claims.TenantID == "" {
		return "", status.Error(codes.Unauthenticated, "authentication required")
	}
	return claims.TenantID, nil
}

var _ DecisionServiceServer = (*DecisionHandler)(nil)

// DecisionHandler implements the gRPC DecisionServiceServer interface.
type DecisionHandler struct {
	UnimplementedDecisionServiceServer
	evaluate  DecisionEvaluator
	get       DecisionReader
	repayment RepaymentPlanner
	deposit   DepositQuoter
	reload    OracleReloader
	logger    *slog.Logger
}

func NewDecisionHandler(
	evaluate DecisionEvaluator,
	get DecisionReader,
	repayment RepaymentPlanner,
	deposit DepositQuoter,
	reload OracleReloader,
	logger *slog.Logger,
) *DecisionHandler {
	return &DecisionHandler{
		evaluate:  evaluate,
		get:       get,
		repayment: repayment,
		deposit:   deposit,
		reload:    reload,
		logger:    logger,
	}
}

// Evaluate decides on a customer profile and returns the explained record.
func (h *DecisionHandler) Evaluate(ctx context.Context, req *EvaluateRequest) (*EvaluateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.evaluate.Execute(ctx, dto.EvaluateDecisionRequest{
		TenantID:    tenantID,
		CustomerRef: req.CustomerRef,
		Profile:     req.Profile,
		Features:    req.Features,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "Evaluate", err)
	}
	return &EvaluateResponse{Decision: toDecisionMsg(result)}, nil
}

// GetDecision returns an audited decision of the caller's tenant.
func (h *DecisionHandler) GetDecision(ctx context.Context, req *GetDecisionRequest) (*GetDecisionResponse, error) {
	if req == nil || req.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.get.Execute(ctx, dto.GetDecisionRequest{TenantID: tenantID, DecisionID: req.ID})
	if err != nil {
		return nil, h.toStatus(ctx, "GetDecision", err)
	}
	return &GetDecisionResponse{Decision: toDecisionMsg(result)}, nil
}

// PlanRepayment runs the EMI calculator.
func (h *DecisionHandler) PlanRepayment(ctx context.Context, req *PlanRepaymentRequest) (*PlanRepaymentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	amount, err := decimal.NewFromString(req.LoanAmount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid loan_amount: %v", err)
	}
	rate, err := decimal.NewFromString(req.InterestRate)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid interest_rate: %v", err)
	}

	result, err := h.repayment.Execute(ctx, dto.PlanRepaymentRequest{
		LoanAmount:   amount,
		InterestRate: rate,
		TenureYears:  int(req.TenureYears),
	})
	if err != nil {
		return nil, h.toStatus(ctx, "PlanRepayment", err)
	}

	resp := &PlanRepaymentResponse{
		EMI:             result.EMI.StringFixed(2),
		TotalRepayment:  result.TotalRepayment.StringFixed(2),
		InterestPayable: result.InterestPayable.StringFixed(2),
	}
	for _, y := range result.Schedule {
		resp.Schedule = append(resp.Schedule, &RepaymentYearMsg{
			Year:           int32(y.Year), //nolint:gosec
			OpeningBalance: y.OpeningBalance.StringFixed(2),
			Paid:           y.Paid.StringFixed(2),
			Interest:       y.Interest.StringFixed(2),
			Principal:      y.Principal.StringFixed(2),
			ClosingBalance: y.ClosingBalance.StringFixed(2),
		})
	}
	return resp, nil
}

// QuoteDeposit computes a fixed-deposit maturity quote.
func (h *DecisionHandler) QuoteDeposit(ctx context.Context, req *QuoteDepositRequest) (*QuoteDepositResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount: %v", err)
	}
	rate, err := decimal.NewFromString(req.InterestRate)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid interest_rate: %v", err)
	}
	period, err := decimal.NewFromString(req.PeriodYears)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid period: %v", err)
	}

	in := dto.QuoteDepositRequest{Amount: amount, InterestRate: rate, PeriodYears: period}
	if req.StartDate != nil {
		in.StartDate = req.StartDate.AsTime()
	}

	result, err := h.deposit.Execute(ctx, in)
	if err != nil {
		return nil, h.toStatus(ctx, "QuoteDeposit", err)
	}
	return &QuoteDepositResponse{
		MaturityAmount: result.MaturityAmount.StringFixed(2),
		StartDate:      timestamppb.New(result.StartDate),
		MaturityDate:   timestamppb.New(result.MaturityDate),
	}, nil
}

// ReloadOracle re-reads the artifact manifest.
func (h *DecisionHandler) ReloadOracle(ctx context.Context, _ *ReloadOracleRequest) (*ReloadOracleResponse, error) {
	trigger := "grpc"
	if claims, ok := auth.ClaimsFromContext(ctx); ok && claims.Subject != "" {
		trigger = "grpc:" + claims.Subject
	}

	result, err := h.reload.Execute(ctx, dto.ReloadOracleRequest{Trigger: trigger})
	if err != nil {
		return nil, h.toStatus(ctx, "ReloadOracle", err)
	}
	return &ReloadOracleResponse{
		PreviousVersion: result.PreviousVersion,
		Version:         result.Version,
		Profiles:        result.Profiles,
		Changed:         result.Changed,
	}, nil
}

// toStatus maps domain errors onto gRPC codes. Unknown errors are logged and hidden.
func (h *DecisionHandler) toStatus(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, model.ErrValidation), errors.Is(err, model.ErrEncoding):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrDecisionNotFound):
		return status.Error(codes.NotFound, "decision not found")
	case errors.Is(err, model.ErrOracleUnavailable):
		h.logger.ErrorContext(ctx, "oracle unavailable", "method", method, "error", err)
		return status.Error(codes.Unavailable, err.Error())
	default:
		h.logger.ErrorContext(ctx, "request failed", "method", method, "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

func toDecisionMsg(r dto.DecisionResponse) *DecisionMsg {
	msg := &DecisionMsg{
		ID:                   r.ID,
		TenantID:             r.TenantID,
		CustomerRef:          r.CustomerRef,
		Profile:              r.Profile,
		OracleVersion:        r.OracleVersion,
		Eligible:             r.Eligible,
		InterestRate:         r.InterestRate.String(),
		InterestRateDisplay:  r.InterestRateDisplay,
		Confidence:           r.Confidence,
		ConfidenceDisplay:    r.ConfidenceDisplay,
		PositiveReasons:      r.PositiveReasons,
		NegativeReasons:      r.NegativeReasons,
		TotalScore:           int32(r.TotalScore), //nolint:gosec
		Favorability:         r.Favorability.String(),
		OverallProfile:       r.OverallProfile,
		UnexplainedRejection: r.Diagnostics.UnexplainedRejection,
		ConfidenceNote:       r.Diagnostics.ConfidenceNote,
		Cached:               r.Cached,
		EvaluatedAt:          timestamppb.New(r.EvaluatedAt),
		Tier: &TierMsg{
			Label:           r.Tier.Label,
			BackgroundColor: r.Tier.BackgroundColor,
			TextColor:       r.Tier.TextColor,
		},
		Chart: &ChartMsg{Labels: r.ChartData.Labels, Values: r.ChartData.Values},
	}
	if r.MaxAmount != nil {
		msg.MaxAmount = r.MaxAmount.String()
	}
	for _, reason := range r.ReasonsTable {
		msg.Reasons = append(msg.Reasons, &ReasonMsg{
			Factor:          reason.Factor,
			Description:     reason.Description,
			Impact:          reason.Impact,
			NumericalImpact: reason.NumericalImpact,
		})
	}
	for _, rej := range r.Rejections {
		msg.Rejections = append(msg.Rejections, &RejectionMsg{Reason: rej.Reason, Suggestion: rej.Suggestion})
	}
	return msg
}
