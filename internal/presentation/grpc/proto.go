package grpc

// proto.go is the hand-maintained server surface of bib/decisioning/v1/decisioning.proto.
// Messages travel through Codec as JSON; see codec.go.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const serviceName = "bib.decisioning.v1.DecisionService"

// Full method names, used by the auth policy.
const (
	MethodEvaluate      = "/" + serviceName + "/Evaluate"
	MethodGetDecision   = "/" + serviceName + "/GetDecision"
	MethodPlanRepayment = "/" + serviceName + "/PlanRepayment"
	MethodQuoteDeposit  = "/" + serviceName + "/QuoteDeposit"
	MethodReloadOracle  = "/" + serviceName + "/ReloadOracle"
)

// DecisionServiceServer is the server API for DecisionService.
type DecisionServiceServer interface {
	Evaluate(context.Context, *EvaluateRequest) (*EvaluateResponse, error)
	GetDecision(context.Context, *GetDecisionRequest) (*GetDecisionResponse, error)
	PlanRepayment(context.Context, *PlanRepaymentRequest) (*PlanRepaymentResponse, error)
	QuoteDeposit(context.Context, *QuoteDepositRequest) (*QuoteDepositResponse, error)
	ReloadOracle(context.Context, *ReloadOracleRequest) (*ReloadOracleResponse, error)
	mustEmbedUnimplementedDecisionServiceServer()
}

// UnimplementedDecisionServiceServer provides forward-compatible default implementations.
type UnimplementedDecisionServiceServer struct{}

func (UnimplementedDecisionServiceServer) Evaluate(context.Context, *EvaluateRequest) (*EvaluateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Evaluate not implemented")
}
func (UnimplementedDecisionServiceServer) GetDecision(context.Context, *GetDecisionRequest) (*GetDecisionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDecision not implemented")
}
func (UnimplementedDecisionServiceServer) PlanRepayment(context.Context, *PlanRepaymentRequest) (*PlanRepaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PlanRepayment not implemented")
}
func (UnimplementedDecisionServiceServer) QuoteDeposit(context.Context, *QuoteDepositRequest) (*QuoteDepositResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method QuoteDeposit not implemented")
}
func (UnimplementedDecisionServiceServer) ReloadOracle(context.Context, *ReloadOracleRequest) (*ReloadOracleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReloadOracle not implemented")
}
func (UnimplementedDecisionServiceServer) mustEmbedUnimplementedDecisionServiceServer() {}

// RegisterDecisionServiceServer registers the DecisionServiceServer with the gRPC server.
func RegisterDecisionServiceServer(s grpclib.ServiceRegistrar, srv DecisionServiceServer) {
	s.RegisterService(&_DecisionService_serviceDesc, srv)
}

var _DecisionService_serviceDesc = grpclib.ServiceDesc{ //nolint:revive // gRPC handler registration
	ServiceName: serviceName,
	HandlerType: (*DecisionServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "Evaluate", Handler: _DecisionService_Evaluate_Handler},
		{MethodName: "GetDecision", Handler: _DecisionService_GetDecision_Handler},
		{MethodName: "PlanRepayment", Handler: _DecisionService_PlanRepayment_Handler},
		{MethodName: "QuoteDeposit", Handler: _DecisionService_QuoteDeposit_Handler},
		{MethodName: "ReloadOracle", Handler: _DecisionService_ReloadOracle_Handler},
	},
	Streams:  []grpclib.StreamDesc{},
	Metadata: "bib/decisioning/v1/decisioning.proto",
}

func _DecisionService_Evaluate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) { //nolint:revive // gRPC handler registration
	in := new(EvaluateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DecisionServiceServer).Evaluate(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: MethodEvaluate}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DecisionServiceServer).Evaluate(ctx, req.(*EvaluateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DecisionService_GetDecision_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) { //nolint:revive // gRPC handler registration
	in := new(GetDecisionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DecisionServiceServer).GetDecision(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: MethodGetDecision}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DecisionServiceServer).GetDecision(ctx, req.(*GetDecisionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DecisionService_PlanRepayment_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) { //nolint:revive // gRPC handler registration
	in := new(PlanRepaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DecisionServiceServer).PlanRepayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: MethodPlanRepayment}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DecisionServiceServer).PlanRepayment(ctx, req.(*PlanRepaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DecisionService_QuoteDeposit_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) { //nolint:revive // gRPC handler registration
	in := new(QuoteDepositRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DecisionServiceServer).QuoteDeposit(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: MethodQuoteDeposit}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DecisionServiceServer).QuoteDeposit(ctx, req.(*QuoteDepositRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DecisionService_ReloadOracle_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) { //nolint:revive // gRPC handler registration
	in := new(ReloadOracleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DecisionServiceServer).ReloadOracle(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: MethodReloadOracle}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DecisionServiceServer).ReloadOracle(ctx, req.(*ReloadOracleRequest))
	}
	return interceptor(ctx, in, info, handler)
}
