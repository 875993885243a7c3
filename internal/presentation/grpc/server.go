package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/bibbank/decisioning/pkg/auth"
)

// ServerConfig holds listener options.
type ServerConfig struct {
	Port       int
	Reflection bool
	// Creds enables TLS when set.
	Creds credentials.TransportCredentials
}

// Server wraps a gRPC server for the decisioning service.
type Server struct {
	server *grpc.Server
	health *health.Server
	logger *slog.Logger
	port   int
}

func NewServer(handler *DecisionHandler, cfg ServerConfig, logger *slog.Logger, jwtService *auth.JWTService, opts ...grpc.ServerOption) *Server {
	authInterceptor := auth.UnaryAuthInterceptor(jwtService, Policy,
		"/grpc.health.v1.Health/Check",
		"/grpc.health.v1.Health/Watch",
	)
	opts = append(opts,
		grpc.ChainUnaryInterceptor(UnaryLoggingInterceptor(logger), UnaryRecoveryInterceptor(logger), authInterceptor),
		grpc.ForceServerCodec(Codec{}),
	)

	if cfg.Creds != nil {
		opts = append(opts, grpc.Creds(cfg.Creds))
		logger.Info("gRPC TLS enabled")
	} else {
		logger.Info("gRPC TLS not configured, running without TLS")
	}

	srv := grpc.NewServer(opts...)

	healthSrv := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthSrv)
	healthSrv.SetServingStatus(serviceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	RegisterDecisionServiceServer(srv, handler)

	if cfg.Reflection {
		reflection.Register(srv)
	}

	return &Server{
		server: srv,
		health: healthSrv,
		port:   cfg.Port,
		logger: logger,
	}
}

// SetServing flips the DecisionService health status, typically once an
// oracle snapshot is loaded.
func (s *Server) SetServing(serving bool) {
	st := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if serving {
		st = grpc_health_v1.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(serviceName, st)
}

func (s *Server) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.port, err)
	}
	return s.Serve(ctx, lis)
}

// Serve runs on an existing listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.logger.Info("gRPC server starting", "addr", lis.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down gRPC server")
		s.server.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) Stop() {
	s.server.GracefulStop()
}
