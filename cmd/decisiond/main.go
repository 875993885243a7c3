package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/bibbank/decisioning/internal/application/dto"
	"github.com/bibbank/decisioning/internal/application/usecase"
	"github.com/bibbank/decisioning/internal/domain/port"
	"github.com/bibbank/decisioning/internal/domain/service"
	"github.com/bibbank/decisioning/internal/infrastructure/cache"
	"github.com/bibbank/decisioning/internal/infrastructure/config"
	"github.com/bibbank/decisioning/internal/infrastructure/messaging"
	"github.com/bibbank/decisioning/internal/infrastructure/oracle"
	infraPG "github.com/bibbank/decisioning/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/bibbank/decisioning/internal/presentation/grpc"
	"github.com/bibbank/decisioning/internal/presentation/rest"
	"github.com/bibbank/decisioning/migrations"
	"github.com/bibbank/decisioning/pkg/auth"
	"github.com/bibbank/decisioning/pkg/events"
	kafkapkg "github.com/bibbank/decisioning/pkg/kafka"
	"github.com/bibbank/decisioning/pkg/observability"
	pgpkg "github.com/bibbank/decisioning/pkg/postgres"
	"github.com/bibbank/decisioning/pkg/tlsutil"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.Telemetry.ServiceName,
	})

	logger.Info("starting decisioning-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Tracing
	shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer shutdownTracer(context.Background()) //nolint:errcheck
	}

	// Metrics
	meterProvider, metricsHandler, err := observability.InitMetrics(cfg.Telemetry.ServiceName)
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer meterProvider.Shutdown(context.Background()) //nolint:errcheck
	metrics, err := usecase.NewMetrics(meterProvider.Meter("github.com/bibbank/decisioning"))
	if err != nil {
		logger.Error("failed to register metrics", "error", err)
		os.Exit(1)
	}

	// Database
	dbCfg := pgpkg.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
		MaxConns: cfg.DB.MaxConns,
		MinConns: cfg.DB.MinConns,
	}
	pool, err := pgpkg.NewPool(ctx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.DB.MigrationsURL != "" {
		err = pgpkg.RunMigrations(dbCfg.DSN(), cfg.DB.MigrationsURL)
	} else {
		err = pgpkg.RunEmbeddedMigrations(dbCfg.DSN(), migrations.FS)
	}
	if err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Kafka
	kafkaCfg := kafkapkg.Config{
		Brokers:       cfg.Kafka.Brokers,
		ConsumerGroup: cfg.Kafka.ConsumerGrp,
		SASLEnabled:   cfg.Kafka.SASLUsername != "",
		SASLUsername:  cfg.Kafka.SASLUsername,
		SASLPassword:  cfg.Kafka.SASLPassword,
		TLS:           cfg.Kafka.TLSEnabled,
	}
	producer, err := kafkapkg.NewProducer(kafkaCfg)
	if err != nil {
		logger.Error("failed to create kafka producer", "error", err)
		os.Exit(1)
	}
	defer producer.Close() //nolint:errcheck
	publisher := messaging.NewPublisher(producer, cfg.Kafka.EventsTopic)

	// Oracle
	loader, err := oracle.NewLoader()
	if err != nil {
		logger.Error("failed to create artifact loader", "error", err)
		os.Exit(1)
	}
	defer loader.Close()
	registry := oracle.NewRegistry(cfg.Oracle.ManifestPath, loader, logger)

	// Optional decision cache
	var decisionCache port.DecisionCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close() //nolint:errcheck
		decisionCache = cache.NewDecisionCache(rdb, cfg.Redis.TTL)
		logger.Info("decision cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
	}

	// Optional analytics sink
	var sink port.AnalyticsSink
	if cfg.Analytics.ClickHouseDSN != "" {
		chSink, closeSink, err := openAnalytics(ctx, cfg.Analytics)
		if err != nil {
			logger.Error("failed to open analytics sink", "error", err)
			os.Exit(1)
		}
		defer closeSink() //nolint:errcheck
		sink = chSink
		logger.Info("analytics sink enabled", "table", cfg.Analytics.Table)
	}

	// Wire dependencies
	decisionRepo := infraPG.NewDecisionRepo(pool)
	outboxRepo := infraPG.NewOutboxRepo(pool)
	engine := service.NewDecisionEngine(registry, logger)

	evaluateUC := usecase.NewEvaluateDecisionUseCase(engine, registry, decisionRepo, decisionCache, sink, metrics, logger)
	getUC := usecase.NewGetDecisionUseCase(decisionRepo)
	repaymentUC := usecase.NewPlanRepaymentUseCase()
	depositUC := usecase.NewQuoteDepositUseCase()
	reloadUC := usecase.NewReloadOracleUseCase(registry, publisher, metrics, logger)

	if _, err := reloadUC.Execute(ctx, dto.ReloadOracleRequest{Trigger: "startup"}); err != nil {
		logger.Error("initial oracle load failed, evaluations will be unavailable", "error", err)
	}

	// Background work
	scheduler := messaging.NewScheduler(logger)
	if err := scheduler.AddOutboxRelay(ctx, cfg.Outbox.Schedule, events.NewRelay(outboxRepo, publisher, cfg.Outbox.BatchSize)); err != nil {
		logger.Error("failed to schedule outbox relay", "error", err)
		os.Exit(1)
	}
	if err := scheduler.AddManifestCheck(ctx, cfg.Oracle.CheckSchedule, reloadUC); err != nil {
		logger.Error("failed to schedule manifest check", "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	consumer, err := kafkapkg.NewConsumer(kafkaCfg, cfg.Kafka.ReloadTopic, messaging.NewReloadHandler(reloadUC, logger), logger)
	if err != nil {
		logger.Error("failed to create reload consumer", "error", err)
		os.Exit(1)
	}
	defer consumer.Close() //nolint:errcheck

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtSvc, err := newJWTService(cfg.Auth)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server
	serverCfg := grpcPresentation.ServerConfig{Port: cfg.GRPCPort, Reflection: cfg.GRPCReflection}
	if cfg.TLS.TLSEnabled() {
		serverCfg.Creds, err = tlsutil.ServerCredentials(cfg.TLS.CertFile, cfg.TLS.KeyFile, cfg.TLS.ClientCAFile)
		if err != nil {
			logger.Error("failed to load TLS credentials", "error", err)
			os.Exit(1)
		}
	}
	handler := grpcPresentation.NewDecisionHandler(evaluateUC, getUC, repaymentUC, depositUC, reloadUC, logger)
	grpcServer := grpcPresentation.NewServer(handler, serverCfg, logger, jwtSvc)
	grpcServer.SetServing(registry.Loaded())

	// HTTP server (health checks + metrics)
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, map[string]rest.Check{
		"oracle": func(context.Context) error {
			if !registry.Loaded() {
				return errors.New("no oracle snapshot loaded")
			}
			return nil
		},
		"database": func(ctx context.Context) error { return pgpkg.HealthCheck(ctx, pool) },
	})
	healthHandler.RegisterRoutes(mux, metricsHandler)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           rest.AccessLog(logger, mux),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start servers
	errCh := make(chan error, 3)

	go func() {
		errCh <- grpcServer.Start(ctx)
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	go func() {
		if err := consumer.Start(ctx); err != nil {
			errCh <- fmt.Errorf("reload consumer: %w", err)
		}
	}()

	// Wait for shutdown
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown
	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", "error", err)
	}
	grpcServer.Stop()
	logger.Info("decisioning-service stopped")
}
