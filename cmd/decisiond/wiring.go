package main

import (
	"context"
	"fmt"
	"time"

	"github.com/bibbank/decisioning/internal/infrastructure/analytics"
	"github.com/bibbank/decisioning/internal/infrastructure/config"
	"github.com/bibbank/decisioning/pkg/auth"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// newJWTService builds a validation-only JWT service. A configured public key
// wins over a key file, which wins over the shared secret.
func newJWTService(cfg config.AuthConfig) (*auth.JWTService, error) {
	jwtCfg := auth.JWTConfig{Issuer: cfg.Issuer}
	switch {
	case cfg.PublicKey != "":
		jwtCfg.PublicKeyPEM = cfg.PublicKey
	case cfg.PublicKeyFile != "":
		keyData, err := auth.LoadKeyFromFile(cfg.PublicKeyFile)
		if err != nil {
			return nil, err
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	default:
		secret := cfg.Secret
		if secret == "" {
			secret = "dev-secret-change-in-prod" // development only
		}
		jwtCfg.Secret = secret
	}
	return auth.NewJWTService(jwtCfg)
}

func openAnalytics(ctx context.Context, cfg config.AnalyticsConfig) (*analytics.Sink, func() error, error) {
	conn, err := analytics.Open(ctx, cfg.ClickHouseDSN)
	if err != nil {
		return nil, nil, err
	}
	sink, err := analytics.NewSink(conn, cfg.Table)
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	if err := sink.EnsureTable(ctx); err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("ensure analytics table: %w", err)
	}
	return sink, conn.Close, nil
}
