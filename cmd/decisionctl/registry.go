package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bibbank/decisioning/internal/infrastructure/oracle"
)

// openRegistry loads the manifest once. The returned func releases the loader.
func openRegistry(ctx context.Context, manifest string, logger *slog.Logger) (*oracle.Registry, func(), error) {
	loader, err := oracle.NewLoader()
	if err != nil {
		return nil, nil, err
	}
	registry := oracle.NewRegistry(manifest, loader, logger)
	if _, err := registry.Reload(ctx); err != nil {
		loader.Close()
		return nil, nil, fmt.Errorf("load artifacts: %w", err)
	}
	return registry, loader.Close, nil
}
