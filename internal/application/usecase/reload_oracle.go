package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bibbank/decisioning/internal/application/dto"
	"github.com/bibbank/decisioning/internal/domain/event"
	"github.com/bibbank/decisioning/internal/domain/port"
)

// ReloadOracleUseCase swaps in the artifact set named by the manifest and
// announces the new version.
type ReloadOracleUseCase struct {
	reloader  port.OracleReloader
	publisher port.EventPublisher
	metrics   *Metrics
	logger    *slog.Logger
}

func NewReloadOracleUseCase(
	reloader port.OracleReloader,
	publisher port.EventPublisher,
	metrics *Metrics,
	logger *slog.Logger,
) *ReloadOracleUseCase {
	return &ReloadOracleUseCase{
		reloader:  reloader,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute reloads the oracle. An unchanged manifest is not an error and raises no event.
func (uc *ReloadOracleUseCase) Execute(
	ctx context.Context,
	req dto.ReloadOracleRequest,
) (dto.ReloadOracleResponse, error) {
	trigger := req.Trigger
	if trigger == "" {
		trigger = "manual"
	}

	result, err := uc.reloader.Reload(ctx)
	if err != nil {
		uc.metrics.recordReload(ctx, "failed")
		return dto.ReloadOracleResponse{}, fmt.Errorf("reload oracle: %w", err)
	}

	resp := dto.ReloadOracleResponse{
		PreviousVersion: result.PreviousVersion,
		Version:         result.Version,
		Profiles:        result.Profiles,
		Changed:         result.Changed,
	}
	if !result.Changed {
		uc.metrics.recordReload(ctx, "unchanged")
		return resp, nil
	}
	uc.metrics.recordReload(ctx, "swapped")

	uc.logger.Info("oracle reloaded",
		"previous_version", result.PreviousVersion,
		"version", result.Version,
		"trigger", trigger,
	)

	evt := event.NewOracleReloaded(result.PreviousVersion, result.Version, result.Profiles, trigger, time.Now())
	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, evt); err != nil {
			// The swap already happened; a lost announcement must not roll it back.
			uc.logger.Warn("publish oracle reloaded event", "version", result.Version, "error", err)
		}
	}

	return resp, nil
}
