package messaging

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/bibbank/decisioning/internal/application/dto"
	"github.com/bibbank/decisioning/pkg/kafka"
)

// Reloader is satisfied by *usecase.ReloadOracleUseCase.
type Reloader interface {
	Execute(ctx context.Context, req dto.ReloadOracleRequest) (dto.ReloadOracleResponse, error)
}

// artifactPublished is the notice the training pipeline emits after it has
// written a new manifest.
type artifactPublished struct {
	Version string `json:"version"`
}

// NewReloadHandler re-reads the manifest whenever a publish notice arrives.
// The notice body is informational; the manifest on disk is authoritative.
func NewReloadHandler(reloader Reloader, logger *slog.Logger) kafka.Handler {
	return func(ctx context.Context, msg kafka.Message) error {
		var notice artifactPublished
		if err := json.Unmarshal(msg.Value, &notice); err != nil {
			logger.Warn("unreadable artifact notice, reloading anyway", "error", err)
		}

		resp, err := reloader.Execute(ctx, dto.ReloadOracleRequest{Trigger: "kafka"})
		if err != nil {
			return err
		}
		if notice.Version != "" && !resp.Changed {
			logger.Warn("artifact notice did not change the served oracle",
				"announced_version", notice.Version,
				"served_version", resp.Version,
			)
		}
		return nil
	}
}
