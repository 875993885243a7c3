package messaging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/bibbank/decisioning/internal/application/dto"
)

// Drainer is satisfied by *events.Relay.
type Drainer interface {
	Drain(ctx context.Context) (int, error)
}

// Scheduler runs the periodic maintenance jobs.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

func NewScheduler(logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger,
	}
}

// AddOutboxRelay drains the outbox on spec, looping while full batches come back.
func (s *Scheduler) AddOutboxRelay(ctx context.Context, spec string, relay Drainer) error {
	_, err := s.cron.AddFunc(spec, func() {
		total := 0
		for {
			n, err := relay.Drain(ctx)
			total += n
			if err != nil {
				s.logger.Error("outbox relay failed", "relayed", total, "error", err)
				return
			}
			if n == 0 {
				break
			}
		}
		if total > 0 {
			s.logger.Debug("outbox relayed", "count", total)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule outbox relay: %w", err)
	}
	return nil
}

// AddManifestCheck reloads the oracle on spec; unchanged manifests are no-ops.
func (s *Scheduler) AddManifestCheck(ctx context.Context, spec string, reloader Reloader) error {
	_, err := s.cron.AddFunc(spec, func() {
		if _, err := reloader.Execute(ctx, dto.ReloadOracleRequest{Trigger: "schedule"}); err != nil {
			s.logger.Error("scheduled oracle reload failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule manifest check: %w", err)
	}
	return nil
}

func (s *Scheduler) Start() { s.cron.Start() }

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
