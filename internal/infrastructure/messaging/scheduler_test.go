package messaging_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/decisioning/internal/application/dto"
	"github.com/bibbank/decisioning/internal/infrastructure/messaging"
)

type drainFunc func(ctx context.Context) (int, error)

func (f drainFunc) Drain(ctx context.Context) (int, error) { return f(ctx) }

func TestScheduler(t *testing.T) {
	t.Run("invalid spec is rejected", func(t *testing.T) {
		s := messaging.NewScheduler(discardLogger())
		err := s.AddOutboxRelay(context.Background(), "every now and then", drainFunc(func(context.Context) (int, error) { return 0, nil }))
		require.Error(t, err)

		err = s.AddManifestCheck(context.Background(), "61 * * * *", &mockReloader{})
		require.Error(t, err)
	})

	t.Run("relay drains until the outbox is empty", func(t *testing.T) {
		var calls atomic.Int32
		relay := drainFunc(func(context.Context) (int, error) {
			// Two full batches, then empty.
			if calls.Add(1)%3 == 0 {
				return 0, nil
			}
			return 100, nil
		})

		s := messaging.NewScheduler(discardLogger())
		require.NoError(t, s.AddOutboxRelay(context.Background(), "@every 1s", relay))
		s.Start()
		defer s.Stop()

		assert.Eventually(t, func() bool { return calls.Load() >= 3 }, 3*time.Second, 50*time.Millisecond)
	})

	t.Run("failing relay stops the tick", func(t *testing.T) {
		var calls atomic.Int32
		relay := drainFunc(func(context.Context) (int, error) {
			calls.Add(1)
			return 0, errors.New("broker down")
		})

		s := messaging.NewScheduler(discardLogger())
		require.NoError(t, s.AddOutboxRelay(context.Background(), "@every 1s", relay))
		s.Start()

		assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
		s.Stop()
		assert.LessOrEqual(t, calls.Load(), int32(2))
	})

	t.Run("manifest check reloads with the schedule trigger", func(t *testing.T) {
		var triggers atomic.Value
		reloader := &mockReloader{executeFunc: func(_ context.Context, req dto.ReloadOracleRequest) (dto.ReloadOracleResponse, error) {
			triggers.Store(req.Trigger)
			return dto.ReloadOracleResponse{}, nil
		}}

		s := messaging.NewScheduler(discardLogger())
		require.NoError(t, s.AddManifestCheck(context.Background(), "@every 1s", reloader))
		s.Start()
		defer s.Stop()

		assert.Eventually(t, func() bool { return triggers.Load() == "schedule" }, 3*time.Second, 50*time.Millisecond)
	})
}
