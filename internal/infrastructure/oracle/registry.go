package oracle

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/internal/domain/port"
	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

// Registry serves the current snapshot to evaluations and swaps it on reload.
// Readers never block: they load the pointer once and use that snapshot.
type Registry struct {
	manifestPath string
	loader       *Loader
	logger       *slog.Logger

	current  atomic.Pointer[Snapshot]
	reloadMu sync.Mutex
}

func NewRegistry(manifestPath string, loader *Loader, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{manifestPath: manifestPath, loader: loader, logger: logger}
}

// Current implements port.OracleProvider.
func (r *Registry) Current(profile valueobject.Profile) (port.Oracle, error) {
	snap := r.current.Load()
	if snap == nil {
		return nil, &model.OracleUnavailableError{Profile: profile.String(), Reason: "no artifacts loaded"}
	}
	o, ok := snap.Oracle(profile)
	if !ok {
		return nil, &model.OracleUnavailableError{
			Profile: profile.String(),
			Reason:  "manifest " + snap.Version() + " does not serve this profile",
		}
	}
	return o, nil
}

// Reload reads the manifest again and swaps in a fresh snapshot when its
// digest differs. A failed reload keeps the previous snapshot serving.
func (r *Registry) Reload(ctx context.Context) (port.ReloadResult, error) {
	r.reloadMu.Lock()
	defer r.reloadMu.Unlock()

	prev := r.current.Load()
	var result port.ReloadResult
	if prev != nil {
		result.PreviousVersion = prev.Version()
	}

	m, err := ReadManifest(r.manifestPath)
	if err != nil {
		return result, fmt.Errorf("reload oracle: %w", err)
	}
	if prev != nil && prev.Digest() == m.Digest() {
		result.Version = prev.Version()
		result.Profiles = prev.Profiles()
		return result, nil
	}

	snap, err := r.loader.Load(ctx, m)
	if err != nil {
		return result, fmt.Errorf("reload oracle: %w", err)
	}
	r.current.Store(snap)

	result.Version = snap.Version()
	result.Profiles = snap.Profiles()
	result.Changed = true
	r.logger.Info("oracle snapshot loaded",
		"version", snap.Version(),
		"previous_version", result.PreviousVersion,
		"profiles", result.Profiles,
	)
	return result, nil
}

// Loaded reports whether any snapshot is serving.
func (r *Registry) Loaded() bool {
	return r.current.Load() != nil
}

// Version returns the serving snapshot version, or "" before the first load.
func (r *Registry) Version() string {
	if snap := r.current.Load(); snap != nil {
		return snap.Version()
	}
	return ""
}
