// Package store caches the loaded dataset snapshot for the lifetime of
// the process. All dashboard views read the same snapshot; the cache is
// filled on the first request and replaced only by an explicit reload.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"growdash/internal/dataset"
	"growdash/internal/infrastructure"
)

// Store serves the current dataset snapshot. Concurrent first requests
// are collapsed into a single load with singleflight so the data
// directory is read once no matter how many requests race.
type Store struct {
	loader  *dataset.Loader
	dataDir string
	logger  *slog.Logger
	metrics *infrastructure.BusinessMetrics

	group singleflight.Group

	mu   sync.RWMutex
	snap *dataset.Snapshot
}

// Option configures a Store.
type Option func(*Store)

// WithMetrics attaches business metrics to the store. A nil metrics
// value is allowed and disables recording.
func WithMetrics(metrics *infrastructure.BusinessMetrics) Option {
	return func(s *Store) {
		s.metrics = metrics
	}
}

// New creates a snapshot store over dataDir.
func New(loader *dataset.Loader, dataDir string, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		loader:  loader,
		dataDir: dataDir,
		logger:  logger.With(slog.String("component", "store")),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Get returns the cached snapshot, loading it on first use. A snapshot
// that carried load errors but still holds data is cached and served;
// a fully empty snapshot is not cached, so a later request retries the
// load after the operator fixes the data directory.
func (s *Store) Get(ctx context.Context) (*dataset.Snapshot, error) {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()

	if snap != nil {
		s.metrics.RecordCacheHit(ctx)
		return snap, nil
	}

	s.metrics.RecordCacheMiss(ctx)
	return s.load(ctx)
}

// Reload discards the cached snapshot and loads a fresh one.
func (s *Store) Reload(ctx context.Context) (*dataset.Snapshot, error) {
	s.Invalidate()
	return s.load(ctx)
}

// Invalidate drops the cached snapshot without loading a new one. The
// next Get reloads from disk.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.snap = nil
	s.mu.Unlock()
}

// Snapshot returns the cached snapshot without triggering a load, or
// nil when nothing is cached yet.
func (s *Store) Snapshot() *dataset.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

type loadResult struct {
	snap *dataset.Snapshot
	err  error
}

func (s *Store) load(ctx context.Context) (*dataset.Snapshot, error) {
	v, _, _ := s.group.Do("load", func() (interface{}, error) {
		start := time.Now()
		snap, err := s.loader.Load(ctx, s.dataDir)
		duration := time.Since(start)

		s.metrics.RecordDatasetLoad(ctx, duration, snap.EnvironmentRows(), len(snap.Growth), err == nil)

		if err != nil {
			s.logger.WarnContext(ctx, "dataset load finished with errors",
				slog.String("dir", s.dataDir),
				slog.Duration("duration", duration),
				slog.String("error", err.Error()))
		} else {
			s.logger.InfoContext(ctx, "dataset loaded",
				slog.String("dir", s.dataDir),
				slog.Duration("duration", duration),
				slog.Int("environment_rows", snap.EnvironmentRows()),
				slog.Int("growth_rows", len(snap.Growth)),
				slog.Int("schools", snap.SchoolCount()))
		}

		if !snap.Empty() {
			s.mu.Lock()
			s.snap = snap
			s.mu.Unlock()
		}

		return loadResult{snap: snap, err: err}, nil
	})

	result := v.(loadResult)
	return result.snap, result.err
}
