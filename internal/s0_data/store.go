package s0_data

import (
	"context"
	"sync"

	"github.com/wonny/scout/backend/internal/contracts"
	"github.com/wonny/scout/backend/pkg/logger"
	"github.com/wonny/scout/backend/pkg/metrics"
)

// Store is the session cache of the canonical dataset
// ⭐ SSOT: 데이터셋은 세션당 한 번만 로드 (Invalidate 전까지)
type Store struct {
	loader  *Loader
	logger  *logger.Logger
	metrics *metrics.Metrics

	mu      sync.RWMutex
	dataset *contracts.Dataset
	loaded  bool
}

// NewStore creates an empty session cache; m may be nil
func NewStore(loader *Loader, log *logger.Logger, m *metrics.Metrics) *Store {
	return &Store{
		loader:  loader,
		logger:  log.Component("s0_data"),
		metrics: m,
	}
}

// Loaded reports whether the dataset is cached
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Get returns the cached dataset, loading it on first use
// Concurrent callers share a single load; failures are not cached
func (s *Store) Get(ctx context.Context) (*contracts.Dataset, error) {
	s.mu.RLock()
	if s.loaded {
		ds := s.dataset
		s.mu.RUnlock()
		return ds, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// 다른 요청이 먼저 로드했을 수 있음
	if s.loaded {
		return s.dataset, nil
	}

	ds, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.dataset = ds
	s.loaded = true
	return ds, nil
}

// Invalidate drops the cached dataset; the next Get reloads
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dataset = nil
	s.loaded = false
	s.logger.Info("Dataset cache invalidated")
}

// Reload loads a fresh dataset and swaps it in
// On failure the previously cached dataset (if any) stays in place
func (s *Store) Reload(ctx context.Context) (*contracts.Dataset, error) {
	ds, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.dataset = ds
	s.loaded = true
	s.mu.Unlock()

	return ds, nil
}

// CurrentYear returns the contract cutoff year the loader would use now
func (s *Store) CurrentYear() int {
	return s.loader.CurrentYear()
}

func (s *Store) load(ctx context.Context) (*contracts.Dataset, error) {
	ds, err := s.loader.Load(ctx)
	if err != nil {
		s.metrics.ObserveLoad(err, nil)
		s.logger.WithError(err).Error("Dataset load failed")
		return nil, err
	}
	s.metrics.ObserveLoad(nil, ds.Report.Outcomes())
	return ds, nil
}
