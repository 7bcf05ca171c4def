package report

import (
	"context"
	"sync"
)

// MemoryStore keeps experiments in process memory, in insertion order.
type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	order       []string
	experiments map[string]ExperimentResult
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.order = nil
	s.experiments = make(map[string]ExperimentResult)
	return nil
}

func (s *MemoryStore) SaveExperiment(_ context.Context, experiment ExperimentResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrStoreNotInitialized
	}
	if _, ok := s.experiments[experiment.RunID]; !ok {
		s.order = append(s.order, experiment.RunID)
	}
	s.experiments[experiment.RunID] = experiment
	return nil
}

func (s *MemoryStore) GetExperiment(_ context.Context, runID string) (ExperimentResult, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return ExperimentResult{}, false, ErrStoreNotInitialized
	}
	e, ok := s.experiments[runID]
	return e, ok, nil
}

func (s *MemoryStore) ListExperiments(_ context.Context) ([]ExperimentResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, ErrStoreNotInitialized
	}
	out := make([]ExperimentResult, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.experiments[id])
	}
	return out, nil
}
