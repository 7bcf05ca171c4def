package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrStoreNotInitialized is returned by stores used before Init.
var ErrStoreNotInitialized = errors.New("store is not initialized")

// Store persists completed experiments.
type Store interface {
	Init(ctx context.Context) error
	SaveExperiment(ctx context.Context, experiment ExperimentResult) error
	GetExperiment(ctx context.Context, runID string) (ExperimentResult, bool, error)
	ListExperiments(ctx context.Context) ([]ExperimentResult, error)
}

// NewStore builds a store backend by name: "memory" (or empty) or "sqlite".
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(sqlitePath), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", kind)
	}
}

// CloseIfSupported closes stores that hold resources.
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}

func encodeExperiment(e ExperimentResult) ([]byte, error) {
	return json.Marshal(e)
}

func decodeExperiment(data []byte) (ExperimentResult, error) {
	var e ExperimentResult
	if err := json.Unmarshal(data, &e); err != nil {
		return ExperimentResult{}, err
	}
	return e, nil
}
