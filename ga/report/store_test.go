package report

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	for _, kind := range []string{"", "memory"} {
		s, err := NewStore(kind, "")
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, s)
		assert.NoError(t, CloseIfSupported(s))
	}

	s, err := NewStore("sqlite", filepath.Join(t.TempDir(), "r.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)

	_, err = NewStore("postgres", "")
	assert.Error(t, err)
}

func TestStores(t *testing.T) {
	backends := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
		"sqlite": func(t *testing.T) Store { return NewSQLiteStore(filepath.Join(t.TempDir(), "results.db")) },
	}
	for name, newStore := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := newStore(t)

			err := store.SaveExperiment(ctx, sampleExperiment([]int{2, 1}, 0.5))
			assert.ErrorIs(t, err, ErrStoreNotInitialized)

			require.NoError(t, store.Init(ctx))
			t.Cleanup(func() { _ = CloseIfSupported(store) })

			first := sampleExperiment([]int{30, 10, 1}, 0.9, 0.8)
			first.Folds[0].BestFitnessHistory = []float64{0.6, 0.9}
			second := sampleExperiment([]int{30, 20, 1}, 0.7)
			require.NoError(t, store.SaveExperiment(ctx, first))
			require.NoError(t, store.SaveExperiment(ctx, second))

			got, ok, err := store.GetExperiment(ctx, first.RunID)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, first.Architecture, got.Architecture)
			assert.Equal(t, first.Folds, got.Folds)
			assert.Equal(t, first.MeanTestAccuracy, got.MeanTestAccuracy)

			_, ok, err = store.GetExperiment(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			second.Run = 3
			require.NoError(t, store.SaveExperiment(ctx, second))

			all, err := store.ListExperiments(ctx)
			require.NoError(t, err)
			require.Len(t, all, 2)
			assert.Equal(t, first.RunID, all[0].RunID)
			assert.Equal(t, second.RunID, all[1].RunID)
			assert.Equal(t, 3, all[1].Run)
		})
	}
}
