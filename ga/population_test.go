package ga

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOptimizer(t *testing.T, length int, cfg GAConfig, seed int64) *Optimizer {
	t.Helper()
	o, err := NewOptimizer(length, cfg, NewSource(seed))
	require.NoError(t, err)
	o.SetFitnessFunction(sumFitness)
	return o
}

func TestNewOptimizerValidation(t *testing.T) {
	_, err := NewOptimizer(0, DefaultGAConfig(), NewSource(1))
	assert.Error(t, err)

	_, err = NewOptimizer(5, DefaultGAConfig(), nil)
	assert.Error(t, err)

	cfg := DefaultGAConfig()
	cfg.PopulationSize = 0
	_, err = NewOptimizer(5, cfg, NewSource(1))
	assert.Error(t, err)
}

func TestEvolveWithoutFitnessFunction(t *testing.T) {
	o, err := NewOptimizer(5, testGAConfig(), NewSource(1))
	require.NoError(t, err)
	assert.Equal(t, Uninitialized, o.State())

	err = o.Evolve()
	assert.ErrorIs(t, err, ErrMissingFitnessFunction)
	assert.Equal(t, Uninitialized, o.State())
}

func TestEvolveBookkeeping(t *testing.T) {
	cfg := testGAConfig()
	o := newTestOptimizer(t, 8, cfg, 3)

	require.NoError(t, o.Evolve())
	assert.Equal(t, Terminated, o.State())
	assert.Equal(t, cfg.MaxGenerations, o.Generation())
	assert.Equal(t, cfg.PopulationSize*(cfg.MaxGenerations+1), o.Evaluations())
	assert.Len(t, o.Population(), cfg.PopulationSize)

	best := o.BestFitnessHistory()
	avg := o.AvgFitnessHistory()
	require.Len(t, best, cfg.MaxGenerations)
	require.Len(t, avg, cfg.MaxGenerations)
	for i := 1; i < len(best); i++ {
		assert.GreaterOrEqual(t, best[i], best[i-1], "best-ever fitness decreased at generation %d", i)
	}
	assert.Equal(t, best[len(best)-1], o.BestFitness())

	bestInd := o.BestIndividual()
	assert.Len(t, bestInd.Chromosome, 8)
	fitness, _ := sumFitness(bestInd.Chromosome)
	assert.InDelta(t, bestInd.Fitness, fitness, 1e-12)
	for _, ind := range o.Population() {
		assert.LessOrEqual(t, ind.Fitness, o.BestFitness())
	}
}

func TestEvolveImprovesOnSimpleObjective(t *testing.T) {
	cfg := testGAConfig()
	cfg.MaxGenerations = 60
	o := newTestOptimizer(t, 6, cfg, 11)
	require.NoError(t, o.Evolve())

	history := o.BestFitnessHistory()
	assert.Greater(t, history[len(history)-1], history[0])
	assert.Greater(t, o.Stagnation().Improvements, 0)
}

func TestPopulationSizeIsPreserved(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		elitism float64
	}{
		{"even", 10, 0.1},
		{"odd", 7, 0.2},
		{"odd without elites", 9, 0.0},
		{"all elites", 6, 1.0},
		{"single", 1, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testGAConfig()
			cfg.PopulationSize = tt.size
			cfg.ElitismRate = tt.elitism
			cfg.MaxGenerations = 5
			o := newTestOptimizer(t, 4, cfg, 5)
			require.NoError(t, o.Evolve())
			assert.Len(t, o.Population(), tt.size)
			assert.Equal(t, tt.size*6, o.Evaluations())
		})
	}
}

func TestEvolveIsDeterministic(t *testing.T) {
	cfg := testGAConfig()
	a := newTestOptimizer(t, 10, cfg, 99)
	b := newTestOptimizer(t, 10, cfg, 99)
	require.NoError(t, a.Evolve())
	require.NoError(t, b.Evolve())

	assert.Equal(t, a.BestFitnessHistory(), b.BestFitnessHistory())
	assert.Equal(t, a.AvgFitnessHistory(), b.AvgFitnessHistory())
	assert.Equal(t, a.BestIndividual().Chromosome, b.BestIndividual().Chromosome)

	c := newTestOptimizer(t, 10, cfg, 100)
	require.NoError(t, c.Evolve())
	assert.NotEqual(t, a.BestIndividual().Chromosome, c.BestIndividual().Chromosome)
}

func TestParallelEvaluationMatchesSequential(t *testing.T) {
	cfg := testGAConfig()
	sequential := newTestOptimizer(t, 10, cfg, 21)
	require.NoError(t, sequential.Evolve())

	cfg.Workers = 4
	parallel, err := NewOptimizer(10, cfg, NewSource(21))
	require.NoError(t, err)
	parallel.SetFitnessFactory(func() FitnessFunc { return sumFitness })
	require.NoError(t, parallel.Evolve())

	assert.Equal(t, sequential.BestFitnessHistory(), parallel.BestFitnessHistory())
	assert.Equal(t, sequential.AvgFitnessHistory(), parallel.AvgFitnessHistory())
	assert.Equal(t, sequential.BestIndividual().Chromosome, parallel.BestIndividual().Chromosome)
	assert.Equal(t, sequential.Evaluations(), parallel.Evaluations())
}

func TestFitnessErrorStopsEvolution(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	o, err := NewOptimizer(3, testGAConfig(), NewSource(1))
	require.NoError(t, err)
	o.SetFitnessFunction(func([]float64) (float64, error) {
		calls++
		if calls > 25 {
			return 0, boom
		}
		return 1, nil
	})

	err = o.Evolve()
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "generation 0")
}

func TestParallelFitnessError(t *testing.T) {
	boom := errors.New("boom")
	cfg := testGAConfig()
	cfg.Workers = 3
	cfg.InitMin, cfg.InitMax = 0.95, 1.0
	o, err := NewOptimizer(3, cfg, NewSource(1))
	require.NoError(t, err)
	o.SetFitnessFactory(func() FitnessFunc {
		return func(c []float64) (float64, error) {
			if c[0] > 0.9 {
				return 0, boom
			}
			return c[0], nil
		}
	})

	assert.ErrorIs(t, o.Evolve(), boom)
}

func TestVerboseOutputDoesNotChangeResults(t *testing.T) {
	cfg := testGAConfig()
	quiet := newTestOptimizer(t, 5, cfg, 8)
	require.NoError(t, quiet.Evolve())

	cfg.Verbose = true
	loud := newTestOptimizer(t, 5, cfg, 8)
	var out strings.Builder
	loud.SetOutput(&out)
	require.NoError(t, loud.Evolve())

	assert.Equal(t, quiet.BestFitnessHistory(), loud.BestFitnessHistory())
	assert.Contains(t, out.String(), "Starting Genetic Algorithm")
	assert.Contains(t, out.String(), "Evolution Complete")
}

func TestSetFitnessFunctionReplacesFactory(t *testing.T) {
	cfg := testGAConfig()
	cfg.Workers = 4
	o, err := NewOptimizer(3, cfg, NewSource(2))
	require.NoError(t, err)

	o.SetFitnessFactory(func() FitnessFunc {
		return func([]float64) (float64, error) { return -1, nil }
	})
	o.SetFitnessFunction(func([]float64) (float64, error) { return 7, nil })
	require.NoError(t, o.Evolve())

	assert.Equal(t, 7.0, o.BestFitness())
	for _, ind := range o.Population() {
		assert.Equal(t, 7.0, ind.Fitness)
	}
}

func TestStagnationCountsInitialBest(t *testing.T) {
	cfg := testGAConfig()
	o, err := NewOptimizer(3, cfg, NewSource(2))
	require.NoError(t, err)
	o.SetFitnessFunction(func([]float64) (float64, error) { return 1, nil })
	require.NoError(t, o.Evolve())

	s := o.Stagnation()
	assert.Equal(t, 1, s.Improvements)
	assert.Equal(t, 0, s.LastImproved)
	assert.Equal(t, cfg.MaxGenerations, s.Since())
}
