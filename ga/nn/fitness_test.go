package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldhumanity/mlp-ga/ga"
)

// separable returns n samples labelled 1 when x0 + x1 > 0.
func separable(n int, seed int64) ([][]float64, []int) {
	src := ga.NewSource(seed)
	X := make([][]float64, 0, n)
	y := make([]int, 0, n)
	for len(X) < n {
		x := []float64{src.Uniform(-1, 1), src.Uniform(-1, 1)}
		if s := x[0] + x[1]; s > -0.2 && s < 0.2 {
			continue
		}
		label := 0
		if x[0]+x[1] > 0 {
			label = 1
		}
		X = append(X, x)
		y = append(y, label)
	}
	return X, y
}

func TestFitnessFunction(t *testing.T) {
	X, y := separable(20, 1)
	net, err := New([]int{2, 3, 1}, ga.Logistic)
	require.NoError(t, err)
	fitness := NewFitnessFunction(net, X, y)

	chromosome := make([]float64, net.NumParams())
	for i := range chromosome {
		chromosome[i] = 0.1 * float64(i%5)
	}
	got, err := fitness(chromosome)
	require.NoError(t, err)

	want, err := net.EvaluateAccuracy(X, y)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 1.0)

	_, err = fitness(chromosome[:5])
	assert.ErrorIs(t, err, ga.ErrSizeMismatch)
}

func TestEvolveSeparableProblem(t *testing.T) {
	X, y := separable(20, 2)
	net, err := New([]int{2, 3, 1}, ga.Logistic)
	require.NoError(t, err)
	require.Equal(t, 13, net.NumParams())

	cfg := ga.DefaultGAConfig()
	cfg.PopulationSize = 30
	cfg.MaxGenerations = 50
	cfg.Workers = 2

	opt, err := ga.NewOptimizer(net.NumParams(), cfg, ga.NewSource(7))
	require.NoError(t, err)
	opt.SetFitnessFactory(NewFitnessFactory(net, X, y))
	require.NoError(t, opt.Evolve())

	history := opt.BestFitnessHistory()
	require.Len(t, history, 50)
	for i := 1; i < len(history); i++ {
		assert.GreaterOrEqual(t, history[i], history[i-1])
	}
	assert.GreaterOrEqual(t, opt.BestFitness(), 0.9)

	best := opt.BestIndividual()
	require.NoError(t, net.Decode(best.Chromosome))
	acc, err := net.EvaluateAccuracy(X, y)
	require.NoError(t, err)
	assert.Equal(t, best.Fitness, acc)
}
