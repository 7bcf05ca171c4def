package report

import (
	"sort"
	"time"

	"github.com/gofrs/uuid"

	"github.com/baldhumanity/mlp-ga/ga"
)

// FoldResult is the outcome of training on one fold.
type FoldResult struct {
	Fold               int // 1-based
	TrainAccuracy      float64
	TestAccuracy       float64
	TrainMetrics       Metrics
	TestMetrics        Metrics
	Generations        int
	Evaluations        int
	BestFitness        float64
	BestFitnessHistory []float64
	AvgFitnessHistory  []float64
	Duration           time.Duration
}

// ExperimentResult aggregates the folds of one architecture and run.
type ExperimentResult struct {
	RunID        string
	Architecture []int
	Activation   string
	Run          int
	Seed         int64
	Folds        []FoldResult
	CreatedAt    time.Time

	MeanTestAccuracy  float64
	StdTestAccuracy   float64
	MeanTrainAccuracy float64
	StdTrainAccuracy  float64
}

// NewExperimentResult creates an empty result with a fresh run id.
func NewExperimentResult(architecture []int, activation string, run int, seed int64) ExperimentResult {
	return ExperimentResult{
		RunID:        uuid.Must(uuid.NewV4()).String(),
		Architecture: append([]int(nil), architecture...),
		Activation:   activation,
		Run:          run,
		Seed:         seed,
		CreatedAt:    time.Now().UTC(),
	}
}

// ArchitectureString renders the layer sizes as "30-10-1".
func (e ExperimentResult) ArchitectureString() string {
	return ga.FormatArchitecture(e.Architecture)
}

// Calculate computes mean and sample standard deviation of the fold accuracies.
// The deviation is 0 for fewer than two folds.
func (e *ExperimentResult) Calculate() {
	test := e.TestAccuracies()
	train := make([]float64, len(e.Folds))
	for i, f := range e.Folds {
		train[i] = f.TrainAccuracy
	}
	e.MeanTestAccuracy = ga.Mean(test)
	e.StdTestAccuracy = ga.Stdev(test)
	e.MeanTrainAccuracy = ga.Mean(train)
	e.StdTrainAccuracy = ga.Stdev(train)
}

// TestAccuracies returns the test accuracy of every fold.
func (e ExperimentResult) TestAccuracies() []float64 {
	accs := make([]float64, len(e.Folds))
	for i, f := range e.Folds {
		accs[i] = f.TestAccuracy
	}
	return accs
}

// AggregatedTestMetrics sums the test confusion matrices of all folds.
func (e ExperimentResult) AggregatedTestMetrics() Metrics {
	var m Metrics
	for _, f := range e.Folds {
		m.Add(f.TestMetrics)
	}
	return m
}

// TotalEvaluations returns the number of fitness evaluations over all folds.
func (e ExperimentResult) TotalEvaluations() int {
	total := 0
	for _, f := range e.Folds {
		total += f.Evaluations
	}
	return total
}

// Summary is the per-experiment row of the summary export.
type Summary struct {
	Architecture       string
	MeanTestAccuracy   float64
	StdTestAccuracy    float64
	MeanTrainAccuracy  float64
	StdTrainAccuracy   float64
	MinTestAccuracy    float64
	MaxTestAccuracy    float64
	MedianTestAccuracy float64
	MeanPrecision      float64
	MeanRecall         float64
	MeanF1             float64
}

// Summarize derives the summary row. The median is the upper middle element of the
// sorted test accuracies.
func (e ExperimentResult) Summarize() Summary {
	s := Summary{
		Architecture:      e.ArchitectureString(),
		MeanTestAccuracy:  e.MeanTestAccuracy,
		StdTestAccuracy:   e.StdTestAccuracy,
		MeanTrainAccuracy: e.MeanTrainAccuracy,
		StdTrainAccuracy:  e.StdTrainAccuracy,
	}
	if len(e.Folds) == 0 {
		return s
	}
	accs := e.TestAccuracies()
	sort.Float64s(accs)
	s.MinTestAccuracy = ga.MinFloat(accs)
	s.MaxTestAccuracy = ga.MaxFloat(accs)
	s.MedianTestAccuracy = accs[len(accs)/2]

	precision := make([]float64, len(e.Folds))
	recall := make([]float64, len(e.Folds))
	f1 := make([]float64, len(e.Folds))
	for i, f := range e.Folds {
		precision[i] = f.TestMetrics.Precision
		recall[i] = f.TestMetrics.Recall
		f1[i] = f.TestMetrics.F1
	}
	s.MeanPrecision = ga.Mean(precision)
	s.MeanRecall = ga.Mean(recall)
	s.MeanF1 = ga.Mean(f1)
	return s
}

// Best returns the index of the experiment with the highest mean test accuracy, or -1.
func Best(experiments []ExperimentResult) int {
	best := -1
	for i, e := range experiments {
		if best == -1 || e.MeanTestAccuracy > experiments[best].MeanTestAccuracy {
			best = i
		}
	}
	return best
}
