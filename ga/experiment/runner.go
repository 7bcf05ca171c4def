// Package experiment runs k-fold cross-validation of GA-trained networks over a set of
// architectures and repeated runs.
package experiment

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/baldhumanity/mlp-ga/ga"
	"github.com/baldhumanity/mlp-ga/ga/data"
	"github.com/baldhumanity/mlp-ga/ga/nn"
	"github.com/baldhumanity/mlp-ga/ga/report"
)

// Runner drives the experiments described by Config over Dataset.
// Store and Out are optional.
type Runner struct {
	Config  *ga.Config
	Dataset *data.Dataset
	Store   report.Store
	Out     io.Writer
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return io.Discard
	}
	return r.Out
}

// Run evaluates every configured architecture Runs times. Each completed experiment
// is saved to the store and the snapshot is rewritten. Cancelling ctx stops the run
// between folds and returns the experiments completed so far.
func (r *Runner) Run(ctx context.Context) ([]report.ExperimentResult, error) {
	if r.Config == nil || r.Dataset == nil {
		return nil, fmt.Errorf("runner requires a config and a dataset")
	}
	archs := make([][]int, 0, len(r.Config.Network.Architectures))
	for _, a := range r.Config.Network.Architectures {
		layers, err := ga.ParseArchitecture(a)
		if err != nil {
			return nil, err
		}
		archs = append(archs, layers)
	}

	var experiments []report.ExperimentResult
	for _, arch := range archs {
		for run := 0; run < r.Config.Experiment.Runs; run++ {
			exp, err := r.RunArchitecture(ctx, arch, run)
			if err != nil {
				return experiments, err
			}
			experiments = append(experiments, exp)

			if r.Store != nil {
				if err := r.Store.SaveExperiment(ctx, exp); err != nil {
					return experiments, fmt.Errorf("failed to save experiment %s: %w", exp.RunID, err)
				}
			}
			if path := r.Config.Experiment.SnapshotPath; path != "" {
				if err := report.SaveSnapshot(path, experiments); err != nil {
					return experiments, err
				}
			}
		}
	}
	return experiments, nil
}

// RunArchitecture performs one k-fold cross-validation of arch. A single random
// stream seeded with Seed+run creates the folds and then drives every optimizer.
func (r *Runner) RunArchitecture(ctx context.Context, arch []int, run int) (report.ExperimentResult, error) {
	cfg := r.Config
	act, err := ga.ParseActivation(cfg.Network.Activation)
	if err != nil {
		return report.ExperimentResult{}, err
	}
	if len(arch) < 2 {
		return report.ExperimentResult{}, fmt.Errorf("architecture %v: %w", arch, ga.ErrInvalidTopology)
	}
	if arch[0] != r.Dataset.NumFeatures() {
		return report.ExperimentResult{}, fmt.Errorf("architecture %s expects %d inputs but the dataset has %d features: %w",
			ga.FormatArchitecture(arch), arch[0], r.Dataset.NumFeatures(), ga.ErrSizeMismatch)
	}

	seed := cfg.Experiment.Seed + int64(run)
	rng := ga.NewSource(seed)
	if err := r.Dataset.CreateFoldsFrom(cfg.Experiment.Folds, rng); err != nil {
		return report.ExperimentResult{}, err
	}

	w := r.out()
	exp := report.NewExperimentResult(arch, act.String(), run, seed)
	fmt.Fprintf(w, "\nTesting architecture %s, run %d (%d folds)\n", exp.ArchitectureString(), run, cfg.Experiment.Folds)

	for fold := 0; fold < cfg.Experiment.Folds; fold++ {
		if err := ctx.Err(); err != nil {
			return exp, err
		}
		res, err := r.runFold(r.Dataset, arch, act, fold, rng)
		if err != nil {
			return exp, fmt.Errorf("fold %d: %w", fold+1, err)
		}
		exp.Folds = append(exp.Folds, res)
		fmt.Fprintf(w, "  Fold %d/%d: train %.2f%%, test %.2f%% (%s)\n",
			fold+1, cfg.Experiment.Folds, res.TrainAccuracy*100, res.TestAccuracy*100, res.Duration.Round(time.Millisecond))
	}

	exp.Calculate()
	return exp, nil
}

func (r *Runner) runFold(splitter data.Splitter, arch []int, act ga.Activation, fold int, rng ga.Random) (report.FoldResult, error) {
	start := time.Now()
	split, err := splitter.Split(fold)
	if err != nil {
		return report.FoldResult{}, err
	}
	net, err := nn.New(arch, act)
	if err != nil {
		return report.FoldResult{}, err
	}

	opt, err := ga.NewOptimizer(net.NumParams(), r.Config.GA, rng)
	if err != nil {
		return report.FoldResult{}, err
	}
	opt.SetFitnessFactory(nn.NewFitnessFactory(net, split.TrainX, split.TrainY))
	opt.SetOutput(r.out())
	if err := opt.Evolve(); err != nil {
		return report.FoldResult{}, err
	}

	best := opt.BestIndividual()
	if err := net.Decode(best.Chromosome); err != nil {
		return report.FoldResult{}, err
	}

	res := report.FoldResult{
		Fold:               fold + 1,
		Generations:        opt.Generation(),
		Evaluations:        opt.Evaluations(),
		BestFitness:        best.Fitness,
		BestFitnessHistory: opt.BestFitnessHistory(),
		AvgFitnessHistory:  opt.AvgFitnessHistory(),
	}
	if res.TrainMetrics, err = score(net, split.TrainX, split.TrainY); err != nil {
		return report.FoldResult{}, err
	}
	if res.TestMetrics, err = score(net, split.TestX, split.TestY); err != nil {
		return report.FoldResult{}, err
	}
	if res.TrainAccuracy, err = net.EvaluateAccuracy(split.TrainX, split.TrainY); err != nil {
		return report.FoldResult{}, err
	}
	if res.TestAccuracy, err = net.EvaluateAccuracy(split.TestX, split.TestY); err != nil {
		return report.FoldResult{}, err
	}
	res.Duration = time.Since(start)
	return res, nil
}

func score(net *nn.Network, X [][]float64, y []int) (report.Metrics, error) {
	predictions, err := net.PredictAll(X)
	if err != nil {
		return report.Metrics{}, err
	}
	return report.ComputeMetrics(predictions, y)
}

// SaveResults writes all_results.csv and results_summary.csv into dir.
func SaveResults(dir string, experiments []report.ExperimentResult) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create results directory '%s': %w", dir, err)
	}
	if err := report.SaveAllResults(filepath.Join(dir, "all_results.csv"), experiments); err != nil {
		return err
	}
	return report.SaveSummary(filepath.Join(dir, "results_summary.csv"), experiments)
}
