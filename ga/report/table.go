package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gosuri/uitable"
)

// WriteExperiment prints the per-fold table, the cross-validation summary and the
// aggregated test metrics of one experiment.
func WriteExperiment(w io.Writer, e ExperimentResult) {
	rule := strings.Repeat("=", 70)
	fmt.Fprintf(w, "\n%s\nNetwork Structure: %s (run %d, id %s)\n%s\n", rule, e.ArchitectureString(), e.Run, e.RunID, rule)

	table := uitable.New()
	table.MaxColWidth = 40
	table.Wrap = false
	table.AddRow("FOLD", "TRAIN ACC", "TEST ACC", "GENERATIONS", "EVALUATIONS", "BEST FITNESS")
	for _, f := range e.Folds {
		table.AddRow(
			f.Fold,
			fmt.Sprintf("%.4f%%", f.TrainAccuracy*100),
			fmt.Sprintf("%.4f%%", f.TestAccuracy*100),
			f.Generations,
			humanize.Comma(int64(f.Evaluations)),
			fmt.Sprintf("%.4f", f.BestFitness),
		)
	}
	fmt.Fprintf(w, "\nPer-Fold Results:\n%s\n", table)

	fmt.Fprintf(w, "\nCross-Validation Summary:\n")
	fmt.Fprintf(w, "  Mean Train Accuracy: %.4f%% (±%.4f%%)\n", e.MeanTrainAccuracy*100, e.StdTrainAccuracy*100)
	fmt.Fprintf(w, "  Mean Test Accuracy:  %.4f%% (±%.4f%%)\n", e.MeanTestAccuracy*100, e.StdTestAccuracy*100)
	fmt.Fprintf(w, "  Fitness evaluations: %s\n", humanize.Comma(int64(e.TotalEvaluations())))

	fmt.Fprintf(w, "\nAggregated Test Metrics:\n")
	e.AggregatedTestMetrics().Write(w)
}

// WriteComparison prints one row per experiment and names the best architecture.
func WriteComparison(w io.Writer, experiments []ExperimentResult) {
	if len(experiments) == 0 {
		fmt.Fprintln(w, "No experiments to compare.")
		return
	}
	rule := strings.Repeat("=", 80)
	fmt.Fprintf(w, "\n%s\nCOMPARISON OF ALL NETWORK ARCHITECTURES\n%s\n\n", rule, rule)

	table := uitable.New()
	table.MaxColWidth = 40
	table.Wrap = false
	table.AddRow("ARCHITECTURE", "RUN", "MEAN TEST ACC", "STD DEV", "MEAN TRAIN ACC")
	for _, e := range experiments {
		table.AddRow(
			e.ArchitectureString(),
			e.Run,
			fmt.Sprintf("%.4f%%", e.MeanTestAccuracy*100),
			fmt.Sprintf("%.4f%%", e.StdTestAccuracy*100),
			fmt.Sprintf("%.4f%%", e.MeanTrainAccuracy*100),
		)
	}
	fmt.Fprintln(w, table)

	best := experiments[Best(experiments)]
	fmt.Fprintf(w, "\nBest Architecture: %s (%.4f%%)\n", best.ArchitectureString(), best.MeanTestAccuracy*100)
}
