package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

var allResultsHeader = []string{
	"Architecture", "Run", "Fold", "Train_Accuracy", "Test_Accuracy", "Generations", "Best_Fitness",
	"Train_TP", "Train_TN", "Train_FP", "Train_FN", "Train_Precision", "Train_Recall", "Train_F1",
	"Test_TP", "Test_TN", "Test_FP", "Test_FN", "Test_Precision", "Test_Recall", "Test_F1",
}

var summaryHeader = []string{
	"Architecture", "Run", "Mean_Test_Accuracy", "Std_Test_Accuracy",
	"Mean_Train_Accuracy", "Std_Train_Accuracy",
	"Min_Test_Acc", "Max_Test_Acc", "Median_Test_Acc",
	"Mean_Precision", "Mean_Recall", "Mean_F1",
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

func metricCells(m Metrics) []string {
	return []string{
		strconv.Itoa(m.TruePositive), strconv.Itoa(m.TrueNegative),
		strconv.Itoa(m.FalsePositive), strconv.Itoa(m.FalseNegative),
		ftoa(m.Precision), ftoa(m.Recall), ftoa(m.F1),
	}
}

// AllResultsRecords returns the per-fold export, header first.
func AllResultsRecords(experiments []ExperimentResult) [][]string {
	records := [][]string{allResultsHeader}
	for _, e := range experiments {
		arch := e.ArchitectureString()
		for _, f := range e.Folds {
			row := []string{
				arch, strconv.Itoa(e.Run), strconv.Itoa(f.Fold),
				ftoa(f.TrainAccuracy), ftoa(f.TestAccuracy),
				strconv.Itoa(f.Generations), ftoa(f.BestFitness),
			}
			row = append(row, metricCells(f.TrainMetrics)...)
			row = append(row, metricCells(f.TestMetrics)...)
			records = append(records, row)
		}
	}
	return records
}

// SummaryRecords returns the per-experiment export, header first.
func SummaryRecords(experiments []ExperimentResult) [][]string {
	records := [][]string{summaryHeader}
	for _, e := range experiments {
		s := e.Summarize()
		records = append(records, []string{
			s.Architecture, strconv.Itoa(e.Run),
			ftoa(s.MeanTestAccuracy), ftoa(s.StdTestAccuracy),
			ftoa(s.MeanTrainAccuracy), ftoa(s.StdTrainAccuracy),
			ftoa(s.MinTestAccuracy), ftoa(s.MaxTestAccuracy), ftoa(s.MedianTestAccuracy),
			ftoa(s.MeanPrecision), ftoa(s.MeanRecall), ftoa(s.MeanF1),
		})
	}
	return records
}

// SaveAllResults writes the per-fold export to path.
func SaveAllResults(path string, experiments []ExperimentResult) error {
	return writeCSV(path, AllResultsRecords(experiments))
}

// SaveSummary writes the per-experiment export to path.
func SaveSummary(path string, experiments []ExperimentResult) error {
	return writeCSV(path, SummaryRecords(experiments))
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file '%s': %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write results file '%s': %w", path, err)
	}
	return f.Close()
}
