package report

import (
	"fmt"
	"io"

	"github.com/baldhumanity/mlp-ga/ga"
)

// Metrics is the binary confusion matrix (class 1 = positive) and the scores derived
// from it. Scores with a zero denominator are 0.
type Metrics struct {
	TruePositive  int
	TrueNegative  int
	FalsePositive int
	FalseNegative int

	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
}

// ComputeMetrics compares predictions with the actual labels.
func ComputeMetrics(predictions, actual []int) (Metrics, error) {
	if len(predictions) != len(actual) {
		return Metrics{}, fmt.Errorf("%d predictions but %d labels: %w", len(predictions), len(actual), ga.ErrSizeMismatch)
	}
	var m Metrics
	for i, p := range predictions {
		switch {
		case p == 1 && actual[i] == 1:
			m.TruePositive++
		case p == 0 && actual[i] == 0:
			m.TrueNegative++
		case p == 1 && actual[i] == 0:
			m.FalsePositive++
		case p == 0 && actual[i] == 1:
			m.FalseNegative++
		}
	}
	m.Calculate()
	return m, nil
}

// Calculate derives the scores from the confusion counts.
func (m *Metrics) Calculate() {
	total := m.TruePositive + m.TrueNegative + m.FalsePositive + m.FalseNegative
	m.Accuracy, m.Precision, m.Recall, m.F1 = 0, 0, 0, 0
	if total == 0 {
		return
	}
	m.Accuracy = float64(m.TruePositive+m.TrueNegative) / float64(total)
	if m.TruePositive+m.FalsePositive > 0 {
		m.Precision = float64(m.TruePositive) / float64(m.TruePositive+m.FalsePositive)
	}
	if m.TruePositive+m.FalseNegative > 0 {
		m.Recall = float64(m.TruePositive) / float64(m.TruePositive+m.FalseNegative)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
}

// Add accumulates the confusion counts of other and recalculates the scores.
func (m *Metrics) Add(other Metrics) {
	m.TruePositive += other.TruePositive
	m.TrueNegative += other.TrueNegative
	m.FalsePositive += other.FalsePositive
	m.FalseNegative += other.FalseNegative
	m.Calculate()
}

// Write prints the metrics in a readable block.
func (m Metrics) Write(w io.Writer) {
	fmt.Fprintf(w, "Classification Metrics:\n")
	fmt.Fprintf(w, "  Accuracy:  %.4f%%\n", m.Accuracy*100)
	fmt.Fprintf(w, "  Precision: %.4f%%\n", m.Precision*100)
	fmt.Fprintf(w, "  Recall:    %.4f%%\n", m.Recall*100)
	fmt.Fprintf(w, "  F1-Score:  %.4f\n", m.F1)
	fmt.Fprintf(w, "  TP: %d, TN: %d, FP: %d, FN: %d\n", m.TruePositive, m.TrueNegative, m.FalsePositive, m.FalseNegative)
}
