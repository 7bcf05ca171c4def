package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldhumanity/mlp-ga/ga"
)

func TestComputeMetrics(t *testing.T) {
	m, err := ComputeMetrics([]int{1, 1, 0, 0, 1, 0}, []int{1, 0, 0, 1, 1, 0})
	require.NoError(t, err)

	assert.Equal(t, 2, m.TruePositive)
	assert.Equal(t, 2, m.TrueNegative)
	assert.Equal(t, 1, m.FalsePositive)
	assert.Equal(t, 1, m.FalseNegative)
	assert.InDelta(t, 4.0/6.0, m.Accuracy, 1e-12)
	assert.InDelta(t, 2.0/3.0, m.Precision, 1e-12)
	assert.InDelta(t, 2.0/3.0, m.Recall, 1e-12)
	assert.InDelta(t, 2.0/3.0, m.F1, 1e-12)

	_, err = ComputeMetrics([]int{1}, nil)
	assert.ErrorIs(t, err, ga.ErrSizeMismatch)
}

func TestMetricsZeroDenominators(t *testing.T) {
	m, err := ComputeMetrics([]int{0, 0}, []int{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Accuracy)
	assert.Equal(t, 0.0, m.Precision)
	assert.Equal(t, 0.0, m.Recall)
	assert.Equal(t, 0.0, m.F1)

	var empty Metrics
	empty.Calculate()
	assert.Equal(t, Metrics{}, empty)
}

func TestMetricsAdd(t *testing.T) {
	a := Metrics{TruePositive: 3, TrueNegative: 1}
	a.Add(Metrics{FalsePositive: 1, FalseNegative: 1})

	assert.Equal(t, 3, a.TruePositive)
	assert.InDelta(t, 4.0/6.0, a.Accuracy, 1e-12)
	assert.InDelta(t, 0.75, a.Precision, 1e-12)

	var out bytes.Buffer
	a.Write(&out)
	assert.Contains(t, out.String(), "TP: 3, TN: 1, FP: 1, FN: 1")
}
