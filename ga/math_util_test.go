package ga

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanAndStdev(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 5.0, Mean(values), 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7.0), Stdev(values), 1e-12)

	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Stdev([]float64{3}))
	assert.Equal(t, 0.0, Stdev(nil))
}

func TestMinMaxFloat(t *testing.T) {
	assert.Equal(t, 9.0, MaxFloat([]float64{1, 9, 3}))
	assert.Equal(t, 1.0, MinFloat([]float64{1, 9, 3}))
	assert.True(t, math.IsInf(MaxFloat(nil), -1))
	assert.True(t, math.IsInf(MinFloat(nil), 1))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, clamp(7, -5, 5))
	assert.Equal(t, -5.0, clamp(-7, -5, 5))
	assert.Equal(t, 1.5, clamp(1.5, -5, 5))
}

func TestActivations(t *testing.T) {
	assert.InDelta(t, 0.5, Sigmoid(0), 1e-12)
	assert.Equal(t, 0.0, Rectify(-3))
	assert.Equal(t, 2.0, Rectify(2))

	a, err := ParseActivation(" Sigmoid ")
	assert.NoError(t, err)
	assert.Equal(t, Logistic, a)
	assert.Equal(t, "tanh", Tanh.String())
	assert.InDelta(t, math.Tanh(0.3), Tanh.Func()(0.3), 1e-12)

	_, err = ParseActivation("softmax")
	assert.Error(t, err)
}

func TestStagnation(t *testing.T) {
	var s Stagnation
	s.Update(1, true)
	s.Update(2, false)
	s.Update(3, false)
	assert.Equal(t, 1, s.LastImproved)
	assert.Equal(t, 1, s.Improvements)
	assert.Equal(t, 2, s.Since())
}
