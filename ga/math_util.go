package ga

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// clamp restricts a value to a given range [minVal, maxVal].
func clamp(value, minVal, maxVal float64) float64 {
	return math.Max(minVal, math.Min(value, maxVal))
}

// Mean calculates the average of a slice of float64 values.
// An empty slice has mean 0.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	return stat.Mean(values, nil)
}

// Stdev calculates the sample standard deviation (divide by n-1).
// It is 0 for fewer than two values.
func Stdev(values []float64) float64 {
	if len(values) < 2 {
		return 0.0
	}
	return stat.StdDev(values, nil)
}

// MaxFloat returns the maximum value, or negative infinity for an empty slice.
func MaxFloat(values []float64) float64 {
	if len(values) == 0 {
		return math.Inf(-1)
	}
	return floats.Max(values)
}

// MinFloat returns the minimum value, or positive infinity for an empty slice.
func MinFloat(values []float64) float64 {
	if len(values) == 0 {
		return math.Inf(1)
	}
	return floats.Min(values)
}
