package ga

import (
	"fmt"
	"math"
	"strings"
)

// Activation selects the function applied to the hidden layers of a network.
type Activation int

const (
	Logistic Activation = iota
	Tanh
	ReLU
)

// ActivationNames maps configuration names to activation kinds.
var ActivationNames = map[string]Activation{
	"logistic": Logistic,
	"sigmoid":  Logistic, // alias
	"tanh":     Tanh,
	"relu":     ReLU,
}

// ParseActivation resolves an activation kind by name.
func ParseActivation(name string) (Activation, error) {
	if a, ok := ActivationNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("unknown activation function: %s", name)
}

func (a Activation) String() string {
	switch a {
	case Logistic:
		return "logistic"
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	default:
		return fmt.Sprintf("activation(%d)", int(a))
	}
}

// Func returns the scalar function for the kind. Unknown kinds fall back to logistic.
func (a Activation) Func() func(float64) float64 {
	switch a {
	case Tanh:
		return math.Tanh
	case ReLU:
		return Rectify
	default:
		return Sigmoid
	}
}

// Sigmoid is the logistic function 1 / (1 + e^-x).
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Rectify is max(0, x).
func Rectify(x float64) float64 {
	return math.Max(0, x)
}
