package nn

import "github.com/baldhumanity/mlp-ga/ga"

// NewFitnessFunction binds a network and a training split into an objective: the
// chromosome is decoded into net and the training accuracy is returned.
// Every call overwrites the parameters of net, so the function must not be shared
// between goroutines.
func NewFitnessFunction(net *Network, X [][]float64, y []int) ga.FitnessFunc {
	return func(chromosome []float64) (float64, error) {
		if err := net.Decode(chromosome); err != nil {
			return 0, err
		}
		return net.EvaluateAccuracy(X, y)
	}
}

// NewFitnessFactory returns a factory whose functions each own a private clone of proto,
// for concurrent evaluation. The training split is shared read-only.
func NewFitnessFactory(proto *Network, X [][]float64, y []int) ga.FitnessFactory {
	return func() ga.FitnessFunc {
		return NewFitnessFunction(proto.Clone(), X, y)
	}
}
