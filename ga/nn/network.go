package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/baldhumanity/mlp-ga/ga"
)

// Network is a fully connected feed-forward classifier with a fixed topology.
// Hidden layers use the configured activation; the output layer always uses the
// logistic function.
type Network struct {
	layers     []int
	activation ga.Activation
	actFn      func(float64) float64
	numParams  int

	weights []*mat.Dense    // weights[l] is layers[l] x layers[l+1] (rows = from, cols = to)
	biases  []*mat.VecDense // biases[l] has layers[l+1] entries

	// Reusable forward-pass buffers, one per layer after the input.
	outputs []*mat.VecDense
}

// New creates a network with zeroed parameters.
func New(layers []int, activation ga.Activation) (*Network, error) {
	if len(layers) < 2 {
		return nil, fmt.Errorf("cannot create network with %d layers: %w", len(layers), ga.ErrInvalidTopology)
	}
	for i, n := range layers {
		if n < 1 {
			return nil, fmt.Errorf("layer %d has size %d: %w", i, n, ga.ErrInvalidTopology)
		}
	}

	net := &Network{
		layers:     append([]int(nil), layers...),
		activation: activation,
		actFn:      activation.Func(),
		weights:    make([]*mat.Dense, len(layers)-1),
		biases:     make([]*mat.VecDense, len(layers)-1),
		outputs:    make([]*mat.VecDense, len(layers)-1),
	}
	for l := 0; l < len(layers)-1; l++ {
		from, to := layers[l], layers[l+1]
		net.weights[l] = mat.NewDense(from, to, nil)
		net.biases[l] = mat.NewVecDense(to, nil)
		net.outputs[l] = mat.NewVecDense(to, nil)
		net.numParams += from*to + to
	}
	return net, nil
}

// Clone returns an independent network with the same topology and parameters.
func (net *Network) Clone() *Network {
	c, _ := New(net.layers, net.activation) // topology already validated
	for l := range net.weights {
		c.weights[l].Copy(net.weights[l])
		c.biases[l].CopyVec(net.biases[l])
	}
	return c
}

// Layers returns the layer sizes, input first.
func (net *Network) Layers() []int { return append([]int(nil), net.layers...) }

// Activation returns the hidden-layer activation kind.
func (net *Network) Activation() ga.Activation { return net.activation }

// NumParams returns the number of weights and biases, which is the chromosome length.
func (net *Network) NumParams() int { return net.numParams }

// NumInputs returns the input layer size.
func (net *Network) NumInputs() int { return net.layers[0] }

// NumOutputs returns the output layer size.
func (net *Network) NumOutputs() int { return net.layers[len(net.layers)-1] }

// RandomInitialize draws every weight and bias uniformly from [min, max] in chromosome order.
func (net *Network) RandomInitialize(rng ga.Random, min, max float64) {
	chromosome := make([]float64, net.numParams)
	for i := range chromosome {
		chromosome[i] = rng.Uniform(min, max)
	}
	_ = net.Decode(chromosome) // length matches by construction
}

// Forward computes the output layer activations for one sample.
// The returned slice is freshly allocated.
func (net *Network) Forward(input []float64) ([]float64, error) {
	if len(input) != net.layers[0] {
		return nil, fmt.Errorf("input has %d values, network expects %d: %w", len(input), net.layers[0], ga.ErrSizeMismatch)
	}

	var current mat.Vector = mat.NewVecDense(len(input), append([]float64(nil), input...))
	last := len(net.weights) - 1
	for l, w := range net.weights {
		out := net.outputs[l]
		// out = W^T x + b
		out.MulVec(w.T(), current)
		out.AddVec(out, net.biases[l])

		act := net.actFn
		if l == last {
			act = ga.Sigmoid
		}
		raw := out.RawVector()
		for i := 0; i < raw.N; i++ {
			raw.Data[i*raw.Inc] = act(raw.Data[i*raw.Inc])
		}
		current = out
	}

	result := make([]float64, net.NumOutputs())
	for i := range result {
		result[i] = current.AtVec(i)
	}
	return result, nil
}

// Predict returns the class for one sample: for a single output 1 when it is >= 0.5,
// otherwise the index of the largest output (first index wins ties).
func (net *Network) Predict(input []float64) (int, error) {
	output, err := net.Forward(input)
	if err != nil {
		return 0, err
	}
	if len(output) == 1 {
		if output[0] >= 0.5 {
			return 1, nil
		}
		return 0, nil
	}
	maxIdx := 0
	for i := 1; i < len(output); i++ {
		if output[i] > output[maxIdx] {
			maxIdx = i
		}
	}
	return maxIdx, nil
}

// EvaluateAccuracy returns the fraction of samples whose prediction equals the label.
// An empty data set has accuracy 0.
func (net *Network) EvaluateAccuracy(X [][]float64, y []int) (float64, error) {
	if len(X) != len(y) {
		return 0, fmt.Errorf("%d samples but %d labels: %w", len(X), len(y), ga.ErrSizeMismatch)
	}
	if len(X) == 0 {
		return 0, nil
	}
	correct := 0
	for i, x := range X {
		pred, err := net.Predict(x)
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		if pred == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(X)), nil
}

// PredictAll returns the prediction for every sample.
func (net *Network) PredictAll(X [][]float64) ([]int, error) {
	preds := make([]int, len(X))
	for i, x := range X {
		p, err := net.Predict(x)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		preds[i] = p
	}
	return preds, nil
}

// String describes the structure, e.g. "30-10-1 (logistic, 321 params)".
func (net *Network) String() string {
	return fmt.Sprintf("%s (%s, %d params)", ga.FormatArchitecture(net.layers), net.activation, net.numParams)
}
