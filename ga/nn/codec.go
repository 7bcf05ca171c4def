package nn

import (
	"fmt"

	"github.com/baldhumanity/mlp-ga/ga"
)

// Chromosome layout, layer by layer: all weights of the layer in from-major/to-minor
// order, then the biases of the layer. Saved chromosomes depend on this order.

// Encode flattens all weights and biases into a chromosome.
func (net *Network) Encode() []float64 {
	chromosome := make([]float64, 0, net.numParams)
	for l, w := range net.weights {
		rows, cols := w.Dims()
		for i := 0; i < rows; i++ {
			chromosome = append(chromosome, w.RawRowView(i)[:cols]...)
		}
		for j := 0; j < net.biases[l].Len(); j++ {
			chromosome = append(chromosome, net.biases[l].AtVec(j))
		}
	}
	return chromosome
}

// Decode overwrites all weights and biases from a chromosome of length NumParams.
func (net *Network) Decode(chromosome []float64) error {
	if len(chromosome) != net.numParams {
		return fmt.Errorf("chromosome has %d genes, network has %d parameters: %w",
			len(chromosome), net.numParams, ga.ErrSizeMismatch)
	}
	idx := 0
	for l, w := range net.weights {
		rows, cols := w.Dims()
		for i := 0; i < rows; i++ {
			copy(w.RawRowView(i)[:cols], chromosome[idx:idx+cols])
			idx += cols
		}
		for j := 0; j < net.biases[l].Len(); j++ {
			net.biases[l].SetVec(j, chromosome[idx])
			idx++
		}
	}
	return nil
}
