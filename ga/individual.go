package ga

import (
	"math"
	"sort"
)

// Unevaluated is the fitness of an individual that has not been scored yet.
// It is below any value a fitness function can return.
var Unevaluated = math.Inf(-1)

// FitnessFunc maps a chromosome to a score where higher is better.
// It must not retain or modify the chromosome.
type FitnessFunc func(chromosome []float64) (float64, error)

// FitnessFactory returns an independent FitnessFunc on every call.
// Functions obtained from separate calls may run concurrently.
type FitnessFactory func() FitnessFunc

// Individual is a candidate parameter vector and its fitness.
type Individual struct {
	Chromosome []float64
	Fitness    float64
}

// NewIndividual creates an unevaluated individual with a zeroed chromosome of the given length.
func NewIndividual(length int) Individual {
	return Individual{
		Chromosome: make([]float64, length),
		Fitness:    Unevaluated,
	}
}

// Copy returns a deep copy so that the chromosome can be modified independently.
func (ind Individual) Copy() Individual {
	c := make([]float64, len(ind.Chromosome))
	copy(c, ind.Chromosome)
	return Individual{Chromosome: c, Fitness: ind.Fitness}
}

// Evaluated reports whether a fitness has been assigned.
func (ind Individual) Evaluated() bool {
	return ind.Fitness != Unevaluated
}

// sortByFitness orders individuals by fitness, highest first.
// The sort is stable so equal fitness keeps generation order.
func sortByFitness(individuals []Individual) {
	sort.SliceStable(individuals, func(i, j int) bool {
		return individuals[i].Fitness > individuals[j].Fitness
	})
}

// bestOf returns the index of the fittest individual; the first one wins ties.
// It returns -1 for an empty slice.
func bestOf(individuals []Individual) int {
	best := -1
	maxFitness := math.Inf(-1)
	for i, ind := range individuals {
		if best == -1 || ind.Fitness > maxFitness {
			maxFitness = ind.Fitness
			best = i
		}
	}
	return best
}

// meanFitness is the average fitness of a population.
func meanFitness(individuals []Individual) float64 {
	values := make([]float64, len(individuals))
	for i, ind := range individuals {
		values[i] = ind.Fitness
	}
	return Mean(values)
}
