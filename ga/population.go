package ga

import (
	"fmt"
	"io"
	"os"
	"time"
)

// State is the lifecycle stage of an Optimizer.
type State int

const (
	Uninitialized State = iota
	PopulationInitialized
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case PopulationInitialized:
		return "population-initialized"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Optimizer evolves a fixed-size population of real-valued chromosomes against an
// opaque fitness function.
type Optimizer struct {
	config           GAConfig
	chromosomeLength int
	rng              Random

	fitnessFunc    FitnessFunc
	fitnessFactory FitnessFactory
	workerFuncs    []FitnessFunc

	state       State
	population  []Individual
	best        Individual
	generation  int
	evaluations int
	stagnation  Stagnation

	bestFitnessHistory []float64
	avgFitnessHistory  []float64

	out io.Writer
}

// NewOptimizer creates an optimizer for chromosomes of the given length.
// All random draws are taken from rng.
func NewOptimizer(chromosomeLength int, config GAConfig, rng Random) (*Optimizer, error) {
	if chromosomeLength < 1 {
		return nil, fmt.Errorf("chromosome length must be positive, got %d", chromosomeLength)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Optimizer{
		config:           config,
		chromosomeLength: chromosomeLength,
		rng:              rng,
		best:             Individual{Fitness: Unevaluated},
		out:              os.Stdout,
	}, nil
}

// SetFitnessFunction binds the objective used to score chromosomes. It replaces any
// factory bound earlier, so evaluation becomes sequential.
func (o *Optimizer) SetFitnessFunction(f FitnessFunc) {
	o.fitnessFunc = f
	o.fitnessFactory = nil
	o.workerFuncs = nil
}

// SetFitnessFactory binds a factory of independent objectives. It enables concurrent
// evaluation when Workers > 1 and also provides the sequential objective.
func (o *Optimizer) SetFitnessFactory(factory FitnessFactory) {
	o.fitnessFactory = factory
	o.workerFuncs = nil
	if factory != nil {
		o.fitnessFunc = factory()
	}
}

// SetOutput redirects verbose progress output (default os.Stdout).
func (o *Optimizer) SetOutput(w io.Writer) {
	o.out = w
}

// Evolve runs the genetic algorithm for exactly MaxGenerations generations.
//
// Draw order: initial genes individual by individual; then per offspring pair the two
// tournaments, the crossover trigger, the per-gene swap coins (only when triggered) and
// the mutation draws of the first child followed by the second.
func (o *Optimizer) Evolve() error {
	if o.fitnessFunc == nil {
		return ErrMissingFitnessFunction
	}
	start := time.Now()

	o.initializePopulation()
	if err := o.evaluate(o.population); err != nil {
		return err
	}
	o.stagnation.Update(0, o.updateBest(o.population))

	if o.config.Verbose {
		fmt.Fprintf(o.out, "\n=== Starting Genetic Algorithm ===\n")
		fmt.Fprintf(o.out, "Population size: %d\n", o.config.PopulationSize)
		fmt.Fprintf(o.out, "Max generations: %d\n", o.config.MaxGenerations)
		fmt.Fprintf(o.out, "Chromosome length: %d\n\n", o.chromosomeLength)
	}

	for gen := 0; gen < o.config.MaxGenerations; gen++ {
		offspring := o.breed()
		if err := o.evaluate(offspring); err != nil {
			return fmt.Errorf("generation %d: %w", gen, err)
		}
		o.replacePopulation(offspring)
		improved := o.updateBest(offspring)

		o.generation = gen + 1
		o.stagnation.Update(o.generation, improved)
		o.bestFitnessHistory = append(o.bestFitnessHistory, o.best.Fitness)
		o.avgFitnessHistory = append(o.avgFitnessHistory, meanFitness(o.population))

		if o.config.Verbose && (gen%10 == 0 || gen == o.config.MaxGenerations-1) {
			o.printGenerationStats(gen)
		}
	}
	o.state = Terminated

	if o.config.Verbose {
		fmt.Fprintf(o.out, "\n=== Evolution Complete ===\n")
		fmt.Fprintf(o.out, "  Best Fitness: %.4f\n", o.best.Fitness)
		fmt.Fprintf(o.out, "  Generations: %d (last improvement at %d)\n", len(o.bestFitnessHistory), o.stagnation.LastImproved)
		fmt.Fprintf(o.out, "  Evaluations: %d in %s\n", o.evaluations, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// initializePopulation draws every gene uniformly from [InitMin, InitMax] and resets
// all run statistics.
func (o *Optimizer) initializePopulation() {
	o.population = make([]Individual, o.config.PopulationSize)
	for i := range o.population {
		ind := NewIndividual(o.chromosomeLength)
		for j := range ind.Chromosome {
			ind.Chromosome[j] = o.rng.Uniform(o.config.InitMin, o.config.InitMax)
		}
		o.population[i] = ind
	}
	o.best = Individual{Fitness: Unevaluated}
	o.generation = 0
	o.evaluations = 0
	o.stagnation = Stagnation{}
	o.bestFitnessHistory = nil
	o.avgFitnessHistory = nil
	o.state = PopulationInitialized
}

// updateBest replaces the best-ever individual when a strictly fitter one is present.
func (o *Optimizer) updateBest(individuals []Individual) bool {
	idx := bestOf(individuals)
	if idx < 0 || individuals[idx].Fitness <= o.best.Fitness {
		return false
	}
	o.best = individuals[idx].Copy()
	return true
}

func (o *Optimizer) printGenerationStats(generation int) {
	fmt.Fprintf(o.out, "Gen %4d | Best: %.4f | Avg: %.4f\n",
		generation, o.best.Fitness, o.avgFitnessHistory[len(o.avgFitnessHistory)-1])
}

// State returns the lifecycle stage.
func (o *Optimizer) State() State { return o.state }

// Config returns the optimizer parameters.
func (o *Optimizer) Config() GAConfig { return o.config }

// BestIndividual returns a copy of the fittest individual seen so far.
func (o *Optimizer) BestIndividual() Individual { return o.best.Copy() }

// BestFitness returns the best-ever fitness (Unevaluated before Evolve).
func (o *Optimizer) BestFitness() float64 { return o.best.Fitness }

// BestFitnessHistory returns the best-ever fitness after each generation.
func (o *Optimizer) BestFitnessHistory() []float64 {
	return append([]float64(nil), o.bestFitnessHistory...)
}

// AvgFitnessHistory returns the mean population fitness after each generation.
func (o *Optimizer) AvgFitnessHistory() []float64 {
	return append([]float64(nil), o.avgFitnessHistory...)
}

// Population returns a copy of the current population.
func (o *Optimizer) Population() []Individual {
	pop := make([]Individual, len(o.population))
	for i, ind := range o.population {
		pop[i] = ind.Copy()
	}
	return pop
}

// Generation returns the number of completed generations.
func (o *Optimizer) Generation() int { return o.generation }

// Evaluations returns the number of fitness evaluations performed by the last run.
func (o *Optimizer) Evaluations() int { return o.evaluations }

// Stagnation returns the improvement bookkeeping of the last run.
func (o *Optimizer) Stagnation() Stagnation { return o.stagnation }
