package ga

import (
	"fmt"

	"github.com/sourcegraph/conc/pool"
)

// evaluate scores every individual in place. With more than one worker and a fitness
// factory, individuals are scored concurrently, each worker owning its own FitnessFunc.
// Results are stored by index, so the outcome equals sequential evaluation.
func (o *Optimizer) evaluate(individuals []Individual) error {
	workers := o.config.Workers
	if workers > len(individuals) {
		workers = len(individuals)
	}
	if workers <= 1 || o.fitnessFactory == nil {
		for i := range individuals {
			fitness, err := o.fitnessFunc(individuals[i].Chromosome)
			if err != nil {
				return fmt.Errorf("fitness evaluation failed for individual %d: %w", i, err)
			}
			individuals[i].Fitness = fitness
		}
		o.evaluations += len(individuals)
		return nil
	}

	// One fitness function per worker, checked out for the duration of a task.
	free := make(chan FitnessFunc, workers)
	for len(o.workerFuncs) < workers {
		o.workerFuncs = append(o.workerFuncs, o.fitnessFactory())
	}
	for _, f := range o.workerFuncs[:workers] {
		free <- f
	}

	errs := make([]error, len(individuals))
	p := pool.New().WithMaxGoroutines(workers)
	for i := range individuals {
		p.Go(func() {
			f := <-free
			defer func() { free <- f }()
			fitness, err := f(individuals[i].Chromosome)
			if err != nil {
				errs[i] = err
				return
			}
			individuals[i].Fitness = fitness
		})
	}
	p.Wait()

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("fitness evaluation failed for individual %d: %w", i, err)
		}
	}
	o.evaluations += len(individuals)
	return nil
}
