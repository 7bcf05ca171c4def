package ga

// Selection, recombination, mutation and replacement. Every random draw goes through
// o.rng in the order documented on Evolve.

// tournamentSelect samples TournamentSize individuals with replacement and returns the
// fittest. The earliest sampled individual wins ties. The returned individual shares its
// chromosome with the population and must be copied before modification.
func (o *Optimizer) tournamentSelect() Individual {
	best := -1
	for i := 0; i < o.config.TournamentSize; i++ {
		idx := o.rng.IntRange(0, len(o.population)-1)
		if best == -1 || o.population[idx].Fitness > o.population[best].Fitness {
			best = idx
		}
	}
	return o.population[best]
}

// crossover produces two children. With probability CrossoverRate every gene is swapped
// between the children with probability 0.5; otherwise the children are exact copies.
func (o *Optimizer) crossover(parent1, parent2 Individual) (Individual, Individual) {
	child1 := parent1.Copy()
	child2 := parent2.Copy()
	child1.Fitness = Unevaluated
	child2.Fitness = Unevaluated

	if o.rng.Uniform(0.0, 1.0) < o.config.CrossoverRate {
		for i := range child1.Chromosome {
			if o.rng.Uniform(0.0, 1.0) < 0.5 {
				child1.Chromosome[i] = parent2.Chromosome[i]
				child2.Chromosome[i] = parent1.Chromosome[i]
			}
		}
	}
	return child1, child2
}

// mutate perturbs each gene with probability MutationRate by uniform noise in
// [-MutationStrength, MutationStrength], clamped to [GeneMin, GeneMax].
func (o *Optimizer) mutate(ind Individual) {
	for i := range ind.Chromosome {
		if o.rng.Uniform(0.0, 1.0) < o.config.MutationRate {
			noise := o.rng.Uniform(-o.config.MutationStrength, o.config.MutationStrength)
			ind.Chromosome[i] = clamp(ind.Chromosome[i]+noise, o.config.GeneMin, o.config.GeneMax)
		}
	}
}

// breed builds a batch of PopulationSize unevaluated offspring, two per selected pair.
// When PopulationSize is odd the second child of the last pair is still generated
// (its draws are consumed) but dropped.
func (o *Optimizer) breed() []Individual {
	n := o.config.PopulationSize
	offspring := make([]Individual, 0, n)
	for len(offspring) < n {
		parent1 := o.tournamentSelect()
		parent2 := o.tournamentSelect()

		child1, child2 := o.crossover(parent1, parent2)
		o.mutate(child1)
		o.mutate(child2)

		offspring = append(offspring, child1)
		if len(offspring) < n {
			offspring = append(offspring, child2)
		}
	}
	return offspring
}

// replacePopulation forms the next generation: the top Elites() of the old population
// unchanged, then the best offspring until PopulationSize is reached.
func (o *Optimizer) replacePopulation(offspring []Individual) {
	sortByFitness(o.population)
	sortByFitness(offspring)

	n := o.config.PopulationSize
	elites := o.config.Elites()
	if elites > len(o.population) {
		elites = len(o.population)
	}

	next := make([]Individual, 0, n)
	next = append(next, o.population[:elites]...)
	for i := 0; i < len(offspring) && len(next) < n; i++ {
		next = append(next, offspring[i])
	}
	o.population = next
}
