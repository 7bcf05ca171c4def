package ga

// Stagnation records how long the best-ever fitness has gone without improving.
// It is bookkeeping only: evolution always runs for MaxGenerations.
type Stagnation struct {
	LastImproved int // Generation of the most recent best-ever improvement (0 = initial population).
	Improvements int // Number of best-ever assignments, the initial population's included.
	generation   int
}

// Update records the outcome of a generation.
func (s *Stagnation) Update(generation int, improved bool) {
	s.generation = generation
	if improved {
		s.LastImproved = generation
		s.Improvements++
	}
}

// Since returns the number of generations since the last improvement.
func (s Stagnation) Since() int {
	return s.generation - s.LastImproved
}
