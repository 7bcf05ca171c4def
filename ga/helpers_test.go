package ga

// scriptedRandom replays fixed draws. Uniform scales the next fraction into [lo, hi).
type scriptedRandom struct {
	fractions []float64
	ints      []int
}

func (s *scriptedRandom) Uniform(lo, hi float64) float64 {
	f := s.fractions[0]
	s.fractions = s.fractions[1:]
	return lo + (hi-lo)*f
}

func (s *scriptedRandom) IntRange(lo, hi int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func (s *scriptedRandom) Shuffle(n int, swap func(i, j int)) {}

// sumFitness rewards large genes.
func sumFitness(chromosome []float64) (float64, error) {
	total := 0.0
	for _, g := range chromosome {
		total += g
	}
	return total, nil
}

func testGAConfig() GAConfig {
	cfg := DefaultGAConfig()
	cfg.PopulationSize = 20
	cfg.MaxGenerations = 15
	return cfg
}

// recordingRandom delegates to Random and remembers every IntRange result.
type recordingRandom struct {
	Random
	picks []int
}

func (r *recordingRandom) IntRange(lo, hi int) int {
	v := r.Random.IntRange(lo, hi)
	r.picks = append(r.picks, v)
	return v
}
