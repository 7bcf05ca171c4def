package ga

import "math/rand"

// Random is the pseudorandom stream consumed by the fold partitioner and the optimizer.
// Every draw of a run comes from one Random so that replaying the seed replays the run.
type Random interface {
	// Uniform returns a real number in [lo, hi).
	Uniform(lo, hi float64) float64
	// IntRange returns an integer in [lo, hi], both ends inclusive.
	IntRange(lo, hi int) int
	// Shuffle permutes n elements with a Fisher-Yates shuffle.
	Shuffle(n int, swap func(i, j int))
}

// Source is the math/rand backed Random.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a seeded stream.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}
