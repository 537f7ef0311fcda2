package flappy

import "math/rand"

// RandomSource draws uniformly distributed values from a range.
// Spawning is the only consumer, which keeps the simulation reproducible
// whenever the source is seeded or scripted.
type RandomSource interface {
	// GenRange returns a value in [low, high]. If high <= low it returns low.
	GenRange(low, high float64) float64
}

// SeededSource is a RandomSource backed by a seeded math/rand generator.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource creates a deterministic source for the given seed.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

// GenRange implements RandomSource.
func (s *SeededSource) GenRange(low, high float64) float64 {
	if high <= low {
		return low
	}
	return low + s.rng.Float64()*(high-low)
}
