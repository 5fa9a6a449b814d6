package game

import "math/rand"

// Rand is the randomness source for event draws and risk rolls. It is
// injected so a seeded source makes whole sessions reproducible.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// NewSeededRand returns a deterministic Rand for the given seed.
func NewSeededRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
