// Package dice provides the randomness abstraction shared by world generation
// and the game engine.
package dice

import (
	"math/rand/v2"
	"time"
)

// Source is the randomness provider for the game.
type Source interface {
	// Intn returns a non-negative random int in [0, n). n must be > 0.
	Intn(n int) int
}

type pcgSource struct {
	r *rand.Rand
}

func (s *pcgSource) Intn(n int) int {
	return s.r.IntN(n)
}

// NewSource returns a reproducible Source for the given seed.
func NewSource(seed uint64) Source {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewTimeSource returns a Source seeded from the wall clock, along with the seed used.
func NewTimeSource() (Source, uint64) {
	seed := uint64(time.Now().UnixNano())
	return NewSource(seed), seed
}

// Between returns a value in [lo, hi].
func Between(src Source, lo, hi int) int {
	return src.Intn(hi-lo+1) + lo
}
