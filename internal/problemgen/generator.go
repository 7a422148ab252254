package problemgen

import (
	"math/rand/v2"
	"time"
)

// Source is the random source used for every draw.
// *rand.Rand from math/rand/v2 satisfies it; tests inject scripted sources.
type Source interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int

	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
}

// Generator produces questions, sequences, pairs and labyrinth levels.
// It holds no state besides its random source.
type Generator struct {
	rnd Source
}

// New creates a Generator drawing from src.
func New(src Source) *Generator {
	return &Generator{rnd: src}
}

// NewDefault creates a Generator seeded from the clock.
// Outputs are not reproducible across runs.
func NewDefault() *Generator {
	seed := uint64(time.Now().UnixNano())
	return New(rand.New(rand.NewPCG(seed, seed>>17|1)))
}

// coin returns true with probability 1/2.
func (g *Generator) coin() bool {
	return g.rnd.Float64() < 0.5
}

// shuffle permutes xs in place (Fisher-Yates).
func shuffle[T any](rnd Source, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// Shuffle permutes xs in place using the generator's source.
func Shuffle[T any](g *Generator, xs []T) {
	shuffle(g.rnd, xs)
}
