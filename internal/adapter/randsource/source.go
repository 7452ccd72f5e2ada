// Package randsource is the production ports.Rand: a seedable math/rand
// source, one instance per process. Tests inject scripted sequences instead.
package randsource

import (
	"math/rand"
	"time"
)

type Source struct {
	rng *rand.Rand
}

// New builds a source from the given seed; zero seeds from the clock.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

func (s *Source) Float64() float64                   { return s.rng.Float64() }
func (s *Source) Intn(n int) int                     { return s.rng.Intn(n) }
func (s *Source) Shuffle(n int, swap func(i, j int)) { s.rng.Shuffle(n, swap) }
