// Package random provides the PCG-backed random source used by simulations.
package random

import "math/rand/v2"

// Source is a seeded ports.RandomSource.
type Source struct {
	*rand.Rand
	seed uint64
}

// New creates a Source. A zero seed draws a fresh one, which Seed reports so
// the run can be replayed.
func New(seed uint64) *Source {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return &Source{
		Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() uint64 {
	return s.seed
}
