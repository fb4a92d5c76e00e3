package ifs

import (
	"math/rand/v2"
)

// Rand is the source of randomness used for choosing maps and generating
// colors. *rand.Rand from math/rand/v2 satisfies it.
//
// Float64 must return values in [0, 1).
type Rand interface {
	Float64() float64
}

// NewRand returns a deterministic source seeded with seed. Two engines built
// from the same system with sources of the same seed produce the same points.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newEntropyRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
