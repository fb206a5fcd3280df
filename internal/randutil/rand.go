// Package randutil centralises deterministic random-source construction so
// that every consumer of a deal seed derives the same sequence.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from a 64-bit deal seed.
// rand/v2's PCG wants two 64-bit seeds; both are derived from the one seed
// through a splitmix-style finalizer so the full seed space is usable.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(mix(seed), mix(seed+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
