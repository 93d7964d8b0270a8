// Package randutil derives reproducible random sources for decks and players.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. Equal seeds give equal
// shuffles, which is what makes a whole session replayable.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns the seed for the n-th independent stream below a root seed, so that
// parallel sessions and per-seat players never share a sequence.
func Derive(root int64, n int) int64 {
	return int64(mix(uint64(root) + uint64(n+1)*goldenRatio64))
}

// Seed returns seed unchanged, or a time-based seed when seed is zero.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// splitmix64 finalizer
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
