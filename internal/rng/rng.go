// Package rng wraps the single random source shared by map generation, the
// spawner and AI for the length of a session.
package rng

import (
	"math/rand"
	"time"
)

// RNG is a seeded random source with dice helpers.
type RNG struct {
	seed int64
	r    *rand.Rand
}

// New returns an RNG seeded with seed. A zero seed is replaced by the
// current time.
func New(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{seed: seed, r: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed the source was created with.
func (g *RNG) Seed() int64 { return g.seed }

// RollDice sums n rolls of a die with the given number of sides.
// A die with fewer than one side always rolls 0.
func (g *RNG) RollDice(n, sides int) int {
	if sides < 1 {
		return 0
	}
	total := 0
	for range n {
		total += g.r.Intn(sides) + 1
	}
	return total
}

// Range returns a value in [lo, hi). When hi <= lo it returns lo.
func (g *RNG) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Intn(hi-lo)
}

// Intn returns a value in [0, n).
func (g *RNG) Intn(n int) int { return g.r.Intn(n) }
