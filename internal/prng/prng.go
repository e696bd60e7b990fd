// Package prng provides the per-goroutine deterministic random sources
// used by the randomized coloring kernels.
//
// Each worker owns a PRNG seeded from (base seed, goroutine/thread id,
// round index), the same triple the reference kernels derive their
// per-thread random_selector from. The overall output is then
// deterministic given the seed and the thread count; non-determinism
// across different thread counts is expected and documented, not a bug.
package prng

import (
	"golang.org/x/exp/rand"
)

// Source returns a new *rand.Rand seeded deterministically from the
// triple (baseSeed, workerID, round). Callers obtain a fresh Source per
// round rather than reusing one across rounds so that a kernel's output
// depends only on (baseSeed, threadCount), never on scheduling order
// within a round.
func Source(baseSeed uint64, workerID, round int) *rand.Rand {
	h := mix(baseSeed, uint64(workerID), uint64(round))
	return rand.New(rand.NewSource(h))
}

// mix combines three 64-bit values into a single seed using splitmix64,
// giving well-distributed seeds even for small, sequential inputs like
// worker IDs and round counters.
func mix(a, b, c uint64) uint64 {
	x := a ^ (b * 0x9E3779B97F4A7C15) ^ (c * 0xBF58476D1CE4E5B9)
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return x
}
