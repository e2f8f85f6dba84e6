// SPDX-License-Identifier: MIT

// Package rng centralizes deterministic random generation for draws and
// resampling.
//
// Goals:
//   - Determinism: same seed ⇒ identical draw tables and samples across runs.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: derived streams for parallel workers or per-variable draws.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
//   - Use Derive to create independent streams for workers.
package rng

import "math/rand/v2"

// DefaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed uint64 = 1

// New returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func New(seed uint64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewPCG(s, mix(s, 0)))
}

// mix combines a parent seed and a stream identifier into a new 64-bit seed
// using the SplitMix64 finalizer (Vigna 2014), so that neighbouring inputs
// produce well-separated outputs.
//
// Complexity: O(1).
func mix(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// Derive creates an independent deterministic stream from base and a stream
// identifier. If base==nil, DefaultSeed is used as the parent. Otherwise
// base.Uint64() is consumed once, so two derivations with the same stream id
// still yield different children.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	var parent uint64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.Uint64()
	}
	seed := mix(parent, stream)

	return rand.New(rand.NewPCG(seed, mix(seed, stream+1)))
}

// Shuffle performs an in-place Fisher–Yates shuffle of a using r.
// If r==nil, the default deterministic stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle(a []int, r *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	if r == nil {
		r = New(0)
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.IntN(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Perm returns a permutation of 0..n-1 generated deterministically from r.
// n<=0 yields an empty permutation.
//
// Complexity: O(n) time, O(n) space.
func Perm(n int, r *rand.Rand) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(p, r)

	return p
}
