// SPDX-License-Identifier: MIT
// Package draws - raw uniform sequences.
//
// Purpose:
//   - Provide the uniform building blocks behind every native draw type:
//     pseudo-random uniforms, Halton low-discrepancy sequences and modified
//     Latin hypercube sampling (MLHS).
//   - Fill outputs row-major: draw j of observation i is element i*drawCount+j
//     of the underlying sequence.
//
// Determinism:
//   - Halton is fully deterministic (r is ignored).
//   - Uniform and MLHS consume r in a fixed order.

package draws

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/choicedata/internal/rng"
)

// HaltonSkip is the number of leading Halton points discarded by the native
// Halton generators.
const HaltonSkip = 10

// openUniform returns a uniform variate on the open interval (0,1), so that
// the Wichura transform never receives 0.
func openUniform(r *rand.Rand) float64 {
	for {
		if u := r.Float64(); u > 0 {
			return u
		}
	}
}

// Uniform draws i.i.d. U(0,1) variates.
// Complexity: O(n*d).
func Uniform(r *rand.Rand, sampleSize, drawCount int) (*mat.Dense, error) {
	if err := validateDims("Uniform", sampleSize, drawCount); err != nil {
		return nil, err
	}
	data := make([]float64, sampleSize*drawCount)
	for k := range data {
		data[k] = openUniform(r)
	}

	return mat.NewDense(sampleSize, drawCount, data), nil
}

// SymmetricUniform draws i.i.d. U(-1,1) variates.
var SymmetricUniform = Symmetric(Uniform)

// radicalInverse returns the van der Corput radical inverse of k in base b.
func radicalInverse(k, base int) float64 {
	var (
		inv    = 1.0 / float64(base)
		f      = inv
		result float64
	)
	for k > 0 {
		result += f * float64(k%base)
		k /= base
		f *= inv
	}

	return result
}

// HaltonSequence returns points skip, skip+1, ..., skip+length-1 of the
// Halton (van der Corput) sequence in the given base. Point 0 is 0.
//
// Errors: ErrInvalidBase when base < 2.
// Complexity: O(length · log_base(skip+length)).
func HaltonSequence(base, skip, length int) ([]float64, error) {
	if base < 2 {
		return nil, fmt.Errorf("HaltonSequence(base=%d): %w", base, ErrInvalidBase)
	}
	if skip < 0 {
		skip = 0
	}
	out := make([]float64, length)
	for k := range out {
		out[k] = radicalInverse(skip+k, base)
	}

	return out, nil
}

// Halton returns a generator producing Halton draws in the given base,
// discarding the first skip points. The sequence is consumed row-major, so
// each observation receives a consecutive block of drawCount points.
func Halton(base, skip int) Generator {
	return func(_ *rand.Rand, sampleSize, drawCount int) (*mat.Dense, error) {
		if err := validateDims("Halton", sampleSize, drawCount); err != nil {
			return nil, err
		}
		seq, err := HaltonSequence(base, skip, sampleSize*drawCount)
		if err != nil {
			return nil, err
		}

		return mat.NewDense(sampleSize, drawCount, seq), nil
	}
}

// MLHS draws modified Latin hypercube samples on (0,1): with N = n*d points,
// point k is (π(k) + u_k)/N for a random permutation π and u_k ~ U(0,1), so
// each of the N strata [m/N, (m+1)/N) holds exactly one point.
//
// Complexity: O(n*d).
func MLHS(r *rand.Rand, sampleSize, drawCount int) (*mat.Dense, error) {
	if err := validateDims("MLHS", sampleSize, drawCount); err != nil {
		return nil, err
	}
	total := sampleSize * drawCount
	perm := rng.Perm(total, r)
	inv := 1.0 / float64(total)
	data := make([]float64, total)
	for k, p := range perm {
		data[k] = (float64(p) + openUniform(r)) * inv
		if data[k] >= 1 { // rounding of p+u up to total
			data[k] = math.Nextafter(1, 0)
		}
	}

	return mat.NewDense(sampleSize, drawCount, data), nil
}
