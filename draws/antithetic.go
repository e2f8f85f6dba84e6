// SPDX-License-Identifier: MIT

package draws

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Mirror maps a draw onto its antithetic counterpart.
type Mirror func(float64) float64

// Complement mirrors draws on [0,1]: u ↦ 1−u.
func Complement(u float64) float64 { return 1 - u }

// Negate mirrors draws symmetric around zero: x ↦ −x.
func Negate(x float64) float64 { return -x }

// Antithetic wraps g into an antithetic generator.
//
// Implementation:
//   - Stage 1: reject odd drawCount with ErrOddDrawCount.
//   - Stage 2: generate drawCount/2 draws with g and check their shape.
//   - Stage 3: concatenate along the draw axis: first the generated half,
//     then mirror applied to it, in that order.
//
// Complexity: O(n*d).
func Antithetic(g Generator, mirror Mirror) Generator {
	return func(r *rand.Rand, sampleSize, drawCount int) (*mat.Dense, error) {
		if err := validateDims("Antithetic", sampleSize, drawCount); err != nil {
			return nil, err
		}
		if drawCount%2 != 0 {
			return nil, fmt.Errorf("Antithetic(%d, %d): %w", sampleSize, drawCount, ErrOddDrawCount)
		}

		half := drawCount / 2
		first, err := g(r, sampleSize, half)
		if err != nil {
			return nil, err
		}
		if err = checkShape(first, sampleSize, half); err != nil {
			return nil, fmt.Errorf("Antithetic: %w", err)
		}

		out := mat.NewDense(sampleSize, drawCount, nil)
		var (
			i, j int
			v    float64
		)
		for i = 0; i < sampleSize; i++ {
			for j = 0; j < half; j++ {
				v = first.At(i, j)
				out.Set(i, j, v)
				out.Set(i, j+half, mirror(v))
			}
		}

		return out, nil
	}
}
