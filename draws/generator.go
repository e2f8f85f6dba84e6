// SPDX-License-Identifier: MIT

package draws

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Generator produces a sampleSize×drawCount matrix of draws.
//
// Contract:
//   - Output dimensions are exactly (sampleSize, drawCount); Build rejects
//     anything else with ErrShape.
//   - All randomness comes from r; a Generator keeps no state between calls.
type Generator func(r *rand.Rand, sampleSize, drawCount int) (*mat.Dense, error)

// Entry couples a draw-type name with its generator and a human-readable
// description.
type Entry struct {
	Name        string
	Generate    Generator
	Description string
}

// String renders the entry as "NAME: description".
func (e Entry) String() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Description)
}

// validateDims guards every native generator before allocation, since
// mat.NewDense panics on zero dimensions.
func validateDims(op string, sampleSize, drawCount int) error {
	if sampleSize <= 0 {
		return fmt.Errorf("%s(%d, %d): %w", op, sampleSize, drawCount, ErrEmptySample)
	}
	if drawCount <= 0 {
		return fmt.Errorf("%s(%d, %d): %w", op, sampleSize, drawCount, ErrInvalidDrawCount)
	}

	return nil
}

// checkShape verifies that m is exactly rows×cols.
func checkShape(m *mat.Dense, rows, cols int) error {
	if m == nil {
		return fmt.Errorf("expected (%d, %d), got nil: %w", rows, cols, ErrShape)
	}
	r, c := m.Dims()
	if r != rows || c != cols {
		return fmt.Errorf("expected (%d, %d), got (%d, %d): %w", rows, cols, r, c, ErrShape)
	}

	return nil
}

// mapped returns a generator applying f elementwise to the output of g.
func mapped(g Generator, f func(float64) float64) Generator {
	return func(r *rand.Rand, sampleSize, drawCount int) (*mat.Dense, error) {
		m, err := g(r, sampleSize, drawCount)
		if err != nil {
			return nil, err
		}
		m.Apply(func(_, _ int, v float64) float64 { return f(v) }, m)

		return m, nil
	}
}

// Symmetric maps a generator on [0,1] onto [-1,1] via x ↦ 2x−1.
func Symmetric(g Generator) Generator {
	return mapped(g, func(x float64) float64 { return 2*x - 1 })
}

// NormalOf maps a generator on (0,1) onto N(0,1) via the Wichura transform.
func NormalOf(g Generator) Generator {
	return mapped(g, Wichura)
}
