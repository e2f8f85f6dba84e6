// SPDX-License-Identifier: MIT

package draws

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Build generates one draw slab per listed variable and assembles them into
// a Table ordered (individual, draw, variable).
//
// Implementation:
//   - Stage 1: validate sampleSize > 0 and drawCount > 0.
//   - Stage 2: for each name, in list order: look up its type in types,
//     resolve the generator, call it with (sampleSize, drawCount) and check
//     the returned shape. Generation runs variable-major.
//   - Stage 3: permute the axes into the (individual, draw, variable) buffer.
//
// Inputs:
//   - reg: registry used for resolution.
//   - r: random stream consumed by the generators, in list order.
//   - types: variable → draw type; may contain unlisted variables.
//   - names: variables to generate; fixes the third axis order.
//
// Errors:
//   - ErrEmptySample, ErrInvalidDrawCount, ErrDuplicateVariable.
//   - ErrUnknownDrawType naming the offending variable.
//   - ErrShape naming the variable, expected and actual shape.
//   - Any error returned by a generator, wrapped with the variable name.
//
// Complexity: O(N*R*K) time and memory.
func Build(reg *Registry, r *rand.Rand, sampleSize int, types map[string]string, names []string, drawCount int) (*Table, error) {
	if sampleSize <= 0 {
		return nil, fmt.Errorf("Build: sample size %d: %w", sampleSize, ErrEmptySample)
	}
	if drawCount <= 0 {
		return nil, fmt.Errorf("Build: %d draws: %w", drawCount, ErrInvalidDrawCount)
	}

	k := len(names)
	slabs := make([]*mat.Dense, k)
	provenance := make(map[string]string, k)
	for v, name := range names {
		if _, dup := provenance[name]; dup {
			return nil, fmt.Errorf("Build: %s: %w", name, ErrDuplicateVariable)
		}
		drawType, ok := types[name]
		if !ok {
			return nil, fmt.Errorf("Build: no type of draws for variable %s: %w", name, ErrUnknownDrawType)
		}
		provenance[name] = drawType

		gen, err := reg.Resolve(drawType)
		if err != nil {
			return nil, fmt.Errorf("Build: variable %s: %w", name, err)
		}
		slab, err := gen(r, sampleSize, drawCount)
		if err != nil {
			return nil, fmt.Errorf("Build: variable %s (%s): %w", name, drawType, err)
		}
		if err = checkShape(slab, sampleSize, drawCount); err != nil {
			return nil, fmt.Errorf("Build: the draw generator for %s must generate a matrix of dimensions (%d, %d): %w",
				name, sampleSize, drawCount, err)
		}
		slabs[v] = slab
	}

	t := &Table{
		n: sampleSize, r: drawCount, k: k,
		data:  make([]float64, sampleSize*drawCount*k),
		names: append([]string(nil), names...),
		types: provenance,
	}
	var i, j int
	for v, slab := range slabs {
		for i = 0; i < sampleSize; i++ {
			row := slab.RawRowView(i)
			base := i * drawCount * k
			for j = 0; j < drawCount; j++ {
				t.data[base+j*k+v] = row[j]
			}
		}
	}

	return t, nil
}
