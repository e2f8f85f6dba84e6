// SPDX-License-Identifier: MIT

// Package draws - Table storage (row-major 3-D) & safe accessors.
//
// Purpose:
//   - Hold the draws of every variable in one flat buffer laid out as
//     (individual, draw, variable), offset = (i*draws + r)*variables + v.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Carry provenance: the variable order and the draw type of each variable.
//
// Complexity quicksheet:
//   - At: O(1); Draws: O(R); Clone: O(N*R*K).

package draws

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"
	ctxDraws = "Draws"
)

// tableErrorf wraps an error with a uniform Table context and callsite indices.
func tableErrorf(method string, i, r, v int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d,%d): %w", method, i, r, v, err)
}

// Table is the 3-D draw tensor indexed (individual, draw, variable).
type Table struct {
	n, r, k int      // individuals, draws per individual, variables
	data    []float64 // row-major, len == n*r*k

	names []string          // variable order (third axis)
	types map[string]string // variable → draw type
}

// Shape returns (individuals, draws, variables).
// Complexity: O(1).
func (t *Table) Shape() (individuals, draws, variables int) { return t.n, t.r, t.k }

// NumberOfDraws returns the number of draws per individual.
func (t *Table) NumberOfDraws() int { return t.r }

// Variables returns the variable names in axis order (copy).
func (t *Table) Variables() []string { return slices.Clone(t.names) }

// Types returns the variable → draw type provenance map (copy).
func (t *Table) Types() map[string]string { return maps.Clone(t.types) }

// VariableIndex returns the position of name on the variable axis.
func (t *Table) VariableIndex(name string) (int, bool) {
	i := slices.Index(t.names, name)

	return i, i >= 0
}

// indexOf bounds-checks (i, r, v) and computes the flat offset.
func (t *Table) indexOf(method string, i, r, v int) (int, error) {
	if i < 0 || i >= t.n || r < 0 || r >= t.r || v < 0 || v >= t.k {
		return 0, tableErrorf(method, i, r, v, ErrOutOfRange)
	}

	return (i*t.r+r)*t.k + v, nil
}

// At returns draw r of variable v for individual i.
// Complexity: O(1).
func (t *Table) At(i, r, v int) (float64, error) {
	idx, err := t.indexOf(ctxAt, i, r, v)
	if err != nil {
		return 0, err
	}

	return t.data[idx], nil
}

// Draws returns a copy of all draws of variable v for individual i.
// Complexity: O(R).
func (t *Table) Draws(i, v int) ([]float64, error) {
	base, err := t.indexOf(ctxDraws, i, 0, v)
	if err != nil {
		return nil, err
	}
	out := make([]float64, t.r)
	for r := range out {
		out[r] = t.data[base+r*t.k]
	}

	return out, nil
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	return &Table{
		n: t.n, r: t.r, k: t.k,
		data:  slices.Clone(t.data),
		names: slices.Clone(t.names),
		types: maps.Clone(t.types),
	}
}

// String summarizes the table shape and provenance.
func (t *Table) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "draws %d×%d×%d", t.n, t.r, t.k)
	for _, name := range t.names {
		fmt.Fprintf(&sb, "\n  %s: %s", name, t.types[name])
	}

	return sb.String()
}
