// SPDX-License-Identifier: MIT

package dataset

import "fmt"

// Variable is a named handle on a column. It evaluates to the column value
// of the row it is given.
type Variable struct {
	name string
}

// Name returns the column name.
func (v Variable) Name() string { return v.name }

// Evaluate returns the value of the column in row.
func (v Variable) Evaluate(row Row) (float64, error) {
	x, ok := row.Value(v.name)
	if !ok {
		return 0, fmt.Errorf("Variable %s: %w", v.name, ErrUnknownColumn)
	}

	return x, nil
}

// String returns the column name.
func (v Variable) String() string { return v.name }

// Clone returns v; a Variable holds no scratch state.
func (v Variable) Clone() Evaluator { return v }
