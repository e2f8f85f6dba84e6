// SPDX-License-Identifier: MIT

package dataset

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Column is one named numeric column handed to New.
type Column struct {
	Name   string
	Values []float64
}

// Table is an immutable column-major table of named float64 columns.
// All columns have NumRows values. Database replaces tables wholesale
// rather than mutating them in place, so a *Table obtained from a Database
// stays valid after later operations.
type Table struct {
	names []string
	index map[string]int
	cols  [][]float64
	rows  int
}

// newTable wraps already validated columns without copying them.
func newTable(names []string, cols [][]float64, rows int) *Table {
	index := make(map[string]int, len(names))
	for j, name := range names {
		index[name] = j
	}

	return &Table{names: names, index: index, cols: cols, rows: rows}
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return t.rows }

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.names) }

// Columns returns the column names in table order.
func (t *Table) Columns() []string { return slices.Clone(t.names) }

// HasColumn reports whether the table has a column called name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]

	return ok
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) ([]float64, error) {
	j, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("Column: %q: %w", name, ErrUnknownColumn)
	}

	return slices.Clone(t.cols[j]), nil
}

// Value returns the value of column name at row i.
func (t *Table) Value(i int, name string) (float64, error) {
	j, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("Value: %q: %w", name, ErrUnknownColumn)
	}
	if i < 0 || i >= t.rows {
		return 0, fmt.Errorf("Value: row %d out of range [0,%d)", i, t.rows)
	}

	return t.cols[j][i], nil
}

// Row returns a read-only view of row i. It panics if i is out of range.
func (t *Table) Row(i int) Row {
	if i < 0 || i >= t.rows {
		panic(fmt.Sprintf("dataset: Row(%d) out of range [0,%d)", i, t.rows))
	}

	return Row{table: t, index: i}
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	cols := make([][]float64, len(t.cols))
	for j, c := range t.cols {
		cols[j] = slices.Clone(c)
	}

	return newTable(slices.Clone(t.names), cols, t.rows)
}

// Take returns a new table holding the given rows, in the given order.
// Indices may repeat.
func (t *Table) Take(rows []int) *Table {
	cols := make([][]float64, len(t.cols))
	for j, c := range t.cols {
		out := make([]float64, len(rows))
		for k, i := range rows {
			out[k] = c[i]
		}
		cols[j] = out
	}

	return newTable(slices.Clone(t.names), cols, len(rows))
}

// withColumn returns a new table sharing the existing columns plus one more.
func (t *Table) withColumn(name string, values []float64) *Table {
	names := append(slices.Clone(t.names), name)
	cols := append(slices.Clone(t.cols), values)

	return newTable(names, cols, t.rows)
}

// withScaled returns a new table where column j is multiplied by s.
func (t *Table) withScaled(j int, s float64) *Table {
	cols := slices.Clone(t.cols)
	scaled := make([]float64, t.rows)
	for i, v := range t.cols[j] {
		scaled[i] = v * s
	}
	cols[j] = scaled

	return newTable(slices.Clone(t.names), cols, t.rows)
}

// sortedBy returns the row permutation that stably sorts the table by column j.
func (t *Table) sortedBy(j int) []int {
	perm := make([]int, t.rows)
	for i := range perm {
		perm[i] = i
	}
	key := t.cols[j]
	slices.SortStableFunc(perm, func(a, b int) int { return cmp.Compare(key[a], key[b]) })

	return perm
}

// String renders the table header and up to the first five rows.
func (t *Table) String() string {
	const preview = 5
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d rows × %d columns\n", t.rows, len(t.names))
	sb.WriteString(strings.Join(t.names, "\t"))
	for i := 0; i < min(t.rows, preview); i++ {
		sb.WriteByte('\n')
		for j, c := range t.cols {
			if j > 0 {
				sb.WriteByte('\t')
			}
			fmt.Fprintf(&sb, "%g", c[i])
		}
	}
	if t.rows > preview {
		fmt.Fprintf(&sb, "\n... %d more rows", t.rows-preview)
	}

	return sb.String()
}

// Row is a read-only view of one table row, passed to evaluators.
type Row struct {
	table *Table
	index int
}

// Index returns the row position within the table.
func (r Row) Index() int { return r.index }

// Value returns the value of column name in this row.
func (r Row) Value(name string) (float64, bool) {
	j, ok := r.table.index[name]
	if !ok {
		return 0, false
	}

	return r.table.cols[j][r.index], true
}

// Each calls fn for every column of the row in table order.
func (r Row) Each(fn func(name string, value float64)) {
	for j, name := range r.table.names {
		fn(name, r.table.cols[j][r.index])
	}
}
