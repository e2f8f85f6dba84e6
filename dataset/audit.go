// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"
	"strings"
)

// Diagnostic is one problem found in the data. Column is empty for
// problems that concern the table as a whole.
type Diagnostic struct {
	Column  string
	Message string
}

// String returns the message prefixed by the column when there is one.
func (d Diagnostic) String() string {
	if d.Column == "" {
		return d.Message
	}

	return fmt.Sprintf("column %s: %s", d.Column, d.Message)
}

// auditColumns collects every structural problem of cols: no columns,
// unnamed or duplicated columns, ragged lengths and missing (NaN) values.
func auditColumns(cols []Column) []Diagnostic {
	var diags []Diagnostic
	if len(cols) == 0 {
		return append(diags, Diagnostic{Message: "the data set has no columns"})
	}

	rows := len(cols[0].Values)
	seen := make(map[string]struct{}, len(cols))
	for j, c := range cols {
		if c.Name == "" {
			diags = append(diags, Diagnostic{Message: fmt.Sprintf("column %d has no name", j)})
		} else if _, dup := seen[c.Name]; dup {
			diags = append(diags, Diagnostic{Column: c.Name, Message: "duplicate column name"})
		}
		seen[c.Name] = struct{}{}

		if len(c.Values) != rows {
			diags = append(diags, Diagnostic{
				Column:  c.Name,
				Message: fmt.Sprintf("has %d values, expected %d", len(c.Values), rows),
			})
		}
		if n := countNaN(c.Values); n > 0 {
			diags = append(diags, Diagnostic{
				Column:  c.Name,
				Message: fmt.Sprintf("contains %d missing value(s)", n),
			})
		}
	}

	return diags
}

func countNaN(values []float64) int {
	n := 0
	for _, v := range values {
		if math.IsNaN(v) {
			n++
		}
	}

	return n
}

// constructionError folds diagnostics into a single ErrConstruction error.
func constructionError(op string, diags []Diagnostic) error {
	msgs := make([]string, len(diags))
	for i, d := range diags {
		msgs[i] = d.String()
	}

	return fmt.Errorf("%s: %w: %s", op, ErrConstruction, strings.Join(msgs, "; "))
}

// Audit re-checks the working data. Derived columns may hold NaN values
// produced by their expressions; those are reported here since
// construction-time validation no longer applies to them.
func (db *Database) Audit() []Diagnostic {
	cols := make([]Column, len(db.data.names))
	for j, name := range db.data.names {
		cols[j] = Column{Name: name, Values: db.data.cols[j]}
	}

	return auditColumns(cols)
}
