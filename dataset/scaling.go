// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// ScalingSuggestion proposes a power-of-ten factor bringing the largest
// absolute value of a column close to one.
type ScalingSuggestion struct {
	Column  string
	Scale   float64
	Largest float64
}

// ScaleColumn multiplies every value of the named column by scale.
// The full copy, if any, is left untouched.
func (db *Database) ScaleColumn(column string, scale float64) error {
	j, ok := db.data.index[column]
	if !ok {
		return fmt.Errorf("ScaleColumn: %q: %w", column, ErrUnknownColumn)
	}
	db.setData(db.data.withScaled(j, scale))
	db.log.WithFields(logrus.Fields{"column": column, "scale": scale}).Debug("column scaled")

	return nil
}

// SuggestScaling proposes, for each listed column (all columns when the list
// is empty), the factor 1/10^round(log10(L)) where L is the largest absolute
// value of the column, floored at 1. Suggestions of 1, 0.1 or 10 are left
// out unless reportAll is set. Columns keep the requested order.
func (db *Database) SuggestScaling(columns []string, reportAll bool) ([]ScalingSuggestion, error) {
	if len(columns) == 0 {
		columns = db.data.names
	}

	var out []ScalingSuggestion
	for _, name := range columns {
		j, ok := db.data.index[name]
		if !ok {
			return nil, fmt.Errorf("SuggestScaling: %q: %w", name, ErrUnknownColumn)
		}

		largest := 0.0
		for _, v := range db.data.cols[j] {
			if a := math.Abs(v); a > largest {
				largest = a
			}
		}
		scale := 1 / math.Pow(10, math.RoundToEven(math.Log10(math.Max(1, largest))))
		if !reportAll && (scale == 1 || scale == 0.1 || scale == 10) {
			continue
		}
		out = append(out, ScalingSuggestion{Column: name, Scale: scale, Largest: largest})
	}

	return out, nil
}

// Count returns the number of rows where column equals value.
func (db *Database) Count(column string, value float64) (int, error) {
	j, ok := db.data.index[column]
	if !ok {
		return 0, fmt.Errorf("Count: %q: %w", column, ErrUnknownColumn)
	}

	n := 0
	for _, v := range db.data.cols[j] {
		if v == value {
			n++
		}
	}

	return n, nil
}
