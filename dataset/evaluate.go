// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Evaluator computes one number per row. The row is passed explicitly, so
// an Evaluator holds no per-row state of its own.
type Evaluator interface {
	Evaluate(row Row) (float64, error)
}

// Cloner is implemented by evaluators that keep scratch buffers. Clone
// returns an independent copy so that each worker owns one instance.
// Evaluators without Cloner are always run sequentially.
type Cloner interface {
	Clone() Evaluator
}

// EvaluatorFunc adapts a plain function to Evaluator. A function value is
// assumed to be free of shared mutable state and may run on many workers.
type EvaluatorFunc func(row Row) (float64, error)

// Evaluate calls f(row).
func (f EvaluatorFunc) Evaluate(row Row) (float64, error) { return f(row) }

// Clone returns f itself.
func (f EvaluatorFunc) Clone() Evaluator { return f }

// Constant evaluates to the same value on every row.
type Constant float64

// Evaluate returns c.
func (c Constant) Evaluate(Row) (float64, error) { return float64(c), nil }

// Clone returns c.
func (c Constant) Clone() Evaluator { return c }

// evaluateRows applies ev to every row of t and returns the values in row
// order.
//
// Implementation:
//   - Stage 1: with one worker, or an evaluator that cannot be cloned,
//     evaluate row by row and stop at the first error.
//   - Stage 2: otherwise cut the rows into one contiguous chunk per worker,
//     give each chunk its own clone and write into disjoint parts of out.
//
// Complexity: O(rows) evaluations, no extra allocation beyond out.
func evaluateRows(t *Table, ev Evaluator, workers int, log logrus.FieldLogger) ([]float64, error) {
	n := t.rows
	out := make([]float64, n)

	cl, ok := ev.(Cloner)
	if workers <= 1 || !ok || n < 2*workers {
		for i := 0; i < n; i++ {
			v, err := ev.Evaluate(Row{table: t, index: i})
			if err != nil {
				return nil, fmt.Errorf("row %d: %w: %w", i, ErrEvaluation, err)
			}
			out[i] = v
		}

		return out, nil
	}

	chunk := (n + workers - 1) / workers
	log.WithFields(logrus.Fields{"rows": n, "workers": workers, "chunk": chunk}).Debug("parallel evaluation")

	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		local := cl.Clone()
		g.Go(func() error {
			for i := start; i < end; i++ {
				v, err := local.Evaluate(Row{table: t, index: i})
				if err != nil {
					return fmt.Errorf("row %d: %w: %w", i, ErrEvaluation, err)
				}
				out[i] = v
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// ValuesFromDatabase evaluates ev on every row of the working data.
func (db *Database) ValuesFromDatabase(ev Evaluator) ([]float64, error) {
	values, err := evaluateRows(db.data, ev, db.workers, db.log)
	if err != nil {
		return nil, fmt.Errorf("ValuesFromDatabase: %w", err)
	}

	return values, nil
}

// SumFromDatabase returns the sum of ev over all rows. Rows where ev
// yields NaN are left out of the sum.
func (db *Database) SumFromDatabase(ev Evaluator) (float64, error) {
	values, err := evaluateRows(db.data, ev, db.workers, db.log)
	if err != nil {
		return 0, fmt.Errorf("SumFromDatabase: %w", err)
	}

	return nansum(values), nil
}

// SumByIndividual returns, for each individual of the working map in map
// order, the NaN-skipping sum of ev over the individual's rows.
// Fails with ErrPanelOnly outside panel mode.
func (db *Database) SumByIndividual(ev Evaluator) ([]float64, error) {
	if !db.IsPanel() {
		return nil, fmt.Errorf("SumByIndividual: %w", ErrPanelOnly)
	}
	values, err := evaluateRows(db.data, ev, db.workers, db.log)
	if err != nil {
		return nil, fmt.Errorf("SumByIndividual: %w", err)
	}

	sums := make([]float64, db.indMap.Len())
	for k, r := range db.indMap.ranges {
		sums[k] = nansum(values[r.First : r.Last+1])
	}

	return sums, nil
}

func nansum(values []float64) float64 {
	var s float64
	for _, v := range values {
		if !math.IsNaN(v) {
			s += v
		}
	}

	return s
}

// AddColumn evaluates ev on every row and appends the result as a new
// column, with its Variable handle. The name must not exist yet
// (ErrNameCollision). In panel mode the working map records the new
// column, so that the next SampleWithoutReplacement sees the drift.
func (db *Database) AddColumn(ev Evaluator, column string) ([]float64, error) {
	if column == "" {
		return nil, fmt.Errorf("AddColumn: empty column name: %w", ErrConstruction)
	}
	if db.data.HasColumn(column) {
		return nil, fmt.Errorf("AddColumn: column %s already exists: %w", column, ErrNameCollision)
	}

	values, err := evaluateRows(db.data, ev, db.workers, db.log)
	if err != nil {
		return nil, fmt.Errorf("AddColumn %s: %w", column, err)
	}

	db.setData(db.data.withColumn(column, values))
	if db.IsPanel() {
		db.indMap = db.indMap.withSchema(db.data.Columns())
	}
	db.log.WithField("column", column).Debug("column added")

	return append([]float64(nil), values...), nil
}

// Remove drops every row of the working data where ev is non-zero and
// returns how many rows were dropped. In panel mode the individual maps
// are rebuilt afterwards.
func (db *Database) Remove(ev Evaluator) (int, error) {
	values, err := evaluateRows(db.data, ev, db.workers, db.log)
	if err != nil {
		return 0, fmt.Errorf("Remove: %w", err)
	}

	keep := make([]int, 0, len(values))
	for i, v := range values {
		if v == 0 {
			keep = append(keep, i)
		}
	}
	removed := len(values) - len(keep)
	if removed == 0 {
		return 0, nil
	}

	db.setData(db.data.Take(keep))
	db.excluded += removed
	db.log.WithFields(logrus.Fields{"removed": removed, "remaining": len(keep)}).Debug("rows removed")

	if db.IsPanel() {
		if err := db.buildPanelMap(); err != nil {
			return removed, fmt.Errorf("Remove: %w", err)
		}
	}

	return removed, nil
}
