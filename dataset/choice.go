// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"maps"
	"slices"
)

// ChoiceStats counts, for one alternative, how often it was chosen and how
// often it was available.
type ChoiceStats struct {
	Chosen    int
	Available int
}

// chosenAvailability evaluates to 1 when the chosen alternative of the row
// is available, 0 otherwise. A chosen value that is not a key of avail
// counts as unavailable.
type chosenAvailability struct {
	avail  map[float64]Evaluator
	choice Evaluator
}

func (c chosenAvailability) Evaluate(row Row) (float64, error) {
	chosen, err := c.choice.Evaluate(row)
	if err != nil {
		return 0, err
	}
	av, ok := c.avail[chosen]
	if !ok {
		return 0, nil
	}
	v, err := av.Evaluate(row)
	if err != nil {
		return 0, fmt.Errorf("availability of %g: %w", chosen, err)
	}
	if v != 0 {
		return 1, nil
	}

	return 0, nil
}

// Clone is only reached when every component implements Cloner.
func (c chosenAvailability) Clone() Evaluator {
	avail := make(map[float64]Evaluator, len(c.avail))
	for k, ev := range c.avail {
		avail[k] = ev.(Cloner).Clone()
	}

	return chosenAvailability{avail: avail, choice: c.choice.(Cloner).Clone()}
}

// asEvaluator hides Clone when some component cannot be cloned, which keeps
// the evaluation sequential.
func (c chosenAvailability) asEvaluator() Evaluator {
	if _, ok := c.choice.(Cloner); !ok {
		return sequentialEvaluator{ev: c}
	}
	for _, ev := range c.avail {
		if _, ok := ev.(Cloner); !ok {
			return sequentialEvaluator{ev: c}
		}
	}

	return c
}

// sequentialEvaluator wraps an evaluator without exposing Cloner.
type sequentialEvaluator struct{ ev Evaluator }

func (s sequentialEvaluator) Evaluate(row Row) (float64, error) { return s.ev.Evaluate(row) }

// CheckAvailabilityOfChosenAlt reports, row by row, whether the alternative
// designated by choice is available according to avail, which maps each
// alternative identifier to its availability expression (non-zero means
// available).
func (db *Database) CheckAvailabilityOfChosenAlt(avail map[float64]Evaluator, choice Evaluator) ([]bool, error) {
	ev := chosenAvailability{avail: avail, choice: choice}.asEvaluator()
	values, err := evaluateRows(db.data, ev, db.workers, db.log)
	if err != nil {
		return nil, fmt.Errorf("CheckAvailabilityOfChosenAlt: %w", err)
	}

	mask := make([]bool, len(values))
	for i, v := range values {
		mask[i] = v != 0
	}

	return mask, nil
}

// ChoiceAvailabilityStatistics counts, for each alternative of avail, the
// rows where it was chosen and the rows where it was available.
func (db *Database) ChoiceAvailabilityStatistics(avail map[float64]Evaluator, choice Evaluator) (map[float64]ChoiceStats, error) {
	chosen, err := evaluateRows(db.data, choice, db.workers, db.log)
	if err != nil {
		return nil, fmt.Errorf("ChoiceAvailabilityStatistics: choice: %w", err)
	}

	stats := make(map[float64]ChoiceStats, len(avail))
	for _, alt := range slices.Sorted(maps.Keys(avail)) {
		values, err := evaluateRows(db.data, avail[alt], db.workers, db.log)
		if err != nil {
			return nil, fmt.Errorf("ChoiceAvailabilityStatistics: availability of %g: %w", alt, err)
		}
		var s ChoiceStats
		for i, v := range values {
			if v != 0 {
				s.Available++
			}
			if chosen[i] == alt {
				s.Chosen++
			}
		}
		stats[alt] = s
	}

	return stats, nil
}
