// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/katalvlaran/choicedata/internal/rng"
)

// SampleReport describes the outcome of SampleWithoutReplacement. Sizes
// count individuals in panel mode and rows otherwise.
type SampleReport struct {
	Full    int
	Sampled int
	Panel   bool
}

// String renders the report the way it is shown to users.
func (r SampleReport) String() string {
	unit := "observations"
	if r.Panel {
		unit = "individuals"
	}

	return fmt.Sprintf("full sample: %d %s, sampled: %d %s", r.Full, unit, r.Sampled, unit)
}

// Fold is one estimation/validation pair produced by Split. The row
// indices refer to the working data at the time of the split.
type Fold struct {
	Estimation     *Table
	Validation     *Table
	EstimationRows []int
	ValidationRows []int
}

// driftError compares two column sets and reports the differences, or nil.
func driftError(full, working []string) error {
	fullSet := make(map[string]struct{}, len(full))
	for _, c := range full {
		fullSet[c] = struct{}{}
	}
	workingSet := make(map[string]struct{}, len(working))
	for _, c := range working {
		workingSet[c] = struct{}{}
	}

	var disappeared, added []string
	for c := range fullSet {
		if _, ok := workingSet[c]; !ok {
			disappeared = append(disappeared, c)
		}
	}
	for c := range workingSet {
		if _, ok := fullSet[c]; !ok {
			added = append(added, c)
		}
	}
	if len(disappeared) == 0 && len(added) == 0 {
		return nil
	}
	slices.Sort(disappeared)
	slices.Sort(added)

	var parts []string
	if len(disappeared) > 0 {
		parts = append(parts, fmt.Sprintf("columns that disappeared: [%s]", strings.Join(disappeared, ", ")))
	}
	if len(added) > 0 {
		parts = append(parts, fmt.Sprintf("columns that were added: [%s]", strings.Join(added, ", ")))
	}

	return fmt.Errorf("%w: %s", ErrStructureDrift, strings.Join(parts, "; "))
}

// sampleCount converts a rate into a number of units, at least one.
func sampleCount(rate float64, n int) (int, error) {
	if !(rate > 0 && rate <= 1) {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidRate, rate)
	}
	k := int(math.Round(rate * float64(n)))
	if k < 1 {
		return 0, fmt.Errorf("%w: rate %g selects no unit out of %d", ErrInvalidRate, rate, n)
	}

	return k, nil
}

// drawWithoutReplacement returns k distinct indices in [0, len(weights)),
// sorted ascending. With nil weights every index is equally likely.
func (db *Database) drawWithoutReplacement(n, k int, weights []float64) ([]int, error) {
	if weights == nil {
		return slices.Sorted(slices.Values(rng.Perm(n, db.rng)[:k])), nil
	}

	positive := 0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: weight %g at position %d", ErrInvalidWeights, w, i)
		}
		if w > 0 {
			positive++
		}
	}
	if positive < k {
		return nil, fmt.Errorf("%w: %d positive weights for a sample of %d", ErrInvalidWeights, positive, k)
	}

	sampler := sampleuv.NewWeighted(weights, db.rng)
	idx := make([]int, 0, k)
	for len(idx) < k {
		i, ok := sampler.Take()
		if !ok {
			break
		}
		idx = append(idx, i)
	}
	slices.Sort(idx)

	return idx, nil
}

// SampleWithoutReplacement replaces the working data by a random sample of
// the full data holding a fraction rate of its units: rows, or individuals
// in panel mode. With a non-empty weightColumn, units are drawn with
// probability proportional to that column (the value on the first row of an
// individual in panel mode). Sampled units keep their original order.
//
// The first call saves the current working data as the full data. Later
// calls first check that the working data has the same columns as the full
// data and fail with ErrStructureDrift otherwise.
func (db *Database) SampleWithoutReplacement(rate float64, weightColumn string) (SampleReport, error) {
	if db.IsPanel() {
		return db.samplePanel(rate, weightColumn)
	}

	if db.full == nil {
		db.full = db.data
	} else if err := driftError(db.full.names, db.data.names); err != nil {
		return SampleReport{}, fmt.Errorf("SampleWithoutReplacement: %w", err)
	}

	n := db.full.rows
	k, err := sampleCount(rate, n)
	if err != nil {
		return SampleReport{}, fmt.Errorf("SampleWithoutReplacement: %w", err)
	}

	var weights []float64
	if weightColumn != "" {
		if weights, err = db.full.Column(weightColumn); err != nil {
			return SampleReport{}, fmt.Errorf("SampleWithoutReplacement: %w", err)
		}
	}
	idx, err := db.drawWithoutReplacement(n, k, weights)
	if err != nil {
		return SampleReport{}, fmt.Errorf("SampleWithoutReplacement: %w", err)
	}

	db.setData(db.full.Take(idx))
	report := SampleReport{Full: n, Sampled: len(idx)}
	db.log.WithFields(logrus.Fields{"full": report.Full, "sampled": report.Sampled}).Debug("sample drawn")

	return report, nil
}

func (db *Database) samplePanel(rate float64, weightColumn string) (SampleReport, error) {
	if err := driftError(db.fullIndMap.columns, db.indMap.columns); err != nil {
		return SampleReport{}, fmt.Errorf("SampleWithoutReplacement: %w", err)
	}

	full := db.fullIndMap
	n := full.Len()
	k, err := sampleCount(rate, n)
	if err != nil {
		return SampleReport{}, fmt.Errorf("SampleWithoutReplacement: %w", err)
	}

	var weights []float64
	if weightColumn != "" {
		col, err := db.data.Column(weightColumn)
		if err != nil {
			return SampleReport{}, fmt.Errorf("SampleWithoutReplacement: %w", err)
		}
		weights = make([]float64, n)
		for e, r := range full.ranges {
			weights[e] = col[r.First]
		}
	}
	idx, err := db.drawWithoutReplacement(n, k, weights)
	if err != nil {
		return SampleReport{}, fmt.Errorf("SampleWithoutReplacement: %w", err)
	}

	db.indMap = full.take(idx)
	report := SampleReport{Full: n, Sampled: len(idx), Panel: true}
	db.log.WithFields(logrus.Fields{"full": report.Full, "sampled": report.Sampled}).Debug("panel sample drawn")

	return report, nil
}

// UseFullSample restores the working data (or the working individual map
// in panel mode) to the saved full copy. Fails with ErrNoFullSample when no
// copy was saved.
func (db *Database) UseFullSample() error {
	if db.IsPanel() {
		if db.fullIndMap == nil {
			return fmt.Errorf("UseFullSample: %w", ErrNoFullSample)
		}
		db.indMap = db.fullIndMap

		return nil
	}

	if db.full == nil {
		return fmt.Errorf("UseFullSample: %w", ErrNoFullSample)
	}
	db.setData(db.full.Clone())
	db.log.WithField("rows", db.data.rows).Debug("full sample restored")

	return nil
}

// SampleWithReplacement returns size rows drawn uniformly with replacement
// from the working data. size <= 0 means as many rows as the working data.
// The database is not modified.
func (db *Database) SampleWithReplacement(size int) (*Table, error) {
	n := db.data.rows
	if n == 0 {
		return nil, fmt.Errorf("SampleWithReplacement: %w", ErrEmptySample)
	}
	if size <= 0 {
		size = n
	}
	idx := make([]int, size)
	for i := range idx {
		idx[i] = db.rng.IntN(n)
	}

	return db.data.Take(idx), nil
}

// SampleIndividualMapWithReplacement returns a map of size entries drawn
// uniformly with replacement from the working individual map. size <= 0
// means as many entries as the working map. Fails with ErrPanelOnly
// outside panel mode.
func (db *Database) SampleIndividualMapWithReplacement(size int) (*IndividualMap, error) {
	if !db.IsPanel() {
		return nil, fmt.Errorf("SampleIndividualMapWithReplacement: %w", ErrPanelOnly)
	}
	n := db.indMap.Len()
	if n == 0 {
		return nil, fmt.Errorf("SampleIndividualMapWithReplacement: %w", ErrEmptySample)
	}
	if size <= 0 {
		size = n
	}
	idx := make([]int, size)
	for i := range idx {
		idx[i] = db.rng.IntN(n)
	}

	return db.indMap.take(idx), nil
}

// Split shuffles the rows of the working data once and cuts them into k
// contiguous blocks whose sizes differ by at most one, the first n mod k
// blocks being one row longer. Fold i validates on block i and estimates
// on the other blocks in block order. Requires 2 <= k <= rows.
func (db *Database) Split(k int) ([]Fold, error) {
	n := db.data.rows
	if k < 2 || k > n {
		return nil, fmt.Errorf("Split: %w: %d slices for %d rows", ErrInvalidSlices, k, n)
	}

	perm := rng.Perm(n, db.rng)
	blocks := make([][]int, k)
	base, extra := n/k, n%k
	start := 0
	for b := range blocks {
		size := base
		if b < extra {
			size++
		}
		blocks[b] = perm[start : start+size]
		start += size
	}

	folds := make([]Fold, k)
	for i := range blocks {
		validation := slices.Clone(blocks[i])
		estimation := make([]int, 0, n-len(validation))
		for b, block := range blocks {
			if b != i {
				estimation = append(estimation, block...)
			}
		}
		folds[i] = Fold{
			Estimation:     db.data.Take(estimation),
			Validation:     db.data.Take(validation),
			EstimationRows: estimation,
			ValidationRows: validation,
		}
	}

	return folds, nil
}
