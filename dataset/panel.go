// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

// Range is the inclusive block of rows [First, Last] of one individual.
type Range struct {
	First, Last int
}

// Len returns the number of rows in the block.
func (r Range) Len() int { return r.Last - r.First + 1 }

// IndividualMap lists the individuals of a panel data set in order, each
// with the rows it occupies. It also records the column names of the data
// it indexes. Maps are immutable; sampling produces new maps.
type IndividualMap struct {
	ids     []float64
	ranges  []Range
	columns []string
}

// Len returns the number of individuals (entries may repeat after
// sampling with replacement).
func (m *IndividualMap) Len() int { return len(m.ids) }

// IDs returns the identifiers in map order.
func (m *IndividualMap) IDs() []float64 { return slices.Clone(m.ids) }

// Ranges returns the row blocks in map order.
func (m *IndividualMap) Ranges() []Range { return slices.Clone(m.ranges) }

// At returns the identifier and rows of the k-th entry.
func (m *IndividualMap) At(k int) (float64, Range) { return m.ids[k], m.ranges[k] }

// Range returns the rows of individual id, if present. With repeated
// entries the first one is returned.
func (m *IndividualMap) Range(id float64) (Range, bool) {
	k := slices.Index(m.ids, id)
	if k < 0 {
		return Range{}, false
	}

	return m.ranges[k], true
}

// Columns returns the column names of the data set the map indexes.
func (m *IndividualMap) Columns() []string { return slices.Clone(m.columns) }

// take returns the map restricted to the given entries, in the given order.
func (m *IndividualMap) take(entries []int) *IndividualMap {
	out := &IndividualMap{
		ids:     make([]float64, len(entries)),
		ranges:  make([]Range, len(entries)),
		columns: m.columns,
	}
	for k, e := range entries {
		out.ids[k] = m.ids[e]
		out.ranges[k] = m.ranges[e]
	}

	return out
}

func (m *IndividualMap) withSchema(columns []string) *IndividualMap {
	return &IndividualMap{ids: m.ids, ranges: m.ranges, columns: columns}
}

// String renders one "id: [first, last]" line per entry.
func (m *IndividualMap) String() string {
	var sb strings.Builder
	for k, id := range m.ids {
		if k > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%g: [%d, %d]", id, m.ranges[k].First, m.ranges[k].Last)
	}

	return sb.String()
}

// countRuns returns the number of maximal blocks of equal adjacent values.
func countRuns(col []float64) int {
	runs := 0
	for i, v := range col {
		if i == 0 || v != col[i-1] {
			runs++
		}
	}

	return runs
}

func countDistinct(col []float64) int {
	seen := make(map[float64]struct{}, len(col))
	for _, v := range col {
		seen[v] = struct{}{}
	}

	return len(seen)
}

// Panel declares the data as panel data, column identifying individuals.
//
// Implementation:
//   - Stage 1: the column must exist and hold no missing identifiers.
//   - Stage 2: the number of contiguous blocks must equal the number of
//     distinct identifiers, otherwise some individual is split over several
//     blocks and ErrStructure is returned with both counts.
//   - Stage 3: stable sort by the column and build the working and full
//     individual maps.
//
// Complexity: O(rows·log rows).
func (db *Database) Panel(column string) error {
	col, err := db.data.Column(column)
	if err != nil {
		return fmt.Errorf("Panel: %w", err)
	}
	if n := countNaN(col); n > 0 {
		return fmt.Errorf("Panel: %w: column %s has %d missing identifier(s)", ErrStructure, column, n)
	}

	groups, individuals := countRuns(col), countDistinct(col)
	if groups != individuals {
		return fmt.Errorf(
			"Panel: %w: the data is not sorted so that the observations of each individual are contiguous: "+
				"column %s defines %d groups of observations for %d individuals",
			ErrStructure, column, groups, individuals)
	}

	db.panelColumn = column
	if err = db.buildPanelMap(); err != nil {
		return fmt.Errorf("Panel: %w", err)
	}

	return nil
}

// PanelColumn returns the column identifying individuals, or "" outside
// panel mode.
func (db *Database) PanelColumn() string { return db.panelColumn }

// BuildPanelMap sorts the working data by the panel column and rebuilds the
// working and full individual maps. Row indices change, so any previous
// panel sample is discarded.
func (db *Database) BuildPanelMap() error {
	if !db.IsPanel() {
		return fmt.Errorf("BuildPanelMap: %w", ErrPanelOnly)
	}

	return db.buildPanelMap()
}

func (db *Database) buildPanelMap() error {
	j, ok := db.data.index[db.panelColumn]
	if !ok {
		return fmt.Errorf("panel column %s: %w", db.panelColumn, ErrUnknownColumn)
	}

	perm := db.data.sortedBy(j)
	if !isIdentity(perm) {
		db.setData(db.data.Take(perm))
	}

	key := db.data.cols[j]
	m := &IndividualMap{columns: db.data.Columns()}
	for i := 0; i < len(key); i++ {
		if i == 0 || key[i] != key[i-1] {
			m.ids = append(m.ids, key[i])
			m.ranges = append(m.ranges, Range{First: i, Last: i})

			continue
		}
		m.ranges[len(m.ranges)-1].Last = i
	}

	db.indMap = m
	db.fullIndMap = m
	db.log.WithFields(logrus.Fields{"column": db.panelColumn, "individuals": m.Len()}).Debug("panel map built")

	return nil
}

func isIdentity(perm []int) bool {
	for i, p := range perm {
		if i != p {
			return false
		}
	}

	return true
}

// IndividualMap returns the working individual map.
// Fails with ErrPanelOnly outside panel mode.
func (db *Database) IndividualMap() (*IndividualMap, error) {
	if !db.IsPanel() {
		return nil, fmt.Errorf("IndividualMap: %w", ErrPanelOnly)
	}

	return db.indMap, nil
}

// FullIndividualMap returns the individual map saved as restore point.
// Fails with ErrPanelOnly outside panel mode.
func (db *Database) FullIndividualMap() (*IndividualMap, error) {
	if !db.IsPanel() {
		return nil, fmt.Errorf("FullIndividualMap: %w", ErrPanelOnly)
	}

	return db.fullIndMap, nil
}
