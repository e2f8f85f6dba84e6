// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/choicedata/draws"
	"github.com/katalvlaran/choicedata/internal/rng"
)

// Independent random streams derived from the seed.
const (
	streamSampling uint64 = iota + 1
	streamDraws
)

// Database holds the observations of one data set together with its panel
// structure, resampling state and draw table.
//
// The working table is what every operation reads. The full table is the
// restore point saved by the first SampleWithoutReplacement; it is nil
// before that. In panel mode the same split exists at the level of the
// individual map.
//
// A Database is not safe for concurrent use.
type Database struct {
	name string

	data     *Table
	full     *Table
	excluded int

	variables map[string]Variable

	panelColumn string
	indMap      *IndividualMap
	fullIndMap  *IndividualMap

	registry      *draws.Registry
	drawTable     *draws.Table
	typesOfDraws  map[string]string
	numberOfDraws int

	rng     *rand.Rand // resampling
	drawRNG *rand.Rand // draw generation
	workers int
	log     logrus.FieldLogger
}

// New builds a Database from columns. Every problem found in the input
// (unnamed, duplicated or ragged columns, missing values) is reported in a
// single error wrapping ErrConstruction. The column slices are copied.
func New(name string, columns []Column, opts ...Option) (*Database, error) {
	if diags := auditColumns(columns); len(diags) > 0 {
		return nil, constructionError("New", diags)
	}

	o := gatherOptions(opts)
	names := make([]string, len(columns))
	cols := make([][]float64, len(columns))
	for j, c := range columns {
		names[j] = c.Name
		cols[j] = slices.Clone(c.Values)
	}

	db := &Database{
		name:     name,
		registry: o.registry,
		workers:  o.workers,
		log:      o.logger.WithField("database", name),
	}
	db.setData(newTable(names, cols, len(columns[0].Values)))
	base := rng.New(o.seed)
	db.rng = rng.Derive(base, streamSampling)
	db.drawRNG = rng.Derive(base, streamDraws)
	db.log.WithFields(logrus.Fields{"rows": db.data.rows, "columns": len(names)}).Debug("database created")

	return db, nil
}

// setData installs t as the working table and rebuilds the variable
// handles from its columns.
func (db *Database) setData(t *Table) {
	db.data = t
	db.variables = make(map[string]Variable, len(t.names))
	for _, n := range t.names {
		db.variables[n] = Variable{name: n}
	}
}

// Name returns the name given at construction.
func (db *Database) Name() string { return db.name }

// Data returns the working table.
func (db *Database) Data() *Table { return db.data }

// FullData returns the saved full table, if any.
func (db *Database) FullData() (*Table, bool) { return db.full, db.full != nil }

// NumberOfObservations returns the number of rows of the working table.
func (db *Database) NumberOfObservations() int { return db.data.rows }

// SampleSize returns the number of individuals in panel mode, and the
// number of rows otherwise. Draw tables are generated for this many units.
func (db *Database) SampleSize() int {
	if db.IsPanel() {
		return db.indMap.Len()
	}

	return db.data.rows
}

// IsPanel reports whether panel mode has been activated.
func (db *Database) IsPanel() bool { return db.panelColumn != "" }

// ExcludedData returns the number of rows dropped by Remove so far.
func (db *Database) ExcludedData() int { return db.excluded }

// Variables returns the variable handles keyed by column name.
func (db *Database) Variables() map[string]Variable { return maps.Clone(db.variables) }

// Variable returns the handle of the named column.
func (db *Database) Variable(name string) (Variable, bool) {
	v, ok := db.variables[name]

	return v, ok
}

// String summarizes the database in a few lines.
func (db *Database) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "database %s: %d observations, columns [%s]",
		db.name, db.data.rows, strings.Join(db.data.names, ", "))
	if db.IsPanel() {
		fmt.Fprintf(&sb, "\npanel data on %s: %d individuals", db.panelColumn, db.indMap.Len())
	}
	if db.excluded > 0 {
		fmt.Fprintf(&sb, "\n%d observations excluded", db.excluded)
	}
	if db.drawTable != nil {
		fmt.Fprintf(&sb, "\n%d draws for [%s]", db.numberOfDraws, strings.Join(db.drawTable.Variables(), ", "))
	}

	return sb.String()
}
