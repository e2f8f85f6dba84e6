// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
	"maps"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/choicedata/draws"
)

// Registry returns the draw registry of the database.
func (db *Database) Registry() *draws.Registry { return db.registry }

// DescribeNativeDraws lists the native draw types as "NAME: description".
func (db *Database) DescribeNativeDraws() []string { return db.registry.DescribeNative() }

// SetRandomNumberGenerators registers user draw generators. A name equal to
// a native type fails with ErrNameCollision and registers nothing.
func (db *Database) SetRandomNumberGenerators(entries []draws.Entry) error {
	if err := db.registry.RegisterAll(entries); err != nil {
		if errors.Is(err, draws.ErrNameCollision) {
			return fmt.Errorf("SetRandomNumberGenerators: %w: %w", ErrNameCollision, err)
		}

		return fmt.Errorf("SetRandomNumberGenerators: %w", err)
	}

	return nil
}

// GenerateDraws builds the draw table for the listed variables, with one
// slab of numberOfDraws draws per unit of the sample (individuals in panel
// mode, rows otherwise). The table replaces any previous one. On failure
// the previous table is kept.
func (db *Database) GenerateDraws(types map[string]string, names []string, numberOfDraws int) (*draws.Table, error) {
	tbl, err := draws.Build(db.registry, db.drawRNG, db.SampleSize(), types, names, numberOfDraws)
	if err != nil {
		return nil, fmt.Errorf("GenerateDraws: %w", err)
	}

	db.drawTable = tbl
	db.typesOfDraws = tbl.Types()
	db.numberOfDraws = numberOfDraws
	db.log.WithFields(logrus.Fields{
		"variables": len(names),
		"draws":     numberOfDraws,
		"sample":    db.SampleSize(),
	}).Debug("draws generated")

	return tbl, nil
}

// DrawTable returns the last generated draw table, if any.
func (db *Database) DrawTable() (*draws.Table, bool) { return db.drawTable, db.drawTable != nil }

// NumberOfDraws returns the draw count of the last generated table.
func (db *Database) NumberOfDraws() int { return db.numberOfDraws }

// TypesOfDraws returns the variable to draw type map of the last table.
func (db *Database) TypesOfDraws() map[string]string { return maps.Clone(db.typesOfDraws) }
