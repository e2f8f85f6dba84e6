// SPDX-License-Identifier: MIT
// Package dataset: sentinel error set.
// Every failure is returned immediately to the caller (fail fast, no silent
// defaulting) and wraps one of these sentinels; match with errors.Is.
//
// ERROR TAXONOMY:
// construction -> name collision -> unknown column -> panel structure
// -> structure drift -> missing restore point -> panel-only operations.

package dataset

import (
	"errors"

	"github.com/katalvlaran/choicedata/draws"
)

var (
	// ErrConstruction reports invalid data at load time: non-numeric columns,
	// missing values, ragged or unnamed columns.
	ErrConstruction = errors.New("dataset: invalid data")

	// ErrNameCollision reports an attempt to create a column, or register a
	// draw type, under a name that is already taken or reserved.
	ErrNameCollision = errors.New("dataset: name already in use")

	// ErrUnknownColumn reports a reference to a column that does not exist.
	ErrUnknownColumn = errors.New("dataset: unknown column")

	// ErrStructure reports panel data whose individuals are not contiguous.
	ErrStructure = errors.New("dataset: panel data not grouped by individual")

	// ErrStructureDrift reports a schema change between the saved full sample
	// and the working sample.
	ErrStructureDrift = errors.New("dataset: structure modified since last sample")

	// ErrNoFullSample reports a restore request with no saved full sample.
	ErrNoFullSample = errors.New("dataset: full data set has not been saved")

	// ErrPanelOnly reports a panel-only operation on cross-sectional data.
	ErrPanelOnly = errors.New("dataset: operation available only on panel data")

	// ErrInvalidRate reports a sampling rate outside (0, 1].
	ErrInvalidRate = errors.New("dataset: sampling rate must be in (0, 1]")

	// ErrInvalidWeights reports sampling weights that are negative, not
	// finite, or too few non-zero for the requested sample.
	ErrInvalidWeights = errors.New("dataset: invalid sampling weights")

	// ErrInvalidSlices reports a number of folds outside [2, rows].
	ErrInvalidSlices = errors.New("dataset: invalid number of slices")

	// ErrEvaluation wraps failures of the row evaluator.
	ErrEvaluation = errors.New("dataset: evaluation failed")
)

// Draw-layer sentinels surfaced unchanged by Database methods.
var (
	ErrUnknownDrawType  = draws.ErrUnknownDrawType
	ErrShape            = draws.ErrShape
	ErrInvalidDrawCount = draws.ErrInvalidDrawCount
	ErrEmptySample      = draws.ErrEmptySample
)
