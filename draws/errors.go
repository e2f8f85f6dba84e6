// SPDX-License-Identifier: MIT
// Package draws: sentinel error set.
// All generators, the registry and the table builder return these sentinels,
// wrapped with call-site context via fmt.Errorf("...: %w", ErrX). Tests and
// callers match them with errors.Is. Nothing in this package panics on
// user-triggered conditions.

package draws

import "errors"

var (
	// ErrNameCollision is returned when a user generator is registered under
	// the name of a native generator.
	ErrNameCollision = errors.New("draws: reserved native draw type")

	// ErrUnknownDrawType is returned when a draw type is found neither in
	// the native nor in the user registry.
	ErrUnknownDrawType = errors.New("draws: unknown type of draws")

	// ErrShape is returned when a generator output is not (sampleSize, drawCount).
	ErrShape = errors.New("draws: generator output has wrong dimensions")

	// ErrInvalidDrawCount indicates a non-positive number of draws.
	ErrInvalidDrawCount = errors.New("draws: number of draws must be > 0")

	// ErrOddDrawCount indicates an antithetic generator asked for an odd
	// number of draws; the mirrored half cannot be paired.
	ErrOddDrawCount = errors.New("draws: antithetic draws require an even number of draws")

	// ErrEmptySample indicates a non-positive sample size.
	ErrEmptySample = errors.New("draws: sample size must be > 0")

	// ErrInvalidGenerator flags an entry with an empty name or nil function.
	ErrInvalidGenerator = errors.New("draws: invalid generator entry")

	// ErrDuplicateVariable flags a variable listed twice in a table request.
	ErrDuplicateVariable = errors.New("draws: variable listed more than once")

	// ErrInvalidBase indicates a Halton base lower than 2.
	ErrInvalidBase = errors.New("draws: Halton base must be >= 2")

	// ErrOutOfRange indicates an index outside the draw table.
	ErrOutOfRange = errors.New("draws: index out of range")
)
