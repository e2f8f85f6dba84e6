// SPDX-License-Identifier: MIT

// Package dataset: functional configuration for Database construction.
//
// Design goals:
//   - Deterministic behavior: all randomness derives from the seed.
//   - Safe by construction: With* constructors panic only on nonsensical
//     values (programmer error); data problems are returned as errors.

package dataset

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/choicedata/draws"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeed selects the fixed default random stream (see internal/rng).
	DefaultSeed uint64 = 0

	// DefaultWorkers evaluates rows sequentially.
	DefaultWorkers = 1
)

const panicWorkersInvalid = "dataset: WithWorkers: n must be >= 1"

// Option configures a Database at construction.
type Option func(*options)

type options struct {
	seed     uint64
	workers  int
	logger   logrus.FieldLogger
	registry *draws.Registry
}

// WithSeed fixes the seed of the random stream used for draws and resampling.
// Seed 0 selects the package default.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithWorkers evaluates rows on n goroutines when the evaluator can be cloned.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithLogger routes debug messages to l. A nil logger keeps the default,
// which discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRegistry shares a draw registry (and its user generators) between
// databases. By default each Database owns a fresh registry.
func WithRegistry(reg *draws.Registry) Option {
	return func(o *options) {
		if reg != nil {
			o.registry = reg
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

func gatherOptions(opts []Option) options {
	o := options{seed: DefaultSeed, workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = discardLogger()
	}
	if o.registry == nil {
		o.registry = draws.NewRegistry()
	}

	return o
}
