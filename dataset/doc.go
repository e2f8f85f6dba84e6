// Package dataset organizes the numeric observations of a choice model:
// a table of named columns, optionally grouped by individual (panel data),
// with the resampling and per-row evaluation used around estimation.
//
// 🚀 What lives here?
//
//   - Database: working table + full restore point, variable handles, draws
//   - Panel mode: contiguity check, stable sort, IndividualMap of row ranges
//   - Resampling: SampleWithoutReplacement / UseFullSample with drift checks,
//     SampleWithReplacement for bootstraps, Split for k-fold validation
//   - Row evaluation: Evaluator(Row) for derived columns, sums, masks and
//     choice/availability statistics, optionally on several workers
//   - Loaders: New (columns), ReadCSV, FromArrow
//
// ⚙️ Usage:
//
//	db, err := dataset.New("swissmetro", cols, dataset.WithSeed(42))
//	if err := db.Panel("ID"); err != nil { ... }
//	tbl, err := db.GenerateDraws(map[string]string{"b_time_rnd": "NORMAL_MLHS"},
//	    []string{"b_time_rnd"}, 1000)
//	// tbl.Shape() == (individuals, 1000, 1)
//
// Panel mode cannot be left once entered. Fallible operations return an
// error wrapping one of the package sentinels; see errors.go. Index-based
// views panic on programmer errors instead: Table.Row and
// IndividualMap.At out of range, WithWorkers below one.
//
// A Database is owned by one goroutine. Parallel row evaluation
// (WithWorkers) gives every worker its own evaluator clone and writes
// results back in row order.
package dataset
