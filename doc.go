// Package choicedata is the data and draws layer of a discrete choice
// model estimator: it holds the observations, knows which rows belong to
// which individual, resamples them for bootstrap and cross-validation, and
// generates the draws used to simulate mixed logit likelihoods.
//
// 🚀 What is choicedata?
//
//	A small set of packages that bring together:
//		• dataset/         Database: columns, panel map, resampling, row evaluation
//		• draws/           native and user draw generators, (individual, draw, variable) tables
//		• expreval/        compiled column expressions usable as row evaluators
//		• config/          YAML run files for the choicedata command
//		• cmd/choicedata   command line front end
//
// ✨ Properties
//
//   - Reproducible – every random draw derives from one seed
//   - Fail fast – errors wrap package sentinels, matched with errors.Is
//   - Pluggable – user draw generators sit next to the 21 native types
//   - Parallel where safe – row evaluation spreads over cloned evaluators
//
// Quick example:
//
//	db, _ := dataset.ReadCSV("swissmetro", f, dataset.WithSeed(42))
//	_ = db.Panel("ID")
//	tbl, _ := db.GenerateDraws(map[string]string{"b_time_rnd": "NORMAL_MLHS"},
//	    []string{"b_time_rnd"}, 1000)
//	// tbl.Shape() == (individuals, 1000, 1)
//
// See examples/ for a complete simulation.
package choicedata
