// Package draws generates reproducible pseudo-random and quasi-random draws
// for Monte-Carlo integration of choice-model likelihoods.
//
// 🚀 What lives here?
//
//   - Generator: func(rng, sampleSize, drawCount) → sampleSize×drawCount *mat.Dense
//   - Raw sequences: Uniform, SymmetricUniform, Halton, MLHS, Normal (Wichura AS241)
//   - Antithetic: wraps any generator, mirrors half of the draws
//   - Registry: immutable native table + mutable user table, native names reserved
//   - Table / Build: the (individual, draw, variable) tensor handed to likelihoods
//
// ⚙️ Usage:
//
//	// import "math/rand/v2"
//	reg := draws.NewRegistry()
//	_ = reg.Register("HALTON13", draws.Halton(13, 10), "Halton draws, base 13, skipping 10")
//
//	table, err := draws.Build(reg, rand.New(rand.NewPCG(42, 0)), 100,
//	    map[string]string{"b_time_rnd": "NORMAL_HALTON2", "u": "HALTON13"},
//	    []string{"b_time_rnd", "u"}, 500)
//	// table.Shape() == (100, 500, 2)
//
// Native draw types (registration order):
//
//	UNIFORM, UNIFORM_ANTI, UNIFORM_HALTON{2,3,5}, UNIFORM_MLHS, UNIFORM_MLHS_ANTI,
//	UNIFORMSYM, UNIFORMSYM_ANTI, UNIFORMSYM_HALTON{2,3,5}, UNIFORMSYM_MLHS,
//	UNIFORMSYM_MLHS_ANTI, NORMAL, NORMAL_ANTI, NORMAL_HALTON{2,3,5},
//	NORMAL_MLHS, NORMAL_MLHS_ANTI.
//
// Halton sequences always skip their first HaltonSkip points.
//
// Determinism: every generator draws only from the *rand.Rand it is given.
// Registry is not safe for concurrent mutation; Resolve after setup is read-only.
package draws
