// SPDX-License-Identifier: MIT

package draws

// Native draw-type names.
const (
	TypeUniform            = "UNIFORM"
	TypeUniformAnti        = "UNIFORM_ANTI"
	TypeUniformHalton2     = "UNIFORM_HALTON2"
	TypeUniformHalton3     = "UNIFORM_HALTON3"
	TypeUniformHalton5     = "UNIFORM_HALTON5"
	TypeUniformMLHS        = "UNIFORM_MLHS"
	TypeUniformMLHSAnti    = "UNIFORM_MLHS_ANTI"
	TypeUniformSym         = "UNIFORMSYM"
	TypeUniformSymAnti     = "UNIFORMSYM_ANTI"
	TypeUniformSymHalton2  = "UNIFORMSYM_HALTON2"
	TypeUniformSymHalton3  = "UNIFORMSYM_HALTON3"
	TypeUniformSymHalton5  = "UNIFORMSYM_HALTON5"
	TypeUniformSymMLHS     = "UNIFORMSYM_MLHS"
	TypeUniformSymMLHSAnti = "UNIFORMSYM_MLHS_ANTI"
	TypeNormal             = "NORMAL"
	TypeNormalAnti         = "NORMAL_ANTI"
	TypeNormalHalton2      = "NORMAL_HALTON2"
	TypeNormalHalton3      = "NORMAL_HALTON3"
	TypeNormalHalton5      = "NORMAL_HALTON5"
	TypeNormalMLHS         = "NORMAL_MLHS"
	TypeNormalMLHSAnti     = "NORMAL_MLHS_ANTI"
)

// nativeEntries is the immutable native table, in registration order.
// It is built once and shared (read-only) by every Registry.
var nativeEntries = buildNativeEntries()

func buildNativeEntries() []Entry {
	halton2 := Halton(2, HaltonSkip)
	halton3 := Halton(3, HaltonSkip)
	halton5 := Halton(5, HaltonSkip)

	return []Entry{
		{TypeUniform, Uniform, "Uniform U[0, 1]"},
		{TypeUniformAnti, Antithetic(Uniform, Complement), "Antithetic uniform U[0, 1]"},
		{TypeUniformHalton2, halton2, "Halton draws with base 2, skipping the first 10"},
		{TypeUniformHalton3, halton3, "Halton draws with base 3, skipping the first 10"},
		{TypeUniformHalton5, halton5, "Halton draws with base 5, skipping the first 10"},
		{TypeUniformMLHS, MLHS, "Modified Latin Hypercube Sampling on [0, 1]"},
		{TypeUniformMLHSAnti, Antithetic(MLHS, Complement), "Antithetic Modified Latin Hypercube Sampling on [0, 1]"},
		{TypeUniformSym, SymmetricUniform, "Uniform U[-1, 1]"},
		{TypeUniformSymAnti, Antithetic(SymmetricUniform, Negate), "Antithetic uniform U[-1, 1]"},
		{TypeUniformSymHalton2, Symmetric(halton2), "Halton draws on [-1, 1] with base 2, skipping the first 10"},
		{TypeUniformSymHalton3, Symmetric(halton3), "Halton draws on [-1, 1] with base 3, skipping the first 10"},
		{TypeUniformSymHalton5, Symmetric(halton5), "Halton draws on [-1, 1] with base 5, skipping the first 10"},
		{TypeUniformSymMLHS, Symmetric(MLHS), "Modified Latin Hypercube Sampling on [-1, 1]"},
		{TypeUniformSymMLHSAnti, Antithetic(Symmetric(MLHS), Negate), "Antithetic Modified Latin Hypercube Sampling on [-1, 1]"},
		{TypeNormal, Normal, "Normal N(0, 1) draws"},
		{TypeNormalAnti, Antithetic(Normal, Negate), "Antithetic normal draws"},
		{TypeNormalHalton2, NormalOf(halton2), "Normal draws from Halton base 2 sequence"},
		{TypeNormalHalton3, NormalOf(halton3), "Normal draws from Halton base 3 sequence"},
		{TypeNormalHalton5, NormalOf(halton5), "Normal draws from Halton base 5 sequence"},
		{TypeNormalMLHS, NormalOf(MLHS), "Normal draws from Modified Latin Hypercube Sampling"},
		{TypeNormalMLHSAnti, Antithetic(NormalOf(MLHS), Negate), "Antithetic normal draws from Modified Latin Hypercube Sampling"},
	}
}
