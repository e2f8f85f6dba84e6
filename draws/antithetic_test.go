package draws_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/choicedata/draws"
	"github.com/katalvlaran/choicedata/internal/rng"
)

// TestAntithetic_NativeMirrors checks that with 2n draws the second half is
// the complement (on [0,1]) or the negation (symmetric draws) of the first.
func TestAntithetic_NativeMirrors(t *testing.T) {
	cases := []struct {
		name   string
		mirror draws.Mirror
	}{
		{draws.TypeUniformAnti, draws.Complement},
		{draws.TypeUniformMLHSAnti, draws.Complement},
		{draws.TypeUniformSymAnti, draws.Negate},
		{draws.TypeUniformSymMLHSAnti, draws.Negate},
		{draws.TypeNormalAnti, draws.Negate},
		{draws.TypeNormalMLHSAnti, draws.Negate},
	}
	reg := draws.NewRegistry()
	const n, half = 4, 5
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen, err := reg.Resolve(tc.name)
			require.NoError(t, err)
			m, err := gen(rng.New(21), n, 2*half)
			require.NoError(t, err)
			r, c := m.Dims()
			require.Equal(t, n, r)
			require.Equal(t, 2*half, c)
			for i := 0; i < n; i++ {
				for j := 0; j < half; j++ {
					require.InDelta(t, tc.mirror(m.At(i, j)), m.At(i, j+half), epsTight)
				}
			}
		})
	}
}

func TestAntithetic_OddCount(t *testing.T) {
	gen := draws.Antithetic(draws.Uniform, draws.Complement)
	_, err := gen(rng.New(1), 3, 5)
	require.ErrorIs(t, err, draws.ErrOddDrawCount)

	_, err = gen(rng.New(1), 3, 0)
	require.ErrorIs(t, err, draws.ErrInvalidDrawCount)
}

// TestAntithetic_FirstHalfIsBaseGenerator checks the first half equals what
// the wrapped generator yields for half the draws from the same stream.
func TestAntithetic_FirstHalfIsBaseGenerator(t *testing.T) {
	base, err := draws.Uniform(rng.New(8), 3, 2)
	require.NoError(t, err)
	anti, err := draws.Antithetic(draws.Uniform, draws.Complement)(rng.New(8), 3, 4)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			require.Equal(t, base.At(i, j), anti.At(i, j))
		}
	}
}
