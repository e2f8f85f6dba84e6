package draws_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/choicedata/draws"
	"github.com/katalvlaran/choicedata/internal/rng"
)

// TestBuild_ShapeForEveryNativeType checks (sampleSize, drawCount, K) holds
// for each native generator and for every variable count.
func TestBuild_ShapeForEveryNativeType(t *testing.T) {
	reg := draws.NewRegistry()
	const n, r = 5, 6
	types := map[string]string{}
	var names []string
	for k, drawType := range reg.NativeNames() {
		name := "v" + drawType
		types[name] = drawType
		names = append(names, name)

		tbl, err := draws.Build(reg, rng.New(3), n, types, names, r)
		require.NoError(t, err, drawType)
		gotN, gotR, gotK := tbl.Shape()
		require.Equal(t, n, gotN)
		require.Equal(t, r, gotR)
		require.Equal(t, k+1, gotK)
	}
}

// TestBuild_AxisOrder checks the third axis follows the names list and that
// values land at (individual, draw, variable).
func TestBuild_AxisOrder(t *testing.T) {
	reg := draws.NewRegistry()
	types := map[string]string{"a": draws.TypeUniformHalton2, "b": draws.TypeUniformHalton3}

	tbl, err := draws.Build(reg, rng.New(1), 3, types, []string{"b", "a"}, 4)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a"}, tbl.Variables())
	require.Equal(t, types, tbl.Types())
	require.Equal(t, 4, tbl.NumberOfDraws())

	h2, _ := draws.HaltonSequence(2, draws.HaltonSkip, 12)
	h3, _ := draws.HaltonSequence(3, draws.HaltonSkip, 12)
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			vb, err := tbl.At(i, j, 0)
			require.NoError(t, err)
			va, err := tbl.At(i, j, 1)
			require.NoError(t, err)
			require.Equal(t, h3[i*4+j], vb)
			require.Equal(t, h2[i*4+j], va)
		}
	}

	col, err := tbl.Draws(2, 1)
	require.NoError(t, err)
	require.Equal(t, h2[8:12], col)

	idx, ok := tbl.VariableIndex("a")
	require.True(t, ok)
	require.Equal(t, 1, idx)
}

func TestBuild_Errors(t *testing.T) {
	reg := draws.NewRegistry()
	types := map[string]string{"x": draws.TypeUniform, "bad": "BOGUS"}

	_, err := draws.Build(reg, rng.New(1), 0, types, []string{"x"}, 2)
	require.ErrorIs(t, err, draws.ErrEmptySample)

	_, err = draws.Build(reg, rng.New(1), 2, types, []string{"x"}, 0)
	require.ErrorIs(t, err, draws.ErrInvalidDrawCount)

	_, err = draws.Build(reg, rng.New(1), 2, types, []string{"x", "bad"}, 2)
	require.ErrorIs(t, err, draws.ErrUnknownDrawType)
	require.Contains(t, err.Error(), "variable bad")
	require.Contains(t, err.Error(), "Native types:")

	_, err = draws.Build(reg, rng.New(1), 2, types, []string{"missing"}, 2)
	require.ErrorIs(t, err, draws.ErrUnknownDrawType)
	require.Contains(t, err.Error(), "missing")

	_, err = draws.Build(reg, rng.New(1), 2, types, []string{"x", "x"}, 2)
	require.ErrorIs(t, err, draws.ErrDuplicateVariable)

	_, err = draws.Build(reg, rng.New(1), 2, map[string]string{"x": draws.TypeUniformAnti}, []string{"x"}, 3)
	require.ErrorIs(t, err, draws.ErrOddDrawCount)
}

// TestBuild_UserShapeMismatch checks a misbehaving user generator is caught.
func TestBuild_UserShapeMismatch(t *testing.T) {
	reg := draws.NewRegistry()
	wide := func(_ *rand.Rand, n, d int) (*mat.Dense, error) { return mat.NewDense(n, d+1, nil), nil }
	require.NoError(t, reg.Register("WIDE", wide, "one draw too many"))

	_, err := draws.Build(reg, rng.New(1), 3, map[string]string{"w": "WIDE"}, []string{"w"}, 4)
	require.ErrorIs(t, err, draws.ErrShape)
	require.Contains(t, err.Error(), "w must generate")
	require.Contains(t, err.Error(), "(3, 4)")
	require.Contains(t, err.Error(), "(3, 5)")
}

func TestBuild_SeedDeterminism(t *testing.T) {
	reg := draws.NewRegistry()
	types := map[string]string{"n": draws.TypeNormalMLHS, "u": draws.TypeUniform}
	a, err := draws.Build(reg, rng.New(99), 4, types, []string{"n", "u"}, 6)
	require.NoError(t, err)
	b, err := draws.Build(reg, rng.New(99), 4, types, []string{"n", "u"}, 6)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for v := 0; v < 2; v++ {
			da, _ := a.Draws(i, v)
			db, _ := b.Draws(i, v)
			require.Equal(t, da, db)
		}
	}
}

func TestTable_OutOfRange(t *testing.T) {
	reg := draws.NewRegistry()
	tbl, err := draws.Build(reg, rng.New(1), 2, map[string]string{"u": draws.TypeUniform}, []string{"u"}, 3)
	require.NoError(t, err)

	_, err = tbl.At(2, 0, 0)
	require.ErrorIs(t, err, draws.ErrOutOfRange)
	_, err = tbl.At(0, 3, 0)
	require.ErrorIs(t, err, draws.ErrOutOfRange)
	_, err = tbl.Draws(0, 1)
	require.ErrorIs(t, err, draws.ErrOutOfRange)

	c := tbl.Clone()
	v0, _ := tbl.At(1, 2, 0)
	v1, _ := c.At(1, 2, 0)
	require.Equal(t, v0, v1)
	require.Contains(t, tbl.String(), "u: UNIFORM")
}
