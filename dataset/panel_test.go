package dataset_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/choicedata/dataset"
)

// TestPanel_NonContiguousIndividual reproduces an individual split over two
// blocks, then the same data once sorted.
func TestPanel_NonContiguousIndividual(t *testing.T) {
	db := mustDB(t, []dataset.Column{
		{Name: "id", Values: []float64{1, 1, 2, 2, 2, 1}},
		{Name: "x", Values: seq(6)},
	})
	err := db.Panel("id")
	require.ErrorIs(t, err, dataset.ErrStructure)
	require.Contains(t, err.Error(), "column id defines 3 groups of observations for 2 individuals")
	require.False(t, db.IsPanel())

	_, err = db.IndividualMap()
	require.ErrorIs(t, err, dataset.ErrPanelOnly)

	db = panelDB(t)
	require.NoError(t, db.Panel("id"))
	m, err := db.IndividualMap()
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, m.IDs())
	r1, ok := m.Range(1)
	require.True(t, ok)
	require.Equal(t, dataset.Range{First: 0, Last: 2}, r1)
	r2, ok := m.Range(2)
	require.True(t, ok)
	require.Equal(t, dataset.Range{First: 3, Last: 5}, r2)
	require.Equal(t, 3, r2.Len())
	require.Equal(t, "1: [0, 2]\n2: [3, 5]", m.String())
	require.Equal(t, []string{"id", "row", "x"}, m.Columns())

	_, ok = m.Range(7)
	require.False(t, ok)
}

func TestPanel_Errors(t *testing.T) {
	db := panelDB(t)
	require.ErrorIs(t, db.Panel("nope"), dataset.ErrUnknownColumn)
	require.ErrorIs(t, db.BuildPanelMap(), dataset.ErrPanelOnly)
	_, err := db.FullIndividualMap()
	require.ErrorIs(t, err, dataset.ErrPanelOnly)
	_, err = db.SumByIndividual(dataset.Constant(1))
	require.ErrorIs(t, err, dataset.ErrPanelOnly)
	_, err = db.SampleIndividualMapWithReplacement(2)
	require.ErrorIs(t, err, dataset.ErrPanelOnly)
}

// TestPanel_RangesPartitionRows checks, on random contiguous panels, that
// the map covers every row exactly once, in ascending identifier order, and
// that the sort keeps the original order within an individual.
func TestPanel_RangesPartitionRows(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for trial := 0; trial < 20; trial++ {
		ids := r.Perm(1 + r.IntN(8))
		var idCol []float64
		for _, id := range ids {
			for range 1 + r.IntN(4) {
				idCol = append(idCol, float64(id))
			}
		}
		n := len(idCol)
		db := mustDB(t, []dataset.Column{{Name: "id", Values: idCol}, {Name: "orig", Values: seq(n)}})
		require.NoError(t, db.Panel("id"))

		m, err := db.IndividualMap()
		require.NoError(t, err)
		require.Len(t, m.IDs(), len(ids))
		require.True(t, slices.IsSorted(m.IDs()))

		sortedIDs := column(t, db, "id")
		orig := column(t, db, "orig")
		next := 0
		for k, rg := range m.Ranges() {
			require.Equal(t, next, rg.First, "gap before entry %d", k)
			require.GreaterOrEqual(t, rg.Last, rg.First)
			id, _ := m.At(k)
			for i := rg.First; i <= rg.Last; i++ {
				require.Equal(t, id, sortedIDs[i])
				if i > rg.First {
					require.Less(t, orig[i-1], orig[i])
				}
			}
			next = rg.Last + 1
		}
		require.Equal(t, n, next)
	}
}

// TestPanel_SortsContiguousBlocks checks unsorted but contiguous blocks are
// sorted at activation.
func TestPanel_SortsContiguousBlocks(t *testing.T) {
	db := mustDB(t, []dataset.Column{
		{Name: "id", Values: []float64{7, 7, 3, 3, 3}},
		{Name: "x", Values: seq(5)},
	})
	require.NoError(t, db.Panel("id"))
	require.Equal(t, []float64{3, 3, 3, 7, 7}, column(t, db, "id"))
	require.Equal(t, []float64{2, 3, 4, 0, 1}, column(t, db, "x"))
	require.Equal(t, "id", db.PanelColumn())

	full, err := db.FullIndividualMap()
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7}, full.IDs())
}

func TestSumByIndividual(t *testing.T) {
	db := panelDB(t)
	require.NoError(t, db.Panel("id"))
	x, _ := db.Variable("x")
	sums, err := db.SumByIndividual(x)
	require.NoError(t, err)
	require.Equal(t, []float64{33, 42}, sums)
}

func TestSampleIndividualMapWithReplacement(t *testing.T) {
	db := panelDB(t, dataset.WithSeed(4))
	require.NoError(t, db.Panel("id"))

	m, err := db.SampleIndividualMapWithReplacement(0)
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())

	m, err = db.SampleIndividualMapWithReplacement(50)
	require.NoError(t, err)
	require.Equal(t, 50, m.Len())
	for k := 0; k < m.Len(); k++ {
		id, rg := m.At(k)
		want, ok := map[float64]dataset.Range{1: {First: 0, Last: 2}, 2: {First: 3, Last: 5}}[id]
		require.True(t, ok)
		require.Equal(t, want, rg)
	}

	working, err := db.IndividualMap()
	require.NoError(t, err)
	require.Equal(t, 2, working.Len())
}
