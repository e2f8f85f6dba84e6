package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/choicedata/dataset"
)

// choiceDB has three alternatives; alternative 3 is never in the map below
// and row 2 chooses an unavailable alternative.
func choiceDB(t *testing.T, opts ...dataset.Option) *dataset.Database {
	t.Helper()

	return mustDB(t, []dataset.Column{
		{Name: "CHOICE", Values: []float64{1, 2, 2, 1, 3}},
		{Name: "AV1", Values: []float64{1, 1, 1, 1, 1}},
		{Name: "AV2", Values: []float64{1, 1, 0, 0, 1}},
	}, opts...)
}

func availability(db *dataset.Database) (map[float64]dataset.Evaluator, dataset.Evaluator) {
	av1, _ := db.Variable("AV1")
	av2, _ := db.Variable("AV2")
	choice, _ := db.Variable("CHOICE")

	return map[float64]dataset.Evaluator{1: av1, 2: av2}, choice
}

func TestCheckAvailabilityOfChosenAlt(t *testing.T) {
	for _, workers := range []int{1, 2} {
		db := choiceDB(t, dataset.WithWorkers(workers))
		avail, choice := availability(db)

		mask, err := db.CheckAvailabilityOfChosenAlt(avail, choice)
		require.NoError(t, err)
		require.Equal(t, []bool{true, true, false, true, false}, mask)
	}
}

func TestChoiceAvailabilityStatistics(t *testing.T) {
	db := choiceDB(t)
	avail, choice := availability(db)

	stats, err := db.ChoiceAvailabilityStatistics(avail, choice)
	require.NoError(t, err)
	require.Equal(t, map[float64]dataset.ChoiceStats{
		1: {Chosen: 2, Available: 5},
		2: {Chosen: 2, Available: 3},
	}, stats)
}

func TestCount(t *testing.T) {
	db := choiceDB(t)
	n, err := db.Count("CHOICE", 2)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = db.Count("nope", 1)
	require.ErrorIs(t, err, dataset.ErrUnknownColumn)
}
