package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/choicedata/dataset"
)

// seq returns 0, 1, ..., n-1 as floats.
func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}

// mustDB builds a database or fails the test.
func mustDB(t *testing.T, cols []dataset.Column, opts ...dataset.Option) *dataset.Database {
	t.Helper()
	db, err := dataset.New("test", cols, opts...)
	require.NoError(t, err)

	return db
}

// column reads a column of the working data.
func column(t *testing.T, db *dataset.Database, name string) []float64 {
	t.Helper()
	c, err := db.Data().Column(name)
	require.NoError(t, err)

	return c
}

// panelDB returns the 6-row, 2-individual panel used across tests:
// id = [1,1,1,2,2,2], row = 0..5, x = 10..15.
func panelDB(t *testing.T, opts ...dataset.Option) *dataset.Database {
	t.Helper()

	return mustDB(t, []dataset.Column{
		{Name: "id", Values: []float64{1, 1, 1, 2, 2, 2}},
		{Name: "row", Values: seq(6)},
		{Name: "x", Values: []float64{10, 11, 12, 13, 14, 15}},
	}, opts...)
}
