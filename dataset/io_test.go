package dataset_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/choicedata/dataset"
)

func TestReadCSV(t *testing.T) {
	in := "ID, CHOICE, COST\n1, 1, 12.5\n1, 2, 7\n2, 1, 1e2\n"
	db, err := dataset.ReadCSV("csv", strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []string{"ID", "CHOICE", "COST"}, db.Data().Columns())
	require.Equal(t, []float64{12.5, 7, 100}, column(t, db, "COST"))
	require.NoError(t, db.Panel("ID"))
}

// TestReadCSV_ReportsEveryColumn checks non-numeric and missing cells of
// several columns are reported together.
func TestReadCSV_ReportsEveryColumn(t *testing.T) {
	in := "a,b,c\n1,x,\n2,y,3\nNA,4,5\n"
	_, err := dataset.ReadCSV("csv", strings.NewReader(in))
	require.ErrorIs(t, err, dataset.ErrConstruction)
	msg := err.Error()
	require.Contains(t, msg, `column b: contains 2 non-numeric value(s), first "x"`)
	require.Contains(t, msg, "column a: contains 1 missing value(s)")
	require.Contains(t, msg, "column c: contains 1 missing value(s)")

	_, err = dataset.ReadCSV("csv", strings.NewReader(""))
	require.ErrorIs(t, err, dataset.ErrConstruction)

	_, err = dataset.ReadCSV("csv", strings.NewReader("a,b\n1,2,3\n"))
	require.Error(t, err)
}

func TestTable_WriteTSV(t *testing.T) {
	db := mustDB(t, []dataset.Column{
		{Name: "a", Values: []float64{1, 2.5}},
		{Name: "b", Values: []float64{-3, 1e-7}},
	})
	var buf bytes.Buffer
	require.NoError(t, db.Data().WriteTSV(&buf))
	require.Equal(t, "\ta\tb\n0\t1\t-3\n1\t2.5\t1e-07\n", buf.String())
}

func TestTable_Basics(t *testing.T) {
	db := panelDB(t)
	tbl := db.Data()
	require.Equal(t, 6, tbl.NumRows())
	require.Equal(t, 3, tbl.NumColumns())
	require.True(t, tbl.HasColumn("x"))

	v, err := tbl.Value(5, "x")
	require.NoError(t, err)
	require.Equal(t, 15.0, v)
	_, err = tbl.Value(6, "x")
	require.Error(t, err)
	_, err = tbl.Value(0, "nope")
	require.ErrorIs(t, err, dataset.ErrUnknownColumn)

	sub := tbl.Take([]int{5, 0, 5})
	xs, _ := sub.Column("x")
	require.Equal(t, []float64{15, 10, 15}, xs)
	require.Contains(t, tbl.String(), "6 rows × 3 columns")
	require.Contains(t, tbl.String(), "... 1 more rows")
}
