package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/choicedata/dataset"
	"github.com/spf13/cobra"
)

var panelCmd = &cobra.Command{
	Use:   "panel [flags]",
	Short: "check the panel structure of a data set.",
	Long: `Check that the observations of each individual of a CSV data set are
contiguous and print the rows of the first individuals.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		db, err := readDatabase(GetString(cmd, "data"), "", newRegistry())
		exitOnError(err)
		exitOnError(reportPanel(os.Stdout, db, GetString(cmd, "column"), GetInt(cmd, "show")))
	},
}

// reportPanel activates panel mode and prints the size of the map and its
// first entries.
func reportPanel(w io.Writer, db *dataset.Database, column string, show int) error {
	if err := db.Panel(column); err != nil {
		return err
	}
	m, err := db.IndividualMap()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%d observations, %d individuals\n", db.NumberOfObservations(), m.Len())
	for k := 0; k < min(show, m.Len()); k++ {
		id, r := m.At(k)
		fmt.Fprintf(w, "  %g: rows %d to %d (%d observations)\n", id, r.First, r.Last, r.Len())
	}

	return nil
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(panelCmd)
	panelCmd.Flags().StringP("data", "d", "", "CSV data file")
	panelCmd.Flags().StringP("column", "c", "ID", "column identifying individuals")
	panelCmd.Flags().Int("show", 5, "number of individuals to print")
	panelCmd.MarkFlagRequired("data")
}
