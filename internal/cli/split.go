package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/choicedata/dataset"
	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split [flags]",
	Short: "split a data set into estimation and validation folds.",
	Long: `Shuffle the observations of a CSV data set once and cut them into k folds,
reporting the size of each estimation and validation set.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		db, err := readDatabase(GetString(cmd, "data"), "", newRegistry(), dataset.WithSeed(GetUint64(cmd, "seed")))
		exitOnError(err)
		exitOnError(reportFolds(os.Stdout, db, GetInt(cmd, "slices")))
	},
}

func reportFolds(w io.Writer, db *dataset.Database, k int) error {
	folds, err := db.Split(k)
	if err != nil {
		return err
	}
	for i, f := range folds {
		fmt.Fprintf(w, "fold %d: estimation %d, validation %d\n", i+1, f.Estimation.NumRows(), f.Validation.NumRows())
	}

	return nil
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().StringP("data", "d", "", "CSV data file")
	splitCmd.Flags().IntP("slices", "k", 5, "number of folds")
	splitCmd.MarkFlagRequired("data")
}
