package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/choicedata/draws"
	"github.com/katalvlaran/choicedata/internal/rng"
	"github.com/spf13/cobra"
)

var drawsCmd = &cobra.Command{
	Use:   "draws [flags]",
	Short: "list the available draw types, or preview one of them.",
	Long: `Without --type, list the native draw types and the user defined ones shipped
with this command. With --type, generate a small table of draws of that type.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		reg := newRegistry()
		drawType := GetString(cmd, "type")
		if drawType == "" {
			exitOnError(describeDraws(os.Stdout, reg))
			return
		}
		exitOnError(previewDraws(os.Stdout, reg, drawType, GetUint64(cmd, "seed"),
			GetInt(cmd, "sample"), GetInt(cmd, "count")))
	},
}

// describeDraws prints every native type, then every user type.
func describeDraws(w io.Writer, reg *draws.Registry) error {
	fmt.Fprintln(w, "Native draw types:")
	for _, line := range reg.DescribeNative() {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintln(w, "User defined draw types:")
	for _, name := range reg.UserNames() {
		e, _ := reg.Lookup(name)
		fmt.Fprintf(w, "  %s\n", e)
	}

	return nil
}

// previewDraws prints a sampleSize × drawCount table of one draw type.
func previewDraws(w io.Writer, reg *draws.Registry, drawType string, seed uint64, sampleSize, drawCount int) error {
	tbl, err := draws.Build(reg, rng.New(seed), sampleSize, map[string]string{drawType: drawType},
		[]string{drawType}, drawCount)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s (%d × %d)\n", drawType, sampleSize, drawCount)
	for i := 0; i < sampleSize; i++ {
		row, err := tbl.Draws(i, 0)
		if err != nil {
			return err
		}
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprintf("%9.6f", v)
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}

	return nil
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(drawsCmd)
	drawsCmd.Flags().StringP("type", "t", "", "draw type to preview")
	drawsCmd.Flags().IntP("sample", "n", 3, "number of individuals in the preview")
	drawsCmd.Flags().IntP("count", "r", 6, "number of draws per individual in the preview")
}
