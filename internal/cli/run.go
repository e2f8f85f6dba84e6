package cli

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/katalvlaran/choicedata/config"
	"github.com/katalvlaran/choicedata/dataset"
	"github.com/katalvlaran/choicedata/expreval"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

var runCmd = &cobra.Command{
	Use:   "run [flags]",
	Short: "prepare a data set and its draws as described by a run file.",
	Long: `Load the data set of a run file, exclude observations, add derived columns,
declare the panel structure, check availabilities, sample and generate draws,
reporting each step.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		path := GetString(cmd, "config")
		cfg, err := config.Load(path)
		exitOnError(err)
		if cmd.Flags().Changed("seed") {
			cfg.Seed = GetUint64(cmd, "seed")
		}
		// Data paths are relative to the run file.
		if !filepath.IsAbs(cfg.Data) {
			cfg.Data = filepath.Join(filepath.Dir(path), cfg.Data)
		}
		exitOnError(runConfig(os.Stdout, cfg, GetInt(cmd, "fold")))
	},
}

// runConfig executes every step of cfg in order and reports to w. With
// folds > 1 the prepared data is also split for cross-validation.
func runConfig(w io.Writer, cfg *config.Config, folds int) error {
	opts := []dataset.Option{dataset.WithSeed(cfg.Seed)}
	if cfg.Workers > 0 {
		opts = append(opts, dataset.WithWorkers(cfg.Workers))
	}
	db, err := readDatabase(cfg.Data, cfg.Name, newRegistry(), opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %d observations, %d columns\n", db.Name(), db.NumberOfObservations(), db.Data().NumColumns())

	if cfg.Exclude != "" {
		e, err := expreval.Compile(cfg.Exclude, db.Data().Columns())
		if err != nil {
			return err
		}
		removed, err := db.Remove(e)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "excluded %d observations, %d remain\n", removed, db.NumberOfObservations())
	}

	for _, d := range cfg.Derived {
		e, err := expreval.Compile(d.Expression, db.Data().Columns())
		if err != nil {
			return fmt.Errorf("derived %s: %w", d.Name, err)
		}
		if _, err = db.AddColumn(e, d.Name); err != nil {
			return err
		}
		log.Debugf("added column %s = %s", d.Name, d.Expression)
	}
	for _, diag := range db.Audit() {
		fmt.Fprintf(w, "warning: %s\n", diag)
	}

	if cfg.Panel != "" {
		if err = db.Panel(cfg.Panel); err != nil {
			return err
		}
		fmt.Fprintf(w, "panel data: %d individuals\n", db.SampleSize())
	}

	if cfg.Availability != nil {
		if err = reportAvailability(w, db, cfg.Availability); err != nil {
			return err
		}
	}

	if cfg.Sample != nil {
		report, err := db.SampleWithoutReplacement(cfg.Sample.Rate, cfg.Sample.Weight)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, report)
	}

	suggestions, err := db.SuggestScaling(nil, false)
	if err != nil {
		return err
	}
	for _, s := range suggestions {
		fmt.Fprintf(w, "suggest scaling %s by %g (largest value %g)\n", s.Column, s.Scale, s.Largest)
	}

	if cfg.Draws != nil {
		if err = reportDraws(w, db, cfg.Draws); err != nil {
			return err
		}
	}

	if folds > 1 {
		return reportFolds(w, db, folds)
	}

	return nil
}

// reportAvailability prints choice and availability counts per alternative
// and the number of observations whose chosen alternative is unavailable.
func reportAvailability(w io.Writer, db *dataset.Database, a *config.Availability) error {
	cols := db.Data().Columns()
	choice, err := expreval.Compile(a.Choice, cols)
	if err != nil {
		return fmt.Errorf("availability choice: %w", err)
	}
	avail := make(map[float64]dataset.Evaluator, len(a.Alternatives))
	for alt, src := range a.Alternatives {
		e, err := expreval.Compile(src, cols)
		if err != nil {
			return fmt.Errorf("availability of %g: %w", alt, err)
		}
		avail[alt] = e
	}

	stats, err := db.ChoiceAvailabilityStatistics(avail, choice)
	if err != nil {
		return err
	}
	for _, alt := range slices.Sorted(maps.Keys(stats)) {
		s := stats[alt]
		fmt.Fprintf(w, "alternative %g: chosen %d, available %d\n", alt, s.Chosen, s.Available)
	}

	mask, err := db.CheckAvailabilityOfChosenAlt(avail, choice)
	if err != nil {
		return err
	}
	unavailable := 0
	for _, ok := range mask {
		if !ok {
			unavailable++
		}
	}
	if unavailable > 0 {
		fmt.Fprintf(w, "warning: the chosen alternative is unavailable for %d observations\n", unavailable)
	}

	return nil
}

// reportDraws generates the draws and prints the mean and standard
// deviation of each variable over all individuals and draws.
func reportDraws(w io.Writer, db *dataset.Database, d *config.Draws) error {
	types, names := d.Types()
	tbl, err := db.GenerateDraws(types, names, d.Count)
	if err != nil {
		return err
	}
	n, r, _ := tbl.Shape()
	fmt.Fprintf(w, "draws: %d individuals × %d draws\n", n, r)

	values := make([]float64, 0, n*r)
	for v, name := range tbl.Variables() {
		values = values[:0]
		for i := 0; i < n; i++ {
			slab, err := tbl.Draws(i, v)
			if err != nil {
				return err
			}
			values = append(values, slab...)
		}
		mean, std := stat.MeanStdDev(values, nil)
		fmt.Fprintf(w, "  %s (%s): mean %.4f, std %.4f\n", name, types[name], mean, std)
	}

	return nil
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("config", "c", "run.yaml", "run file")
	runCmd.Flags().Int("fold", 0, "also split the prepared data into this many folds")
}
