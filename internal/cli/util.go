package cli

import (
	"fmt"
	"os"

	"github.com/katalvlaran/choicedata/draws"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected boolean flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected int flag, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint64 gets an expected uint64 flag, or exits if an error arises.
func GetUint64(cmd *cobra.Command, flag string) uint64 {
	r, err := cmd.Flags().GetUint64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// configureLogging raises the log level when --verbose is given.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// exitOnError reports err and exits with status 1.
func exitOnError(err error) {
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// newRegistry returns a draw registry holding the user generators shipped
// with the command: Halton sequences in bases 7 and 13.
func newRegistry() *draws.Registry {
	reg := draws.NewRegistry()
	_ = reg.RegisterAll([]draws.Entry{
		{Name: "HALTON7", Generate: draws.Halton(7, draws.HaltonSkip), Description: "Halton draws, base 7, skipping 10"},
		{Name: "HALTON13", Generate: draws.Halton(13, draws.HaltonSkip), Description: "Halton draws, base 13, skipping 10"},
	})

	return reg
}
