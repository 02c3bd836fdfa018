package cmd

import (
	"fmt"

	"github.com/saltyorg/ttygreet/internal/greeter"
	"github.com/saltyorg/ttygreet/internal/logging"

	"github.com/spf13/cobra"
)

var untestedCount int

var untestedCmd = &cobra.Command{
	Use:    "untested",
	Hidden: true,
	Short:  `Print "untested"`,
	Long:   `Print the line "untested" --count times. Does not look at stdin.`,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if untestedCount < 1 {
			return fmt.Errorf("--count must be at least 1, got %d", untestedCount)
		}
		logging.Debug(current.Verbosity, "Printing %d line(s)", untestedCount)
		for range untestedCount {
			if err := greeter.PrintUntested(cmd.OutOrStdout()); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	untestedCmd.Flags().IntVarP(&untestedCount, "count", "n", 1, "number of lines to print")
	rootCmd.AddCommand(untestedCmd)
}
