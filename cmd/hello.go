package cmd

import (
	"github.com/saltyorg/ttygreet/internal/greeter"
	"github.com/saltyorg/ttygreet/internal/logging"

	"github.com/spf13/cobra"
)

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Print a greeting if stdin is a terminal",
	Long: `Print "Hello, world!" if standard input is an interactive terminal.

Fails with "must be called from a tty" when stdin is a file or pipe.`,
	Args: cobra.NoArgs,
	RunE: runHello,
}

func init() {
	rootCmd.AddCommand(helloCmd)
}

func runHello(cmd *cobra.Command, _ []string) error {
	if err := cmd.Context().Err(); err != nil {
		return handleInterruptError(err)
	}

	logging.Debug(current.Verbosity, "Checking stdin with %s backend", current.Backend)
	g := greeter.New(newProbe(current.Backend), cmd.OutOrStdout())
	if err := g.Greet(); err != nil {
		logging.Debug(current.Verbosity, "Greeting failed: %v", err)
		return err
	}
	return nil
}
