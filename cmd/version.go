package cmd

import (
	"fmt"
	"strings"

	"github.com/saltyorg/ttygreet/internal/runtime"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print ttygreet version",
	Long:  `Print ttygreet version`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "ttygreet version: %s (commit: %s)\n", displayVersion(runtime.Version), displayCommit(runtime.GitCommit))
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// displayVersion normalises semver build versions and returns "dev" for unset ones.
// Non-semver strings are shown as given.
func displayVersion(v string) string {
	if v == "" {
		return "dev"
	}
	parsed, err := semver.NewVersion(strings.TrimPrefix(v, "v"))
	if err != nil {
		return v
	}
	return parsed.String()
}

func displayCommit(c string) string {
	if c == "" {
		return "unknown"
	}
	if len(c) > 12 {
		return c[:12]
	}
	return c
}
