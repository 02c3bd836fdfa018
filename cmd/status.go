package cmd

import (
	"fmt"
	"io"

	"github.com/saltyorg/ttygreet/internal/tty"

	"github.com/aquasecurity/table"
	"github.com/spf13/cobra"
)

// inspectStreams is replaced in tests.
var inspectStreams = tty.InspectStandardStreams

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show how each backend classifies stdin, stdout and stderr",
	Long: `Show how each terminal detection backend classifies the standard streams.

Useful when "ttygreet hello" fails unexpectedly, for example under
Cygwin/MSYS terminals where only the isatty backend recognises the pty.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		renderStatus(cmd.OutOrStdout(), inspectStreams(), current.Backend)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func renderStatus(w io.Writer, streams []tty.StreamStatus, active tty.Backend) {
	t := table.New(w)
	t.SetHeaders("Stream", "isatty", "cygwin", "term", "Size", "Terminal ("+string(active)+")")
	t.SetHeaderStyle(table.StyleBold)
	t.SetDividers(table.UnicodeRoundedDividers)
	t.SetPadding(1)

	for _, s := range streams {
		size := "-"
		if s.Width > 0 && s.Height > 0 {
			size = fmt.Sprintf("%dx%d", s.Width, s.Height)
		}
		detected := s.Isatty || s.Cygwin
		if active == tty.BackendTerm {
			detected = s.Term
		}
		t.AddRow(s.Name, yesNo(s.Isatty), yesNo(s.Cygwin), yesNo(s.Term), size, yesNo(detected))
	}
	t.Render()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
