package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saltyorg/ttygreet/cmd"
	"github.com/saltyorg/ttygreet/internal/config"
	"github.com/saltyorg/ttygreet/internal/errors"
	"github.com/saltyorg/ttygreet/internal/greeter"
	"github.com/saltyorg/ttygreet/internal/runtime"
	"github.com/saltyorg/ttygreet/internal/signals"
	"github.com/saltyorg/ttygreet/internal/styles"
	"github.com/saltyorg/ttygreet/internal/tty"

	"github.com/charmbracelet/fang"
)

const notTerminalHint = "stdin is a file, pipe or closed descriptor; run ttygreet from an interactive terminal"

// customErrorHandler handles error formatting with proper line break support.
// Unlike the default handler, this respects \n characters in error messages
// and renders each line separately.
// Interrupts are skipped; the command has already reported them.
func customErrorHandler(w io.Writer, fangStyles fang.Styles, err error) {
	if errors.IsInterruptError(err) {
		return
	}

	_, _ = fmt.Fprintf(w, "%s\n", fangStyles.ErrorHeader.String())

	errorText := err.Error()
	// Unset transform and width so Fang does not re-case or wrap our lines
	lineStyle := fangStyles.ErrorText.UnsetTransform().UnsetWidth()
	for line := range strings.SplitSeq(errorText, "\n") {
		if line == "" {
			_, _ = fmt.Fprintln(w)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\n", lineStyle.Render(line))
	}

	if stderrors.Is(err, greeter.ErrNotTerminal) {
		_, _ = fmt.Fprintf(w, "\n%s\n", lineStyle.Render(styles.DimStyle.Render(notTerminalHint)))
	}

	if !strings.HasSuffix(errorText, "\n") {
		_, _ = fmt.Fprintln(w)
	}
}

func main() {
	// Process-local color profile; config and flags may refine it in PersistentPreRunE.
	styles.ApplyColorProfile(os.Getenv(config.EnvColorProfile), tty.IsInteractive())

	sigManager := signals.GetGlobalManager()
	ctx := sigManager.Context()

	err := fang.Execute(ctx, cmd.GetRootCommand(),
		fang.WithVersion(runtime.Version),
		fang.WithCommit(runtime.GitCommit),
		fang.WithErrorHandler(customErrorHandler),
	)

	if sigManager.IsShutdown() {
		os.Exit(sigManager.ExitCode())
	}
	os.Exit(errors.ExitCode(err))
}
