package errors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saltyorg/ttygreet/internal/signals"
)

// shutdowner is the part of the signal manager these helpers need.
type shutdowner interface {
	Shutdown(code int)
}

// manager returns the signal manager that receives shutdown requests.
// Tests replace it.
var manager = func() shutdowner {
	return signals.GetGlobalManager()
}

// stderr is where the interrupt message is written.
var stderr io.Writer = os.Stderr

// IsInterruptError checks if an error is due to user interrupt (Ctrl+C).
// It detects context cancellation and signal-based termination.
func IsInterruptError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.Canceled) ||
		strings.Contains(err.Error(), "signal: killed") ||
		strings.Contains(err.Error(), "signal: interrupt")
}

// HandleInterruptError checks if the error is from a user interrupt and triggers shutdown via signal manager.
// Returns true if it was an interrupt error and shutdown was initiated.
func HandleInterruptError(err error) bool {
	if !IsInterruptError(err) {
		return false
	}
	_, _ = fmt.Fprintln(stderr, "Command interrupted by user")
	manager().Shutdown(130) // 128 + SIGINT
	return true
}

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case IsInterruptError(err):
		return 130
	default:
		return 1
	}
}
