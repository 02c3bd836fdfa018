package logging

import (
	"fmt"
	"io"
	"os"
)

// Output receives all debug and trace lines. Stdout is reserved for command
// output, so this defaults to stderr.
var Output io.Writer = os.Stderr

// Debug prints a debug message with the DEBUG prefix if verbosity level is greater than 0.
//
// Usage:
//
//	logging.Debug(verbosity, "Using %s backend for stdin", backend)
func Debug(verbosity int, format string, args ...any) {
	if verbosity > 0 {
		write("DEBUG", format, args...)
	}
}

// Trace prints a trace message with the TRACE prefix if verbosity level is greater than 1.
// Trace messages are more verbose than debug messages and typically include raw data dumps.
func Trace(verbosity int, format string, args ...any) {
	if verbosity > 1 {
		write("TRACE", format, args...)
	}
}

func write(prefix, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(Output, "%s: %s\n", prefix, message)
}
