// Package greeter prints a greeting when standard input is an interactive terminal.
package greeter

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/saltyorg/ttygreet/internal/tty"
)

const (
	// Greeting is the line written when the probe reports a terminal.
	Greeting = "Hello, world!"
	// Untested is the line written by PrintUntested.
	Untested = "untested"
)

// ErrNotTerminal is returned by Greet when standard input is not a terminal.
var ErrNotTerminal = errors.New("must be called from a tty")

// Greeter writes Greeting to Out when Probe reports a terminal.
type Greeter struct {
	Probe tty.Probe
	Out   io.Writer
}

// New creates a Greeter. A nil probe checks os.Stdin with the isatty backend,
// a nil writer selects os.Stdout.
func New(probe tty.Probe, out io.Writer) *Greeter {
	if probe == nil {
		probe = tty.Stdin(tty.BackendIsatty)
	}
	if out == nil {
		out = os.Stdout
	}
	return &Greeter{Probe: probe, Out: out}
}

// Greet writes the greeting line, or returns ErrNotTerminal without writing anything.
func (g *Greeter) Greet() error {
	if !g.Probe.IsTerminal() {
		return ErrNotTerminal
	}
	if _, err := io.WriteString(g.Out, Greeting+"\n"); err != nil {
		return fmt.Errorf("failed to write greeting: %w", err)
	}
	return nil
}

// MustGreet is like Greet but panics when standard input is not a terminal
// or the greeting cannot be written.
func (g *Greeter) MustGreet() {
	if err := g.Greet(); err != nil {
		panic(err.Error())
	}
}

// PrintUntested writes the "untested" line to w. It never consults a probe.
func PrintUntested(w io.Writer) error {
	if _, err := io.WriteString(w, Untested+"\n"); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	return nil
}
