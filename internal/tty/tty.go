package tty

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Backend selects the library used to classify a file descriptor.
type Backend string

const (
	// BackendIsatty uses github.com/mattn/go-isatty and also accepts Cygwin/MSYS pty pipes.
	BackendIsatty Backend = "isatty"
	// BackendTerm uses golang.org/x/term.
	BackendTerm Backend = "term"
)

// Backends lists every supported backend name.
var Backends = []string{string(BackendIsatty), string(BackendTerm)}

// ParseBackend converts a backend name into a Backend.
// An empty name selects BackendIsatty.
func ParseBackend(name string) (Backend, error) {
	switch Backend(name) {
	case "", BackendIsatty:
		return BackendIsatty, nil
	case BackendTerm:
		return BackendTerm, nil
	default:
		return "", fmt.Errorf("unknown terminal backend %q (valid: isatty, term)", name)
	}
}

// Probe reports whether a stream is attached to an interactive terminal.
type Probe interface {
	IsTerminal() bool
}

// ProbeFunc adapts a plain function to the Probe interface.
type ProbeFunc func() bool

// IsTerminal calls f.
func (f ProbeFunc) IsTerminal() bool {
	return f()
}

// FileProbe checks a single open file.
type FileProbe struct {
	File    *os.File
	Backend Backend
}

// IsTerminal reports whether p.File is a terminal device.
// A nil file is never a terminal.
func (p FileProbe) IsTerminal() bool {
	if p.File == nil {
		return false
	}
	fd := p.File.Fd()
	if p.Backend == BackendTerm {
		return term.IsTerminal(int(fd))
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Stdin returns a probe for the process's standard input.
func Stdin(backend Backend) Probe {
	return FileProbe{File: os.Stdin, Backend: backend}
}

// isInteractive stores whether stdout is connected to a terminal.
// This is checked once at package initialization to avoid repeated syscalls.
var isInteractive bool

func init() {
	isInteractive = isatty.IsTerminal(os.Stdout.Fd())
}

// IsInteractive returns whether stdout is connected to a terminal.
// Returns false if output is redirected, piped, or in a non-interactive environment.
func IsInteractive() bool {
	return isInteractive
}

// StreamStatus describes how each backend classifies one standard stream.
type StreamStatus struct {
	Name   string
	Isatty bool
	Cygwin bool
	Term   bool
	Width  int
	Height int
}

// Inspect classifies f with every backend. Width and Height are zero
// unless x/term can read the window size.
func Inspect(name string, f *os.File) StreamStatus {
	s := StreamStatus{Name: name}
	if f == nil {
		return s
	}
	fd := f.Fd()
	s.Isatty = isatty.IsTerminal(fd)
	s.Cygwin = isatty.IsCygwinTerminal(fd)
	s.Term = term.IsTerminal(int(fd))
	if s.Term {
		if w, h, err := term.GetSize(int(fd)); err == nil {
			s.Width, s.Height = w, h
		}
	}
	return s
}

// InspectStandardStreams inspects stdin, stdout and stderr in that order.
func InspectStandardStreams() []StreamStatus {
	return []StreamStatus{
		Inspect("stdin", os.Stdin),
		Inspect("stdout", os.Stdout),
		Inspect("stderr", os.Stderr),
	}
}
