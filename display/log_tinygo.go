//go:build tinygo

package display

import (
	"fmt"

	"tinygo.org/x/tinyterm"
)

// TermLogger writes diagnostics to a tinyterm.Terminal laid over an
// active display, so a device with no UART console still shows decode
// errors and frame timing on-screen.
type TermLogger struct {
	term *tinyterm.Terminal
}

// NewTermLogger wraps an already-configured terminal.
func NewTermLogger(term *tinyterm.Terminal) *TermLogger {
	return &TermLogger{term: term}
}

func (l *TermLogger) Logf(format string, args ...interface{}) {
	fmt.Fprintf(l.term, format+"\n", args...)
}

type noopLogger struct{}

func (noopLogger) Logf(format string, args ...interface{}) {}

// DefaultLogger discards diagnostics until SetDefaultLogger installs a
// TermLogger over a configured display — a tinygo build has no stderr
// to fall back on.
var DefaultLogger Logger = noopLogger{}
