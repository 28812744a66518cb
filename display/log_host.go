//go:build !tinygo

package display

import (
	"fmt"
	"os"
)

type stderrLogger struct{}

func (stderrLogger) Logf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// DefaultLogger writes to os.Stderr on a host build.
var DefaultLogger Logger = stderrLogger{}
