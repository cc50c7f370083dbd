// Package debug provides runtime diagnostics gated by NAVBAR_DEBUG.
package debug

import (
	"io"
	"log"
	"os"
)

// Enabled returns true if debug mode is active (NAVBAR_DEBUG=1).
func Enabled() bool {
	return os.Getenv("NAVBAR_DEBUG") == "1"
}

// Logger returns a stderr logger when debug mode is enabled, and a silent
// logger otherwise. Callers can log unconditionally.
func Logger(prefix string) *log.Logger {
	if Enabled() {
		return log.New(os.Stderr, prefix, log.LstdFlags)
	}
	return log.New(io.Discard, prefix, 0)
}
