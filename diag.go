package battlemap

import (
	"fmt"
	"os"
)

// debugEnabled gates per-transition diagnostics (action start/complete,
// duplicate rejections). Warnings print regardless.
var debugEnabled bool

// SetDebugMode enables or disables diagnostic logging to stderr. When
// enabled, every action lifecycle transition is logged.
func SetDebugMode(enabled bool) {
	debugEnabled = enabled
}

// debugf prints a diagnostic line to stderr when debug mode is on.
func debugf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[battlemap] "+format+"\n", args...)
}

// warnf prints a warning line to stderr unconditionally.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[battlemap] warning: "+format+"\n", args...)
}
