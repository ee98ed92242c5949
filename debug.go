package canvas

import (
	"fmt"
	"os"
)

// SetDebug toggles event tracing to stderr. Off by default; intended
// for diagnosing gesture routing during development, not for production
// logging (the engine is a library and stays quiet).
func (c *Canvas) SetDebug(on bool) {
	c.debug = on
}

// debugf prints a trace line to stderr when debugging is enabled.
func (c *Canvas) debugf(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[canvas] "+format+"\n", args...)
}
