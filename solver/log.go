package solver

import (
	"github.com/rs/zerolog"
)

// log is the package logger.  Solves trace per-sweep residuals at Trace level
// and solve summaries at Debug level; the default sink discards them.
var log = zerolog.Nop()

// SetLogger replaces the package logger.
func SetLogger(l zerolog.Logger) {
	log = l
}
