package graph

import (
	"github.com/rs/zerolog"
)

// log is the package logger.  Traversal and partitioning operations emit
// progress and warnings at Debug/Warn level; the default sink discards them.
var log = zerolog.Nop()

// SetLogger replaces the package logger, e.g. with a console writer during
// development or a service's structured logger.
func SetLogger(l zerolog.Logger) {
	log = l
}
