// Package logger is a small leveled wrapper over the standard log
// package. Verbosity is set once at startup (from config or flags) and
// checked centrally, so call sites carry no level logic.
//
// Levels in increasing verbosity: Error < Info < Debug < Trace.
package logger

import (
	"log"
	"os"
)

// Level is a logging verbosity level; higher means chattier.
type Level int

const (
	Error Level = iota
	Info
	Debug
	Trace
)

var current Level = Info

func init() {
	// Logs go to stderr so report output on stdout stays clean.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

// SetVerbosity sets the global verbosity. Typically called once after
// config load.
func SetVerbosity(v int) {
	current = Level(v)
}

func logf(l Level, prefix, format string, args ...any) {
	if current >= l {
		log.Printf(prefix+format, args...)
	}
}

// Errorf logs a failure that requires attention.
func Errorf(format string, args ...any) { logf(Error, "[ERROR] ", format, args...) }

// Infof logs a major lifecycle event.
func Infof(format string, args ...any) { logf(Info, "[INFO]  ", format, args...) }

// Debugf logs diagnostic detail.
func Debugf(format string, args ...any) { logf(Debug, "[DEBUG] ", format, args...) }

// Tracef logs fine-grained execution detail; use sparingly.
func Tracef(format string, args ...any) { logf(Trace, "[TRACE] ", format, args...) }
