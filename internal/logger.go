package internal

import (
	"github.com/thatguystone/cog/stringc"
)

// Indent is used to indent multi-line messages
const Indent = "    "

// A Logger is used for diagnostics that are not part of normal output
type Logger interface {
	Log(msg string)
	Error(err error, msg string)
}

type logger struct {
	prefix string
	logf   LogFunc
}

// LogFunc is the function called for everything
type LogFunc func(format string, a ...interface{})

// NewLogger creates a new Logger that pushes everything to the given LogFunc
// with the given prefix.
func NewLogger(prefix string, logf LogFunc) Logger {
	return &logger{
		prefix: prefix,
		logf:   logf,
	}
}

func (l *logger) Log(msg string) {
	l.logf("I: %s: %s", l.prefix, msg)
}

func (l *logger) Error(err error, msg string) {
	l.logf("E: %s: %s:\n%s", l.prefix, msg, stringc.Indent(err.Error(), Indent))
}
