// Package log provides the logging interface used by the emulator
// components, backed by logrus.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// New returns a Logger writing to stderr at info level.
func New() Logger {
	return newLogrus(os.Stderr, logrus.InfoLevel)
}

// NewDebug returns a Logger writing to stderr at debug level, which
// includes per-instruction traces.
func NewDebug() Logger {
	return newLogrus(os.Stderr, logrus.DebugLevel)
}

// NewWriter returns a Logger writing to w at the given level.
func NewWriter(w io.Writer, debug bool) Logger {
	level := logrus.InfoLevel
	if debug {
		level = logrus.DebugLevel
	}
	return newLogrus(w, level)
}

func newLogrus(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
