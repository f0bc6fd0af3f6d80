// Package log provides loggers of cut packages.
package log

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/pipelined/cut/config"
)

var debug bool

func init() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		return
	}
	debug = cfg.Debug
}

// GetLogger returns a new logger instance. Debug level is enabled with
// CUT_DEBUG environment variable.
func GetLogger() *logrus.Logger {
	l := logrus.New()
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// Discard returns a logger that drops all entries.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}
