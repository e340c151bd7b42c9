// Package logging builds the logrus logger shared by the client and tools.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to out. level is any logrus level name and
// falls back to info; format "json" selects the JSON formatter, anything
// else the text formatter. Non-empty LOG_LEVEL and LOG_FORMAT override both.
func New(level, format string, out io.Writer) *logrus.Logger {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		format = v
	}

	l := logrus.New()
	l.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	return l
}

// Discard returns a logger that drops everything. Used by headless runs.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
