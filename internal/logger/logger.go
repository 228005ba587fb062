// Package logger holds the process-wide operational logger. It is separate
// from the in-game message log shown to the player.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It discards output until Init is called so the
// terminal UI is never written over.
var Log = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Options selects level, format and destination.
type Options struct {
	Level  string // panic..trace; invalid values fall back to info
	Format string // "json" or "text"
	File   string // empty keeps logging disabled
}

// Init configures Log. The returned closer releases the log file and must be
// called on shutdown.
func Init(opts Options) (io.Closer, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	if opts.File == "" {
		l.SetOutput(io.Discard)
		Log = l
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.SetOutput(f)
	Log = l
	return f, nil
}
