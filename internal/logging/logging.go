// Package logging configures the application-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultFile is where logs go when LOG_FILE is unset.
// Stdout belongs to the terminal UI while the game runs.
const DefaultFile = "ruinwalk.log"

// Log is the global logger. It discards output until Init is called.
var Log = newDiscard()

// Init configures Log from the environment:
//   - LOG_LEVEL: logrus level name, "info" by default; unknown names
//     fall back to info with a warning
//   - LOG_FORMAT: "json" or "text"
//   - LOG_FILE: output path, DefaultFile by default; "-" means stderr
//
// The returned closer releases the log file.
func Init() (io.Closer, error) {
	rawLevel := envOr("LOG_LEVEL", "info")
	level, levelErr := logrus.ParseLevel(rawLevel)
	if levelErr != nil {
		level = logrus.InfoLevel
	}

	var out io.WriteCloser = nopCloser{os.Stderr}
	if path := envOr("LOG_FILE", DefaultFile); path != "-" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		out = f
	}

	Configure(Log, level, os.Getenv("LOG_FORMAT"), out)
	if levelErr != nil {
		Log.WithField("LOG_LEVEL", rawLevel).Warn("unknown log level, using info")
	}
	return out, nil
}

// Configure applies level, format and output to a logger.
func Configure(l *logrus.Logger, level logrus.Level, format string, out io.Writer) {
	l.SetLevel(level)
	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}
	l.SetOutput(out)
}

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
