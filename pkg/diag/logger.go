// Package diag builds the diagnostic logger. The TUI owns the terminal, so
// interactive sessions only log when a log file is configured.
package diag

import (
	"io"
	"strings"

	"github.com/phuslu/log"
)

const (
	maxLogSize    = 10 * 1024 * 1024
	maxLogBackups = 3
)

// Options selects where log entries go. File wins over Console; with
// neither set the logger discards everything.
type Options struct {
	Level   string
	File    string
	Console io.Writer
	NoColor bool
}

// NewLogger returns a configured logger and a function releasing its sink
func NewLogger(opts Options) (*log.Logger, func() error) {
	logger := &log.Logger{
		Level:      ParseLevel(opts.Level),
		TimeFormat: "15:04:05",
	}
	closer := func() error { return nil }

	switch {
	case opts.File != "":
		fw := &log.FileWriter{
			Filename:     opts.File,
			FileMode:     0644,
			MaxSize:      maxLogSize,
			MaxBackups:   maxLogBackups,
			EnsureFolder: true,
			LocalTime:    true,
		}
		logger.Writer = fw
		closer = fw.Close
	case opts.Console != nil:
		logger.Writer = &log.ConsoleWriter{
			Writer:         opts.Console,
			ColorOutput:    !opts.NoColor,
			EndWithMessage: true,
		}
	default:
		logger.Writer = &log.IOWriter{Writer: io.Discard}
	}

	return logger, closer
}

// Discard returns a logger that drops every entry
func Discard() *log.Logger {
	logger, _ := NewLogger(Options{Level: "error"})
	return logger
}

// ParseLevel maps a config level name to a log level, defaulting to info
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
