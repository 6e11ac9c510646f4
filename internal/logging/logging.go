// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the structured loggers used across paper-rank.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pdiddy/paper-rank/pkg/types"
)

// Options configures a logger.
type Options struct {
	// Level is the minimum level: debug, info, warn, or error.
	Level string
	// Output receives log lines (default os.Stderr).
	Output io.Writer
	// Prefix names the component.
	Prefix string
	// Timestamps adds RFC 3339 timestamps.
	Timestamps bool
}

// FromConfig converts the log section of the configuration file.
func FromConfig(cfg types.LogConfig) Options {
	return Options{Level: cfg.Level, Timestamps: cfg.Timestamps}
}

// ParseLevel converts a level name to a log.Level. Unknown names map to info.
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

// New creates a logger from opts.
func New(opts Options) *log.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	return log.NewWithOptions(out, log.Options{
		Level:           ParseLevel(opts.Level),
		Prefix:          opts.Prefix,
		TimeFormat:      time.RFC3339,
		ReportTimestamp: opts.Timestamps,
	})
}

// Discard returns a logger that writes nothing.
func Discard() *log.Logger {
	return New(Options{Output: io.Discard, Level: "error"})
}
