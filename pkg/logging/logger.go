// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package logging provides structured logging for the benchmark driver.
//
// The driver reserves stdout for the benchmark report, so every diagnostic
// this package emits goes to stderr (following Unix conventions for CLI
// tools). The package is a thin layer over Go's standard library slog:
//
//   - Default: human-readable text on stderr
//   - Optional: JSON output for machine-side capture of diagnostics
//   - Quiet: discard everything (timing-sensitive runs)
//
// # Basic Usage
//
// For simple CLI usage with stderr output:
//
//	logger := logging.Default()
//	logger.Info("dataset generated", "samples", n)
//	logger.Error("argument parsing failed", "error", err)
//
// # Configuration
//
// To change the level or format:
//
//	logger := logging.New(logging.Config{
//	    Level:   logging.LevelDebug,
//	    Service: "pmbench",
//	})
//
// # Log Levels
//
// Four levels are supported, matching slog conventions:
//
//   - Debug: development troubleshooting, verbose output
//   - Info: normal operations (stage transitions, run identity)
//   - Warn: recoverable issues
//   - Error: operation failures
//
// # Thread Safety
//
// The returned *slog.Logger is safe for concurrent use. The benchmark
// driver itself is strictly sequential, so this is a property of the
// logger, not a requirement of the driver.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// =============================================================================
// Log Levels
// =============================================================================

// Level represents log severity levels.
//
// Levels follow the slog convention and are ordered by severity:
// Debug < Info < Warn < Error
//
// Setting a minimum level filters out all logs below that level.
type Level int

const (
	// LevelDebug is for development troubleshooting.
	// Example: "warmup guard value", "per repetition durations"
	LevelDebug Level = iota

	// LevelInfo is for normal operational messages.
	// Example: "dataset generated", "measurement complete"
	LevelInfo

	// LevelWarn is for potentially problematic situations.
	LevelWarn

	// LevelError is for error conditions.
	// Example: "argument parsing failed"
	LevelError
)

// String returns the human-readable name of the level.
//
// Returns "DEBUG", "INFO", "WARN", "ERROR", or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// toSlogLevel converts our Level to slog.Level.
func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// =============================================================================
// Configuration
// =============================================================================

// Config configures logger behavior.
//
// All fields have sensible defaults. A zero-value Config creates a logger
// that writes Info+ messages to stderr in text format.
type Config struct {
	// Level sets the minimum log level.
	//
	// Messages below this level are discarded.
	// Default: LevelInfo
	Level Level

	// Service identifies the component generating logs.
	//
	// When set, the value is included in every log entry as the
	// "service" attribute.
	// Default: "" (no service attribute)
	Service string

	// JSON enables JSON output format.
	//
	// When true, logs are formatted as JSON objects; when false, as
	// human-readable text.
	// Default: false (text format)
	JSON bool

	// Quiet discards all log output.
	//
	// Useful when stderr noise would disturb measurement capture.
	// Default: false (stderr enabled)
	Quiet bool
}

// =============================================================================
// Construction
// =============================================================================

// New creates a logger with the given configuration.
//
// All output goes to stderr; stdout belongs to the benchmark report and is
// never written by loggers from this package.
//
// Parameters:
//   - config: Logger configuration (see Config for options)
//
// Returns:
//   - *slog.Logger: Configured logger ready for use
//
// Example:
//
//	logger := logging.New(logging.Config{
//	    Level:   logging.LevelDebug,
//	    Service: "pmbench",
//	})
func New(config Config) *slog.Logger {
	var out io.Writer = os.Stderr
	if config.Quiet {
		out = io.Discard
	}
	return newLogger(config, out)
}

// newLogger builds the logger against an explicit writer. Tests use it to
// capture output without touching the process stderr.
func newLogger(config Config, out io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: config.Level.toSlogLevel(),
	}

	var handler slog.Handler
	if config.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	if config.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{
			slog.String("service", config.Service),
		})
	}

	return slog.New(handler)
}

// Default returns a logger with default settings.
//
// The default configuration:
//   - Level: Info
//   - Output: stderr
//   - Format: text (human-readable)
//   - Service: "pmbench"
//
// Returns:
//   - *slog.Logger: Default-configured logger
func Default() *slog.Logger {
	return New(Config{
		Level:   LevelInfo,
		Service: "pmbench",
	})
}
