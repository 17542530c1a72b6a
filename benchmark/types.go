// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package benchmark

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// -----------------------------------------------------------------------------
// Errors
// -----------------------------------------------------------------------------

var (
	// ErrInvalidConfig indicates the benchmark configuration is invalid.
	ErrInvalidConfig = errors.New("invalid benchmark configuration")

	// ErrNoComputation indicates a nil computation was submitted.
	ErrNoComputation = errors.New("no computation provided")
)

// -----------------------------------------------------------------------------
// Computation
// -----------------------------------------------------------------------------

// Computation is a zero-argument unit of work under measurement.
//
// The harness invokes a computation repeatedly against the same captured
// inputs; implementations must not mutate them between calls. The returned
// value is the computation's observable output, retained so measured work
// can never be eliminated as dead code.
type Computation func() float64

// -----------------------------------------------------------------------------
// Configuration
// -----------------------------------------------------------------------------

// Config controls how measurements execute.
type Config struct {
	// Repetitions is the number of timed executions per measurement.
	// The reported duration is the minimum across repetitions.
	// Default: 3
	Repetitions int

	// Logger receives stage diagnostics. The package writes nothing to
	// stdout.
	// Default: slog.Default()
	Logger *slog.Logger

	// now supplies the clock for interval measurement. Monotonic in
	// production; tests substitute synthetic clocks via WithClock.
	now func() time.Time
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Repetitions: 3,
		Logger:      slog.Default(),
		now:         time.Now,
	}
}

// Validate checks the configuration for correctness.
//
// Outputs:
//   - error: Wraps ErrInvalidConfig with the failing field, or nil.
func (c *Config) Validate() error {
	if c.Repetitions <= 0 {
		return fmt.Errorf("%w: repetitions must be positive, got %d",
			ErrInvalidConfig, c.Repetitions)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Results
// -----------------------------------------------------------------------------

// Result holds the outcome of one measurement.
type Result struct {
	// Name identifies the measured computation.
	Name string

	// Repetitions is the number of timed executions performed.
	Repetitions int

	// Samples holds every repetition's wall-clock duration in execution
	// order. Kept for diagnostics; the reported timing is Best alone.
	Samples []time.Duration

	// Best is the minimum duration across repetitions.
	Best time.Duration

	// Value is the computation output from the final timed repetition.
	// Warm-up outputs never land here.
	Value float64

	// Timestamp is when the measurement completed (Unix milliseconds).
	Timestamp int64
}

// BestMillis returns Best truncated to whole milliseconds.
func (r *Result) BestMillis() int64 {
	return r.Best.Milliseconds()
}
