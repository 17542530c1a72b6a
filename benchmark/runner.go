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
	"fmt"
	"log/slog"
	"math"
	"time"
)

// -----------------------------------------------------------------------------
// Options
// -----------------------------------------------------------------------------

// Option configures a Runner.
type Option func(*Config)

// WithRepetitions sets the number of timed executions per measurement.
func WithRepetitions(n int) Option {
	return func(c *Config) {
		c.Repetitions = n
	}
}

// WithLogger sets the logger receiving stage diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithClock substitutes the measurement clock.
//
// Tests use scripted clocks to make repetition durations exact. Production
// code keeps the default, which reads the monotonic clock and is immune to
// system time adjustments.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		if now != nil {
			c.now = now
		}
	}
}

// -----------------------------------------------------------------------------
// Runner
// -----------------------------------------------------------------------------

// Runner executes computations under the measurement methodology.
//
// Description:
//
//	A Runner times a computation a fixed number of times and keeps the
//	minimum duration, which filters positive-only noise (scheduler
//	preemption, interrupts, thermal spikes) without masking the genuine
//	performance floor. It also provides the untimed warm-up pass that
//	precedes all measurement.
//
// Thread Safety: Read-only after construction. The intended use is
// strictly sequential; see the package documentation.
type Runner struct {
	cfg *Config
}

// NewRunner creates a Runner.
//
// Inputs:
//   - opts: Optional configuration. Defaults: 3 repetitions,
//     slog.Default() diagnostics, monotonic clock.
//
// Outputs:
//   - *Runner: The configured runner.
//   - error: Wraps ErrInvalidConfig when options produce an invalid
//     configuration.
func NewRunner(opts ...Option) (*Runner, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg}, nil
}

// Warmup invokes every computation once, untimed, and returns the summed
// outputs.
//
// Description:
//
//	The warm-up pass keeps cold caches, lazy page faults, and one-time
//	initialization out of the first timed measurement. The returned sum
//	is the guard value: the caller hands it to an observable sink (the
//	structured log) so the compiler cannot discard the warm-up calls as
//	dead code. Warm-up outputs are never reported as results.
//
// Inputs:
//   - fns: Computations to invoke once each, in order. Each must be
//     non-nil; invoking a nil computation panics.
//
// Outputs:
//   - float64: The guard value (sum of all outputs).
func (r *Runner) Warmup(fns ...Computation) float64 {
	var guard float64
	for _, fn := range fns {
		guard += fn()
	}
	r.cfg.Logger.Debug("warmup pass complete",
		"computations", len(fns),
		"guard", guard,
	)
	return guard
}

// Measure times fn and reports the best repetition.
//
// Description:
//
//	Runs fn Repetitions times back to back, timing each run with the
//	configured clock. Result.Best is the minimum duration observed;
//	Result.Value is the output of the final repetition, never of a
//	warm-up pass. A panic inside fn propagates to the caller: a broken
//	computation invalidates the whole measurement episode, so nothing is
//	caught or retried.
//
// Inputs:
//   - name: Identifier for the measurement, used in diagnostics.
//   - fn: The computation under test. Must be non-nil.
//
// Outputs:
//   - *Result: The measurement outcome.
//   - error: Wraps ErrNoComputation when fn is nil.
func (r *Runner) Measure(name string, fn Computation) (*Result, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoComputation, name)
	}

	result := &Result{
		Name:        name,
		Repetitions: r.cfg.Repetitions,
		Samples:     make([]time.Duration, 0, r.cfg.Repetitions),
	}

	best := time.Duration(math.MaxInt64)
	for i := 0; i < r.cfg.Repetitions; i++ {
		start := r.cfg.now()
		value := fn()
		elapsed := r.cfg.now().Sub(start)

		result.Samples = append(result.Samples, elapsed)
		if elapsed < best {
			best = elapsed
		}
		result.Value = value
	}
	result.Best = best
	result.Timestamp = time.Now().UnixMilli()

	r.cfg.Logger.Debug("measurement complete",
		"name", name,
		"repetitions", result.Repetitions,
		"best_ms", result.BestMillis(),
		"samples", result.Samples,
	)
	return result, nil
}
