// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package benchmark provides best-of-N wall-clock measurement of
// zero-argument computations.
//
// # Overview
//
// The benchmark package is the timing harness of the pmbench driver. It
// knows nothing about partial moments: it executes any Computation under a
// fixed methodology (untimed warm-up, repeated timed runs, minimum
// selection) and hands back a Result the driver formats into its report.
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                      Timing Harness                          │
//	├─────────────────────────────────────────────────────────────┤
//	│                                                              │
//	│   ┌──────────────┐              ┌──────────────────────┐    │
//	│   │    Runner    │─────────────▶│        Result        │    │
//	│   │              │              │                      │    │
//	│   │ • Warmup     │              │ • Best (min of R)    │    │
//	│   │ • Measure    │              │ • Samples (all R)    │    │
//	│   │ • monotonic  │              │ • Value (final rep)  │    │
//	│   │   clock      │              │ • BestMillis()       │    │
//	│   └──────────────┘              └──────────────────────┘    │
//	│                                                              │
//	└─────────────────────────────────────────────────────────────┘
//
// # Usage
//
// Basic measurement:
//
//	runner, err := benchmark.NewRunner(
//	    benchmark.WithRepetitions(3),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	guard := runner.Warmup(lpmFn, upmFn)
//	logger.Debug("warmup guard", "value", guard)
//
//	result, err := runner.Measure("lpm", lpmFn)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Fprintf(os.Stderr, "best: %d ms\n", result.BestMillis())
//
// # Measurement Methodology
//
// Reported durations are the minimum over R repetitions measured with a
// monotonic clock and truncated to whole milliseconds. Minimum-of-R
// suppresses positive-only noise sources (scheduler preemption,
// interrupts, thermal spikes) while preserving genuine floor-level
// performance; the package does not offer averages, which rare large
// outliers distort more than they distort the minimum. The warm-up pass
// runs untimed before any measurement so cold caches, lazy page faults,
// and one-time initialization are never charged to the first timed run;
// its summed output (the guard) exists to be logged, which keeps an
// optimizing compiler from discarding the warm-up calls.
//
// # Thread Safety
//
// A Runner is read-only after construction and safe for concurrent use,
// but the methodology assumes strictly sequential execution: concurrent
// measurements on one machine would perturb each other's timings.
package benchmark
