// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/pmbench/benchmark"
	"github.com/AleutianAI/pmbench/dataset"
	"github.com/AleutianAI/pmbench/moments"
)

// runBenchmark resolves the positional tokens and runs the measurement
// episode against stdout.
func runBenchmark(cmd *cobra.Command, args []string) error {
	params, err := resolveParams(args)
	if err != nil {
		return err
	}
	return runEpisode(cmd.OutOrStdout(), params, slog.Default())
}

// runEpisode executes one complete benchmark episode: generate the
// dataset, warm up both kernels, time each kernel, write the report.
//
// The episode is strictly sequential. The dataset is generated once and
// shared by reference between the warm-up and every timed invocation;
// nothing copies or mutates it.
func runEpisode(out io.Writer, params benchParams, logger *slog.Logger) error {
	log := logger.With("run_id", uuid.NewString())

	log.Info("benchmark starting",
		"sample_size", params.SampleSize,
		"degree", params.Degree,
		"target", params.Target,
	)

	data := dataset.StandardNormal(params.SampleSize)
	log.Info("dataset generated", "samples", len(data))

	lpmFn := benchmark.Computation(func() float64 {
		return moments.LPM(params.Degree, data, params.Target)
	})
	upmFn := benchmark.Computation(func() float64 {
		return moments.UPM(params.Degree, data, params.Target)
	})

	runner, err := benchmark.NewRunner(benchmark.WithLogger(log))
	if err != nil {
		return err
	}

	// Warm-up output goes to the log and nowhere else; reported values
	// come from the timed invocations below.
	guard := runner.Warmup(lpmFn, upmFn)
	log.Debug("warmup guard", "value", guard)

	lpm, err := runner.Measure("lpm", lpmFn)
	if err != nil {
		return err
	}
	upm, err := runner.Measure("upm", upmFn)
	if err != nil {
		return err
	}

	log.Info("benchmark complete",
		"lpm_ms", lpm.BestMillis(),
		"upm_ms", upm.BestMillis(),
	)

	return writeReport(out, params, lpm, upm)
}
