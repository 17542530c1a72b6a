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
	"github.com/spf13/cobra"
)

var (
	// rootCmd is the whole CLI surface: three optional positional tokens,
	// no flags, no subcommands. Flag parsing is disabled so flag-shaped
	// tokens reach the resolver as ordinary positional input and fail
	// numeric parsing there.
	rootCmd = &cobra.Command{
		Use:   "pmbench [sampleSize] [degree] [target]",
		Short: "Benchmark the partial moment kernels over a deterministic sample",
		Long: `pmbench measures wall-clock performance of the lower and upper partial
moment kernels (LPM/UPM) over pseudo-random N(0,1) samples generated with a
fixed seed, and prints a fixed-format report to stdout.

The three parameters are optional and positional, parsed left to right:

  sampleSize   number of samples to generate   (default 12000000)
  degree       moment degree                   (default 2.0)
  target       moment target threshold         (default 0.0)

A token that fails numeric parsing aborts the run with a non-zero exit and
no partial report. Diagnostics go to stderr; stdout carries only the
report.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               runBenchmark,
	}
)
