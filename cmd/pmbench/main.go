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
	"log/slog"
	"os"

	"github.com/AleutianAI/pmbench/pkg/logging"
)

func main() {
	slog.SetDefault(logging.Default())

	// Execute the root command. Cobra hands the raw positional tokens to
	// the benchmark; any failure aborts with no partial report.
	if err := rootCmd.Execute(); err != nil {
		slog.Error("benchmark aborted", "error", err)
		os.Exit(1)
	}
}
