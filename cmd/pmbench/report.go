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
	"fmt"
	"io"
	"strings"

	"github.com/AleutianAI/pmbench/benchmark"
)

// writeReport emits the fixed-format benchmark report.
//
// The layout and the 10-significant-digit float formatting are the tool's
// entire stdout contract: runs are compared by pasting reports side by
// side, so the shape must stay byte-stable apart from the measured
// numbers.
func writeReport(w io.Writer, params benchParams, lpm, upm *benchmark.Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "===== LPM & UPM Performance (ms) =====\n")
	fmt.Fprintf(&b, "Go (moments) LPM: %d ms, UPM: %d ms\n",
		lpm.BestMillis(), upm.BestMillis())
	fmt.Fprintf(&b, "The sample size when %d\n\n", params.SampleSize)
	fmt.Fprintf(&b, "Results (degree=%.10g, target=%.10g)\n",
		params.Degree, params.Target)
	fmt.Fprintf(&b, "LPM = %.10g\n", lpm.Value)
	fmt.Fprintf(&b, "UPM = %.10g\n", upm.Value)

	_, err := io.WriteString(w, b.String())
	return err
}
