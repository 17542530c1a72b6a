// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package moments implements partial moment kernels over float64 samples.
//
// # Overview
//
// A partial moment aggregates deviations of a sample on one side of a
// threshold (the target), raised to a power (the degree). The lower partial
// moment (LPM) aggregates shortfalls below the target; the upper partial
// moment (UPM) aggregates excesses above it. Both normalize by the total
// sample count:
//
//	LPM(d, x, t) = sum over x_i < t of (t - x_i)^d, divided by len(x)
//	UPM(d, x, t) = sum over x_i > t of (x_i - t)^d, divided by len(x)
//
// Samples equal to the target contribute to neither moment. Degree 0
// reduces the moments to strict shortfall and excess frequencies, degree 1
// to one-sided mean deviations, and degree 2 to semivariance-style
// aggregates around the target.
//
// # Usage
//
//	returns := []float64{-0.031, 0.012, 0.044, -0.008}
//	downside := moments.LPM(2.0, returns, 0.0)
//	upside := moments.UPM(2.0, returns, 0.0)
//
// # Numerical Contract
//
// Both kernels read the sample slice without copying or modifying it,
// accumulate in slice order, and apply math.Pow uniformly for every degree.
// There are no fast paths for integer degrees, so callers timing the
// kernels measure the same arithmetic regardless of the degree they pass.
// An empty sample yields NaN (zero sum over zero count).
//
// # Thread Safety
//
// Both kernels are stateless and safe for concurrent use.
package moments
