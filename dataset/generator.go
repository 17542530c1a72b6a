// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package dataset generates the deterministic sample sequences the
// benchmark driver feeds to the partial moment kernels.
//
// Reproducibility is the whole point of this package: for a fixed length,
// every invocation on every platform yields the bit-identical sequence, so
// timing results and kernel outputs are comparable across runs and
// machines. The generator seed is a named constant, never mutable state.
package dataset

import "math/rand"

// Seed is the fixed generator seed shared by every invocation.
//
// Changing it changes every generated sequence and therefore every
// reported kernel value; treat it as part of the benchmark's identity.
const Seed int64 = 123456789

// StandardNormal returns n independent draws from N(0, 1).
//
// Description:
//
//	Draws are produced sequentially from a freshly seeded source, so the
//	returned sequence depends only on n: two calls with the same n yield
//	bit-identical slices, and a shorter sequence is always a prefix of a
//	longer one. The seeded source and the Ziggurat normal transform are
//	pure integer and float arithmetic with no platform dependence.
//
// Inputs:
//   - n: Number of samples to generate. Negative n panics (slice
//     allocation), consistent with the driver's fatal-on-anomaly policy.
//
// Outputs:
//   - []float64: Slice of exactly n samples. Callers treat it as
//     read-only and pass it by reference; it is never copied.
//
// Thread Safety: Safe for concurrent use; each call owns its source.
func StandardNormal(n int) []float64 {
	rng := rand.New(rand.NewSource(Seed))
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = rng.NormFloat64()
	}
	return samples
}
