// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package moments

import "math"

// LPM computes the lower partial moment of a sample.
//
// Description:
//
//	LPM raises the shortfall of every sample strictly below target to
//	degree and sums the results, normalized by the total sample count.
//	Samples at or above the target contribute nothing.
//
// Inputs:
//   - degree: Exponent applied to each shortfall. Any real value.
//   - data: Sample values. Read without copying; never modified.
//   - target: Threshold shortfalls are measured against.
//
// Outputs:
//   - float64: Sum of (target-x)^degree over x < target, divided by
//     len(data). NaN when data is empty.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func LPM(degree float64, data []float64, target float64) float64 {
	var sum float64
	for _, x := range data {
		if x < target {
			sum += math.Pow(target-x, degree)
		}
	}
	return sum / float64(len(data))
}

// UPM computes the upper partial moment of a sample.
//
// Description:
//
//	UPM raises the excess of every sample strictly above target to degree
//	and sums the results, normalized by the total sample count. Samples
//	at or below the target contribute nothing.
//
// Inputs:
//   - degree: Exponent applied to each excess. Any real value.
//   - data: Sample values. Read without copying; never modified.
//   - target: Threshold excesses are measured against.
//
// Outputs:
//   - float64: Sum of (x-target)^degree over x > target, divided by
//     len(data). NaN when data is empty.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func UPM(degree float64, data []float64, target float64) float64 {
	var sum float64
	for _, x := range data {
		if x > target {
			sum += math.Pow(x-target, degree)
		}
	}
	return sum / float64(len(data))
}
