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
	"errors"
	"fmt"
	"strconv"
)

// Benchmark parameter defaults.
const (
	defaultSampleSize = 12_000_000
	defaultDegree     = 2.0
	defaultTarget     = 0.0
)

// errInvalidArgument indicates a positional token failed numeric parsing.
var errInvalidArgument = errors.New("invalid argument")

// benchParams is the resolved benchmark parameter tuple.
type benchParams struct {
	// SampleSize is the number of samples to generate.
	SampleSize int

	// Degree is the moment degree.
	Degree float64

	// Target is the moment target threshold.
	Target float64
}

// defaultParams returns the parameter defaults.
func defaultParams() benchParams {
	return benchParams{
		SampleSize: defaultSampleSize,
		Degree:     defaultDegree,
		Target:     defaultTarget,
	}
}

// resolveParams parses up to three optional positional tokens into the
// benchmark parameters.
//
// Token order is sample size, degree, target. Missing tokens keep their
// defaults; tokens beyond the third are ignored. Values are parsed
// strictly (no prefix truncation, no range clamping); anything out of
// range for the kernels passes through unchanged.
func resolveParams(args []string) (benchParams, error) {
	params := defaultParams()

	if len(args) > 0 {
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return benchParams{}, fmt.Errorf("%w: sample size %q", errInvalidArgument, args[0])
		}
		params.SampleSize = int(n)
	}
	if len(args) > 1 {
		degree, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return benchParams{}, fmt.Errorf("%w: degree %q", errInvalidArgument, args[1])
		}
		params.Degree = degree
	}
	if len(args) > 2 {
		target, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return benchParams{}, fmt.Errorf("%w: target %q", errInvalidArgument, args[2])
		}
		params.Target = target
	}

	return params, nil
}
