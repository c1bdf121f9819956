// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rng tabulates a strictly-increasing sequence of sample points
// from a (start, stop, step) triple, generalizing the point-count-based
// gosl/utl.LinSpace to the inclusive-stop rule this domain needs: stop is
// always present in the output even when it is not an integer multiple of
// step away from start.
package rng

// Tabulate returns start, start+step, start+2*step, ... for every point
// below stop, followed by stop itself as the last element. If
// step >= stop-start, the single-element sequence [start] is
// returned. Callers must clamp start/stop to physically valid bounds
// before calling; Tabulate has no notion of physical limits.
func Tabulate(start, stop, step float64) []float64 {
	if step >= stop-start {
		return []float64{start}
	}
	var out []float64
	for v := start; v < stop; v += step {
		out = append(out, v)
	}
	return append(out, stop)
}
