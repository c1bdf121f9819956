// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

// SelectRange returns the coefficient block applicable at temperature T.
// It returns the first range whose TMax > T; if T is below the first
// range's TMin it returns the first range, and if T reaches or exceeds the
// last range's TMax it returns the last range. ranges must be non-empty,
// sorted by TMin, contiguous and non-overlapping (§3 of the data model).
func SelectRange(T float64, ranges []TempRange) TempRange {
	if T < ranges[0].TMin {
		return ranges[0]
	}
	for _, r := range ranges {
		if T < r.TMax {
			return r
		}
	}
	return ranges[len(ranges)-1]
}

// InValidRange reports whether T lies within the species' overall validity
// range, i.e. between the first range's TMin and the last range's TMax.
func InValidRange(T float64, ranges []TempRange) bool {
	min := ranges[0].TMin
	max := ranges[len(ranges)-1].TMax
	return T >= min && T <= max
}
