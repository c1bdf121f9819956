// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import "math"

// HSC evaluates the HSC-convention thermodynamic functions for one species
// at temperature T (K). Unlike Gurvich, H and S are accumulated by
// integrating Cp(T) and Cp(T)/T across the piecewise ranges starting from
// the reference values stored in the first range, adding each subsequent
// range's HRef/SRef as a phase-transition offset when T crosses into it.
func HSC(T float64, ranges []TempRange) Functions {
	h := hscHkJ(T, ranges)
	s := hscS(T, ranges)
	cp := hscCp(T, ranges)
	g := h - 1.0e-3*T*s
	f := -(1.0e3*g - hscHJ(T0, ranges)) / T
	c := 1.0e3 * g / (R * T)
	return Functions{F: f, H: h, S: s, Cp: cp, G: g, C: c}
}

// hscIntegralCpKJ is the closed-form antiderivative of Cp(T) (kJ), for
// Cp = A + B.T.1e-3 + C.1e5/T^2 + D.T^2.1e-6 + E.1e8/T^3 + F.T^3.1e-9.
func hscIntegralCpKJ(T float64, r TempRange) float64 {
	A, B, C, D, E, F := r.F1, r.F2, r.F3, r.F4, r.F5, r.F6
	T2 := T * T
	T3 := T2 * T
	T4 := T3 * T
	return 1.0e-3 * (A*T + 5.0e-4*B*T2 - 1.0e5*C/T +
		1.0e-6*D*T3/3 - 5.0e7*E/T2 + 2.5e-10*F*T4)
}

// hscIntegralCpByT is the closed-form antiderivative of Cp(T)/T (J).
func hscIntegralCpByT(T float64, r TempRange) float64 {
	A, B, C, D, E, F := r.F1, r.F2, r.F3, r.F4, r.F5, r.F6
	T2 := T * T
	T3 := T2 * T
	return A*math.Log(T) + 1.0e-3*B*T - 5.0e4*C/T2 + 5.0e-7*D*T2 +
		(-1.0e8*E/T3+1.0e-9*F*T3)/3
}

// hscHkJ accumulates H in kJ/mol from the first range's HRef.
func hscHkJ(T float64, ranges []TempRange) float64 {
	first := ranges[0]
	last := ranges[len(ranges)-1]
	H := first.HRef

	if T < T0 {
		if T < first.TMin {
			H -= hscIntegralCpKJ(first.TMin, first) - hscIntegralCpKJ(T, first)
		}
		for _, r := range ranges {
			if r.TMin >= T0 {
				break
			}
			if T >= r.TMax {
				continue
			}
			if r != first {
				H -= r.HRef
			}
			tMin := math.Max(r.TMin, T)
			tMax := math.Min(r.TMax, T0)
			H -= hscIntegralCpKJ(tMax, r) - hscIntegralCpKJ(tMin, r)
		}
	} else {
		for _, r := range ranges {
			if r.TMax <= T0 {
				continue
			}
			if r.TMin >= T {
				break
			}
			if r != first && r.TMin > T0 {
				H += r.HRef
			}
			tMin := math.Max(r.TMin, T0)
			tMax := math.Min(r.TMax, T)
			H += hscIntegralCpKJ(tMax, r) - hscIntegralCpKJ(tMin, r)

			if r == last && T > r.TMax {
				H += hscIntegralCpKJ(T, r) - hscIntegralCpKJ(r.TMax, r)
			}
		}
	}
	return H
}

// hscHJ is hscHkJ in J/mol.
func hscHJ(T float64, ranges []TempRange) float64 {
	return hscHkJ(T, ranges) * 1.0e3
}

// hscS accumulates S in J/mol.K from the first range's SRef.
func hscS(T float64, ranges []TempRange) float64 {
	first := ranges[0]
	last := ranges[len(ranges)-1]
	S := first.SRef

	if T < T0 {
		if T < first.TMin {
			S -= hscIntegralCpByT(first.TMin, first) - hscIntegralCpByT(T, first)
		}
		for _, r := range ranges {
			if r.TMin >= T0 {
				break
			}
			if T >= r.TMax {
				continue
			}
			if r != first {
				S -= r.SRef
			}
			tMin := math.Max(r.TMin, T)
			tMax := math.Min(r.TMax, T0)
			S -= hscIntegralCpByT(tMax, r) - hscIntegralCpByT(tMin, r)
		}
	} else {
		for _, r := range ranges {
			if r.TMax <= T0 {
				continue
			}
			if r.TMin >= T {
				break
			}
			if r != first && r.TMin > T0 {
				S += r.SRef
			}
			tMin := math.Max(r.TMin, T0)
			tMax := math.Min(r.TMax, T)
			S += hscIntegralCpByT(tMax, r) - hscIntegralCpByT(tMin, r)

			if r == last && T > r.TMax {
				S += hscIntegralCpByT(T, r) - hscIntegralCpByT(r.TMax, r)
			}
		}
	}
	return S
}

// hscCp evaluates Cp directly from the selected range's coefficients,
// clamped to be non-negative.
func hscCp(T float64, ranges []TempRange) float64 {
	r := SelectRange(T, ranges)
	A, B, C, D, E, F := r.F1, r.F2, r.F3, r.F4, r.F5, r.F6
	T2 := T * T
	T3 := T2 * T
	cp := A + B*T*1.0e-3 + C*1.0e5/T2 + D*T2*1.0e-6 + E*1.0e8/T3 + F*T3*1.0e-9
	if cp < 0 {
		return 0
	}
	return cp
}
