// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import "math"

// Gurvich evaluates the THERMO-convention (Gurvich-style) thermodynamic
// functions for one species at temperature T (K), selecting the applicable
// coefficient block from ranges.
func Gurvich(T float64, ranges []TempRange) Functions {
	r := SelectRange(T, ranges)
	return Functions{
		F:  gurvichF(T, r),
		H:  gurvichHkJ(T, r),
		S:  gurvichS(T, r),
		Cp: gurvichCp(T, r),
		G:  gurvichGkJ(T, r),
		C:  gurvichC(T, r),
	}
}

// gurvichF computes F = f1 + f2.ln(x) + f3/x^2 + f4/x + x(f5 + x(f6 + f7.x))
// with x = T.1e-4, in J/mol.K.
func gurvichF(T float64, r TempRange) float64 {
	x := T * 1.0e-4
	return r.F1 + r.F2*math.Log(x) + r.F3/(x*x) + r.F4/x +
		x*(r.F5+x*(r.F6+r.F7*x))
}

// gurvichHkJ computes H in kJ/mol.
func gurvichHkJ(T float64, r TempRange) float64 {
	x := T * 1.0e-4
	return (((3*r.F7*x+2*r.F6)*x+r.F5)*x+r.F2)*x*10 -
		10*r.F4 - 20*r.F3/x + r.HRef
}

// gurvichS computes S in J/mol.K.
func gurvichS(T float64, r TempRange) float64 {
	x := T * 1.0e-4
	return r.F1 + r.F2*(1+math.Log(x)) - r.F3/(x*x) +
		x*(2*r.F5+x*(3*r.F6+4*r.F7*x))
}

// gurvichCp computes Cp in J/mol.K, clamped to be non-negative.
func gurvichCp(T float64, r TempRange) float64 {
	x := T * 1.0e-4
	cp := r.F2 + 2*(((2*r.F7*x+r.F6)*3*x+r.F5)*x+r.F3/(x*x))
	if cp < 0 {
		return 0
	}
	return cp
}

// gurvichGkJ computes G = H_ref - T.F.1e-3, in kJ/mol.
func gurvichGkJ(T float64, r TempRange) float64 {
	return r.HRef - T*gurvichF(T, r)*1.0e-3
}

// gurvichC computes the dimensionless Gibbs potential
// c = 1e3.H_ref/(R.T) - F/R.
func gurvichC(T float64, r TempRange) float64 {
	return 1.0e3*r.HRef/(R*T) - gurvichF(T, r)/R
}
