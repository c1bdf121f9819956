// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import "math"

// Epsilon is the log-regularization constant of spec.md §4.5: logEps(x) =
// 1/2*ln(x^2+eps) is a smooth, even stand-in for ln(x) that stays finite
// at x=0 and has a continuous derivative there, which is what lets the
// gradient-based minimizer handle a species driven to zero moles without
// barrier or slack-variable handling. Do not replace this with an
// "if n > 0" guard around plain math.Log: the gradient must stay
// continuous at 0 for the QP step to behave (Design Note §9).
const Epsilon = 1e-9

// logEps is the regularized logarithm.
func logEps(x float64) float64 {
	return 0.5 * math.Log(x*x+Epsilon)
}

// Objective evaluates Phi(n) and its gradient for system sys. Phi models
// an ideal mixture with two mixing phases (gas, liquid) and pure
// condensed species:
//
//	sum_gas n_i*(c_i + logEps(n_i) - logEps(sum_gas n_k))
//	+ sum_liq n_i*(c_i + logEps(n_i) - logEps(sum_liq n_k))
//	+ sum_ind n_i*c_i
type Objective struct {
	Sys System
}

// Value returns Phi(n), or -Phi(n) when o.Sys.Negate (minimization=Entropy,
// spec.md §4.3 -- the whole objective is negated, not just its per-species
// coefficient, mirroring the original's ThermodinamicFunctionMinus wrapping
// ThermodinamicFunction wholesale).
func (o Objective) Value(n []float64) float64 {
	gasLo, gasHi := o.Sys.Order.GasIndices()
	liqLo, liqHi := o.Sys.Order.LiquidIndices()
	indLo, indHi := o.Sys.Order.IndividualIndices()

	var sumGas, sumLiq float64
	for i := gasLo; i < gasHi; i++ {
		sumGas += n[i]
	}
	for i := liqLo; i < liqHi; i++ {
		sumLiq += n[i]
	}

	var phi float64
	logGas := logEps(sumGas)
	logLiq := logEps(sumLiq)
	for i := gasLo; i < gasHi; i++ {
		phi += n[i] * (o.Sys.C[i] + logEps(n[i]) - logGas)
	}
	for i := liqLo; i < liqHi; i++ {
		phi += n[i] * (o.Sys.C[i] + logEps(n[i]) - logLiq)
	}
	for i := indLo; i < indHi; i++ {
		phi += n[i] * o.Sys.C[i]
	}
	if o.Sys.Negate {
		return -phi
	}
	return phi
}

// Gradient fills grad with d(Phi)/d(n_i) per spec.md §4.5's closed form,
// which must match Value exactly:
//
//	gas i: c_i + logEps(n_i) - logEps(sum_gas)
//	liq i: c_i + logEps(n_i) - logEps(sum_liq)
//	ind i: c_i
func (o Objective) Gradient(grad, n []float64) {
	gasLo, gasHi := o.Sys.Order.GasIndices()
	liqLo, liqHi := o.Sys.Order.LiquidIndices()
	indLo, indHi := o.Sys.Order.IndividualIndices()

	var sumGas, sumLiq float64
	for i := gasLo; i < gasHi; i++ {
		sumGas += n[i]
	}
	for i := liqLo; i < liqHi; i++ {
		sumLiq += n[i]
	}

	logGas := logEps(sumGas)
	logLiq := logEps(sumLiq)
	for i := gasLo; i < gasHi; i++ {
		grad[i] = o.Sys.C[i] + logEps(n[i]) - logGas
	}
	for i := liqLo; i < liqHi; i++ {
		grad[i] = o.Sys.C[i] + logEps(n[i]) - logLiq
	}
	for i := indLo; i < indHi; i++ {
		grad[i] = o.Sys.C[i]
	}
	if o.Sys.Negate {
		for i := range grad {
			grad[i] = -grad[i]
		}
	}
}
