// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adiabatic wraps the equilibrium solver in a bracketed bisection
// over temperature to find the adiabatic flame temperature: the T at
// which the equilibrium composition's enthalpy equals the enthalpy of
// the initial mixture (spec.md §4.6).
package adiabatic

import (
	"math"

	"github.com/alexonemore/atc-go/equil"
	"github.com/alexonemore/atc-go/task"
	"github.com/alexonemore/atc-go/thermo"
)

// TLow and THigh are the bisection bracket of spec.md §6: the reference
// HSC temperature and an upper limit generously above any plausible flame
// temperature.
const (
	TLow  = thermo.T0 // 298.15 K
	THigh = 10000.0   // K
)

// Run finds T* such that H_eq(T*) = H_init for task t, per the bracketed
// bisection of spec.md §4.6, and leaves the last solved equilibrium (at
// T*, or at whichever bracket endpoint the bisection could not move past)
// as t's answer. t.Params.AtAccuracy sets the bisection's stopping width:
// epsilon_T = 10^(-AtAccuracy)/2 K.
func Run(t *task.OptimizationTask) {
	ids := t.Initial.Ids()
	t.HInitialKJ = equil.InitialEnthalpy(ids, t.Coeffs, t.Elemcomp, t.Initial, t.TInitialK, t.Params)

	lo, hi := TLow, THigh

	solLo := solveAt(t, ids, lo)
	if solLo.h > t.HInitialKJ {
		// Even the coldest bracket endpoint releases more enthalpy than
		// the initial mixture holds: the system cannot reach the low end
		// under adiabatic conditions, so report it as-is.
		applySolution(t, lo, solLo)
		return
	}

	solHi := solveAt(t, ids, hi)
	if solHi.h < t.HInitialKJ {
		// Even the hottest bracket endpoint never releases enough
		// enthalpy to match the initial mixture.
		applySolution(t, hi, solHi)
		return
	}

	epsT := math.Pow(10, -float64(t.Params.AtAccuracy)) / 2
	if epsT <= 0 {
		epsT = 0.5
	}

	last := solHi
	lastT := hi
	for hi-lo > epsT {
		mid := (lo + hi) / 2
		sol := solveAt(t, ids, mid)
		last, lastT = sol, mid
		if sol.h > t.HInitialKJ {
			hi = mid
		} else {
			lo = mid
		}
	}
	applySolution(t, lastT, last)
}

type point struct {
	sol equil.Solution
	h   float64
}

// solveAt runs one equilibrium solve at temperature T and returns it
// alongside the resulting equilibrium enthalpy.
func solveAt(t *task.OptimizationTask, ids []thermo.SpeciesId, T float64) point {
	sol := equil.SolvePoint(ids, t.Elements, t.Coeffs, t.Elemcomp, t.Weights, t.Initial, T, t.Params)
	h := equil.Enthalpy(ids, t.Coeffs, sol.Equilibrium, T, t.Params)
	return point{sol: sol, h: h}
}

// applySolution writes the last solved equilibrium back onto t.
func applySolution(t *task.OptimizationTask, T float64, p point) {
	t.TCurrentK = T
	t.Equilibrium = p.sol.Equilibrium
	t.ResultOfOptimization = p.sol.ResultPhi
	t.SolverStatus = p.sol.Status
	t.HCurrentKJ = p.h
}
