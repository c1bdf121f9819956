// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adiabatic

import (
	"testing"

	"github.com/alexonemore/atc-go/amount"
	"github.com/alexonemore/atc-go/database"
	"github.com/alexonemore/atc-go/params"
	"github.com/alexonemore/atc-go/task"
	"github.com/alexonemore/atc-go/thermo"
	"github.com/cpmech/gosl/chk"
)

const (
	species thermo.SpeciesId  = 1
	el      database.ElementId = 1
)

// Test_Run_nonReactingSpeciesFindsItsOwnTemperature exercises the
// bisection against a single non-reacting species (testable property 7's
// surrogate: |T_hi-T_lo| <= epsilon_T at termination). Because there is
// only one species carrying the single conserved element, the
// equilibrium solve cannot move n away from its initial value at any T,
// so H_eq(T) = H_species(T); since H_init was computed with the same
// formula at TInitialK, the unique root is TInitialK itself.
func Test_Run_nonReactingSpeciesFindsItsOwnTemperature(tst *testing.T) {
	chk.PrintTitle("adiabatic bisection recovers T_init for a non-reacting species")

	coeffs := thermo.CoeffTable{
		species: {{TMin: 100, TMax: 6000, HRef: -100, SRef: 200,
			F1: 30, F2: 1, F3: 0, F4: 0, F5: 2, F6: 0.1, F7: 0, Phase: thermo.Gas}},
	}
	comp := database.Composition{species: {el: 1}}
	weights := database.Weights{species: 28.0}
	initial := amount.Amounts{}
	initial.SetField(species, amount.FieldGroup1Mol, 1.0, weights[species])

	const tInit = 1000.0
	tk := &task.OptimizationTask{
		Params: params.Parameters{
			Database:     params.THERMO,
			Minimization: params.Gibbs,
			HInitialBy:   params.AsChecked,
			AtAccuracy:   3,
		},
		Elements:  []database.ElementId{el},
		Weights:   weights,
		Coeffs:    coeffs,
		Elemcomp:  comp,
		Initial:   initial,
		TInitialK: tInit,
	}

	Run(tk)

	epsT := 0.0005 // 10^-3/2, matching AtAccuracy=3
	if diff := tk.TCurrentK - tInit; diff > epsT*4 || diff < -epsT*4 {
		tst.Fatalf("T_current = %v, want close to T_init = %v (diff=%v)", tk.TCurrentK, tInit, diff)
	}
	chk.Float64(tst, "n_eq unchanged", 1e-6, tk.Equilibrium[species].SumMol, 1.0)
}

// Test_Run_tooColdBracket is the "system too cold to release" branch of
// spec.md §4.6 step 2: an initial enthalpy below H_eq(T_lo) must report
// T_lo without attempting to bisect.
func Test_Run_tooColdBracket(tst *testing.T) {
	chk.PrintTitle("adiabatic: H_init below H_eq(T_lo) reports T_lo")

	coeffs := thermo.CoeffTable{
		// H(T) = 10*f5*x^2 + HRef, x = T*1e-4: strictly increasing in T,
		// so H(100K) < H(T_lo=298.15K).
		species: {{TMin: 50, TMax: 12000, HRef: 0, SRef: 1, F5: 2000, Phase: thermo.Gas}},
	}
	comp := database.Composition{species: {el: 1}}
	weights := database.Weights{species: 1.0}
	initial := amount.Amounts{}
	initial.SetField(species, amount.FieldGroup1Mol, 1.0, weights[species])

	tk := &task.OptimizationTask{
		Params: params.Parameters{
			Database:   params.THERMO,
			HInitialBy: params.AsChecked,
			AtAccuracy: 2,
		},
		Elements:  []database.ElementId{el},
		Weights:   weights,
		Coeffs:    coeffs,
		Elemcomp:  comp,
		Initial:   initial,
		TInitialK: 100, // colder than T_lo, so H_init < H_eq(T_lo)
	}
	Run(tk)
	chk.Float64(tst, "reports T_lo", 1e-9, tk.TCurrentK, TLow)
}
