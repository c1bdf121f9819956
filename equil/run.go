// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"github.com/alexonemore/atc-go/task"
)

// Run solves t's equilibrium at t.TInitialK and populates every output
// field of t in place (spec.md §6's task output): TCurrentK, the
// equilibrium composition, H_initial/H_current and the terminal status.
// It never returns an error: numerical failure is recorded on t.SolverStatus
// per spec.md §7's "solver exception -> coerce to Failure, other tasks
// unaffected" policy, and t is otherwise left usable.
func Run(t *task.OptimizationTask) {
	ids := t.Initial.Ids()

	t.TCurrentK = t.TInitialK
	t.HInitialKJ = InitialEnthalpy(ids, t.Coeffs, t.Elemcomp, t.Initial, t.TInitialK, t.Params)

	sol := SolvePoint(ids, t.Elements, t.Coeffs, t.Elemcomp, t.Weights, t.Initial, t.TCurrentK, t.Params)

	t.Equilibrium = sol.Equilibrium
	t.ResultOfOptimization = sol.ResultPhi
	t.SolverStatus = sol.Status
	t.HCurrentKJ = Enthalpy(ids, t.Coeffs, sol.Equilibrium, t.TCurrentK, t.Params)
}
