// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"github.com/alexonemore/atc-go/amount"
	"github.com/alexonemore/atc-go/database"
	"github.com/alexonemore/atc-go/params"
	"github.com/alexonemore/atc-go/task"
	"github.com/alexonemore/atc-go/thermo"
)

// Solution is the fully re-paired outcome of one equilibrium solve: n
// un-reordered back onto the caller's original species ids, in all four
// Amount representations, plus the minimized objective and terminal
// status.
type Solution struct {
	Equilibrium amount.Amounts
	ResultPhi   float64
	Status      task.Status
}

// SolvePoint runs BuildSystem + the three-stage optimizer pipeline for one
// (T, initial composition) point and re-pairs the result with the
// original species identities, mirroring MakeAmountsOfEquilibrium in the
// original optimization.cpp.
func SolvePoint(
	ids []thermo.SpeciesId,
	elements []database.ElementId,
	coeffs thermo.CoeffTable,
	elemcomp database.Composition,
	weights database.Weights,
	initial amount.Amounts,
	T float64,
	p params.Parameters,
) Solution {
	eval := thermo.EvaluatorFor(p.Database)
	order := Classify(ids, coeffs, T, p.LiquidSolution)
	sys := BuildSystem(order, elements, elemcomp, coeffs, initial, T, p, eval)

	n, phi, status := Solve(sys)

	out := make(amount.Amounts, len(ids))
	for _, id := range ids {
		out[id] = amount.Amount{}
	}
	for i, id := range order.Ids {
		w := weights[id]
		mol := n[i]
		out.SetField(id, amount.FieldGroup1Mol, mol, w)
	}
	out.Renormalize()

	return Solution{Equilibrium: out, ResultPhi: phi, Status: status}
}
