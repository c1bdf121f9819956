// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"math"

	"github.com/alexonemore/atc-go/amount"
	"github.com/alexonemore/atc-go/database"
	"github.com/alexonemore/atc-go/params"
	"github.com/alexonemore/atc-go/thermo"
	"gonum.org/v1/gonum/mat"
)

// System is everything the bounded minimizer needs for one task at one
// temperature: the element-balance matrix A and right-hand side b, the
// per-species objective coefficient c, the per-species upper bound ub, the
// phase classification the columns are ordered by, and whether the whole
// objective Phi is to be negated (minimization=Entropy, spec.md §4.3).
type System struct {
	Order  Ordered
	A      *mat.Dense
	B      []float64
	C      []float64
	UB     []float64
	Negate bool
}

// BuildSystem assembles A, b, c and ub for ordered species at temperature
// T, mirroring MakeConstraintsMatrixA/MakeConstraintsB/MakeC/MakeUB of the
// original optimization.cpp. elemcomp and coeffs are shared,
// read-only task fields; initial is the task's per-species starting
// amounts. eval is evaluated against each species' full coefficient
// sequence (not just the phase range picked by Classify), since the HSC
// convention integrates across every phase-transition boundary between T0
// and T.
func BuildSystem(
	order Ordered,
	elements []database.ElementId,
	elemcomp database.Composition,
	coeffs thermo.CoeffTable,
	initial amount.Amounts,
	T float64,
	p params.Parameters,
	eval thermo.Evaluator,
) System {
	n := len(order.Ids)
	m := len(elements)

	A := mat.NewDense(m, n, nil)
	for col, id := range order.Ids {
		formula := elemcomp[id]
		for row, el := range elements {
			A.Set(row, col, formula[el])
		}
	}

	b := make([]float64, m)
	for _, id := range order.Ids {
		n0 := initial[id].SumMol
		if n0 == 0 {
			continue
		}
		formula := elemcomp[id]
		for row, el := range elements {
			b[row] += n0 * formula[el]
		}
	}

	c := make([]float64, n)
	for i, id := range order.Ids {
		f := eval(T, coeffs[id])
		if p.Minimization == params.Entropy {
			c[i] = f.S
		} else {
			c[i] = f.C
		}
	}

	ub := make([]float64, n)
	for col, id := range order.Ids {
		ub[col] = upperBound(A, col, b)
		if p.Extrapolation == params.ExtrapolationDisable && !thermo.InValidRange(T, coeffs[id]) {
			ub[col] = 0
		}
	}

	return System{Order: order, A: A, B: b, C: c, UB: ub, Negate: p.Minimization == params.Entropy}
}

// upperBound returns the tightest b_j/A_ij over every element j with
// A_ij > 0, or +Inf if species col carries none of any conserved element.
func upperBound(A *mat.Dense, col int, b []float64) float64 {
	ub := math.Inf(1)
	m, _ := A.Dims()
	for row := 0; row < m; row++ {
		aij := A.At(row, col)
		if aij > 0 {
			if u := b[row] / aij; u < ub {
				ub = u
			}
		}
	}
	return ub
}
