// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"math"
	"time"

	"github.com/alexonemore/atc-go/task"
	"gonum.org/v1/gonum/optimize"
)

// Tolerance is the absolute/relative x-tolerance and equality-constraint
// tolerance used by every stage of the solver pipeline, per spec.md §4.5.
const Tolerance = 1e-6

// WallClockCap is the per-solve time budget of spec.md §4.5/§6; when a
// stage exceeds it the pipeline advances to the next stage rather than
// keep iterating.
const WallClockCap = time.Second

// maxSQPIterations bounds the hand-rolled SLSQP stage (no NLopt binding
// exists anywhere in the retrieved pack; see DESIGN.md).
const maxSQPIterations = 200

// maxAugLagOuterIterations bounds the augmented-Lagrangian stage's outer
// multiplier updates.
const maxAugLagOuterIterations = 30

// Solve runs the three-stage pipeline of spec.md §4.5 against sys and
// returns the equilibrium mole vector (in sys.Order's phase-reordered
// column order) and the terminal task.Status of whichever stage produced
// the accepted result. The initial guess is n := ub/2 per the spec;
// species with an unbounded upper bound (none of the conserved elements)
// start at 0 rather than propagate +Inf into the objective.
func Solve(sys System) ([]float64, float64, task.Status) {
	n0 := make([]float64, len(sys.UB))
	for i, ub := range sys.UB {
		if math.IsInf(ub, 1) {
			n0[i] = 0
		} else {
			n0[i] = ub / 2
		}
	}

	deadline := time.Now().Add(WallClockCap)
	n, status := solveSLSQP(sys, n0, deadline)
	if status == task.XtolReached {
		return n, Objective{Sys: sys}.Value(n), status
	}

	deadline = time.Now().Add(WallClockCap)
	n2, status2 := solveAugLag(sys, n, deadline)
	if status2 == task.XtolReached {
		return n2, Objective{Sys: sys}.Value(n2), status2
	}

	deadline = time.Now().Add(WallClockCap)
	n3, status3 := solveSLSQP(sys, n2, deadline)
	return n3, Objective{Sys: sys}.Value(n3), status3
}

// solveSLSQP is a projected-gradient sequential-quadratic step: at each
// iteration it takes a steepest-descent step projected onto the null
// space of A (so the equality constraint stays satisfied to first order),
// clips to the box, then restores exact feasibility by the least-norm
// correction min||d|| s.t. A(n+d)=b. This plays the role the original
// assigns to nlopt::LD_SLSQP, for which no Go binding exists in the
// retrieved pack.
func solveSLSQP(sys System, n0 []float64, deadline time.Time) ([]float64, task.Status) {
	n := restoreFeasibility(sys, n0)
	obj := Objective{Sys: sys}
	grad := make([]float64, len(n))

	alpha := 1.0
	for iter := 0; iter < maxSQPIterations; iter++ {
		if time.Now().After(deadline) {
			return n, task.MaxtimeReached
		}

		obj.Gradient(grad, n)
		dir := projectNullSpace(sys.A, grad)

		var step []float64
		phi0 := obj.Value(n)
		accepted := false
		for tries := 0; tries < 20; tries++ {
			step = clipToBox(axpy(n, -alpha, dir), sys.UB)
			step = restoreFeasibility(sys, step)
			if obj.Value(step) <= phi0 {
				accepted = true
				break
			}
			alpha *= 0.5
		}
		if !accepted {
			return n, task.FtolReached
		}

		moved := l2dist(step, n)
		n = step
		alpha = math.Min(alpha*1.2, 1.0)

		if moved < Tolerance && constraintResidual(sys, n) < Tolerance {
			return n, task.XtolReached
		}
	}
	return n, task.MaxevalReached
}

// solveAugLag minimizes the equality-penalized Lagrangian with gonum's
// L-BFGS, matching the original's nlopt::AUGLAG_EQ wrapping LD_LBFGS
// (optimization.cpp::Minimize). Bounds are enforced by clipping the
// L-BFGS iterate back onto the box after each outer multiplier update,
// since gonum/optimize has no native box-constraint support.
func solveAugLag(sys System, n0 []float64, deadline time.Time) ([]float64, task.Status) {
	n := clipToBox(append([]float64(nil), n0...), sys.UB)
	lambda := make([]float64, len(sys.B))
	rho := 10.0
	obj := Objective{Sys: sys}

	for outer := 0; outer < maxAugLagOuterIterations; outer++ {
		if time.Now().After(deadline) {
			return n, task.MaxtimeReached
		}

		problem := optimize.Problem{
			Func: func(x []float64) float64 {
				return augmentedLagrangian(obj, sys, x, lambda, rho)
			},
			Grad: func(grad, x []float64) {
				augmentedLagrangianGrad(obj, sys, x, lambda, rho, grad)
			},
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return n, task.MaxtimeReached
		}
		result, err := optimize.Minimize(problem, n, &optimize.Settings{
			GradientThreshold: Tolerance,
			Runtime:           remaining,
		}, &optimize.LBFGS{})
		if err != nil || result == nil {
			return n, task.Failure
		}

		next := clipToBox(result.X, sys.UB)
		residual := constraintResidual(sys, next)
		moved := l2dist(next, n)
		n = next

		if residual < Tolerance {
			if moved < Tolerance || outer == 0 {
				return n, task.XtolReached
			}
		}

		res := vecSub(matVec(sys.A, n), sys.B)
		for j := range lambda {
			lambda[j] += rho * res[j]
		}
		rho = math.Min(rho*2, 1e8)
	}
	return n, task.MaxevalReached
}

func augmentedLagrangian(obj Objective, sys System, n, lambda []float64, rho float64) float64 {
	res := vecSub(matVec(sys.A, n), sys.B)
	phi := obj.Value(n)
	var lin, quad float64
	for j, r := range res {
		lin += lambda[j] * r
		quad += r * r
	}
	return phi + lin + 0.5*rho*quad
}

func augmentedLagrangianGrad(obj Objective, sys System, n, lambda []float64, rho float64, grad []float64) {
	obj.Gradient(grad, n)
	res := vecSub(matVec(sys.A, n), sys.B)
	mult := make([]float64, len(res))
	for j, r := range res {
		mult[j] = lambda[j] + rho*r
	}
	// grad += A^T * mult
	m, _ := sys.A.Dims()
	for col := range grad {
		var s float64
		for row := 0; row < m; row++ {
			s += sys.A.At(row, col) * mult[row]
		}
		grad[col] += s
	}
}
