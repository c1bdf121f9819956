// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// matVec returns A*x.
func matVec(A *mat.Dense, x []float64) []float64 {
	m, n := A.Dims()
	out := make([]float64, m)
	for row := 0; row < m; row++ {
		var s float64
		for col := 0; col < n; col++ {
			s += A.At(row, col) * x[col]
		}
		out[row] = s
	}
	return out
}

// vecSub returns a-b element-wise.
func vecSub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// axpy returns x + alpha*y.
func axpy(x []float64, alpha float64, y []float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		out[i] = x[i] + alpha*y[i]
	}
	return out
}

// l2dist returns the Euclidean distance between a and b.
func l2dist(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return math.Sqrt(s)
}

// clipToBox returns a copy of n clipped into [0, ub] element-wise.
func clipToBox(n, ub []float64) []float64 {
	out := make([]float64, len(n))
	for i, v := range n {
		if v < 0 {
			v = 0
		}
		if !math.IsInf(ub[i], 1) && v > ub[i] {
			v = ub[i]
		}
		out[i] = v
	}
	return out
}

// constraintResidual returns ||A*n - b||_inf normalized against max(||b||_inf, 1),
// the testable-property-1 quantity of spec.md §8.
func constraintResidual(sys System, n []float64) float64 {
	res := vecSub(matVec(sys.A, n), sys.B)
	var maxB, maxRes float64
	for _, v := range sys.B {
		if math.Abs(v) > maxB {
			maxB = math.Abs(v)
		}
	}
	for _, v := range res {
		if math.Abs(v) > maxRes {
			maxRes = math.Abs(v)
		}
	}
	return maxRes / math.Max(maxB, 1)
}

// gram returns A*A^T as a symmetric M×M matrix.
func gram(A *mat.Dense) *mat.SymDense {
	m, n := A.Dims()
	g := mat.NewSymDense(m, nil)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			var s float64
			for col := 0; col < n; col++ {
				s += A.At(i, col) * A.At(j, col)
			}
			g.SetSym(i, j, s)
		}
	}
	return g
}

// projectNullSpace returns grad projected onto the null space of A, i.e.
// grad - A^T*(A*A^T)^-1*A*grad, so that a steepest-descent step along the
// result keeps A*n = b satisfied to first order.
func projectNullSpace(A *mat.Dense, grad []float64) []float64 {
	m, n := A.Dims()
	if m == 0 {
		return append([]float64(nil), grad...)
	}

	g := gram(A)
	agrad := matVec(A, grad)

	var chol mat.Cholesky
	if !chol.Factorize(g) {
		return append([]float64(nil), grad...)
	}
	var y mat.VecDense
	if err := chol.SolveVecTo(&y, mat.NewVecDense(m, agrad)); err != nil {
		return append([]float64(nil), grad...)
	}

	out := append([]float64(nil), grad...)
	for col := 0; col < n; col++ {
		var s float64
		for row := 0; row < m; row++ {
			s += A.At(row, col) * y.AtVec(row)
		}
		out[col] -= s
	}
	return out
}

// restoreFeasibility projects n0 onto {x : A*x = b} by the least-norm
// correction d = A^T*(A*A^T)^-1*(b - A*n0), then clips the corrected point
// back into the box; this is the "feasibility is not assumed" restoration
// spec.md §4.5 calls for before the first SQP step, and is re-applied
// after every trial step to keep the equality constraint tight.
func restoreFeasibility(sys System, n0 []float64) []float64 {
	m, n := sys.A.Dims()
	if m == 0 {
		return clipToBox(n0, sys.UB)
	}

	residual := vecSub(sys.B, matVec(sys.A, n0))
	g := gram(sys.A)

	var chol mat.Cholesky
	if !chol.Factorize(g) {
		// Singular Gram matrix (redundant or zero constraint rows, e.g. an
		// element with no species carrying it at this T): no feasibility
		// correction is possible from this point, so leave it unmoved
		// rather than solve a system that isn't well-posed.
		return clipToBox(n0, sys.UB)
	}
	var lambda mat.VecDense
	if err := chol.SolveVecTo(&lambda, mat.NewVecDense(m, residual)); err != nil {
		return clipToBox(n0, sys.UB)
	}

	correction := make([]float64, n)
	for col := 0; col < n; col++ {
		var s float64
		for row := 0; row < m; row++ {
			s += sys.A.At(row, col) * lambda.AtVec(row)
		}
		correction[col] = s
	}
	return clipToBox(axpy(n0, 1, correction), sys.UB)
}
