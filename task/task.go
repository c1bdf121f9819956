// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package task defines the independent work unit the equilibrium and
// adiabatic-temperature solvers consume, and the fan-out builder that
// expands a Parameters/initial-amounts pair into an array of them.
package task

import (
	"github.com/alexonemore/atc-go/amount"
	"github.com/alexonemore/atc-go/database"
	"github.com/alexonemore/atc-go/params"
	"github.com/alexonemore/atc-go/thermo"
)

// Status is the terminal outcome recorded on a task after it has been
// processed by the equilibrium or adiabatic-temperature solver.
type Status int

const (
	Success Status = iota
	XtolReached
	FtolReached
	MaxevalReached
	MaxtimeReached
	Failure
	Canceled
)

func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case XtolReached:
		return "XtolReached"
	case FtolReached:
		return "FtolReached"
	case MaxevalReached:
		return "MaxevalReached"
	case MaxtimeReached:
		return "MaxtimeReached"
	case Failure:
		return "Failure"
	case Canceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

// OptimizationTask is one independent equilibrium (or adiabatic-temperature)
// work unit. Coefficient tables and element composition are shared by
// reference across tasks constructed in the same batch and must not be
// mutated; Initial/Equilibrium are each task's exclusive working buffer.
type OptimizationTask struct {
	Params     params.Parameters
	Elements   []database.ElementId
	Weights    database.Weights
	Coeffs     thermo.CoeffTable
	Elemcomp   database.Composition

	Initial      amount.Amounts
	Equilibrium  amount.Amounts

	TInitialK float64
	TCurrentK float64

	// CompSweepValue is the composition-axis sweep value that produced
	// Initial, in Params.CompUnit; zero for single-point/temperature-only
	// tasks.
	CompSweepValue float64

	HInitialKJ float64
	HCurrentKJ float64

	// ResultOfOptimization is the value of Phi at the optimum, or a
	// sentinel on failure (see Failed).
	ResultOfOptimization float64
	SolverStatus         Status
}

// Failed reports whether the task's terminal status indicates the
// objective value was not a reliable optimum.
func (t *OptimizationTask) Failed() bool {
	return t.SolverStatus == Failure || t.SolverStatus == Canceled
}
