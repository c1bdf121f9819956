// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package task

import (
	"fmt"

	"github.com/alexonemore/atc-go/amount"
	"github.com/alexonemore/atc-go/database"
	"github.com/alexonemore/atc-go/params"
	"github.com/alexonemore/atc-go/rng"
	"github.com/alexonemore/atc-go/thermo"
	"github.com/cpmech/gosl/chk"
)

// MaxTasks bounds the size of the (temperature x composition) grid a
// single Build call will expand into. Chosen generously above any
// plausible at_accuracy x sweep-range combination, it exists purely as a
// guard against a misconfigured step that would otherwise try to allocate
// an unbounded task array.
const MaxTasks = 200000

// TaskCountError is returned by Build when the requested grid would
// exceed MaxTasks; Count is the exact size that was rejected.
type TaskCountError struct {
	Count int
}

func (e *TaskCountError) Error() string {
	return fmt.Sprintf("task grid of %d points exceeds the %d-task limit", e.Count, MaxTasks)
}

// Builder expands a Parameters/initial-amounts snapshot into the array of
// independent OptimizationTask values the pool will process. A Builder
// holds no state between Build calls; it exists only to group the method
// with its package-local helpers.
type Builder struct{}

// Build implements the fan-out of the equilibrium task builder: it
// tabulates whichever of the temperature/composition axes p.Workmode
// enables, takes their Cartesian product, and returns one OptimizationTask
// per grid point. Elements, coeffs, comp and weights are shared by
// reference across every returned task and must not be mutated by the
// caller afterward.
func (Builder) Build(
	p params.Parameters,
	elements []database.ElementId,
	coeffs thermo.CoeffTable,
	comp database.Composition,
	weights database.Weights,
	initial amount.Amounts,
) ([]*OptimizationTask, error) {
	if len(elements) == 0 {
		return nil, chk.Err("task builder: element set must not be empty")
	}
	if len(initial) == 0 {
		return nil, chk.Err("task builder: species set must not be empty")
	}
	var totalMol float64
	for id, v := range initial {
		if v.Group1Mol < 0 || v.Group2Mol < 0 {
			return nil, chk.Err("task builder: species %v has negative initial moles", id)
		}
		totalMol += v.SumMol
	}
	if totalMol == 0 {
		// Every input amount is zero: spec.md's empty-initial-composition
		// case returns no tasks and no error, so the caller displays
		// nothing rather than solving a degenerate all-zero system.
		return nil, nil
	}

	// Every species in coeffs takes part in each task's solve, including
	// products with no initial amount, so give those a zero entry.
	initial = initial.Clone()
	for id := range coeffs {
		if _, ok := initial[id]; !ok {
			initial[id] = amount.Amount{}
		}
	}

	compositions, sweepValues := compositionAxis(p, weights, initial)
	temperaturesK := temperatureAxis(p)

	count := len(temperaturesK) * len(compositions)
	if count > MaxTasks {
		return nil, &TaskCountError{Count: count}
	}

	tasks := make([]*OptimizationTask, 0, count)
	for _, tK := range temperaturesK {
		for i, comp2 := range compositions {
			tasks = append(tasks, &OptimizationTask{
				Params:         p,
				Elements:       elements,
				Weights:        weights,
				Coeffs:         coeffs,
				Elemcomp:       comp,
				Initial:        comp2,
				TInitialK:      tK,
				CompSweepValue: sweepValues[i],
				SolverStatus:   Failure,
			})
		}
	}
	return tasks, nil
}

// temperatureAxis returns the Kelvin-converted temperature sample points
// for p; a single-element slice holding p's initial temperature when
// p.Workmode has no temperature sweep.
func temperatureAxis(p params.Parameters) []float64 {
	if !p.Workmode.HasTempSweep() {
		return []float64{params.ToKelvin(p.InitialTemp, p.TempUnit)}
	}
	userPts := rng.Tabulate(p.TempSweep.Start, p.TempSweep.Stop, p.TempSweep.Step)
	out := make([]float64, len(userPts))
	for i, t := range userPts {
		out[i] = params.ToKelvin(t, p.TempUnit)
	}
	return out
}

// compositionAxis returns the per-point initial amounts and the sweep
// value that produced each, tabulating p.CompSweep when p.Workmode has a
// composition sweep, or a single unmodified copy of initial otherwise.
func compositionAxis(p params.Parameters, weights database.Weights, initial amount.Amounts) ([]amount.Amounts, []float64) {
	if !p.Workmode.HasCompSweep() {
		return []amount.Amounts{initial.Clone()}, []float64{0}
	}
	values := rng.Tabulate(p.CompSweep.Start, p.CompSweep.Stop, p.CompSweep.Step)
	out := make([]amount.Amounts, len(values))
	for i, v := range values {
		out[i] = rescaleGroup2(initial, weights, p.CompUnit, v)
	}
	return out, values
}

// rescaleGroup2 implements the composition-unit table of §4.4: group 2 is
// scaled so its contribution equals v interpreted per unit, while group 1
// stays fixed, except for the percentage units which also rescale group 1
// so the grand total is preserved. If the unit's rescale condition fails
// (the relevant group total is zero), the sweep point is a no-op copy of
// initial.
func rescaleGroup2(initial amount.Amounts, weights database.Weights, unit params.CompositionUnit, v float64) amount.Amounts {
	a := initial.Clone()
	group1Mol := a.Group1TotalMol()
	group2Mol := a.Group2TotalMol()
	group1G := a.Group1TotalG()
	group2G := a.Group2TotalG()
	totalMol := a.TotalMol()
	totalG := a.TotalG()

	switch unit {
	case params.AtomPercent:
		if group1Mol == 0 || group2Mol == 0 {
			return a
		}
		targetGroup2 := v / 100 * totalMol
		targetGroup1 := totalMol - targetGroup2
		scaleField(a, weights, amount.FieldGroup2Mol, targetGroup2/group2Mol)
		scaleField(a, weights, amount.FieldGroup1Mol, targetGroup1/group1Mol)
	case params.WeightPercent:
		if group1G == 0 || group2G == 0 {
			return a
		}
		targetGroup2 := v / 100 * totalG
		targetGroup1 := totalG - targetGroup2
		scaleField(a, weights, amount.FieldGroup2G, targetGroup2/group2G)
		scaleField(a, weights, amount.FieldGroup1G, targetGroup1/group1G)
	case params.Mole:
		if group2Mol == 0 {
			return a
		}
		scaleField(a, weights, amount.FieldGroup2Mol, v/group2Mol)
	case params.Gram:
		if group2G == 0 {
			return a
		}
		scaleField(a, weights, amount.FieldGroup2G, v/group2G)
	}
	a.Renormalize()
	return a
}

// scaleField multiplies every species' field value by scale, driving the
// edit through amount.SetField so the paired mol/gram value and sum row
// stay consistent.
func scaleField(a amount.Amounts, weights database.Weights, field amount.Field, scale float64) {
	for id, v := range a {
		var cur float64
		switch field {
		case amount.FieldGroup1Mol:
			cur = v.Group1Mol
		case amount.FieldGroup1G:
			cur = v.Group1G
		case amount.FieldGroup2Mol:
			cur = v.Group2Mol
		case amount.FieldGroup2G:
			cur = v.Group2G
		}
		a.SetField(id, field, cur*scale, weights[id])
	}
}
