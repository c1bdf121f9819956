// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package atcrun is the single entry point the core exposes to its
// caller: Run takes parameters, a species database and initial amounts,
// and drives task construction (task.Builder), the bounded worker pool
// (pool.Run) and per-task dispatch to the equilibrium or adiabatic
// solver, returning the populated task array. Modeled on fem.Main.Run's
// orchestration in the teacher -- read simulation input once, fan out to
// a solver, narrate progress via io.Pf-style messages -- adapted from an
// FE time-loop over stages to a flat task-grid dispatch.
package atcrun

import (
	"context"

	"github.com/alexonemore/atc-go/adiabatic"
	"github.com/alexonemore/atc-go/amount"
	"github.com/alexonemore/atc-go/database"
	"github.com/alexonemore/atc-go/equil"
	"github.com/alexonemore/atc-go/params"
	"github.com/alexonemore/atc-go/pool"
	"github.com/alexonemore/atc-go/task"
	"github.com/alexonemore/atc-go/thermo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Request bundles everything atcrun.Run needs from the caller: the
// configuration, the species subset to run (already narrowed by
// p.ShowPhases at the database layer via SpeciesFilter), and the initial
// amounts for that subset.
type Request struct {
	Params        params.Parameters
	Database      database.Database
	SpeciesFilter database.Filter
	Initial       amount.Amounts
	Verbose       bool
}

// Result is what Run hands back to the caller: either the populated task
// array, or an indication that the batch was canceled before any result
// can be trusted.
type Result struct {
	Tasks    []*task.OptimizationTask
	Canceled bool
}

// Run performs four of the read-only database lookups of spec.md §6 once,
// builds the task grid (task.Builder), and dispatches it across a
// pool.Run worker pool, invoking equil.Run or adiabatic.Run per task
// depending on req.Params.Target. Structural errors (spec.md §7's
// "invalid input", "task-count overflow", "database fault") are returned
// before any task is issued; per-task numerical failures never abort the
// batch and are recorded on that task's SolverStatus instead.
func Run(ctx context.Context, req Request, progress pool.Progress) (Result, error) {
	if req.Verbose {
		io.Pf("> looking up species data\n")
	}

	info, err := req.Database.SpeciesData(req.SpeciesFilter)
	if err != nil {
		return Result{}, chk.Err("atcrun: species lookup failed: %v", err)
	}
	if len(info) == 0 {
		return Result{}, chk.Err("atcrun: species filter matched no species")
	}

	speciesIds := idsFromInfo(info)
	elements, err := req.Database.AvailableElementsForSpecies(speciesIds)
	if err != nil {
		return Result{}, chk.Err("atcrun: element lookup failed: %v", err)
	}
	if len(elements) == 0 {
		return Result{}, chk.Err("atcrun: species set has no elements")
	}

	coeffs, err := req.Database.SpeciesTempRanges(speciesIds)
	if err != nil {
		return Result{}, chk.Err("atcrun: temp-range lookup failed: %v", err)
	}
	elemcomp, err := req.Database.SpeciesElementComposition(speciesIds)
	if err != nil {
		return Result{}, chk.Err("atcrun: element-composition lookup failed: %v", err)
	}
	for _, id := range speciesIds {
		if len(coeffs[id]) == 0 {
			return Result{}, chk.Err("atcrun: species %v has no temperature ranges", id)
		}
	}

	weights := weightsFromInfo(info)

	if req.Verbose {
		io.Pf("> building task grid\n")
	}
	tasks, err := (task.Builder{}).Build(req.Params, elements, coeffs, elemcomp, weights, req.Initial)
	if err != nil {
		return Result{}, err
	}

	if req.Verbose {
		io.Pf("> dispatching %d task(s) across %d worker(s)\n", len(tasks), req.Params.Threads)
	}

	solve := equil.Run
	if req.Params.Target == params.AdiabaticTemperature {
		solve = adiabatic.Run
	}

	ok := pool.Run(ctx, len(tasks), req.Params.Threads, func(i int) {
		solve(tasks[i])
	}, progress)

	if !ok {
		if req.Verbose {
			io.PfRed("> canceled\n")
		}
		return Result{Canceled: true}, nil
	}

	if req.Verbose {
		io.PfGreen("> completed %d task(s)\n", len(tasks))
	}
	return Result{Tasks: tasks}, nil
}

func idsFromInfo(info []database.SpeciesInfo) []thermo.SpeciesId {
	ids := make([]thermo.SpeciesId, len(info))
	for i, s := range info {
		ids[i] = s.Id
	}
	return ids
}

func weightsFromInfo(info []database.SpeciesInfo) database.Weights {
	w := make(database.Weights, len(info))
	for _, s := range info {
		w[s.Id] = s.MolarMass
	}
	return w
}
