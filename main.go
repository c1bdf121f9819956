// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command atc-go is a thin runnable example around the core: it builds
// an in-memory species database for a small hydrogen/oxygen combustion
// system, drives atcrun.Run with target=AdiabaticTemperature, and prints
// the resulting equilibrium composition and flame temperature. Loading a
// real species database or a parameter file from disk is out of the
// core's scope (spec.md §1); this command exists to exercise the wiring
// end to end, the same role cmd/gofem plays for the teacher's fem core.
package main

import (
	"context"
	"flag"

	"github.com/alexonemore/atc-go/amount"
	"github.com/alexonemore/atc-go/atcrun"
	"github.com/alexonemore/atc-go/database"
	"github.com/alexonemore/atc-go/params"
	"github.com/alexonemore/atc-go/thermo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {
	verbose := flag.Bool("v", true, "narrate batch progress")
	threads := flag.Int("threads", 4, "worker-pool size")
	flag.Parse()

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\natc-go -- adiabatic-temperature / chemical-equilibrium core\n\n")

	db, filter, initial, p := hydrogenCombustionDemo(*threads)

	result, err := atcrun.Run(context.Background(), atcrun.Request{
		Params:        p,
		Database:      db,
		SpeciesFilter: filter,
		Initial:       initial,
		Verbose:       *verbose,
	}, func(completed, total int) {
		if *verbose {
			io.Pf("  %d/%d\n", completed, total)
		}
	})
	if err != nil {
		chk.Panic("batch failed: %v", err)
	}
	if result.Canceled {
		io.PfRed("batch canceled\n")
		return
	}

	for _, t := range result.Tasks {
		io.PfGreen("\nT_flame = %.2f K  (status: %v)\n", t.TCurrentK, t.SolverStatus)
		io.Pf("H_initial = %.3f kJ   H_current = %.3f kJ\n", t.HInitialKJ, t.HCurrentKJ)
		for id, eq := range t.Equilibrium {
			if eq.SumMol > 1e-9 {
				io.Pf("  species %v: %.6f mol (%.2f mol%%)\n", id, eq.SumMol, eq.SumAtPct)
			}
		}
	}
}

// hydrogenCombustionDemo is scenario S2 of spec.md §8: 2 mol H2 + 1 mol
// O2 at 298.15 K over {H2, O2, H2O, H, O, OH}, solved for the adiabatic
// flame temperature.
func hydrogenCombustionDemo(threads int) (database.Database, database.Filter, amount.Amounts, params.Parameters) {
	const (
		h2  thermo.SpeciesId = 1
		o2  thermo.SpeciesId = 2
		h2o thermo.SpeciesId = 3
		h   thermo.SpeciesId = 4
		o   thermo.SpeciesId = 5
		oh  thermo.SpeciesId = 6

		elH database.ElementId = 1
		elO database.ElementId = 2
	)

	db := database.NewInMemory()
	species := []struct {
		id      thermo.SpeciesId
		formula string
		name    string
		weight  float64
		f1, sref float64
		href    float64
	}{
		{h2, "H2", "hydrogen", 2.016, 27.3, 130.6, 0},
		{o2, "O2", "oxygen", 31.998, 29.4, 205.0, 0},
		{h2o, "H2O", "water", 18.015, 33.6, 188.7, -241.8},
		{h, "H", "atomic hydrogen", 1.008, 20.8, 114.6, 218.0},
		{o, "O", "atomic oxygen", 15.999, 21.9, 161.0, 249.2},
		{oh, "OH", "hydroxyl", 17.007, 29.9, 183.6, 39.0},
	}
	for _, s := range species {
		db.Species[s.id] = database.SpeciesInfo{
			Id: s.id, Formula: s.formula, Name: s.name,
			MolarMass: s.weight, TMin: 200, TMax: 6000,
		}
		db.Ranges[s.id] = []thermo.TempRange{{
			TMin: 200, TMax: 6000, HRef: s.href, SRef: s.sref,
			F1: s.f1, Phase: thermo.Gas,
		}}
	}
	db.Composition[h2] = map[database.ElementId]float64{elH: 2}
	db.Composition[o2] = map[database.ElementId]float64{elO: 2}
	db.Composition[h2o] = map[database.ElementId]float64{elH: 2, elO: 1}
	db.Composition[h] = map[database.ElementId]float64{elH: 1}
	db.Composition[o] = map[database.ElementId]float64{elO: 1}
	db.Composition[oh] = map[database.ElementId]float64{elH: 1, elO: 1}

	initial := amount.Amounts{}
	initial.SetField(h2, amount.FieldGroup1Mol, 2.0, db.Species[h2].MolarMass)
	initial.SetField(o2, amount.FieldGroup1Mol, 1.0, db.Species[o2].MolarMass)

	p := params.Parameters{
		Workmode:     params.SinglePoint,
		Target:       params.AdiabaticTemperature,
		Database:     params.THERMO,
		Minimization: params.Gibbs,
		HInitialBy:   params.AsChecked,
		InitialTemp:  298.15,
		AtAccuracy:   2,
		Threads:      threads,
	}
	return db, database.Filter{}, initial, p
}
