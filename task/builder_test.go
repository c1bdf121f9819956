// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package task

import (
	"testing"

	"github.com/alexonemore/atc-go/amount"
	"github.com/alexonemore/atc-go/database"
	"github.com/alexonemore/atc-go/params"
	"github.com/alexonemore/atc-go/thermo"
	"github.com/cpmech/gosl/chk"
)

func fixture() (params.Parameters, []database.ElementId, thermo.CoeffTable, database.Composition, database.Weights, amount.Amounts) {
	elements := []database.ElementId{1, 2}
	coeffs := thermo.CoeffTable{
		1: {{TMin: 100, TMax: 6000, Phase: thermo.Gas, F1: 30}},
	}
	comp := database.Composition{1: {1: 2, 2: 1}}
	weights := database.Weights{1: 18.015}
	initial := make(amount.Amounts)
	initial.SetField(1, amount.FieldGroup1Mol, 1.0, 18.015)
	p := params.Parameters{
		Workmode:    params.SinglePoint,
		InitialTemp: 298.15,
		TempUnit:    params.Kelvin,
	}
	return p, elements, coeffs, comp, weights, initial
}

func Test_Build_singlePoint_producesOneTask(tst *testing.T) {
	chk.PrintTitle("single-point workmode builds exactly one task")
	p, elements, coeffs, comp, weights, initial := fixture()
	tasks, err := Builder{}.Build(p, elements, coeffs, comp, weights, initial)
	if err != nil {
		tst.Fatal(err)
	}
	if len(tasks) != 1 {
		tst.Fatalf("want 1 task, got %d", len(tasks))
	}
	chk.Float64(tst, "T_initial_K", 1e-9, tasks[0].TInitialK, 298.15)
}

func Test_Build_tempRange_expandsGrid(tst *testing.T) {
	chk.PrintTitle("temp-range workmode tabulates the temperature axis")
	p, elements, coeffs, comp, weights, initial := fixture()
	p.Workmode = params.TempRange
	p.TempSweep = params.Range{Start: 300, Stop: 600, Step: 100}
	tasks, err := Builder{}.Build(p, elements, coeffs, comp, weights, initial)
	if err != nil {
		tst.Fatal(err)
	}
	if len(tasks) != 4 {
		tst.Fatalf("want 4 tasks (300,400,500,600), got %d", len(tasks))
	}
}

func Test_Build_tempCompRange_cartesianProduct(tst *testing.T) {
	chk.PrintTitle("temp+comp workmode is the cartesian product of both axes")
	p, elements, coeffs, comp, weights, initial := fixture()
	initial.SetField(1, amount.FieldGroup2Mol, 0.5, 18.015)
	p.Workmode = params.TempCompRange
	p.TempSweep = params.Range{Start: 300, Stop: 500, Step: 100}
	p.CompSweep = params.Range{Start: 0.1, Stop: 0.3, Step: 0.1}
	p.CompUnit = params.Mole
	tasks, err := Builder{}.Build(p, elements, coeffs, comp, weights, initial)
	if err != nil {
		tst.Fatal(err)
	}
	if len(tasks) != 3*3 {
		tst.Fatalf("want 9 tasks, got %d", len(tasks))
	}
}

func Test_Build_rejectsEmptyElements(tst *testing.T) {
	chk.PrintTitle("empty element set is a structural error")
	p, _, coeffs, comp, weights, initial := fixture()
	_, err := Builder{}.Build(p, nil, coeffs, comp, weights, initial)
	if err == nil {
		tst.Fatal("want error for empty element set")
	}
}

func Test_Build_rejectsNegativeMoles(tst *testing.T) {
	chk.PrintTitle("negative initial moles is a structural error")
	p, elements, coeffs, comp, weights, initial := fixture()
	initial.SetField(1, amount.FieldGroup1Mol, -1.0, 18.015)
	_, err := Builder{}.Build(p, elements, coeffs, comp, weights, initial)
	if err == nil {
		tst.Fatal("want error for negative moles")
	}
}

func Test_Build_emptyInitialComposition_returnsNoTasksNoError(tst *testing.T) {
	chk.PrintTitle("every input amount zero returns an empty result silently")
	p, elements, coeffs, comp, weights, initial := fixture()
	initial.SetField(1, amount.FieldGroup1Mol, 0, 18.015)
	tasks, err := Builder{}.Build(p, elements, coeffs, comp, weights, initial)
	if err != nil {
		tst.Fatalf("want no error for an all-zero composition, got %v", err)
	}
	if tasks != nil {
		tst.Fatalf("want nil task array, got %d tasks", len(tasks))
	}
}

func Test_Build_rejectsOversizedGrid(tst *testing.T) {
	chk.PrintTitle("grid larger than MaxTasks is rejected with an exact count")
	p, elements, coeffs, comp, weights, initial := fixture()
	p.Workmode = params.TempRange
	p.TempSweep = params.Range{Start: 0, Stop: float64(MaxTasks + 10), Step: 1}
	_, err := Builder{}.Build(p, elements, coeffs, comp, weights, initial)
	if err == nil {
		tst.Fatal("want task-count overflow error")
	}
	tce, ok := err.(*TaskCountError)
	if !ok {
		tst.Fatalf("want *TaskCountError, got %T: %v", err, err)
	}
	if tce.Count != MaxTasks+11 {
		tst.Errorf("want exact count %d, got %d", MaxTasks+11, tce.Count)
	}
}

func Test_rescaleGroup2_molUnit_scalesGroup2Only(tst *testing.T) {
	chk.PrintTitle("mole unit scales group2 absolutely, leaves group1 fixed")
	weights := database.Weights{1: 10.0}
	a := make(amount.Amounts)
	a.SetField(1, amount.FieldGroup1Mol, 2.0, 10.0)
	a.SetField(1, amount.FieldGroup2Mol, 1.0, 10.0)
	out := rescaleGroup2(a, weights, params.Mole, 4.0)
	chk.Float64(tst, "group1 unchanged", 1e-9, out[1].Group1Mol, 2.0)
	chk.Float64(tst, "group2 scaled to target", 1e-9, out[1].Group2Mol, 4.0)
}

func Test_rescaleGroup2_noOpWhenConditionFails(tst *testing.T) {
	chk.PrintTitle("mole unit is a no-op when group2 starts at zero")
	weights := database.Weights{1: 10.0}
	a := make(amount.Amounts)
	a.SetField(1, amount.FieldGroup1Mol, 2.0, 10.0)
	out := rescaleGroup2(a, weights, params.Mole, 4.0)
	chk.Float64(tst, "group2 stays zero", 1e-9, out[1].Group2Mol, 0)
}
