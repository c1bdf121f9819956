// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package amount

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/alexonemore/atc-go/thermo"
)

func Test_SetField_propagatesPairedValue(tst *testing.T) {
	chk.PrintTitle("setting mol recomputes gram via weight")
	a := make(Amounts)
	a.SetField(1, FieldGroup1Mol, 2.0, 18.0)
	v := a[1]
	chk.Float64(tst, "g1_g", 1e-12, v.Group1G, 36.0)
	chk.Float64(tst, "sum_mol", 1e-12, v.SumMol, 2.0)
	chk.Float64(tst, "sum_g", 1e-12, v.SumG, 36.0)
}

func Test_SetField_gramSetsMol(tst *testing.T) {
	chk.PrintTitle("setting gram recomputes mol via weight")
	a := make(Amounts)
	a.SetField(1, FieldGroup2G, 10.0, 2.0)
	v := a[1]
	chk.Float64(tst, "g2_mol", 1e-12, v.Group2Mol, 5.0)
	chk.Float64(tst, "sum_mol", 1e-12, v.SumMol, 5.0)
}

// Test_MassInvariant checks testable property 4: the sum row always equals
// the arithmetic sum of the two group columns, for any sequence of edits.
func Test_MassInvariant(tst *testing.T) {
	chk.PrintTitle("sum row equals group1+group2 after any edit")
	a := make(Amounts)
	weight := 44.01
	a.SetField(1, FieldGroup1Mol, 3.0, weight)
	a.SetField(1, FieldGroup2Mol, 1.5, weight)
	v := a[1]
	chk.Float64(tst, "sum_mol", 1e-9, v.SumMol, v.Group1Mol+v.Group2Mol)
	chk.Float64(tst, "sum_g", 1e-9, v.SumG, v.Group1G+v.Group2G)
	chk.Float64(tst, "g1_g", 1e-9, v.Group1G, v.Group1Mol*weight)
}

// Test_SetSumField_rescaleIdempotent checks testable property 8: rescaling
// the sum row to its own current value is a no-op (idempotence), and
// rescaling to a new value then back to the original restores the original
// group split.
func Test_SetSumField_rescaleIdempotent(tst *testing.T) {
	chk.PrintTitle("sum-row rescale idempotence")
	a := make(Amounts)
	weight := 18.0
	a.SetField(1, FieldGroup1Mol, 4.0, weight)
	a.SetField(1, FieldGroup2Mol, 2.0, weight)
	original := a[1]

	a.SetSumField(1, true, original.SumMol, weight)
	chk.Float64(tst, "mol unchanged", 1e-9, a[1].Group1Mol, original.Group1Mol)
	chk.Float64(tst, "mol unchanged", 1e-9, a[1].Group2Mol, original.Group2Mol)

	a.SetSumField(1, true, 30.0, weight)
	a.SetSumField(1, true, original.SumMol, weight)
	chk.Float64(tst, "group1 restored", 1e-9, a[1].Group1Mol, original.Group1Mol)
	chk.Float64(tst, "group2 restored", 1e-9, a[1].Group2Mol, original.Group2Mol)
}

func Test_Exclude_zeroes(tst *testing.T) {
	chk.PrintTitle("exclude zeroes a species")
	a := make(Amounts)
	a.SetField(1, FieldGroup1Mol, 5.0, 10.0)
	a.Exclude(1)
	v := a[1]
	chk.Float64(tst, "sum_mol", 1e-15, v.SumMol, 0)
	chk.Float64(tst, "sum_g", 1e-15, v.SumG, 0)
}

func Test_Renormalize_percentagesSumTo100(tst *testing.T) {
	chk.PrintTitle("at%/wt% sum to 100 across species")
	a := make(Amounts)
	a.SetField(1, FieldGroup1Mol, 1.0, 2.0)
	a.SetField(2, FieldGroup1Mol, 3.0, 4.0)
	a.Renormalize()

	var sumAt, sumWt float64
	for _, v := range a {
		sumAt += v.SumAtPct
		sumWt += v.SumWtPct
	}
	chk.Float64(tst, "sum at%", 1e-9, sumAt, 100)
	chk.Float64(tst, "sum wt%", 1e-9, sumWt, 100)
}

func Test_Renormalize_allZeroGivesZeroPct(tst *testing.T) {
	chk.PrintTitle("all-zero totals give zero percentages, no division panic")
	a := make(Amounts)
	a[thermo.SpeciesId(1)] = Amount{}
	a.Renormalize()
	chk.Float64(tst, "at%", 1e-15, a[1].SumAtPct, 0)
	chk.Float64(tst, "wt%", 1e-15, a[1].SumWtPct, 0)
}

func Test_Clone_isIndependent(tst *testing.T) {
	chk.PrintTitle("clone does not alias the original map")
	a := make(Amounts)
	a.SetField(1, FieldGroup1Mol, 1.0, 1.0)
	b := a.Clone()
	b.SetField(1, FieldGroup1Mol, 99.0, 1.0)
	chk.Float64(tst, "original untouched", 1e-15, a[1].Group1Mol, 1.0)
}
