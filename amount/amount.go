// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package amount implements the per-species amount bookkeeping of §4.3:
// eight coupled scalars per species (mol/gram x group1/group2, plus a sum
// row), kept consistent under user edits.
package amount

import "github.com/alexonemore/atc-go/thermo"

// Amount holds the eight coupled per-species scalars. Invariants:
//
//	SumMol = Group1Mol + Group2Mol
//	SumG   = Group1G   + Group2G
//	GroupiG = GroupiMol * weight
type Amount struct {
	Group1Mol, Group1G float64
	Group2Mol, Group2G float64
	SumMol, SumG       float64
	SumAtPct, SumWtPct float64
}

// Amounts maps species to their Amount.
type Amounts map[thermo.SpeciesId]Amount

// Field identifies one of the four group fields of Amount that SetField
// edits directly.
type Field int

const (
	FieldGroup1Mol Field = iota
	FieldGroup1G
	FieldGroup2Mol
	FieldGroup2G
)

// Ids returns the species identities present in a, in map iteration
// order. Callers that need a stable order (e.g. for reproducible test
// fixtures) must sort the result themselves.
func (a Amounts) Ids() []thermo.SpeciesId {
	ids := make([]thermo.SpeciesId, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	return ids
}

// Clone returns a deep copy of a.
func (a Amounts) Clone() Amounts {
	out := make(Amounts, len(a))
	for id, v := range a {
		out[id] = v
	}
	return out
}

// derive recomputes SumMol/SumG from the group columns and weight; the
// percentage columns are left to Renormalize since they depend on the
// grand total across all species.
func derive(v Amount, weight float64) Amount {
	v.SumMol = v.Group1Mol + v.Group2Mol
	v.SumG = v.Group1G + v.Group2G
	_ = weight
	return v
}

// SetField sets one of the four group fields for species id, propagating
// the paired mol/gram value via weight and re-deriving the sum row.
// Setting a *Mol field recomputes the paired *G field as mol*weight, and
// vice versa, so the gi_g = gi_mol*weight invariant always holds after the
// call for the edited group.
func (a Amounts) SetField(id thermo.SpeciesId, field Field, value, weight float64) {
	v := a[id]
	switch field {
	case FieldGroup1Mol:
		v.Group1Mol = value
		v.Group1G = value * weight
	case FieldGroup1G:
		v.Group1G = value
		if weight > 0 {
			v.Group1Mol = value / weight
		}
	case FieldGroup2Mol:
		v.Group2Mol = value
		v.Group2G = value * weight
	case FieldGroup2G:
		v.Group2G = value
		if weight > 0 {
			v.Group2Mol = value / weight
		}
	}
	a[id] = derive(v, weight)
}

// SetSumField sets species id's Sum-row mol or gram field directly, scaling
// the Group1/Group2 columns proportionally to preserve their existing
// split, then re-deriving the paired gram/mol value via weight.
func (a Amounts) SetSumField(id thermo.SpeciesId, mol bool, value, weight float64) {
	v := a[id]
	if mol {
		old := v.SumMol
		v.SumMol = value
		if old != 0 {
			scale := value / old
			v.Group1Mol *= scale
			v.Group2Mol *= scale
		} else {
			v.Group1Mol = value
			v.Group2Mol = 0
		}
		v.Group1G = v.Group1Mol * weight
		v.Group2G = v.Group2Mol * weight
		v.SumG = v.Group1G + v.Group2G
	} else {
		old := v.SumG
		v.SumG = value
		if old != 0 {
			scale := value / old
			v.Group1G *= scale
			v.Group2G *= scale
		} else {
			v.Group1G = value
			v.Group2G = 0
		}
		if weight > 0 {
			v.Group1Mol = v.Group1G / weight
			v.Group2Mol = v.Group2G / weight
		}
		v.SumMol = v.Group1Mol + v.Group2Mol
	}
	a[id] = v
}

// Exclude zeroes the amounts of species id, as if it were unchecked from
// the working set.
func (a Amounts) Exclude(id thermo.SpeciesId) {
	a[id] = Amount{}
}

// Renormalize recomputes SumAtPct and SumWtPct for every species against
// the grand totals across all species, zeroing out cleanly when the
// corresponding denominator is zero.
func (a Amounts) Renormalize() {
	var totalMol, totalG float64
	for _, v := range a {
		totalMol += v.SumMol
		totalG += v.SumG
	}
	for id, v := range a {
		if totalMol > 0 {
			v.SumAtPct = 100 * v.SumMol / totalMol
		} else {
			v.SumAtPct = 0
		}
		if totalG > 0 {
			v.SumWtPct = 100 * v.SumG / totalG
		} else {
			v.SumWtPct = 0
		}
		a[id] = v
	}
}

// TotalMol returns the grand total of SumMol across all species.
func (a Amounts) TotalMol() float64 {
	var total float64
	for _, v := range a {
		total += v.SumMol
	}
	return total
}

// TotalG returns the grand total of SumG across all species.
func (a Amounts) TotalG() float64 {
	var total float64
	for _, v := range a {
		total += v.SumG
	}
	return total
}

// Group1TotalMol returns the grand total of Group1Mol across all species.
func (a Amounts) Group1TotalMol() float64 {
	var total float64
	for _, v := range a {
		total += v.Group1Mol
	}
	return total
}

// Group1TotalG returns the grand total of Group1G across all species.
func (a Amounts) Group1TotalG() float64 {
	var total float64
	for _, v := range a {
		total += v.Group1G
	}
	return total
}

// Group2TotalMol returns the grand total of Group2Mol across all species.
func (a Amounts) Group2TotalMol() float64 {
	var total float64
	for _, v := range a {
		total += v.Group2Mol
	}
	return total
}

// Group2TotalG returns the grand total of Group2G across all species.
func (a Amounts) Group2TotalG() float64 {
	var total float64
	for _, v := range a {
		total += v.Group2G
	}
	return total
}
