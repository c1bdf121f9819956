// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package equil solves the bounded, equality-constrained Gibbs-energy (or
// entropy) minimization of spec.md §4.5 for one (temperature, composition)
// task: classify species by phase, build the constraint matrix and
// objective coefficients, run the bounded optimizer, and extract the
// equilibrium composition.
package equil

import (
	"github.com/alexonemore/atc-go/params"
	"github.com/alexonemore/atc-go/thermo"
)

// Numbers records how many of the reordered species fall into each phase
// group at the current temperature: gases first, then liquids, then
// individual species (solid plus out-of-phase liquids when
// LiquidSolution is NoLiquidSolution).
type Numbers struct {
	Gases, Liquids, Individuals int
}

// Total returns the species count across all three groups.
func (n Numbers) Total() int {
	return n.Gases + n.Liquids + n.Individuals
}

// Ordered is the per-task, phase-reordered view of the species set used by
// every other function in this package: species ids appear gas-first,
// then liquid, then individual, matching the column order of the
// constraint matrix A.
type Ordered struct {
	Ids   []thermo.SpeciesId
	Range []thermo.TempRange // the TempRange selected for Ids[i] at T
	Nums  Numbers
}

// Classify reorders ids by phase at temperature T, gases first, then
// liquids, then individual species (solid, plus liquids when
// liquidSolution is NoLiquidSolution per Design Note §9/OQ2). Ids whose
// coefficient table is missing or empty are treated as a programming
// error by the caller (atcrun.Run validates this upstream) and are
// skipped here defensively.
func Classify(ids []thermo.SpeciesId, coeffs thermo.CoeffTable, T float64, liquidSolution params.LiquidSolution) Ordered {
	var gases, liquids, individuals []thermo.SpeciesId
	var gasesR, liquidsR, individualsR []thermo.TempRange

	for _, id := range ids {
		ranges := coeffs[id]
		if len(ranges) == 0 {
			continue
		}
		r := thermo.SelectRange(T, ranges)
		switch r.Phase {
		case thermo.Gas:
			gases = append(gases, id)
			gasesR = append(gasesR, r)
		case thermo.Liquid:
			if liquidSolution == params.OneLiquidSolution {
				liquids = append(liquids, id)
				liquidsR = append(liquidsR, r)
			} else {
				individuals = append(individuals, id)
				individualsR = append(individualsR, r)
			}
		default:
			individuals = append(individuals, id)
			individualsR = append(individualsR, r)
		}
	}

	out := Ordered{
		Nums: Numbers{Gases: len(gases), Liquids: len(liquids), Individuals: len(individuals)},
	}
	out.Ids = append(out.Ids, gases...)
	out.Ids = append(out.Ids, liquids...)
	out.Ids = append(out.Ids, individuals...)
	out.Range = append(out.Range, gasesR...)
	out.Range = append(out.Range, liquidsR...)
	out.Range = append(out.Range, individualsR...)
	return out
}

// GasIndices returns the [0, Nums.Gases) index range.
func (o Ordered) GasIndices() (lo, hi int) { return 0, o.Nums.Gases }

// LiquidIndices returns the [Nums.Gases, Nums.Gases+Nums.Liquids) range.
func (o Ordered) LiquidIndices() (lo, hi int) {
	return o.Nums.Gases, o.Nums.Gases + o.Nums.Liquids
}

// IndividualIndices returns the remaining index range.
func (o Ordered) IndividualIndices() (lo, hi int) {
	lo = o.Nums.Gases + o.Nums.Liquids
	return lo, lo + o.Nums.Individuals
}
