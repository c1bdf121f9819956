// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"github.com/alexonemore/atc-go/amount"
	"github.com/alexonemore/atc-go/database"
	"github.com/alexonemore/atc-go/params"
	"github.com/alexonemore/atc-go/thermo"
)

// InitialEnthalpy computes H_init at TInitK per the H_initial_by policy of
// spec.md §4.6. AsChecked sums n_i*H_i(TInitK) directly; ByMinimumGibbsEnergy
// substitutes, for each species with nonzero initial moles, the
// stoichiometrically identical species (same element-composition map)
// with the lowest G at TInitK before summing H, modeling the possibility
// that an input reactant is a metastable form of a more stable isomer.
func InitialEnthalpy(
	ids []thermo.SpeciesId,
	coeffs thermo.CoeffTable,
	elemcomp database.Composition,
	initial amount.Amounts,
	TInitK float64,
	p params.Parameters,
) float64 {
	eval := thermo.EvaluatorFor(p.Database)

	var h float64
	for _, id := range ids {
		n0 := initial[id].SumMol
		if n0 == 0 {
			continue
		}
		source := id
		if p.HInitialBy == params.ByMinimumGibbsEnergy {
			source = lowestGibbsIsomer(id, ids, coeffs, elemcomp, TInitK, eval)
		}
		h += n0 * eval(TInitK, coeffs[source]).H
	}
	return h
}

// Enthalpy sums n_i*H_i(T) over amounts directly, with no isomer
// substitution; used to report the equilibrium composition's H_current,
// where every species is already the true equilibrium state and no
// "possibly mislabeled reactant" correction applies.
func Enthalpy(
	ids []thermo.SpeciesId,
	coeffs thermo.CoeffTable,
	amounts amount.Amounts,
	T float64,
	p params.Parameters,
) float64 {
	eval := thermo.EvaluatorFor(p.Database)
	var h float64
	for _, id := range ids {
		n := amounts[id].SumMol
		if n == 0 {
			continue
		}
		h += n * eval(T, coeffs[id]).H
	}
	return h
}

// lowestGibbsIsomer scans ids for every species whose element-composition
// map equals id's (including id itself) and returns the one with the
// lowest G at T; ties keep the first encountered, which is id itself when
// no other isomer has strictly lower G.
func lowestGibbsIsomer(
	id thermo.SpeciesId,
	ids []thermo.SpeciesId,
	coeffs thermo.CoeffTable,
	elemcomp database.Composition,
	T float64,
	eval thermo.Evaluator,
) thermo.SpeciesId {
	best := id
	bestG := eval(T, coeffs[id]).G
	formula := elemcomp[id]
	for _, other := range ids {
		if other == id {
			continue
		}
		if !sameComposition(formula, elemcomp[other]) {
			continue
		}
		g := eval(T, coeffs[other]).G
		if g < bestG {
			bestG = g
			best = other
		}
	}
	return best
}

// sameComposition reports whether two element-count maps are equal,
// treating an absent key as a zero count.
func sameComposition(a, b map[database.ElementId]float64) bool {
	for el, v := range a {
		if b[el] != v {
			return false
		}
	}
	for el, v := range b {
		if a[el] != v {
			return false
		}
	}
	return true
}
