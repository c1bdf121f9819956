// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package thermo evaluates Gibbs energy, enthalpy, entropy, heat capacity
// and the dimensionless Gibbs potential of a chemical species at a given
// temperature, from piecewise coefficient tables in either of two
// conventions (THERMO and HSC).
package thermo

import "github.com/alexonemore/atc-go/params"

// SpeciesId identifies a species within one run; stable but otherwise
// opaque (callers should not rely on a particular encoding).
type SpeciesId int

// Phase is the coarse state of matter of a species over a TempRange.
// An unrecognized source tag is treated as Solid (see ParsePhase).
type Phase int

const (
	Solid Phase = iota
	Liquid
	Gas
)

// ParsePhase maps the legacy single-letter phase tags ("G"/"L"/"S") used by
// the source databases onto Phase. Anything else, including an empty
// string, is treated as Solid.
func ParsePhase(tag string) Phase {
	switch tag {
	case "G":
		return Gas
	case "L":
		return Liquid
	default:
		return Solid
	}
}

func (p Phase) String() string {
	switch p {
	case Gas:
		return "gas"
	case Liquid:
		return "liquid"
	default:
		return "solid"
	}
}

// TempRange is one coefficient block, valid on [TMin, TMax] (K).
type TempRange struct {
	TMin, TMax     float64
	HRef           float64 // kJ/mol
	SRef           float64 // J/mol.K
	F1, F2, F3, F4 float64
	F5, F6, F7     float64
	Phase          Phase
}

// CoeffTable holds, per species, the sorted (by TMin), contiguous,
// non-overlapping sequence of TempRange blocks covering its validity range.
type CoeffTable map[SpeciesId][]TempRange

// Functions bundles the thermodynamic functions evaluated at one
// temperature for one species.
type Functions struct {
	F  float64 // J/mol.K
	H  float64 // kJ/mol
	S  float64 // J/mol.K
	Cp float64 // J/mol.K
	G  float64 // kJ/mol
	C  float64 // dimensionless Gibbs potential, G.1e3/(R.T)
}

// R is the gas constant, J/mol.K.
const R = 8.31441

// T0 is the HSC reference temperature, K.
const T0 = 298.15

// Evaluator computes Functions for one species at one temperature; it is
// the dispatch bound once per batch from a params.Database value (Design
// Note §9: "capture once per batch in a function pointer / closure").
type Evaluator func(T float64, ranges []TempRange) Functions

// EvaluatorFor returns the Evaluator matching db.
func EvaluatorFor(db params.Database) Evaluator {
	switch db {
	case params.HSC:
		return HSC
	default:
		return Gurvich
	}
}
