// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package database

import "github.com/alexonemore/atc-go/thermo"

// InMemory is a map-backed Database, useful as a test fixture and as a
// reference implementation for small standalone runs that load their
// species table directly rather than from an external store.
type InMemory struct {
	Species     map[thermo.SpeciesId]SpeciesInfo
	Ranges      thermo.CoeffTable
	Composition Composition
}

// NewInMemory returns an empty InMemory database ready for population via
// its exported fields.
func NewInMemory() *InMemory {
	return &InMemory{
		Species:     make(map[thermo.SpeciesId]SpeciesInfo),
		Ranges:      make(thermo.CoeffTable),
		Composition: make(Composition),
	}
}

func (db *InMemory) AvailableElements() ([]ElementId, error) {
	seen := make(map[ElementId]bool)
	var out []ElementId
	for _, formula := range db.Composition {
		for el := range formula {
			if !seen[el] {
				seen[el] = true
				out = append(out, el)
			}
		}
	}
	return out, nil
}

func (db *InMemory) SpeciesData(filter Filter) ([]SpeciesInfo, error) {
	var out []SpeciesInfo
	for id, info := range db.Species {
		if !subsetOfElements(db.Composition[id], filter.Elements) {
			continue
		}
		if !phaseAllowed(db.Ranges[id], filter.Phases) {
			continue
		}
		out = append(out, info)
	}
	return out, nil
}

func (db *InMemory) SpeciesTempRanges(ids []thermo.SpeciesId) (thermo.CoeffTable, error) {
	out := make(thermo.CoeffTable, len(ids))
	for _, id := range ids {
		out[id] = db.Ranges[id]
	}
	return out, nil
}

func (db *InMemory) SpeciesElementComposition(ids []thermo.SpeciesId) (Composition, error) {
	out := make(Composition, len(ids))
	for _, id := range ids {
		out[id] = db.Composition[id]
	}
	return out, nil
}

func (db *InMemory) AvailableElementsForSpecies(ids []thermo.SpeciesId) ([]ElementId, error) {
	seen := make(map[ElementId]bool)
	var out []ElementId
	for _, id := range ids {
		for el := range db.Composition[id] {
			if !seen[el] {
				seen[el] = true
				out = append(out, el)
			}
		}
	}
	return out, nil
}

// subsetOfElements reports whether every element key in formula also
// appears in allowed; an empty allowed list means no restriction.
func subsetOfElements(formula map[ElementId]float64, allowed []ElementId) bool {
	if len(allowed) == 0 {
		return true
	}
	permitted := make(map[ElementId]bool, len(allowed))
	for _, el := range allowed {
		permitted[el] = true
	}
	for el := range formula {
		if !permitted[el] {
			return false
		}
	}
	return true
}

// phaseAllowed reports whether ranges contains at least one range whose
// phase is in allowed; an empty allowed list means no restriction. A
// species with no ranges at all is never allowed by a non-empty filter.
func phaseAllowed(ranges []thermo.TempRange, allowed []thermo.Phase) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, r := range ranges {
		for _, p := range allowed {
			if r.Phase == p {
				return true
			}
		}
	}
	return false
}
