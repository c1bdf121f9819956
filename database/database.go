// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package database declares the read-only species-lookup contract the
// core consumes once per batch, before fan-out. The core never retains a
// handle to a Database during task execution (spec.md §6).
package database

import "github.com/alexonemore/atc-go/thermo"

// ElementId identifies a chemical element within one run; stable but
// otherwise opaque, mirroring thermo.SpeciesId.
type ElementId int

// Composition maps species to their element-count formula.
type Composition map[thermo.SpeciesId]map[ElementId]float64

// Weights maps species to molar mass, g/mol.
type Weights map[thermo.SpeciesId]float64

// SpeciesInfo is one row of a species_data query result.
type SpeciesInfo struct {
	Id        thermo.SpeciesId
	Formula   string
	Name      string
	MolarMass float64
	TMin, TMax float64
}

// Filter narrows a species_data query to species whose element set is a
// subset of Elements (nil/empty means no element restriction) and whose
// phase is in Phases (nil/empty means no phase restriction).
type Filter struct {
	Elements []ElementId
	Phases   []thermo.Phase
}

// Database is the read-only species store the core queries once per
// batch. Implementations need not be safe for concurrent use by
// themselves, since the core only calls them from the batch-setup
// goroutine, never from inside the worker pool.
type Database interface {
	// AvailableElements returns every element present in any species
	// known to the database.
	AvailableElements() ([]ElementId, error)

	// SpeciesData returns every species matching filter.
	SpeciesData(filter Filter) ([]SpeciesInfo, error)

	// SpeciesTempRanges returns the sorted coefficient ranges for each
	// requested species.
	SpeciesTempRanges(ids []thermo.SpeciesId) (thermo.CoeffTable, error)

	// SpeciesElementComposition returns the element formula of each
	// requested species.
	SpeciesElementComposition(ids []thermo.SpeciesId) (Composition, error)

	// AvailableElementsForSpecies returns the union of elements present
	// across the requested species.
	AvailableElementsForSpecies(ids []thermo.SpeciesId) ([]ElementId, error)
}
