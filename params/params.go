// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params defines the configuration bundle that selects a run's
// work mode, target quantity, thermodynamic convention and numerical
// policies. It is a plain JSON-tagged struct, the same shape the teacher
// uses for its own simulation-file config (inp.Data/inp.SolverData), so a
// caller-supplied loader can decode one straight from a config file.
package params

// Workmode selects the shape of the (temperature, composition) grid a run
// expands into.
type Workmode int

const (
	SinglePoint Workmode = iota
	TempRange
	CompRange
	TempCompRange
)

// Target selects what the solver ultimately reports for each task.
type Target int

const (
	Equilibrium Target = iota
	AdiabaticTemperature
)

// Database selects which thermodynamic coefficient convention applies.
type Database int

const (
	THERMO Database = iota
	HSC
)

// Minimization selects the per-species objective coefficient: the
// dimensionless Gibbs potential, or entropy, in which case the whole
// objective is negated.
type Minimization int

const (
	Gibbs Minimization = iota
	Entropy
)

// LiquidSolution selects whether liquid species mix ideally as one phase
// or are each treated as an independent condensed species.
type LiquidSolution int

const (
	NoLiquidSolution LiquidSolution = iota
	OneLiquidSolution
)

// Extrapolation selects whether species outside their validity temperature
// range still participate in the equilibrium (with a zero upper bound) or
// are counted normally.
type Extrapolation int

const (
	ExtrapolationEnable Extrapolation = iota
	ExtrapolationDisable
)

// HInitialBy selects how the initial enthalpy of the adiabatic-temperature
// solver is computed from the as-loaded composition.
type HInitialBy int

const (
	// AsChecked sums n_i * H(T_init) for the species as loaded.
	AsChecked HInitialBy = iota
	// ByMinimumGibbsEnergy substitutes each input species by the
	// stoichiometrically identical species with the lowest G at T_init
	// before summing H.
	ByMinimumGibbsEnergy
)

// TemperatureUnit is the unit a caller specifies temperature in; core
// arithmetic always runs in Kelvin.
type TemperatureUnit int

const (
	Kelvin TemperatureUnit = iota
	Celsius
	Fahrenheit
)

// ToKelvin converts t, expressed in unit u, to Kelvin.
func ToKelvin(t float64, u TemperatureUnit) float64 {
	switch u {
	case Celsius:
		return t + 273.15
	case Fahrenheit:
		return (t + 459.67) * 5 / 9
	default:
		return t
	}
}

// FromKelvin converts a Kelvin value t to unit u.
func FromKelvin(t float64, u TemperatureUnit) float64 {
	switch u {
	case Celsius:
		return t - 273.15
	case Fahrenheit:
		return t*9/5 - 459.67
	default:
		return t
	}
}

// CompositionUnit selects how the group-2 composition-sweep value v is to
// be interpreted (§4.4's composition-unit table).
type CompositionUnit int

const (
	AtomPercent CompositionUnit = iota
	WeightPercent
	Mole
	Gram
)

// ShowPhases is a bitmask subset of {gas, liquid, solid} used to filter
// which input species participate in a run.
type ShowPhases int

const (
	ShowGas ShowPhases = 1 << iota
	ShowLiquid
	ShowSolid
)

// Range is an inclusive (start, stop, step) sweep specification in the
// unit named by the owning Parameters field.
type Range struct {
	Start, Stop, Step float64
}

// Parameters bundles every enumerated run-wide option of the equilibrium
// and adiabatic-temperature core.
type Parameters struct {
	Workmode       Workmode        `json:"workmode"`
	Target         Target          `json:"target"`
	Database       Database        `json:"database"`
	Minimization   Minimization    `json:"minimization"`
	LiquidSolution LiquidSolution  `json:"liquid_solution"`
	Extrapolation  Extrapolation   `json:"extrapolation"`
	HInitialBy     HInitialBy      `json:"h_initial_by"`
	TempUnit       TemperatureUnit `json:"temperature_unit"`
	CompUnit       CompositionUnit `json:"composition_unit"`
	ShowPhases     ShowPhases      `json:"show_phases"`

	// InitialTemp is the single-point or sweep-start temperature, in
	// TempUnit.
	InitialTemp float64   `json:"initial_temperature"`
	TempSweep   Range     `json:"temperature_sweep"`
	CompSweep   Range     `json:"composition_sweep"`

	// AtAccuracy is the number of decimal digits of temperature
	// precision the adiabatic bisection converges to: epsilon_T =
	// 10^(-AtAccuracy)/2.
	AtAccuracy int `json:"at_accuracy"`

	// Threads bounds the worker-pool size used to process the task
	// array; Threads <= 0 means "use GOMAXPROCS".
	Threads int `json:"threads"`
}

// HasTempSweep reports whether w enumerates a temperature-sweep axis.
func (w Workmode) HasTempSweep() bool {
	return w == TempRange || w == TempCompRange
}

// HasCompSweep reports whether w enumerates a composition-sweep axis.
func (w Workmode) HasCompSweep() bool {
	return w == CompRange || w == TempCompRange
}
