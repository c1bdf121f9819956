// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	"testing"

	"github.com/alexonemore/atc-go/params"
	"github.com/cpmech/gosl/chk"
)

func argonRanges() []TempRange {
	return []TempRange{
		{TMin: 100, TMax: 1000, HRef: 0, SRef: 154.845,
			F1: 20.786, F2: 0, F3: 0, F4: 0, F5: 0, F6: 0, F7: 0, Phase: Gas},
		{TMin: 1000, TMax: 6000, HRef: 0, SRef: 154.845,
			F1: 20.786, F2: 0, F3: 0, F4: 0, F5: 0, F6: 0, F7: 0, Phase: Gas},
	}
}

func Test_SelectRange_boundaries(tst *testing.T) {
	chk.PrintTitle("SelectRange boundaries")
	ranges := argonRanges()

	r := SelectRange(1000, ranges)
	chk.Float64(tst, "at first TMax selects next range", 1e-15, r.TMin, 1000)

	r = SelectRange(6000, ranges)
	chk.Float64(tst, "at last TMax selects last range", 1e-15, r.TMin, 1000)

	r = SelectRange(50, ranges)
	chk.Float64(tst, "below first TMin selects first range", 1e-15, r.TMin, 100)

	r = SelectRange(500, ranges)
	chk.Float64(tst, "interior point selects containing range", 1e-15, r.TMin, 100)
}

func Test_Gurvich_ArMonatomicIdealGas(tst *testing.T) {
	chk.PrintTitle("Gurvich Cp of an ideal monatomic gas is ~constant")
	ranges := argonRanges()
	f300 := Gurvich(300, ranges)
	f1000 := Gurvich(900, ranges)
	// Gurvich Cp depends on f2..f7 only; with all of those zero, Cp is 0 at
	// every T (x-independent), whatever f1 holds.
	chk.Float64(tst, "Cp(300)", 1e-9, f300.Cp, 0)
	chk.Float64(tst, "Cp(900)", 1e-9, f1000.Cp, 0)
}

func Test_Gurvich_Cp_nonnegative(tst *testing.T) {
	chk.PrintTitle("Cp clamp")
	ranges := []TempRange{
		{TMin: 100, TMax: 6000, HRef: -100, SRef: 10,
			F1: -1000, F2: -1000, F3: -1000, F4: -1000, F5: -1000, F6: -1000, F7: -1000},
	}
	f := Gurvich(300, ranges)
	if f.Cp < 0 {
		tst.Errorf("Cp must be clamped to >= 0, got %v", f.Cp)
	}
}

func Test_TemperatureUnits_roundtrip(tst *testing.T) {
	chk.PrintTitle("temperature unit round trip")
	for _, u := range []params.TemperatureUnit{params.Kelvin, params.Celsius, params.Fahrenheit} {
		for _, t := range []float64{-40, 0, 25, 300, 1500} {
			k := params.ToKelvin(t, u)
			back := params.FromKelvin(k, u)
			chk.Float64(tst, "round trip", 1e-9, back, t)
		}
	}
}

func Test_HSC_continuous_at_T0(tst *testing.T) {
	chk.PrintTitle("HSC H and S equal reference values exactly at T0")
	ranges := []TempRange{
		{TMin: 100, TMax: 2000, HRef: -393.51, SRef: 213.79,
			F1: 44.14, F2: 9.04, F3: -8.54, F4: -3.06e-5, F5: 0, F6: 0},
	}
	f := HSC(T0, ranges)
	chk.Float64(tst, "H(T0)", 1e-9, f.H, -393.51)
	chk.Float64(tst, "S(T0)", 1e-9, f.S, 213.79)
}

func Test_EvaluatorFor_dispatch(tst *testing.T) {
	chk.PrintTitle("evaluator dispatch")
	ranges := argonRanges()
	ev := EvaluatorFor(params.THERMO)
	a := ev(300, ranges)
	b := Gurvich(300, ranges)
	chk.Float64(tst, "THERMO dispatch matches Gurvich", 1e-15, a.G, b.G)

	ev = EvaluatorFor(params.HSC)
	a = ev(300, ranges)
	b = HSC(300, ranges)
	chk.Float64(tst, "HSC dispatch matches HSC", 1e-15, a.G, b.G)
}
