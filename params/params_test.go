// Copyright 2024 The ATC-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"encoding/json"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_Parameters_jsonRoundTrip(tst *testing.T) {
	chk.PrintTitle("Parameters survives a JSON encode/decode round trip")
	p := Parameters{
		Workmode:       TempCompRange,
		Target:         AdiabaticTemperature,
		Database:       HSC,
		Minimization:   Entropy,
		LiquidSolution: OneLiquidSolution,
		Extrapolation:  ExtrapolationDisable,
		HInitialBy:     ByMinimumGibbsEnergy,
		TempUnit:       Celsius,
		CompUnit:       WeightPercent,
		ShowPhases:     ShowGas | ShowLiquid,
		InitialTemp:    25,
		TempSweep:      Range{Start: 300, Stop: 3000, Step: 100},
		CompSweep:      Range{Start: 0, Stop: 50, Step: 5},
		AtAccuracy:     4,
		Threads:        8,
	}
	data, err := json.Marshal(p)
	if err != nil {
		tst.Fatalf("marshal: %v", err)
	}
	var got Parameters
	if err := json.Unmarshal(data, &got); err != nil {
		tst.Fatalf("unmarshal: %v", err)
	}
	if got != p {
		tst.Errorf("round trip mismatch:\n got=%+v\nwant=%+v", got, p)
	}
}

func Test_Workmode_sweepPredicates(tst *testing.T) {
	chk.PrintTitle("workmode sweep-axis predicates")
	cases := []struct {
		w              Workmode
		wantTempSweep  bool
		wantCompSweep  bool
	}{
		{SinglePoint, false, false},
		{TempRange, true, false},
		{CompRange, false, true},
		{TempCompRange, true, true},
	}
	for _, c := range cases {
		if got := c.w.HasTempSweep(); got != c.wantTempSweep {
			tst.Errorf("workmode %v: HasTempSweep = %v, want %v", c.w, got, c.wantTempSweep)
		}
		if got := c.w.HasCompSweep(); got != c.wantCompSweep {
			tst.Errorf("workmode %v: HasCompSweep = %v, want %v", c.w, got, c.wantCompSweep)
		}
	}
}

func Test_ShowPhases_bitmask(tst *testing.T) {
	chk.PrintTitle("show_phases bitmask composition")
	all := ShowGas | ShowLiquid | ShowSolid
	if all&ShowGas == 0 || all&ShowLiquid == 0 || all&ShowSolid == 0 {
		tst.Errorf("combined mask should include all three phases, got %v", all)
	}
	gasOnly := ShowGas
	if gasOnly&ShowLiquid != 0 {
		tst.Errorf("gas-only mask must not include liquid bit")
	}
}
