// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// newPulseSim returns a simulation with a Gaussian Ez source and an Ez monitor at the centre
func newPulseSim(tst *testing.T, n int, cell float64, pml int, fcen, fwidth float64) (sim *Simulation, midx int) {
	cfg := NewConfig(n, n, n, cell)
	cfg.Pml.Thickness = pml
	sim, err := NewSimulation(cfg)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	c := [3]int{n / 2, n / 2, n / 2}
	sim.AddSource(GaussianPulse{Fcen: fcen, Fwidth: fwidth, Amplitude: 1, Pos: c, Component: Ez})
	midx = sim.AddMonitor(c, Ez)
	return
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. vacuum propagation")

	sim, midx := newPulseSim(tst, 20, 1e-2, 5, 1e9, 0.5e9)
	for i := 0; i < 100; i++ {
		sim.Step()
	}
	chk.Int(tst, "time step", sim.TimeStep, 100)
	chk.Float64(tst, "time", 1e-20, sim.Time(), 100*sim.Cfg.Dt)

	samples := sim.MonitorSamples(midx)
	chk.Int(tst, "nsamples", len(samples), 100)
	nonzero := false
	for _, s := range samples {
		if math.Abs(s) > 1e-10 {
			nonzero = true
			break
		}
	}
	if !nonzero {
		tst.Errorf("source must excite the monitor")
	}
	if sim.MonitorSamples(1) != nil || sim.MonitorSamples(-1) != nil {
		tst.Errorf("invalid monitor index must give nil")
	}

	// the wave must have left the source cell
	if sim.Ez.At(13, 10, 10) == 0 || sim.Hy.At(12, 10, 10) == 0 {
		tst.Errorf("fields away from the source must be non-zero")
	}
	io.Pforan("energy = %g\n", sim.Energy())
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. PML absorption")

	const n, cell, steps = 40, 1e-2, 300

	// with PML
	simA, _ := newPulseSim(tst, n, cell, 8, 1e9, 0.8e9)

	// reflecting walls
	simB, _ := newPulseSim(tst, n, cell, 0, 1e9, 0.8e9)
	simB.SetPmlEnabled(false)

	for i := 0; i < steps; i++ {
		simA.Step()
		simB.Step()
	}
	ea, eb := simA.Energy(), simB.Energy()
	io.Pforan("energy: with pml = %g, without pml = %g\n", ea, eb)
	if ea >= 0.5*eb {
		tst.Errorf("PML must absorb energy: %g ≥ 0.5・%g", ea, eb)
	}
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. determinism")

	run := func() ([]float64, []float64) {
		sim, midx := newPulseSim(tst, 16, 1e-2, 4, 1e9, 0.8e9)
		sim.SetMaterialRegion(3, 6, 3, 6, 3, 6, Dielectric(3))
		sim.AddSource(NewContinuousWave(2e9, 0.1, [3]int{5, 9, 7}, Hx))
		sim.AddMonitor([3]int{10, 10, 10}, Hy)
		for i := 0; i < 80; i++ {
			sim.Step()
		}
		return sim.MonitorSamples(midx), sim.MonitorSamples(1)
	}
	a1, b1 := run()
	a2, b2 := run()
	chk.Array(tst, "Ez", 0, a1, a2)
	chk.Array(tst, "Hy", 0, b1, b2)
}

func Test_sim04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim04. run control")

	// full run
	sim, midx := newPulseSim(tst, 12, 1e-2, 3, 1e9, 0.8e9)
	sim.Cfg.TotalTime = 50.5 * sim.Cfg.Dt
	sim.Run()
	chk.Int(tst, "run steps", sim.TimeStep, 51)
	chk.Int(tst, "run samples", len(sim.MonitorSamples(midx)), 51)

	// threshold 0 never triggers
	sim, midx = newPulseSim(tst, 12, 1e-2, 3, 1e9, 0.8e9)
	nsteps := sim.RunUntilDecay(midx, 0, 150)
	chk.Int(tst, "decay(0) steps", nsteps, 150)
	chk.Int(tst, "decay(0) time step", sim.TimeStep, 150)

	// loose threshold
	sim, midx = newPulseSim(tst, 12, 1e-2, 3, 1e9, 0.8e9)
	nsteps = sim.RunUntilDecay(midx, 0.5, 2000)
	io.Pforan("decay(0.5) stopped after %d steps\n", nsteps)
	if nsteps <= 101 || nsteps > 2000 {
		tst.Errorf("decay run must stop after step 100 and at most at 2000. %d is incorrect", nsteps)
	}
	samples := sim.MonitorSamples(midx)
	chk.Int(tst, "decay(0.5) samples", len(samples), nsteps)
	if nsteps < 2000 {
		peak := 0.0
		for _, s := range samples[:len(samples)-1] {
			peak = math.Max(peak, math.Abs(s))
		}
		if last := math.Abs(samples[len(samples)-1]); last >= 0.5*peak {
			tst.Errorf("stopping sample %g must be below half of the peak %g", last, peak)
		}
	}

	// invalid monitor: runs to the end
	sim, _ = newPulseSim(tst, 12, 1e-2, 3, 1e9, 0.8e9)
	chk.Int(tst, "no monitor", sim.RunUntilDecay(7, 0.5, 120), 120)
}

func Test_sim05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim05. cancellation")

	// canceled context
	sim, _ := newPulseSim(tst, 10, 1e-2, 2, 1e9, 0.8e9)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := sim.RunContext(ctx, 100, nil)
	if !errors.Is(err, ErrCanceled) {
		tst.Errorf("ErrCanceled expected; got %v", err)
	}
	chk.Int(tst, "steps after cancel", sim.TimeStep, 0)

	// hook stops
	var calls []int
	err = sim.RunContext(context.Background(), 100, func(step, nsteps int) bool {
		calls = append(calls, step)
		return step < 5
	})
	io.Pforan("err = %v\n", err)
	if !errors.Is(err, ErrCanceled) {
		tst.Errorf("ErrCanceled expected; got %v", err)
	}
	chk.Int(tst, "steps after hook", sim.TimeStep, 5)
	chk.Ints(tst, "hook calls", calls, []int{1, 2, 3, 4, 5})

	// complete
	err = sim.RunContext(context.Background(), 7, nil)
	if err != nil {
		tst.Errorf("%v", err)
	}
	chk.Int(tst, "steps", sim.TimeStep, 12)
}

func Test_sim06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim06. sources and slices")

	// sources
	g := GaussianPulse{Fcen: 1e9, Fwidth: 0.5e9, Amplitude: 2}
	tau := 1 / (math.Pi * 0.5e9)
	chk.Float64(tst, "gauss(t0)", 1e-12, g.Value(4*tau), 0)
	chk.Float64(tst, "gauss(t0+T/4)", 1e-12, g.Value(4*tau+0.25e-9), 2*math.Exp(-math.Pow(0.25e-9/tau, 2)))
	w := NewContinuousWave(1e9, 3, [3]int{}, Ez)
	chk.Float64(tst, "cw(T/4)", 1e-12, w.Value(0.25e-9), 3)
	chk.Float64(tst, "cw(T/2)", 1e-12, w.Value(0.5e-9), 0)

	src, err := NewSource("gauss", dbf.NewParams(&dbf.P{N: "fcen", V: 1e9}, &dbf.P{N: "fwidth", V: 0.5e9}), [3]int{1, 2, 3}, Ey)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	cell := src.Cell()
	chk.Ints(tst, "cell", cell[:], []int{1, 2, 3})
	chk.Int(tst, "comp", int(src.Comp()), int(Ey))
	chk.Float64(tst, "amp", 1e-15, src.(GaussianPulse).Amplitude, 1)

	// cw and database functions
	src, err = NewSource("cw", dbf.NewParams(&dbf.P{N: "freq", V: 1e9}, &dbf.P{N: "amp", V: 2}), [3]int{}, Hz)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Float64(tst, "cw source(T/4)", 1e-12, src.Value(0.25e-9), 2)
	src, err = NewSource("pulse", dbf.NewParams(
		&dbf.P{N: "ca", V: 0},
		&dbf.P{N: "cb", V: 5},
		&dbf.P{N: "ta", V: 1e-9},
		&dbf.P{N: "tb", V: 2e-9},
	), [3]int{4, 5, 6}, Ex)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	cell = src.Cell()
	chk.Ints(tst, "pulse cell", cell[:], []int{4, 5, 6})
	chk.Int(tst, "pulse comp", int(src.Comp()), int(Ex))
	chk.Float64(tst, "pulse(0)", 1e-15, src.Value(0), 0)
	chk.Float64(tst, "pulse(2ns)", 1e-12, src.Value(2e-9), 5)
	chk.Float64(tst, "pulse(4ns)", 1e-15, src.Value(4e-9), 0)
	src, err = NewSource("sin", dbf.NewParams(&dbf.P{N: "a", V: 4}, &dbf.P{N: "b/pi", V: 1e9}, &dbf.P{N: "c", V: 1}), [3]int{}, Ez)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Float64(tst, "sin(0.5ns)", 1e-12, src.Value(0.5e-9), 5)

	// errors
	if _, err = NewSource("cw", dbf.NewParams(&dbf.P{N: "amp", V: 2}), [3]int{}, Ez); err == nil {
		tst.Errorf("missing frequency must fail")
	}
	if _, err = NewSource("gauss", dbf.NewParams(&dbf.P{N: "fcen", V: 1e9}, &dbf.P{N: "fwidth", V: 0}), [3]int{}, Ez); err == nil {
		tst.Errorf("zero width must fail")
	}
	if _, err = NewSource("chirp", nil, [3]int{}, Ez); err == nil {
		tst.Errorf("unknown kind must fail")
	}
	if _, err = NewSource("sin", dbf.NewParams(&dbf.P{N: "a", V: 1}), [3]int{}, Ez); err == nil {
		tst.Errorf("sin without b and c must fail")
	}
	chk.Strings(tst, "kinds", SourceKinds(), []string{"cw", "gauss"})

	// slices
	cfg := NewConfig(4, 3, 2, 1e-2)
	cfg.Pml.Thickness = 0
	sim, err := NewSimulation(cfg)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	for n := range sim.Ez.Data {
		sim.Ez.Data[n] = float64(n)
	}
	xz, w1, h1 := sim.FieldSlice(Ez, PlaneXZ, 1)
	chk.Ints(tst, "xz dims", []int{w1, h1}, []int{4, 2})
	chk.Array(tst, "xz", 0, xz, []float64{4, 5, 6, 7, 16, 17, 18, 19})
	xy, w2, h2 := sim.FieldSlice(Ez, PlaneXY, 1)
	chk.Ints(tst, "xy dims", []int{w2, h2}, []int{4, 3})
	chk.Array(tst, "xy", 0, xy, []float64{12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23})
	yz, w3, h3 := sim.FieldSlice(Ez, PlaneYZ, 99)
	chk.Ints(tst, "yz dims", []int{w3, h3}, []int{3, 2})
	chk.Array(tst, "yz", 0, yz, []float64{3, 7, 11, 15, 19, 23})
}
