// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_config01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config01. CFL time step")

	cfg := NewConfig(50, 50, 50, 1e-3)
	io.Pforan("dt = %g\n", cfg.Dt)
	if cfg.Dt <= 0 || cfg.Dt >= 2e-12 {
		tst.Errorf("dt=%g is incorrect for 1 mm cells", cfg.Dt)
	}
	chk.Float64(tst, "dt", 1e-25, cfg.Dt, 0.9/(C0*math.Sqrt(3e6)))
	chk.Float64(tst, "limit", 1e-25, CflLimit(1e-3, 1e-3, 1e-3), cfg.Dt/CflSafety)
	chk.Int(tst, "thickness", cfg.Pml.Thickness, 10)
	chk.Float64(tst, "order", 1e-15, cfg.Pml.Order, 3)
	chk.Float64(tst, "kappa", 1e-15, cfg.Pml.KappaMax, 1)
	chk.Int(tst, "ncells", cfg.Ncells(), 125000)

	// steps
	chk.Int(tst, "nsteps(0)", cfg.NumSteps(), 0)
	cfg.TotalTime = 10.5 * cfg.Dt
	chk.Int(tst, "nsteps(10.5dt)", cfg.NumSteps(), 11)
	cfg.TotalTime = 1e-9
	chk.Int(tst, "nsteps(1ns)", cfg.NumSteps(), int(math.Ceil(1e-9/cfg.Dt)))

	// sigma max
	chk.Float64(tst, "sigma max", 1e-12, OptimalSigmaMax(1e-2, 3), 4/(150*math.Pi*1e-2))
}

func Test_config02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config02. validation")

	if err := NewConfig(20, 20, 20, 1e-2).Validate(); err != nil {
		tst.Errorf("default configuration must be valid: %v", err)
	}

	cases := []struct {
		name string
		edit func(c *Config)
	}{
		{"one cell", func(c *Config) { c.Ny = 1 }},
		{"zero cells", func(c *Config) { c.Nx = 0 }},
		{"negative cell size", func(c *Config) { c.Dz = -1e-2 }},
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"unstable dt", func(c *Config) { c.Dt = 1.01 * CflLimit(c.Dx, c.Dy, c.Dz) }},
		{"overlapping pml", func(c *Config) { c.Pml.Thickness = 10 }},
		{"negative pml", func(c *Config) { c.Pml.Thickness = -1 }},
		{"bad order", func(c *Config) { c.Pml.Order = 0 }},
		{"negative time", func(c *Config) { c.TotalTime = -1 }},
	}
	for _, c := range cases {
		cfg := NewConfig(20, 20, 20, 1e-2)
		cfg.Pml.Thickness = 4
		c.edit(cfg)
		err := cfg.Validate()
		if err == nil {
			tst.Errorf("%s: error expected", c.name)
			continue
		}
		io.Pforan("%-20s: %v\n", c.name, err)
		if _, err = NewSimulation(cfg); err == nil {
			tst.Errorf("%s: NewSimulation must fail", c.name)
		}
	}

	// exactly at the limit is fine
	cfg := NewConfig(20, 20, 20, 1e-2)
	cfg.Dt = CflLimit(cfg.Dx, cfg.Dy, cfg.Dz)
	if err := cfg.Validate(); err != nil {
		tst.Errorf("dt at the CFL limit must be accepted: %v", err)
	}
}

func Test_config03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config03. components and planes")

	for _, c := range []Component{Ex, Ey, Ez, Hx, Hy, Hz} {
		p, err := ParseComponent(c.String())
		if err != nil {
			tst.Errorf("%v", err)
			continue
		}
		chk.Int(tst, c.String(), int(p), int(c))
	}
	if c, _ := ParseComponent("hy"); c != Hy {
		tst.Errorf("component names are case insensitive")
	}
	if _, err := ParseComponent("Ew"); err == nil {
		tst.Errorf("invalid component must fail")
	}
	if !Ez.IsElectric() || Hx.IsElectric() {
		tst.Errorf("IsElectric is incorrect")
	}
	chk.Ints(tst, "planes", []int{int(ParsePlane("xy")), int(ParsePlane("YZ")), int(ParsePlane("XZ")), int(ParsePlane("what"))},
		[]int{int(PlaneXY), int(PlaneYZ), int(PlaneXZ), int(PlaneXZ)})
	if PlaneYZ.String() != "YZ" {
		tst.Errorf("plane name is incorrect")
	}
}
