// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

package main

import (
	"github.com/cpmech/gofdtd/fdtd"
	"github.com/cpmech/gofdtd/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// prints the voxelised geometry and the grid of a study without running it
func main() {

	// study
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	study, err := inp.ReadStudy(fnamepath, "", false, false)
	if err != nil {
		chk.Panic("%v", err)
	}
	g := study.Grid
	io.Pf("%s: %q\n", study.Key, study.Data.Desc)
	io.Pf("voxels: %d x %d x %d of %g mm\n", g.Nx, g.Ny, g.Nz, g.VoxelSize)
	for id, m := range g.Materials {
		io.Pforan("%3d %-10s eps=%-6g mu=%-6g sigma=%-10g pec=%-5v count=%d\n",
			id, m.Name, m.Permittivity, m.Permeability, m.Conductivity, m.Metallic(), g.Count(uint8(id)))
	}

	// grid
	main, err := fdtd.NewMainStudy(study, false)
	if err != nil {
		chk.Panic("%v", err)
	}
	c := main.Sim.Cfg
	io.Pf("grid: %d x %d x %d cells (%d) with %d PML cells\n", c.Nx, c.Ny, c.Nz, c.Ncells(), c.Pml.Thickness)
	io.Pf("dt = %g s (CFL limit %g s); %d steps\n", c.Dt, fdtd.CflLimit(c.Dx, c.Dy, c.Dz), c.NumSteps())
	for i, src := range main.Sim.Sources {
		io.Pf("source %d: %T at %v\n", i, src, src.Cell())
	}
	for i, m := range main.Sim.Monitors {
		io.Pf("monitor %d: %v at %v\n", i, m.Component, m.Pos)
	}
}
