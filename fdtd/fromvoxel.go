// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"github.com/cpmech/gofdtd/voxel"
)

// MaterialFromVoxel converts a palette entry. Metallic materials collapse to Pec
func MaterialFromVoxel(m *voxel.Material) Material {
	if m.Metallic() {
		return Pec()
	}
	return Material{EpsR: m.Permittivity, MuR: m.Permeability, SigmaE: m.Conductivity}
}

// FromVoxelGrid returns a configuration and a simulation enclosing the voxel grid with
// pmlThickness cells of padding on every side
//  Note: the cell size equals the voxel size converted from mm to m; TotalTime is zero
func FromVoxelGrid(vg *voxel.Grid, pmlThickness int) (o *Simulation, err error) {

	// configuration
	t := pmlThickness
	cfg := NewConfig(vg.Nx+2*t, vg.Ny+2*t, vg.Nz+2*t, vg.VoxelSize*1e-3)
	cfg.Pml.Thickness = t
	o, err = NewSimulation(cfg)
	if err != nil {
		return
	}

	// materials
	mats := make([]Material, len(vg.Materials))
	for i, m := range vg.Materials {
		mats[i] = MaterialFromVoxel(m)
	}
	for z := 0; z < vg.Nz; z++ {
		for y := 0; y < vg.Ny; y++ {
			for x := 0; x < vg.Nx; x++ {
				id := vg.Get(x, y, z)
				if id == 0 {
					continue
				}
				o.SetMaterial(x+t, y+t, z+t, mats[id])
			}
		}
	}
	return
}
