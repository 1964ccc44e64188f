// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package voxel implements material-id grids obtained from triangle meshes
package voxel

import (
	"math"

	"github.com/cpmech/gofdtd/grid"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/r3"
)

// Material holds the electromagnetic properties of one palette entry
type Material struct {
	Id           uint8   `json:"id"`           // palette index
	Name         string  `json:"name"`         // name of material; e.g. "air", "pec", "fr4"
	Permittivity float64 `json:"permittivity"` // relative permittivity εr
	Permeability float64 `json:"permeability"` // relative permeability μr
	Conductivity float64 `json:"conductivity"` // electric conductivity [S/m]
	IsPec        bool    `json:"pec"`          // perfect electric conductor
}

// Air returns the default (id = 0) material
func Air() *Material {
	return &Material{Id: 0, Name: "air", Permittivity: 1, Permeability: 1}
}

// Pec returns a perfect electric conductor
func Pec() *Material {
	return &Material{Id: 1, Name: "pec", Permittivity: 1, Permeability: 1, Conductivity: math.Inf(1), IsPec: true}
}

// Metallic tells whether this material should be treated as a perfect conductor
func (o *Material) Metallic() bool {
	return o.IsPec || o.Conductivity > 1e6
}

// Grid holds material ids on a regular voxel grid
//  Note: lengths (Origin, VoxelSize) are in the units of the mesh coordinates, i.e. millimetres
type Grid struct {
	Nx, Ny, Nz int                 // number of voxels along each axis
	Origin     [3]float64          // min corner
	VoxelSize  float64             // edge length of cubic voxels
	Ids        *grid.Grid3D[uint8] // material id of each voxel
	Materials  []*Material         // palette; Materials[0] is air
}

// NewGrid returns a new grid covering the box [origin, origin+size] filled with air
func NewGrid(origin, size [3]float64, voxelSize float64) (o *Grid) {
	if voxelSize <= 0 {
		chk.Panic("voxel size must be positive. %g is invalid", voxelSize)
	}
	o = new(Grid)
	o.Origin = origin
	o.VoxelSize = voxelSize
	o.Nx = int(math.Ceil(size[0] / voxelSize))
	o.Ny = int(math.Ceil(size[1] / voxelSize))
	o.Nz = int(math.Ceil(size[2] / voxelSize))
	o.Ids = grid.New[uint8](o.Nx, o.Ny, o.Nz)
	o.Materials = []*Material{Air()}
	return
}

// NewGridDims returns a new grid with given number of voxels filled with air
func NewGridDims(nx, ny, nz int, voxelSize float64) (o *Grid) {
	if voxelSize <= 0 {
		chk.Panic("voxel size must be positive. %g is invalid", voxelSize)
	}
	o = new(Grid)
	o.VoxelSize = voxelSize
	o.Nx, o.Ny, o.Nz = nx, ny, nz
	o.Ids = grid.New[uint8](nx, ny, nz)
	o.Materials = []*Material{Air()}
	return
}

// Center returns the centre of voxel (x,y,z)
func (o *Grid) Center(x, y, z int) r3.Vec {
	return r3.Vec{
		X: o.Origin[0] + (float64(x)+0.5)*o.VoxelSize,
		Y: o.Origin[1] + (float64(y)+0.5)*o.VoxelSize,
		Z: o.Origin[2] + (float64(z)+0.5)*o.VoxelSize,
	}
}

// Set sets the material id of voxel (x,y,z). Out-of-range voxels are ignored
func (o *Grid) Set(x, y, z int, id uint8) {
	if o.Ids.Inside(x, y, z) {
		o.Ids.Set(x, y, z, id)
	}
}

// Get returns the material id of voxel (x,y,z). Out-of-range voxels are air
func (o *Grid) Get(x, y, z int) uint8 {
	if o.Ids.Inside(x, y, z) {
		return o.Ids.At(x, y, z)
	}
	return 0
}

// Material returns the palette entry of voxel (x,y,z)
func (o *Grid) Material(x, y, z int) *Material {
	return o.Materials[o.Get(x, y, z)]
}

// AddMaterial adds a material to the palette and returns its id. A material with the same name
// already in the palette is reused
func (o *Grid) AddMaterial(mat *Material) uint8 {
	for i, m := range o.Materials {
		if m.Name == mat.Name {
			return uint8(i)
		}
	}
	if len(o.Materials) > math.MaxUint8 {
		chk.Panic("voxel palette is full; cannot add material %q", mat.Name)
	}
	cpy := *mat
	cpy.Id = uint8(len(o.Materials))
	o.Materials = append(o.Materials, &cpy)
	return cpy.Id
}

// Count returns the number of voxels with given material id
func (o *Grid) Count(id uint8) (n int) {
	for _, v := range o.Ids.Data {
		if v == id {
			n++
		}
	}
	return
}
