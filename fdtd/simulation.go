// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"github.com/cpmech/gofdtd/grid"
	"gonum.org/v1/gonum/floats"
)

// Simulation holds the state of a Yee grid
//  Note: materials are isotropic. Ca and Cb are shared by Ex, Ey and Ez; Da and Db are shared
//        by Hx, Hy and Hz
type Simulation struct {

	// input
	Cfg Config // configuration (validated)

	// fields
	Ex, Ey, Ez *grid.Grid3D[float64]
	Hx, Hy, Hz *grid.Grid3D[float64]

	// update coefficients
	Ca, Cb *grid.Grid3D[float64] // E family
	Da, Db *grid.Grid3D[float64] // H family

	// CPML
	PmlX, PmlY, PmlZ *CpmlProfile // per axis profiles
	PmlEnabled       bool         // apply corrections

	// auxiliary fields; e.g. PsiExY convolves dHz/dy for Ex
	PsiExY, PsiExZ *CpmlState
	PsiEyX, PsiEyZ *CpmlState
	PsiEzX, PsiEzY *CpmlState
	PsiHxY, PsiHxZ *CpmlState
	PsiHyX, PsiHyZ *CpmlState
	PsiHzX, PsiHzY *CpmlState

	// excitation and probes
	Sources  []Source
	Monitors []*Monitor

	// state
	TimeStep int // number of completed steps

	// materials
	matIds  *grid.Grid3D[uint8]
	palette []Material
}

// NewSimulation allocates all arrays, sets vacuum everywhere and builds the CPML tables
func NewSimulation(cfg *Config) (o *Simulation, err error) {

	// check
	err = cfg.Validate()
	if err != nil {
		return
	}

	// fields
	o = new(Simulation)
	o.Cfg = *cfg
	nx, ny, nz := cfg.Nx, cfg.Ny, cfg.Nz
	o.Ex, o.Ey, o.Ez = grid.New[float64](nx, ny, nz), grid.New[float64](nx, ny, nz), grid.New[float64](nx, ny, nz)
	o.Hx, o.Hy, o.Hz = grid.New[float64](nx, ny, nz), grid.New[float64](nx, ny, nz), grid.New[float64](nx, ny, nz)

	// vacuum
	ca, cb, da, db := Vacuum().Coefficients(cfg.Dt, cfg.Dx)
	o.Ca, o.Cb = grid.NewFilled(nx, ny, nz, ca), grid.NewFilled(nx, ny, nz, cb)
	o.Da, o.Db = grid.NewFilled(nx, ny, nz, da), grid.NewFilled(nx, ny, nz, db)
	o.matIds = grid.New[uint8](nx, ny, nz)
	o.palette = []Material{Vacuum()}

	// CPML
	o.PmlX = NewCpmlProfile(nx, cfg.Dx, cfg.Dt, cfg.Pml)
	o.PmlY = NewCpmlProfile(ny, cfg.Dy, cfg.Dt, cfg.Pml)
	o.PmlZ = NewCpmlProfile(nz, cfg.Dz, cfg.Dt, cfg.Pml)
	o.PmlEnabled = true
	state := func(p *CpmlProfile) *CpmlState { return NewCpmlState(nx, ny, nz, p) }
	o.PsiExY, o.PsiExZ = state(o.PmlY), state(o.PmlZ)
	o.PsiEyX, o.PsiEyZ = state(o.PmlX), state(o.PmlZ)
	o.PsiEzX, o.PsiEzY = state(o.PmlX), state(o.PmlY)
	o.PsiHxY, o.PsiHxZ = state(o.PmlY), state(o.PmlZ)
	o.PsiHyX, o.PsiHyZ = state(o.PmlX), state(o.PmlZ)
	o.PsiHzX, o.PsiHzY = state(o.PmlX), state(o.PmlY)
	return
}

// SetPmlEnabled switches the CPML corrections on or off
func (o *Simulation) SetPmlEnabled(enabled bool) {
	o.PmlEnabled = enabled
}

// Field returns the array of a component
func (o *Simulation) Field(c Component) *grid.Grid3D[float64] {
	switch c {
	case Ex:
		return o.Ex
	case Ey:
		return o.Ey
	case Ez:
		return o.Ez
	case Hx:
		return o.Hx
	case Hy:
		return o.Hy
	}
	return o.Hz
}

// Time returns the current simulated time
func (o *Simulation) Time() float64 {
	return float64(o.TimeStep) * o.Cfg.Dt
}

// Energy returns the sum of squares of all six field arrays
func (o *Simulation) Energy() (res float64) {
	for _, f := range []*grid.Grid3D[float64]{o.Ex, o.Ey, o.Ez, o.Hx, o.Hy, o.Hz} {
		res += floats.Dot(f.Data, f.Data)
	}
	return
}

// FieldSlice extracts a 2D cut of a component
//  Input:
//   c     -- component
//   plane -- orientation
//   index -- position along the normal axis (clamped to the grid)
//  Output:
//   data -- values; row-major with the second plane axis as rows
//   w, h -- width and height; e.g. (Nx, Nz) for XZ
func (o *Simulation) FieldSlice(c Component, plane Plane, index int) (data []float64, w, h int) {
	f := o.Field(c)
	nx, ny, nz := o.Cfg.Nx, o.Cfg.Ny, o.Cfg.Nz
	clamp := func(v, n int) int {
		if v < 0 {
			return 0
		}
		if v >= n {
			return n - 1
		}
		return v
	}
	switch plane {
	case PlaneXY:
		k := clamp(index, nz)
		w, h = nx, ny
		data = make([]float64, 0, w*h)
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				data = append(data, f.Data[f.Idx(i, j, k)])
			}
		}
	case PlaneYZ:
		i := clamp(index, nx)
		w, h = ny, nz
		data = make([]float64, 0, w*h)
		for k := 0; k < nz; k++ {
			for j := 0; j < ny; j++ {
				data = append(data, f.Data[f.Idx(i, j, k)])
			}
		}
	default:
		j := clamp(index, ny)
		w, h = nx, nz
		data = make([]float64, 0, w*h)
		for k := 0; k < nz; k++ {
			for i := 0; i < nx; i++ {
				data = append(data, f.Data[f.Idx(i, j, k)])
			}
		}
	}
	return
}
