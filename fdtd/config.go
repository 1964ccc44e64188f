// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// PmlConfig holds the parameters of the graded CFS-PML
type PmlConfig struct {
	Thickness int     // number of cells at each boundary
	SigmaMax  float64 // maximum conductivity; computed by OptimalSigmaMax if ≤ 0
	Order     float64 // polynomial grading order; typically 3-4
	KappaMax  float64 // maximum coordinate stretching; typically 1-15
	AlphaMax  float64 // maximum complex frequency shift; typically 0-0.3
}

// SetDefault sets default values
func (o *PmlConfig) SetDefault() {
	o.Thickness = 10
	o.SigmaMax = 0
	o.Order = 3
	o.KappaMax = 1
	o.AlphaMax = 0
}

// OptimalSigmaMax returns (m+1)/(150·π·dx), giving about -40 dB of reflection for typical
// PML thicknesses
func OptimalSigmaMax(dx, order float64) float64 {
	return (order + 1.0) / (150.0 * math.Pi * dx)
}

// Config holds the grid dimensions and time stepping data
type Config struct {
	Nx, Ny, Nz int       // number of cells
	Dx, Dy, Dz float64   // cell sizes [m]
	Dt         float64   // time step [s]
	Pml        PmlConfig // absorbing boundaries
	TotalTime  float64   // total simulated time [s]
}

// NewConfig returns a configuration with cubic cells and a CFL-stable time step
func NewConfig(nx, ny, nz int, cellSize float64) (o *Config) {
	o = new(Config)
	o.Nx, o.Ny, o.Nz = nx, ny, nz
	o.Dx, o.Dy, o.Dz = cellSize, cellSize, cellSize
	o.Dt = CflSafety * CflLimit(o.Dx, o.Dy, o.Dz)
	o.Pml.SetDefault()
	return
}

// CflLimit returns the largest stable time step 1/(c·sqrt(1/dx²+1/dy²+1/dz²))
func CflLimit(dx, dy, dz float64) float64 {
	return 1.0 / (C0 * math.Sqrt(1.0/(dx*dx)+1.0/(dy*dy)+1.0/(dz*dz)))
}

// NumSteps returns the number of steps needed to cover TotalTime
func (o *Config) NumSteps() int {
	if o.TotalTime <= 0 {
		return 0
	}
	return int(math.Ceil(o.TotalTime / o.Dt))
}

// Ncells returns the total number of cells
func (o *Config) Ncells() int {
	return o.Nx * o.Ny * o.Nz
}

// Validate checks dimensions, cell sizes, stability and PML bands
func (o *Config) Validate() (err error) {
	if o.Nx < 2 || o.Ny < 2 || o.Nz < 2 {
		return chk.Err("grid must have at least 2 cells along each axis. [%d,%d,%d] is invalid", o.Nx, o.Ny, o.Nz)
	}
	if o.Dx <= 0 || o.Dy <= 0 || o.Dz <= 0 {
		return chk.Err("cell sizes must be positive. [%g,%g,%g] is invalid", o.Dx, o.Dy, o.Dz)
	}
	if o.Dt <= 0 {
		return chk.Err("time step must be positive. dt=%g is invalid", o.Dt)
	}
	if lim := CflLimit(o.Dx, o.Dy, o.Dz); o.Dt > lim {
		return chk.Err("time step dt=%g violates the CFL stability limit %g (cells %g x %g x %g)", o.Dt, lim, o.Dx, o.Dy, o.Dz)
	}
	t := o.Pml.Thickness
	if t < 0 {
		return chk.Err("PML thickness must be non-negative. %d is invalid", t)
	}
	if 2*t >= o.Nx || 2*t >= o.Ny || 2*t >= o.Nz {
		return chk.Err("PML bands of %d cells overlap in grid [%d,%d,%d]", t, o.Nx, o.Ny, o.Nz)
	}
	if t > 0 && o.Pml.Order <= 0 {
		return chk.Err("PML grading order must be positive. %g is invalid", o.Pml.Order)
	}
	if o.TotalTime < 0 {
		return chk.Err("total time must be non-negative. %g is invalid", o.TotalTime)
	}
	return
}
