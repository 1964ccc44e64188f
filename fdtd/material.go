// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"github.com/cpmech/gosl/chk"
)

// Material holds the (isotropic) properties of a medium
type Material struct {
	EpsR   float64 // relative permittivity
	MuR    float64 // relative permeability
	SigmaE float64 // electric conductivity [S/m]
	SigmaM float64 // magnetic conductivity [Ω/m]
	Pec    bool    // perfect electric conductor shortcut
}

// Vacuum returns the default medium
func Vacuum() Material { return Material{EpsR: 1, MuR: 1} }

// Air returns vacuum
func Air() Material { return Vacuum() }

// Copper returns an approximation for copper
func Copper() Material { return Material{EpsR: 1, MuR: 1, SigmaE: 5.8e7} }

// Dielectric returns a lossless dielectric
func Dielectric(epsR float64) Material { return Material{EpsR: epsR, MuR: 1} }

// Pec returns a perfect electric conductor
func Pec() Material { return Material{EpsR: 1, MuR: 1, Pec: true} }

// Coefficients computes the E (ca, cb) and H (da, db) update multipliers of a medium
//  Input:
//   dt -- time step
//   dx -- cell size
func (o Material) Coefficients(dt, dx float64) (ca, cb, da, db float64) {

	// E: Ca = (1-σΔt/2ε)/(1+σΔt/2ε); Cb = (Δt/εΔx)/(1+σΔt/2ε)
	eps := EPS0 * o.EpsR
	fe := o.SigmaE * dt / (2.0 * eps)
	ca = (1.0 - fe) / (1.0 + fe)
	cb = (dt / (eps * dx)) / (1.0 + fe)

	// H
	mu := MU0 * o.MuR
	fh := o.SigmaM * dt / (2.0 * mu)
	da = (1.0 - fh) / (1.0 + fh)
	db = (dt / (mu * dx)) / (1.0 + fh)

	// perfect conductor: tangential E is held at zero
	if o.Pec {
		ca, cb = 0, 0
	}
	return
}

// SetMaterial sets the update coefficients of cell (i,j,k)
//  Note: (i,j,k) must be inside the grid
func (o *Simulation) SetMaterial(i, j, k int, mat Material) {
	n := o.Ca.Idx(i, j, k)
	o.Ca.Data[n], o.Cb.Data[n], o.Da.Data[n], o.Db.Data[n] = mat.Coefficients(o.Cfg.Dt, o.Cfg.Dx)
	o.matIds.Data[n] = o.paletteId(mat)
}

// SetPec sets cell (i,j,k) to a perfect electric conductor
func (o *Simulation) SetPec(i, j, k int) {
	o.SetMaterial(i, j, k, Pec())
}

// SetMaterialRegion sets the material of all cells in [imin,imax)×[jmin,jmax)×[kmin,kmax).
// The box is clamped to the grid
func (o *Simulation) SetMaterialRegion(imin, imax, jmin, jmax, kmin, kmax int, mat Material) {
	imin, jmin, kmin = imax2(imin, 0), imax2(jmin, 0), imax2(kmin, 0)
	imax, jmax, kmax = imin2(imax, o.Cfg.Nx), imin2(jmax, o.Cfg.Ny), imin2(kmax, o.Cfg.Nz)
	for k := kmin; k < kmax; k++ {
		for j := jmin; j < jmax; j++ {
			for i := imin; i < imax; i++ {
				o.SetMaterial(i, j, k, mat)
			}
		}
	}
}

// MaterialAt returns the material last assigned to cell (i,j,k); vacuum if none
func (o *Simulation) MaterialAt(i, j, k int) Material {
	return o.palette[o.matIds.At(i, j, k)]
}

// paletteId returns the palette index of mat, adding it if new
func (o *Simulation) paletteId(mat Material) uint8 {
	for i, m := range o.palette {
		if m == mat {
			return uint8(i)
		}
	}
	if len(o.palette) > 255 {
		chk.Panic("cannot hold more than 256 distinct materials")
	}
	o.palette = append(o.palette, mat)
	return uint8(len(o.palette) - 1)
}

func imin2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func imax2(a, b int) int {
	if a > b {
		return a
	}
	return b
}
