// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"math"

	"github.com/cpmech/gofdtd/grid"
)

// CpmlProfile holds the recursion coefficients of one axis
type CpmlProfile struct {
	B []float64 // decay factors; zero in the interior
	C []float64 // convolution factors; zero in the interior
	T int       // band thickness
}

// NewCpmlProfile computes the graded CFS-PML coefficients for an axis with n cells
//  Input:
//   n   -- number of cells along the axis
//   dx  -- cell size along the axis
//   dt  -- time step
//   cfg -- PML parameters
func NewCpmlProfile(n int, dx, dt float64, cfg PmlConfig) (o *CpmlProfile) {
	o = &CpmlProfile{B: make([]float64, n), C: make([]float64, n), T: cfg.Thickness}
	t := cfg.Thickness
	if t == 0 {
		return
	}
	smax := cfg.SigmaMax
	if smax <= 0 {
		smax = OptimalSigmaMax(dx, cfg.Order)
	}
	for i := 0; i < n; i++ {
		rho := o.Depth(i, n)
		if rho <= 0 {
			continue
		}
		pw := math.Pow(rho, cfg.Order)
		sigma := smax * pw
		kappa := 1.0 + (cfg.KappaMax-1.0)*pw
		alpha := cfg.AlphaMax * (1.0 - rho)
		b := math.Exp(-(sigma/kappa + alpha) * dt / EPS0)
		o.B[i] = b
		den := sigma*kappa + alpha*kappa*kappa
		if math.Abs(den) > 1e-20 {
			o.C[i] = sigma * (b - 1.0) / den
		}
	}
	return
}

// Depth returns the normalised penetration rho ∈ [0,1] of index i into the band
func (o *CpmlProfile) Depth(i, n int) float64 {
	t := o.T
	if t <= 0 {
		return 0
	}
	if i < t {
		return float64(t-i) / float64(t)
	}
	if i >= n-t {
		return float64(i-(n-t-1)) / float64(t)
	}
	return 0
}

// InBand tells whether index i (of n) lies in one of the two boundary bands
func (o *CpmlProfile) InBand(i, n int) bool {
	return o.T > 0 && (i < o.T || i >= n-o.T)
}

// ApplyCorrection returns the new auxiliary value b·psi + c·delta
func ApplyCorrection(psi, b, c, delta float64) float64 {
	return b*psi + c*delta
}

// CpmlState holds one auxiliary field and the profile of the axis it convolves along
type CpmlState struct {
	Psi  *grid.Grid3D[float64]
	Prof *CpmlProfile
}

// NewCpmlState allocates a zero auxiliary field
func NewCpmlState(nx, ny, nz int, prof *CpmlProfile) *CpmlState {
	return &CpmlState{Psi: grid.New[float64](nx, ny, nz), Prof: prof}
}

// Correct updates psi at flat index n with the coefficients of axis index a and returns it
func (o *CpmlState) Correct(n, a int, delta float64) float64 {
	p := ApplyCorrection(o.Psi.Data[n], o.Prof.B[a], o.Prof.C[a], delta)
	o.Psi.Data[n] = p
	return p
}
