// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify the FDTD solver
package ana

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// C0 is the speed of light in vacuum [m/s]
const C0 = 299792458.0

// CavityMode holds one resonant mode of a rectangular cavity
type CavityMode struct {
	M, N, P int     // mode indices along x, y and z
	Freq    float64 // resonant frequency [Hz]
}

// RectCavity computes the resonances of an empty rectangular box with perfectly conducting
// walls:
//
//    f_mnp = (c/2)・sqrt((m/a)² + (n/b)² + (p/d)²)
//
// where at most one of m, n, p is zero
type RectCavity struct {
	A, B, D float64 // side lengths along x, y and z [m]
}

// Init initialises this structure
func (o *RectCavity) Init(a, b, d float64) {
	if a <= 0 || b <= 0 || d <= 0 {
		chk.Panic("cavity sides must be positive. a=%g, b=%g, d=%g is invalid", a, b, d)
	}
	o.A, o.B, o.D = a, b, d
}

// Freq returns the frequency of mode (m,n,p)
func (o RectCavity) Freq(m, n, p int) float64 {
	x := float64(m) / o.A
	y := float64(n) / o.B
	z := float64(p) / o.D
	return 0.5 * C0 * math.Sqrt(x*x+y*y+z*z)
}

// Modes returns all modes with frequency ≤ fmax sorted by increasing frequency
func (o RectCavity) Modes(fmax float64) (res []CavityMode) {
	mmax := int(2*fmax*o.A/C0) + 1
	nmax := int(2*fmax*o.B/C0) + 1
	pmax := int(2*fmax*o.D/C0) + 1
	for m := 0; m <= mmax; m++ {
		for n := 0; n <= nmax; n++ {
			for p := 0; p <= pmax; p++ {
				zeros := 0
				for _, v := range []int{m, n, p} {
					if v == 0 {
						zeros++
					}
				}
				if zeros > 1 {
					continue
				}
				if f := o.Freq(m, n, p); f <= fmax {
					res = append(res, CavityMode{m, n, p, f})
				}
			}
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Freq < res[j].Freq })
	return
}

// Fundamental returns the lowest mode
func (o RectCavity) Fundamental() CavityMode {
	dims := []float64{o.A, o.B, o.D}
	fmax := 0.5 * C0 * math.Sqrt(2) / math.Min(dims[0], math.Min(dims[1], dims[2]))
	modes := o.Modes(fmax)
	if len(modes) == 0 {
		chk.Panic("cannot find fundamental mode")
	}
	return modes[0]
}
