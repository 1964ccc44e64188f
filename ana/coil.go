// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// MU0 is the permeability of free space 4π・10⁻⁷ [H/m]
const MU0 = 4.0 * math.Pi * 1e-7

// Coil models a single-layer solenoid as a series R-L load. The inductance follows Wheeler's
// formula with a Nagaoka correction for short coils:
//
//    L = μ0・N²・π・r²・κ / ℓ    with   ℓ = N・d   k = ℓ/(2r)   κ = 1/(1 + 0.9・k)
//
type Coil struct {
	Radius     float64 // coil radius [mm]
	Turns      int     // number of turns
	WireDiam   float64 // wire diameter [mm]
	Resistance float64 // series resistance [Ω]
}

// SetDefault sets a 25 mm radius, 10 turns, 0.5 mm wire, 0.5 Ω coil
func (o *Coil) SetDefault() {
	o.Radius = 25
	o.Turns = 10
	o.WireDiam = 0.5
	o.Resistance = 0.5
}

// Inductance returns L [H]
func (o Coil) Inductance() float64 {
	r := o.Radius * 1e-3
	n := float64(o.Turns)
	l := n * o.WireDiam * 1e-3
	k := l / (2.0 * r)
	nagaoka := 1.0 / (1.0 + 0.9*k)
	return MU0 * n * n * math.Pi * r * r * nagaoka / l
}

// Impedance returns Z = R + i・2π・f・L at frequency f
func (o Coil) Impedance(f float64) (zr, zi float64) {
	return SeriesRL(f, o.Inductance(), o.Resistance)
}

// SeriesRL returns the impedance R + i・2π・f・L
func SeriesRL(f, inductance, resistance float64) (zr, zi float64) {
	return resistance, 2.0 * math.Pi * f * inductance
}
