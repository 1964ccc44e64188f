// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fdtd implements a 3D finite-difference time-domain (Yee) electromagnetic solver with
// convolutional PML boundaries
package fdtd

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// physical constants
const (
	C0   = 299792458.0     // speed of light in vacuum [m/s]
	EPS0 = 8.854187817e-12 // permittivity of free space [F/m]
	MU0  = 1.256637062e-6  // permeability of free space [H/m]
)

// CflSafety is the fraction of the CFL limit used by NewConfig
const CflSafety = 0.9

// Component identifies one of the six field components
type Component int

// field components
const (
	Ex Component = iota
	Ey
	Ez
	Hx
	Hy
	Hz
)

var compNames = []string{"Ex", "Ey", "Ez", "Hx", "Hy", "Hz"}

// String returns the name of the component; e.g. "Ez"
func (c Component) String() string {
	if c < Ex || c > Hz {
		return "?"
	}
	return compNames[c]
}

// IsElectric tells whether c is an E component
func (c Component) IsElectric() bool { return c <= Ez }

// ParseComponent parses a component name such as "Ez" or "hx"
func ParseComponent(name string) (c Component, err error) {
	for i, n := range compNames {
		if strings.EqualFold(n, name) {
			return Component(i), nil
		}
	}
	err = chk.Err("field component %q is invalid; options are Ex, Ey, Ez, Hx, Hy, Hz", name)
	return
}

// Plane identifies the orientation of a 2D field slice
type Plane int

// slice planes
const (
	PlaneXZ Plane = iota // plane at constant y
	PlaneXY              // plane at constant z
	PlaneYZ              // plane at constant x
)

// String returns "XZ", "XY" or "YZ"
func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneYZ:
		return "YZ"
	}
	return "XZ"
}

// ParsePlane parses a plane name. Unknown names default to XZ
func ParsePlane(name string) Plane {
	switch strings.ToUpper(name) {
	case "XY":
		return PlaneXY
	case "YZ":
		return PlaneYZ
	}
	return PlaneXZ
}
