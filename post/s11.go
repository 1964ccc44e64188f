// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"math"
	"math/cmplx"
)

// S11Point holds the return loss at one frequency
type S11Point struct {
	Freq float64 `json:"freq"` // frequency [Hz]
	Db   float64 `json:"db"`   // 20·log10|S11|
}

// FloorDb is reported where the incident spectrum vanishes
const FloorDb = -100.0

// ComputeS11 returns the return loss from incident and reflected time series. No window is
// applied; both series are treated identically
//  Output:
//   res -- one point per bin in [0,N/2); empty unless both series have the same length ≥ 64
func ComputeS11(incident, reflected []float64, dt float64) (res []S11Point) {
	if len(incident) != len(reflected) || len(incident) < MinSamples {
		return
	}
	inc, n := Spectrum(incident, false)
	ref, _ := Spectrum(reflected, false)
	df := 1.0 / (float64(n) * dt)
	res = make([]S11Point, n/2)
	for i := 0; i < n/2; i++ {
		res[i].Freq = float64(i) * df
		a := inc[i]
		if real(a)*real(a)+imag(a)*imag(a) <= 1e-20 {
			res[i].Db = FloorDb
			continue
		}
		res[i].Db = 20.0 * math.Log10(math.Max(cmplx.Abs(ref[i]/a), 1e-10))
	}
	return
}

// Band returns the points with frequency in [fmin,fmax]
func Band(pts []S11Point, fmin, fmax float64) (res []S11Point) {
	for _, p := range pts {
		if p.Freq >= fmin && p.Freq <= fmax {
			res = append(res, p)
		}
	}
	return
}

// ReflectionFromImpedance computes S11 = (Z-Z0)/(Z+Z0) of a load Z = zr + i·zi
//  Output:
//   magDb    -- 20·log10|S11|; |S11| is floored at 1e-10
//   phaseDeg -- phase of S11 in degrees
func ReflectionFromImpedance(zr, zi, z0 float64) (magDb, phaseDeg float64) {
	z := complex(zr, zi)
	s := (z - complex(z0, 0)) / (z + complex(z0, 0))
	magDb = 20.0 * math.Log10(math.Max(cmplx.Abs(s), 1e-10))
	phaseDeg = cmplx.Phase(s) * 180.0 / math.Pi
	return
}
