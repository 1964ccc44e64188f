// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Z0 is the default reference impedance [Ω]
const Z0 = 50.0

// ImpedanceFcn returns the load impedance at frequency f
type ImpedanceFcn func(f float64) (zr, zi float64)

// SweepPoint holds one frequency of a sweep
type SweepPoint struct {
	Freq     float64 `json:"freq"`      // [Hz]
	MagDb    float64 `json:"mag_db"`    // |S11| in dB
	PhaseDeg float64 `json:"phase_deg"` // phase of S11
	Zr       float64 `json:"zr"`        // load resistance
	Zi       float64 `json:"zi"`        // load reactance
}

// FrequencySweep holds a linear sweep and its best match
type FrequencySweep struct {
	Points  []SweepPoint `json:"points"`
	MinDb   float64      `json:"min_db"`   // smallest |S11|
	MinFreq float64      `json:"min_freq"` // where MinDb occurs
}

// Sweep computes S11 of zfcn at np linearly spaced frequencies in [fstart,fstop]
func Sweep(fstart, fstop float64, np int, z0 float64, zfcn ImpedanceFcn) (o *FrequencySweep, err error) {
	if np < 2 {
		return nil, chk.Err("sweep requires at least 2 points. %d is invalid", np)
	}
	if z0 <= 0 {
		return nil, chk.Err("reference impedance must be positive. %g is invalid", z0)
	}
	o = &FrequencySweep{MinDb: math.MaxFloat64, MinFreq: fstart}
	for _, f := range utl.LinSpace(fstart, fstop, np) {
		zr, zi := zfcn(f)
		db, ph := ReflectionFromImpedance(zr, zi, z0)
		if db < o.MinDb {
			o.MinDb, o.MinFreq = db, f
		}
		o.Points = append(o.Points, SweepPoint{f, db, ph, zr, zi})
	}
	return
}
