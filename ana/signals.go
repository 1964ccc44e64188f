// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// DampedSine implements A・exp(-t/τ)・sin(2π・f・t)
type DampedSine struct {
	Freq float64 // frequency [Hz]
	Tau  float64 // decay time [s]
	Amp  float64 // amplitude
}

// Calc computes the signal at time t
func (o DampedSine) Calc(t float64) float64 {
	return o.Amp * math.Exp(-t/o.Tau) * math.Sin(2.0*math.Pi*o.Freq*t)
}

// Samples returns n samples at t = i・dt
func (o DampedSine) Samples(dt float64, n int) (res []float64) {
	res = make([]float64, n)
	for i := 0; i < n; i++ {
		res[i] = o.Calc(float64(i) * dt)
	}
	return
}

// Q returns the quality factor π・f・τ of the ringdown
func (o DampedSine) Q() float64 {
	return math.Pi * o.Freq * o.Tau
}
