// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"math"
	"testing"

	"github.com/cpmech/gofdtd/ana"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_spectrum01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spectrum01. padding and window")

	chk.Ints(tst, "pow2", []int{NextPow2(0), NextPow2(1), NextPow2(64), NextPow2(65), NextPow2(4000)}, []int{1, 1, 64, 128, 4096})

	w := HannWindow(8)
	chk.Float64(tst, "w[0]", 1e-15, w[0], 0)
	chk.Float64(tst, "w[4]", 1e-15, w[4], 1)
	chk.Float64(tst, "w[2]", 1e-15, w[2], 0.5)

	// constant signal: all energy at DC
	x := make([]float64, 100)
	for i := range x {
		x[i] = 1
	}
	coefs, n := Spectrum(x, false)
	chk.Int(tst, "n", n, 128)
	chk.Int(tst, "ncoefs", len(coefs), 65)
	chk.Float64(tst, "dc", 1e-12, real(coefs[0]), 100)
	if x[10] != 1 {
		tst.Errorf("Spectrum must not modify its input")
	}
}

func Test_resonance01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("resonance01. damped sine at 5 GHz")

	sig := ana.DampedSine{Freq: 5e9, Tau: 1e-9, Amp: 1}
	dt := 1e-12
	samples := sig.Samples(dt, 4096)

	res := FindResonances(samples, dt, 1e9, 10e9)
	if len(res) == 0 {
		tst.Errorf("resonance must be found")
		return
	}
	io.Pforan("f = %g  Q = %g  (ringdown Q = %g)\n", res[0].Freq, res[0].Q, sig.Q())
	if relerr := math.Abs(res[0].Freq-5e9) / 5e9; relerr > 0.03 {
		tst.Errorf("strongest resonance is off by %g%%", relerr*100)
	}
	if res[0].Q <= 0 {
		tst.Errorf("Q must be positive")
	}
	for i := 1; i < len(res); i++ {
		if res[i].Amplitude > res[i-1].Amplitude {
			tst.Errorf("resonances must be sorted by descending amplitude")
		}
	}
}

func Test_resonance02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("resonance02. two tones and short series")

	// short series
	if res := FindResonances(make([]float64, 63), 1e-12, 0, 1e12); len(res) != 0 {
		tst.Errorf("less than 64 samples must give no resonances")
	}

	// 2 and 6 GHz; the 6 GHz tone is stronger
	dt := 1e-12
	a := ana.DampedSine{Freq: 2e9, Tau: 2e-9, Amp: 0.5}
	b := ana.DampedSine{Freq: 6e9, Tau: 2e-9, Amp: 1.0}
	x := a.Samples(dt, 8192)
	for i, v := range b.Samples(dt, 8192) {
		x[i] += v
	}
	res := FindResonances(x, dt, 1e9, 10e9)
	if len(res) < 2 {
		tst.Errorf("two resonances must be found; got %d", len(res))
		return
	}
	chk.Float64(tst, "f0", 0.03*6e9, res[0].Freq, 6e9)
	chk.Float64(tst, "f1", 0.03*2e9, res[1].Freq, 2e9)

	// range excluding the strong tone
	res = FindResonances(x, dt, 1e9, 4e9)
	if len(res) == 0 {
		tst.Errorf("2 GHz resonance must be found")
		return
	}
	chk.Float64(tst, "f0 in [1,4] GHz", 0.03*2e9, res[0].Freq, 2e9)
}
