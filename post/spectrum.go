// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package post implements frequency-domain analyses of FDTD time series
package post

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// MinSamples is the minimum length of a time series to be analysed
const MinSamples = 64

// NextPow2 returns the smallest power of two ≥ n; 1 if n ≤ 1
func NextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// HannWindow returns w[i] = 0.5·(1-cos(2πi/n)) for i in [0,n)
func HannWindow(n int) (w []float64) {
	w = make([]float64, n)
	for i := 0; i < n; i++ {
		w[i] = 0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/float64(n)))
	}
	return
}

// Spectrum zero-pads samples to the next power of two N and returns the N/2+1 non-negative
// frequency DFT coefficients
//  Input:
//   samples -- time series; not modified
//   window  -- apply a Hann window over the original span before padding
//  Output:
//   coefs -- DFT coefficients; coefs[k] corresponds to frequency k/(N·dt)
//   n     -- padded length N
func Spectrum(samples []float64, window bool) (coefs []complex128, n int) {
	n = NextPow2(len(samples))
	padded := make([]float64, n)
	copy(padded, samples)
	if window {
		w := HannWindow(len(samples))
		for i := range samples {
			padded[i] *= w[i]
		}
	}
	fft := fourier.NewFFT(n)
	coefs = fft.Coefficients(nil, padded)
	return
}
