// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Resonance holds a spectral peak
type Resonance struct {
	Freq      float64 `json:"freq"`      // frequency [Hz]
	Q         float64 `json:"q"`         // quality factor
	Amplitude float64 `json:"amplitude"` // spectral magnitude
}

// DefaultQ is the quality factor assigned when the half-power bandwidth is zero
const DefaultQ = 100.0

// FindResonances locates peaks of the windowed spectrum of samples within [fmin,fmax]
//  Output:
//   res -- peaks sorted by descending amplitude; empty if there are fewer than 64 samples
func FindResonances(samples []float64, dt, fmin, fmax float64) (res []Resonance) {
	if len(samples) < MinSamples {
		return
	}

	// spectrum
	coefs, n := Spectrum(samples, true)
	df := 1.0 / (float64(n) * dt)
	lo := int(math.Floor(fmin / df))
	hi := int(math.Ceil(fmax / df))
	if hi > n/2 {
		hi = n / 2
	}
	if lo < 0 {
		lo = 0
	}
	if hi-lo < 3 {
		return
	}
	mag := make([]float64, hi-lo)
	for i := range mag {
		mag[i] = cmplx.Abs(coefs[lo+i])
	}

	// peaks
	threshold := 0.1 * floats.Max(mag)
	last := len(mag) - 1
	for i := 1; i < last; i++ {
		if !(mag[i] > mag[i-1] && mag[i] > mag[i+1] && mag[i] > threshold) {
			continue
		}

		// half-power walk
		half := mag[i] / math.Sqrt2
		il, ih := i, i
		for il > 0 && mag[il] > half {
			il--
		}
		for ih < last && mag[ih] > half {
			ih++
		}
		freq := float64(lo+i) * df
		bw := float64(ih-il) * df
		q := DefaultQ
		if bw > 0 {
			q = freq / bw
		}
		res = append(res, Resonance{Freq: freq, Q: q, Amplitude: mag[i]})
	}
	sort.SliceStable(res, func(a, b int) bool { return res[a].Amplitude > res[b].Amplitude })
	return
}
