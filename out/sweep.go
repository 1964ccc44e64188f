// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/binary"
	goio "io"
	"math"

	"github.com/cpmech/gofdtd/post"
	"github.com/cpmech/gosl/chk"
)

// SweepMagic starts every binary sweep
var SweepMagic = [8]byte{'N', 'A', 'N', 'O', 'V', 'N', 'A', 0}

// WriteSweep writes a sweep in the little-endian binary layout read by VNA viewers
//  Layout: magic[8], npoints uint32, min_db float32, min_freq float32, then five float32
//          arrays of npoints: freq, mag_db, phase_deg, zr, zi
func WriteSweep(w goio.Writer, sw *post.FrequencySweep) (err error) {
	n := len(sw.Points)
	buf := make([]byte, 0, 8+4+8+5*4*n)
	buf = append(buf, SweepMagic[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(n))
	buf = appendFloat32(buf, sw.MinDb)
	buf = appendFloat32(buf, sw.MinFreq)
	for _, get := range sweepColumns {
		for i := range sw.Points {
			buf = appendFloat32(buf, get(&sw.Points[i]))
		}
	}
	_, err = w.Write(buf)
	return
}

// ReadSweep reads a sweep written by WriteSweep
//  Note: values lose precision to float32
func ReadSweep(r goio.Reader) (sw *post.FrequencySweep, err error) {
	var magic [8]byte
	_, err = goio.ReadFull(r, magic[:])
	if err != nil {
		return nil, chk.Err("cannot read sweep header: %v", err)
	}
	if magic != SweepMagic {
		return nil, chk.Err("invalid sweep header %q", magic[:])
	}
	var head struct {
		N       uint32
		MinDb   float32
		MinFreq float32
	}
	err = binary.Read(r, binary.LittleEndian, &head)
	if err != nil {
		return nil, chk.Err("cannot read sweep header: %v", err)
	}
	cols := make([]float32, 5*int(head.N))
	err = binary.Read(r, binary.LittleEndian, cols)
	if err != nil {
		return nil, chk.Err("cannot read %d sweep points: %v", head.N, err)
	}
	n := int(head.N)
	sw = &post.FrequencySweep{MinDb: float64(head.MinDb), MinFreq: float64(head.MinFreq)}
	sw.Points = make([]post.SweepPoint, n)
	for i := 0; i < n; i++ {
		sw.Points[i] = post.SweepPoint{
			Freq:     float64(cols[i]),
			MagDb:    float64(cols[n+i]),
			PhaseDeg: float64(cols[2*n+i]),
			Zr:       float64(cols[3*n+i]),
			Zi:       float64(cols[4*n+i]),
		}
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

var sweepColumns = []func(p *post.SweepPoint) float64{
	func(p *post.SweepPoint) float64 { return p.Freq },
	func(p *post.SweepPoint) float64 { return p.MagDb },
	func(p *post.SweepPoint) float64 { return p.PhaseDeg },
	func(p *post.SweepPoint) float64 { return p.Zr },
	func(p *post.SweepPoint) float64 { return p.Zi },
}

func appendFloat32(buf []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(v)))
}
