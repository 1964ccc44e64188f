// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/cpmech/gofdtd/ana"
	"github.com/cpmech/gofdtd/fdtd"
	"github.com/cpmech/gofdtd/post"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// sampleResult returns a result with a 2 GHz damped sine, its resonances and a synthetic slice
func sampleResult() (res *fdtd.Result) {
	dt := 1e-11
	sig := ana.DampedSine{Freq: 2e9, Tau: 5e-9, Amp: 1}
	res = &fdtd.Result{
		Key:       "sample",
		Dt:        dt,
		Fmin:      1e9,
		Fmax:      3e9,
		Samples:   sig.Samples(dt, 1024),
		Plane:     "XZ",
		Component: "Ez",
		SliceW:    6,
		SliceH:    4,
	}
	res.TimesNs = make([]float64, len(res.Samples))
	for i := range res.TimesNs {
		res.TimesNs[i] = float64(i) * dt * 1e9
	}
	res.Resonances = post.FindResonances(res.Samples, dt, res.Fmin, res.Fmax)
	res.S11 = []post.S11Point{{Freq: 1e9, Db: -3}, {Freq: 2e9, Db: -20}, {Freq: 3e9, Db: -4}}
	res.Slice = make([]float64, res.SliceW*res.SliceH)
	for i := range res.Slice {
		res.Slice[i] = math.Sin(float64(i))
	}
	res.Stats = fdtd.Stats{NumSteps: 1024, Nx: 6, Ny: 5, Nz: 4, Dt: dt, Ncells: 120}
	return
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. save and read results")

	res := sampleResult()
	dir := tst.TempDir()
	for _, enctype := range []string{"gob", "json"} {
		err := SaveResult(res, dir, "sample-"+enctype, enctype)
		if err != nil {
			tst.Errorf("%v", err)
			return
		}
		r, err := ReadResult(dir, "sample-"+enctype, enctype)
		if err != nil {
			tst.Errorf("%v", err)
			return
		}
		io.Pforan("%s: %d samples, %d resonances\n", enctype, len(r.Samples), len(r.Resonances))
		chk.String(tst, r.Key, "sample")
		chk.String(tst, r.Component, "Ez")
		chk.Array(tst, "samples", 1e-17, r.Samples, res.Samples)
		chk.Array(tst, "slice", 1e-17, r.Slice, res.Slice)
		chk.Int(tst, "nresonances", len(r.Resonances), len(res.Resonances))
		chk.Int(tst, "ns11", len(r.S11), 3)
		chk.Float64(tst, "s11[1]", 1e-15, r.S11[1].Db, -20)
		chk.Int(tst, "steps", r.Stats.NumSteps, 1024)
	}
	if _, err := ReadResult(dir, "missing", "gob"); err == nil {
		tst.Errorf("missing file must fail")
	}
	if err := SaveResult(nil, dir, "nil", "gob"); err == nil {
		tst.Errorf("nil result must fail")
	}
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02. time series csv")

	res := sampleResult()
	fn, err := SaveSeries(res, tst.TempDir(), "sample")
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	t, s, err := ReadSeries(fn)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Array(tst, "times", 0, t, res.TimesNs)
	chk.Array(tst, "samples", 0, s, res.Samples)
	x := 0.1
	chk.String(tst, formatFloat(x+0.2), "0.30000000000000004")
	chk.String(tst, formatFloat(7.65), "7.65")
}

func Test_sweep01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep01. binary sweep")

	var coil ana.Coil
	coil.SetDefault()
	sw, err := post.Sweep(1e6, 50e6, 101, post.Z0, coil.Impedance)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	var buf bytes.Buffer
	err = WriteSweep(&buf, sw)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Int(tst, "size", buf.Len(), 8+4+4+4+5*4*101)
	chk.String(tst, string(buf.Bytes()[:7]), "NANOVNA")

	sw2, err := ReadSweep(&buf)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Int(tst, "npoints", len(sw2.Points), 101)
	chk.Float64(tst, "min db", 1e-5, sw2.MinDb, sw.MinDb)
	for i, p := range sw.Points {
		q := sw2.Points[i]
		chk.Float64(tst, "freq", p.Freq*1e-6, q.Freq, p.Freq)
		chk.Float64(tst, "phase", 1e-4, q.PhaseDeg, p.PhaseDeg)
		chk.Float64(tst, "zi", math.Abs(p.Zi)*1e-6+1e-6, q.Zi, p.Zi)
	}

	// invalid header
	_, err = ReadSweep(bytes.NewReader([]byte("NOTAVNA\x00\x01\x00\x00\x00")))
	if err == nil {
		tst.Errorf("invalid header must fail")
	}
	_, err = ReadSweep(bytes.NewReader(append(SweepMagic[:], 5, 0, 0, 0)))
	if err == nil {
		tst.Errorf("truncated sweep must fail")
	}
}

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01. figures")

	FigDpi = 50
	res := sampleResult()
	dir := tst.TempDir()
	fns, err := SaveFigures(res, dir, "sample")
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Int(tst, "nfigures", len(fns), 4)
	for _, fn := range fns {
		b, err := os.ReadFile(fn)
		if err != nil {
			tst.Errorf("%v", err)
			return
		}
		if !bytes.HasPrefix(b, []byte("\x89PNG")) {
			tst.Errorf("%s is not a png file", fn)
		}
	}

	// sweep and palettes
	var coil ana.Coil
	coil.SetDefault()
	sw, _ := post.Sweep(1e6, 50e6, 51, post.Z0, coil.Impedance)
	err = PlotSweep(sw, dir+"/sweep.png")
	if err != nil {
		tst.Errorf("%v", err)
	}
	for _, name := range []string{"kindlmann", "bluered", "hsv"} {
		chk.Int(tst, name, len(GetPalette(name, 16).Colors()), 16)
	}
	err = PlotSlice(res, GetPalette("hsv", 64), dir+"/slice_hsv.png")
	if err != nil {
		tst.Errorf("%v", err)
	}

	// terminal chart
	chart := AsciiSeries(res, 40, 8)
	io.Pf("%s\n", chart)
	if !strings.Contains(chart, "Ez at monitor; 1024 steps") {
		tst.Errorf("chart caption is missing:\n%s", chart)
	}
	chk.String(tst, AsciiSeries(&fdtd.Result{}, 40, 8), "")

	// nothing to plot
	res.S11 = nil
	if err = PlotS11(res, dir+"/none.png"); err == nil {
		tst.Errorf("empty s11 must fail")
	}
	fns, _ = SaveFigures(res, dir, "nos11")
	chk.Int(tst, "nfigures without s11", len(fns), 3)
}
