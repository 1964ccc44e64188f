// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bufio"
	"image/color"
	"math"
	"math/cmplx"
	"os"
	"path/filepath"

	"github.com/cpmech/gofdtd/fdtd"
	"github.com/cpmech/gofdtd/post"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure size and resolution
var (
	FigWidth  = 8.0 // [in]
	FigHeight = 6.0 // [in]
	FigDpi    = 150
)

// SavePng renders p into a PNG file
func SavePng(p *plot.Plot, fn string) (err error) {
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(FigWidth)*vg.Inch, vg.Length(FigHeight)*vg.Inch),
		vgimg.UseDPI(FigDpi),
	)
	p.Draw(draw.New(c))
	f, err := os.Create(fn)
	if err != nil {
		return chk.Err("cannot create figure file: %v", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	if err != nil {
		return chk.Err("cannot write png: %v", err)
	}
	return w.Flush()
}

// PlotSeries plots the monitor time series
func PlotSeries(res *fdtd.Result, fn string) (err error) {
	p := plot.New()
	p.Title.Text = io.Sf("%s at monitor", res.Component)
	p.X.Label.Text = GetLabel("time")
	p.Y.Label.Text = GetLabel(res.Component)
	setStyle(p)
	err = addLine(p, res.TimesNs, res.Samples, color.RGBA{B: 200, A: 255}, "")
	if err != nil {
		return
	}
	return SavePng(p, fn)
}

// PlotSpectrum plots the windowed amplitude spectrum in the analysis band and marks resonances
func PlotSpectrum(res *fdtd.Result, fn string) (err error) {
	if len(res.Samples) < post.MinSamples {
		return chk.Err("spectrum requires at least %d samples. %d is invalid", post.MinSamples, len(res.Samples))
	}
	coefs, n := post.Spectrum(res.Samples, true)
	df := 1.0 / (float64(n) * res.Dt)
	var f, mag []float64
	for k := 0; k <= n/2; k++ {
		fk := float64(k) * df
		if fk < res.Fmin || fk > res.Fmax {
			continue
		}
		f = append(f, fk*1e-9)
		mag = append(mag, cmplx.Abs(coefs[k]))
	}
	p := plot.New()
	p.Title.Text = "Spectrum"
	p.X.Label.Text = GetLabel("freq")
	p.Y.Label.Text = GetLabel("mag")
	setStyle(p)
	err = addLine(p, f, mag, color.RGBA{B: 200, A: 255}, "")
	if err != nil {
		return
	}
	if len(res.Resonances) > 0 {
		pts := make(plotter.XYs, len(res.Resonances))
		for i, r := range res.Resonances {
			pts[i].X = r.Freq * 1e-9
			pts[i].Y = r.Amplitude
		}
		sc, e := plotter.NewScatter(pts)
		if e != nil {
			return e
		}
		sc.GlyphStyle.Color = color.RGBA{R: 220, A: 255}
		sc.GlyphStyle.Radius = vg.Points(4)
		p.Add(sc)
		p.Legend.Add("resonances", sc)
	}
	return SavePng(p, fn)
}

// PlotS11 plots the return loss
func PlotS11(res *fdtd.Result, fn string) (err error) {
	if len(res.S11) == 0 {
		return chk.Err("there are no S11 points to plot")
	}
	f := make([]float64, len(res.S11))
	db := make([]float64, len(res.S11))
	for i, pt := range res.S11 {
		f[i], db[i] = pt.Freq*1e-9, pt.Db
	}
	p := plot.New()
	p.Title.Text = "Return loss"
	p.X.Label.Text = GetLabel("freq")
	p.Y.Label.Text = GetLabel("s11")
	setStyle(p)
	err = addLine(p, f, db, color.RGBA{R: 200, A: 255}, "")
	if err != nil {
		return
	}
	return SavePng(p, fn)
}

// PlotSweep plots magnitude and phase of a frequency sweep
func PlotSweep(sw *post.FrequencySweep, fn string) (err error) {
	n := len(sw.Points)
	f, db, ph := make([]float64, n), make([]float64, n), make([]float64, n)
	for i, pt := range sw.Points {
		f[i], db[i], ph[i] = pt.Freq*1e-6, pt.MagDb, pt.PhaseDeg
	}
	p := plot.New()
	p.Title.Text = io.Sf("Sweep: min %.2f dB at %.3f MHz", sw.MinDb, sw.MinFreq*1e-6)
	p.X.Label.Text = "f [MHz]"
	p.Y.Label.Text = "|S11| [dB] ; phase/10 [deg]"
	setStyle(p)
	err = addLine(p, f, db, color.RGBA{R: 200, A: 255}, "|S11|")
	if err != nil {
		return
	}
	for i := range ph {
		ph[i] /= 10
	}
	err = addLine(p, f, ph, color.RGBA{G: 150, A: 255}, "phase/10")
	if err != nil {
		return
	}
	return SavePng(p, fn)
}

// PlotSlice plots the final field slice as a heat map
func PlotSlice(res *fdtd.Result, pal palette.Palette, fn string) (err error) {
	if res.SliceW*res.SliceH == 0 || len(res.Slice) != res.SliceW*res.SliceH {
		return chk.Err("slice %d x %d with %d values is invalid", res.SliceW, res.SliceH, len(res.Slice))
	}
	g := sliceGrid{w: res.SliceW, h: res.SliceH, data: res.Slice}
	hm := plotter.NewHeatMap(g, pal)
	amax := math.Max(math.Abs(hm.Min), math.Abs(hm.Max))
	if amax == 0 {
		amax = 1
	}
	hm.Min, hm.Max = -amax, amax
	p := plot.New()
	p.Title.Text = io.Sf("%s on %s plane", res.Component, res.Plane)
	p.X.Label.Text = io.Sf("%c [cells]", res.Plane[0])
	p.Y.Label.Text = io.Sf("%c [cells]", res.Plane[1])
	setStyle(p)
	p.Add(hm)
	return SavePng(p, fn)
}

// SaveFigures writes all figures of a result into dirout
//  Output:
//   fns -- figure files written
func SaveFigures(res *fdtd.Result, dirout, key string) (fns []string, err error) {
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return nil, chk.Err("cannot create directory %q: %v", dirout, err)
	}
	figs := []struct {
		name string
		skip bool
		plot func(fn string) error
	}{
		{"series", false, func(fn string) error { return PlotSeries(res, fn) }},
		{"spectrum", len(res.Samples) < post.MinSamples, func(fn string) error { return PlotSpectrum(res, fn) }},
		{"s11", len(res.S11) == 0, func(fn string) error { return PlotS11(res, fn) }},
		{"slice", len(res.Slice) == 0, func(fn string) error { return PlotSlice(res, GetPalette("bluered", 255), fn) }},
	}
	for _, fig := range figs {
		if fig.skip {
			continue
		}
		fn := filepath.Join(dirout, key+"_"+fig.name+".png")
		err = fig.plot(fn)
		if err != nil {
			return
		}
		fns = append(fns, fn)
	}
	return
}

// AsciiSeries returns a terminal chart of the monitor time series
func AsciiSeries(res *fdtd.Result, width, height int) string {
	if len(res.Samples) == 0 {
		return ""
	}
	caption := io.Sf("%s at monitor; %d steps, %.4g ns", res.Component, len(res.Samples), res.TimesNs[len(res.TimesNs)-1])
	return asciigraph.Plot(res.Samples, asciigraph.Width(width), asciigraph.Height(height), asciigraph.Caption(caption))
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// addLine adds x-y data to p
func addLine(p *plot.Plot, x, y []float64, clr color.Color, label string) (err error) {
	if len(x) != len(y) {
		return chk.Err("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(x), len(y))
	}
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X, pts[i].Y = x[i], y[i]
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return
	}
	l.LineStyle.Width = vg.Points(1.5)
	l.LineStyle.Color = clr
	p.Add(l)
	if label != "" {
		p.Legend.Add(label, l)
	}
	return
}

// sliceGrid implements plotter.GridXYZ for a field slice; rows are the outer index
type sliceGrid struct {
	w, h int
	data []float64
}

func (o sliceGrid) Dims() (c, r int) { return o.w, o.h }
func (o sliceGrid) Z(c, r int) float64 { return o.data[r*o.w+c] }
func (o sliceGrid) X(c int) float64 { return float64(c) }
func (o sliceGrid) Y(r int) float64 { return float64(r) }
