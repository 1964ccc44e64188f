// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"

	"github.com/cpmech/gosl/chk"
	"github.com/crazy3lf/colorconv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// HsvPalette holds colours with hues evenly spaced in [Hmin,Hmax]
type HsvPalette struct {
	colors []color.Color
}

// NewHsvPalette returns n fully saturated colours from hue hmin to hmax [degrees]
func NewHsvPalette(n int, hmin, hmax float64) (o *HsvPalette) {
	if n < 2 {
		chk.Panic("palette requires at least 2 colours. %d is invalid", n)
	}
	o = &HsvPalette{colors: make([]color.Color, n)}
	for i := 0; i < n; i++ {
		h := hmin + (hmax-hmin)*float64(i)/float64(n-1)
		r, g, b, err := colorconv.HSVToRGB(h, 1, 1)
		if err != nil {
			chk.Panic("cannot convert hue %g: %v", h, err)
		}
		o.colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return
}

// Colors implements palette.Palette
func (o *HsvPalette) Colors() []color.Color { return o.colors }

// GetPalette returns a palette by name
//  name -- "kindlmann" (default), "bluered" (diverging; good for signed fields) or "hsv"
func GetPalette(name string, n int) palette.Palette {
	switch name {
	case "bluered":
		return moreland.SmoothBlueRed().Palette(n)
	case "hsv":
		return NewHsvPalette(n, 240, 0)
	}
	return moreland.Kindlmann().Palette(n)
}

// GetLabel returns the axis label of a quantity
func GetLabel(key string) string {
	switch key {
	case "time":
		return "t [ns]"
	case "freq":
		return "f [GHz]"
	case "s11":
		return "|S11| [dB]"
	case "phase":
		return "phase [deg]"
	case "mag":
		return "|F| [-]"
	case "Ex", "Ey", "Ez":
		return key + " [V/m]"
	case "Hx", "Hy", "Hz":
		return key + " [A/m]"
	}
	return key
}

// setStyle sets fonts and line widths of plot p
func setStyle(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	p.X.Tick.Label.Font.Size = vg.Points(10)
	p.Y.Tick.Label.Font.Size = vg.Points(10)
	p.X.LineStyle.Width = vg.Points(1.2)
	p.Y.LineStyle.Width = vg.Points(1.2)
	p.Add(plotter.NewGrid())
}
