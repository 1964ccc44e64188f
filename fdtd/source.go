// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"math"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Source defines an additive excitation
type Source interface {
	Value(t float64) float64 // value at time t
	Cell() [3]int            // target cell
	Comp() Component         // target component
}

// GaussianPulse implements A·exp(-((t-t0)/τ)²)·sin(2π·fcen·(t-t0)) with τ=1/(π·fwidth), t0=4τ
type GaussianPulse struct {
	Fcen      float64   // centre frequency [Hz]
	Fwidth    float64   // bandwidth [Hz]
	Amplitude float64   // peak amplitude
	Pos       [3]int    // cell
	Component Component // field component
}

// Value returns the pulse at time t
func (o GaussianPulse) Value(t float64) float64 {
	tau := 1.0 / (math.Pi * o.Fwidth)
	t0 := 4.0 * tau
	a := (t - t0) / tau
	return o.Amplitude * math.Exp(-a*a) * math.Sin(2.0*math.Pi*o.Fcen*(t-t0))
}

// Cell returns the target cell
func (o GaussianPulse) Cell() [3]int { return o.Pos }

// Comp returns the target component
func (o GaussianPulse) Comp() Component { return o.Component }

// TimeFunction implements a source given by a function f(t) of the gosl database of functions
type TimeFunction struct {
	Fcn       dbf.T     // f(t); space coordinates are not used
	Pos       [3]int    // cell
	Component Component // field component
}

// Value returns f(t)
func (o TimeFunction) Value(t float64) float64 { return o.Fcn.F(t, nil) }

// Cell returns the target cell
func (o TimeFunction) Cell() [3]int { return o.Pos }

// Comp returns the target component
func (o TimeFunction) Comp() Component { return o.Component }

// NewContinuousWave returns the source A·sin(2π·f·t)
func NewContinuousWave(freq, amp float64, pos [3]int, comp Component) TimeFunction {
	prms := dbf.NewParams(
		&dbf.P{N: "a", V: amp},
		&dbf.P{N: "b", V: 2.0 * math.Pi * freq},
		&dbf.P{N: "c", V: 0},
	)
	return TimeFunction{Fcn: dbf.New("sin", prms), Pos: pos, Component: comp}
}

// AddSource appends an excitation
//  Note: the cell must be inside the grid
func (o *Simulation) AddSource(src Source) {
	o.Sources = append(o.Sources, src)
}

// applySources adds the value of every source at the current time
func (o *Simulation) applySources() {
	t := o.Time()
	for _, src := range o.Sources {
		p := src.Cell()
		f := o.Field(src.Comp())
		f.Data[f.Idx(p[0], p[1], p[2])] += src.Value(t)
	}
}

// sallocators holds the built-in sources; kind => allocator
//  prms -- parameters; e.g. "fcen", "fwidth", "amp" for "gauss"
var sallocators = make(map[string]func(prms dbf.Params, pos [3]int, comp Component) (Source, error))

// NewSource allocates a source by kind
//  Note: kinds that are not built-in are taken as names of gosl dbf functions; e.g. "sin",
//        "cos", "pulse" or "rmp", with their own parameters
func NewSource(kind string, prms dbf.Params, pos [3]int, comp Component) (src Source, err error) {
	if alloc, ok := sallocators[kind]; ok {
		return alloc(prms, pos, comp)
	}
	fcn, err := newTimeFcn(kind, prms)
	if err != nil {
		return nil, chk.Err("cannot allocate source kind %q. built-in kinds are %v:\n%v", kind, SourceKinds(), err)
	}
	return TimeFunction{Fcn: fcn, Pos: pos, Component: comp}, nil
}

// SourceKinds returns the sorted names of all built-in sources
func SourceKinds() (kinds []string) {
	for k := range sallocators {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return
}

func init() {
	sallocators["gauss"] = func(prms dbf.Params, pos [3]int, comp Component) (Source, error) {
		if err := needPrms("gauss", prms, "fcen", "fwidth"); err != nil {
			return nil, err
		}
		fwidth := prms.GetValue("fwidth")
		if fwidth <= 0 {
			return nil, chk.Err("gauss: fwidth must be positive. %g is invalid", fwidth)
		}
		return GaussianPulse{Fcen: prms.GetValue("fcen"), Fwidth: fwidth, Amplitude: amplitude(prms), Pos: pos, Component: comp}, nil
	}
	sallocators["cw"] = func(prms dbf.Params, pos [3]int, comp Component) (Source, error) {
		if err := needPrms("cw", prms, "freq"); err != nil {
			return nil, err
		}
		return NewContinuousWave(prms.GetValue("freq"), amplitude(prms), pos, comp), nil
	}
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func needPrms(kind string, prms dbf.Params, names ...string) (err error) {
	var missing []string
	for _, n := range names {
		if prms.Find(n) == nil {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		err = chk.Err("%s: parameters %s are required", kind, strings.Join(missing, ", "))
	}
	return
}

// amplitude returns "amp"; defaults to 1
func amplitude(prms dbf.Params) float64 {
	return prms.GetValueOrDefault("amp", 1)
}

// newTimeFcn allocates a dbf function, which panics on unknown names or missing parameters
func newTimeFcn(name string, prms dbf.Params) (fcn dbf.T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("%v", r)
		}
	}()
	return dbf.New(name, prms), nil
}
