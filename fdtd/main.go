// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"context"
	"math"
	"time"

	"github.com/cpmech/gofdtd/inp"
	"github.com/cpmech/gofdtd/post"
	"github.com/cpmech/gofdtd/voxel"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"golang.org/x/sync/errgroup"
)

// Stats holds run statistics
type Stats struct {
	NumSteps   int           // number of executed steps
	WallTime   time.Duration // elapsed time
	Nx, Ny, Nz int           // grid size including PML
	Dt         float64       // time step [s]
	Ncells     int           // total number of cells
}

// Result holds the output of one study
type Result struct {
	Key        string           // study key
	Dt         float64          // time step [s]
	Fmin, Fmax float64          // analysis band [Hz]
	TimesNs    []float64        // sample times [ns]
	Samples    []float64        // monitor samples
	Resonances []post.Resonance // resonances within [fc-fw, fc+fw]
	S11        []post.S11Point  // S11 within [fc-fw, fc+fw]; empty if not requested
	Slice      []float64        // final field slice through the grid centre
	SliceW     int              // slice width
	SliceH     int              // slice height
	Plane      string           // slice plane
	Component  string           // excited and recorded component
	Stats      Stats            // statistics
}

// Outcome holds the result of an asynchronous run
type Outcome struct {
	Result *Result
	Err    error
}

// Main holds all data for a study using the FDTD method
type Main struct {
	Study   *inp.Study                  // study data
	Sim     *Simulation                 // main simulation
	Ref     *Simulation                 // vacuum reference for S11; nil if not requested
	Result  *Result                     // results after Run
	Hook    func(step, nsteps int) bool // optional; called after every step of the main run with the maximum number of steps
	ShowMsg bool                        // show messages

	// auxiliary
	comp  Component // excited and recorded component
	midx  int       // monitor index in Sim
	ridx  int       // monitor index in Ref
	plane Plane     // slice plane
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- study (.sim) filename including full path
//   alias       -- word to be appended to the study key
//   erasePrev   -- erase previous results files
//   verbose     -- show messages
func NewMain(simfilepath, alias string, erasePrev, verbose bool) (o *Main, err error) {
	study, err := inp.ReadStudy(simfilepath, alias, erasePrev, true)
	if err != nil {
		return
	}
	if verbose {
		io.Pf("> Study (.sim) file read\n")
	}
	return NewMainStudy(study, verbose)
}

// NewMainStudy returns a new Main structure from study data already read
func NewMainStudy(study *inp.Study, verbose bool) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.Study = study
	o.ShowMsg = verbose
	fd := &study.Fdtd

	// component and plane
	o.comp, err = ParseComponent(fd.Component)
	if err != nil {
		return nil, err
	}
	o.plane = ParsePlane(fd.FieldPlane)

	// main simulation
	o.Sim, o.midx, err = o.newSim(study.Grid)
	if err != nil {
		return nil, err
	}

	// vacuum reference
	if fd.S11 {
		vg := voxel.NewGridDims(study.Grid.Nx, study.Grid.Ny, study.Grid.Nz, study.Grid.VoxelSize)
		o.Ref, o.ridx, err = o.newSim(vg)
		if err != nil {
			return nil, err
		}
	}

	// message
	if o.ShowMsg {
		c := o.Sim.Cfg
		io.Pf("> Grid %d x %d x %d cells (%d); dt = %g s; %d steps\n", c.Nx, c.Ny, c.Nz, c.Ncells(), c.Dt, c.NumSteps())
	}
	return
}

// Run runs the study
func (o *Main) Run() (err error) {
	return o.RunContext(context.Background())
}

// RunContext runs the study until completion or until ctx is done
func (o *Main) RunContext(ctx context.Context) (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// message
	if o.ShowMsg {
		io.Pf("> Running FDTD solver\n")
	}

	// time loops
	fd := &o.Study.Fdtd
	maxSteps := o.Sim.Cfg.NumSteps()
	var nsteps int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (e error) {
		if fd.DecayThreshold > 0 {
			nsteps, e = o.Sim.RunUntilDecayContext(gctx, o.midx, fd.DecayThreshold, maxSteps, o.Hook)
			return
		}
		e = o.Sim.RunContext(gctx, maxSteps, o.Hook)
		nsteps = o.Sim.TimeStep
		return
	})
	if o.Ref != nil {
		g.Go(func() error {
			return o.Ref.RunContext(gctx, maxSteps, nil)
		})
	}
	err = g.Wait()
	if err != nil {
		return
	}

	// results
	o.Result = o.collect(nsteps, time.Since(cputime))
	return
}

// RunAsync runs the study in a new goroutine and sends the outcome on the returned channel
func (o *Main) RunAsync(ctx context.Context) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		err := o.RunContext(ctx)
		ch <- Outcome{Result: o.Result, Err: err}
		close(ch)
	}()
	return ch
}

// FreqRange returns the analysis band [max(fc-fw,0), fc+fw]
func (o *Main) FreqRange() (fmin, fmax float64) {
	fd := &o.Study.Fdtd
	return math.Max(fd.FreqCenter-fd.FreqWidth, 0), fd.FreqCenter + fd.FreqWidth
}

// CellFromOffset returns the cell at the grid centre plus offset [mm] clamped to the grid
func (o *Main) CellFromOffset(offset [3]float64) (cell [3]int) {
	g, t := o.Study.Grid, o.Study.Fdtd.PmlThickness
	n := [3]int{g.Nx + 2*t, g.Ny + 2*t, g.Nz + 2*t}
	for i := 0; i < 3; i++ {
		cell[i] = n[i]/2 + int(math.Round(offset[i]/o.Study.Fdtd.CellSize))
		if cell[i] < 0 {
			cell[i] = 0
		}
		if cell[i] > n[i]-1 {
			cell[i] = n[i] - 1
		}
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// newSim allocates a simulation from a voxel grid and adds sources and the monitor
func (o *Main) newSim(vg *voxel.Grid) (sim *Simulation, midx int, err error) {
	fd := &o.Study.Fdtd
	sim, err = FromVoxelGrid(vg, fd.PmlThickness)
	if err != nil {
		return
	}
	sim.Cfg.TotalTime = fd.MaxTime

	// pulse
	sim.AddSource(GaussianPulse{
		Fcen:      fd.FreqCenter,
		Fwidth:    fd.FreqWidth,
		Amplitude: 1,
		Pos:       o.CellFromOffset(fd.SourceOffset),
		Component: o.comp,
	})

	// extra sources
	for i, s := range o.Study.Sources {
		comp, e := ParseComponent(s.Comp)
		if e != nil {
			return nil, 0, chk.Err("source %d: %v", i, e)
		}
		src, e := NewSource(s.Kind, s.Prms, o.CellFromOffset(s.Offset), comp)
		if e != nil {
			return nil, 0, chk.Err("source %d: %v", i, e)
		}
		sim.AddSource(src)
	}

	// monitor
	midx = sim.AddMonitor(o.CellFromOffset(fd.MonitorOffset), o.comp)
	return
}

// collect post-processes the monitor samples and the final fields
func (o *Main) collect(nsteps int, walltime time.Duration) (res *Result) {
	c := o.Sim.Cfg
	res = &Result{
		Key:       o.Study.Key,
		Dt:        c.Dt,
		Plane:     o.plane.String(),
		Component: o.comp.String(),
		Stats: Stats{
			NumSteps: nsteps,
			WallTime: walltime,
			Nx:       c.Nx,
			Ny:       c.Ny,
			Nz:       c.Nz,
			Dt:       c.Dt,
			Ncells:   c.Ncells(),
		},
	}

	// time series
	samples := o.Sim.MonitorSamples(o.midx)
	res.Samples = append([]float64{}, samples...)
	res.TimesNs = make([]float64, len(samples))
	for i := range samples {
		res.TimesNs[i] = float64(i) * c.Dt * 1e9
	}

	// resonances
	fmin, fmax := o.FreqRange()
	res.Fmin, res.Fmax = fmin, fmax
	res.Resonances = post.FindResonances(res.Samples, c.Dt, fmin, fmax)

	// S11
	if o.Ref != nil {
		inc := o.Ref.MonitorSamples(o.ridx)
		n := imin2(len(inc), len(samples))
		inc = inc[:n]
		ref := make([]float64, n)
		for i := 0; i < n; i++ {
			ref[i] = samples[i] - inc[i]
		}
		res.S11 = post.Band(post.ComputeS11(inc, ref, c.Dt), fmin, fmax)
	}

	// slice through the centre
	index := c.Ny / 2
	switch o.plane {
	case PlaneXY:
		index = c.Nz / 2
	case PlaneYZ:
		index = c.Nx / 2
	}
	res.Slice, res.SliceW, res.SliceH = o.Sim.FieldSlice(o.comp, o.plane, index)
	return
}

// onexit prints the final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
