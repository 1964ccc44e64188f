// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// ErrCanceled is returned (wrapped) when a run is interrupted by its context or hook
var ErrCanceled = errors.New("fdtd: run canceled")

// Step advances the state by one time increment
//  Order: H update, sources, E update, monitors
func (o *Simulation) Step() {
	o.updateH()
	o.applySources()
	o.updateE()
	o.recordMonitors()
	o.TimeStep++
}

// Run executes exactly ceil(TotalTime/Dt) steps
func (o *Simulation) Run() {
	nsteps := o.Cfg.NumSteps()
	for i := 0; i < nsteps; i++ {
		o.Step()
	}
}

// RunUntilDecay steps until maxSteps or until, after the first 100 steps, the latest sample
// of monitor midx drops below threshold times the running peak
//  Output:
//   nsteps -- number of steps executed
func (o *Simulation) RunUntilDecay(midx int, threshold float64, maxSteps int) (nsteps int) {
	nsteps, _ = o.RunUntilDecayContext(context.Background(), midx, threshold, maxSteps, nil)
	return
}

// RunUntilDecayContext runs as RunUntilDecay and checks ctx once per step
//  hook -- optional; called after every step as in RunContext with maxSteps as the total
func (o *Simulation) RunUntilDecayContext(ctx context.Context, midx int, threshold float64, maxSteps int, hook func(step, nsteps int) bool) (nsteps int, err error) {
	peak := 0.0
	for step := 0; step < maxSteps; step++ {
		select {
		case <-ctx.Done():
			return nsteps, fmt.Errorf("%w after %d of at most %d steps: %v", ErrCanceled, nsteps, maxSteps, ctx.Err())
		default:
		}
		o.Step()
		nsteps++
		if hook != nil && !hook(nsteps, maxSteps) {
			return nsteps, fmt.Errorf("%w by hook after %d of at most %d steps", ErrCanceled, nsteps, maxSteps)
		}
		samples := o.MonitorSamples(midx)
		if len(samples) == 0 {
			continue
		}
		v := math.Abs(samples[len(samples)-1])
		if v > peak {
			peak = v
		} else if v < threshold*peak && step > 100 {
			break
		}
	}
	return
}

// RunContext executes nsteps steps checking ctx once per step
//  hook -- optional; called after every step with the number of completed steps. Returning
//          false stops the run
func (o *Simulation) RunContext(ctx context.Context, nsteps int, hook func(step, nsteps int) bool) (err error) {
	for i := 0; i < nsteps; i++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w after %d of %d steps: %v", ErrCanceled, i, nsteps, ctx.Err())
		default:
		}
		o.Step()
		if hook != nil && !hook(i+1, nsteps) {
			return fmt.Errorf("%w by hook after %d of %d steps", ErrCanceled, i+1, nsteps)
		}
	}
	return
}
