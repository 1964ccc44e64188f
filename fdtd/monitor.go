// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

// Monitor records one component at one cell after every step
type Monitor struct {
	Pos       [3]int    // cell
	Component Component // field component
	Samples   []float64 // one sample per step
}

// AddMonitor appends a probe and returns its index
//  Note: the cell must be inside the grid
func (o *Simulation) AddMonitor(pos [3]int, comp Component) int {
	o.Monitors = append(o.Monitors, &Monitor{Pos: pos, Component: comp})
	return len(o.Monitors) - 1
}

// MonitorSamples returns the samples of a monitor; nil if idx is out of range
func (o *Simulation) MonitorSamples(idx int) []float64 {
	if idx < 0 || idx >= len(o.Monitors) {
		return nil
	}
	return o.Monitors[idx].Samples
}

// recordMonitors appends the current values
func (o *Simulation) recordMonitors() {
	for _, m := range o.Monitors {
		f := o.Field(m.Component)
		m.Samples = append(m.Samples, f.Data[f.Idx(m.Pos[0], m.Pos[1], m.Pos[2])])
	}
}
