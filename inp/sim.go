// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gofdtd/voxel"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for studies
type Data struct {
	Desc    string `json:"desc"`    // description of study
	Matfile string `json:"matfile"` // materials file path; empty means built-in materials
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/gofdtd
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" "json"
	Plots   bool   `json:"plots"`   // save PNG figures
}

// FdtdData holds the parameters of the time-domain study
type FdtdData struct {

	// input
	FreqCenter     float64    `json:"freq_center"`     // centre frequency of the excitation [Hz]
	FreqWidth      float64    `json:"freq_width"`      // bandwidth of the excitation [Hz]
	CellSize       float64    `json:"cell_size"`       // cell size [mm]
	PmlThickness   int        `json:"pml_thickness"`   // number of PML cells on each side
	MaxTimeNs      float64    `json:"max_time_ns"`     // simulated time [ns]
	SourceOffset   [3]float64 `json:"source_offset"`   // source position relative to the domain centre [mm]
	MonitorOffset  [3]float64 `json:"monitor_offset"`  // monitor position relative to the domain centre [mm]
	FieldPlane     string     `json:"field_plane"`     // slice plane: "XY", "XZ" or "YZ"
	Component      string     `json:"component"`       // excited and recorded component; e.g. "Ez"
	DecayThreshold float64    `json:"decay_threshold"` // stop when the monitor rings down below this fraction of its peak; 0 means run the whole time
	S11            bool       `json:"s11"`             // compute S11 using a vacuum reference run

	// derived
	CellSizeM float64 // cell size [m]
	MaxTime   float64 // simulated time [s]
}

// SetDefault sets default values
func (o *FdtdData) SetDefault() {
	o.FreqCenter = 450e6
	o.FreqWidth = 200e6
	o.CellSize = 1.0
	o.PmlThickness = 8
	o.MaxTimeNs = 100
	o.FieldPlane = "XZ"
	o.Component = "Ez"
}

// PostProcess computes derived quantities and checks values
func (o *FdtdData) PostProcess() (err error) {
	if o.CellSize <= 0 {
		return chk.Err("cell_size must be positive. %g is invalid", o.CellSize)
	}
	if o.FreqCenter <= 0 || o.FreqWidth <= 0 {
		return chk.Err("freq_center and freq_width must be positive. %g and %g are invalid", o.FreqCenter, o.FreqWidth)
	}
	if o.MaxTimeNs <= 0 {
		return chk.Err("max_time_ns must be positive. %g is invalid", o.MaxTimeNs)
	}
	if o.PmlThickness < 0 {
		return chk.Err("pml_thickness must be non-negative. %d is invalid", o.PmlThickness)
	}
	if o.DecayThreshold < 0 || o.DecayThreshold >= 1 {
		return chk.Err("decay_threshold must be in [0,1). %g is invalid", o.DecayThreshold)
	}
	o.FieldPlane = strings.ToUpper(o.FieldPlane)
	if o.FieldPlane != "XY" && o.FieldPlane != "YZ" {
		o.FieldPlane = "XZ"
	}
	if o.Component == "" {
		o.Component = "Ez"
	}
	o.CellSizeM = o.CellSize * 1e-3
	o.MaxTime = o.MaxTimeNs * 1e-9
	return
}

// Study holds all study data
type Study struct {

	// input
	Data    Data          `json:"data"`    // global data
	Fdtd    FdtdData      `json:"fdtd"`    // time-domain parameters
	Domain  DomainData    `json:"domain"`  // geometry
	Sources []*SourceData `json:"sources"` // extra sources; the pulse defined by Fdtd is always added

	// derived
	DirOut  string      // directory to save results
	Key     string      // study key; e.g. mystudy01.sim => mystudy01 or mystudy01-alias
	EncType string      // encoder type
	MatDb   *MatDb      // materials
	Grid    *voxel.Grid // voxelised geometry
}

// ReadStudy reads all study data from a .sim JSON file
func ReadStudy(simfilepath, alias string, erasePrev, createDirOut bool) (o *Study, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read study file %q:\n%v", simfilepath, err)
	}

	// set default values and decode
	o = new(Study)
	o.Fdtd.SetDefault()
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal study file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	fnkey := io.FnKey(filepath.Base(simfilepath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gofdtd/" + fnkey
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// erase previous results
	if erasePrev {
		matches, _ := filepath.Glob(filepath.Join(o.DirOut, o.Key+"*"))
		for _, m := range matches {
			os.RemoveAll(m)
		}
	}

	// parameters
	err = o.Fdtd.PostProcess()
	if err != nil {
		return nil, chk.Err("study file %q: %v", simfilepath, err)
	}
	for i, src := range o.Sources {
		err = src.PostProcess(&o.Fdtd)
		if err != nil {
			return nil, chk.Err("study file %q: source %d: %v", simfilepath, i, err)
		}
	}

	// materials
	if o.Data.Matfile == "" {
		o.MatDb = DefaultMatDb()
	} else {
		mdir := dir
		if filepath.IsAbs(o.Data.Matfile) {
			mdir = ""
		}
		o.MatDb, err = ReadMat(mdir, o.Data.Matfile)
		if err != nil {
			return nil, chk.Err("study file %q: cannot read materials file:\n%v", simfilepath, err)
		}
	}

	// geometry
	o.Grid, err = o.Domain.Voxelize(o.MatDb, o.Fdtd.CellSize)
	if err != nil {
		return nil, chk.Err("study file %q: %v", simfilepath, err)
	}
	return
}
