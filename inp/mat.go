// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gofdtd/voxel"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Material holds the data of one electromagnetic material
type Material struct {
	Name  string  `json:"name"`  // name of material; e.g. "copper"
	Eps   float64 `json:"eps"`   // relative permittivity
	Mu    float64 `json:"mu"`    // relative permeability
	Sigma float64 `json:"sigma"` // electric conductivity [S/m]
	Pec   bool    `json:"pec"`   // perfect electric conductor
	Extra string  `json:"extra"` // extra information about this material
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {
	Materials MatsData `json:"materials"` // all materials
}

// DefaultMatDb returns a database with air, pec, copper and fr4
func DefaultMatDb() *MatDb {
	return &MatDb{Materials: MatsData{
		{Name: "air", Eps: 1, Mu: 1},
		{Name: "pec", Eps: 1, Mu: 1, Pec: true},
		{Name: "copper", Eps: 1, Mu: 1, Sigma: 5.8e7},
		{Name: "fr4", Eps: 4.4, Mu: 1, Sigma: 1e-3},
	}}
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read materials file %q:\n%v", fn, err)
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, err
	}

	// check
	names := make(map[string]bool)
	for _, m := range mdb.Materials {
		if m.Name == "" {
			return nil, chk.Err("all materials must have a name")
		}
		if names[m.Name] {
			return nil, chk.Err("material %q is defined more than once", m.Name)
		}
		names[m.Name] = true
		if m.Eps == 0 {
			m.Eps = 1
		}
		if m.Mu == 0 {
			m.Mu = 1
		}
		if m.Eps < 1 || m.Mu <= 0 || m.Sigma < 0 {
			return nil, chk.Err("material %q has invalid properties: eps=%g, mu=%g, sigma=%g", m.Name, m.Eps, m.Mu, m.Sigma)
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Voxel returns the voxel palette entry of this material
func (o *Material) Voxel() *voxel.Material {
	sigma := o.Sigma
	if o.Pec {
		sigma = math.Inf(1)
	}
	return &voxel.Material{Name: o.Name, Permittivity: o.Eps, Permeability: o.Mu, Conductivity: sigma, IsPec: o.Pec}
}

// String prints one material
func (o *Material) String() string {
	return io.Sf("    {\n      \"name\"  : %q,\n      \"eps\"   : %g,\n      \"mu\"    : %g,\n      \"sigma\" : %g,\n      \"pec\"   : %v,\n      \"extra\" : %q\n    }", o.Name, o.Eps, o.Mu, o.Sigma, o.Pec, o.Extra)
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n%v\n}", o.Materials)
}
