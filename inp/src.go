// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// SourceData holds the definition of an extra source
type SourceData struct {
	Kind   string     `json:"kind"`   // kind of source; e.g. "gauss", "cw" or a dbf function such as "pulse"
	Comp   string     `json:"comp"`   // field component; default is the study component
	Offset [3]float64 `json:"offset"` // position relative to the domain centre [mm]
	Prms   dbf.Params `json:"prms"`   // parameters; e.g. [{"n":"freq", "v":1e9}, {"n":"amp", "v":1}]
}

// PostProcess sets defaults from the study parameters and checks values
func (o *SourceData) PostProcess(fd *FdtdData) (err error) {
	o.Kind = strings.ToLower(strings.TrimSpace(o.Kind))
	if o.Kind == "" {
		return chk.Err("kind of source must be given")
	}
	if o.Comp == "" {
		o.Comp = fd.Component
	}
	for i, p := range o.Prms {
		if p == nil || p.N == "" {
			return chk.Err("source %q: parameter %d must have a name", o.Kind, i)
		}
	}
	return
}

// String prints one source
func (o SourceData) String() string {
	prms := make([]string, len(o.Prms))
	for i, p := range o.Prms {
		prms[i] = io.Sf("{\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	return io.Sf("    {\"kind\":%q, \"comp\":%q, \"offset\":[%g,%g,%g], \"prms\":[%s]}", o.Kind, o.Comp, o.Offset[0], o.Offset[1], o.Offset[2], strings.Join(prms, ", "))
}
