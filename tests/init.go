// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements cross-package regression tests of FDTD studies
package tests

import (
	"github.com/cpmech/gofdtd/fdtd"
	"github.com/cpmech/gofdtd/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func Verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// RunStudy reads a study without touching its output directory and runs it
func RunStudy(simfilepath string) (main *fdtd.Main, err error) {
	study, err := inp.ReadStudy(simfilepath, "", false, false)
	if err != nil {
		return
	}
	main, err = fdtd.NewMainStudy(study, chk.Verbose)
	if err != nil {
		return
	}
	err = main.Run()
	return
}
