// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/cpmech/gofdtd/fdtd"
	"github.com/cpmech/gofdtd/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	saveFigs := io.ArgToBool(3, false)
	doprof := io.ArgToInt(4, 0)
	profdir := "/tmp/gofdtd/" + fnkey

	// message
	if verbose {
		io.PfWhite("\nGofdtd -- Go Finite Difference Time Domain\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"save figures", "saveFigs", saveFigs,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling?
	switch doprof {
	case 1:
		defer utl.ProfCPU(profdir, "cpu.pprof", !verbose)()
	case 2:
		defer utl.ProfMEM(profdir, "mem.pprof", !verbose)()
	}

	// study
	analysis, err := fdtd.NewMain(fnamepath, "", erasePrev, verbose)
	if err != nil {
		chk.Panic("cannot start study:\n%v", err)
	}

	// run study; Ctrl+C stops the time loop
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = analysis.RunContext(ctx)
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// results
	res, study := analysis.Result, analysis.Study
	err = out.SaveResult(res, study.DirOut, study.Key, study.EncType)
	if err != nil {
		chk.Panic("%v", err)
	}
	fn, err := out.SaveSeries(res, study.DirOut, study.Key)
	if err != nil {
		chk.Panic("%v", err)
	}
	if verbose {
		io.Pf("> Results saved in %s\n", out.ResultPath(study.DirOut, study.Key))
		io.Pf("> Time series saved in %s\n", fn)
		io.Pf("\n%s\n\n", out.AsciiSeries(res, 70, 12))
		for _, r := range res.Resonances {
			io.Pforan("  resonance: f = %.6g Hz, Q = %.4g, amplitude = %.4g\n", r.Freq, r.Q, r.Amplitude)
		}
	}
	if saveFigs || study.Data.Plots {
		fns, err := out.SaveFigures(res, study.DirOut, study.Key)
		if err != nil {
			chk.Panic("%v", err)
		}
		if verbose {
			io.Pf("> Figures saved: %v\n", fns)
		}
	}
}
