// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/porofem/porofem/fem"
	"github.com/porofem/porofem/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	saveRes := io.ArgToBool(2, true)
	outdir := io.ArgToString(3, "/tmp/porofem")

	// message
	if verbose {
		io.PfWhite("\nPorofem -- Finite Element Poroelasticity\n\n")
		io.Pf("%v\n", io.ArgsTable(
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"save results", "saveRes", saveRes,
			"results directory", "outdir", outdir,
		))
	}

	// simulation data
	sim := inp.ReadSim(fnamepath)

	// problem
	p, err := fem.NewProblem(sim)
	if err != nil {
		chk.Panic("cannot allocate problem:\n%v", err)
	}
	p.Verbose = verbose

	// run, collecting one JSON line per time step
	var buf bytes.Buffer
	err = p.Run(func(res *fem.Result) error {
		if !saveRes {
			return nil
		}
		b, err := json.Marshal(res)
		if err != nil {
			return err
		}
		buf.Write(b)
		buf.WriteString("\n")
		return nil
	})
	if err != nil {
		chk.Panic("run failed:\n%v", err)
	}

	// save results
	if saveRes {
		io.WriteFileVD(outdir, sim.Key+".res", &buf)
	}
}
