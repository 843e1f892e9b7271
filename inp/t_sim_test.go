// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. read .sim file")

	sim := ReadSim("data/square.sim")
	if sim == nil {
		tst.Errorf("cannot read simulation file")
		return
	}
	io.Pforan("desc = %q\n", sim.Data.Desc)

	chk.StrAssert(sim.Key, "square")
	chk.StrAssert(sim.Data.Matmodel, "isoexp")
	chk.IntAssert(sim.Ndim, 2)
	chk.IntAssert(sim.Control.Ncoup, 3)
	chk.IntAssert(sim.Solver.NmaxIt, 1000)
	chk.Scalar(tst, "dt", 1e-17, sim.Control.Dt, 0.01)
	chk.Scalar(tst, "tf", 1e-17, sim.Control.Tf, 0.05)
	chk.Scalar(tst, "theta", 1e-17, sim.Control.Theta, 0.5)
	chk.Scalar(tst, "tol", 1e-17, sim.Solver.LinTol, 1e-8)
	chk.Scalar(tst, "rho", 1e-17, sim.Porous.RhoF, 1000)
	chk.Scalar(tst, "phi0", 1e-17, sim.Porous.Phi0, 0.1)

	// constant permeability
	kf, err := sim.Kfun()
	if err != nil {
		tst.Errorf("Kfun failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "K", 1e-17, kf.F(0, nil), 1e-7)

	// material parameters
	if prm := sim.MatPrms.Find("Q"); prm == nil {
		tst.Errorf("cannot find parameter Q")
	}
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. permeability accessor")

	var sim Simulation
	sim.SetDefault()
	sim.Functions = FuncsData{
		&FuncData{Name: "kramp", Type: "rmp"},
	}

	// missing
	_, err := sim.Kfun()
	if err == nil {
		tst.Errorf("Kfun should have failed with missing K")
		return
	}
	io.Pforan("err = %v\n", err)

	// function by name
	sim.Porous.K = json.RawMessage(`"kramp"`)
	_, err = sim.Kfun()
	if err != nil {
		tst.Errorf("Kfun failed:\n%v", err)
		return
	}

	// unknown function name
	sim.Porous.K = json.RawMessage(`"inexistent"`)
	_, err = sim.Kfun()
	if err == nil {
		tst.Errorf("Kfun should have failed with unknown function name")
		return
	}
	io.Pforan("err = %v\n", err)

	// unsupported type
	sim.Porous.K = json.RawMessage(`[1, 2, 3]`)
	_, err = sim.Kfun()
	if err == nil {
		tst.Errorf("Kfun should have failed with unsupported type")
		return
	}
	io.Pforan("err = %v\n", err)
}
