// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"

	"github.com/porofem/porofem/inp"
)

// perturb sets a smooth non-trivial state
func perturb(p *Problem, scaleU, scaleM float64) {
	for i := 0; i < p.Dom.NyS; i++ {
		p.Dom.Us[i] += scaleU * math.Sin(float64(i+1))
	}
	for i := 0; i < p.Dom.NyF; i++ {
		p.Dom.Mf[i] += scaleM * math.Cos(float64(i))
	}
}

func Test_kb01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kb01. solid element Jacobian vs numerical derivatives")

	// problem
	sim := inp.ReadSim("data/square.sim")
	p, err := NewProblem(sim)
	if err != nil {
		tst.Errorf("NewProblem failed:\n%v", err)
		return
	}
	err = p.Build()
	if err != nil {
		tst.Errorf("Build failed:\n%v", err)
		return
	}

	// non-trivial state
	perturb(p, 0.005, 0.3)

	// analytical Jacobian of the first element
	e := p.SolidElems[0]
	var Kb la.Triplet
	n := e.Nu + e.Nlm
	Kb.Init(p.Dom.NyS, p.Dom.NyS, n*n)
	err = e.AddToKb(&Kb, true)
	if err != nil {
		tst.Errorf("AddToKb failed:\n%v", err)
		return
	}
	Kana := Kb.ToMatrix(nil).ToDense()

	// numerical derivatives
	fbtmp := make([]float64, p.Dom.NyS)
	var tmp float64
	for _, I := range e.eqs {
		for _, J := range e.eqs {
			dnum, _ := num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
				tmp, p.Dom.Us[J] = p.Dom.Us[J], x
				la.VecFill(fbtmp, 0)
				err := e.AddToRhs(fbtmp, 0)
				if err != nil {
					chk.Panic("AddToRhs failed:\n%v", err)
				}
				res = -fbtmp[I]
				p.Dom.Us[J] = tmp
				return
			}, p.Dom.Us[J], 1e-6)
			chk.AnaNum(tst, io.Sf("K%3d%3d", I, J), 1e-6, Kana[I][J], dnum, chk.Verbose)
		}
	}
}

func Test_kb02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kb02. fluid element Jacobian vs numerical derivatives")

	// problem
	sim := inp.ReadSim("data/square.sim")
	p, err := NewProblem(sim)
	if err != nil {
		tst.Errorf("NewProblem failed:\n%v", err)
		return
	}
	err = p.Build()
	if err != nil {
		tst.Errorf("Build failed:\n%v", err)
		return
	}

	// non-trivial state with a moving solid and a pressure field
	perturb(p, 0.004, 0.2)
	p.Dom.BeginStep(0.01, 0.01)
	perturb(p, 0.002, 0.1)
	for i := 0; i < p.Dom.NyF; i++ {
		p.Dom.Pp[i] = 0.05 * math.Sin(float64(2*i))
	}

	// analytical Jacobian of the first element
	e := p.FluidElems[0]
	var Kb la.Triplet
	n := e.Shp.Nverts
	Kb.Init(p.Dom.NyF, p.Dom.NyF, n*n)
	err = e.AddToKb(&Kb, true)
	if err != nil {
		tst.Errorf("AddToKb failed:\n%v", err)
		return
	}
	Kana := Kb.ToMatrix(nil).ToDense()

	// numerical derivatives w.r.t. the fluid mass content
	fbtmp := make([]float64, p.Dom.NyF)
	var tmp float64
	for _, I := range e.Mmap {
		for _, J := range e.Mmap {
			dnum, _ := num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
				tmp, p.Dom.Mf[J] = p.Dom.Mf[J], x
				la.VecFill(fbtmp, 0)
				err := e.AddToRhs(fbtmp, 0.01)
				if err != nil {
					chk.Panic("AddToRhs failed:\n%v", err)
				}
				res = -fbtmp[I]
				p.Dom.Mf[J] = tmp
				return
			}, p.Dom.Mf[J], 1e-6)
			chk.AnaNum(tst, io.Sf("K%3d%3d", I, J), 1e-6, Kana[I][J], dnum, chk.Verbose)
		}
	}
}

func Test_kb03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kb03. fluid residual is linear in θ")

	// problem
	sim := inp.ReadSim("data/square.sim")
	p, err := NewProblem(sim)
	if err != nil {
		tst.Errorf("NewProblem failed:\n%v", err)
		return
	}
	err = p.Build()
	if err != nil {
		tst.Errorf("Build failed:\n%v", err)
		return
	}

	// non-trivial state
	perturb(p, 0.004, 0.2)
	p.Dom.BeginStep(0.01, 0.01)
	perturb(p, 0.002, 0.1)

	// residuals with θ = 0, 1 and 1/2
	rhs := func(θ float64) []float64 {
		p.Sim.Control.Theta = θ
		fb := make([]float64, p.Dom.NyF)
		for _, e := range p.FluidElems {
			err := e.AddToRhs(fb, 0.01)
			if err != nil {
				tst.Errorf("AddToRhs failed:\n%v", err)
			}
		}
		return fb
	}
	fb0 := rhs(0)
	fb1 := rhs(1)
	fbh := rhs(0.5)
	mean := make([]float64, p.Dom.NyF)
	for i := 0; i < p.Dom.NyF; i++ {
		mean[i] = 0.5 * (fb0[i] + fb1[i])
	}
	chk.Vector(tst, "θ-scheme linearity", 1e-13, fbh, mean)
}

func Test_kb04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kb04. θ endpoints of the fluid time scheme")

	// problem
	sim := inp.ReadSim("data/square.sim")
	p, err := NewProblem(sim)
	if err != nil {
		tst.Errorf("NewProblem failed:\n%v", err)
		return
	}
	err = p.Build()
	if err != nil {
		tst.Errorf("Build failed:\n%v", err)
		return
	}

	// non-trivial state with a moving solid so the advection term is active
	perturb(p, 0.004, 0.2)
	p.Dom.BeginStep(0.01, 0.01)
	perturb(p, 0.002, 0.1)

	// assembled fluid right-hand side
	rhs := func() []float64 {
		fb := make([]float64, p.Dom.NyF)
		for _, e := range p.FluidElems {
			err := e.AddToRhs(fb, 0.01)
			if err != nil {
				tst.Errorf("AddToRhs failed:\n%v", err)
			}
		}
		return fb
	}

	// fluid-space mass matrix
	mm := p.massF.T.ToMatrix(nil)
	nf := p.Dom.NyF
	dm := make([]float64, nf)
	dif := make([]float64, nf)
	expected := make([]float64, nf)

	// backward Euler: with θ = 1 the content at the beginning of the step
	// enters the residual only through the time derivative, hence a change
	// δm_n moves fb by exactly M δm_n / Δt
	p.Sim.Control.Theta = 1
	mfn := la.VecClone(p.Dom.MfN)
	fbA := rhs()
	for i := 0; i < nf; i++ {
		p.Dom.MfN[i] = mfn[i] + 0.05*math.Sin(float64(3*i))
		dm[i] = mfn[i] - p.Dom.MfN[i]
	}
	fbB := rhs()
	for i := 0; i < nf; i++ {
		dif[i] = fbA[i] - fbB[i]
	}
	la.SpMatVecMul(expected, 1.0/p.Dom.Dt, mm, dm)
	chk.Vector(tst, "θ=1: δfb = M δm_n / Δt", 1e-11, dif, expected)
	copy(p.Dom.MfN, mfn)

	// with θ = 0 the gradient is taken at the old content and the current
	// content enters only through the time derivative
	p.Sim.Control.Theta = 0
	mf := la.VecClone(p.Dom.Mf)
	fbA = rhs()
	for i := 0; i < nf; i++ {
		p.Dom.Mf[i] = mf[i] + 0.05*math.Cos(float64(3*i))
		dm[i] = p.Dom.Mf[i] - mf[i]
	}
	fbB = rhs()
	for i := 0; i < nf; i++ {
		dif[i] = fbA[i] - fbB[i]
	}
	la.SpMatVecMul(expected, 1.0/p.Dom.Dt, mm, dm)
	chk.Vector(tst, "θ=0: δfb = M δm / Δt", 1e-11, dif, expected)
}
