// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpor

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

func Test_isoexp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("isoexp01. reference state")

	mdl, err := New("isoexp")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	prms := fun.Prms{
		&fun.Prm{N: "a", V: 2.0},
		&fun.Prm{N: "D1", V: 1.5},
		&fun.Prm{N: "D2", V: 0.5},
		&fun.Prm{N: "D3", V: 0.25},
		&fun.Prm{N: "Q", V: 100.0},
		&fun.Prm{N: "rho", V: 1000.0},
	}
	err = mdl.Init(3, prms)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	// at the reference state the energy, the volumetric and the mass
	// derivatives all vanish
	var d Derivs
	err = mdl.Calc(&d, 3.0, 3.0, 1.0, 0.0, true)
	if err != nil {
		tst.Errorf("Calc failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "Psi  ", 1e-15, d.Psi, 0)
	chk.Scalar(tst, "Psi1 ", 1e-15, d.Psi1, 0)
	chk.Scalar(tst, "Psi2 ", 1e-15, d.Psi2, 2.0*0.25)
	chk.Scalar(tst, "PsiJ ", 1e-15, d.PsiJ, 0)
	chk.Scalar(tst, "Psim ", 1e-15, d.Psim, 0)
	chk.Scalar(tst, "PsiJJ", 1e-15, d.PsiJJ, 100.0)
	chk.Scalar(tst, "PsiJm", 1e-18, d.PsiJm, -0.1)

	// the coupling pressure p = ρ ∂Ψ/∂m at J=1 is linear in m
	m := 3.0
	err = mdl.Calc(&d, 3.0, 3.0, 1.0, m, false)
	if err != nil {
		tst.Errorf("Calc failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "rho*Psim", 1e-13, 1000.0*d.Psim, 100.0*m/1000.0)
}

func Test_isoexp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("isoexp02. derivatives")

	mdl, err := New("isoexp")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	err = mdl.Init(3, mdl.GetPrms())
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	// point away from the reference state
	i1, i2, J, m := 3.2, 3.4, 1.1, 0.3
	var d Derivs
	err = mdl.Calc(&d, i1, i2, J, m, true)
	if err != nil {
		tst.Errorf("Calc failed:\n%v", err)
		return
	}

	// first derivatives
	var tmp Derivs
	psi := func(a, b, c, e float64) float64 {
		mdl.Calc(&tmp, a, b, c, e, false)
		return tmp.Psi
	}
	h := 1e-5
	d1, _ := num.DerivCentral(func(x float64, args ...interface{}) float64 { return psi(x, i2, J, m) }, i1, h)
	d2, _ := num.DerivCentral(func(x float64, args ...interface{}) float64 { return psi(i1, x, J, m) }, i2, h)
	dJ, _ := num.DerivCentral(func(x float64, args ...interface{}) float64 { return psi(i1, i2, x, m) }, J, h)
	dm, _ := num.DerivCentral(func(x float64, args ...interface{}) float64 { return psi(i1, i2, J, x) }, m, h)
	chk.AnaNum(tst, "Psi1", 1e-6, d.Psi1, d1, chk.Verbose)
	chk.AnaNum(tst, "Psi2", 1e-6, d.Psi2, d2, chk.Verbose)
	chk.AnaNum(tst, "PsiJ", 1e-6, d.PsiJ, dJ, chk.Verbose)
	chk.AnaNum(tst, "Psim", 1e-9, d.Psim, dm, chk.Verbose)

	// second derivatives
	p1 := func(a, b float64) float64 {
		mdl.Calc(&tmp, a, b, J, m, false)
		return tmp.Psi1
	}
	p2 := func(a, b float64) float64 {
		mdl.Calc(&tmp, a, b, J, m, false)
		return tmp.Psi2
	}
	d11, _ := num.DerivCentral(func(x float64, args ...interface{}) float64 { return p1(x, i2) }, i1, h)
	d12, _ := num.DerivCentral(func(x float64, args ...interface{}) float64 { return p1(i1, x) }, i2, h)
	d22, _ := num.DerivCentral(func(x float64, args ...interface{}) float64 { return p2(i1, x) }, i2, h)
	chk.AnaNum(tst, "Psi11", 1e-5, d.Psi11, d11, chk.Verbose)
	chk.AnaNum(tst, "Psi12", 1e-5, d.Psi12, d12, chk.Verbose)
	chk.AnaNum(tst, "Psi22", 1e-5, d.Psi22, d22, chk.Verbose)
}

func Test_isoexp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("isoexp03. errors")

	// unknown model
	_, err := New("inexistent")
	if err == nil {
		tst.Errorf("New should have failed with unknown model name")
		return
	}
	io.Pforan("err = %v\n", err)

	// missing density
	mdl, err := New("isoexp")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	err = mdl.Init(3, fun.Prms{&fun.Prm{N: "a", V: 1}})
	if err == nil {
		tst.Errorf("Init should have failed with missing rho")
		return
	}
	io.Pforan("err = %v\n", err)
}
