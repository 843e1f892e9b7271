// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpor

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
)

func verbose() {
	chk.Verbose = true
}

func Test_kin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kin01. reference configuration")

	kin := NewKinematics(3)
	gradU := la.MatAlloc(3, 3)
	err := kin.Compute(gradU)
	if err != nil {
		tst.Errorf("Compute failed:\n%v", err)
		return
	}

	chk.Scalar(tst, "J ", 1e-15, kin.J, 1.0)
	chk.Scalar(tst, "I1", 1e-15, kin.I1, 3.0)
	chk.Scalar(tst, "I2", 1e-15, kin.I2, 3.0)

	// distortion-free derivatives vanish; BJ equals the identity
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			chk.Scalar(tst, io.Sf("B1[%d][%d]", i, k), 1e-15, kin.B1[i][k], 0)
			chk.Scalar(tst, io.Sf("B2[%d][%d]", i, k), 1e-15, kin.B2[i][k], 0)
			v := 0.0
			if i == k {
				v = 1.0
			}
			chk.Scalar(tst, io.Sf("BJ[%d][%d]", i, k), 1e-15, kin.BJ[i][k], v)
		}
	}
}

func Test_kin02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kin02. pure dilation keeps modified invariants")

	kin := NewKinematics(3)
	for _, λ := range []float64{0.8, 1.1, 1.7} {
		gradU := [][]float64{
			{λ - 1, 0, 0},
			{0, λ - 1, 0},
			{0, 0, λ - 1},
		}
		err := kin.Compute(gradU)
		if err != nil {
			tst.Errorf("Compute failed:\n%v", err)
			return
		}
		chk.Scalar(tst, "J ", 1e-14, kin.J, λ*λ*λ)
		chk.Scalar(tst, "I1", 1e-13, kin.I1, 3.0)
		chk.Scalar(tst, "I2", 1e-13, kin.I2, 3.0)
	}

	// plane-strain padding: 2D gradient gives F[2][2] = 1
	kin2 := NewKinematics(2)
	err := kin2.Compute([][]float64{{0.1, 0.02}, {-0.03, 0.05}})
	if err != nil {
		tst.Errorf("Compute failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "F22", 1e-17, kin2.F[2][2], 1.0)
	chk.Scalar(tst, "J  ", 1e-14, kin2.J, 1.1*1.05-0.02*(-0.03))
}

func Test_kin03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kin03. first derivatives w.r.t. F")

	gradU := [][]float64{
		{0.10, -0.02, 0.03},
		{0.04, 0.12, -0.01},
		{-0.05, 0.06, 0.08},
	}
	kin := NewKinematics(3)
	err := kin.Compute(gradU)
	if err != nil {
		tst.Errorf("Compute failed:\n%v", err)
		return
	}

	// numerical derivatives by perturbing one component of ∇u at a time
	tmp := NewKinematics(3)
	gtmp := la.MatAlloc(3, 3)
	for j := 0; j < 3; j++ {
		for l := 0; l < 3; l++ {
			fval := func(x float64, idx int) float64 {
				for a := 0; a < 3; a++ {
					copy(gtmp[a], gradU[a])
				}
				gtmp[j][l] = x
				e := tmp.Compute(gtmp)
				if e != nil {
					tst.Errorf("Compute failed:\n%v", e)
					return 0
				}
				switch idx {
				case 0:
					return tmp.J
				case 1:
					return tmp.I1
				}
				return tmp.I2
			}
			h := 1e-4
			dJ, _ := num.DerivCentral(func(x float64, args ...interface{}) float64 { return fval(x, 0) }, gradU[j][l], h)
			d1, _ := num.DerivCentral(func(x float64, args ...interface{}) float64 { return fval(x, 1) }, gradU[j][l], h)
			d2, _ := num.DerivCentral(func(x float64, args ...interface{}) float64 { return fval(x, 2) }, gradU[j][l], h)
			chk.AnaNum(tst, io.Sf("BJ[%d][%d]", j, l), 1e-7, kin.BJ[j][l], dJ, false)
			chk.AnaNum(tst, io.Sf("B1[%d][%d]", j, l), 1e-7, kin.B1[j][l], d1, false)
			chk.AnaNum(tst, io.Sf("B2[%d][%d]", j, l), 1e-7, kin.B2[j][l], d2, false)
		}
	}
}

func Test_kin04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kin04. tangent A = dP/dF")

	gradU := [][]float64{
		{0.08, -0.01, 0.02},
		{0.03, -0.06, 0.01},
		{-0.02, 0.05, 0.09},
	}
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

	// analytical
	lm := 0.5
	m := 0.2
	kin := NewKinematics(3)
	err = kin.Compute(gradU)
	if err != nil {
		tst.Errorf("Compute failed:\n%v", err)
		return
	}
	var d Derivs
	err = mdl.Calc(&d, kin.I1, kin.I2, kin.J, m, true)
	if err != nil {
		tst.Errorf("Calc failed:\n%v", err)
		return
	}
	A := make([][][][]float64, 3)
	for i := 0; i < 3; i++ {
		A[i] = make([][][]float64, 3)
		for k := 0; k < 3; k++ {
			A[i][k] = la.MatAlloc(3, 3)
		}
	}
	kin.CalcA(A, &d, lm)

	// numerical
	tmp := NewKinematics(3)
	gtmp := la.MatAlloc(3, 3)
	P := la.MatAlloc(3, 3)
	var dtmp Derivs
	for i := 0; i < 3; i++ {
		for K := 0; K < 3; K++ {
			for j := 0; j < 3; j++ {
				for L := 0; L < 3; L++ {
					dnum, _ := num.DerivCentral(func(x float64, args ...interface{}) float64 {
						for a := 0; a < 3; a++ {
							copy(gtmp[a], gradU[a])
						}
						gtmp[j][L] = x
						e := tmp.Compute(gtmp)
						if e != nil {
							tst.Errorf("Compute failed:\n%v", e)
							return 0
						}
						e = mdl.Calc(&dtmp, tmp.I1, tmp.I2, tmp.J, m, false)
						if e != nil {
							tst.Errorf("Calc failed:\n%v", e)
							return 0
						}
						tmp.CalcP(P, &dtmp, lm)
						return P[i][K]
					}, gradU[j][L], 1e-4)
					chk.AnaNum(tst, io.Sf("A[%d][%d][%d][%d]", i, K, j, L), 1e-6, A[i][K][j][L], dnum, false)
				}
			}
		}
	}
}

func Test_kin05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kin05. non-positive J")

	kin := NewKinematics(3)
	gradU := [][]float64{
		{-2.0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	err := kin.Compute(gradU)
	if err == nil {
		tst.Errorf("Compute should have failed with J < 0")
		return
	}
	io.Pforan("err = %v\n", err)
}
