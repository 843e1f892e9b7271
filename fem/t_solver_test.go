// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

func verbose() {
	chk.Verbose = true
}

func Test_minres01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("minres01. symmetric positive definite system")

	// K = [4 1 0; 1 3 1; 0 1 2]
	var t la.Triplet
	t.Init(3, 3, 7)
	t.Put(0, 0, 4)
	t.Put(0, 1, 1)
	t.Put(1, 0, 1)
	t.Put(1, 1, 3)
	t.Put(1, 2, 1)
	t.Put(2, 1, 1)
	t.Put(2, 2, 2)

	// solve
	sol := &Minres{Tol: 1e-12, NmaxIt: 100}
	sol.InitR(&t, true, false, false)
	sol.Fact()
	b := []float64{1, 2, 3}
	x := make([]float64, 3)
	err := sol.SolveR(x, b, false)
	if err != nil {
		tst.Errorf("SolveR failed:\n%v", err)
		return
	}

	// check residual
	r := make([]float64, 3)
	la.SpMatVecMul(r, 1, t.ToMatrix(nil), x)
	for i := 0; i < 3; i++ {
		chk.Scalar(tst, "K*x - b", 1e-10, r[i], b[i])
	}
}

func Test_minres02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("minres02. symmetric indefinite system")

	// K = [2 1; 1 -1]: saddle-point like matrix
	var t la.Triplet
	t.Init(2, 2, 4)
	t.Put(0, 0, 2)
	t.Put(0, 1, 1)
	t.Put(1, 0, 1)
	t.Put(1, 1, -1)

	sol := &Minres{Tol: 1e-12, NmaxIt: 50}
	sol.InitR(&t, true, false, false)
	sol.Fact()
	b := []float64{1, 1}
	x := make([]float64, 2)
	err := sol.SolveR(x, b, false)
	if err != nil {
		tst.Errorf("SolveR failed:\n%v", err)
		return
	}

	// exact solution of the 2x2 system
	chk.Scalar(tst, "x0", 1e-10, x[0], 2.0/3.0)
	chk.Scalar(tst, "x1", 1e-10, x[1], -1.0/3.0)
}

func Test_minres03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("minres03. zero right-hand side and solver selection")

	var t la.Triplet
	t.Init(2, 2, 2)
	t.Put(0, 0, 1)
	t.Put(1, 1, 1)

	sol := &Minres{Tol: 1e-12, NmaxIt: 10}
	sol.InitR(&t, true, false, false)
	sol.Fact()
	x := []float64{123, 456}
	err := sol.SolveR(x, []float64{0, 0}, false)
	if err != nil {
		tst.Errorf("SolveR failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "x0", 1e-15, x[0], 0)
	chk.Scalar(tst, "x1", 1e-15, x[1], 0)

	// unknown strategy
	_, err = NewLinearSolver("multigrid", 1e-8, 10)
	if err == nil {
		tst.Errorf("NewLinearSolver should have failed with an unknown strategy")
	}
}

func Test_minres04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("minres04. Jacobi scaling")

	// badly scaled symmetric positive definite system
	var t la.Triplet
	t.Init(2, 2, 4)
	t.Put(0, 0, 1e8)
	t.Put(0, 1, 1)
	t.Put(1, 0, 1)
	t.Put(1, 1, 1e-4)

	sol := &Minres{Tol: 1e-12, NmaxIt: 50}
	sol.InitR(&t, true, false, false)
	sol.Fact()
	x := make([]float64, 2)
	b := []float64{3e8 - 2, 3 - 2e-4} // K * [3, -2]
	err := sol.SolveR(x, b, false)
	if err != nil {
		tst.Errorf("SolveR failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "x0", 1e-8, x[0], 3)
	chk.Scalar(tst, "x1", 1e-8, x[1], -2)

	// augmented system with a zero diagonal on the multiplier row
	var ta la.Triplet
	ta.Init(3, 3, 8)
	ta.Put(0, 0, 4)
	ta.Put(1, 1, 2)
	ta.Put(0, 2, 1)
	ta.Put(2, 0, 1)
	ta.Put(1, 2, 1)
	ta.Put(2, 1, 1)

	sol = &Minres{Tol: 1e-12, NmaxIt: 50}
	sol.InitR(&ta, true, false, false)
	sol.Fact()
	xa := make([]float64, 3)
	ba := []float64{6, 0, 0} // K * [1, -1, 2]
	err = sol.SolveR(xa, ba, false)
	if err != nil {
		tst.Errorf("SolveR failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "x0", 1e-8, xa[0], 1)
	chk.Scalar(tst, "x1", 1e-8, xa[1], -1)
	chk.Scalar(tst, "x2", 1e-8, xa[2], 2)
}
