// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// EssentialBc holds information about essential boundary conditions such as
// constrained nodes. Lagrange multipliers are used to implement the constraints.
//  In general, essential bcs / constraints are defined by means of:
//
//      A・y = c
//
//  The resulting Kb matrix will then have the following form:
//      _       _
//     |  K  At  | / δy \   / -R - At*λ \
//     |         | |    | = |           |
//     |_ A   0 _| \ δλ /   \  c - A*y  /
//         Kb       δyb          fb
//
type EssentialBc struct {
	Key   string    // key such as 'ux', 'uy', 'm'
	Eqs   []int     // equations numbers
	ValsA []float64 // values for matrix A
	Fcn   fun.Func  // function that implements the "c" vector in  A・y = c
}

// EbcArray is an array of EssentialBc's
type EbcArray []*EssentialBc

// EssentialBcs implements a structure to record the definition of essential
// bcs / constraints. Each constraint has a unique Lagrange multiplier index.
type EssentialBcs struct {
	Bcs EbcArray     // active essential bcs / constraints
	A   la.Triplet   // matrix of coefficients 'A'
	Am  *la.CCMatrix // compressed form of A matrix
}

// Set sets a single-point constraint, replacing any existent one on the
// same equation
func (o *EssentialBcs) Set(key string, eq int, fcn fun.Func) {

	// replace existent
	for _, bc := range o.Bcs {
		if bc.Eqs[0] == eq {
			bc.Key, bc.Fcn = key, fcn
			return
		}
	}

	// add new
	o.Bcs = append(o.Bcs, &EssentialBc{key, []int{eq}, []float64{1}, fcn})
}

// Build builds the structures required for assembling the A matrix
//  nλ   -- the number of essential bcs == number of Lagrange multipliers
//  nnzA -- the number of non-zeros in matrix 'A'
func (o *EssentialBcs) Build(ny int) (nλ, nnzA int) {

	// skip if there are no constraints
	nλ = len(o.Bcs)
	if nλ == 0 {
		return
	}

	// sort bcs to make the numbering of Lagrange multipliers deterministic
	sort.Sort(o.Bcs)

	// count number of non-zeros in matrix A
	for _, bc := range o.Bcs {
		nnzA += len(bc.ValsA)
	}

	// set matrix A
	o.A.Init(nλ, ny, nnzA)
	for i, bc := range o.Bcs {
		for j, eq := range bc.Eqs {
			o.A.Put(i, eq, bc.ValsA[j])
		}
	}
	o.Am = o.A.ToMatrix(nil)
	return
}

// AddToRhs adds the essential bcs / constraints terms to the augmented fb vector
func (o *EssentialBcs) AddToRhs(fb []float64, t float64, y, λ []float64) {

	// skip if there are no constraints
	if len(o.Bcs) == 0 {
		return
	}

	// add -At*λ to fb
	la.SpMatTrVecMulAdd(fb, -1, o.Am, λ) // fb += -1 * At * λ

	// assemble -rc = c - A*y into fb
	ny := len(y)
	for i, bc := range o.Bcs {
		fb[ny+i] = bc.Fcn.F(t, nil)
	}
	la.SpMatVecMulAdd(fb[ny:], -1, o.Am, y) // fb += -1 * A * y
}

// List returns a simple list logging bcs at time t
func (o *EssentialBcs) List(t float64) (l string) {
	sort.Sort(o.Bcs)
	for _, bc := range o.Bcs {
		l += io.Sf("%8d%8s%23.13f\n", bc.Eqs[0], bc.Key, bc.Fcn.F(t, nil))
	}
	return
}

// functions to implement the Sort interface
func (o EbcArray) Len() int      { return len(o) }
func (o EbcArray) Swap(i, j int) { o[i], o[j] = o[j], o[i] }
func (o EbcArray) Less(i, j int) bool {
	return o[i].Eqs[0] < o[j].Eqs[0]
}
