// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/porofem/porofem/inp"
)

// System holds a nonlinear system of equations: the elements contributing to
// it, the essential boundary conditions and the solver arrays
type System struct {

	// essential
	Name   string       // name of system; e.g. "solid" or "fluid"
	Elems  []Elem       // elements contributing to this system
	EssBcs EssentialBcs // essential (Dirichlet-type) boundary conditions

	// degrees of freedom
	Ny   int       // number of primary unknowns
	Nlam int       // number of Lagrange multipliers
	Nyb  int       // total number of equations: Ny + Nlam
	Y    []float64 // [Ny] primary unknowns (alias into the domain state)
	Lam  []float64 // [Nlam] Lagrange multipliers

	// solver arrays
	Kb       la.Triplet // augmented Jacobian matrix
	Fb       []float64  // augmented right-hand side: negative of residuals
	Wb       []float64  // workspace: solution of the linearised system
	LinSol   LinearSolver
	InitLSol bool // flag telling that LinSol needs to be initialised
}

// Build finalises the system structure after all bcs have been set
//  nnzKb -- approximate number of non-zeros of the element contributions
func (o *System) Build(y []float64, nnzKb int, kind string, tol float64, nmaxit int) (err error) {
	o.Y = y
	o.Ny = len(y)
	var nnzA int
	o.Nlam, nnzA = o.EssBcs.Build(o.Ny)
	o.Nyb = o.Ny + o.Nlam
	o.Lam = make([]float64, o.Nlam)
	o.Kb.Init(o.Nyb, o.Nyb, nnzKb+2*nnzA)
	o.Fb = make([]float64, o.Nyb)
	o.Wb = make([]float64, o.Nyb)
	o.LinSol, err = NewLinearSolver(kind, tol, nmaxit)
	if err != nil {
		return
	}
	o.InitLSol = true
	return
}

// RunIterations solves the nonlinear system at time t with Newton-Raphson
// iterations
func (o *System) RunIterations(t float64, dat *inp.SolverData) (err error) {

	// auxiliary variables
	var it int
	var largFb, largFb0, Lδu float64

	// message
	if dat.ShowR {
		io.Pf("\n%8s%13s%4s%23s%23s\n", "sys", "t", "it", "largFb", "Lδu")
	}

	// iterations
	for it = 0; it < dat.NmaxIt; it++ {

		// assemble right-hand side vector (fb) with negative of residuals
		la.VecFill(o.Fb, 0)
		for _, e := range o.Elems {
			err = e.AddToRhs(o.Fb, t)
			if err != nil {
				return
			}
		}

		// essential boundary conditions; e.g. constraints
		o.EssBcs.AddToRhs(o.Fb, t, o.Y, o.Lam)

		// find largest absolute component of fb
		largFb = la.VecLargest(o.Fb, 1)

		// check largFb value
		if it == 0 {
			// store largest absolute component of fb
			largFb0 = largFb
		} else {
			// check convergence on Lf0
			if largFb < dat.FbTol*largFb0 { // converged on fb
				break
			}
			// check convergence on fb_min
			if largFb < dat.FbMin { // converged with smallest value of fb
				break
			}
		}

		// assemble Jacobian matrix
		do_asm_fact := (it == 0 || !dat.CteTg)
		if do_asm_fact {

			// assemble element matrices
			o.Kb.Start()
			for _, e := range o.Elems {
				err = e.AddToKb(&o.Kb, it == 0)
				if err != nil {
					return
				}
			}

			// join A and tr(A) matrices into Kb
			o.Kb.PutMatAndMatT(&o.EssBcs.A)

			// initialise linear solver
			if o.InitLSol {
				err = o.LinSol.InitR(&o.Kb, false, false, false)
				if err != nil {
					return chk.Err("%s system: cannot initialise linear solver:\n%v", o.Name, err)
				}
				o.InitLSol = false
			}

			// perform factorisation
			err = o.LinSol.Fact()
			if err != nil {
				return chk.Err("%s system: factorisation failed:\n%v", o.Name, err)
			}
		}

		// solve for wb := δyb
		err = o.LinSol.SolveR(o.Wb, o.Fb, false)
		if err != nil {
			return chk.Err("%s system: linear solve failed:\n%v", o.Name, err)
		}

		// update primary variables (y) and Lagrange multipliers (λ)
		for i := 0; i < o.Ny; i++ {
			o.Y[i] += o.Wb[i] // y += δy
		}
		for i := 0; i < o.Nlam; i++ {
			o.Lam[i] += o.Wb[o.Ny+i] // λ += δλ
		}

		// compute RMS norm of δu and check convergence on δu
		Lδu = la.VecRmsErr(o.Wb[:o.Ny], dat.Atol, dat.Rtol, o.Y[:o.Ny])

		// message
		if dat.ShowR {
			io.Pf("%8s%13.6e%4d%23.15e%23.15e\n", o.Name, t, it, largFb, Lδu)
		}

		// stop if converged on δu
		if Lδu < dat.Itol {
			break
		}
	}

	// check if iterations diverged
	if it == dat.NmaxIt {
		return chk.Err("%s system: max number of iterations reached: it = %d", o.Name, it)
	}
	return
}

// Clean releases linear solver resources
func (o *System) Clean() {
	if o.LinSol != nil {
		o.LinSol.Clean()
	}
}
