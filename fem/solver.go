// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// LinearSolver defines the interface for linear solver strategies operating
// on the assembled (augmented) Jacobian
type LinearSolver interface {
	InitR(Kb *la.Triplet, symmetric, verbose, timing bool) error // initialises structures
	Fact() error                                                 // performs factorisation (or its analog)
	SolveR(x, b []float64, sumToRoot bool) error                 // solves K x = b
	Clean()                                                      // cleans allocated memory
}

// NewLinearSolver allocates a linear solver strategy
//  kind -- "direct"    => sparse LU factorisation (umfpack); the factorisation
//                         is reused until the matrix values change
//          "iterative" => MINRES with Jacobi scaling on the symmetric
//                         augmented system
func NewLinearSolver(kind string, tol float64, nmaxit int) (LinearSolver, error) {
	switch kind {
	case "direct":
		return la.GetSolver("umfpack"), nil
	case "iterative":
		return &Minres{Tol: tol, NmaxIt: nmaxit}, nil
	}
	return nil, chk.Err("linear solver strategy must be %q or %q; got %q", "direct", "iterative", kind)
}

// Minres implements the minimum residual method for symmetric (possibly
// indefinite) sparse systems. The augmented Jacobian with Lagrange multiplier
// rows is symmetric but not positive definite, hence MINRES instead of CG.
// The system is scaled symmetrically by the inverse square roots of the
// diagonal (Jacobi); multiplier rows have a zero diagonal and keep unit scale.
type Minres struct {

	// input
	Tol    float64 // tolerance on the residual norm
	NmaxIt int     // maximum number of iterations

	// auxiliary
	kb      *la.Triplet  // pointer to the assembled system
	am      *la.CCMatrix // compressed-column form of the system
	newfact bool         // matrix values changed; the scaling must be recomputed

	// workspace
	d, t, v, y, r1, r2, w, w1, w2 []float64
}

// InitR initialises structures
func (o *Minres) InitR(Kb *la.Triplet, symmetric, verbose, timing bool) error {
	o.kb = Kb
	return nil
}

// Fact converts the triplet into compressed-column format
func (o *Minres) Fact() error {
	o.am = o.kb.ToMatrix(nil)
	o.newfact = true
	return nil
}

// Clean cleans allocated memory
func (o *Minres) Clean() {
}

// SolveR solves K x = b using MINRES, starting from x = 0
func (o *Minres) SolveR(x, b []float64, sumToRoot bool) error {

	// allocate workspace
	n := len(b)
	if len(o.v) != n {
		o.d = make([]float64, n)
		o.t = make([]float64, n)
		o.v = make([]float64, n)
		o.y = make([]float64, n)
		o.r1 = make([]float64, n)
		o.r2 = make([]float64, n)
		o.w = make([]float64, n)
		o.w1 = make([]float64, n)
		o.w2 = make([]float64, n)
	}

	// Jacobi scaling factors. The compressed-column arrays are not reachable,
	// so the diagonal is recovered with unit-vector products
	if o.newfact {
		for i := 0; i < n; i++ {
			la.VecFill(o.t, 0)
			o.t[i] = 1
			la.SpMatVecMul(o.v, 1, o.am, o.t)
			a := math.Abs(o.v[i])
			if a < 1e-300 {
				a = 1
			}
			o.d[i] = 1.0 / math.Sqrt(a)
		}
		o.newfact = false
	}

	// initial residual of the scaled system (x = 0)
	la.VecFill(x, 0)
	for i := 0; i < n; i++ {
		o.y[i] = o.d[i] * b[i]
	}
	copy(o.r1, o.y)
	copy(o.r2, o.y)
	beta1 := la.VecDot(o.r1, o.y)
	if beta1 < 0 {
		return chk.Err("minres: matrix does not appear to be symmetric")
	}
	if beta1 == 0 { // b = 0 => x = 0
		return nil
	}
	beta1 = math.Sqrt(beta1)

	// initialise quantities of the Lanczos process and the QR rotation
	var oldb, epsln, dbar, phi float64
	beta := beta1
	phibar := beta1
	cs, sn := -1.0, 0.0

	// iterations
	for itn := 1; itn <= o.NmaxIt; itn++ {

		// Lanczos step
		s := 1.0 / beta
		for i := 0; i < n; i++ {
			o.v[i] = s * o.y[i]
		}
		for i := 0; i < n; i++ {
			o.t[i] = o.d[i] * o.v[i]
		}
		la.SpMatVecMul(o.y, 1, o.am, o.t) // y := D*K*D*v
		for i := 0; i < n; i++ {
			o.y[i] *= o.d[i]
		}
		if itn >= 2 {
			c := beta / oldb
			for i := 0; i < n; i++ {
				o.y[i] -= c * o.r1[i]
			}
		}
		alfa := la.VecDot(o.v, o.y)
		c := alfa / beta
		for i := 0; i < n; i++ {
			o.y[i] -= c * o.r2[i]
		}
		copy(o.r1, o.r2)
		copy(o.r2, o.y)
		oldb = beta
		beta = la.VecDot(o.r2, o.y)
		if beta < 0 {
			return chk.Err("minres: matrix does not appear to be symmetric")
		}
		beta = math.Sqrt(beta)

		// apply previous rotation
		oldeps := epsln
		delta := cs*dbar + sn*alfa
		gbar := sn*dbar - cs*alfa
		epsln = sn * beta
		dbar = -cs * beta

		// compute next rotation
		gamma := math.Sqrt(gbar*gbar + beta*beta)
		if gamma < 1e-300 {
			gamma = 1e-300
		}
		cs = gbar / gamma
		sn = beta / gamma
		phi = cs * phibar
		phibar = sn * phibar

		// update solution
		denom := 1.0 / gamma
		copy(o.w1, o.w2)
		copy(o.w2, o.w)
		for i := 0; i < n; i++ {
			o.w[i] = denom * (o.v[i] - oldeps*o.w1[i] - delta*o.w2[i])
			x[i] += phi * o.d[i] * o.w[i] // unscale back to the original unknowns
		}

		// check convergence
		if phibar <= o.Tol*beta1 || phibar <= o.Tol {
			return nil
		}
	}
	return chk.Err("minres did not converge after %d iterations; residual = %g", o.NmaxIt, phibar)
}
