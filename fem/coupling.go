// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/la"
)

// Projector holds a mass matrix and its factorisation for L2 projections
// onto a finite element space
type Projector struct {
	N   int          // dimension of the space
	T   la.Triplet   // mass matrix in triplet format
	B   []float64    // right-hand side workspace
	X   []float64    // solution workspace
	Sol LinearSolver // linear solver

	// solver selection; kept for re-factorisation after mesh motion
	kind   string
	tol    float64
	nmaxit int
}

// newProjector allocates a new projector
func newProjector(n, nnz int, kind string, tol float64, nmaxit int) (o *Projector, err error) {
	o = new(Projector)
	o.N = n
	o.T.Init(n, n, nnz)
	o.B = make([]float64, n)
	o.X = make([]float64, n)
	o.kind = kind
	o.tol = tol
	o.nmaxit = nmaxit
	return
}

// Factorize factorises the mass matrix after (re)assembly. A fresh linear
// solver is allocated every time since the matrix values change
func (o *Projector) Factorize() (err error) {
	if o.Sol != nil {
		o.Sol.Clean()
	}
	o.Sol, err = NewLinearSolver(o.kind, o.tol, o.nmaxit)
	if err != nil {
		return
	}
	err = o.Sol.InitR(&o.T, false, false, false)
	if err != nil {
		return
	}
	return o.Sol.Fact()
}

// Solve solves the projection system with the right-hand side in B; the
// result is left in X
func (o *Projector) Solve() (err error) {
	return o.Sol.SolveR(o.X, o.B, false)
}

// AddToMassF adds the fluid-space mass matrix contribution of this element
func (o *ElemSolid) AddToMassF(T *la.Triplet) (err error) {
	for _, ip := range o.Ips {
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}
		coef := o.Shp.J * ip[3]
		for n := 0; n < o.Shp.Nverts; n++ {
			for np := 0; np < o.Shp.Nverts; np++ {
				T.Put(o.Mmap[n], o.Mmap[np], coef*o.Shp.S[n]*o.Shp.S[np])
			}
		}
	}
	return
}

// AddToPressureRhs adds the right-hand side of the pressure projection:
// the pore pressure ρ ∂Ψ/∂m - lm tested against the fluid space
func (o *ElemSolid) AddToPressureRhs(b []float64) (err error) {
	rho := o.dom.Sim.Porous.RhoF
	for _, ip := range o.Ips {
		_, lm, err := o.ipState(ip, false)
		if err != nil {
			return err
		}
		coef := o.Shp.J * ip[3]
		p := rho*o.drv.Psim - lm
		for n := 0; n < o.Shp.Nverts; n++ {
			b[o.Mmap[n]] += coef * o.Shp.S[n] * p
		}
	}
	return
}

// AddToMassW adds the flow-space mass matrix contribution of this element
func (o *ElemFluid) AddToMassW(T *la.Triplet) (err error) {
	for _, ip := range o.Ips {
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}
		o.Sb.Func(o.Sb.S, o.Sb.DSdR, ip, false)
		coef := o.Shp.J * ip[3]
		for n := 0; n < o.Shp.BasicNverts; n++ {
			for np := 0; np < o.Shp.BasicNverts; np++ {
				T.Put(o.Wmap[n], o.Wmap[np], coef*o.Sb.S[n]*o.Sb.S[np])
			}
		}
	}
	return
}

// AddToFlowRhs adds the right-hand side of the seepage velocity projection
// for each space component:
//
//  Uf = φ (-ρ κ F⁻ᵀ ∇p - w)  with  φ = (m + ρ φ0) / (ρ J)
func (o *ElemFluid) AddToFlowRhs(rhs [][]float64, t float64) (err error) {
	ndim := o.dom.Ndim
	rho := o.dom.Sim.Porous.RhoF
	phi0 := o.dom.Sim.Porous.Phi0
	for _, ip := range o.Ips {
		mi, _, err := o.ipState(ip)
		if err != nil {
			return err
		}
		coef := o.Shp.J * ip[3]
		κ := o.dom.Kfun.F(t, o.xip)
		φ := (mi + rho*phi0) / (rho * o.kin.J)
		for i := 0; i < ndim; i++ {
			var fgp float64 // (F⁻ᵀ ∇p)_i
			for j := 0; j < ndim; j++ {
				fgp += o.kin.Fi[j][i] * o.gp[j]
			}
			v := φ * (-rho*κ*fgp - o.w[i])
			for n := 0; n < o.Shp.BasicNverts; n++ {
				rhs[i][o.Wmap[n]] += coef * o.Sb.S[n] * v
			}
		}
	}
	return
}
