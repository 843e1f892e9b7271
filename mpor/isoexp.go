// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpor

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// IsoExp implements an isotropic exponential free energy coupled with
// a quadratic fluid storage term:
//
//  Ψ(Ī1, Ī2, J, m) = a (exp(D1 x y² + D2 x² + D3 y) - 1) + (Q/2) (J - 1 - m/ρ)²
//
// with x = Ī1 - 3 and y = Ī2 - 3
type IsoExp struct {

	// parameters
	a   float64 // stiffness-like multiplier of the exponential term
	d1  float64 // D1
	d2  float64 // D2
	d3  float64 // D3
	qq  float64 // Q: coupling (storage) modulus
	rho float64 // intrinsic fluid density
}

// add model to factory
func init() {
	allocators["isoexp"] = func() Model { return new(IsoExp) }
}

// Init initialises model
func (o *IsoExp) Init(ndim int, prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "a":
			o.a = p.V
		case "D1":
			o.d1 = p.V
		case "D2":
			o.d2 = p.V
		case "D3":
			o.d3 = p.V
		case "Q":
			o.qq = p.V
		case "rho":
			o.rho = p.V
		}
	}
	if o.rho < 1e-14 {
		return chk.Err("isoexp: fluid density \"rho\" must be positive; got %g", o.rho)
	}
	if o.a < 0 || o.qq < 0 {
		return chk.Err("isoexp: parameters \"a\" and \"Q\" must be non-negative; got a=%g Q=%g", o.a, o.qq)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o IsoExp) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "a", V: 1.0},
		&fun.Prm{N: "D1", V: 1.0},
		&fun.Prm{N: "D2", V: 1.0},
		&fun.Prm{N: "D3", V: 1.0},
		&fun.Prm{N: "Q", V: 1.0},
		&fun.Prm{N: "rho", V: 1000.0},
	}
}

// Calc computes Ψ and its derivatives
func (o *IsoExp) Calc(d *Derivs, i1, i2, J, m float64, derivs bool) (err error) {

	// energy
	x := i1 - 3.0
	y := i2 - 3.0
	w := J - 1.0 - m/o.rho
	aE := o.a * math.Exp(o.d1*x*y*y+o.d2*x*x+o.d3*y)
	d.Psi = aE - o.a + 0.5*o.qq*w*w

	// first derivatives
	gx := o.d1*y*y + 2.0*o.d2*x // ∂(exponent)/∂x
	gy := 2.0*o.d1*x*y + o.d3   // ∂(exponent)/∂y
	d.Psi1 = aE * gx
	d.Psi2 = aE * gy
	d.PsiJ = o.qq * w
	d.Psim = -o.qq * w / o.rho
	if !derivs {
		return
	}

	// second derivatives
	d.Psi11 = aE * (gx*gx + 2.0*o.d2)
	d.Psi22 = aE * (gy*gy + 2.0*o.d1*x)
	d.Psi12 = aE * (gx*gy + 2.0*o.d1*y)
	d.Psi1J = 0
	d.Psi2J = 0
	d.PsiJJ = o.qq
	d.PsiJm = -o.qq / o.rho
	return
}
