// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mpor implements constitutive models for poroelastic media undergoing
// large deformations. The free energy Ψ is a function of the modified
// invariants Ī1 and Ī2 of the right Cauchy-Green tensor, the determinant J of
// the deformation gradient, and the fluid mass content increment m.
package mpor

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Derivs holds the free energy value and its partial derivatives evaluated
// at a material point
type Derivs struct {

	// energy
	Psi float64 // Ψ

	// first derivatives
	Psi1 float64 // ∂Ψ/∂Ī1
	Psi2 float64 // ∂Ψ/∂Ī2
	PsiJ float64 // ∂Ψ/∂J
	Psim float64 // ∂Ψ/∂m

	// second derivatives
	Psi11 float64 // ∂²Ψ/∂Ī1∂Ī1
	Psi12 float64 // ∂²Ψ/∂Ī1∂Ī2
	Psi22 float64 // ∂²Ψ/∂Ī2∂Ī2
	Psi1J float64 // ∂²Ψ/∂Ī1∂J
	Psi2J float64 // ∂²Ψ/∂Ī2∂J
	PsiJJ float64 // ∂²Ψ/∂J∂J
	PsiJm float64 // ∂²Ψ/∂J∂m
}

// Model defines the interface for poroelastic free energy models
type Model interface {
	Init(ndim int, prms fun.Prms) error                      // initialises model
	GetPrms() fun.Prms                                       // gets (an example) of parameters
	Calc(d *Derivs, i1, i2, J, m float64, derivs bool) error // computes Ψ and its derivatives
}

// allocators holds all available models
var allocators = make(map[string]func() Model)

// New allocates a new model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot find model named %q", name)
	}
	return allocator(), nil
}
