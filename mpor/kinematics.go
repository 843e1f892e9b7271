// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpor

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// constants
const MINJ = 1.0e-14 // minimum value of J = det(F)

// Kinematics holds the deformation gradient and derived finite strain
// quantities at a material point. All tensors are kept as 3×3 matrices;
// 2D problems are treated as plane-strain with F[2][2] = 1
type Kinematics struct {

	// basic tensors
	Ndim int         // space dimension of the underlying problem
	F    [][]float64 // deformation gradient
	Fi   [][]float64 // inverse of F
	C    [][]float64 // right Cauchy-Green tensor Fᵀ·F
	Ci   [][]float64 // inverse of C
	J    float64     // det(F)

	// modified invariants
	I1 float64 // Ī1 = J^(-2/3) tr(C)
	I2 float64 // Ī2 = J^(-4/3) ((tr C)² - tr(C²)) / 2

	// first derivatives w.r.t. F
	B1 [][]float64 // ∂Ī1/∂F
	B2 [][]float64 // ∂Ī2/∂F
	BJ [][]float64 // ∂J/∂F = J F⁻ᵀ

	// auxiliary
	trC float64
	j23 float64     // J^(-2/3)
	j43 float64     // J^(-4/3)
	fc  [][]float64 // F·C
	bl  [][]float64 // left Cauchy-Green tensor F·Fᵀ
}

// NewKinematics allocates a new Kinematics structure
func NewKinematics(ndim int) *Kinematics {
	var o Kinematics
	o.Ndim = ndim
	o.F = la.MatAlloc(3, 3)
	o.Fi = la.MatAlloc(3, 3)
	o.C = la.MatAlloc(3, 3)
	o.Ci = la.MatAlloc(3, 3)
	o.B1 = la.MatAlloc(3, 3)
	o.B2 = la.MatAlloc(3, 3)
	o.BJ = la.MatAlloc(3, 3)
	o.fc = la.MatAlloc(3, 3)
	o.bl = la.MatAlloc(3, 3)
	return &o
}

// Compute calculates F = I + ∇u and all derived quantities
//  gradU -- [ndim][ndim] displacement gradient ∂u_i/∂X_j
func (o *Kinematics) Compute(gradU [][]float64) (err error) {

	// deformation gradient (plane-strain padding in 2D)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.F[i][j] = 0
			if i == j {
				o.F[i][j] = 1
			}
		}
	}
	for i := 0; i < o.Ndim; i++ {
		for j := 0; j < o.Ndim; j++ {
			o.F[i][j] += gradU[i][j]
		}
	}

	// inverse and determinant
	o.J, err = la.MatInv(o.Fi, o.F, MINJ)
	if err != nil {
		return
	}
	if o.J < MINJ {
		return chk.Err("kinematics: J = det(F) = %g is not positive", o.J)
	}

	// right and left Cauchy-Green tensors
	o.trC = 0
	trC2 := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.C[i][j] = 0
			o.bl[i][j] = 0
			o.Ci[i][j] = 0
			for k := 0; k < 3; k++ {
				o.C[i][j] += o.F[k][i] * o.F[k][j]
				o.bl[i][j] += o.F[i][k] * o.F[j][k]
				o.Ci[i][j] += o.Fi[i][k] * o.Fi[j][k]
			}
		}
		o.trC += o.C[i][i]
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			trC2 += o.C[i][j] * o.C[i][j]
		}
	}

	// modified invariants
	p := 1.0 / 3.0
	o.j23 = math.Pow(o.J, -2.0*p)
	o.j43 = o.j23 * o.j23
	o.I1 = o.j23 * o.trC
	o.I2 = o.j43 * 0.5 * (o.trC*o.trC - trC2)

	// F·C
	la.MatMul(o.fc, 1, o.F, o.C)

	// first derivatives w.r.t. F
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			fit := o.Fi[k][i] // (F⁻ᵀ)_ik
			o.BJ[i][k] = o.J * fit
			o.B1[i][k] = 2.0*o.j23*o.F[i][k] - 2.0*p*o.I1*fit
			o.B2[i][k] = o.j43*(2.0*o.trC*o.F[i][k]-2.0*o.fc[i][k]) - 4.0*p*o.I2*fit
		}
	}
	return
}

// CalcP computes the first Piola-Kirchhoff-like tensor of the constrained
// energy: P = ∂Ψ/∂F + lm ∂J/∂F
//  P -- [3][3] output
func (o *Kinematics) CalcP(P [][]float64, d *Derivs, lm float64) {
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			P[i][k] = d.Psi1*o.B1[i][k] + d.Psi2*o.B2[i][k] + (d.PsiJ+lm)*o.BJ[i][k]
		}
	}
}

// CalcA computes the full material tangent A = ∂P/∂F with the fluid mass
// content held frozen
//  A -- [3][3][3][3] output: A[i][K][j][L] = ∂P_iK/∂F_jL
func (o *Kinematics) CalcA(A [][][][]float64, d *Derivs, lm float64) {
	p := 1.0 / 3.0
	cJ := d.PsiJ + lm
	for i := 0; i < 3; i++ {
		for K := 0; K < 3; K++ {
			for j := 0; j < 3; j++ {
				for L := 0; L < 3; L++ {

					// products of first derivatives
					a := d.Psi11*o.B1[i][K]*o.B1[j][L] +
						d.Psi12*(o.B1[i][K]*o.B2[j][L]+o.B2[i][K]*o.B1[j][L]) +
						d.Psi22*o.B2[i][K]*o.B2[j][L] +
						d.Psi1J*(o.B1[i][K]*o.BJ[j][L]+o.BJ[i][K]*o.B1[j][L]) +
						d.Psi2J*(o.B2[i][K]*o.BJ[j][L]+o.BJ[i][K]*o.B2[j][L]) +
						d.PsiJJ*o.BJ[i][K]*o.BJ[j][L]

					// second derivative of J
					a += cJ * o.J * (o.Fi[L][j]*o.Fi[K][i] - o.Fi[L][i]*o.Fi[K][j])

					// second derivative of Ī1
					var dd float64
					if i == j && K == L {
						dd = 1
					}
					a += d.Psi1 * (2.0*o.j23*dd -
						4.0*p*o.j23*(o.F[i][K]*o.Fi[L][j]+o.Fi[K][i]*o.F[j][L]) +
						4.0*p*p*o.I1*o.Fi[K][i]*o.Fi[L][j] +
						2.0*p*o.I1*o.Fi[K][j]*o.Fi[L][i])

					// second derivative of Ī2
					g2 := o.j43 * (2.0*o.trC*o.F[i][K] - 2.0*o.fc[i][K])
					var ddC, ddB float64
					if i == j {
						ddC = o.C[L][K]
					}
					if K == L {
						ddB = o.bl[i][j]
					}
					a += d.Psi2 * (-4.0*p*o.Fi[L][j]*g2 +
						o.j43*(4.0*o.F[j][L]*o.F[i][K]+2.0*o.trC*dd-2.0*ddC-2.0*o.F[i][L]*o.F[j][K]-2.0*ddB) -
						4.0*p*o.B2[j][L]*o.Fi[K][i] +
						4.0*p*o.I2*o.Fi[K][j]*o.Fi[L][i])

					A[i][K][j][L] = a
				}
			}
		}
	}
}
