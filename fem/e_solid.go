// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/la"

	"github.com/porofem/porofem/inp"
	"github.com/porofem/porofem/mpor"
	"github.com/porofem/porofem/shp"
)

// ElemSolid implements the momentum balance of the solid skeleton together
// with the incompressibility-type constraint enforced by the pressure
// multiplier. Displacements live on the quadratic space and the multiplier
// on the basic (corner) space
type ElemSolid struct {

	// basic data
	dom  *Domain      // the domain
	Cell *inp.Cell    // the cell
	X    [][]float64  // [ndim][nverts] vertex coordinates
	Shp  *shp.Shape   // quadratic shape structure
	Sb   *shp.Shape   // basic (corner) shape structure
	Ips  []shp.Ipoint // integration points

	// degrees of freedom
	Umap []int // [nverts*ndim] displacement equations
	Lmap []int // [BasicNverts] multiplier equations
	Mmap []int // [nverts] fluid equations (frozen data during solid solve)
	Nu   int   // number of displacement unknowns
	Nlm  int   // number of multiplier unknowns

	// scratchpad
	kin   *mpor.Kinematics
	drv   mpor.Derivs
	gradU [][]float64     // [ndim][ndim]
	P     [][]float64     // [3][3] first Piola-Kirchhoff-like tensor
	A     [][][][]float64 // [3][3][3][3] material tangent
	K     [][]float64     // [nu+nlm][nu+nlm] local matrix
	eqs   []int           // [nu+nlm] all equations of this element
}

// NewElemSolid allocates a new solid element
func newElemSolid(dom *Domain, cell *inp.Cell, nip int) (o *ElemSolid, err error) {
	o = new(ElemSolid)
	o.dom = dom
	o.Cell = cell
	o.X = dom.Msh.ExtractCellCoords(cell.Id)
	o.Shp = cell.Shp
	o.Sb = shp.Get(cell.Shp.BasicType, 0)
	o.Ips, err = shp.GetIpsForShape(o.Shp, nip)
	if err != nil {
		return nil, err
	}

	// maps
	ndim := dom.Ndim
	o.Nu = o.Shp.Nverts * ndim
	o.Nlm = o.Shp.BasicNverts
	o.Umap = make([]int, o.Nu)
	o.Lmap = make([]int, o.Nlm)
	o.Mmap = make([]int, o.Shp.Nverts)
	for m, v := range cell.Verts {
		for i := 0; i < ndim; i++ {
			o.Umap[m*ndim+i] = dom.UmapVert[v][i]
		}
		o.Mmap[m] = dom.MmapVert[v]
		if m < o.Nlm {
			o.Lmap[m] = dom.LmapVert[v]
		}
	}

	// scratchpad
	o.kin = mpor.NewKinematics(ndim)
	o.gradU = la.MatAlloc(ndim, ndim)
	o.P = la.MatAlloc(3, 3)
	o.A = make([][][][]float64, 3)
	for i := 0; i < 3; i++ {
		o.A[i] = make([][][]float64, 3)
		for j := 0; j < 3; j++ {
			o.A[i][j] = la.MatAlloc(3, 3)
		}
	}
	o.K = la.MatAlloc(o.Nu+o.Nlm, o.Nu+o.Nlm)
	o.eqs = make([]int, 0, o.Nu+o.Nlm)
	o.eqs = append(o.eqs, o.Umap...)
	o.eqs = append(o.eqs, o.Lmap...)
	return
}

// ipState computes kinematics and local field values at integration point ip
func (o *ElemSolid) ipState(ip shp.Ipoint, secondDrvs bool) (mi, lm float64, err error) {

	// interpolation data
	err = o.Shp.CalcAtIp(o.X, ip, true)
	if err != nil {
		return
	}
	o.Sb.Func(o.Sb.S, o.Sb.DSdR, ip, false)

	// displacement gradient
	ndim := o.dom.Ndim
	for i := 0; i < ndim; i++ {
		for j := 0; j < ndim; j++ {
			o.gradU[i][j] = 0
			for m := 0; m < o.Shp.Nverts; m++ {
				o.gradU[i][j] += o.dom.Us[o.Umap[m*ndim+i]] * o.Shp.G[m][j]
			}
		}
	}
	err = o.kin.Compute(o.gradU)
	if err != nil {
		return
	}

	// fluid mass content and pressure multiplier
	for m := 0; m < o.Shp.Nverts; m++ {
		mi += o.Shp.S[m] * o.dom.Mf[o.Mmap[m]]
	}
	for n := 0; n < o.Nlm; n++ {
		lm += o.Sb.S[n] * o.dom.Us[o.Lmap[n]]
	}

	// free energy derivatives
	err = o.dom.Mdl.Calc(&o.drv, o.kin.I1, o.kin.I2, o.kin.J, mi, secondDrvs)
	return
}

// AddToRhs adds the negative of the residuals to fb
func (o *ElemSolid) AddToRhs(fb []float64, t float64) (err error) {
	ndim := o.dom.Ndim
	rho := o.dom.Sim.Porous.RhoF
	for _, ip := range o.Ips {

		// state @ ip
		mi, lm, err := o.ipState(ip, false)
		if err != nil {
			return err
		}
		coef := o.Shp.J * ip[3]

		// momentum balance
		o.kin.CalcP(o.P, &o.drv, lm)
		for m := 0; m < o.Shp.Nverts; m++ {
			for i := 0; i < ndim; i++ {
				r := o.Umap[m*ndim+i]
				for k := 0; k < ndim; k++ {
					fb[r] -= coef * o.P[i][k] * o.Shp.G[m][k]
				}
			}
		}

		// volume constraint
		cst := o.kin.J - 1.0 - mi/rho
		for n := 0; n < o.Nlm; n++ {
			fb[o.Lmap[n]] -= coef * o.Sb.S[n] * cst
		}
	}
	return
}

// AddToKb adds the element Jacobian matrix to Kb
func (o *ElemSolid) AddToKb(Kb *la.Triplet, firstIt bool) (err error) {
	ndim := o.dom.Ndim
	la.MatFill(o.K, 0)
	for _, ip := range o.Ips {

		// state @ ip
		_, lm, err := o.ipState(ip, true)
		if err != nil {
			return err
		}
		coef := o.Shp.J * ip[3]

		// Kuu: displacement block with the fluid mass content held frozen
		o.kin.CalcA(o.A, &o.drv, lm)
		for m := 0; m < o.Shp.Nverts; m++ {
			for i := 0; i < ndim; i++ {
				r := m*ndim + i
				for n := 0; n < o.Shp.Nverts; n++ {
					for j := 0; j < ndim; j++ {
						c := n*ndim + j
						for k := 0; k < ndim; k++ {
							for l := 0; l < ndim; l++ {
								o.K[r][c] += coef * o.Shp.G[m][k] * o.A[i][k][j][l] * o.Shp.G[n][l]
							}
						}
					}
				}
			}
		}

		// KuL and KLu: coupling with the multiplier through ∂J/∂F
		for m := 0; m < o.Shp.Nverts; m++ {
			for i := 0; i < ndim; i++ {
				r := m*ndim + i
				var bg float64
				for k := 0; k < ndim; k++ {
					bg += o.kin.BJ[i][k] * o.Shp.G[m][k]
				}
				for n := 0; n < o.Nlm; n++ {
					v := coef * o.Sb.S[n] * bg
					o.K[r][o.Nu+n] += v
					o.K[o.Nu+n][r] += v
				}
			}
		}
	}

	// add to triplet
	for r, I := range o.eqs {
		for c, J := range o.eqs {
			Kb.Put(I, J, o.K[r][c])
		}
	}
	return
}
