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

// ElemFluid implements the fluid mass balance on the deforming solid. The
// fluid mass content lives on the quadratic space; the seepage velocity is
// post-processed on the basic (corner) space
type ElemFluid struct {

	// basic data
	dom  *Domain      // the domain
	Cell *inp.Cell    // the cell
	X    [][]float64  // [ndim][nverts] vertex coordinates
	Shp  *shp.Shape   // quadratic shape structure
	Sb   *shp.Shape   // basic (corner) shape structure
	Ips  []shp.Ipoint // integration points

	// degrees of freedom
	Mmap []int // [nverts] fluid equations
	Umap []int // [nverts*ndim] displacement equations (frozen data during fluid solve)
	Wmap []int // [BasicNverts] flow-space indices

	// scratchpad
	kin   *mpor.Kinematics
	gradU [][]float64 // [ndim][ndim]
	gm    []float64   // [ndim] θ-weighted gradient of m
	gp    []float64   // [ndim] gradient of the projected pressure
	w     []float64   // [ndim] solid velocity of the step
	xip   []float64   // [ndim] real coordinates of integration point
	K     [][]float64 // [nverts][nverts] local matrix
}

// newElemFluid allocates a new fluid element
func newElemFluid(dom *Domain, cell *inp.Cell, nip int) (o *ElemFluid, err error) {
	o = new(ElemFluid)
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
	o.Mmap = make([]int, o.Shp.Nverts)
	o.Umap = make([]int, o.Shp.Nverts*ndim)
	o.Wmap = make([]int, o.Shp.BasicNverts)
	for m, v := range cell.Verts {
		o.Mmap[m] = dom.MmapVert[v]
		for i := 0; i < ndim; i++ {
			o.Umap[m*ndim+i] = dom.UmapVert[v][i]
		}
		if m < o.Shp.BasicNverts {
			o.Wmap[m] = dom.WmapVert[v]
		}
	}

	// scratchpad
	o.kin = mpor.NewKinematics(ndim)
	o.gradU = la.MatAlloc(ndim, ndim)
	o.gm = make([]float64, ndim)
	o.gp = make([]float64, ndim)
	o.w = make([]float64, ndim)
	o.xip = make([]float64, ndim)
	o.K = la.MatAlloc(o.Shp.Nverts, o.Shp.Nverts)
	return
}

// ipState computes kinematics and local field values at integration point ip
func (o *ElemFluid) ipState(ip shp.Ipoint) (mi, mni float64, err error) {

	// interpolation data
	err = o.Shp.CalcAtIp(o.X, ip, true)
	if err != nil {
		return
	}
	o.Sb.Func(o.Sb.S, o.Sb.DSdR, ip, false)

	// displacement gradient and solid velocity of the step
	ndim := o.dom.Ndim
	for i := 0; i < ndim; i++ {
		o.w[i] = 0
		for j := 0; j < ndim; j++ {
			o.gradU[i][j] = 0
		}
	}
	for m := 0; m < o.Shp.Nverts; m++ {
		for i := 0; i < ndim; i++ {
			eq := o.Umap[m*ndim+i]
			for j := 0; j < ndim; j++ {
				o.gradU[i][j] += o.dom.Us[eq] * o.Shp.G[m][j]
			}
			o.w[i] += o.Shp.S[m] * (o.dom.Us[eq] - o.dom.UsN[eq]) / o.dom.Dt
		}
	}
	err = o.kin.Compute(o.gradU)
	if err != nil {
		return
	}

	// fluid mass content, its θ-weighted gradient and the pressure gradient
	θ := o.dom.Sim.Control.Theta
	for i := 0; i < ndim; i++ {
		o.gm[i] = 0
		o.gp[i] = 0
		o.xip[i] = 0
	}
	for m := 0; m < o.Shp.Nverts; m++ {
		eq := o.Mmap[m]
		mi += o.Shp.S[m] * o.dom.Mf[eq]
		mni += o.Shp.S[m] * o.dom.MfN[eq]
		for i := 0; i < ndim; i++ {
			o.gm[i] += (θ*o.dom.Mf[eq] + (1.0-θ)*o.dom.MfN[eq]) * o.Shp.G[m][i]
			o.gp[i] += o.dom.Pp[eq] * o.Shp.G[m][i]
			o.xip[i] += o.Shp.S[m] * o.X[i][m]
		}
	}
	return
}

// AddToRhs adds the negative of the residuals to fb
func (o *ElemFluid) AddToRhs(fb []float64, t float64) (err error) {
	ndim := o.dom.Ndim
	rho := o.dom.Sim.Porous.RhoF
	q := o.dom.Sim.Porous.Qi
	for _, ip := range o.Ips {

		// state @ ip
		mi, mni, err := o.ipState(ip)
		if err != nil {
			return err
		}
		coef := o.Shp.J * ip[3]
		κ := o.dom.Kfun.F(t, o.xip)

		// accumulation, advection and source terms
		adv := 0.0
		for i := 0; i < ndim; i++ {
			adv += o.gm[i] * o.w[i]
		}
		res := (mi-mni)/o.dom.Dt + adv - rho*q

		// Darcy term: A = ρ J κ C⁻¹ with the pressure of the last coupling
		// iteration held frozen
		cf := rho * o.kin.J * κ
		for n := 0; n < o.Shp.Nverts; n++ {
			fb[o.Mmap[n]] -= coef * o.Shp.S[n] * res
			for i := 0; i < ndim; i++ {
				var agp float64
				for j := 0; j < ndim; j++ {
					agp += cf * o.kin.Ci[i][j] * o.gp[j]
				}
				fb[o.Mmap[n]] -= coef * agp * o.Shp.G[n][i]
			}
		}
	}
	return
}

// AddToKb adds the element Jacobian matrix to Kb. Only the dependence on the
// fluid mass content is considered since the solid state and the projected
// pressure are frozen during the fluid solve
func (o *ElemFluid) AddToKb(Kb *la.Triplet, firstIt bool) (err error) {
	ndim := o.dom.Ndim
	θ := o.dom.Sim.Control.Theta
	la.MatFill(o.K, 0)
	for _, ip := range o.Ips {

		// state @ ip
		_, _, err := o.ipState(ip)
		if err != nil {
			return err
		}
		coef := o.Shp.J * ip[3]

		// accumulation and advection terms
		for n := 0; n < o.Shp.Nverts; n++ {
			for np := 0; np < o.Shp.Nverts; np++ {
				gw := 0.0
				for i := 0; i < ndim; i++ {
					gw += o.Shp.G[np][i] * o.w[i]
				}
				o.K[n][np] += coef * o.Shp.S[n] * (o.Shp.S[np]/o.dom.Dt + θ*gw)
			}
		}
	}

	// add to triplet
	for r, I := range o.Mmap {
		for c, J := range o.Mmap {
			Kb.Put(I, J, o.K[r][c])
		}
	}
	return
}
