// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem solves the coupled solid/fluid boundary value problem of
// poroelasticity with the finite element method. The solid displacement and
// pressure multiplier fields live on a Taylor-Hood pair (quadratic/linear),
// the fluid mass content on the quadratic space and the seepage velocity on
// the linear vector space.
package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/porofem/porofem/inp"
	"github.com/porofem/porofem/mpor"
)

// Domain holds the mesh, the equation numbering of all fields and the state
// variables of the coupled problem
type Domain struct {

	// input
	Sim  *inp.Simulation // simulation data
	Msh  *inp.Mesh       // the mesh
	Ndim int             // space dimension

	// material
	Mdl  mpor.Model // free energy model
	Kfun fun.Func   // permeability function of (t, x)

	// equation maps
	UmapVert [][]int // [nverts][ndim] displacement equations; nil if vertex is inactive
	LmapVert []int   // [nverts] pressure multiplier equation or -1
	MmapVert []int   // [nverts] fluid mass content equation or -1
	WmapVert []int   // [nverts] index in the (linear) flow space or -1
	NyS      int     // number of solid equations: displacements + multipliers
	NyF      int     // number of fluid equations
	Nw       int     // number of flow-space vertices

	// state
	T   float64   // current time
	Dt  float64   // current time increment
	Us  []float64 // [NyS] current solid solution
	UsN []float64 // [NyS] solid solution at the beginning of the time step
	Mf  []float64 // [NyF] current fluid mass content
	MfN []float64 // [NyF] fluid mass content at the beginning of the time step
	Pp  []float64 // [NyF] pressure projected onto the fluid space
	Uf  []float64 // [Nw*Ndim] seepage velocity on the flow space
}

// NewDomain allocates a new domain and numbers all equations
func NewDomain(sim *inp.Simulation) (*Domain, error) {

	// basic data
	var o Domain
	o.Sim = sim
	o.Msh = sim.Msh
	o.Ndim = sim.Ndim

	// material model
	mdl, err := mpor.New(sim.Data.Matmodel)
	if err != nil {
		return nil, err
	}
	prms := append(sim.MatPrms, &fun.Prm{N: "rho", V: sim.Porous.RhoF})
	err = mdl.Init(o.Ndim, prms)
	if err != nil {
		return nil, err
	}
	o.Mdl = mdl

	// permeability
	o.Kfun, err = sim.Kfun()
	if err != nil {
		return nil, err
	}

	// find active and corner vertices
	nverts := len(o.Msh.Verts)
	active := make([]bool, nverts)
	corner := make([]bool, nverts)
	for _, c := range o.Msh.Cells {
		for i, v := range c.Verts {
			active[v] = true
			if i < c.Shp.BasicNverts {
				corner[v] = true
			}
		}
	}

	// number solid equations: displacements first, then pressure multipliers
	o.UmapVert = make([][]int, nverts)
	o.LmapVert = make([]int, nverts)
	o.MmapVert = make([]int, nverts)
	o.WmapVert = make([]int, nverts)
	for v := 0; v < nverts; v++ {
		o.LmapVert[v] = -1
		o.MmapVert[v] = -1
		o.WmapVert[v] = -1
		if !active[v] {
			continue
		}
		o.UmapVert[v] = make([]int, o.Ndim)
		for i := 0; i < o.Ndim; i++ {
			o.UmapVert[v][i] = o.NyS
			o.NyS++
		}
	}
	for v := 0; v < nverts; v++ {
		if corner[v] {
			o.LmapVert[v] = o.NyS
			o.NyS++
		}
	}

	// number fluid and flow-space equations
	for v := 0; v < nverts; v++ {
		if active[v] {
			o.MmapVert[v] = o.NyF
			o.NyF++
		}
		if corner[v] {
			o.WmapVert[v] = o.Nw
			o.Nw++
		}
	}

	// allocate state
	o.Us = make([]float64, o.NyS)
	o.UsN = make([]float64, o.NyS)
	o.Mf = make([]float64, o.NyF)
	o.MfN = make([]float64, o.NyF)
	o.Pp = make([]float64, o.NyF)
	o.Uf = make([]float64, o.Nw*o.Ndim)
	return &o, nil
}

// BeginStep saves the converged solution as the reference of the new step
func (o *Domain) BeginStep(t, dt float64) {
	o.T = t
	o.Dt = dt
	copy(o.UsN, o.Us)
	copy(o.MfN, o.Mf)
}

// SetIniMf sets the initial fluid mass content from a function of the vertex
// coordinates
func (o *Domain) SetIniMf(fcn fun.Func) {
	for _, v := range o.Msh.Verts {
		if eq := o.MmapVert[v.Id]; eq >= 0 {
			o.Mf[eq] = fcn.F(0, v.C)
			o.MfN[eq] = o.Mf[eq]
		}
	}
}

// VertDisp returns the displacement vector of a vertex
func (o *Domain) VertDisp(vid int) (u []float64) {
	u = make([]float64, o.Ndim)
	if o.UmapVert[vid] == nil {
		return
	}
	for i := 0; i < o.Ndim; i++ {
		u[i] = o.Us[o.UmapVert[vid][i]]
	}
	return
}

// MoveMesh adds the displacement increment of the step to the vertex
// coordinates and recomputes the derived mesh data
func (o *Domain) MoveMesh() (err error) {
	for _, v := range o.Msh.Verts {
		if o.UmapVert[v.Id] == nil {
			continue
		}
		for i := 0; i < o.Ndim; i++ {
			eq := o.UmapVert[v.Id][i]
			v.C[i] += o.Us[eq] - o.UsN[eq]
		}
	}
	err = o.Msh.CalcDerived()
	if err != nil {
		return chk.Err("mesh motion led to an invalid mesh:\n%v", err)
	}
	return
}
