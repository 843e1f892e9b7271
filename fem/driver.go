// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/porofem/porofem/inp"
)

// Result holds the state of the problem at the end of a time step
type Result struct {
	T  float64   // time
	Us []float64 // solid solution: displacements and pressure multipliers
	Mf []float64 // fluid mass content
	Uf []float64 // seepage velocity on the flow space
}

// VertSelector decides whether a vertex with coordinates x takes part in a
// boundary condition
type VertSelector func(x []float64) bool

// AtPlane returns a selector for all vertices on the plane {x[axis] == val}
func AtPlane(axis int, val float64) VertSelector {
	return func(x []float64) bool {
		return math.Abs(x[axis]-val) < inp.Ztol
	}
}

// Problem drives the staggered solution of the coupled solid/fluid system
type Problem struct {

	// input
	Sim *inp.Simulation // simulation data
	Dom *Domain         // the domain

	// systems
	SolidSys   *System      // solid momentum balance and volume constraint
	FluidSys   *System      // fluid mass balance
	SolidElems []*ElemSolid // all solid elements
	FluidElems []*ElemFluid // all fluid elements

	// projections
	massF   *Projector  // fluid-space mass matrix: pressure projection
	massW   *Projector  // flow-space mass matrix: seepage velocity projection
	flowRhs [][]float64 // [ndim][Nw] right-hand sides of the flow projection

	// control
	Verbose bool // print time stepping progress
	built   bool
}

// NewProblem allocates a new problem: the domain, all elements and the
// essential boundary conditions listed in the simulation input
func NewProblem(sim *inp.Simulation) (o *Problem, err error) {

	// domain
	o = new(Problem)
	o.Sim = sim
	o.Dom, err = NewDomain(sim)
	if err != nil {
		return nil, err
	}
	o.Dom.Dt = sim.Control.Dt

	// systems
	o.SolidSys = &System{Name: "solid"}
	o.FluidSys = &System{Name: "fluid"}

	// elements
	for _, c := range sim.Msh.Cells {
		es, err := newElemSolid(o.Dom, c, sim.Solver.Nip)
		if err != nil {
			return nil, err
		}
		ef, err := newElemFluid(o.Dom, c, sim.Solver.Nip)
		if err != nil {
			return nil, err
		}
		o.SolidElems = append(o.SolidElems, es)
		o.FluidElems = append(o.FluidElems, ef)
		o.SolidSys.Elems = append(o.SolidSys.Elems, es)
		o.FluidSys.Elems = append(o.FluidSys.Elems, ef)
	}

	// boundary conditions from the input file
	for _, bc := range sim.SolidBcs {
		fcn, err := o.bcFcn(bc.Fcn)
		if err != nil {
			return nil, err
		}
		err = o.SolidBc(AtPlane(bc.Axis, bc.Val), bc.Comps, fcn)
		if err != nil {
			return nil, err
		}
	}
	for _, bc := range sim.FluidBcs {
		fcn, err := o.bcFcn(bc.Fcn)
		if err != nil {
			return nil, err
		}
		o.FluidBc(AtPlane(bc.Axis, bc.Val), fcn)
	}
	return
}

// bcFcn finds the boundary condition function named name; an empty name
// corresponds to the zero function
func (o *Problem) bcFcn(name string) (fun.Func, error) {
	if name == "" {
		return &fun.Cte{}, nil
	}
	fcn := o.Sim.Functions.Get(name)
	if fcn == nil {
		return nil, chk.Err("cannot find boundary condition function named %q", name)
	}
	return fcn, nil
}

// SolidBc prescribes displacement components at all vertices matched by sel.
// An empty comps slice prescribes all components
func (o *Problem) SolidBc(sel VertSelector, comps []int, fcn fun.Func) (err error) {
	ndim := o.Dom.Ndim
	if len(comps) == 0 {
		comps = make([]int, ndim)
		for i := 0; i < ndim; i++ {
			comps[i] = i
		}
	}
	keys := []string{"ux", "uy", "uz"}
	for _, i := range comps {
		if i < 0 || i >= ndim {
			return chk.Err("invalid displacement component %d for a %dD problem", i, ndim)
		}
	}
	for _, v := range o.Dom.Msh.Verts {
		if o.Dom.UmapVert[v.Id] == nil || !sel(v.C) {
			continue
		}
		for _, i := range comps {
			o.SolidSys.EssBcs.Set(keys[i], o.Dom.UmapVert[v.Id][i], fcn)
		}
	}
	return
}

// FluidBc prescribes the fluid mass content at all vertices matched by sel
func (o *Problem) FluidBc(sel VertSelector, fcn fun.Func) {
	for _, v := range o.Dom.Msh.Verts {
		if o.Dom.MmapVert[v.Id] < 0 || !sel(v.C) {
			continue
		}
		o.FluidSys.EssBcs.Set("mf", o.Dom.MmapVert[v.Id], fcn)
	}
}

// SetIniMf sets the initial fluid mass content from a function of the vertex
// coordinates
func (o *Problem) SetIniMf(fcn fun.Func) {
	o.Dom.SetIniMf(fcn)
}

// Build finalises the problem structure: numbers the constraints, allocates
// the solver arrays and factorises the projection mass matrices. Boundary
// conditions cannot be changed afterwards
func (o *Problem) Build() (err error) {
	if o.built {
		return
	}
	dat := &o.Sim.Solver

	// systems
	var nnzS, nnzF, nnzW int
	for _, e := range o.SolidElems {
		n := e.Nu + e.Nlm
		nnzS += n * n
		nnzF += e.Shp.Nverts * e.Shp.Nverts
		nnzW += e.Shp.BasicNverts * e.Shp.BasicNverts
	}
	err = o.SolidSys.Build(o.Dom.Us, nnzS, dat.Type, dat.LinTol, dat.NmaxIt)
	if err != nil {
		return
	}
	err = o.FluidSys.Build(o.Dom.Mf, nnzF, dat.Type, dat.LinTol, dat.NmaxIt)
	if err != nil {
		return
	}

	// projections
	o.massF, err = newProjector(o.Dom.NyF, nnzF, dat.Type, dat.LinTol, dat.NmaxIt)
	if err != nil {
		return
	}
	o.massW, err = newProjector(o.Dom.Nw, nnzW, dat.Type, dat.LinTol, dat.NmaxIt)
	if err != nil {
		return
	}
	o.flowRhs = la.MatAlloc(o.Dom.Ndim, o.Dom.Nw)
	err = o.assembleMassMatrices()
	if err != nil {
		return
	}

	// initial pore pressure
	err = o.fluidSolidCoupling()
	if err != nil {
		return
	}
	o.built = true
	return
}

// assembleMassMatrices (re)assembles and factorises the projection mass
// matrices with the current vertex coordinates
func (o *Problem) assembleMassMatrices() (err error) {
	o.massF.T.Start()
	for _, e := range o.SolidElems {
		err = e.AddToMassF(&o.massF.T)
		if err != nil {
			return
		}
	}
	err = o.massF.Factorize()
	if err != nil {
		return
	}
	o.massW.T.Start()
	for _, e := range o.FluidElems {
		err = e.AddToMassW(&o.massW.T)
		if err != nil {
			return
		}
	}
	return o.massW.Factorize()
}

// fluidSolidCoupling projects the pore pressure of the solid state onto the
// fluid space
func (o *Problem) fluidSolidCoupling() (err error) {
	la.VecFill(o.massF.B, 0)
	for _, e := range o.SolidElems {
		err = e.AddToPressureRhs(o.massF.B)
		if err != nil {
			return
		}
	}
	err = o.massF.Solve()
	if err != nil {
		return
	}
	copy(o.Dom.Pp, o.massF.X)
	return
}

// calcFlowVector projects the seepage velocity onto the flow space
func (o *Problem) calcFlowVector(t float64) (err error) {
	ndim := o.Dom.Ndim
	for i := 0; i < ndim; i++ {
		la.VecFill(o.flowRhs[i], 0)
	}
	for _, e := range o.FluidElems {
		err = e.AddToFlowRhs(o.flowRhs, t)
		if err != nil {
			return
		}
	}
	for i := 0; i < ndim; i++ {
		copy(o.massW.B, o.flowRhs[i])
		err = o.massW.Solve()
		if err != nil {
			return
		}
		for cw := 0; cw < o.Dom.Nw; cw++ {
			o.Dom.Uf[cw*ndim+i] = o.massW.X[cw]
		}
	}
	return
}

// moveMesh moves the mesh with the solid displacement increment of the step
// and refreshes all data depending on the vertex coordinates
func (o *Problem) moveMesh() (err error) {
	err = o.Dom.MoveMesh()
	if err != nil {
		return
	}
	for i, e := range o.SolidElems {
		e.X = o.Dom.Msh.ExtractCellCoords(e.Cell.Id)
		o.FluidElems[i].X = o.Dom.Msh.ExtractCellCoords(e.Cell.Id)
	}
	return o.assembleMassMatrices()
}

// TotalFluidMass integrates the fluid mass content over the domain
func (o *Problem) TotalFluidMass() (mass float64, err error) {
	for _, e := range o.FluidElems {
		for _, ip := range e.Ips {
			err = e.Shp.CalcAtIp(e.X, ip, true)
			if err != nil {
				return
			}
			var mi float64
			for m := 0; m < e.Shp.Nverts; m++ {
				mi += e.Shp.S[m] * o.Dom.Mf[e.Mmap[m]]
			}
			mass += e.Shp.J * ip[3] * mi
		}
	}
	return
}

// Run performs the time stepping. The report callback, if any, is called at
// the end of every step with a copy of the state
func (o *Problem) Run(report func(res *Result) error) (err error) {

	// finalise structure
	err = o.Build()
	if err != nil {
		return
	}

	// time stepping
	dat := &o.Sim.Solver
	dt := o.Sim.Control.Dt
	tf := o.Sim.Control.Tf
	t := 0.0
	for t < tf-1e-10 {
		t += dt
		o.Dom.BeginStep(t, dt)

		// staggered coupling iterations
		for ic := 0; ic < o.Sim.Control.Ncoup; ic++ {
			err = o.FluidSys.RunIterations(t, dat)
			if err != nil {
				return
			}
			err = o.SolidSys.RunIterations(t, dat)
			if err != nil {
				return
			}
			err = o.fluidSolidCoupling()
			if err != nil {
				return
			}
		}

		// post-processing
		err = o.calcFlowVector(t)
		if err != nil {
			return
		}
		if o.Sim.Data.MeshMotion {
			err = o.moveMesh()
			if err != nil {
				return
			}
		}
		if o.Verbose {
			io.Pf("t = %10.6f\n", t)
		}
		if report != nil {
			err = report(&Result{
				T:  t,
				Us: la.VecClone(o.Dom.Us),
				Mf: la.VecClone(o.Dom.Mf),
				Uf: la.VecClone(o.Dom.Uf),
			})
			if err != nil {
				return
			}
		}
	}
	return
}
