// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Data holds global data for simulations
type Data struct {
	Desc       string `json:"desc"`       // description of simulation
	Matmodel   string `json:"matmodel"`   // material model name; e.g. "isoexp"
	MeshMotion bool   `json:"meshmotion"` // move mesh vertices with the solid displacement after each step
}

// PorousData holds the porous medium data
type PorousData struct {
	RhoF float64         `json:"rho"`  // intrinsic fluid density
	Phi0 float64         `json:"phi0"` // initial porosity
	K    json.RawMessage `json:"K"`    // permeability: number or name of a function of (t, x)
	Qi   float64         `json:"qi"`   // fluid source/sink rate
}

// ControlData holds data for defining the simulation time stepping
type ControlData struct {
	Dt    float64 `json:"dt"`    // time step size
	Tf    float64 `json:"tf"`    // final time
	Theta float64 `json:"theta"` // θ-method coefficient for the fluid problem
	Ncoup int     `json:"ncoup"` // number of fluid/solid coupling iterations per step
}

// SolverData holds nonlinear and linear solver data
type SolverData struct {

	// nonlinear solver
	NmaxIt int     `json:"nmaxit"` // number of max iterations
	Atol   float64 `json:"atol"`   // absolute tolerance
	Rtol   float64 `json:"rtol"`   // relative tolerance
	FbTol  float64 `json:"fbtol"`  // tolerance for convergence on fb
	FbMin  float64 `json:"fbmin"`  // minimum value of fb
	CteTg  bool    `json:"ctetg"`  // use constant tangent (modified Newton) during iterations
	ShowR  bool    `json:"showr"`  // show residual

	// linear solver
	Type   string  `json:"type"` // linear solver strategy: "direct" or "iterative"
	LinTol float64 `json:"tol"`  // tolerance for the iterative strategy

	// quadrature
	Nip int `json:"nip"` // number of integration points; 0 => use default

	// constants
	Eps float64 `json:"eps"` // smallest number satisfying 1.0 + ϵ > 1.0

	// derived
	Itol float64 // iterations tolerance
}

// MeshData selects/defines the mesh
type MeshData struct {
	Type string `json:"type"` // "unitsquare", "unitcube" or "file"
	Nx   int    `json:"nx"`   // number of cells along x
	Ny   int    `json:"ny"`   // number of cells along y
	Nz   int    `json:"nz"`   // number of cells along z
	File string `json:"file"` // mesh filename for Type == "file"
}

// PlaneBc holds an essential boundary condition applied to all vertices
// lying on the plane {x[Axis] == Val}
type PlaneBc struct {
	Axis  int     `json:"axis"`  // coordinate index defining the plane
	Val   float64 `json:"val"`   // coordinate value defining the plane
	Comps []int   `json:"comps"` // displacement components; empty => all (solid bcs only)
	Fcn   string  `json:"fcn"`   // name of function with prescribed value; empty => zero
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data        `json:"data"`      // stores global simulation data
	Functions FuncsData   `json:"functions"` // stores all boundary condition functions
	MatPrms   fun.Prms    `json:"material"`  // material model parameters
	Porous    PorousData  `json:"porous"`    // porous medium data
	Control   ControlData `json:"control"`   // time control
	Solver    SolverData  `json:"solver"`    // solver data
	Mesh      MeshData    `json:"mesh"`      // mesh selection
	SolidBcs  []*PlaneBc  `json:"solidbcs"`  // essential bcs on displacements
	FluidBcs  []*PlaneBc  `json:"fluidbcs"`  // essential bcs on fluid mass content

	// derived
	Key  string // simulation key; e.g. mysim01.sim => mysim01
	Msh  *Mesh  // the mesh
	Ndim int    // space dimension
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string) *Simulation {

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	var o Simulation
	o.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	dir = os.ExpandEnv(dir)
	o.Key = io.FnKey(filepath.Base(simfilepath))

	// set derived data
	o.Solver.PostProcess()

	// mesh
	switch o.Mesh.Type {
	case "unitsquare":
		o.Msh = UnitSquareMesh(o.Mesh.Nx, o.Mesh.Ny)
	case "unitcube":
		o.Msh = UnitCubeMesh(o.Mesh.Nx, o.Mesh.Ny, o.Mesh.Nz)
	case "file":
		o.Msh = ReadMsh(dir, o.Mesh.File)
		if o.Msh == nil {
			chk.Panic("ReadSim: cannot read mesh file %q", o.Mesh.File)
		}
	default:
		chk.Panic("ReadSim: unknown mesh type %q", o.Mesh.Type)
	}
	o.Ndim = o.Msh.Ndim

	// results
	return &o
}

// SetDefault sets defaults values
func (o *Simulation) SetDefault() {

	// global
	o.Data.Matmodel = "isoexp"

	// porous medium
	o.Porous.RhoF = 1000.0
	o.Porous.Phi0 = 0.1
	o.Porous.Qi = 0.1

	// time control
	o.Control.Dt = 0.01
	o.Control.Tf = 1.0
	o.Control.Theta = 0.5
	o.Control.Ncoup = 3

	// solver
	o.Solver.SetDefault()

	// mesh
	o.Mesh.Type = "unitsquare"
	o.Mesh.Nx = 2
	o.Mesh.Ny = 2
	o.Mesh.Nz = 2
}

// Kfun returns the permeability function, constant or from the functions database
//  The "K" entry must contain either a number or the name of a function of (t, x)
func (o *Simulation) Kfun() (kf fun.Func, err error) {
	if len(o.Porous.K) == 0 {
		return nil, chk.Err("porous data: permeability \"K\" is missing")
	}
	var val float64
	if e := json.Unmarshal(o.Porous.K, &val); e == nil {
		return &fun.Cte{C: val}, nil
	}
	var name string
	if e := json.Unmarshal(o.Porous.K, &name); e == nil {
		kf = o.Functions.Get(name)
		if kf == nil {
			return nil, chk.Err("porous data: cannot find permeability function named %q", name)
		}
		return kf, nil
	}
	return nil, chk.Err("porous data: permeability \"K\" must be a number or the name of a function; got %s", string(o.Porous.K))
}

// SetDefault set defaults values
func (o *SolverData) SetDefault() {

	// nonlinear solver
	o.NmaxIt = 1000
	o.Atol = 1e-6
	o.Rtol = 1e-6
	o.FbTol = 1e-8
	o.FbMin = 1e-14

	// linear solver
	o.Type = "direct"
	o.LinTol = 1e-8

	// constants
	o.Eps = 1e-16
}

// PostProcess performs a post-processing of the just read json file
func (o *SolverData) PostProcess() {
	if o.Type != "direct" && o.Type != "iterative" {
		chk.Panic("solver type must be \"direct\" or \"iterative\"; got %q", o.Type)
	}
	o.Itol = utl.Max(10.0*o.Eps/o.Rtol, utl.Min(0.01, math.Sqrt(o.Rtol)))
}
