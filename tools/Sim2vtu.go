// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/porofem/porofem/fem"
	"github.com/porofem/porofem/inp"
)

// Sim2vtu runs a simulation and writes one ParaView (vtu) file per time step
// with the displacement, fluid mass content, pore pressure and seepage
// velocity fields.

// global variables
var (
	sim    *inp.Simulation // simulation data
	prob   *fem.Problem    // the problem
	dirout string          // directory for output
	step   int             // current output step
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	simfn, _ := io.ArgToFilename(0, "examples/square_swelling", ".sim", true)
	dirout = io.ArgToString(1, "/tmp/porofem")
	io.Pf("\n%s\n", io.ArgsTable(
		"simulation filename", "simfn", simfn,
		"results directory", "dirout", dirout,
	))

	// problem
	sim = inp.ReadSim(simfn)
	var err error
	prob, err = fem.NewProblem(sim)
	if err != nil {
		chk.Panic("cannot allocate problem:\n%v", err)
	}

	// run and write one vtu file per step
	vtu_write()
	err = prob.Run(func(res *fem.Result) error {
		step++
		vtu_write()
		return nil
	})
	if err != nil {
		chk.Panic("run failed:\n%v", err)
	}
}

// vtu_write writes the current state to a vtu file
func vtu_write() {
	geo := new(bytes.Buffer)
	dat := new(bytes.Buffer)
	topology(geo)
	pdata_write(dat)
	msh := sim.Msh
	nv := len(msh.Verts)
	nc := len(msh.Cells)
	var hdr, foo bytes.Buffer
	io.Ff(&hdr, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&hdr, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", nv, nc)
	io.Ff(&foo, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
	io.WriteFileVD(dirout, io.Sf("%s_%04d.vtu", sim.Key, step), &hdr, geo, dat, &foo)
}

// topology writes coordinates, connectivities, offsets and cell types
func topology(buf *bytes.Buffer) {
	msh := sim.Msh

	// coordinates
	io.Ff(buf, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	var z float64
	for _, v := range msh.Verts {
		if msh.Ndim == 3 {
			z = v.C[2]
		}
		io.Ff(buf, "%23.15e %23.15e %23.15e ", v.C[0], v.C[1], z)
	}
	io.Ff(buf, "\n</DataArray>\n</Points>\n")

	// connectivities
	io.Ff(buf, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, c := range msh.Cells {
		for _, v := range c.Verts {
			io.Ff(buf, "%d ", v)
		}
	}

	// offsets
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	var offset int
	for _, c := range msh.Cells {
		offset += c.Shp.Nverts
		io.Ff(buf, "%d ", offset)
	}

	// types
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for _, c := range msh.Cells {
		if c.Shp.VtkCode < 1 {
			chk.Panic("cannot handle cell type %q", c.Shp.Type)
		}
		io.Ff(buf, "%d ", c.Shp.VtkCode)
	}
	io.Ff(buf, "\n</DataArray>\n</Cells>\n")
}

// pdata_write writes the nodal fields
func pdata_write(buf *bytes.Buffer) {
	msh := sim.Msh
	dom := prob.Dom
	io.Ff(buf, "<PointData Scalars=\"TheScalars\">\n")

	// displacements
	io.Ff(buf, "<DataArray type=\"Float64\" Name=\"u\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, v := range msh.Verts {
		u := dom.VertDisp(v.Id)
		var z float64
		if dom.Ndim == 3 {
			z = u[2]
		}
		io.Ff(buf, "%23.15e %23.15e %23.15e ", u[0], u[1], z)
	}

	// fluid mass content
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Float64\" Name=\"mf\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, v := range msh.Verts {
		var m float64
		if eq := dom.MmapVert[v.Id]; eq >= 0 {
			m = dom.Mf[eq]
		}
		io.Ff(buf, "%23.15e ", m)
	}

	// pore pressure
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Float64\" Name=\"pp\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, v := range msh.Verts {
		var p float64
		if eq := dom.MmapVert[v.Id]; eq >= 0 {
			p = dom.Pp[eq]
		}
		io.Ff(buf, "%23.15e ", p)
	}

	// seepage velocity: defined on the corner vertices only
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Float64\" Name=\"uf\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, v := range msh.Verts {
		uf := make([]float64, 3)
		if cw := dom.WmapVert[v.Id]; cw >= 0 {
			for i := 0; i < dom.Ndim; i++ {
				uf[i] = dom.Uf[cw*dom.Ndim+i]
			}
		}
		io.Ff(buf, "%23.15e %23.15e %23.15e ", uf[0], uf[1], uf[2])
	}
	io.Ff(buf, "\n</DataArray>\n</PointData>\n")
}
