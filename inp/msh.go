// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"
	"path/filepath"

	"github.com/porofem/porofem/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// constants
const Ztol = 1e-7

// Vert holds vertex data
type Vert struct {
	Id  int       // id
	Tag int       // tag
	C   []float64 // coordinates (size==2 or 3)
}

// Cell holds cell data
type Cell struct {

	// input data
	Id    int    // id
	Tag   int    // tag
	Type  string // geometry type (string); e.g. "qua8"
	Verts []int  // vertices

	// derived
	Shp *shp.Shape // shape structure
}

// Mesh holds a mesh for FE analyses
type Mesh struct {

	// from JSON
	Verts []*Vert // vertices
	Cells []*Cell // cells

	// derived
	FnamePath  string  // complete filename path
	Ndim       int     // space dimension
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate
	Zmin, Zmax float64 // min and max z-coordinate
}

// ReadMsh reads a mesh for FE analyses
//  Note: returns nil on errors
func ReadMsh(dir, fn string) *Mesh {

	// new mesh
	var o Mesh

	// read file
	o.FnamePath = filepath.Join(dir, fn)
	b, err := io.ReadFile(o.FnamePath)
	if err != nil {
		return nil
	}

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		return nil
	}

	// derived data
	err = o.CalcDerived()
	if err != nil {
		return nil
	}
	return &o
}

// CalcDerived computes derived quantities such as the space dimension,
// limits and cell shape structures
func (o *Mesh) CalcDerived() (err error) {

	// check
	if len(o.Verts) < 2 {
		return chk.Err("mesh: at least 2 vertices are required; got %d", len(o.Verts))
	}
	if len(o.Cells) < 1 {
		return chk.Err("mesh: at least 1 cell is required; got %d", len(o.Cells))
	}

	// vertex related derived data
	o.Ndim = 2
	o.Xmin = o.Verts[0].C[0]
	o.Ymin = o.Verts[0].C[1]
	if len(o.Verts[0].C) > 2 {
		o.Zmin = o.Verts[0].C[2]
	}
	o.Xmax = o.Xmin
	o.Ymax = o.Ymin
	o.Zmax = o.Zmin
	for i, v := range o.Verts {

		// check vertex id
		if v.Id != i {
			return chk.Err("mesh: vertices must be sequentially numbered; %d != %d", v.Id, i)
		}

		// ndim
		nd := len(v.C)
		if nd < 2 || nd > 3 {
			return chk.Err("mesh: vertex %d has invalid number of coordinates: %d", v.Id, nd)
		}
		if nd == 3 {
			if math.Abs(v.C[2]) > Ztol {
				o.Ndim = 3
			}
		}

		// limits
		o.Xmin = utl.Min(o.Xmin, v.C[0])
		o.Xmax = utl.Max(o.Xmax, v.C[0])
		o.Ymin = utl.Min(o.Ymin, v.C[1])
		o.Ymax = utl.Max(o.Ymax, v.C[1])
		if nd > 2 {
			o.Zmin = utl.Min(o.Zmin, v.C[2])
			o.Zmax = utl.Max(o.Zmax, v.C[2])
		}
	}

	// cell related derived data
	for i, c := range o.Cells {

		// check id and type
		if c.Id != i {
			return chk.Err("mesh: cells must be sequentially numbered; %d != %d", c.Id, i)
		}
		c.Shp = shp.Get(c.Type, 0)
		if c.Shp == nil {
			return chk.Err("mesh: cannot allocate shape structure for cell type %q", c.Type)
		}
		if len(c.Verts) != c.Shp.Nverts {
			return chk.Err("mesh: cell %d has %d vertices; type %q requires %d", c.Id, len(c.Verts), c.Type, c.Shp.Nverts)
		}
	}
	return
}

// ExtractCellCoords extracts cell coordinates
//  xmat -- [ndim][nverts] coordinates of vertices of cell
func (o *Mesh) ExtractCellCoords(cellId int) (xmat [][]float64) {
	c := o.Cells[cellId]
	xmat = make([][]float64, o.Ndim)
	for i := 0; i < o.Ndim; i++ {
		xmat[i] = make([]float64, len(c.Verts))
		for j, v := range c.Verts {
			xmat[i][j] = o.Verts[v].C[i]
		}
	}
	return
}

// VertsOnPlane returns the ids of all vertices lying on the plane {x[axis] == val}
func (o *Mesh) VertsOnPlane(axis int, val float64) (ids []int) {
	if axis < 0 || axis >= o.Ndim {
		chk.Panic("mesh: invalid plane axis: %d", axis)
	}
	for _, v := range o.Verts {
		if math.Abs(v.C[axis]-val) < Ztol {
			ids = append(ids, v.Id)
		}
	}
	return
}

// mesh generators /////////////////////////////////////////////////////////////////////////////////

// UnitSquareMesh generates a structured mesh of the unit square [0,1]×[0,1]
// with nx × ny serendipity (qua8) cells
func UnitSquareMesh(nx, ny int) *Mesh {
	if nx < 1 || ny < 1 {
		chk.Panic("UnitSquareMesh: nx and ny must be at least 1; got nx=%d ny=%d", nx, ny)
	}

	// vertices: grid points with both indices odd are skipped (serendipity cells
	// carry no interior node)
	var o Mesh
	n2id := make(map[int]int)
	key := func(i, j int) int { return i + j*(2*nx+1) }
	for j := 0; j <= 2*ny; j++ {
		for i := 0; i <= 2*nx; i++ {
			if i%2 == 1 && j%2 == 1 {
				continue
			}
			id := len(o.Verts)
			n2id[key(i, j)] = id
			o.Verts = append(o.Verts, &Vert{
				Id: id,
				C:  []float64{float64(i) / float64(2*nx), float64(j) / float64(2*ny)},
			})
		}
	}

	// cells
	for cy := 0; cy < ny; cy++ {
		for cx := 0; cx < nx; cx++ {
			a, b := 2*cx, 2*cy
			o.Cells = append(o.Cells, &Cell{
				Id:   len(o.Cells),
				Type: "qua8",
				Verts: []int{
					n2id[key(a, b)], n2id[key(a+2, b)], n2id[key(a+2, b+2)], n2id[key(a, b+2)],
					n2id[key(a+1, b)], n2id[key(a+2, b+1)], n2id[key(a+1, b+2)], n2id[key(a, b+1)],
				},
			})
		}
	}

	// derived data
	err := o.CalcDerived()
	if err != nil {
		chk.Panic("UnitSquareMesh: %v", err)
	}
	return &o
}

// UnitCubeMesh generates a structured mesh of the unit cube [0,1]³ with
// nx × ny × nz serendipity (hex20) cells
func UnitCubeMesh(nx, ny, nz int) *Mesh {
	if nx < 1 || ny < 1 || nz < 1 {
		chk.Panic("UnitCubeMesh: nx, ny and nz must be at least 1; got nx=%d ny=%d nz=%d", nx, ny, nz)
	}

	// vertices: grid points with two or more odd indices are skipped
	var o Mesh
	n2id := make(map[int]int)
	key := func(i, j, k int) int { return i + (2*nx+1)*(j+(2*ny+1)*k) }
	for k := 0; k <= 2*nz; k++ {
		for j := 0; j <= 2*ny; j++ {
			for i := 0; i <= 2*nx; i++ {
				nodd := i%2 + j%2 + k%2
				if nodd > 1 {
					continue
				}
				id := len(o.Verts)
				n2id[key(i, j, k)] = id
				o.Verts = append(o.Verts, &Vert{
					Id: id,
					C: []float64{
						float64(i) / float64(2*nx),
						float64(j) / float64(2*ny),
						float64(k) / float64(2*nz),
					},
				})
			}
		}
	}

	// cells
	for cz := 0; cz < nz; cz++ {
		for cy := 0; cy < ny; cy++ {
			for cx := 0; cx < nx; cx++ {
				a, b, c := 2*cx, 2*cy, 2*cz
				o.Cells = append(o.Cells, &Cell{
					Id:   len(o.Cells),
					Type: "hex20",
					Verts: []int{
						// corners
						n2id[key(a, b, c)], n2id[key(a+2, b, c)], n2id[key(a+2, b+2, c)], n2id[key(a, b+2, c)],
						n2id[key(a, b, c+2)], n2id[key(a+2, b, c+2)], n2id[key(a+2, b+2, c+2)], n2id[key(a, b+2, c+2)],
						// bottom edges
						n2id[key(a+1, b, c)], n2id[key(a+2, b+1, c)], n2id[key(a+1, b+2, c)], n2id[key(a, b+1, c)],
						// top edges
						n2id[key(a+1, b, c+2)], n2id[key(a+2, b+1, c+2)], n2id[key(a+1, b+2, c+2)], n2id[key(a, b+1, c+2)],
						// vertical edges
						n2id[key(a, b, c+1)], n2id[key(a+2, b, c+1)], n2id[key(a+2, b+2, c+1)], n2id[key(a, b+2, c+1)],
					},
				})
			}
		}
	}

	// derived data
	err := o.CalcDerived()
	if err != nil {
		chk.Panic("UnitCubeMesh: %v", err)
	}
	return &o
}
