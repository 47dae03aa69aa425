// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data structures: meshes and simulation files
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/cpmech/gocontact/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Vert holds vertex data
type Vert struct {
	Id  int       // id
	Tag int       // tag
	C   []float64 // coordinates (size==2)
}

// Cell holds cell data
type Cell struct {

	// input data
	Id    int    // id
	Tag   int    // tag
	Type  string // geometry type (string)
	Verts []int  // vertices
	FTags []int  // edge tags from input file

	// derived
	Shp *shp.Shape // shape structure
}

// BryFace holds data of one face on the boundary of the mesh; i.e. a face
// shared by exactly one cell
type BryFace struct {
	C     *Cell     // cell owning this face
	Fid   int       // local face id within cell
	Verts []int     // global ids of vertices on face; corners first
	Nvec  []float64 // unit outward normal evaluated at the face centre
}

// CellFaceId structure
type CellFaceId struct {
	C   *Cell // cell
	Fid int   // face id
}

// Mesh holds a 2D mesh for FE analyses
type Mesh struct {

	// from JSON
	Verts []*Vert // vertices
	Cells []*Cell // cells

	// derived
	FnamePath  string  // complete filename path
	Ndim       int     // space dimension
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate

	// derived: boundary
	BryFaces []*BryFace // all faces on the boundary of the mesh

	// derived: maps
	VertTag2verts map[int][]*Vert      // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell      // cell tag => set of cells
	FaceTag2faces map[int][]*BryFace   // face tag => set of boundary faces
	FaceTag2verts map[int][]int        // face tag => vertices on tagged faces
	Ctype2cells   map[string][]*Cell   // cell type => set of cells
}

// ReadMsh reads a mesh for FE analyses
func ReadMsh(dir, fn string) (o *Mesh, err error) {

	// read file
	o = new(Mesh)
	o.FnamePath = filepath.Join(dir, fn)
	b, err := os.ReadFile(o.FnamePath)
	if err != nil {
		return nil, chk.Err("cannot read mesh file %q: %v", o.FnamePath, err)
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, err
	}

	// check
	if len(o.Verts) < 2 {
		return nil, chk.Err("mesh %q must have at least 2 vertices", fn)
	}
	if len(o.Cells) < 1 {
		return nil, chk.Err("mesh %q must have at least 1 cell", fn)
	}

	// vertex related derived data
	o.Ndim = 2
	o.Xmin, o.Ymin = o.Verts[0].C[0], o.Verts[0].C[1]
	o.Xmax, o.Ymax = o.Xmin, o.Ymin
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {

		// check vertex id and dimension
		if v.Id != i {
			return nil, chk.Err("vertices must be sequentially numbered. %d != %d", v.Id, i)
		}
		if len(v.C) != 2 {
			return nil, chk.Err("this code works with 2D meshes only. vertex %d has %d coordinates", v.Id, len(v.C))
		}

		// tags
		if v.Tag < 0 {
			verts := o.VertTag2verts[v.Tag]
			o.VertTag2verts[v.Tag] = append(verts, v)
		}

		// limits
		o.Xmin = utl.Min(o.Xmin, v.C[0])
		o.Xmax = utl.Max(o.Xmax, v.C[0])
		o.Ymin = utl.Min(o.Ymin, v.C[1])
		o.Ymax = utl.Max(o.Ymax, v.C[1])
	}

	// cell related derived data
	o.CellTag2cells = make(map[int][]*Cell)
	o.Ctype2cells = make(map[string][]*Cell)
	for i, c := range o.Cells {

		// check id and tag
		if c.Id != i {
			return nil, chk.Err("cells must be sequentially numbered. %d != %d", c.Id, i)
		}
		if c.Tag >= 0 {
			return nil, chk.Err("cell tags must be negative. cell %d has tag %d", c.Id, c.Tag)
		}

		// shape structure
		c.Shp = shp.Get(c.Type)
		if c.Shp == nil {
			return nil, chk.Err("cannot find shape structure for cell type %q", c.Type)
		}
		if len(c.Verts) != c.Shp.Nverts {
			return nil, chk.Err("cell %d (%s) needs %d vertices. %d given", c.Id, c.Type, c.Shp.Nverts, len(c.Verts))
		}

		// maps
		cells := o.CellTag2cells[c.Tag]
		o.CellTag2cells[c.Tag] = append(cells, c)
		cells = o.Ctype2cells[c.Type]
		o.Ctype2cells[c.Type] = append(cells, c)
	}

	// boundary faces and face tags
	err = o.find_boundary_faces()
	if err != nil {
		return nil, err
	}
	o.FaceTag2faces = make(map[int][]*BryFace)
	o.FaceTag2verts = make(map[int][]int)
	for _, f := range o.BryFaces {
		if len(f.C.FTags) > f.Fid {
			if ftag := f.C.FTags[f.Fid]; ftag < 0 {
				o.tag_face(ftag, f)
			}
		}
	}
	return
}

// SetRegionByDirection tags all boundary faces whose unit outward normal makes
// an angle not greater than tol [rad] with the unit vector along dir. Any faces
// previously held by ftag are released first; thus repeated calls with the same
// arguments give the same region.
func (o *Mesh) SetRegionByDirection(ftag int, dir []float64, tol float64) (err error) {

	// check
	if ftag >= 0 {
		return chk.Err("face tags must be negative. %d is invalid", ftag)
	}
	norm := math.Sqrt(dir[0]*dir[0] + dir[1]*dir[1])
	if norm < 1e-14 {
		return chk.Err("direction vector must be non-zero. dir=%v", dir)
	}
	if tol < 0 || tol > math.Pi {
		return chk.Err("angular tolerance must be within [0, π]. tol=%g", tol)
	}
	d := []float64{dir[0] / norm, dir[1] / norm}

	// rebuild region
	delete(o.FaceTag2faces, ftag)
	delete(o.FaceTag2verts, ftag)
	for _, f := range o.BryFaces {
		cosθ := f.Nvec[0]*d[0] + f.Nvec[1]*d[1]
		if cosθ > 1.0 {
			cosθ = 1.0
		}
		if cosθ < -1.0 {
			cosθ = -1.0
		}
		if math.Acos(cosθ) <= tol {
			o.tag_face(ftag, f)
		}
	}
	return
}

// RegionFaces returns the boundary faces held by ftag; nil if the tag is empty
func (o *Mesh) RegionFaces(ftag int) []*BryFace {
	return o.FaceTag2faces[ftag]
}

// RegionVerts returns the ids of vertices on the faces held by ftag
func (o *Mesh) RegionVerts(ftag int) []int {
	return o.FaceTag2verts[ftag]
}

// ExtractCellCoords returns the coordinates matrix x[ndim][nverts] of one cell
func (o *Mesh) ExtractCellCoords(cellId int) (x [][]float64) {
	c := o.Cells[cellId]
	x = utl.Alloc(o.Ndim, len(c.Verts))
	for m, v := range c.Verts {
		x[0][m] = o.Verts[v].C[0]
		x[1][m] = o.Verts[v].C[1]
	}
	return
}

// tag_face appends one boundary face to the maps of ftag; the vertex list is
// kept sorted and free of duplicates
func (o *Mesh) tag_face(ftag int, f *BryFace) {
	o.FaceTag2faces[ftag] = append(o.FaceTag2faces[ftag], f)
	verts := o.FaceTag2verts[ftag]
	for _, v := range f.Verts {
		found := false
		for _, w := range verts {
			if w == v {
				found = true
				break
			}
		}
		if !found {
			verts = append(verts, v)
		}
	}
	sort.Ints(verts)
	o.FaceTag2verts[ftag] = verts
}

// find_boundary_faces locates all faces shared by exactly one cell and
// computes their outward normals
func (o *Mesh) find_boundary_faces() (err error) {

	// count faces by their sorted corner-vertex pair
	type facekey [2]int
	count := make(map[facekey]int)
	key_of := func(c *Cell, fid int) facekey {
		lverts := c.Shp.FaceLocalVerts[fid]
		a, b := c.Verts[lverts[0]], c.Verts[lverts[1]]
		if a > b {
			a, b = b, a
		}
		return facekey{a, b}
	}
	for _, c := range o.Cells {
		for fid := range c.Shp.FaceLocalVerts {
			count[key_of(c, fid)]++
		}
	}

	// collect faces counted once
	o.BryFaces = nil
	ipf := shp.Ipoint{0, 0, 0, 2} // face centre
	for _, c := range o.Cells {
		x := o.ExtractCellCoords(c.Id)
		for fid, lverts := range c.Shp.FaceLocalVerts {
			if count[key_of(c, fid)] != 1 {
				continue
			}
			err = c.Shp.CalcAtFaceIp(x, ipf, fid)
			if err != nil {
				return
			}
			Jf := math.Sqrt(c.Shp.Fnvec[0]*c.Shp.Fnvec[0] + c.Shp.Fnvec[1]*c.Shp.Fnvec[1])
			if Jf < 1e-14 {
				return chk.Err("cell %d has degenerate face %d", c.Id, fid)
			}
			f := &BryFace{
				C:    c,
				Fid:  fid,
				Nvec: []float64{c.Shp.Fnvec[0] / Jf, c.Shp.Fnvec[1] / Jf},
			}
			for _, l := range lverts {
				f.Verts = append(f.Verts, c.Verts[l])
			}
			o.BryFaces = append(o.BryFaces, f)
		}
	}
	return
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := io.Sf("{\"id\":%4d, \"tag\":%6d, \"c\":[", o.Id, o.Tag)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Cell
func (o *Cell) String() string {
	l := io.Sf("{\"id\":%d, \"tag\":%d, \"type\":%q, \"verts\":[", o.Id, o.Tag, o.Type)
	for i, x := range o.Verts {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "], \"ftags\":["
	for i, x := range o.FTags {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Mesh
func (o Mesh) String() string {
	l := "{\n  \"verts\" : [\n"
	for i, x := range o.Verts {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ],\n  \"cells\" : [\n"
	for i, x := range o.Cells {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ]\n}"
	return l
}
