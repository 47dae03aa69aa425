// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

// Msh2vtu converts a mesh file to a .vtu (XML/VTK) file for inspection,
// including the boundary face tags
package main

import (
	"bytes"

	"github.com/cpmech/gocontact/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	mshfn, fnkey := io.ArgToFilename(0, "data/blockup", ".msh", true)
	io.Pf("\n%s\n", io.ArgsTable("INPUT ARGUMENTS",
		"mesh filename", "mshfn", mshfn,
	))

	// read mesh
	msh, err := inp.ReadMsh("", mshfn)
	if err != nil {
		io.PfRed("cannot read mesh:\n%v", err)
		return
	}

	// buffers
	geo := new(bytes.Buffer)
	dat := new(bytes.Buffer)

	// coordinates
	io.Ff(geo, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, v := range msh.Verts {
		io.Ff(geo, "%23.15e %23.15e %23.15e ", v.C[0], v.C[1], 0.0)
	}
	io.Ff(geo, "\n</DataArray>\n</Points>\n")

	// connectivities
	io.Ff(geo, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, c := range msh.Cells {
		for _, v := range c.Verts {
			io.Ff(geo, "%d ", v)
		}
	}

	// offsets
	io.Ff(geo, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	var offset int
	for _, c := range msh.Cells {
		offset += len(c.Verts)
		io.Ff(geo, "%d ", offset)
	}

	// types
	io.Ff(geo, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for _, c := range msh.Cells {
		if c.Shp.VtkCode < 1 {
			chk.Panic("cannot handle cell type %q", c.Type)
		}
		io.Ff(geo, "%d ", c.Shp.VtkCode)
	}
	io.Ff(geo, "\n</DataArray>\n</Cells>\n")

	// vertices on tagged boundary faces get the (positive) tag value
	vert2tag := make(map[int]int)
	for _, f := range msh.BryFaces {
		if len(f.C.FTags) > f.Fid {
			if ftag := f.C.FTags[f.Fid]; ftag < 0 {
				for _, v := range f.Verts {
					vert2tag[v] = -ftag
				}
			}
		}
	}
	io.Ff(dat, "<PointData Scalars=\"TheScalars\">\n")
	io.Ff(dat, "<DataArray type=\"Int32\" Name=\"ftag\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, v := range msh.Verts {
		io.Ff(dat, "%d ", vert2tag[v.Id])
	}
	io.Ff(dat, "\n</DataArray>\n</PointData>\n")

	// cell data
	io.Ff(dat, "<CellData Scalars=\"TheScalars\">\n")
	io.Ff(dat, "<DataArray type=\"Int32\" Name=\"eid\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, c := range msh.Cells {
		io.Ff(dat, "%d ", c.Id)
	}
	io.Ff(dat, "\n</DataArray>\n</CellData>\n")

	// write file
	var hdr, foo bytes.Buffer
	io.Ff(&hdr, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&hdr, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", len(msh.Verts), len(msh.Cells))
	io.Ff(&foo, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
	io.WriteFileVD("/tmp/gocontact", fnkey+".vtu", &hdr, geo, dat, &foo)
}
