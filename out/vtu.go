// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/gocontact/fem"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// WriteVtu writes one .vtu (XML/VTK unstructured grid) file with the meshes
// of all bodies, the displacements and the extrapolated stress quantities.
// The file is saved as dirout/fnkey.vtu
func WriteVtu(dom *fem.Domain, dirout, fnkey string) (err error) {

	// nodal values
	vals, err := NodalVals(dom)
	if err != nil {
		return
	}

	// dimensions; vertices of all bodies are stacked with offsets
	npts, ncells := 0, 0
	offs := make([]int, len(dom.Bodies))
	for bidx, bd := range dom.Bodies {
		offs[bidx] = npts
		npts += len(bd.Msh.Verts)
		ncells += len(bd.Msh.Cells)
	}

	// buffers
	geo := new(bytes.Buffer)
	dat := new(bytes.Buffer)

	// coordinates
	io.Ff(geo, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, bd := range dom.Bodies {
		for _, v := range bd.Msh.Verts {
			io.Ff(geo, "%23.15e %23.15e %23.15e ", v.C[0], v.C[1], 0.0)
		}
	}
	io.Ff(geo, "\n</DataArray>\n</Points>\n")

	// connectivities
	io.Ff(geo, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for bidx, bd := range dom.Bodies {
		for _, c := range bd.Msh.Cells {
			for _, v := range c.Verts {
				io.Ff(geo, "%d ", offs[bidx]+v)
			}
		}
	}

	// offsets
	io.Ff(geo, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	var offset int
	for _, bd := range dom.Bodies {
		for _, c := range bd.Msh.Cells {
			offset += len(c.Verts)
			io.Ff(geo, "%d ", offset)
		}
	}

	// types
	io.Ff(geo, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for _, bd := range dom.Bodies {
		for _, c := range bd.Msh.Cells {
			if c.Shp.VtkCode < 1 {
				return chk.Err("cannot handle cell type %q", c.Type)
			}
			io.Ff(geo, "%d ", c.Shp.VtkCode)
		}
	}
	io.Ff(geo, "\n</DataArray>\n</Cells>\n")

	// displacements
	io.Ff(dat, "<PointData Scalars=\"TheScalars\">\n")
	io.Ff(dat, "<DataArray type=\"Float64\" Name=\"u\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for bidx, bd := range dom.Bodies {
		for _, v := range bd.Msh.Verts {
			ux, uy := dom.NodalDisp(bidx, v.Id)
			io.Ff(dat, "%23.15e %23.15e %23.15e ", ux, uy, 0.0)
		}
	}
	io.Ff(dat, "\n</DataArray>\n")

	// extrapolated stress quantities
	for _, key := range []string{"sx", "sy", "sz", "sxy", "q"} {
		io.Ff(dat, "<DataArray type=\"Float64\" Name=%q NumberOfComponents=\"1\" format=\"ascii\">\n", key)
		for bidx, bd := range dom.Bodies {
			for _, v := range bd.Msh.Verts {
				io.Ff(dat, "%23.15e ", vals[bidx][v.Id][key])
			}
		}
		io.Ff(dat, "\n</DataArray>\n")
	}
	io.Ff(dat, "</PointData>\n")

	// cell data
	io.Ff(dat, "<CellData Scalars=\"TheScalars\">\n")
	io.Ff(dat, "<DataArray type=\"Int32\" Name=\"body\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for bidx, bd := range dom.Bodies {
		for range bd.Msh.Cells {
			io.Ff(dat, "%d ", bidx)
		}
	}
	io.Ff(dat, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"eid\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, bd := range dom.Bodies {
		for _, c := range bd.Msh.Cells {
			io.Ff(dat, "%d ", c.Id)
		}
	}
	io.Ff(dat, "\n</DataArray>\n</CellData>\n")

	// write file
	var hdr, foo bytes.Buffer
	io.Ff(&hdr, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&hdr, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", npts, ncells)
	io.Ff(&foo, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
	io.WriteFileVD(dirout, fnkey+".vtu", &hdr, geo, dat, &foo)
	return
}
