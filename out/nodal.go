// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements post-processing: nodal extrapolation of stresses,
// VTK files and plots
package out

import (
	"github.com/cpmech/gocontact/fem"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// NodalVals extrapolates values from integration points to the vertices of
// each body. Vertices shared by more than one cell get the average of the
// extrapolated values.
//  vals -- [nbodies][nverts] maps of extrapolated values; e.g. "sy", "q"
func NodalVals(dom *fem.Domain) (vals [][]map[string]float64, err error) {
	vals = make([][]map[string]float64, len(dom.Bodies))
	for bidx, bd := range dom.Bodies {

		// allocate maps
		nverts := len(bd.Msh.Verts)
		vals[bidx] = make([]map[string]float64, nverts)
		counts := make([]float64, nverts)
		for i := 0; i < nverts; i++ {
			vals[bidx][i] = make(map[string]float64)
		}

		// loop over elements
		for _, e := range bd.Elems {

			// extrapolator matrix
			Emat := utl.Alloc(e.Shp.Nverts, len(e.IpsElem))
			err = e.Shp.Extrapolator(Emat, e.IpsElem)
			if err != nil {
				return nil, chk.Err("cannot compute extrapolator matrix of cell %d:\n%v", e.Id(), err)
			}

			// extrapolate from ips data
			dat := e.OutIpsData()
			cell := bd.Msh.Cells[e.Id()]
			for j, d := range dat {
				for key, val := range d.Vals {
					for i := 0; i < e.Shp.Nverts; i++ {
						vals[bidx][cell.Verts[i]][key] += Emat[i][j] * val
					}
				}
			}
			for i := 0; i < e.Shp.Nverts; i++ {
				counts[cell.Verts[i]] += 1
			}
		}

		// average
		for i := 0; i < nverts; i++ {
			if counts[i] > 0 {
				for key := range vals[bidx][i] {
					vals[bidx][i][key] /= counts[i]
				}
			}
		}
	}
	return
}
