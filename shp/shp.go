// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape functions, quadrature data and mapping algorithms
// for the finite element discretisation of 2D solids
package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// constants
const MINDET = 1.0e-14 // minimum determinant allowed for dxdR

// Ipoint holds integration point data: natural coordinates and weight: {r, s, t, w}
type Ipoint []float64

// ShpFunc is the callback computing shape functions and derivatives at natural coordinates
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds the geometry data of one cell type
type Shape struct {

	// geometry
	Type           string      // name; e.g. "qua8"
	Func           ShpFunc     // shape/derivs callback
	FaceFunc       ShpFunc     // face shape/derivs callback
	FaceType       string      // geometry of face; e.g. "qua8" => "lin3"
	Gndim          int         // geometry dimension; e.g. "lin3" => 1
	Nverts         int         // number of vertices; e.g. "qua8" => 8
	VtkCode        int         // VTK cell code for output
	FaceNverts     int         // number of vertices on face
	FaceLocalVerts [][]int     // face local vertices [nfaces][...]; corners first
	NatCoords      [][]float64 // natural coordinates [gndim][nverts]

	// scratchpad: volume
	S    []float64   // [nverts] shape functions
	G    [][]float64 // [nverts][gndim] G == dSdx
	J    float64     // Jacobian: determinant of dxdR
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR [][]float64 // [gndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	DRdx [][]float64 // [gndim][gndim] dRdx == inverse(dxdR)

	// scratchpad: line
	Jvec []float64 // Jacobian vector dxdR for line elements
	Gvec []float64 // [nverts] G == dSdx for line elements

	// scratchpad: face
	Sf     []float64   // [FaceNverts] face shape function values
	Fnvec  []float64   // [gndim] face normal vector multiplied by Jf
	DSfdRf [][]float64 // [FaceNverts][gndim-1] derivatives of Sf w.r.t face natural coordinates
	DxfdRf [][]float64 // [gndim][gndim-1] derivatives of face real coordinates
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure; nil if geoType is unknown
func Get(geoType string) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	return s
}

// GetNverts returns the number of vertices of given cell type; -1 if unknown
func GetNverts(geoType string) int {
	s, ok := factory[geoType]
	if !ok {
		return -1
	}
	return s.Nverts
}

// GetFaceLocalVerts returns the local indices of vertices on a face of a cell
func GetFaceLocalVerts(geoType string, idxface int) []int {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	return s.FaceLocalVerts[idxface]
}

// IpRealCoords returns the real coordinates (y) of an integration point
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip, false)
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// FaceIpRealCoords returns the real coordinates (y) of an integration point @ face
func (o *Shape) FaceIpRealCoords(x [][]float64, ipf Ipoint, idxface int) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.FaceFunc(o.Sf, o.DSfdRf, ipf, false)
	for i := 0; i < ndim; i++ {
		for k, n := range o.FaceLocalVerts[idxface] {
			y[i] += o.Sf[k] * x[i][n]
		}
	}
	return
}

// CalcAtIp calculates volume data such as S and G at natural coordinates given by ip
//  Input:
//   x[ndim][nverts] -- coordinates matrix of cell
//   ip              -- integration point holding natural coordinates
//  Output:
//   S, DSdR, DxdR, DRdx, G, and J
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip, derivs)
	if !derivs {
		return
	}

	// line elements
	if o.Gndim == 1 {
		for i := 0; i < len(x); i++ {
			o.Jvec[i] = 0.0
			for m := 0; m < o.Nverts; m++ {
				o.Jvec[i] += x[i][m] * o.DSdR[m][0] // dxdR := x * dSdR
			}
		}
		o.J = math.Sqrt(o.Jvec[0]*o.Jvec[0] + o.Jvec[1]*o.Jvec[1])
		for m := 0; m < o.Nverts; m++ {
			o.Gvec[m] = o.DSdR[m][0] / o.J
		}
		return
	}

	// dxdR := sum_n x * dSdR  =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < len(x); i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
		}
	}

	// dRdx := inv(dxdR)
	o.J, err = inv2x2(o.DRdx, o.DxdR)
	if err != nil {
		return
	}

	// G == dSdx := dSdR * dRdx
	for m := 0; m < o.Nverts; m++ {
		for i := 0; i < o.Gndim; i++ {
			o.G[m][i] = 0.0
			for j := 0; j < o.Gndim; j++ {
				o.G[m][i] += o.DSdR[m][j] * o.DRdx[j][i]
			}
		}
	}
	return
}

// inv2x2 inverts the 2x2 matrix a into ai and returns its determinant
func inv2x2(ai, a [][]float64) (det float64, err error) {
	det = a[0][0]*a[1][1] - a[0][1]*a[1][0]
	if math.Abs(det) < MINDET {
		return 0, chk.Err("matrix is singular within tolerance. det=%g", det)
	}
	ai[0][0] = a[1][1] / det
	ai[0][1] = -a[0][1] / det
	ai[1][0] = -a[1][0] / det
	ai[1][1] = a[0][0] / det
	return
}

// CalcAtR calculates volume data such as S and G at natural coordinates r
func (o *Shape) CalcAtR(x [][]float64, r []float64, derivs bool) (err error) {
	return o.CalcAtIp(x, r, derivs)
}

// CalcAtFaceIp calculates face data such as Sf and Fnvec
//  Input:
//   x[ndim][nverts] -- coordinates matrix of cell
//   ipf             -- integration point of face (face natural coordinates)
//   idxface         -- local index of face
//  Output:
//   Sf and Fnvec
func (o *Shape) CalcAtFaceIp(x [][]float64, ipf Ipoint, idxface int) (err error) {

	// skip line elements
	if o.Gndim == 1 {
		return
	}

	// Sf and dSfdRf
	o.FaceFunc(o.Sf, o.DSfdRf, ipf, true)

	// dxfdRf := sum_n x * dSfdRf
	for i := 0; i < len(x); i++ {
		for j := 0; j < o.Gndim-1; j++ {
			o.DxfdRf[i][j] = 0.0
			for k, n := range o.FaceLocalVerts[idxface] {
				o.DxfdRf[i][j] += x[i][n] * o.DSfdRf[k][j]
			}
		}
	}

	// face normal vector; counter-clockwise cells give outward normals
	o.Fnvec[0] = o.DxfdRf[1][0]
	o.Fnvec[1] = -o.DxfdRf[0][0]
	return
}

// Diameter returns the diameter of the cell with coordinates x; i.e. the
// largest distance between any pair of vertices
func (o *Shape) Diameter(x [][]float64) (h float64) {
	ndim := len(x)
	for m := 0; m < o.Nverts; m++ {
		for n := m + 1; n < o.Nverts; n++ {
			d := 0.0
			for i := 0; i < ndim; i++ {
				d += (x[i][m] - x[i][n]) * (x[i][m] - x[i][n])
			}
			d = math.Sqrt(d)
			if d > h {
				h = d
			}
		}
	}
	return
}

// init_scratchpad initialises the scratchpad of shape structures
func (o *Shape) init_scratchpad() {

	// volume data
	o.S = make([]float64, o.Nverts)
	o.DSdR = utl.Alloc(o.Nverts, o.Gndim)
	o.DxdR = utl.Alloc(o.Gndim, o.Gndim)
	o.DRdx = utl.Alloc(o.Gndim, o.Gndim)
	o.G = utl.Alloc(o.Nverts, o.Gndim)

	// face data
	if o.Gndim > 1 {
		o.Sf = make([]float64, o.FaceNverts)
		o.DSfdRf = utl.Alloc(o.FaceNverts, o.Gndim-1)
		o.DxfdRf = utl.Alloc(o.Gndim, o.Gndim-1)
		o.Fnvec = make([]float64, o.Gndim)
	}

	// line data
	if o.Gndim == 1 {
		o.Jvec = make([]float64, 2)
		o.Gvec = make([]float64, o.Nverts)
	}
}

// register adds a new shape to the factory
func register(s *Shape) {
	if _, ok := factory[s.Type]; ok {
		chk.Panic("shape %q was registered twice", s.Type)
	}
	s.init_scratchpad()
	factory[s.Type] = s
}
