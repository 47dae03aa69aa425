// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/io"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	r := []float64{0, 0, 0}
	for n := 0; n < shape.Nverts; n++ {

		// natural coordinates @ vertex
		for i := 0; i < shape.Gndim; i++ {
			r[i] = shape.NatCoords[i][n]
		}

		// compute function
		shape.Func(shape.S, shape.DSdR, r, false)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckShapeFace checks that face shape functions evaluate to 1.0 @ face nodes
func CheckShapeFace(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// skip line cells
	nfaces := len(shape.FaceLocalVerts)
	if nfaces == 0 {
		return
	}

	// loop over face vertices
	errS := 0.0
	r := []float64{0, 0, 0}
	face := Get(shape.FaceType)
	for n := 0; n < face.Nverts; n++ {
		r[0] = face.NatCoords[0][n]
		shape.FaceFunc(shape.Sf, shape.DSfdRf, r, false)
		if verbose {
			io.Pf("Sf = %v\n", shape.Sf)
		}
		for m := 0; m < face.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.Sf[m] - 1.0)
			} else {
				errS += math.Abs(shape.Sf[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s (face) failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckDSdR compares analytical dSdR derivatives against central differences
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {

	// auxiliary
	r_tmp := make([]float64, len(r))
	S_tmp := make([]float64, shape.Nverts)

	// analytical
	shape.Func(shape.S, shape.DSdR, r, true)

	// numerical
	for n := 0; n < shape.Nverts; n++ {
		for i := 0; i < shape.Gndim; i++ {
			dSndRi := derivCentral(func(t float64) float64 {
				copy(r_tmp, r)
				r_tmp[i] = t
				shape.Func(S_tmp, nil, r_tmp, false)
				return S_tmp[n]
			}, r[i], 1e-3)
			if verbose {
				io.Pfgrey2("  dS%ddR%d @ %5.2f = %v (num: %v)\n", n, i, r, shape.DSdR[n][i], dSndRi)
			}
			if math.Abs(shape.DSdR[n][i]-dSndRi) > tol {
				tst.Errorf("%s dS%ddR%d failed with err = %g\n", shape.Type, n, i, math.Abs(shape.DSdR[n][i]-dSndRi))
				return
			}
		}
	}
}

// derivCentral approximates df/dx with a central difference
func derivCentral(f func(x float64) float64, x, h float64) float64 {
	return (f(x+h) - f(x-h)) / (2.0 * h)
}
