// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// constants
const (
	INVMAP_TOL = 1.0e-10 // tolerance for inverse mapping function
	INVMAP_NIT = 25      // maximum number of iterations for inverse mapping
)

// InvMap computes the natural coordinates r, given the real coordinates y
//  Input:
//   y[ndim]          -- the 2D point coordinates
//   x[ndim][nverts]  -- coordinates matrix of cell
//  Output:
//   r[3] -- the natural coordinates of the given point
func (o *Shape) InvMap(r, y []float64, x [][]float64) (err error) {

	// check
	if o.Gndim == 1 {
		return chk.Err("inverse mapping is not available for line cells")
	}

	var δRnorm float64
	e := make([]float64, o.Gndim)  // residual
	δr := make([]float64, o.Gndim) // corrector
	r[0], r[1], r[2] = 0, 0, 0     // first trial
	it := 0
	derivs := true
	for it = 0; it < INVMAP_NIT; it++ {

		// shape functions and derivatives
		o.Func(o.S, o.DSdR, r, derivs)

		// residual: e = y - x * S
		for i := 0; i < o.Gndim; i++ {
			e[i] = y[i]
			for j := 0; j < o.Nverts; j++ {
				e[i] -= x[i][j] * o.S[j]
			}
		}

		// dxdR = x * dSdR
		for i := 0; i < len(x); i++ {
			for j := 0; j < o.Gndim; j++ {
				o.DxdR[i][j] = 0.0
				for k := 0; k < o.Nverts; k++ {
					o.DxdR[i][j] += x[i][k] * o.DSdR[k][j]
				}
			}
		}

		// dRdx = inverse(dxdR)
		o.J, err = inv2x2(o.DRdx, o.DxdR)
		if err != nil {
			return
		}

		// corrector: δr = dRdx * e
		for i := 0; i < o.Gndim; i++ {
			δr[i] = 0.0
			for j := 0; j < o.Gndim; j++ {
				δr[i] += o.DRdx[i][j] * e[j]
			}
		}

		// update and convergence check
		δRnorm = 0.0
		for i := 0; i < o.Gndim; i++ {
			r[i] += δr[i]
			δRnorm += δr[i] * δr[i]
		}
		if math.Sqrt(δRnorm) < INVMAP_TOL {
			break
		}
	}

	// check
	if it == INVMAP_NIT {
		return chk.Err("inverse mapping did not converge after %d iterations (y=%v)", it, y)
	}
	return
}

// Contains tells whether the natural coordinates r lie inside this cell,
// within tolerance tol
func (o *Shape) Contains(r []float64, tol float64) bool {
	for i := 0; i < o.Gndim; i++ {
		if r[i] < -1.0-tol || r[i] > 1.0+tol {
			return false
		}
	}
	return true
}

// GetShapeMatAtIps returns a matrix formed by computing the shape functions
// at all integration points [nip][nverts]
func (o *Shape) GetShapeMatAtIps(ips []Ipoint) (N [][]float64) {
	nip := len(ips)
	N = utl.Alloc(nip, o.Nverts)
	derivs := false
	for i := 0; i < nip; i++ {
		o.Func(o.S, o.DSdR, ips[i], derivs)
		for j := 0; j < o.Nverts; j++ {
			N[i][j] = o.S[j]
		}
	}
	return
}

// Extrapolator computes the extrapolation matrix E[nverts][nip] mapping values
// at integration points to values at nodes. Requires nip ≥ nverts; with
// nip > nverts the least-squares (generalized) inverse of N is used:
//
//   E = inv(tr(N)・N)・tr(N)
//
//  Note: E must be pre-allocated
func (o *Shape) Extrapolator(E [][]float64, ips []Ipoint) (err error) {
	nip := len(ips)
	nv := o.Nverts
	if nip < nv {
		return chk.Err("extrapolator requires nip ≥ nverts. nip=%d, nverts=%d", nip, nv)
	}
	N := o.GetShapeMatAtIps(ips)

	// normal matrix tr(N)・N
	a := la.NewMatrix(nv, nv)
	for i := 0; i < nv; i++ {
		for j := 0; j < nv; j++ {
			sum := 0.0
			for k := 0; k < nip; k++ {
				sum += N[k][i] * N[k][j]
			}
			a.Set(i, j, sum)
		}
	}
	ai := la.NewMatrix(nv, nv)
	la.MatInv(ai, a, false)

	// E = inv(a)・tr(N)
	for i := 0; i < nv; i++ {
		for j := 0; j < nip; j++ {
			E[i][j] = 0.0
			for k := 0; k < nv; k++ {
				E[i][j] += ai.Get(i, k) * N[j][k]
			}
		}
	}
	return
}
