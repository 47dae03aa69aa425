// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// LinElast implements a linear elastic model for plane-strain and
// plane-stress analyses
type LinElast struct {

	// parameters
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	Rho float64 // density

	// derived
	Lam     float64     // λ: first Lamé coefficient; plane-stress uses λ* = 2λμ/(λ+2μ)
	Mu      float64     // μ: second Lamé coefficient (shear modulus)
	Pstress bool        // plane-stress
	Nsig    int         // number of stress components
	D       [][]float64 // constant modulus matrix [nsig][nsig]
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// Init initialises model
func (o *LinElast) Init(ndim int, pstress bool, prms dbf.Params) (err error) {

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "rho":
			o.Rho = p.V
		}
	}
	if o.E < 1e-14 {
		return chk.Err("Young's modulus must be positive. E=%g", o.E)
	}
	if o.Nu < 0 || o.Nu >= 0.5 {
		return chk.Err("Poisson's coefficient must be within [0, 0.5). nu=%g", o.Nu)
	}

	// Lamé coefficients
	o.Pstress = pstress
	o.Lam = o.E * o.Nu / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
	o.Mu = o.E / (2.0 * (1.0 + o.Nu))
	if pstress {
		o.Lam = 2.0 * o.Lam * o.Mu / (o.Lam + 2.0*o.Mu)
	}

	// modulus matrix in Mandel basis {xx, yy, zz, √2⋅xy}
	o.Nsig = 4
	o.D = utl.Alloc(o.Nsig, o.Nsig)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.D[i][j] = o.Lam
		}
		o.D[i][i] += 2.0 * o.Mu
	}
	o.D[3][3] = 2.0 * o.Mu

	// plane-stress: no out-of-plane stress
	if pstress {
		for i := 0; i < o.Nsig; i++ {
			o.D[i][2], o.D[2][i] = 0, 0
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "E", V: 2.0000e+04},
		&dbf.P{N: "nu", V: 2.5000e-01},
		&dbf.P{N: "rho", V: 2.7000e+00},
	}
}

// GetRho returns density
func (o LinElast) GetRho() float64 {
	return o.Rho
}

// InitIntVars initialises internal (secondary) variables
func (o LinElast) InitIntVars(σ []float64) (s *State, err error) {
	s = NewState(o.Nsig)
	copy(s.Sig, σ)
	return
}

// Update updates stresses for given strains
func (o LinElast) Update(s *State, ε, Δε []float64) (err error) {
	for i := 0; i < o.Nsig; i++ {
		for j := 0; j < o.Nsig; j++ {
			s.Sig[i] += o.D[i][j] * Δε[j]
		}
	}
	return
}

// CalcD computes D = dσ_new/dε_new consistent with Update
func (o LinElast) CalcD(D [][]float64, s *State, firstIt bool) (err error) {
	for i := 0; i < o.Nsig; i++ {
		copy(D[i], o.D[i])
	}
	return
}
