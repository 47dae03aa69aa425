// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for the verification of
// contact simulations
package ana

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// HertzCylinders implements the classical (Hertz) solution for the
// frictionless contact of two parallel elastic cylinders pressed together by
// a force P per unit length (plane strain):
//
//          \                /
//           ' ,          , '      cylinder 1:  R1, E1, ν1
//               ' -  - '
//            ══════════════       contact band of half-width b
//               , -  - ,
//           . '          ' .      cylinder 2:  R2, E2, ν2
//          /                \
//
//  The pressure distribution over the contact band is elliptical with the
//  maximum p0 at the centre. A flat surface is obtained with R → ∞
type HertzCylinders struct {

	// input
	R1, R2 float64 // radii of cylinders
	E1, E2 float64 // Young's moduli
	ν1, ν2 float64 // Poisson's coefficients

	// derived
	Estar float64 // effective modulus: 1/E* = (1-ν1²)/E1 + (1-ν2²)/E2
	Reff  float64 // effective radius:  1/R  = 1/R1 + 1/R2
}

// Init initialises this structure
func (o *HertzCylinders) Init(prms dbf.Params) {

	// default values
	o.R1 = 50
	o.R2 = 50
	o.E1 = 210000
	o.E2 = 210000
	o.ν1 = 0.3
	o.ν2 = 0.3

	// parameters
	for _, p := range prms {
		switch p.N {
		case "R1":
			o.R1 = p.V
		case "R2":
			o.R2 = p.V
		case "E1":
			o.E1 = p.V
		case "E2":
			o.E2 = p.V
		case "nu1":
			o.ν1 = p.V
		case "nu2":
			o.ν2 = p.V
		}
	}

	// derived
	o.Estar = 1.0 / ((1.0-o.ν1*o.ν1)/o.E1 + (1.0-o.ν2*o.ν2)/o.E2)
	o.Reff = 1.0 / (1.0/o.R1 + 1.0/o.R2)
}

// HalfWidth returns the half-width b of the contact band due to force P per
// unit length
func (o *HertzCylinders) HalfWidth(P float64) float64 {
	return math.Sqrt(4.0 * P * o.Reff / (math.Pi * o.Estar))
}

// MaxPressure returns the maximum contact pressure p0 due to force P per
// unit length
func (o *HertzCylinders) MaxPressure(P float64) float64 {
	return math.Sqrt(P * o.Estar / (math.Pi * o.Reff))
}

// Pressure returns the contact pressure at distance x from the centre of the
// contact band; zero outside the band
func (o *HertzCylinders) Pressure(P, x float64) float64 {
	b := o.HalfWidth(P)
	if x*x >= b*b {
		return 0
	}
	return o.MaxPressure(P) * math.Sqrt(1.0-x*x/(b*b))
}

// Force returns the force P per unit length producing the maximum pressure p0
func (o *HertzCylinders) Force(p0 float64) float64 {
	return math.Pi * o.Reff * p0 * p0 / o.Estar
}
