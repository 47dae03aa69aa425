// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "math"

// SQ2 is the square root of 2, used when mapping between the Mandel basis and
// tensor components
const SQ2 = math.Sqrt2

// Qmises returns the von Mises equivalent stress of a Mandel stress vector
// σ = {xx, yy, zz, √2⋅xy}:
//
//   q = √(3・J2)    J2 = ‖dev(σ)‖² / 2
//
// The result is non-negative by construction
func Qmises(σ []float64) float64 {
	p := (σ[0] + σ[1] + σ[2]) / 3.0
	d0 := σ[0] - p
	d1 := σ[1] - p
	d2 := σ[2] - p
	J2 := (d0*d0 + d1*d1 + d2*d2 + σ[3]*σ[3]) / 2.0
	return math.Sqrt(3.0 * J2)
}
