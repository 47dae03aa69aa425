// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the assembly of the coupled elasticity + contact
// system and its solution with Newton's method
package fem

import (
	"github.com/cpmech/gosl/la"
)

// Solution holds the solution data @ nodes.
//
//        / u  \
//        |    | => y
//  yb =  | qc |
//        |    |
//        \ λ  / (nyb x 1)
//
//  u  -- displacements of both bodies
//  qc -- contact multipliers on the slave contact boundary
//  λ  -- Lagrange multipliers of the essential (Dirichlet) constraints
type Solution struct {
	T  float64   // pseudo time; load factor
	Y  []float64 // primary variables: {u, qc}
	ΔY []float64 // total increment of Y (accumulated during iterations)
	L  []float64 // Lagrange multipliers of essential constraints
}

// Elem defines what all elements must compute
type Elem interface {

	// information and initialisation
	Id() int // returns the cell Id

	// called for each iteration
	AddToRhs(fb []float64, sol *Solution) (err error)                // adds -R to global residual vector fb
	AddToKb(Kb *la.Triplet, sol *Solution, firstIt bool) (err error) // adds element K to global Jacobian matrix Kb
	Update(sol *Solution) (err error)                                // perform (tangent) update of secondary variables
}

// ElemIntvars defines elements with internal variables
type ElemIntvars interface {
	BackupIvs() (err error)  // create copy of internal variables
	RestoreIvs() (err error) // restore internal variables from copies
}

// OutIpData is an auxiliary structure to transfer data from integration
// points to output routines
type OutIpData struct {
	Eid  int                // id of element that owns this ip
	X    []float64          // real coordinates of ip
	Vals map[string]float64 // secondary values; e.g. "sx", "sy"
}
