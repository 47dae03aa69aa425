// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// EssentialBc holds information about essential boundary conditions such as
// constrained nodes. Lagrange multipliers are used to implement both single-
// and multi-point constraints.
//  In general, essential bcs / constraints are defined by means of:
//
//      A・y = c
//
//  The resulting Kb matrix will then have the following form:
//      _       _
//     |  K  At  | / δy \   / -R - At*λ \
//     |         | |    | = |           |
//     |_ A   0 _| \ δλ /   \  c - A*y  /
//         Kb       δyb          fb
//
type EssentialBc struct {
	Key   string    // key such as 'ux', 'uy' or 'H' for a generalized row
	Eqs   []int     // equations numbers; can be more than one e.g. for generalized rows
	ValsA []float64 // values for matrix A
	C     float64   // the "c" value in  A・y = c
}

// EbcArray is an array of EssentialBc's
type EbcArray []*EssentialBc

// EssentialBcs implements a structure to record the definition of essential
// bcs / constraints. Each constraint has a unique Lagrange multiplier index.
type EssentialBcs struct {
	Bcs EbcArray     // active essential bcs / constraints
	A   la.Triplet   // matrix of coefficients 'A'
	Am  *la.CCMatrix // compressed form of A matrix
}

// Init initialises this structure
func (o *EssentialBcs) Init() {
	o.Bcs = make([]*EssentialBc, 0)
}

// Build builds the structures required for assembling the A matrix
//  nλ   -- is the number of essential bcs / constraints == number of Lagrange multipliers
//  nnzA -- is the number of non-zeros in matrix 'A'
func (o *EssentialBcs) Build(ny int) (nλ, nnzA int) {

	// skip if there are no constraints
	nλ = len(o.Bcs)
	if nλ == 0 {
		return
	}

	// sort bcs to make the numbering of Lagrange multipliers deterministic
	sort.Sort(o.Bcs)

	// count number of non-zeros in matrix A
	for _, bc := range o.Bcs {
		nnzA += len(bc.ValsA)
	}

	// set matrix A
	o.A.Init(nλ, ny, nnzA)
	for i, bc := range o.Bcs {
		for j, eq := range bc.Eqs {
			o.A.Put(i, eq, bc.ValsA[j])
		}
	}
	o.Am = o.A.ToMatrix(nil)
	return
}

// AddToRhs adds the essential bcs / constraints terms to the augmented fb vector
func (o *EssentialBcs) AddToRhs(fb []float64, sol *Solution) {

	// skip if there are no constraints
	if len(o.Bcs) == 0 {
		return
	}

	// add -At*λ to fb
	la.SpMatTrVecMulAdd(fb, -1, o.Am, sol.L) // fb += -1 * At * λ

	// assemble -rc = c - A*y into fb
	ny := len(sol.Y)
	for i, bc := range o.Bcs {
		fb[ny+i] = bc.C
	}
	la.SpMatVecMulAdd(fb[ny:], -1, o.Am, sol.Y) // fb += -1 * A * y
}

// SetRow sets one generalized constraint row  h・u = c  at one node
//  h -- [ndim] selector row; zero components are skipped
func (o *EssentialBcs) SetRow(key string, nod *Node, h []float64, c float64) (err error) {

	// collect nonzero components
	var eqs []int
	var vals []float64
	for i, ukey := range []string{"ux", "uy"} {
		if h[i]*h[i] > 1e-28 {
			d := nod.GetDof(ukey)
			if d == nil {
				return chk.Err("node of vertex %d does not have %q dof", nod.Vert.Id, ukey)
			}
			eqs = append(eqs, d.Eq)
			vals = append(vals, h[i])
		}
	}
	if len(eqs) == 0 {
		return chk.Err("selector row is zero; the constraint is ill-posed")
	}

	// set constraint
	o.set_eqs(key, eqs, vals, c)
	return
}

// List returns a simple list logging bcs
func (o *EssentialBcs) List() (l string) {
	l = "\n==================================================================\n"
	l += io.Sf("%8s%8s%25s\n", "eq", "key", "value")
	l += "------------------------------------------------------------------\n"
	sort.Sort(o.Bcs)
	for _, bc := range o.Bcs {
		l += io.Sf("%8d%8s%25.13f\n", bc.Eqs[0], bc.Key, bc.C)
	}
	l += "==================================================================\n"
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// set_eqs sets a constraint; an existent constraint over exactly the same
// equations and coefficients is replaced, to avoid duplicated (singular) rows
// when regions share corner vertices. on replacement the latest prescribed
// value c wins, even when it differs from the previous one
func (o *EssentialBcs) set_eqs(key string, eqs []int, valsA []float64, c float64) {
	for _, bc := range o.Bcs {
		if same_constraint(bc.Eqs, bc.ValsA, eqs, valsA) {
			bc.Key, bc.C = key, c
			return
		}
	}
	o.Bcs = append(o.Bcs, &EssentialBc{key, eqs, valsA, c})
}

// same_constraint compares the target of two constraints
func same_constraint(eqsA []int, valsA []float64, eqsB []int, valsB []float64) bool {
	if len(eqsA) != len(eqsB) {
		return false
	}
	for i := range eqsA {
		if eqsA[i] != eqsB[i] || valsA[i] != valsB[i] {
			return false
		}
	}
	return true
}

// functions to implement Sort interface. Eqs are not sorted in place because
// their pairing with ValsA must be preserved
func (o EbcArray) Len() int      { return len(o) }
func (o EbcArray) Swap(i, j int) { o[i], o[j] = o[j], o[i] }
func (o EbcArray) Less(i, j int) bool {
	a, b := min_eq(o[i].Eqs), min_eq(o[j].Eqs)
	if a != b {
		return a < b
	}
	return len(o[i].Eqs) < len(o[j].Eqs)
}

// min_eq returns the smallest equation number in eqs
func min_eq(eqs []int) (m int) {
	m = eqs[0]
	for _, eq := range eqs {
		if eq < m {
			m = eq
		}
	}
	return
}
