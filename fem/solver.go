// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// NonConvError indicates that the Newton iterations did not converge within
// the maximum number of iterations. The last residual norm is kept so that
// callers can report how far the solve got.
type NonConvError struct {
	It     int     // number of iterations performed
	LargFb float64 // largest absolute component of residual
}

func (o *NonConvError) Error() string {
	return io.Sf("Newton iterations did not converge after %d iterations. largest residual component = %g", o.It, o.LargFb)
}

// Solve runs Newton iterations until the residual converges. The solution is
// stored in d.Sol. A *NonConvError is returned if NmaxIt is exhausted.
func Solve(d *Domain) (err error) {

	// auxiliary
	dat := d.Sim.Solver
	var it int
	var largFb float64

	// clear accumulated increments
	for i := range d.Sol.ΔY {
		d.Sol.ΔY[i] = 0
	}

	// message
	if dat.ShowR {
		io.Pf("%13s%4s%23s\n", "", "it", "largFb")
	}

	for it = 0; it < dat.NmaxIt; it++ {

		// assemble right-hand side vector (fb) with negative of residuals
		for i := range d.Fb {
			d.Fb[i] = 0
		}
		for _, e := range d.Elems {
			err = e.AddToRhs(d.Fb, d.Sol)
			if err != nil {
				return
			}
		}

		// join constraints
		d.EssenBcs.AddToRhs(d.Fb, d.Sol)

		// check convergence on the largest component of fb
		largFb = 0
		for i := range d.Fb {
			if math.Abs(d.Fb[i]) > largFb {
				largFb = math.Abs(d.Fb[i])
			}
		}
		if dat.ShowR {
			io.Pf("%13s%4d%23.15e\n", "", it, largFb)
		}
		if largFb < dat.ResTol {
			return
		}

		// assemble Jacobian matrix
		d.Kb.Start()
		for _, e := range d.Elems {
			err = e.AddToKb(d.Kb, d.Sol, it == 0)
			if err != nil {
				return
			}
		}
		d.Kb.PutMatAndMatT(&d.EssenBcs.A)

		// solve linear system:  Kb・wb = fb
		d.Wb = la.SpSolve(d.Kb, d.Fb)

		// update primary variables (y) and constraint multipliers (λ)
		α := 1.0
		if dat.LSearch {
			α = dat.LsAlpha
		}
		for i := 0; i < d.Ny; i++ {
			d.Sol.Y[i] += α * d.Wb[i]
			d.Sol.ΔY[i] += α * d.Wb[i]
		}
		for i := 0; i < d.Nlam; i++ {
			d.Sol.L[i] += α * d.Wb[d.Ny+i]
		}

		// backup / restore internal variables
		if it == 0 {
			for _, e := range d.Elems {
				if ei, ok := e.(ElemIntvars); ok {
					err = ei.BackupIvs()
					if err != nil {
						return
					}
				}
			}
		} else {
			for _, e := range d.Elems {
				if ei, ok := e.(ElemIntvars); ok {
					err = ei.RestoreIvs()
					if err != nil {
						return
					}
				}
			}
		}

		// update secondary variables
		for _, e := range d.Elems {
			err = e.Update(d.Sol)
			if err != nil {
				return
			}
		}
	}
	return &NonConvError{it, largFb}
}
