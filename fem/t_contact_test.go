// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gocontact/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_contact01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("contact01. two blocks pressed together")

	// simulation and domain
	sim, err := inp.ReadSim("data/twoblocks.sim", false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	dom, err := NewDomain(sim)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// dimensions: 16 displacement equations + 2 multipliers; 8 constraints
	chk.IntAssert(dom.Ny, 18)
	chk.IntAssert(dom.Nlam, 8)
	chk.IntAssert(dom.Nyb, 26)

	// solve
	err = Solve(dom)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// the two blocks are identical; by symmetry the interface moves half-way
	for _, vid := range []int{0, 1} {
		_, uy := dom.NodalDisp(0, vid)
		chk.Float64(tst, io.Sf("uy @ slave vert %d", vid), 1e-10, uy, -0.005)
	}
	for _, vid := range []int{2, 3} {
		_, uy := dom.NodalDisp(1, vid)
		chk.Float64(tst, io.Sf("uy @ master vert %d", vid), 1e-10, uy, -0.005)
	}

	// contact results: both points active, closed gaps, uniform pressure
	res := dom.Contact.Results(dom.Sol)
	chk.IntAssert(len(res), 2)
	for i, r := range res {
		io.Pforan("x=%v pressure=%v gap=%v active=%v\n", r.X, r.Pressure, r.Gap, r.Active)
		if !r.Active {
			tst.Errorf("test failed: contact point %d must be active\n", i)
			return
		}
		chk.Float64(tst, "gap", 1e-9, r.Gap, 0)
		if r.Pressure < 1e-10 {
			tst.Errorf("test failed: pressure must be positive. p=%g\n", r.Pressure)
			return
		}
	}
	chk.Float64(tst, "uniform pressure", 1e-9, res[0].Pressure, res[1].Pressure)
}

func Test_contact02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("contact02. two blocks pulled apart")

	// simulation and domain
	sim, err := inp.ReadSim("data/pull.sim", false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	dom, err := NewDomain(sim)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// solve
	err = Solve(dom)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// the upper block translates rigidly and the lower one does not move
	for _, vid := range []int{0, 1, 2, 3} {
		ux, uy := dom.NodalDisp(0, vid)
		chk.Float64(tst, io.Sf("ux @ slave vert %d", vid), 1e-10, ux, 0)
		chk.Float64(tst, io.Sf("uy @ slave vert %d", vid), 1e-10, uy, 0.01)
	}
	for _, vid := range []int{0, 1, 2, 3} {
		ux, uy := dom.NodalDisp(1, vid)
		chk.Float64(tst, io.Sf("ux @ master vert %d", vid), 1e-10, ux, 0)
		chk.Float64(tst, io.Sf("uy @ master vert %d", vid), 1e-10, uy, 0)
	}

	// contact results: open gap with zero pressure
	res := dom.Contact.Results(dom.Sol)
	chk.IntAssert(len(res), 2)
	for i, r := range res {
		io.Pforan("x=%v pressure=%v gap=%v active=%v\n", r.X, r.Pressure, r.Gap, r.Active)
		if r.Active {
			tst.Errorf("test failed: contact point %d must be inactive\n", i)
			return
		}
		chk.Float64(tst, "pressure", 1e-10, r.Pressure, 0)
		chk.Float64(tst, "gap", 1e-10, r.Gap, -0.01)
	}
}

func Test_contact03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("contact03. exhausted iterations")

	// simulation with room for one iteration only
	sim, err := inp.ReadSim("data/twoblocks.sim", false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	sim.Solver.NmaxIt = 1
	dom, err := NewDomain(sim)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// solve must fail with the dedicated error
	err = Solve(dom)
	if err == nil {
		tst.Errorf("test failed: non-convergence error expected\n")
		return
	}
	nce, ok := err.(*NonConvError)
	if !ok {
		tst.Errorf("test failed: error must be *NonConvError. got: %v\n", err)
		return
	}
	chk.IntAssert(nce.It, 1)
	if !(nce.LargFb > 0) {
		tst.Errorf("test failed: residual norm must be positive. got %g\n", nce.LargFb)
	}
}

func Test_contact04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("contact04. refined meshes")

	// simulation and domain
	sim, err := inp.ReadSim("data/twoblocks2.sim", false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	dom, err := NewDomain(sim)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// dimensions: 24 displacement equations + 3 multipliers; 12 constraints
	chk.IntAssert(dom.Ny, 27)
	chk.IntAssert(dom.Nlam, 12)

	// solve
	err = Solve(dom)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// interface moves half-way
	for _, vid := range []int{0, 1, 2} {
		_, uy := dom.NodalDisp(0, vid)
		chk.Float64(tst, io.Sf("uy @ slave vert %d", vid), 1e-10, uy, -0.005)
	}
	for _, vid := range []int{3, 4, 5} {
		_, uy := dom.NodalDisp(1, vid)
		chk.Float64(tst, io.Sf("uy @ master vert %d", vid), 1e-10, uy, -0.005)
	}

	// complementarity: active points have closed gaps; inactive ones carry no
	// pressure
	res := dom.Contact.Results(dom.Sol)
	chk.IntAssert(len(res), 4)
	for _, r := range res {
		io.Pforan("x=%v pressure=%v gap=%v active=%v\n", r.X, r.Pressure, r.Gap, r.Active)
		if r.Active {
			chk.Float64(tst, "gap", 1e-9, r.Gap, 0)
			if r.Pressure < 0 {
				tst.Errorf("test failed: active pressure must be non-negative. p=%g\n", r.Pressure)
				return
			}
		} else {
			chk.Float64(tst, "pressure", 1e-9, r.Pressure, 0)
		}
	}

	// symmetry about the vertical centre line
	chk.Float64(tst, "pressure symmetry", 1e-9, res[0].Pressure, res[3].Pressure)
	chk.Float64(tst, "pressure symmetry", 1e-9, res[1].Pressure, res[2].Pressure)
}

func Test_contact05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("contact05. touching bodies with zero load")

	// same geometry but nothing is prescribed
	sim, err := inp.ReadSim("data/twoblocks.sim", false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	sim.Bodies[0].Dirichlet[0].R = []float64{0, 0}
	dom, err := NewDomain(sim)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	err = Solve(dom)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// everything stays at rest
	chk.Array(tst, "Y", 1e-15, dom.Sol.Y, make([]float64, dom.Ny))
	for _, r := range dom.Contact.Results(dom.Sol) {
		chk.Float64(tst, "pressure", 1e-15, r.Pressure, 0)
		chk.Float64(tst, "gap", 1e-15, r.Gap, 0)
		if r.Active {
			tst.Errorf("test failed: untouched pair must be inactive\n")
			return
		}
	}
}

func Test_contact06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("contact06. ill-defined pairings")

	// unknown transform
	sim, err := inp.ReadSim("data/twoblocks.sim", false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	sim.Contact.Transform = "rotate"
	_, err = NewDomain(sim)
	if err == nil {
		tst.Errorf("test failed: error expected for unknown transform\n")
		return
	}

	// transform mapping outside the master body
	sim, err = inp.ReadSim("data/twoblocks.sim", false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	sim.Contact.Transform = "translate"
	sim.Contact.Extra = "!dx:5"
	_, err = NewDomain(sim)
	if err == nil {
		tst.Errorf("test failed: error expected for points outside the master body\n")
	}
}
