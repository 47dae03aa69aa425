// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. reading simulation file")

	sim, err := ReadSim("data/twoblocks.sim", false)
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	if chk.Verbose {
		sim.GetInfo(os.Stdout)
		io.Pf("\n")
	}

	// global data
	chk.IntAssert(len(sim.Bodies), 2)
	chk.IntAssert(len(sim.Materials), 1)
	chk.Float64(tst, "thick", 1e-15, sim.Data.Thick, 1.0)
	chk.Float64(tst, "restol", 1e-15, sim.Solver.ResTol, 1e-9)
	chk.IntAssert(sim.Solver.NmaxIt, 100)

	// material
	mat := sim.GetMaterial("soft")
	if mat == nil {
		tst.Errorf("cannot find material")
		return
	}
	chk.Float64(tst, "E", 1e-15, mat.GetPrm("E").V, 1000)
	chk.Float64(tst, "nu", 1e-15, mat.GetPrm("nu").V, 0.3)

	// meshes and regions
	for i, bdy := range sim.Bodies {
		if bdy.Msh == nil {
			tst.Errorf("mesh of body %d was not read", i)
			return
		}
	}
	chk.IntAssert(len(sim.Bodies[0].Msh.RegionFaces(-20)), 1)
	chk.IntAssert(len(sim.Bodies[1].Msh.RegionFaces(-30)), 1)

	// contact
	if sim.Contact == nil {
		tst.Errorf("contact data was not read")
		return
	}
	chk.Array(tst, "normal", 1e-15, sim.Contact.Normal, []float64{0, 1})
	chk.IntAssert(sim.Contact.SlaveBody, 0)
	chk.IntAssert(sim.Contact.MasterBody, 1)
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. ill-posed Dirichlet conditions")

	dbc := DirichletBc{Tag: -1, H: [][]float64{{0, 0}}, R: []float64{0, 0}}
	if err := dbc.Check(); err == nil {
		tst.Errorf("zero row in H must be rejected")
		return
	}

	dbc = DirichletBc{Tag: -1, H: [][]float64{{1, 0}, {0, 1}, {1, 1}}, R: []float64{0, 0}}
	if err := dbc.Check(); err == nil {
		tst.Errorf("H with more than 2 rows must be rejected")
		return
	}

	dbc = DirichletBc{Tag: -1, H: [][]float64{{0, 1}}, R: []float64{0, -0.1}}
	if err := dbc.Check(); err != nil {
		tst.Errorf("valid condition was rejected:\n%v", err)
	}
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. missing simulation file")

	sim, err := ReadSim("data/no-such-file.sim", false)
	if err == nil {
		tst.Errorf("an error must be returned for a missing file")
		return
	}
	if sim != nil {
		tst.Errorf("sim must be nil on failure")
	}
}
