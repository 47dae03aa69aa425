// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"strings"
	"testing"

	"github.com/cpmech/gocontact/fem"
	"github.com/cpmech/gocontact/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func solve_problem(tst *testing.T, simfn string) (dom *fem.Domain) {
	sim, err := inp.ReadSim(simfn, false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return nil
	}
	dom, err = fem.NewDomain(sim)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return nil
	}
	err = fem.Solve(dom)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return nil
	}
	return
}

func Test_nodal01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nodal01. extrapolation of a uniform stress field")

	dom := solve_problem(tst, "data/onebody.sim")
	if dom == nil {
		return
	}

	// the field is uniform; extrapolated values match the ip values
	vals, err := NodalVals(dom)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(len(vals), 1)
	chk.IntAssert(len(vals[0]), 4)
	for vid, v := range vals[0] {
		chk.Float64(tst, io.Sf("sx @ vert %d", vid), 1e-10, v["sx"], 0)
		chk.Float64(tst, io.Sf("sy @ vert %d", vid), 1e-10, v["sy"], -10)
		chk.Float64(tst, io.Sf("sz @ vert %d", vid), 1e-10, v["sz"], -3)
		chk.Float64(tst, io.Sf("sxy @ vert %d", vid), 1e-10, v["sxy"], 0)
	}
}

func Test_vtu01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vtu01. vtu file with two bodies")

	dom := solve_problem(tst, "data/twoblocks.sim")
	if dom == nil {
		return
	}

	// write and read back
	err := WriteVtu(dom, "/tmp/gocontact", "twoblocks")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	b, err := os.ReadFile("/tmp/gocontact/twoblocks.vtu")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	s := string(b)
	for _, want := range []string{
		"<VTKFile type=\"UnstructuredGrid\"",
		"NumberOfPoints=\"8\" NumberOfCells=\"2\"",
		"Name=\"u\"",
		"Name=\"q\"",
		"Name=\"body\"",
	} {
		if !strings.Contains(s, want) {
			tst.Errorf("test failed: vtu file must contain %q\n", want)
			return
		}
	}
}

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01. contact pressure profile")

	dom := solve_problem(tst, "data/twoblocks.sim")
	if dom == nil {
		return
	}

	// plotting needs an external engine; uncomment verbose() to enable
	if chk.Verbose {
		err := PlotContactProfile(dom, "/tmp/gocontact", "profile", false)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
		}
	}
}
