// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

func Test_linelast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast01. Lamé coefficients")

	prms := dbf.Params{
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "rho", V: 2.0},
	}

	// plane-strain
	var mdl LinElast
	err := mdl.Init(2, false, prms)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Float64(tst, "lam", 1e-12, mdl.Lam, 576.923076923077)
	chk.Float64(tst, "mu", 1e-12, mdl.Mu, 384.615384615385)
	chk.Float64(tst, "rho", 1e-15, mdl.GetRho(), 2.0)

	// plane-stress: λ* = 2λμ/(λ+2μ) = Eν/(1-ν²)
	var mdlps LinElast
	err = mdlps.Init(2, true, prms)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Float64(tst, "lam*", 1e-12, mdlps.Lam, 1000.0*0.3/(1.0-0.09))
	chk.Float64(tst, "mu", 1e-12, mdlps.Mu, mdl.Mu)

	// invalid parameters
	var bad LinElast
	if err = bad.Init(2, false, dbf.Params{&dbf.P{N: "E", V: -1}, &dbf.P{N: "nu", V: 0.3}}); err == nil {
		tst.Errorf("negative E must be rejected")
		return
	}
	if err = bad.Init(2, false, dbf.Params{&dbf.P{N: "E", V: 1}, &dbf.P{N: "nu", V: 0.5}}); err == nil {
		tst.Errorf("nu=0.5 must be rejected")
	}
}

func Test_linelast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast02. stress update")

	prms := dbf.Params{
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.3},
	}

	// plane-strain hydrostatic: σxx = σyy = 2(λ+μ)ε and σzz = 2λε
	var mdl LinElast
	err := mdl.Init(2, false, prms)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	s, err := mdl.InitIntVars(nil)
	if err != nil {
		tst.Errorf("InitIntVars failed:\n%v", err)
		return
	}
	ε := []float64{0.001, 0.001, 0, 0}
	err = mdl.Update(s, ε, ε)
	if err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	chk.Float64(tst, "sx", 1e-12, s.Sig[0], 2.0*(mdl.Lam+mdl.Mu)*0.001)
	chk.Float64(tst, "sy", 1e-12, s.Sig[1], 2.0*(mdl.Lam+mdl.Mu)*0.001)
	chk.Float64(tst, "sz", 1e-12, s.Sig[2], 2.0*mdl.Lam*0.001)
	chk.Float64(tst, "sxy", 1e-15, s.Sig[3], 0)

	// plane-stress uniaxial: εyy = -ν εxx gives σxx = E εxx, σyy = σzz = 0
	var mdlps LinElast
	err = mdlps.Init(2, true, prms)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	s, err = mdlps.InitIntVars(nil)
	if err != nil {
		tst.Errorf("InitIntVars failed:\n%v", err)
		return
	}
	ε = []float64{0.001, -0.3 * 0.001, 0, 0}
	err = mdlps.Update(s, ε, ε)
	if err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	chk.Float64(tst, "sx", 1e-12, s.Sig[0], 1.0)
	chk.Float64(tst, "sy", 1e-12, s.Sig[1], 0)
	chk.Float64(tst, "sz", 1e-15, s.Sig[2], 0)

	// state copying
	other := s.GetCopy()
	chk.Array(tst, "sig", 1e-17, other.Sig, s.Sig)
}

func Test_linelast03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast03. modulus matrix")

	mdl, err := New("lin-elast")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	err = mdl.Init(2, false, mdl.GetPrms())
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	sml := mdl.(Small)
	s, _ := mdl.InitIntVars(nil)
	D := utl.Alloc(4, 4)
	err = sml.CalcD(D, s, false)
	if err != nil {
		tst.Errorf("CalcD failed:\n%v", err)
		return
	}

	// symmetry
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			chk.Float64(tst, "Dij", 1e-15, D[i][j], D[j][i])
		}
	}

	// unknown model
	if _, err = New("hyper-duper"); err == nil {
		tst.Errorf("unknown model must be rejected")
	}
}

func Test_invariants01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("invariants01. von Mises stress")

	// hydrostatic states have q = 0
	chk.Float64(tst, "q(hydro)", 1e-15, Qmises([]float64{-5, -5, -5, 0}), 0)

	// uniaxial state: q = |σ|
	chk.Float64(tst, "q(uniaxial)", 1e-13, Qmises([]float64{-10, 0, 0, 0}), 10)

	// diag(0,-10,-3) gives q = √79
	chk.Float64(tst, "q(diag)", 1e-13, Qmises([]float64{0, -10, -3, 0}), math.Sqrt(79.0))

	// pure shear: q = √3・|τ|
	chk.Float64(tst, "q(shear)", 1e-13, Qmises([]float64{0, 0, 0, SQ2 * 2.0}), math.Sqrt(3.0)*2.0)
}
