// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"sort"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_shape01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape01. shape functions and derivatives")

	r := []float64{0.25, 0.25, 0}
	verb := chk.Verbose

	var types []string
	for typ := range factory {
		types = append(types, typ)
	}
	sort.Strings(types)
	for _, typ := range types {
		shape := Get(typ)
		io.Pfyel("--------------------------------- %-6s---------------------------------\n", typ)
		CheckShape(tst, shape, 1e-17, verb)
		CheckShapeFace(tst, shape, 1e-17, verb)
		CheckDSdR(tst, shape, r, 1e-9, verb)
	}
}

func Test_shape02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape02. inverse mapping")

	// qua4 cell distorted in real space
	x := [][]float64{
		{0, 3, 4, 1},
		{0, 1, 3, 2},
	}
	shape := Get("qua4")

	// map a few natural points forward and invert
	r := make([]float64, 3)
	for _, rref := range [][]float64{{0, 0}, {0.5, -0.25}, {-1, 1}, {0.99, 0.99}} {
		y := shape.IpRealCoords(x, Ipoint{rref[0], rref[1], 0, 0})
		err := shape.InvMap(r, y, x)
		if err != nil {
			tst.Errorf("InvMap failed: %v\n", err)
			return
		}
		chk.Array(tst, io.Sf("r(%v)", rref), 1e-9, r[:2], rref)
		if !shape.Contains(r, 1e-8) {
			tst.Errorf("point %v should be contained\n", rref)
			return
		}
	}

	// outside point
	y := []float64{10, 10}
	err := shape.InvMap(r, y, x)
	if err == nil && shape.Contains(r, 1e-8) {
		tst.Errorf("point %v must not be contained\n", y)
	}
}

func Test_shape03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape03. face normal vectors")

	// unit square, counter-clockwise vertices
	x := [][]float64{
		{0, 1, 1, 0},
		{0, 0, 1, 1},
	}
	shape := Get("qua4")

	// expected outward normals per face, scaled by Jf = L/2 = 0.5
	normals := [][]float64{
		{0, -0.5}, // bottom
		{0.5, 0},  // right
		{0, 0.5},  // top
		{-0.5, 0}, // left
	}
	ipf := Ipoint{0, 0, 0, 2}
	for iface, nvec := range normals {
		err := shape.CalcAtFaceIp(x, ipf, iface)
		if err != nil {
			tst.Errorf("CalcAtFaceIp failed: %v\n", err)
			return
		}
		chk.Array(tst, io.Sf("Fnvec(face %d)", iface), 1e-15, shape.Fnvec, nvec)
	}
}

func Test_shape04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape04. integration of simple fields")

	// integrate 1 and x over a stretched quadrilateral => area and first moment
	x := [][]float64{
		{0, 2, 2, 0},
		{0, 0, 3, 3},
	}
	for _, typ := range []string{"qua4", "qua9"} {
		shape := Get(typ)
		if typ == "qua9" {
			x = [][]float64{
				{0, 2, 2, 0, 1, 2, 1, 0, 1},
				{0, 0, 3, 3, 0, 1.5, 3, 1.5, 1.5},
			}
		}
		ips, err := GetIps(typ, 0)
		if err != nil {
			tst.Errorf("GetIps failed: %v\n", err)
			return
		}
		area, mx := 0.0, 0.0
		for _, ip := range ips {
			err = shape.CalcAtIp(x, ip, true)
			if err != nil {
				tst.Errorf("CalcAtIp failed: %v\n", err)
				return
			}
			xip := 0.0
			for m := 0; m < shape.Nverts; m++ {
				xip += shape.S[m] * x[0][m]
			}
			area += ip[3] * shape.J
			mx += ip[3] * shape.J * xip
		}
		chk.Float64(tst, io.Sf("area(%s)", typ), 1e-14, area, 6.0)
		chk.Float64(tst, io.Sf("mx(%s)", typ), 1e-14, mx, 6.0)
	}
}

func Test_shape05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape05. cell diameter")

	x := [][]float64{
		{0, 3, 3, 0},
		{0, 0, 4, 4},
	}
	shape := Get("qua4")
	chk.Float64(tst, "h", 1e-15, shape.Diameter(x), 5.0)

	xl := [][]float64{
		{1, 4},
		{1, 5},
	}
	lin := Get("lin2")
	chk.Float64(tst, "h(lin2)", 1e-15, lin.Diameter(xl), 5.0)
}
