// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Gauss-Legendre coordinates
var (
	gp2 = 1.0 / math.Sqrt(3.0)
	gp3 = math.Sqrt(3.0 / 5.0)
	gw3 = []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
)

// ips_lin2 are the integration points of "lin" cells with 2 points
var ips_lin2 = []Ipoint{
	{-gp2, 0, 0, 1},
	{gp2, 0, 0, 1},
}

// ips_lin3 are the integration points of "lin" cells with 3 points
var ips_lin3 = []Ipoint{
	{-gp3, 0, 0, gw3[0]},
	{0, 0, 0, gw3[1]},
	{gp3, 0, 0, gw3[2]},
}

// ips_qua4 are the integration points of "qua" cells with 2x2 points
var ips_qua4 = []Ipoint{
	{-gp2, -gp2, 0, 1},
	{gp2, -gp2, 0, 1},
	{gp2, gp2, 0, 1},
	{-gp2, gp2, 0, 1},
}

// ips_qua9 are the integration points of "qua" cells with 3x3 points
var ips_qua9 = func() (ips []Ipoint) {
	pts := []float64{-gp3, 0, gp3}
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			ips = append(ips, Ipoint{pts[i], pts[j], 0, gw3[i] * gw3[j]})
		}
	}
	return
}()

// GetIps returns the integration points of a cell type
//  nip -- number of integration points; 0 means default
func GetIps(geoType string, nip int) (ips []Ipoint, err error) {
	switch geoType {
	case "lin2":
		switch nip {
		case 0, 2:
			return ips_lin2, nil
		case 3:
			return ips_lin3, nil
		}
	case "lin3":
		switch nip {
		case 0, 3:
			return ips_lin3, nil
		case 2:
			return ips_lin2, nil
		}
	case "qua4":
		switch nip {
		case 0, 4:
			return ips_qua4, nil
		case 9:
			return ips_qua9, nil
		}
	case "qua8", "qua9":
		switch nip {
		case 0, 9:
			return ips_qua9, nil
		case 4:
			return ips_qua4, nil
		}
	default:
		return nil, chk.Err("cannot find integration points for geometry type %q", geoType)
	}
	return nil, chk.Err("number of integration points %d is not available for geometry type %q", nip, geoType)
}
