// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"sort"

	"github.com/cpmech/gocontact/fem"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
)

// PlotContactProfile plots the contact pressure and the normal gap along the
// slave contact boundary, sorted by the x-coordinate of the points.
//  fnkey -- filename key (no extension); e.g. "profile". Use "" to skip saving
//  show  -- shows figure
func PlotContactProfile(dom *fem.Domain, dirout, fnkey string, show bool) (err error) {

	// collect and sort results
	if dom.Contact == nil {
		return chk.Err("simulation has no contact data")
	}
	res := dom.Contact.Results(dom.Sol)
	sort.Slice(res, func(i, j int) bool { return res[i].X[0] < res[j].X[0] })
	n := len(res)
	x := make([]float64, n)
	p := make([]float64, n)
	g := make([]float64, n)
	for i, r := range res {
		x[i] = r.X[0]
		p[i] = r.Pressure
		g[i] = r.Gap
	}

	// pressure
	plt.Subplot(2, 1, 1)
	plt.Plot(x, p, &plt.A{C: "b", M: "o", L: "pressure", NoClip: true})
	plt.Gll("$x$", "$p_n$", nil)

	// gap
	plt.Subplot(2, 1, 2)
	plt.Plot(x, g, &plt.A{C: "r", M: "s", L: "gap", NoClip: true})
	plt.Gll("$x$", "$g_n$", nil)

	// save and show
	if fnkey != "" {
		plt.Save(dirout, fnkey)
	}
	if show {
		plt.Show()
	}
	return
}
