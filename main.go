// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gocontact/fem"
	"github.com/cpmech/gocontact/inp"
	"github.com/cpmech/gocontact/out"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	writeVtu := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nGocontact -- augmented-Lagrangian contact of elastic bodies\n\n")
		io.Pf("Copyright 2016 The Gocontact Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"write vtu file", "writeVtu", writeVtu,
		))
	}

	// simulation and domain
	sim, err := inp.ReadSim(fnamepath, true)
	if err != nil {
		chk.Panic("cannot read simulation file:\n%v", err)
	}
	dom, err := fem.NewDomain(sim)
	if err != nil {
		chk.Panic("cannot build domain:\n%v", err)
	}

	// solve
	err = fem.Solve(dom)
	if err != nil {
		chk.Panic("solution failed:\n%v", err)
	}
	if verbose {
		io.Pf("\nsolution converged. ny=%d nλ=%d\n", dom.Ny, dom.Nlam)
	}

	// contact results
	if verbose && dom.Contact != nil {
		io.Pf("\n%13s%23s%23s%8s\n", "x", "pressure", "gap", "active")
		for _, r := range dom.Contact.Results(dom.Sol) {
			io.Pf("%13.6f%23.15e%23.15e%8v\n", r.X[0], r.Pressure, r.Gap, r.Active)
		}
	}

	// output file
	if writeVtu {
		err = out.WriteVtu(dom, sim.DirOut, fnkey)
		if err != nil {
			chk.Panic("cannot write vtu file:\n%v", err)
		}
		if verbose {
			io.Pf("\nfile <%s/%s.vtu> written\n", sim.DirOut, fnkey)
		}
	}
}
