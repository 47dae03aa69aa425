// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string  `json:"desc"`    // description of simulation
	DirOut  string  `json:"dirout"`  // directory for output; e.g. /tmp/gocontact
	Pstress bool    `json:"pstress"` // plane-stress
	Thick   float64 `json:"thick"`   // out-of-plane thickness; 0 means 1.0
}

// SolverData holds data for the nonlinear (Newton) solver
type SolverData struct {
	NmaxIt  int     `json:"nmaxit"`  // number of max iterations
	ResTol  float64 `json:"restol"`  // absolute tolerance on residual norm
	LSearch bool    `json:"lsearch"` // apply damped (line search) updates
	LsAlpha float64 `json:"lsalpha"` // line search step fraction
	ShowR   bool    `json:"showr"`   // show residual during iterations
}

// Material holds material parameters
type Material struct {
	Name  string     `json:"name"`  // name of material
	Model string     `json:"model"` // name of model; e.g. "lin-elast"
	Prms  dbf.Params `json:"prms"`  // parameters
}

// DirichletBc holds one generalized Dirichlet boundary condition H⋅u = H⋅r
// applied to all vertices on a tagged boundary region
type DirichletBc struct {
	Tag int         `json:"tag"` // tag of boundary region
	H   [][]float64 `json:"H"`   // [nrows][2] selector matrix
	R   []float64   `json:"r"`   // [2] prescribed displacement vector
}

// TractionBc holds a uniform normal traction (pressure when negative) applied
// to a tagged boundary region
type TractionBc struct {
	Tag int     `json:"tag"` // tag of boundary region
	Qn  float64 `json:"qn"`  // traction value normal to boundary
}

// RegionDef defines a boundary region by classifying boundary faces against a
// direction in space
type RegionDef struct {
	Tag int       `json:"tag"` // tag to assign
	Dir []float64 `json:"dir"` // [2] direction vector
	Tol float64   `json:"tol"` // angular tolerance [rad]
}

// Body holds the data of one deformable body: its mesh, material and
// boundary conditions
type Body struct {

	// input data
	Desc      string         `json:"desc"`      // description; e.g. "punch", "foundation"
	Mshfile   string         `json:"mshfile"`   // file path of file with mesh data
	Mat       string         `json:"mat"`       // material name
	Nip       int            `json:"nip"`       // number of integration points; 0 => use default
	Regions   []*RegionDef   `json:"regions"`   // boundary regions classified by direction
	Dirichlet []*DirichletBc `json:"dirichlet"` // generalized Dirichlet conditions
	Tractions []*TractionBc  `json:"tractions"` // normal traction conditions

	// derived
	Msh *Mesh // the mesh
}

// ContactData holds the definition of the contact pairing between two bodies
type ContactData struct {
	SlaveBody  int       `json:"slavebody"`  // index of slave body
	SlaveTag   int       `json:"slavetag"`   // region tag of slave contact boundary
	MasterBody int       `json:"masterbody"` // index of master body
	MasterTag  int       `json:"mastertag"`  // region tag of master contact boundary
	Normal     []float64 `json:"normal"`     // [2] unit outward normal of master surface
	Transform  string    `json:"transform"`  // name of correspondence transform; e.g. "mirror-y"
	Extra      string    `json:"extra"`      // extra transform data in keycode format
	Gamma0     float64   `json:"gamma0"`     // augmentation parameter; 0 => 1/E of slave material
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data         `json:"data"`      // global simulation data
	Materials []*Material  `json:"materials"` // materials
	Bodies    []*Body      `json:"bodies"`    // deformable bodies
	Contact   *ContactData `json:"contact"`   // contact pairing; may be nil
	Solver    SolverData   `json:"solver"`    // nonlinear solver data

	// derived
	DirOut string // directory to save results
	Key    string // simulation key; e.g. mysim01.sim => mysim01
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string, createDirOut bool) (o *Simulation, err error) {

	// read file
	o = new(Simulation)
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q: %v", simfilepath, err)
	}

	// set default values
	o.Solver.SetDefault()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q: %v", simfilepath, err)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	dir = os.ExpandEnv(dir)
	o.Key = io.FnKey(fn)

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gocontact/" + o.Key
	}
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// thickness
	if o.Data.Thick < 1e-14 {
		o.Data.Thick = 1.0
	}

	// check materials
	if len(o.Materials) < 1 {
		return nil, chk.Err("simulation file must define at least one material")
	}
	for _, mat := range o.Materials {
		if mat.Model == "" {
			mat.Model = "lin-elast"
		}
	}

	// for all bodies
	if len(o.Bodies) < 1 {
		return nil, chk.Err("simulation file must define at least one body")
	}
	for i, bdy := range o.Bodies {

		// read mesh
		bdy.Msh, err = ReadMsh(dir, bdy.Mshfile)
		if err != nil {
			return nil, chk.Err("cannot read mesh file of body %d:\n%v", i, err)
		}

		// material must exist
		if o.GetMaterial(bdy.Mat) == nil {
			return nil, chk.Err("cannot find material %q of body %d", bdy.Mat, i)
		}

		// classify boundary regions
		for _, reg := range bdy.Regions {
			err = bdy.Msh.SetRegionByDirection(reg.Tag, reg.Dir, reg.Tol)
			if err != nil {
				return nil, chk.Err("cannot classify region %d of body %d:\n%v", reg.Tag, i, err)
			}
		}

		// check boundary conditions
		for _, dbc := range bdy.Dirichlet {
			err = dbc.Check()
			if err != nil {
				return nil, chk.Err("Dirichlet condition on tag %d of body %d is invalid:\n%v", dbc.Tag, i, err)
			}
			if len(bdy.Msh.RegionFaces(dbc.Tag)) == 0 {
				return nil, chk.Err("Dirichlet condition of body %d refers to empty region %d", i, dbc.Tag)
			}
		}
		for _, tbc := range bdy.Tractions {
			if len(bdy.Msh.RegionFaces(tbc.Tag)) == 0 {
				return nil, chk.Err("traction condition of body %d refers to empty region %d", i, tbc.Tag)
			}
		}
	}

	// contact data
	if o.Contact != nil {
		err = o.check_contact()
		if err != nil {
			return nil, err
		}
	}
	return
}

// GetPrm returns the parameter with given name; nil if not found
func (o *Material) GetPrm(name string) *dbf.P {
	for _, p := range o.Prms {
		if p.N == name {
			return p
		}
	}
	return nil
}

// GetMaterial returns the material with given name; nil if not found
func (o *Simulation) GetMaterial(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Check verifies that one generalized Dirichlet condition is well-posed
func (o *DirichletBc) Check() (err error) {
	if len(o.H) < 1 || len(o.H) > 2 {
		return chk.Err("selector matrix H must have 1 or 2 rows. %d rows given", len(o.H))
	}
	if len(o.R) != 2 {
		return chk.Err("prescribed vector r must have 2 components. %d given", len(o.R))
	}
	for i, row := range o.H {
		if len(row) != 2 {
			return chk.Err("row %d of H must have 2 components. %d given", i, len(row))
		}
		if row[0]*row[0]+row[1]*row[1] < 1e-28 {
			return chk.Err("row %d of H is zero; the condition is ill-posed", i)
		}
	}
	return
}

// check_contact verifies the contact pairing data
func (o *Simulation) check_contact() (err error) {
	c := o.Contact
	nb := len(o.Bodies)
	if c.SlaveBody < 0 || c.SlaveBody >= nb || c.MasterBody < 0 || c.MasterBody >= nb {
		return chk.Err("contact body indices must be within [0,%d]. slave=%d master=%d", nb-1, c.SlaveBody, c.MasterBody)
	}
	if c.SlaveBody == c.MasterBody {
		return chk.Err("contact requires two distinct bodies. %d given twice", c.SlaveBody)
	}
	if len(o.Bodies[c.SlaveBody].Msh.RegionFaces(c.SlaveTag)) == 0 {
		return chk.Err("slave contact region %d is empty", c.SlaveTag)
	}
	if len(o.Bodies[c.MasterBody].Msh.RegionFaces(c.MasterTag)) == 0 {
		return chk.Err("master contact region %d is empty", c.MasterTag)
	}
	if len(c.Normal) != 2 {
		return chk.Err("contact normal must have 2 components. %d given", len(c.Normal))
	}
	if c.Transform == "" {
		return chk.Err("contact requires the name of a correspondence transform")
	}
	if c.Gamma0 < 0 {
		return chk.Err("augmentation parameter must be non-negative. %g given", c.Gamma0)
	}
	return
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.NmaxIt = 100
	o.ResTol = 1e-9
	o.LSearch = false
	o.LsAlpha = 0.8
}
