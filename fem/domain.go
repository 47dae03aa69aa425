// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gocontact/inp"
	"github.com/cpmech/gocontact/msolid"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// BodyDom holds the discretisation of one body: its nodes and solid elements
type BodyDom struct {
	Idx      int           // index of body in simulation
	Bdy      *inp.Body     // input data
	Msh      *inp.Mesh     // mesh
	Mdl      msolid.Model  // material model shared by all elements of this body
	Vid2node []*Node       // [nverts] VertexId => node
	Cid2elem []*ElemU      // [ncells] CellId => element
	Elems    []*ElemU      // all elements of this body
}

// Domain holds the nodes, elements and solution of the whole coupled problem.
// Every solve session owns its Domain; there is no process-wide state
type Domain struct {

	// init: auxiliary variables
	Sim    *inp.Simulation // input data
	Bodies []*BodyDom      // per-body discretisation

	// nodes and elements
	Nodes   []*Node         // all active nodes
	Elems   []Elem          // all elements, including the contact coupler
	Contact *ContactCoupler // contact coupler; nil if no contact

	// constraints
	EssenBcs EssentialBcs // essential bcs (Lagrange multipliers)

	// dimensions
	NnzKb int // number of nonzeros in Kb matrix
	Ny    int // total number of dofs {u, qc}, except λ
	Nlam  int // total number of Lagrange multipliers
	NnzA  int // number of nonzeros in A (constraints) matrix
	Nyb   int // total number of equations: ny + nλ

	// solution and linear system
	Sol *Solution   // solution state
	Kb  *la.Triplet // Jacobian == dRdy
	Fb  []float64   // residual == -fb
	Wb  []float64   // workspace
}

// NewDomain builds a domain from the simulation data: allocates nodes with
// equation numbers, elements, the contact coupler and the constraints
func NewDomain(sim *inp.Simulation) (o *Domain, err error) {

	// basic data
	o = new(Domain)
	o.Sim = sim

	// allocate nodes and displacement equations ----------------------------------------------------
	var eq int
	o.NnzKb = 0
	for idx, bdy := range sim.Bodies {

		// material model
		bd := &BodyDom{Idx: idx, Bdy: bdy, Msh: bdy.Msh}
		mat := sim.GetMaterial(bdy.Mat)
		bd.Mdl, err = msolid.New(mat.Model)
		if err != nil {
			return nil, chk.Err("cannot allocate material model for body %d:\n%v", idx, err)
		}
		err = bd.Mdl.Init(bdy.Msh.Ndim, sim.Data.Pstress, mat.Prms)
		if err != nil {
			return nil, chk.Err("cannot initialise material model for body %d:\n%v", idx, err)
		}

		// nodes with ux and uy
		bd.Vid2node = make([]*Node, len(bdy.Msh.Verts))
		for _, v := range bdy.Msh.Verts {
			nod := NewNode(v, idx)
			eq = nod.AddDofAndEq("ux", eq)
			eq = nod.AddDofAndEq("uy", eq)
			bd.Vid2node[v.Id] = nod
			o.Nodes = append(o.Nodes, nod)
		}
		o.Bodies = append(o.Bodies, bd)
	}

	// multiplier equations on the slave contact boundary -------------------------------------------
	if sim.Contact != nil {
		slave := o.Bodies[sim.Contact.SlaveBody]
		for _, f := range slave.Msh.RegionFaces(sim.Contact.SlaveTag) {
			for _, v := range f.Verts[:2] { // corners only: multiplier basis is one degree below u
				eq = slave.Vid2node[v].AddDofAndEq("qc", eq)
			}
		}
	}
	o.Ny = eq

	// allocate elements ----------------------------------------------------------------------------
	for _, bd := range o.Bodies {
		bd.Cid2elem = make([]*ElemU, len(bd.Msh.Cells))
		for _, cell := range bd.Msh.Cells {

			// new element
			x := bd.Msh.ExtractCellCoords(cell.Id)
			e, err := NewElemU(cell, x, bd.Mdl, bd.Bdy.Nip, sim.Data.Thick, bd.Idx)
			if err != nil {
				return nil, chk.Err("cannot allocate element %d of body %d:\n%v", cell.Id, bd.Idx, err)
			}

			// give equation numbers to new element
			eqs := make([][]int, len(cell.Verts))
			for j, v := range cell.Verts {
				nod := bd.Vid2node[v]
				eqs[j] = []int{nod.GetEq("ux"), nod.GetEq("uy")}
			}
			err = e.SetEqs(eqs)
			if err != nil {
				return nil, err
			}

			// initial states
			err = e.SetIniIvs()
			if err != nil {
				return nil, err
			}
			bd.Cid2elem[cell.Id] = e
			bd.Elems = append(bd.Elems, e)
			o.Elems = append(o.Elems, e)
			o.NnzKb += e.Nu * e.Nu
		}

		// natural boundary conditions: tractions
		for _, tbc := range bd.Bdy.Tractions {
			for _, f := range bd.Msh.RegionFaces(tbc.Tag) {
				e := bd.Cid2elem[f.C.Id]
				e.NatBcs = append(e.NatBcs, &NaturalBc{f.Fid, tbc.Qn})
			}
		}
	}

	// contact coupler ------------------------------------------------------------------------------
	if sim.Contact != nil {
		o.Contact, err = NewContactCoupler(sim.Contact, o.Bodies[sim.Contact.SlaveBody], o.Bodies[sim.Contact.MasterBody], sim.Data.Thick)
		if err != nil {
			return nil, chk.Err("cannot build contact coupler:\n%v", err)
		}
		o.Elems = append(o.Elems, o.Contact)
		o.NnzKb += o.Contact.NnzKb()
	}

	// essential boundary conditions ----------------------------------------------------------------
	o.EssenBcs.Init()
	for _, bd := range o.Bodies {
		for _, dbc := range bd.Bdy.Dirichlet {
			c := []float64{
				dbc.H[0][0]*dbc.R[0] + dbc.H[0][1]*dbc.R[1],
			}
			if len(dbc.H) > 1 {
				c = append(c, dbc.H[1][0]*dbc.R[0]+dbc.H[1][1]*dbc.R[1])
			}
			for _, v := range bd.Msh.RegionVerts(dbc.Tag) {
				for k, h := range dbc.H {
					err = o.EssenBcs.SetRow("H", bd.Vid2node[v], h, c[k])
					if err != nil {
						return nil, chk.Err("cannot set Dirichlet condition on tag %d of body %d:\n%v", dbc.Tag, bd.Idx, err)
					}
				}
			}
		}
	}

	// size of arrays
	o.Nlam, o.NnzA = o.EssenBcs.Build(o.Ny)
	o.Nyb = o.Ny + o.Nlam

	// solution structure and linear system
	o.Sol = new(Solution)
	o.Sol.T = 1
	o.Sol.Y = make([]float64, o.Ny)
	o.Sol.ΔY = make([]float64, o.Ny)
	o.Sol.L = make([]float64, o.Nlam)
	o.Kb = new(la.Triplet)
	o.Fb = make([]float64, o.Nyb)
	o.Wb = make([]float64, o.Nyb)
	o.Kb.Init(o.Nyb, o.Nyb, o.NnzKb+2*o.NnzA)
	return
}

// NodalDisp returns the displacements (ux, uy) of one vertex of one body
func (o *Domain) NodalDisp(bidx, vid int) (ux, uy float64) {
	nod := o.Bodies[bidx].Vid2node[vid]
	return o.Sol.Y[nod.GetEq("ux")], o.Sol.Y[nod.GetEq("uy")]
}

// OutIpsData collects stress output data from all solid elements
func (o *Domain) OutIpsData() (data []*OutIpData) {
	for _, bd := range o.Bodies {
		for _, e := range bd.Elems {
			data = append(data, e.OutIpsData()...)
		}
	}
	return
}
