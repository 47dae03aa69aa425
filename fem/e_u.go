// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gocontact/inp"
	"github.com/cpmech/gocontact/msolid"
	"github.com/cpmech/gocontact/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// NaturalBc holds one natural boundary condition: a uniform traction normal
// to one face of this element
type NaturalBc struct {
	IdxFace int     // local index of face
	Qn      float64 // traction value; positive along outward normal
}

// ElemU represents a solid element with displacements u as primary variables
type ElemU struct {

	// basic data
	Cell *inp.Cell   // the cell structure
	X    [][]float64 // matrix of nodal coordinates [ndim][nnode]
	Shp  *shp.Shape  // shape structure
	Bidx int         // index of body owning this element
	Nu   int         // total number of unknowns
	Ndim int         // space dimension

	// options
	Thickness float64 // thickness (for plane-stress)

	// integration points
	IpsElem []shp.Ipoint // integration points of element
	IpsFace []shp.Ipoint // integration points corresponding to faces

	// material model
	Model    msolid.Model // material model
	MdlSmall msolid.Small // model specialisation for small strains

	// internal variables
	States    []*msolid.State // [nip] states
	StatesBkp []*msolid.State // [nip] backup states

	// problem variables
	Umap []int // assembly map (location array/element equations)

	// natural boundary conditions
	NatBcs []*NaturalBc

	// scratchpad. computed @ each ip
	fi []float64   // [nu] internal forces
	K  [][]float64 // [nu][nu] consistent tangent (stiffness) matrix
	B  [][]float64 // [nsig][nu] B matrix
	D  [][]float64 // [nsig][nsig] constitutive consistent tangent matrix

	// strains
	ε  []float64 // total (updated) strains
	Δε []float64 // incremental strains leading to updated strains
}

// NewElemU allocates a new solid element
func NewElemU(cell *inp.Cell, x [][]float64, mdl msolid.Model, nip int, thickness float64, bidx int) (o *ElemU, err error) {

	// basic data
	o = new(ElemU)
	o.Cell = cell
	o.X = x
	o.Shp = cell.Shp
	o.Bidx = bidx
	o.Ndim = len(x)
	o.Nu = o.Ndim * o.Shp.Nverts
	o.Thickness = thickness

	// integration points
	o.IpsElem, err = shp.GetIps(o.Shp.Type, nip)
	if err != nil {
		return nil, chk.Err("cannot allocate integration points of solid element:\n%v", err)
	}
	o.IpsFace, err = shp.GetIps(o.Shp.FaceType, 0)
	if err != nil {
		return nil, chk.Err("cannot allocate face integration points of solid element:\n%v", err)
	}

	// model
	o.Model = mdl
	m, ok := mdl.(msolid.Small)
	if !ok {
		return nil, chk.Err("'u' element works only with small strain models")
	}
	o.MdlSmall = m

	// scratchpad. computed @ each ip
	nsig := 4
	o.fi = make([]float64, o.Nu)
	o.K = utl.Alloc(o.Nu, o.Nu)
	o.B = utl.Alloc(nsig, o.Nu)
	o.D = utl.Alloc(nsig, nsig)

	// strains
	o.ε = make([]float64, nsig)
	o.Δε = make([]float64, nsig)
	return
}

// Id returns the cell Id
func (o *ElemU) Id() int { return o.Cell.Id }

// SetEqs sets equations
func (o *ElemU) SetEqs(eqs [][]int) (err error) {
	o.Umap = make([]int, o.Nu)
	for m := 0; m < o.Shp.Nverts; m++ {
		for i := 0; i < o.Ndim; i++ {
			r := i + m*o.Ndim
			o.Umap[r] = eqs[m][i]
		}
	}
	return
}

// SetIniIvs sets initial states at integration points
func (o *ElemU) SetIniIvs() (err error) {
	nip := len(o.IpsElem)
	o.States = make([]*msolid.State, nip)
	o.StatesBkp = make([]*msolid.State, nip)
	σ := make([]float64, 4)
	for i := 0; i < nip; i++ {
		o.States[i], err = o.Model.InitIntVars(σ)
		if err != nil {
			return
		}
		o.StatesBkp[i] = o.States[i].GetCopy()
	}
	return
}

// AddToRhs adds -R to global residual vector fb
func (o *ElemU) AddToRhs(fb []float64, sol *Solution) (err error) {

	// clear fi vector
	for i := range o.fi {
		o.fi[i] = 0
	}

	// for each integration point
	for idx, ip := range o.IpsElem {

		// interpolation functions and gradients @ ip
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}

		// internal forces: fi += coef * tr(B) * σ
		coef := o.Shp.J * ip[3] * o.Thickness
		o.ipBmatrix()
		σ := o.States[idx].Sig
		for i := 0; i < o.Nu; i++ {
			for k := 0; k < 4; k++ {
				o.fi[i] += coef * o.B[k][i] * σ[k]
			}
		}
	}

	// assemble fb
	for i, I := range o.Umap {
		fb[I] -= o.fi[i]
	}

	// external forces
	return o.add_surfloads_to_rhs(fb, sol)
}

// AddToKb adds element K to global Jacobian matrix Kb
func (o *ElemU) AddToKb(Kb *la.Triplet, sol *Solution, firstIt bool) (err error) {

	// zero K matrix
	for i := 0; i < o.Nu; i++ {
		for j := 0; j < o.Nu; j++ {
			o.K[i][j] = 0
		}
	}

	// for each integration point
	for idx, ip := range o.IpsElem {

		// interpolation functions and gradients @ ip
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}

		// check Jacobian
		if o.Shp.J < 0 {
			return chk.Err("ElemU: eid=%d: Jacobian is negative = %g\n", o.Id(), o.Shp.J)
		}

		// consistent tangent model matrix
		err = o.MdlSmall.CalcD(o.D, o.States[idx], firstIt)
		if err != nil {
			return
		}

		// K += coef * tr(B) * D * B
		coef := o.Shp.J * ip[3] * o.Thickness
		o.ipBmatrix()
		for i := 0; i < o.Nu; i++ {
			for j := 0; j < o.Nu; j++ {
				for k := 0; k < 4; k++ {
					for l := 0; l < 4; l++ {
						o.K[i][j] += coef * o.B[k][i] * o.D[k][l] * o.B[l][j]
					}
				}
			}
		}
	}

	// add K to sparse matrix Kb
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Kb.Put(I, J, o.K[i][j])
		}
	}
	return
}

// Update performs (tangent) update
func (o *ElemU) Update(sol *Solution) (err error) {

	// for each integration point
	for idx, ip := range o.IpsElem {

		// interpolation functions and gradients
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}

		// compute strains: ε = B⋅y and Δε = B⋅Δy
		o.ipBmatrix()
		for i := 0; i < 4; i++ {
			o.ε[i], o.Δε[i] = 0, 0
			for j, J := range o.Umap {
				o.ε[i] += o.B[i][j] * sol.Y[J]
				o.Δε[i] += o.B[i][j] * sol.ΔY[J]
			}
		}

		// call model update => update stresses
		err = o.MdlSmall.Update(o.States[idx], o.ε, o.Δε)
		if err != nil {
			return chk.Err("Update failed (eid=%d, ip=%d)\nΔε=%v\n%v", o.Id(), idx, o.Δε, err)
		}
	}
	return
}

// BackupIvs creates copy of internal variables
func (o *ElemU) BackupIvs() (err error) {
	for i, s := range o.StatesBkp {
		s.Set(o.States[i])
	}
	return
}

// RestoreIvs restores internal variables from copies
func (o *ElemU) RestoreIvs() (err error) {
	for i, s := range o.States {
		s.Set(o.StatesBkp[i])
	}
	return
}

// OutIpsData returns stress data from all integration points for output,
// including the Von Mises equivalent stress "q"
func (o *ElemU) OutIpsData() (data []*OutIpData) {
	for idx, ip := range o.IpsElem {
		s := o.States[idx]
		x := o.Shp.IpRealCoords(o.X, ip)
		vals := map[string]float64{
			"sx":  s.Sig[0],
			"sy":  s.Sig[1],
			"sz":  s.Sig[2],
			"sxy": s.Sig[3] / msolid.SQ2,
			"q":   msolid.Qmises(s.Sig),
		}
		data = append(data, &OutIpData{o.Id(), x, vals})
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// ipBmatrix computes the B matrix (Mandel basis) with the gradients currently
// held in the shape structure scratchpad
func (o *ElemU) ipBmatrix() {
	G := o.Shp.G
	for m := 0; m < o.Shp.Nverts; m++ {
		c := m * o.Ndim
		o.B[0][c], o.B[0][c+1] = G[m][0], 0
		o.B[1][c], o.B[1][c+1] = 0, G[m][1]
		o.B[2][c], o.B[2][c+1] = 0, 0
		o.B[3][c], o.B[3][c+1] = G[m][1]/msolid.SQ2, G[m][0]/msolid.SQ2
	}
}

// add_surfloads_to_rhs adds surface loads to rhs
func (o *ElemU) add_surfloads_to_rhs(fb []float64, sol *Solution) (err error) {
	for _, load := range o.NatBcs {
		for _, ipf := range o.IpsFace {
			err = o.Shp.CalcAtFaceIp(o.X, ipf, load.IdxFace)
			if err != nil {
				return
			}
			coef := ipf[3] * load.Qn * sol.T * o.Thickness
			nvec := o.Shp.Fnvec
			Sf := o.Shp.Sf
			for j, m := range o.Shp.FaceLocalVerts[load.IdxFace] {
				for i := 0; i < o.Ndim; i++ {
					r := o.Umap[i+m*o.Ndim]
					fb[r] += coef * Sf[j] * nvec[i] // +fe
				}
			}
		}
	}
	return
}
