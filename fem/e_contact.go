// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gocontact/inp"
	"github.com/cpmech/gocontact/msolid"
	"github.com/cpmech/gocontact/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// ContactPoint holds the fixed correspondence data of one integration point
// on one slave contact face. The pairing with the master body is established
// once, on the reference (undeformed) geometry.
type ContactPoint struct {
	Ipf  shp.Ipoint // integration point of face; weight in [3]
	Sf   []float64  // slave face shape values @ ip [faceNverts]
	Sfc  []float64  // multiplier shape values (corner interpolation) @ ip [2]
	Jf   float64    // norm of face Jacobian vector @ ip
	Xs   []float64  // reference coordinates of slave point
	Xm   []float64  // Π(Xs): mapped point within master body
	Gap0 float64    // (Xs − Π(Xs))・n : geometric part of normal gap
	Me   *ElemU     // master element containing Xm
	S2   []float64  // master cell shape values @ Xm [masterNverts]
}

// ContactFace holds data of one slave boundary face under contact
type ContactFace struct {
	F    *inp.BryFace    // the boundary face
	E    *ElemU          // slave element owning the face
	Qmap []int           // [2] equations of multiplier dofs @ face corners
	HT   float64         // diameter of slave cell: element size of augmentation
	Pts  []*ContactPoint // integration points
}

// ContactResult holds post-solve values of one contact integration point
type ContactResult struct {
	X        []float64 // reference coordinates of slave point
	Pressure float64   // contact pressure; non-negative in compression
	Gap      float64   // normal gap; negative means separation
	Active   bool      // augmented multiplier indicates contact
}

// ContactCoupler couples the displacements of the two bodies and the contact
// multiplier field through the augmented-Lagrangian terms integrated over the
// slave contact boundary:
//
//    Ru1[m,i] =  ∫ Sf[m]・λ・n[i]
//    Ru2[n,i] = -∫ S2[n]・λ・n[i]
//    Rλ[c]    = -∫ γ0・hT・(λ + negpart(λ + g/(γ0・hT)))・Sfc[c]
//
//  with g = (u1 − u2∘Π + X − Π(X))・n. The multiplier is negative in
//  compression and the gap is positive in separation; a point is in contact
//  iff the augmented multiplier is strictly negative. At the kink the
//  inactive branch is taken.
type ContactCoupler struct {

	// data
	Slave     *BodyDom       // slave body
	Master    *BodyDom       // master body
	Trf       Transform      // fixed correspondence transform Π
	Nvec      []float64      // [2] unit outward normal of master contact surface
	Gamma0    float64        // augmentation parameter; e.g. 1/E
	Thickness float64        // out-of-plane thickness
	Faces     []*ContactFace // slave faces
}

// NewContactCoupler builds the coupler: locates slave faces, multiplier
// equations and the fixed master correspondence of every integration point
func NewContactCoupler(cd *inp.ContactData, slave, master *BodyDom, thickness float64) (o *ContactCoupler, err error) {

	// basic data
	o = new(ContactCoupler)
	o.Slave = slave
	o.Master = master
	o.Thickness = thickness

	// normalize master normal
	n := cd.Normal
	nn := math.Sqrt(n[0]*n[0] + n[1]*n[1])
	if nn < 1e-14 {
		return nil, chk.Err("contact normal must be non-zero. n=%v", n)
	}
	o.Nvec = []float64{n[0] / nn, n[1] / nn}

	// transform
	o.Trf, err = NewTransform(cd.Transform, cd.Extra)
	if err != nil {
		return nil, err
	}

	// augmentation parameter; default is the inverse of the slave stiffness
	o.Gamma0 = cd.Gamma0
	if o.Gamma0 < 1e-14 {
		mdl, ok := slave.Mdl.(*msolid.LinElast)
		if !ok {
			return nil, chk.Err("gamma0 was not given and the slave material cannot provide a default")
		}
		o.Gamma0 = 1.0 / mdl.E
	}

	// for each slave face
	r := make([]float64, 3)
	for _, f := range slave.Msh.RegionFaces(cd.SlaveTag) {

		// slave element and multiplier equations
		e := slave.Cid2elem[f.C.Id]
		cf := &ContactFace{F: f, E: e}
		cf.HT = f.C.Shp.Diameter(e.X)
		for _, v := range f.Verts[:2] {
			eq := slave.Vid2node[v].GetEq("qc")
			if eq < 0 {
				return nil, chk.Err("vertex %d of slave contact face has no multiplier dof", v)
			}
			cf.Qmap = append(cf.Qmap, eq)
		}

		// integration points of face
		ips, err := shp.GetIps(f.C.Shp.FaceType, 0)
		if err != nil {
			return nil, err
		}
		for _, ipf := range ips {

			// slave face data
			pt := &ContactPoint{Ipf: ipf}
			err = f.C.Shp.CalcAtFaceIp(e.X, ipf, f.Fid)
			if err != nil {
				return nil, err
			}
			pt.Sf = make([]float64, f.C.Shp.FaceNverts)
			copy(pt.Sf, f.C.Shp.Sf)
			fnv := f.C.Shp.Fnvec
			pt.Jf = math.Sqrt(fnv[0]*fnv[0] + fnv[1]*fnv[1])
			pt.Sfc = []float64{0.5 * (1.0 - ipf[0]), 0.5 * (1.0 + ipf[0])}

			// fixed correspondence
			pt.Xs = f.C.Shp.FaceIpRealCoords(e.X, ipf, f.Fid)
			pt.Xm = make([]float64, 2)
			o.Trf.Map(pt.Xm, pt.Xs)
			pt.Gap0 = (pt.Xs[0]-pt.Xm[0])*o.Nvec[0] + (pt.Xs[1]-pt.Xm[1])*o.Nvec[1]

			// locate master element containing the mapped point
			for _, me := range master.Elems {
				if me.Shp.InvMap(r, pt.Xm, me.X) != nil {
					continue
				}
				if !me.Shp.Contains(r, 1e-7) {
					continue
				}
				me.Shp.Func(me.Shp.S, me.Shp.DSdR, r, false)
				pt.Me = me
				pt.S2 = make([]float64, me.Shp.Nverts)
				copy(pt.S2, me.Shp.S)
				break
			}
			if pt.Me == nil {
				return nil, chk.Err("transform maps slave point %v to %v which lies outside the master body", pt.Xs, pt.Xm)
			}
			cf.Pts = append(cf.Pts, pt)
		}
		o.Faces = append(o.Faces, cf)
	}
	if len(o.Faces) == 0 {
		return nil, chk.Err("contact region has no slave faces")
	}
	return
}

// Id returns a pseudo cell Id since the coupler does not belong to a mesh
func (o *ContactCoupler) Id() int { return -1 }

// NnzKb returns an estimate of the number of non-zeros this coupler adds to Kb
func (o *ContactCoupler) NnzKb() (nnz int) {
	for _, cf := range o.Faces {
		fn := cf.E.Shp.FaceNverts
		for _, pt := range cf.Pts {
			mn := pt.Me.Shp.Nverts
			nnz += 8*(fn+mn) + 4
		}
	}
	return
}

// AddToRhs adds -R to global residual vector fb
func (o *ContactCoupler) AddToRhs(fb []float64, sol *Solution) (err error) {
	for _, cf := range o.Faces {
		γh := o.Gamma0 * cf.HT
		lverts := cf.E.Shp.FaceLocalVerts[cf.F.Fid]
		for _, pt := range cf.Pts {

			// variables @ ip
			coef := pt.Ipf[3] * pt.Jf * o.Thickness
			λ, g := o.ipvars(cf, pt, sol)
			λaug := λ + g/γh

			// displacement rows: ±coef・S・λ・n
			for j, m := range lverts {
				for i := 0; i < 2; i++ {
					r := cf.E.Umap[i+m*2]
					fb[r] -= coef * pt.Sf[j] * λ * o.Nvec[i]
				}
			}
			for n := 0; n < pt.Me.Shp.Nverts; n++ {
				for i := 0; i < 2; i++ {
					r := pt.Me.Umap[i+n*2]
					fb[r] += coef * pt.S2[n] * λ * o.Nvec[i]
				}
			}

			// multiplier rows
			rq := γh * (λ + negpart(λaug))
			for c, q := range cf.Qmap {
				fb[q] += coef * rq * pt.Sfc[c]
			}
		}
	}
	return
}

// AddToKb adds the coupling blocks to global Jacobian matrix Kb
func (o *ContactCoupler) AddToKb(Kb *la.Triplet, sol *Solution, firstIt bool) (err error) {
	for _, cf := range o.Faces {
		γh := o.Gamma0 * cf.HT
		lverts := cf.E.Shp.FaceLocalVerts[cf.F.Fid]
		for _, pt := range cf.Pts {

			// variables @ ip; the active branch is selected strictly so that
			// the kink falls on the inactive side
			coef := pt.Ipf[3] * pt.Jf * o.Thickness
			λ, g := o.ipvars(cf, pt, sol)
			active := λ+g/γh < 0

			// displacement-multiplier blocks. zeros are put on the switched-off
			// branch to keep the non-zero pattern of Kb constant between iterations
			for c, q := range cf.Qmap {
				for j, m := range lverts {
					for i := 0; i < 2; i++ {
						r := cf.E.Umap[i+m*2]
						Kb.Put(r, q, coef*pt.Sf[j]*o.Nvec[i]*pt.Sfc[c])
						v := 0.0
						if active {
							v = coef * pt.Sfc[c] * pt.Sf[j] * o.Nvec[i]
						}
						Kb.Put(q, r, v)
					}
				}
				for n := 0; n < pt.Me.Shp.Nverts; n++ {
					for i := 0; i < 2; i++ {
						r := pt.Me.Umap[i+n*2]
						Kb.Put(r, q, -coef*pt.S2[n]*o.Nvec[i]*pt.Sfc[c])
						v := 0.0
						if active {
							v = -coef * pt.Sfc[c] * pt.S2[n] * o.Nvec[i]
						}
						Kb.Put(q, r, v)
					}
				}
			}

			// multiplier-multiplier block
			for a, qa := range cf.Qmap {
				for b, qb := range cf.Qmap {
					v := 0.0
					if !active {
						v = -coef * γh * pt.Sfc[a] * pt.Sfc[b]
					}
					Kb.Put(qa, qb, v)
				}
			}
		}
	}
	return
}

// Update performs (tangent) update; the coupler has no internal variables
func (o *ContactCoupler) Update(sol *Solution) (err error) {
	return
}

// Results returns contact pressure and gap at all integration points, with
// outward-facing signs: pressure is non-negative in compression and gap is
// negative in separation
func (o *ContactCoupler) Results(sol *Solution) (res []*ContactResult) {
	for _, cf := range o.Faces {
		γh := o.Gamma0 * cf.HT
		for _, pt := range cf.Pts {
			λ, g := o.ipvars(cf, pt, sol)
			res = append(res, &ContactResult{
				X:        pt.Xs,
				Pressure: -λ,
				Gap:      -g,
				Active:   λ+g/γh < 0,
			})
		}
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// ipvars computes the multiplier λ and the normal gap g at one contact point
func (o *ContactCoupler) ipvars(cf *ContactFace, pt *ContactPoint, sol *Solution) (λ, g float64) {

	// multiplier
	for c, q := range cf.Qmap {
		λ += pt.Sfc[c] * sol.Y[q]
	}

	// gap: g = (u1 − u2∘Π)・n + (X − Π(X))・n
	g = pt.Gap0
	lverts := cf.E.Shp.FaceLocalVerts[cf.F.Fid]
	for i := 0; i < 2; i++ {
		var u1, u2 float64
		for j, m := range lverts {
			u1 += pt.Sf[j] * sol.Y[cf.E.Umap[i+m*2]]
		}
		for n := 0; n < pt.Me.Shp.Nverts; n++ {
			u2 += pt.S2[n] * sol.Y[pt.Me.Umap[i+n*2]]
		}
		g += (u1 - u2) * o.Nvec[i]
	}
	return
}

// negpart returns the negative part of x: max(−x, 0)
func negpart(x float64) float64 {
	if x < 0 {
		return -x
	}
	return 0
}
