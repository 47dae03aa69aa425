// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// shape functions of line and quadrilateral cells
//
//   lin2:  0-----1       lin3:  0--2--1
//
//   qua4:  3-----2       qua8:  3--6--2      qua9:  3--6--2
//          |     |              |     |             |     |
//          |     |              7     5             7  8  5
//          |     |              |     |             |     |
//          0-----1              0--4--1             0--4--1

func init() {

	// lin2
	register(&Shape{
		Type:    "lin2",
		Gndim:   1,
		Nverts:  2,
		VtkCode: 3,
		NatCoords: [][]float64{
			{-1, 1},
		},
		Func: func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
			S[0] = 0.5 * (1.0 - r[0])
			S[1] = 0.5 * (1.0 + r[0])
			if !derivs {
				return
			}
			dSdR[0][0] = -0.5
			dSdR[1][0] = 0.5
		},
	})

	// lin3
	register(&Shape{
		Type:    "lin3",
		Gndim:   1,
		Nverts:  3,
		VtkCode: 21,
		NatCoords: [][]float64{
			{-1, 1, 0},
		},
		Func: func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
			t := r[0]
			S[0] = 0.5 * t * (t - 1.0)
			S[1] = 0.5 * t * (t + 1.0)
			S[2] = 1.0 - t*t
			if !derivs {
				return
			}
			dSdR[0][0] = t - 0.5
			dSdR[1][0] = t + 0.5
			dSdR[2][0] = -2.0 * t
		},
	})

	// qua4
	register(&Shape{
		Type:       "qua4",
		Gndim:      2,
		Nverts:     4,
		VtkCode:    9,
		FaceType:   "lin2",
		FaceNverts: 2,
		FaceLocalVerts: [][]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
		},
		NatCoords: [][]float64{
			{-1, 1, 1, -1},
			{-1, -1, 1, 1},
		},
		Func:     qua4_func,
		FaceFunc: face_func("lin2"),
	})

	// qua8
	register(&Shape{
		Type:       "qua8",
		Gndim:      2,
		Nverts:     8,
		VtkCode:    23,
		FaceType:   "lin3",
		FaceNverts: 3,
		FaceLocalVerts: [][]int{
			{0, 1, 4}, {1, 2, 5}, {2, 3, 6}, {3, 0, 7},
		},
		NatCoords: [][]float64{
			{-1, 1, 1, -1, 0, 1, 0, -1},
			{-1, -1, 1, 1, -1, 0, 1, 0},
		},
		Func:     qua8_func,
		FaceFunc: face_func("lin3"),
	})

	// qua9
	register(&Shape{
		Type:       "qua9",
		Gndim:      2,
		Nverts:     9,
		VtkCode:    28,
		FaceType:   "lin3",
		FaceNverts: 3,
		FaceLocalVerts: [][]int{
			{0, 1, 4}, {1, 2, 5}, {2, 3, 6}, {3, 0, 7},
		},
		NatCoords: [][]float64{
			{-1, 1, 1, -1, 0, 1, 0, -1, 0},
			{-1, -1, 1, 1, -1, 0, 1, 0, 0},
		},
		Func:     qua9_func,
		FaceFunc: face_func("lin3"),
	})
}

// qua4_func computes bilinear shape functions
func qua4_func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	s, t := r[0], r[1]
	S[0] = 0.25 * (1.0 - s) * (1.0 - t)
	S[1] = 0.25 * (1.0 + s) * (1.0 - t)
	S[2] = 0.25 * (1.0 + s) * (1.0 + t)
	S[3] = 0.25 * (1.0 - s) * (1.0 + t)
	if !derivs {
		return
	}
	dSdR[0][0] = -0.25 * (1.0 - t)
	dSdR[0][1] = -0.25 * (1.0 - s)
	dSdR[1][0] = 0.25 * (1.0 - t)
	dSdR[1][1] = -0.25 * (1.0 + s)
	dSdR[2][0] = 0.25 * (1.0 + t)
	dSdR[2][1] = 0.25 * (1.0 + s)
	dSdR[3][0] = -0.25 * (1.0 + t)
	dSdR[3][1] = 0.25 * (1.0 - s)
}

// qua8_func computes serendipity quadratic shape functions
func qua8_func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	s, t := r[0], r[1]
	S[0] = 0.25 * (1.0 - s) * (1.0 - t) * (-s - t - 1.0)
	S[1] = 0.25 * (1.0 + s) * (1.0 - t) * (s - t - 1.0)
	S[2] = 0.25 * (1.0 + s) * (1.0 + t) * (s + t - 1.0)
	S[3] = 0.25 * (1.0 - s) * (1.0 + t) * (-s + t - 1.0)
	S[4] = 0.5 * (1.0 - s*s) * (1.0 - t)
	S[5] = 0.5 * (1.0 + s) * (1.0 - t*t)
	S[6] = 0.5 * (1.0 - s*s) * (1.0 + t)
	S[7] = 0.5 * (1.0 - s) * (1.0 - t*t)
	if !derivs {
		return
	}
	dSdR[0][0] = -0.25 * (1.0 - t) * (-2.0*s - t)
	dSdR[0][1] = -0.25 * (1.0 - s) * (-s - 2.0*t)
	dSdR[1][0] = 0.25 * (1.0 - t) * (2.0*s - t)
	dSdR[1][1] = -0.25 * (1.0 + s) * (s - 2.0*t)
	dSdR[2][0] = 0.25 * (1.0 + t) * (2.0*s + t)
	dSdR[2][1] = 0.25 * (1.0 + s) * (s + 2.0*t)
	dSdR[3][0] = -0.25 * (1.0 + t) * (-2.0*s + t)
	dSdR[3][1] = 0.25 * (1.0 - s) * (-s + 2.0*t)
	dSdR[4][0] = -s * (1.0 - t)
	dSdR[4][1] = -0.5 * (1.0 - s*s)
	dSdR[5][0] = 0.5 * (1.0 - t*t)
	dSdR[5][1] = -t * (1.0 + s)
	dSdR[6][0] = -s * (1.0 + t)
	dSdR[6][1] = 0.5 * (1.0 - s*s)
	dSdR[7][0] = -0.5 * (1.0 - t*t)
	dSdR[7][1] = -t * (1.0 - s)
}

// qua9_func computes Lagrangean biquadratic shape functions
func qua9_func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	s, t := r[0], r[1]
	l0 := func(u float64) float64 { return 0.5 * u * (u - 1.0) }
	l1 := func(u float64) float64 { return 0.5 * u * (u + 1.0) }
	l2 := func(u float64) float64 { return 1.0 - u*u }
	S[0] = l0(s) * l0(t)
	S[1] = l1(s) * l0(t)
	S[2] = l1(s) * l1(t)
	S[3] = l0(s) * l1(t)
	S[4] = l2(s) * l0(t)
	S[5] = l1(s) * l2(t)
	S[6] = l2(s) * l1(t)
	S[7] = l0(s) * l2(t)
	S[8] = l2(s) * l2(t)
	if !derivs {
		return
	}
	d0 := func(u float64) float64 { return u - 0.5 }
	d1 := func(u float64) float64 { return u + 0.5 }
	d2 := func(u float64) float64 { return -2.0 * u }
	dSdR[0][0] = d0(s) * l0(t)
	dSdR[0][1] = l0(s) * d0(t)
	dSdR[1][0] = d1(s) * l0(t)
	dSdR[1][1] = l1(s) * d0(t)
	dSdR[2][0] = d1(s) * l1(t)
	dSdR[2][1] = l1(s) * d1(t)
	dSdR[3][0] = d0(s) * l1(t)
	dSdR[3][1] = l0(s) * d1(t)
	dSdR[4][0] = d2(s) * l0(t)
	dSdR[4][1] = l2(s) * d0(t)
	dSdR[5][0] = d1(s) * l2(t)
	dSdR[5][1] = l1(s) * d2(t)
	dSdR[6][0] = d2(s) * l1(t)
	dSdR[6][1] = l2(s) * d1(t)
	dSdR[7][0] = d0(s) * l2(t)
	dSdR[7][1] = l0(s) * d2(t)
	dSdR[8][0] = d2(s) * l2(t)
	dSdR[8][1] = l2(s) * d2(t)
}

// face_func returns the shape callback of the face geometry
func face_func(faceType string) ShpFunc {
	switch faceType {
	case "lin2":
		return func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
			S[0] = 0.5 * (1.0 - r[0])
			S[1] = 0.5 * (1.0 + r[0])
			if !derivs {
				return
			}
			dSdR[0][0] = -0.5
			dSdR[1][0] = 0.5
		}
	case "lin3":
		return func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
			t := r[0]
			S[0] = 0.5 * t * (t - 1.0)
			S[1] = 0.5 * t * (t + 1.0)
			S[2] = 1.0 - t*t
			if !derivs {
				return
			}
			dSdR[0][0] = t - 0.5
			dSdR[1][0] = t + 0.5
			dSdR[2][0] = -2.0 * t
		}
	}
	return nil
}
