// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

// State holds all continuum mechanics data at one integration point
type State struct {
	Sig []float64 // σ: current Cauchy stress tensor [nsig]
}

// NewState allocates a state structure for small strain analyses
func NewState(nsig int) *State {
	return &State{Sig: make([]float64, nsig)}
}

// Set copies states
//  Note: this and other states must have been pre-allocated with the same sizes
func (o *State) Set(other *State) {
	copy(o.Sig, other.Sig)
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(len(o.Sig))
	other.Set(o)
	return other
}
