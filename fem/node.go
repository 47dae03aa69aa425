// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gocontact/inp"

	"github.com/cpmech/gosl/io"
)

// Dof holds information about one degree-of-freedom == solution variable
type Dof struct {
	Key string // primary variable key; e.g. "ux", "uy" or "qc"
	Eq  int    // equation number in the global system
}

// String returns the string representation of one Dof
func (o *Dof) String() string {
	return io.Sf("{%q eq=%d}", o.Key, o.Eq)
}

// Node holds one vertex of one body and its Dofs
type Node struct {
	Vert *inp.Vert // pointer to vertex data
	Bidx int       // index of body owning this node
	Dofs []*Dof    // degrees-of-freedom == solution variables
}

// NewNode allocates a new node
func NewNode(v *inp.Vert, bidx int) *Node {
	return &Node{Vert: v, Bidx: bidx}
}

// AddDofAndEq adds a new Dof if it does not exist yet and returns the
// next equation number
func (o *Node) AddDofAndEq(key string, eq int) int {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return eq
		}
	}
	o.Dofs = append(o.Dofs, &Dof{key, eq})
	return eq + 1
}

// GetDof returns the Dof with given key; nil if not found
func (o *Node) GetDof(key string) *Dof {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return dof
		}
	}
	return nil
}

// GetEq returns the equation number of the Dof with given key; -1 if not found
func (o *Node) GetEq(key string) int {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return dof.Eq
		}
	}
	return -1
}

// String returns the string representation of one node
func (o *Node) String() string {
	return io.Sf("{vid=%d bidx=%d dofs=%v}", o.Vert.Id, o.Bidx, o.Dofs)
}
