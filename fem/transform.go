// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Transform defines the fixed correspondence between points on the slave
// contact boundary and points of the master body
type Transform interface {
	Map(y, x []float64) // maps x to y; len(y) == len(x) == 2
}

// NewTransform returns a transform from its registered name
//  extra -- additional data in keycode format; e.g. "!a:0.5"
func NewTransform(name, extra string) (trf Transform, err error) {
	allocator, ok := tallocators[name]
	if !ok {
		return nil, chk.Err("transform %q is not available", name)
	}
	return allocator(extra)
}

// tallocators holds all available transforms; name => allocator
var tallocators = map[string]func(extra string) (Transform, error){}

// MirrorY reflects points about the horizontal line y = A
type MirrorY struct {
	A float64 // y-coordinate of mirror line
}

// Map computes y = Π(x)
func (o *MirrorY) Map(y, x []float64) {
	y[0] = x[0]
	y[1] = 2.0*o.A - x[1]
}

// MirrorX reflects points about the vertical line x = A
type MirrorX struct {
	A float64 // x-coordinate of mirror line
}

// Map computes y = Π(x)
func (o *MirrorX) Map(y, x []float64) {
	y[0] = 2.0*o.A - x[0]
	y[1] = x[1]
}

// Translate shifts points by a constant vector
type Translate struct {
	Dx float64 // x-shift
	Dy float64 // y-shift
}

// Map computes y = Π(x)
func (o *Translate) Map(y, x []float64) {
	y[0] = x[0] + o.Dx
	y[1] = x[1] + o.Dy
}

// register transforms
func init() {
	tallocators["mirror-y"] = func(extra string) (Transform, error) {
		var o MirrorY
		if val, found := io.Keycode(extra, "a"); found {
			o.A = io.Atof(val)
		}
		return &o, nil
	}
	tallocators["mirror-x"] = func(extra string) (Transform, error) {
		var o MirrorX
		if val, found := io.Keycode(extra, "a"); found {
			o.A = io.Atof(val)
		}
		return &o, nil
	}
	tallocators["translate"] = func(extra string) (Transform, error) {
		var o Translate
		if val, found := io.Keycode(extra, "dx"); found {
			o.Dx = io.Atof(val)
		}
		if val, found := io.Keycode(extra, "dy"); found {
			o.Dy = io.Atof(val)
		}
		return &o, nil
	}
}
