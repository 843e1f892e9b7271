// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/la"
)

// Elem defines what element types must implement to be assembled into a
// nonlinear system
type Elem interface {

	// AddToRhs adds the negative of the residual -R to the global vector fb
	AddToRhs(fb []float64, t float64) error

	// AddToKb adds the element Jacobian K to the global matrix Kb
	AddToKb(Kb *la.Triplet, firstIt bool) error
}
