// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// FuncData holds function definition
type FuncData struct {
	Name string   `json:"name"` // name of function. ex: zero, load, myfunction1, etc.
	Type string   `json:"type"` // type of function. ex: cte, rmp
	Prms fun.Prms `json:"prms"` // parameters
}

// FuncsData holds all functions' definitions
type FuncsData []*FuncData

// Get returns function by name
//  Note: returns nil if not found
func (o FuncsData) Get(name string) fun.Func {
	if name == "zero" {
		return &fun.Cte{}
	}
	for _, d := range o {
		if d.Name == name {
			f, err := fun.New(d.Type, d.Prms)
			if err != nil {
				chk.Panic("FuncsData.Get: cannot create function named %q:\n%v", name, err)
			}
			return f
		}
	}
	return nil
}

// String returns a table with all functions
func (o FuncsData) String() (l string) {
	for _, d := range o {
		l += io.Sf("%q (%s) %v\n", d.Name, d.Type, d.Prms)
	}
	return
}
