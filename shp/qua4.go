// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

func init() {
	var o Shape
	o.Type = "qua4"
	o.Func = Qua4
	o.BasicType = "qua4"
	o.BasicNverts = 4
	o.Gndim = 2
	o.Nverts = 4
	o.VtkCode = 9
	o.NatCoords = [][]float64{
		{-1, 1, 1, -1},
		{-1, -1, 1, 1},
	}
	o.init_scratchpad()
	factory["qua4"] = &o
}

// Qua4 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua4
// elements at r natural coordinates
//
//        3 ------- 2
//        |    s    |
//        |    |    |
//        |    +--r |
//        |         |
//        0 ------- 1
func Qua4(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	s := r[1]
	R := r[0]

	S[0] = (1.0 - R) * (1.0 - s) / 4.0
	S[1] = (1.0 + R) * (1.0 - s) / 4.0
	S[2] = (1.0 + R) * (1.0 + s) / 4.0
	S[3] = (1.0 - R) * (1.0 + s) / 4.0

	if !derivs {
		return
	}

	dSdR[0][0] = -(1.0 - s) / 4.0
	dSdR[1][0] = (1.0 - s) / 4.0
	dSdR[2][0] = (1.0 + s) / 4.0
	dSdR[3][0] = -(1.0 + s) / 4.0

	dSdR[0][1] = -(1.0 - R) / 4.0
	dSdR[1][1] = -(1.0 + R) / 4.0
	dSdR[2][1] = (1.0 + R) / 4.0
	dSdR[3][1] = (1.0 - R) / 4.0
}
