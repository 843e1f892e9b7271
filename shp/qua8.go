// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

func init() {
	var o Shape
	o.Type = "qua8"
	o.Func = Qua8
	o.BasicType = "qua4"
	o.BasicNverts = 4
	o.Gndim = 2
	o.Nverts = 8
	o.VtkCode = 23
	o.NatCoords = [][]float64{
		{-1, 1, 1, -1, 0, 1, 0, -1},
		{-1, -1, 1, 1, -1, 0, 1, 0},
	}
	o.init_scratchpad()
	factory["qua8"] = &o
}

// Qua8 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua8
// (serendipity) elements at r natural coordinates
//
//        3 --- 6 --- 2
//        |     s     |
//        |     |     |
//        7     +--r  5
//        |           |
//        |           |
//        0 --- 4 --- 1
func Qua8(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	R, s := r[0], r[1]

	S[0] = (1.0 - R) * (1.0 - s) * (-R - s - 1.0) / 4.0
	S[1] = (1.0 + R) * (1.0 - s) * (R - s - 1.0) / 4.0
	S[2] = (1.0 + R) * (1.0 + s) * (R + s - 1.0) / 4.0
	S[3] = (1.0 - R) * (1.0 + s) * (-R + s - 1.0) / 4.0
	S[4] = (1.0 - R*R) * (1.0 - s) / 2.0
	S[5] = (1.0 + R) * (1.0 - s*s) / 2.0
	S[6] = (1.0 - R*R) * (1.0 + s) / 2.0
	S[7] = (1.0 - R) * (1.0 - s*s) / 2.0

	if !derivs {
		return
	}

	dSdR[0][0] = (1.0 - s) * (2.0*R + s) / 4.0
	dSdR[1][0] = (1.0 - s) * (2.0*R - s) / 4.0
	dSdR[2][0] = (1.0 + s) * (2.0*R + s) / 4.0
	dSdR[3][0] = (1.0 + s) * (2.0*R - s) / 4.0
	dSdR[4][0] = -R * (1.0 - s)
	dSdR[5][0] = (1.0 - s*s) / 2.0
	dSdR[6][0] = -R * (1.0 + s)
	dSdR[7][0] = -(1.0 - s*s) / 2.0

	dSdR[0][1] = (1.0 - R) * (R + 2.0*s) / 4.0
	dSdR[1][1] = (1.0 + R) * (2.0*s - R) / 4.0
	dSdR[2][1] = (1.0 + R) * (2.0*s + R) / 4.0
	dSdR[3][1] = (1.0 - R) * (2.0*s - R) / 4.0
	dSdR[4][1] = -(1.0 - R*R) / 2.0
	dSdR[5][1] = -s * (1.0 + R)
	dSdR[6][1] = (1.0 - R*R) / 2.0
	dSdR[7][1] = -s * (1.0 - R)
}
