// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

func init() {
	var o Shape
	o.Type = "hex8"
	o.Func = Hex8
	o.BasicType = "hex8"
	o.BasicNverts = 8
	o.Gndim = 3
	o.Nverts = 8
	o.VtkCode = 12
	o.NatCoords = [][]float64{
		{-1, 1, 1, -1, -1, 1, 1, -1},
		{-1, -1, 1, 1, -1, -1, 1, 1},
		{-1, -1, -1, -1, 1, 1, 1, 1},
	}
	o.init_scratchpad()
	factory["hex8"] = &o
}

// Hex8 calculates the shape functions (S) and derivatives of shape functions (dSdR) of hex8
// elements at r natural coordinates
//
//             4 ----------- 7
//           ,'|           ,'|
//         ,'  |         ,'  |
//       ,'    |       ,'    |
//     5 ----------- 6       |
//     |       0 ----|------ 3
//     |     ,'      |     ,'
//     |   ,'        |   ,'
//     | ,'          | ,'
//     1 ----------- 2
func Hex8(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	nat := factory["hex8"].NatCoords
	R, s, t := r[0], r[1], r[2]
	for n := 0; n < 8; n++ {
		r0, s0, t0 := nat[0][n], nat[1][n], nat[2][n]
		S[n] = (1.0 + R*r0) * (1.0 + s*s0) * (1.0 + t*t0) / 8.0
		if derivs {
			dSdR[n][0] = r0 * (1.0 + s*s0) * (1.0 + t*t0) / 8.0
			dSdR[n][1] = s0 * (1.0 + R*r0) * (1.0 + t*t0) / 8.0
			dSdR[n][2] = t0 * (1.0 + R*r0) * (1.0 + s*s0) / 8.0
		}
	}
}
