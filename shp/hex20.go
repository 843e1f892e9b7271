// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

func init() {
	var o Shape
	o.Type = "hex20"
	o.Func = Hex20
	o.BasicType = "hex8"
	o.BasicNverts = 8
	o.Gndim = 3
	o.Nverts = 20
	o.VtkCode = 25
	o.NatCoords = [][]float64{
		{-1, 1, 1, -1, -1, 1, 1, -1, 0, 1, 0, -1, 0, 1, 0, -1, -1, 1, 1, -1},
		{-1, -1, 1, 1, -1, -1, 1, 1, -1, 0, 1, 0, -1, 0, 1, 0, -1, -1, 1, 1},
		{-1, -1, -1, -1, 1, 1, 1, 1, -1, -1, -1, -1, 1, 1, 1, 1, 0, 0, 0, 0},
	}
	o.init_scratchpad()
	factory["hex20"] = &o
}

// Hex20 calculates the shape functions (S) and derivatives of shape functions (dSdR) of hex20
// (serendipity) elements at r natural coordinates
//
//              4 ----14----- 7
//            ,'|           ,'|
//          12  |         15  |
//        ,'    16      ,'    19
//      5 ----13----- 6       |
//      |       0 ----|-10--- 3
//      17    ,'      18    ,'
//      |   8         |   11
//      | ,'          | ,'
//      1 -----9----- 2
func Hex20(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	nat := factory["hex20"].NatCoords
	R, s, t := r[0], r[1], r[2]
	for n := 0; n < 20; n++ {
		r0, s0, t0 := nat[0][n], nat[1][n], nat[2][n]
		switch {
		case n < 8: // corner nodes
			S[n] = (1.0 + R*r0) * (1.0 + s*s0) * (1.0 + t*t0) * (R*r0 + s*s0 + t*t0 - 2.0) / 8.0
			if derivs {
				dSdR[n][0] = r0 * (1.0 + s*s0) * (1.0 + t*t0) * (2.0*R*r0 + s*s0 + t*t0 - 1.0) / 8.0
				dSdR[n][1] = s0 * (1.0 + R*r0) * (1.0 + t*t0) * (2.0*s*s0 + R*r0 + t*t0 - 1.0) / 8.0
				dSdR[n][2] = t0 * (1.0 + R*r0) * (1.0 + s*s0) * (2.0*t*t0 + R*r0 + s*s0 - 1.0) / 8.0
			}
		case r0 == 0: // mid-edge nodes along r
			S[n] = (1.0 - R*R) * (1.0 + s*s0) * (1.0 + t*t0) / 4.0
			if derivs {
				dSdR[n][0] = -2.0 * R * (1.0 + s*s0) * (1.0 + t*t0) / 4.0
				dSdR[n][1] = s0 * (1.0 - R*R) * (1.0 + t*t0) / 4.0
				dSdR[n][2] = t0 * (1.0 - R*R) * (1.0 + s*s0) / 4.0
			}
		case s0 == 0: // mid-edge nodes along s
			S[n] = (1.0 + R*r0) * (1.0 - s*s) * (1.0 + t*t0) / 4.0
			if derivs {
				dSdR[n][0] = r0 * (1.0 - s*s) * (1.0 + t*t0) / 4.0
				dSdR[n][1] = -2.0 * s * (1.0 + R*r0) * (1.0 + t*t0) / 4.0
				dSdR[n][2] = t0 * (1.0 + R*r0) * (1.0 - s*s) / 4.0
			}
		default: // mid-edge nodes along t
			S[n] = (1.0 + R*r0) * (1.0 + s*s0) * (1.0 - t*t) / 4.0
			if derivs {
				dSdR[n][0] = r0 * (1.0 + s*s0) * (1.0 - t*t) / 4.0
				dSdR[n][1] = s0 * (1.0 + R*r0) * (1.0 - t*t) / 4.0
				dSdR[n][2] = -2.0 * t * (1.0 + R*r0) * (1.0 + s*s0) / 4.0
			}
		}
	}
}
