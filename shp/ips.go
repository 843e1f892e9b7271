// Copyright 2016 The Porofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Ipoint implements integration point data: natural coordinates and weight
//  Note: [r, s, t, w]
type Ipoint []float64

// integration points for quadrilaterals
var (
	ips_qua_4 []Ipoint // 2 x 2
	ips_qua_9 []Ipoint // 3 x 3
	ips_hex_8 []Ipoint // 2 x 2 x 2
	ips_hex27 []Ipoint // 3 x 3 x 3
)

// GetIps returns a set of integration points
//  geo -- geometry type: "qua" or "hex"
//  nip -- total number of integration points; 0 means default
func GetIps(geo string, nip int) (ips []Ipoint, err error) {
	switch geo {
	case "qua":
		switch nip {
		case 4:
			return ips_qua_4, nil
		case 0, 9:
			return ips_qua_9, nil
		}
	case "hex":
		switch nip {
		case 8:
			return ips_hex_8, nil
		case 0, 27:
			return ips_hex27, nil
		}
	}
	return nil, chk.Err("cannot get integration points for geo=%q with nip=%d", geo, nip)
}

// GetIpsForShape returns a set of integration points suitable for a given shape
func GetIpsForShape(s *Shape, nip int) (ips []Ipoint, err error) {
	if s.Gndim == 3 {
		return GetIps("hex", nip)
	}
	return GetIps("qua", nip)
}

func init() {

	// Gauss-Legendre abscissae and weights
	g2 := 1.0 / math.Sqrt(3.0)
	g3 := math.Sqrt(3.0 / 5.0)
	w3 := []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
	p3 := []float64{-g3, 0, g3}

	// qua: 2 x 2
	for _, s := range []float64{-g2, g2} {
		for _, r := range []float64{-g2, g2} {
			ips_qua_4 = append(ips_qua_4, Ipoint{r, s, 0, 1})
		}
	}

	// qua: 3 x 3
	for j, s := range p3 {
		for i, r := range p3 {
			ips_qua_9 = append(ips_qua_9, Ipoint{r, s, 0, w3[i] * w3[j]})
		}
	}

	// hex: 2 x 2 x 2
	for _, t := range []float64{-g2, g2} {
		for _, s := range []float64{-g2, g2} {
			for _, r := range []float64{-g2, g2} {
				ips_hex_8 = append(ips_hex_8, Ipoint{r, s, t, 1})
			}
		}
	}

	// hex: 3 x 3 x 3
	for k, t := range p3 {
		for j, s := range p3 {
			for i, r := range p3 {
				ips_hex27 = append(ips_hex27, Ipoint{r, s, t, w3[i] * w3[j] * w3[k]})
			}
		}
	}
}
