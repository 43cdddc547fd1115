/*
 * diff.go, part of gocube.
 *
 * Copyright 2026 Raul Mera Adasme <raul_dot_mera_changeforat_usach_dot_cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License  as published by
 * the Free Software Foundation; either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 */

package cube

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

//sameShape returns nil if a and b have the same number of values and the
//same line wrapping in their data regions, an error describing the first
//difference otherwise.
func sameShape(a, b *Grid) error {
	if len(a.data) != len(b.data) {
		return fmt.Errorf("%s: %d values vs %d", ShapeMismatch, len(a.data), len(b.data))
	}
	if len(a.layout) != len(b.layout) {
		return fmt.Errorf("%s: %d data lines vs %d", ShapeMismatch, len(a.layout), len(b.layout))
	}
	for i, v := range a.layout {
		if v != b.layout[i] {
			return fmt.Errorf("%s: data line %d has %d values vs %d", ShapeMismatch, i+1, v, b.layout[i])
		}
	}
	return nil
}

//Diff returns a grid with the element-wise difference b minus a, carrying
//the header, metadata and line wrapping of a. The usual use is for a and b
//to be the same property of a system in 2 different states (say, electron
//densities before and after excitation), so a is the reference the change is
//measured against. The grids must match value for value: mismatched value
//counts or line wrapping are an error, silently misaligned output is never
//produced.
func Diff(a, b *Grid) (*Grid, error) {
	if a == nil || b == nil {
		return nil, Error{"given nil grid", "", []string{"Diff"}, true}
	}
	if err := sameShape(a, b); err != nil {
		return nil, Error{err.Error(), a.filename, []string{"Diff"}, true}
	}
	d := a.clone()
	d.filename = ""
	floats.SubTo(d.data, b.data, a.data)
	return d, nil
}

//Separate splits the field into its positive-only and negative-only parts:
//pos keeps every value greater than zero, with zeros elsewhere, and neg
//keeps every value smaller than zero. Adding the 2 returned fields
//element-wise reproduces the receiver. Both carry the receiver's header
//and wrapping.
func (G *Grid) Separate() (pos, neg *Grid) {
	pos = G.clone()
	neg = G.clone()
	pos.filename = ""
	neg.filename = ""
	for i, v := range G.data {
		if v > 0 {
			neg.data[i] = 0
		} else if v < 0 {
			pos.data[i] = 0
		} else {
			pos.data[i] = 0
			neg.data[i] = 0
		}
	}
	return pos, neg
}

//Add adds the field b to the receiver, element-wise. Panics if the shapes
//don't match, as this, unlike differing files given to Diff, is a
//programming error.
func (G *Grid) Add(b *Grid) {
	if err := sameShape(G, b); err != nil {
		panic("goCube/cube.Add: " + err.Error())
	}
	floats.Add(G.data, b.data)
}

//Sub subtracts the field b from the receiver, element-wise. Panics if the
//shapes don't match.
func (G *Grid) Sub(b *Grid) {
	if err := sameShape(G, b); err != nil {
		panic("goCube/cube.Sub: " + err.Error())
	}
	floats.Sub(G.data, b.data)
}

//Scale multiplies every value of the field by f.
func (G *Grid) Scale(f float64) {
	floats.Scale(f, G.data)
}
