/*
 * diff_test.go, part of gocube.
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
	"os"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestDiff(Te *testing.T) {
	ref, err := Read("test/small1.cube")
	if err != nil {
		Te.Fatal(err)
	}
	target, err := Read("test/small2.cube")
	if err != nil {
		Te.Fatal(err)
	}
	d, err := Diff(ref, target)
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{2, 3, -1, -3, -6, -6, 3, -16}
	if !floats.Equal(d.Data(), want) {
		Te.Errorf("difference values: got %v, want %v", d.Data(), want)
	}
	//the header must be the reference's, byte for byte
	h := d.Header()
	rh := ref.Header()
	if len(h) != len(rh) {
		Te.Fatalf("difference header has %d lines, reference has %d", len(h), len(rh))
	}
	for i, v := range rh {
		if h[i] != v {
			Te.Errorf("header line %d not copied verbatim: '%s' vs '%s'", i+1, h[i], v)
		}
	}
	//and the written file must keep the reference's wrapping and format
	name := "test/diff_test.cube"
	if err := d.Write(name); err != nil {
		Te.Fatal(err)
	}
	defer os.Remove(name)
	raw, err := os.ReadFile(name)
	if err != nil {
		Te.Fatal(err)
	}
	text := string(raw)
	if !strings.HasPrefix(text, strings.Join(rh, "\n")+"\n") {
		Te.Error("written difference file does not start with the reference header")
	}
	if !strings.Contains(text, " 2.000000000E+00") || !strings.Contains(text, " 3.000000000E+00") {
		Te.Error("written difference file misses expected formatted values")
	}
	datalines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")[len(rh):]
	if len(datalines) != 4 {
		Te.Errorf("want 4 data lines as in the reference, got %d", len(datalines))
	}
	fmt.Println("diff test passed")
}

func TestDiffShapeMismatch(Te *testing.T) {
	ref, err := Read("test/small1.cube")
	if err != nil {
		Te.Fatal(err)
	}
	short, err := Read("test/short.cube")
	if err != nil {
		Te.Fatal(err)
	}
	_, err = Diff(ref, short)
	if err == nil {
		Te.Error("grids of different cardinality must not subtract silently")
	}
	fmt.Println("expected failure:", err)
	if _, err := Diff(ref, nil); err == nil {
		Te.Error("a nil grid must be rejected")
	}
}

func TestSeparate(Te *testing.T) {
	ref, err := Read("test/small1.cube")
	if err != nil {
		Te.Fatal(err)
	}
	target, err := Read("test/small2.cube")
	if err != nil {
		Te.Fatal(err)
	}
	d, err := Diff(ref, target)
	if err != nil {
		Te.Fatal(err)
	}
	pos, neg := d.Separate()
	for i, v := range d.Data() {
		p := pos.Data()[i]
		n := neg.Data()[i]
		if v > 0 && (p != v || n != 0) {
			Te.Errorf("value %d: %g > 0 separated into (%g, %g)", i, v, p, n)
		}
		if v < 0 && (p != 0 || n != v) {
			Te.Errorf("value %d: %g < 0 separated into (%g, %g)", i, v, p, n)
		}
		if v == 0 && (p != 0 || n != 0) {
			Te.Errorf("value %d: 0 separated into (%g, %g)", i, p, n)
		}
	}
	//adding the parts back must reproduce the difference
	pos.Add(neg)
	if !floats.Equal(pos.Data(), d.Data()) {
		Te.Error("positive plus negative parts don't reproduce the field")
	}
	fmt.Println("separate test passed")
}

func TestArithmetic(Te *testing.T) {
	g, err := Read("test/small1.cube")
	if err != nil {
		Te.Fatal(err)
	}
	h, err := Read("test/small1.cube")
	if err != nil {
		Te.Fatal(err)
	}
	g.Add(h)
	if g.Data()[0] != 2.0 || g.Data()[7] != 16.0 {
		Te.Errorf("addition wrong: %v", g.Data())
	}
	g.Scale(0.5)
	if !floats.Equal(g.Data(), h.Data()) {
		Te.Errorf("scaling by 0.5 after doubling should recover the field: %v", g.Data())
	}
	g.Sub(h)
	if g.Sum() != 0 {
		Te.Errorf("subtracting a field from itself should zero it: %v", g.Data())
	}
}

func TestStats(Te *testing.T) {
	g, err := Read("test/small1.cube")
	if err != nil {
		Te.Fatal(err)
	}
	const eps = 1e-12
	if !scalar.EqualWithinAbs(g.Min(), 1, eps) || !scalar.EqualWithinAbs(g.Max(), 8, eps) {
		Te.Errorf("min/max: got %g, %g", g.Min(), g.Max())
	}
	if !scalar.EqualWithinAbs(g.Sum(), 36, eps) {
		Te.Errorf("sum: got %g, want 36", g.Sum())
	}
	if !scalar.EqualWithinAbs(g.Mean(), 4.5, eps) {
		Te.Errorf("mean: got %g, want 4.5", g.Mean())
	}
	//sum of 1..8 squared is 204
	if !scalar.EqualWithinAbs(g.RMS()*g.RMS(), 204.0/8.0, 1e-9) {
		Te.Errorf("rms: got %g", g.RMS())
	}
	if !scalar.EqualWithinAbs(g.Integral(), 36*0.125, eps) {
		Te.Errorf("integral: got %g, want %g", g.Integral(), 36*0.125)
	}
	fmt.Println("stats:", g.Min(), g.Max(), g.Mean(), g.RMS(), g.Integral())
}

//A header-only cube has no grid values; its reductions must report zero,
//not panic.
func TestStatsEmptyField(Te *testing.T) {
	g, err := Read("test/small1.cube")
	if err != nil {
		Te.Fatal(err)
	}
	empty, err := NewGrid(g.Header(), nil)
	if err != nil {
		Te.Fatal(err)
	}
	if empty.Len() != 0 {
		Te.Fatalf("want an empty field, got %d values", empty.Len())
	}
	if v := empty.Min(); v != 0 {
		Te.Errorf("min of an empty field: got %g, want 0", v)
	}
	if v := empty.Max(); v != 0 {
		Te.Errorf("max of an empty field: got %g, want 0", v)
	}
	if v := empty.RMS(); v != 0 {
		Te.Errorf("rms of an empty field: got %g, want 0", v)
	}
	if v := empty.Integral(); v != 0 {
		Te.Errorf("integral of an empty field: got %g, want 0", v)
	}
}
