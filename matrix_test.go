// seehuhn.de/go/canvas - a 2D vector graphics library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package canvas

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func vecNear(a, b vec.Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func matrixNear(a, b Matrix, eps float64) bool {
	return math.Abs(a.A-b.A) <= eps &&
		math.Abs(a.B-b.B) <= eps &&
		math.Abs(a.C-b.C) <= eps &&
		math.Abs(a.D-b.D) <= eps &&
		math.Abs(a.E-b.E) <= eps &&
		math.Abs(a.F-b.F) <= eps
}

func TestMatrixMap(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   vec.Vec2
		want vec.Vec2
	}{
		{"identity", Identity(), vec.Vec2{X: 3, Y: 4}, vec.Vec2{X: 3, Y: 4}},
		{"translate", Translate(10, -2), vec.Vec2{X: 3, Y: 4}, vec.Vec2{X: 13, Y: 2}},
		{"scale", Scale(2, 3), vec.Vec2{X: 3, Y: 4}, vec.Vec2{X: 6, Y: 12}},
		{"rotate90", Rotate(math.Pi / 2), vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 0, Y: 1}},
		{"rotate180", Rotate(math.Pi), vec.Vec2{X: 1, Y: 2}, vec.Vec2{X: -1, Y: -2}},
		{"shear", Shear(math.Atan(0.5), 0), vec.Vec2{X: 0, Y: 2}, vec.Vec2{X: 1, Y: 2}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.m.Map(test.in)
			if !vecNear(got, test.want, 1e-12) {
				t.Errorf("Map(%v) = %v, want %v", test.in, got, test.want)
			}
		})
	}
}

func TestMatrixMul(t *testing.T) {
	// Mul applies the right-hand factor first.
	m := Translate(10, 0).Mul(Scale(2, 2))
	got := m.Map(vec.Vec2{X: 1, Y: 1})
	want := vec.Vec2{X: 12, Y: 2}
	if !vecNear(got, want, 1e-12) {
		t.Errorf("translate∘scale maps (1,1) to %v, want %v", got, want)
	}

	// The -ed methods append an operation which acts in the coordinate
	// system already established by the receiver.
	m = Scale(2, 2).Translated(5, 0)
	got = m.Map(vec.Vec2{})
	want = vec.Vec2{X: 10, Y: 0}
	if !vecNear(got, want, 1e-12) {
		t.Errorf("Scale(2,2).Translated(5,0) maps origin to %v, want %v", got, want)
	}
}

func TestMatrixInvert(t *testing.T) {
	invertible := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(3, 4)},
		{"scale", Scale(2, -3)},
		{"rotate", Rotate(0.7)},
		{"shear", Shear(0.3, 0.1)},
		{"general", Matrix{1.5, 0.25, -0.5, 2, 10, -20}},
	}
	for _, test := range invertible {
		t.Run(test.name, func(t *testing.T) {
			inv, ok := test.m.Invert()
			if !ok {
				t.Fatalf("%v reported as singular", test.m)
			}
			if got := test.m.Mul(inv); !matrixNear(got, Identity(), 1e-9) {
				t.Errorf("m * m^-1 = %v, want identity", got)
			}
			if got := inv.Mul(test.m); !matrixNear(got, Identity(), 1e-9) {
				t.Errorf("m^-1 * m = %v, want identity", got)
			}
		})
	}

	singular := []struct {
		name string
		m    Matrix
	}{
		{"zero", Matrix{}},
		{"rank1", Matrix{1, 2, 2, 4, 5, 6}},
		{"collapse_x", Matrix{0, 0, 0, 1, 3, 4}},
	}
	for _, test := range singular {
		t.Run(test.name, func(t *testing.T) {
			if _, ok := test.m.Invert(); ok {
				t.Errorf("%v reported as invertible", test.m)
			}
		})
	}
}

func TestMatrixMapVector(t *testing.T) {
	m := Translate(100, 200).Scaled(2, 3)
	got := m.MapVector(vec.Vec2{X: 1, Y: 1})
	want := vec.Vec2{X: 2, Y: 3}
	if !vecNear(got, want, 1e-12) {
		t.Errorf("MapVector(1,1) = %v, want %v", got, want)
	}
}

func TestMatrixMapPoints(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	Translate(5, 7).MapPoints(pts)
	want := []vec.Vec2{{X: 5, Y: 7}, {X: 6, Y: 7}, {X: 5, Y: 8}}
	for i := range pts {
		if !vecNear(pts[i], want[i], 1e-12) {
			t.Errorf("point %d: got %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestMatrixMapRect(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   rect.Rect
		want rect.Rect
	}{
		{
			"identity",
			Identity(),
			rect.Rect{LLx: 1, LLy: 2, URx: 5, URy: 7},
			rect.Rect{LLx: 1, LLy: 2, URx: 5, URy: 7},
		},
		{
			"translate",
			Translate(10, 20),
			rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1},
			rect.Rect{LLx: 10, LLy: 20, URx: 11, URy: 21},
		},
		{
			"rotate90",
			Rotate(math.Pi / 2),
			rect.Rect{LLx: 0, LLy: 0, URx: 2, URy: 1},
			rect.Rect{LLx: -1, LLy: 0, URx: 0, URy: 2},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.m.MapRect(test.in)
			if math.Abs(got.LLx-test.want.LLx) > 1e-9 ||
				math.Abs(got.LLy-test.want.LLy) > 1e-9 ||
				math.Abs(got.URx-test.want.URx) > 1e-9 ||
				math.Abs(got.URy-test.want.URy) > 1e-9 {
				t.Errorf("MapRect(%v) = %v, want %v", test.in, got, test.want)
			}
		})
	}
}
