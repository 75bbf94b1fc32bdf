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

package testcases

import (
	"seehuhn.de/go/canvas"
)

var subpathCases = []TestCase{
	// Section 5.1 Multiple Subpaths
	{
		Name:   "two_triangles",
		Path:   twoTriangles(16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "overlapping_rect_nonzero",
		Path:   overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "overlapping_rect_evenodd",
		Path:   overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleEvenOdd},
	},
	{
		Name:   "ring_shape",
		Path:   concentricRectangles(32, 32, 25, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleEvenOdd},
	},
	{
		Name:   "multiple_rings",
		Path:   multipleRings(64, 64),
		Width:  128,
		Height: 128,
		Op:     Fill{Rule: canvas.FillRuleEvenOdd},
	},
	{
		Name:   "many_small_shapes",
		Path:   manySmallShapes(8, 8),
		Width:  128,
		Height: 128,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *canvas.Path {
	return canvas.NewPath().
		MoveTo(pt(cx1, cy1-size)).
		LineTo(pt(cx1+size, cy1+size)).
		LineTo(pt(cx1-size, cy1+size)).
		Close().
		MoveTo(pt(cx2, cy2-size)).
		LineTo(pt(cx2+size, cy2+size)).
		LineTo(pt(cx2-size, cy2+size)).
		Close()
}

// overlappingRectangles builds two overlapping rectangles.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) *canvas.Path {
	p := rectangle(x1a, y1a, x2a, y2a)
	return p.Append(rectangle(x1b, y1b, x2b, y2b), canvas.Identity())
}

// concentricRectangles builds two nested rectangles with the same winding
// direction.  With the even-odd rule the inner rectangle becomes a hole.
func concentricRectangles(cx, cy, outerSize, innerSize float64) *canvas.Path {
	p := rectangle(cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize)
	return p.Append(rectangle(cx-innerSize, cy-innerSize, cx+innerSize, cy+innerSize), canvas.Identity())
}

// multipleRings builds three ring shapes at different positions.
func multipleRings(cx, cy float64) *canvas.Path {
	rings := []struct{ cx, cy, outer, inner float64 }{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}

	p := canvas.NewPath()
	for _, ring := range rings {
		p.Append(concentricRectangles(ring.cx, ring.cy, ring.outer, ring.inner), canvas.Identity())
	}
	return p
}

// manySmallShapes builds a grid of small triangles (stress test).
func manySmallShapes(rows, cols int) *canvas.Path {
	size := 5.0
	spacing := 14.0

	p := canvas.NewPath()
	for row := range rows {
		for col := range cols {
			cx := 10.0 + float64(col)*spacing
			cy := 10.0 + float64(row)*spacing
			p.MoveTo(pt(cx, cy-size)).
				LineTo(pt(cx+size, cy+size)).
				LineTo(pt(cx-size, cy+size)).
				Close()
		}
	}
	return p
}
