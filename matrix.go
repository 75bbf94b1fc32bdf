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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Matrix represents an affine transformation of the plane.
// A point (x, y) is mapped to
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//
// This is the coefficient layout used by PostScript, PDF and SVG.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Translate returns a transformation which moves points by (tx, ty).
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale returns a transformation which scales x-coordinates by sx and
// y-coordinates by sy.
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate returns a rotation about the origin by the given angle, in
// radians.  With the y-axis pointing down, positive angles rotate in
// the direction from the positive x-axis towards the positive y-axis.
func Rotate(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{c, s, -s, c, 0, 0}
}

// Shear returns a shear transformation.  The arguments are angles in
// radians: shx tilts vertical lines by shx towards the x-axis, shy
// tilts horizontal lines by shy towards the y-axis.
func Shear(shx, shy float64) Matrix {
	return Matrix{1, math.Tan(shy), math.Tan(shx), 1, 0, 0}
}

// Mul returns the product of m and n.  The combined transformation
// applies n first and m second.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		m.A*n.A + m.C*n.B,
		m.B*n.A + m.D*n.B,
		m.A*n.C + m.C*n.D,
		m.B*n.C + m.D*n.D,
		m.A*n.E + m.C*n.F + m.E,
		m.B*n.E + m.D*n.F + m.F,
	}
}

// Translated appends a translation to m.  The translation acts in the
// coordinate system already established by m, following the usual
// "current transformation matrix" convention.
func (m Matrix) Translated(tx, ty float64) Matrix {
	return m.Mul(Translate(tx, ty))
}

// Scaled appends a scale to m, acting in m's coordinate system.
func (m Matrix) Scaled(sx, sy float64) Matrix {
	return m.Mul(Scale(sx, sy))
}

// Rotated appends a rotation to m, acting in m's coordinate system.
func (m Matrix) Rotated(angle float64) Matrix {
	return m.Mul(Rotate(angle))
}

// Sheared appends a shear to m, acting in m's coordinate system.
func (m Matrix) Sheared(shx, shy float64) Matrix {
	return m.Mul(Shear(shx, shy))
}

// Invert returns the inverse transformation.  The second return value
// reports whether m is invertible; for singular matrices Invert
// returns the zero Matrix and false.
func (m Matrix) Invert() (Matrix, bool) {
	p := m.A * m.D
	q := m.B * m.C
	det := p - q
	if math.Abs(det) <= singularEpsilon*(math.Abs(p)+math.Abs(q)) {
		return Matrix{}, false
	}
	inv := Matrix{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
	}
	inv.E = -(inv.A*m.E + inv.C*m.F)
	inv.F = -(inv.B*m.E + inv.D*m.F)
	return inv, true
}

// Map applies the transformation to the point v.
func (m Matrix) Map(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m.A*v.X + m.C*v.Y + m.E,
		Y: m.B*v.X + m.D*v.Y + m.F,
	}
}

// MapVector applies only the linear part of the transformation,
// ignoring the translation.  This is the correct way to transform
// direction vectors and distances.
func (m Matrix) MapVector(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m.A*v.X + m.C*v.Y,
		Y: m.B*v.X + m.D*v.Y,
	}
}

// MapPoints applies the transformation to all points in pts, in place.
func (m Matrix) MapPoints(pts []vec.Vec2) {
	for i, v := range pts {
		pts[i] = vec.Vec2{
			X: m.A*v.X + m.C*v.Y + m.E,
			Y: m.B*v.X + m.D*v.Y + m.F,
		}
	}
}

// MapRect returns the axis-aligned bounding box of the image of r
// under the transformation.
func (m Matrix) MapRect(r rect.Rect) rect.Rect {
	corners := [4]vec.Vec2{
		{X: r.LLx, Y: r.LLy},
		{X: r.URx, Y: r.LLy},
		{X: r.URx, Y: r.URy},
		{X: r.LLx, Y: r.URy},
	}
	p := m.Map(corners[0])
	res := rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
	for _, c := range corners[1:] {
		p = m.Map(c)
		res.LLx = min(res.LLx, p.X)
		res.LLy = min(res.LLy, p.Y)
		res.URx = max(res.URx, p.X)
		res.URy = max(res.URy, p.Y)
	}
	return res
}

// singularEpsilon is the relative tolerance below which a determinant
// is considered zero when inverting a matrix.
const singularEpsilon = 1e-12
