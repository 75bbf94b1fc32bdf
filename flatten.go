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

	"seehuhn.de/go/geom/vec"
)

// cubicDeviation returns the maximum of the two second-difference
// vectors of a cubic Bézier curve.  Together with cubicSegmentCount
// this bounds the distance between the curve and its approximating
// polyline.
func cubicDeviation(p0, p1, p2, p3 vec.Vec2) (d1, d2 vec.Vec2) {
	d1 = p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 = p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3
	return d1, d2
}

// cubicSegmentCount returns the number of line segments needed to
// approximate a cubic Bézier with the given maximal second-difference
// magnitude mDev so that the deviation stays below tol.  This is
// Wang's formula: n = ceil(sqrt(3 * mDev / (4 * tol))).
func cubicSegmentCount(mDev, tol float64) int {
	n := 1
	if mDev > 0 {
		nFloat := math.Sqrt(3 * mDev / (4 * tol))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}
	return n
}

// flattenCubicN evaluates a cubic Bézier at n+1 uniformly spaced
// parameter values and passes the points after p0 to emit, in order.
// It stops early if emit returns false, and reports whether all points
// were emitted.
func flattenCubicN(p0, p1, p2, p3 vec.Vec2, n int, emit func(vec.Vec2) bool) bool {
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		omt3 := omt2 * omt
		t2 := t * t
		t3 := t2 * t
		pt := p0.Mul(omt3).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t3))
		if !emit(pt) {
			return false
		}
	}
	return true
}

// flattenCubic approximates a cubic Bézier by line segments with
// deviation below tol, measured in the coordinate space of the control
// points.  The points after p0 are passed to emit in order.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, tol float64, emit func(vec.Vec2) bool) bool {
	d1, d2 := cubicDeviation(p0, p1, p2, p3)
	n := cubicSegmentCount(max(d1.Length(), d2.Length()), tol)
	return flattenCubicN(p0, p1, p2, p3, n, emit)
}
