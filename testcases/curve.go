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

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   quadraticCurve(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "cubic",
		Path:   cubicCurve(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "circle",
		Path:   canvas.NewPath().Circle(pt(32, 32), 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},

	// Section 4.1: Quadratic Bezier
	{
		Name:   "quadratic_shallow",
		Path:   quadraticCurve(10, 32, 32, 28, 54, 32), // control point near chord
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "quadratic_deep",
		Path:   quadraticCurve(10, 50, 32, 5, 54, 50), // control point far from chord
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "quadratic_below",
		Path:   quadraticCurve(10, 20, 32, 55, 54, 20), // control point below chord (curves down)
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "quadratic_s_shape",
		Path:   sCurveQuadratic(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "quadratic_stroked",
		Path:   quadraticCurveOpen(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      4,
			Cap:        canvas.LineCapRound,
			Join:       canvas.LineJoinRound,
			MiterLimit: 10,
		},
	},

	// Section 4.2: Cubic Bezier
	{
		Name:   "cubic_shallow",
		Path:   cubicCurve(10, 32, 22, 28, 42, 28, 54, 32), // control points near chord
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "cubic_deep",
		Path:   cubicCurve(10, 50, 15, 5, 49, 5, 54, 50), // control points far from chord
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "cubic_scurve",
		Path:   cubicCurve(10, 50, 10, 10, 54, 54, 54, 14), // S-curve with inflection
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "cubic_loop",
		Path:   cubicCurve(10, 32, 60, 5, 4, 59, 54, 32), // self-intersecting loop
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "cubic_cusp",
		Path:   cubicCurve(10, 50, 54, 10, 10, 10, 54, 50), // cusp (control points crossed)
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "cubic_nearly_straight",
		Path:   cubicCurve(10, 32, 24, 31, 40, 31, 54, 32), // almost a straight line
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "cubic_stroked",
		Path:   cubicCurveOpen(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      4,
			Cap:        canvas.LineCapRound,
			Join:       canvas.LineJoinRound,
			MiterLimit: 10,
		},
	},
	{
		Name:   "cubic_scurve_stroked",
		Path:   cubicCurveOpen(10, 50, 10, 10, 54, 54, 54, 14),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      4,
			Cap:        canvas.LineCapRound,
			Join:       canvas.LineJoinRound,
			MiterLimit: 10,
		},
	},

	// Section 4.3: Circle/Ellipse
	{
		Name:   "circle_stroked",
		Path:   canvas.NewPath().Circle(pt(32, 32), 25),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      3,
			Cap:        canvas.LineCapButt,
			Join:       canvas.LineJoinRound,
			MiterLimit: 10,
		},
	},
	{
		Name:   "circle_small",
		Path:   canvas.NewPath().Circle(pt(32, 32), 5), // small radius
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "circle_large",
		Path:   canvas.NewPath().Circle(pt(64, 64), 100), // large radius on 128x128 canvas
		Width:  128,
		Height: 128,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "ellipse",
		Path:   canvas.NewPath().Ellipse(pt(32, 32), 28, 14), // stretched circle
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "arc",
		Path:   pieSlice(32, 32, 25, 0.75), // partial circle (3/4)
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},

	// Section 4.4: Curve Flattening Edge Cases
	{
		Name:   "curve_many_segments",
		Path:   cubicCurve(5, 60, 5, 5, 123, 5, 123, 60), // very detailed curve on large canvas
		Width:  128,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "curve_minimal_segments",
		Path:   cubicCurve(10, 32, 24, 31.5, 40, 31.5, 54, 32), // nearly flat
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "cubic_degenerate",
		Path:   cubicCurve(32, 32, 32, 32, 32, 32, 32, 32), // all control points coincident
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "quadratic_degenerate",
		Path:   quadraticCurve(10, 32, 10, 32, 54, 32), // control point on start endpoint
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
}

// quadraticCurve builds a closed shape with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *canvas.Path {
	return canvas.NewPath().
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// quadraticCurveOpen builds an open path with a quadratic Bezier curve (for stroking).
func quadraticCurveOpen(x1, y1, cx, cy, x2, y2 float64) *canvas.Path {
	return canvas.NewPath().
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2))
}

// cubicCurve builds a closed shape with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *canvas.Path {
	return canvas.NewPath().
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close()
}

// cubicCurveOpen builds an open path with a cubic Bezier curve (for stroking).
func cubicCurveOpen(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *canvas.Path {
	return canvas.NewPath().
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2))
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic Bezier curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) *canvas.Path {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return canvas.NewPath().
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)). // first half curves up
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2)).     // second half curves down
		Close()
}

// pieSlice builds a partial circle from the right side going up, covering
// the given fraction of a full turn, with straight edges to the center.
func pieSlice(cx, cy, r, fraction float64) *canvas.Path {
	k := r * kappa

	numQuadrants := min(max(int(fraction*4), 1), 4)

	p := canvas.NewPath().
		MoveTo(pt(cx, cy)).
		LineTo(pt(cx+r, cy))

	// top-right quadrant
	if numQuadrants >= 1 {
		p.CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r))
	}
	// top-left quadrant
	if numQuadrants >= 2 {
		p.CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy))
	}
	// bottom-left quadrant
	if numQuadrants >= 3 {
		p.CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r))
	}
	// bottom-right quadrant
	if numQuadrants >= 4 {
		p.CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy))
	}

	return p.Close()
}
