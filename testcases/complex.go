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
	"math"

	"seehuhn.de/go/canvas"
)

var complexCases = []TestCase{
	// Section 5.2: Mixed Operations
	{
		Name:   "mixed_lines_curves",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "stroked_mixed",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      3,
			Cap:        canvas.LineCapRound,
			Join:       canvas.LineJoinRound,
			MiterLimit: 10,
		},
	},
	{
		Name:   "glyph_like",
		Path:   glyphLikeShape(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},

	// Section 5.3: Stroke Self-Intersection
	{
		Name:   "spiral_overlap",
		Path:   spiralPath(32, 32, 5, 25, 3),
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
		Name:   "figure_eight",
		Path:   figureEightStroke(32, 32, 20),
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
		Name:   "thick_tight_curve",
		Path:   tightCurve(32, 32, 15),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      10,
			Cap:        canvas.LineCapRound,
			Join:       canvas.LineJoinRound,
			MiterLimit: 10,
		},
	},
	{
		Name:   "zigzag_thick",
		Path:   zigzagPath(10, 32, 54, 20),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      8,
			Cap:        canvas.LineCapRound,
			Join:       canvas.LineJoinRound,
			MiterLimit: 10,
		},
	},
}

// mixedLinesCurves builds a closed path combining line segments and
// Bezier curves.
func mixedLinesCurves() *canvas.Path {
	return canvas.NewPath().
		MoveTo(pt(10, 50)).
		LineTo(pt(20, 30)).
		QuadTo(pt(32, 10), pt(44, 30)).
		LineTo(pt(54, 50)).
		CubeTo(pt(48, 60), pt(16, 60), pt(10, 50)).
		Close()
}

// glyphLikeShape builds a complex shape similar to a typographic glyph,
// resembling a simplified lowercase 'a': a circular bowl with a stem on
// the right and a circular counter punched out of the middle.
func glyphLikeShape() *canvas.Path {
	cx, cy := 32.0, 38.0
	r := 18.0
	k := r * kappa

	// outer bowl, going through the top first
	p := canvas.NewPath().
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy))

	// stem up the right side
	p.LineTo(pt(cx+r, 10)).
		LineTo(pt(cx+r-6, 10)).
		LineTo(pt(cx+r-6, cy))

	// inner counter with reversed winding, going through the bottom first
	ir := 8.0
	ik := ir * kappa
	return p.LineTo(pt(cx+ir, cy)).
		CubeTo(pt(cx+ir, cy+ik), pt(cx+ik, cy+ir), pt(cx, cy+ir)).
		CubeTo(pt(cx-ik, cy+ir), pt(cx-ir, cy+ik), pt(cx-ir, cy)).
		CubeTo(pt(cx-ir, cy-ik), pt(cx-ik, cy-ir), pt(cx, cy-ir)).
		CubeTo(pt(cx+ik, cy-ir), pt(cx+ir, cy-ik), pt(cx+ir, cy)).
		Close()
}

// spiralPath builds an Archimedean spiral that overlaps itself.
func spiralPath(cx, cy, rMin, rMax float64, turns float64) *canvas.Path {
	steps := max(int(turns*32), 8) // 32 segments per turn

	totalAngle := turns * 2 * math.Pi
	rGrowth := (rMax - rMin) / totalAngle

	p := canvas.NewPath().MoveTo(pt(cx+rMin, cy))
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		angle := t * totalAngle
		r := rMin + rGrowth*angle
		p.LineTo(pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return p
}

// figureEightStroke builds a figure-eight path from two loops that cross
// at the center, for stroke self-intersection testing.
func figureEightStroke(cx, cy, size float64) *canvas.Path {
	r := size / 2
	k := r * kappa

	topCy := cy - r/2
	botCy := cy + r/2

	return canvas.NewPath().
		MoveTo(pt(cx, cy)).
		// upper loop
		CubeTo(pt(cx+k, cy-r/4), pt(cx+r, topCy-k/2), pt(cx+r, topCy)).
		CubeTo(pt(cx+r, topCy-k), pt(cx+k, topCy-r), pt(cx, topCy-r)).
		CubeTo(pt(cx-k, topCy-r), pt(cx-r, topCy-k), pt(cx-r, topCy)).
		CubeTo(pt(cx-r, topCy+k/2), pt(cx-k, cy-r/4), pt(cx, cy)).
		// lower loop, reversed direction so the path crosses itself
		CubeTo(pt(cx-k, cy+r/4), pt(cx-r, botCy-k/2), pt(cx-r, botCy)).
		CubeTo(pt(cx-r, botCy+k), pt(cx-k, botCy+r), pt(cx, botCy+r)).
		CubeTo(pt(cx+k, botCy+r), pt(cx+r, botCy+k), pt(cx+r, botCy)).
		CubeTo(pt(cx+r, botCy-k/2), pt(cx+k, cy+r/4), pt(cx, cy))
}

// tightCurve builds a U-shaped curve where the inner radius is small
// relative to stroke width, causing the inner edge to cross.
func tightCurve(cx, cy, size float64) *canvas.Path {
	r := size
	k := r * kappa

	return canvas.NewPath().
		MoveTo(pt(cx-r, cy-size)).
		LineTo(pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		LineTo(pt(cx+r, cy-size))
}

// zigzagPath builds a zigzag pattern where adjacent thick strokes overlap.
func zigzagPath(x1, cy, x2, amplitude float64) *canvas.Path {
	segments := 5
	segWidth := (x2 - x1) / float64(segments)

	p := canvas.NewPath().MoveTo(pt(x1, cy))
	for i := 1; i <= segments; i++ {
		x := x1 + float64(i)*segWidth
		y := cy - amplitude
		if i%2 == 0 {
			y = cy + amplitude
		}
		p.LineTo(pt(x, y))
	}
	return p
}
