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

var ctmCases = []TestCase{
	// ========================================
	// Section 7.1: Uniform Scaling
	// ========================================
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 20, 20),
		Width:  128,
		Height: 128,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
		CTM:    canvas.Translate(24, 24).Scaled(2, 2),
	},
	{
		Name:   "scale_half",
		Path:   rectangle(0, 0, 80, 80),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
		CTM:    canvas.Translate(12, 12).Scaled(0.5, 0.5),
	},
	{
		Name:   "scale_10x",
		Path:   rectangle(0, 0, 4, 4),
		Width:  128,
		Height: 128,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
		CTM:    canvas.Translate(44, 44).Scaled(10, 10),
	},

	// ========================================
	// Section 7.2: Rotation
	// ========================================
	{
		Name:   "rotate_45deg",
		Path:   rectangle(-10, -10, 10, 10),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
		CTM:    canvas.Translate(32, 32).Rotated(45 * math.Pi / 180),
	},
	{
		Name:   "rotate_90deg",
		Path:   rectangle(-15, -10, 15, 10),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
		CTM:    canvas.Translate(32, 32).Rotated(90 * math.Pi / 180),
	},
	{
		Name:   "rotate_5deg",
		Path:   rectangle(-20, -10, 20, 10),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
		CTM:    canvas.Translate(32, 32).Rotated(5 * math.Pi / 180),
	},

	// ========================================
	// Section 7.3: Non-Uniform Scaling
	// ========================================
	{
		Name:   "scale_2x_1y",
		Path:   rectangle(-10, -10, 10, 10),
		Width:  128,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
		CTM:    canvas.Translate(64, 32).Scaled(2, 1),
	},
	{
		Name:   "scale_1x_2y",
		Path:   rectangle(-10, -10, 10, 10),
		Width:  64,
		Height: 128,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
		CTM:    canvas.Translate(32, 64).Scaled(1, 2),
	},
	{
		Name:   "circle_to_ellipse",
		Path:   canvas.NewPath().Circle(pt(0, 0), 15),
		Width:  128,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
		CTM:    canvas.Translate(64, 32).Scaled(2, 1),
	},

	// ========================================
	// Section 7.4: Shear
	// ========================================
	{
		Name:   "shear_horizontal",
		Path:   rectangle(-15, -15, 15, 15),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
		CTM:    canvas.Translate(32, 32).Mul(canvas.Matrix{A: 1, C: 0.5, D: 1}),
	},
	{
		Name:   "shear_vertical",
		Path:   rectangle(-15, -15, 15, 15),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
		CTM:    canvas.Translate(32, 32).Mul(canvas.Matrix{A: 1, B: 0.5, D: 1}),
	},
	{
		Name:   "shear_and_rotate",
		Path:   rectangle(-12, -12, 12, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
		// shear first, then rotate 30 degrees, then centre on the canvas
		CTM: canvas.Translate(32, 32).Rotated(30 * math.Pi / 180).Mul(canvas.Matrix{A: 1, C: 0.3, D: 1}),
	},

	// ========================================
	// Section 7.5: Strokes Under Transform
	// ========================================
	{
		Name:   "round_cap_nonuniform",
		Path:   horizontalLine(-20, 0, 20),
		Width:  128,
		Height: 64,
		Op: Stroke{
			Width:      8,
			Cap:        canvas.LineCapRound,
			Join:       canvas.LineJoinRound,
			MiterLimit: 10,
		},
		// non-uniform scale: round caps become elliptical in device space
		CTM: canvas.Translate(64, 32).Scaled(2, 1),
	},
	{
		Name:   "round_join_rotated",
		Path:   cornerCentered(0, 0, math.Pi/3),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      6,
			Cap:        canvas.LineCapButt,
			Join:       canvas.LineJoinRound,
			MiterLimit: 10,
		},
		CTM: canvas.Translate(32, 32).Rotated(30 * math.Pi / 180),
	},
	{
		Name:   "dash_scaled",
		Path:   horizontalLine(-25, 0, 25),
		Width:  128,
		Height: 64,
		Op: Stroke{
			Width:      4,
			Cap:        canvas.LineCapButt,
			Join:       canvas.LineJoinMiter,
			MiterLimit: 10,
			Dash:       []float64{5, 3},
			DashPhase:  0,
		},
		// 2x scale: dash pattern scales accordingly
		CTM: canvas.Translate(64, 32).Scaled(2, 1),
	},
}

// cornerCentered builds a corner path centered at (cx, cy), opening
// upwards with the given angle between the two arms.
func cornerCentered(cx, cy float64, angle float64) *canvas.Path {
	length := 20.0
	halfAngle := angle / 2

	x1 := cx - length*math.Cos(halfAngle)
	y1 := cy - length*math.Sin(halfAngle)
	x2 := cx + length*math.Cos(halfAngle)
	y2 := cy - length*math.Sin(halfAngle)

	return canvas.NewPath().
		MoveTo(pt(x1, y1)).
		LineTo(pt(cx, cy)).
		LineTo(pt(x2, y2))
}
