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

var precisionCases = []TestCase{
	// Section 6.1: Subpixel Positioning
	{
		Name:   "subpixel_offset_00",
		Path:   offsetRectangle(20, 20, 24, 24, 0.0),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "subpixel_offset_25",
		Path:   offsetRectangle(20, 20, 24, 24, 0.25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "subpixel_offset_50",
		Path:   offsetRectangle(20, 20, 24, 24, 0.5),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "subpixel_offset_75",
		Path:   offsetRectangle(20, 20, 24, 24, 0.75),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "thin_line_y_integer",
		Path:   horizontalLine(5, 10.0, 59),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      1.0,
			Cap:        canvas.LineCapButt,
			Join:       canvas.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		Name:   "thin_line_y_half",
		Path:   horizontalLine(5, 10.5, 59),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      1.0,
			Cap:        canvas.LineCapButt,
			Join:       canvas.LineJoinMiter,
			MiterLimit: 10,
		},
	},

	// Section 6.2: Large Coordinates
	{
		Name:   "large_coord_centered",
		Path:   translatedSquare(1000, 1000, 20),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "small_shape_large_offset",
		Path:   translatedSquare(10000, 10000, 2),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
	{
		Name:   "float64_precision",
		Path:   float64PrecisionShape(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: canvas.FillRuleNonZero},
	},
}

// offsetRectangle builds a rectangular path with a subpixel offset applied
// to all coordinates.
func offsetRectangle(x1, y1, w, h, offset float64) *canvas.Path {
	return rectangle(x1+offset, y1+offset, x1+w+offset, y1+h+offset)
}

// translatedSquare builds a square centered at large coordinates, then
// translated back to the canvas center.  The subtraction of nearly equal
// large values probes precision at large offsets.
func translatedSquare(cx, cy, size float64) *canvas.Path {
	translateX := 32 - cx
	translateY := 32 - cy

	x1 := cx - size/2 + translateX
	y1 := cy - size/2 + translateY
	x2 := cx + size/2 + translateX
	y2 := cy + size/2 + translateY

	return rectangle(x1, y1, x2, y2)
}

// float64PrecisionShape builds a shape using coordinates that require
// full float64 precision to represent accurately.
func float64PrecisionShape() *canvas.Path {
	// coordinates differing only in the low bits of float64
	base := 32.0
	delta1 := 0.123456789012345
	delta2 := 0.123456789012346

	x1 := base - 10 + delta1
	y1 := base - 10 + delta1
	x2 := base + 10 + delta2
	y2 := base + 10 + delta2

	return rectangle(x1, y1, x2, y2)
}
