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

// Package testcases defines the scenes used by the rendering tests.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/canvas"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string        // lowercase a-z and _ only
	Path   *canvas.Path  // the geometry to render
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Op     Operation     // fill or stroke
	CTM    canvas.Matrix // transformation matrix (zero value means identity)
}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
}

// Fill specifies a fill operation.
type Fill struct {
	Rule canvas.FillRule
}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width      float64         // line width (>0)
	Cap        canvas.LineCap  // line cap style
	Join       canvas.LineJoin // line join style
	MiterLimit float64         // miter limit
	Dash       []float64       // dash pattern (nil for solid)
	DashPhase  float64         // dash phase offset
}

func (Stroke) isOperation() {}

// Style converts the stroke parameters into a canvas stroke style.
func (s Stroke) Style() canvas.Stroke {
	return canvas.Stroke{
		Width:       s.Width,
		Cap:         s.Cap,
		Join:        s.Join,
		MiterLimit:  s.MiterLimit,
		DashPattern: s.Dash,
		DashPhase:   s.DashPhase,
	}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
