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

// Package canvas implements software rendering of 2D vector graphics.
//
// Shapes are described by [Path] objects, which hold sequences of move,
// line, cubic Bézier and close commands.  Paths can be filled or
// stroked; strokes support the usual cap and join styles as well as
// dashing.  Coverage is computed by a scanline rasteriser with
// antialiasing, and pixels are written to a [Surface] using the
// Porter-Duff compositing operators.  Colors come from a [Paint], which
// can be a solid color, a linear or radial gradient, or a tiled
// texture.
//
// The [Canvas] type ties these pieces together.  It keeps a stack of
// graphics states (transformation matrix, paint, stroke parameters,
// clip) and offers drawing operations in the style of the HTML canvas
// element.  The lower-level types can also be used on their own, for
// example to feed coverage spans into a custom compositing step.
//
// Path data can be exchanged with other programs in SVG path syntax,
// see [ParsePath] and [Path.SVG].
package canvas

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
