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

package canvas_test

import (
	"fmt"
	"image"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/canvas"
)

// circleK is the cubic Bezier approximation constant for a quarter circle.
const circleK = 0.5522847498307936

var oSizes = []int{20, 200, 2000}

// BenchmarkRasteriserO measures rasterisation of an O shape, the ring
// between two concentric circles, at various sizes.
func BenchmarkRasteriserO(b *testing.B) {
	for _, size := range oSizes {
		b.Run(fmt.Sprintf("size%d", size), func(b *testing.B) {
			s := float64(size)
			p := makeOPath(s)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			r := canvas.NewRasteriser(rect.Rect{URx: s, URy: s})
			emit := func(y, xMin int, cov []float32) {
				row := dst.Pix[y*dst.Stride+xMin:]
				for i, c := range cov {
					row[i] = uint8(min(max(int(c*256), 0), 255))
				}
			}

			b.ReportAllocs()
			for b.Loop() {
				r.Fill(p.Iter(), canvas.Identity(), canvas.FillRuleEvenOdd, emit)
			}
		})
	}
}

// BenchmarkVectorO measures golang.org/x/image/vector on the same
// shape, for comparison.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range oSizes {
		b.Run(fmt.Sprintf("size%d", size), func(b *testing.B) {
			s := float64(size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			z := vector.NewRasterizer(size, size)

			b.ReportAllocs()
			for b.Loop() {
				z.Reset(size, size)
				addCircleToVector(z, s/2, s/2, 0.45*s, false)
				addCircleToVector(z, s/2, s/2, 0.25*s, true)
				z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
			}
		})
	}
}

// makeOPath builds a ring from two concentric circles.  The circles
// share their winding direction, so the ring relies on the even-odd
// fill rule.
func makeOPath(size float64) *canvas.Path {
	center := vec.Vec2{X: size / 2, Y: size / 2}
	return canvas.NewPath().
		Circle(center, 0.45*size).
		Circle(center, 0.25*size)
}

// addCircleToVector adds a circle built from four cubic Bezier
// segments to an x/image/vector rasterizer.  With reverse set the
// circle runs in the opposite direction, so that the nonzero winding
// of the vector package produces a ring.
func addCircleToVector(z *vector.Rasterizer, cx, cy, r float64, reverse bool) {
	k := r * circleK
	pts := [][6]float64{
		{cx + r, cy + k, cx + k, cy + r, cx, cy + r},
		{cx - k, cy + r, cx - r, cy + k, cx - r, cy},
		{cx - r, cy - k, cx - k, cy - r, cx, cy - r},
		{cx + k, cy - r, cx + r, cy - k, cx + r, cy},
	}
	z.MoveTo(float32(cx+r), float32(cy))
	if reverse {
		for i := 3; i >= 0; i-- {
			q := pts[i]
			var end [2]float64
			if i > 0 {
				end = [2]float64{pts[i-1][4], pts[i-1][5]}
			} else {
				end = [2]float64{cx + r, cy}
			}
			z.CubeTo(
				float32(q[2]), float32(q[3]),
				float32(q[0]), float32(q[1]),
				float32(end[0]), float32(end[1]))
		}
	} else {
		for _, q := range pts {
			z.CubeTo(
				float32(q[0]), float32(q[1]),
				float32(q[2]), float32(q[3]),
				float32(q[4]), float32(q[5]))
		}
	}
	z.ClosePath()
}
