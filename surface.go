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
	"image"
	"image/color"
)

// A Surface is a raster image in premultiplied ARGB format.  Each
// pixel is a single uint32 word with the alpha component in the most
// significant byte, followed by red, green and blue.  Pixel (0,0) is
// the top-left corner, with y growing downwards.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	width  int
	height int
	stride int // row length in bytes, a multiple of 4
	data   []uint32
}

// NewSurface allocates a surface of the given size.  All pixels are
// initially transparent.  Negative dimensions are treated as zero.
func NewSurface(width, height int) *Surface {
	width = max(width, 0)
	height = max(height, 0)
	return &Surface{
		width:  width,
		height: height,
		stride: width * 4,
		data:   make([]uint32, width*height),
	}
}

// NewSurfaceForData wraps caller-owned pixel memory in a Surface.  The
// data is used in place and never copied; the caller keeps ownership
// and must keep it alive while the surface is in use.  The stride is
// given in bytes and must be a multiple of 4, at least 4*width.
func NewSurfaceForData(data []uint32, width, height, stride int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		stride: stride,
		data:   data,
	}
}

// NewSurfaceFromImage allocates a surface holding a copy of the given
// image.
func NewSurfaceFromImage(img image.Image) *Surface {
	b := img.Bounds()
	s := NewSurface(b.Dx(), b.Dy())
	s.SetImage(img)
	return s
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Stride returns the length of a pixel row in bytes.
func (s *Surface) Stride() int {
	return s.stride
}

// Data returns the underlying pixel words.  Rows are stride/4 words
// apart; only the first width words of each row belong to the image.
func (s *Surface) Data() []uint32 {
	return s.data
}

// row returns the pixels of row y.
func (s *Surface) row(y int) []uint32 {
	off := y * (s.stride / 4)
	return s.data[off : off+s.width]
}

// Clear sets all pixels to the given color.
func (s *Surface) Clear(c Color) {
	w := c.premul()
	for y := range s.height {
		row := s.row(y)
		for x := range row {
			row[x] = w
		}
	}
}

// Image converts the surface to an image.RGBA.  Both formats use
// premultiplied alpha, so the conversion is lossless.
func (s *Surface) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for y := range s.height {
		row := s.row(y)
		pix := img.Pix[y*img.Stride : y*img.Stride+4*s.width]
		for x, p := range row {
			pix[4*x+0] = uint8(p >> 16)
			pix[4*x+1] = uint8(p >> 8)
			pix[4*x+2] = uint8(p)
			pix[4*x+3] = uint8(p >> 24)
		}
	}
	return img
}

// SetImage copies pixels from img into the surface, starting at the
// top-left corner.  The copied area is the intersection of the two
// sizes.
func (s *Surface) SetImage(img image.Image) {
	b := img.Bounds()
	width := min(s.width, b.Dx())
	height := min(s.height, b.Dy())

	if rgba, ok := img.(*image.RGBA); ok {
		for y := range height {
			row := s.row(y)
			pix := rgba.Pix[rgba.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := range width {
				row[x] = uint32(pix[4*x+3])<<24 |
					uint32(pix[4*x+0])<<16 |
					uint32(pix[4*x+1])<<8 |
					uint32(pix[4*x+2])
			}
		}
		return
	}

	for y := range height {
		row := s.row(y)
		for x := range width {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			row[x] = uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
		}
	}
}
