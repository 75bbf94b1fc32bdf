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
	"slices"
	"testing"
)

func TestNewSurface(t *testing.T) {
	s := NewSurface(7, 5)
	if s.Width() != 7 || s.Height() != 5 || s.Stride() != 28 {
		t.Errorf("got %dx%d stride %d", s.Width(), s.Height(), s.Stride())
	}
	if len(s.Data()) != 35 {
		t.Errorf("data length %d", len(s.Data()))
	}
	for i, p := range s.Data() {
		if p != 0 {
			t.Fatalf("pixel %d not transparent: %#08x", i, p)
		}
	}

	s = NewSurface(-3, 10)
	if s.Width() != 0 || len(s.Data()) != 0 {
		t.Errorf("negative width gives %dx%d", s.Width(), s.Height())
	}
}

func TestSurfaceClear(t *testing.T) {
	s := NewSurface(4, 3)
	s.Clear(Red)
	for i, p := range s.Data() {
		if p != 0xFFFF0000 {
			t.Fatalf("pixel %d = %#08x", i, p)
		}
	}
	s.Clear(Transparent)
	for i, p := range s.Data() {
		if p != 0 {
			t.Fatalf("pixel %d = %#08x after clearing", i, p)
		}
	}
}

func TestSurfaceForData(t *testing.T) {
	// stride of 6 words leaves 2 words of padding per row
	data := make([]uint32, 6*4)
	for i := range data {
		data[i] = 0xDEADBEEF
	}
	s := NewSurfaceForData(data, 4, 4, 24)
	s.Clear(Black)
	for y := range 4 {
		for x := range 6 {
			p := data[y*6+x]
			if x < 4 {
				if p != 0xFF000000 {
					t.Errorf("pixel (%d, %d) = %#08x", x, y, p)
				}
			} else if p != 0xDEADBEEF {
				t.Errorf("padding (%d, %d) overwritten: %#08x", x, y, p)
			}
		}
	}
}

func TestSurfaceImage(t *testing.T) {
	s := NewSurface(3, 2)
	s.row(0)[1] = 0x80402010
	s.row(1)[2] = White.premul()

	img := s.Image()
	if got := img.RGBAAt(1, 0); got != (color.RGBA{R: 0x40, G: 0x20, B: 0x10, A: 0x80}) {
		t.Errorf("pixel (1, 0) = %v", got)
	}
	if got := img.RGBAAt(2, 1); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("pixel (2, 1) = %v", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("pixel (0, 0) = %v", got)
	}
}

func TestSurfaceSetImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(1, 0, color.RGBA{R: 0x40, G: 0x20, B: 0x10, A: 0x80})
	img.SetRGBA(2, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	s := NewSurface(3, 2)
	s.SetImage(img)
	if got := s.row(0)[1]; got != 0x80402010 {
		t.Errorf("pixel (1, 0) = %#08x", got)
	}
	if got := s.row(1)[2]; got != 0xFFFFFFFF {
		t.Errorf("pixel (2, 1) = %#08x", got)
	}
	if got := s.row(0)[0]; got != 0 {
		t.Errorf("pixel (0, 0) = %#08x", got)
	}
}

func TestSurfaceSetImageSubImage(t *testing.T) {
	// sub-images have a nonzero bounds origin
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.SetRGBA(2, 2, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF})
	sub := img.SubImage(image.Rect(2, 2, 4, 4)).(*image.RGBA)

	s := NewSurface(2, 2)
	s.SetImage(sub)
	if got := s.row(0)[0]; got != 0xFF102030 {
		t.Errorf("pixel (0, 0) = %#08x", got)
	}
}

func TestSurfaceSetImageGeneric(t *testing.T) {
	// non-RGBA images go through the color model and arrive
	// premultiplied
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 128})

	s := NewSurface(1, 1)
	s.SetImage(img)
	if got := s.row(0)[0]; got != 0x80800000 {
		t.Errorf("pixel = %#08x, want 0x80800000", got)
	}
}

func TestSurfaceImageRoundTrip(t *testing.T) {
	s := NewSurface(5, 4)
	for i := range s.Data() {
		s.Data()[i] = RGBA(0.3, 0.5, 0.7, float64(i)/20).premul()
	}
	s2 := NewSurfaceFromImage(s.Image())
	if !slices.Equal(s.Data(), s2.Data()) {
		t.Error("pixels changed in image round trip")
	}
}
