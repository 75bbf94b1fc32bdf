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
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestDecodeText(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		enc  TextEncoding
		want string
	}{
		{"utf8", []byte("héllo"), TextEncodingUTF8, "héllo"},
		{"utf8 invalid", []byte{0x41, 0xFF, 0x42}, TextEncodingUTF8, "A�B"},
		{"utf16 default be", []byte{0x00, 0x41, 0x00, 0x42}, TextEncodingUTF16, "AB"},
		{"utf16 le bom", []byte{0xFF, 0xFE, 0x41, 0x00, 0x42, 0x00}, TextEncodingUTF16, "AB"},
		{"utf16 be bom", []byte{0xFE, 0xFF, 0x00, 0x41}, TextEncodingUTF16, "A"},
		{"utf32 default be", []byte{0, 0, 0, 0x41}, TextEncodingUTF32, "A"},
		{"utf32 le bom", []byte{0xFF, 0xFE, 0, 0, 0x41, 0, 0, 0}, TextEncodingUTF32, "A"},
		{"latin1", []byte{0x41, 0xE9}, TextEncodingLatin1, "Aé"},
		{"empty", nil, TextEncodingUTF8, ""},
	}
	for _, c := range cases {
		got, err := DecodeText(c.data, c.enc)
		if err != nil {
			t.Errorf("%s: %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, got, c.want)
		}
	}

	if _, err := DecodeText([]byte("x"), TextEncoding(99)); err == nil {
		t.Error("expected error for unknown encoding")
	}
}

func TestCanvasFontState(t *testing.T) {
	c := New(NewSurface(4, 4))
	if c.FontFace() != nil {
		t.Error("unexpected initial font face")
	}
	if c.FontSize() != 12 {
		t.Errorf("initial font size = %g", c.FontSize())
	}

	face := testFace()
	c.SetFont(face, 24)
	if c.FontFace() != face || c.FontSize() != 24 {
		t.Errorf("got %p at %g", c.FontFace(), c.FontSize())
	}

	// the font is part of the saved state
	c.Save()
	c.SetFontSize(48)
	c.SetFontFace(nil)
	c.Restore()
	if c.FontFace() != face || c.FontSize() != 24 {
		t.Errorf("after restore: %p at %g", c.FontFace(), c.FontSize())
	}
}

func TestAddText(t *testing.T) {
	c := New(NewSurface(100, 100))
	c.SetFont(testFace(), 50)

	adv1 := c.AddText("H", vec.Vec2{X: 5, Y: 80})
	if adv1 <= 0 {
		t.Fatalf("advance = %g", adv1)
	}
	c.NewPath()

	adv2 := c.AddText("HH", vec.Vec2{X: 5, Y: 80})
	if math.Abs(adv2-2*adv1) > 1e-9 {
		t.Errorf("advance of %q = %g, want %g", "HH", adv2, 2*adv1)
	}

	// without a face, nothing happens
	c.NewPath()
	c.SetFontFace(nil)
	if adv := c.AddText("H", vec.Vec2{}); adv != 0 {
		t.Errorf("advance without face = %g", adv)
	}
	if c.CurrentPoint() != (vec.Vec2{}) {
		t.Error("path changed without face")
	}
}

func TestTextExtents(t *testing.T) {
	c := New(NewSurface(10, 10))
	c.SetFont(testFace(), 100)

	adv, ext := c.TextExtents("H")
	gm := c.FontFace().GlyphMetrics(100, 'H')
	if adv != gm.Advance {
		t.Errorf("advance %g, glyph advance %g", adv, gm.Advance)
	}
	if ext != gm.BBox {
		t.Errorf("extents %+v, glyph bbox %+v", ext, gm.BBox)
	}

	// spaces extend the advance but not the inked area
	adv2, ext2 := c.TextExtents("H ")
	if adv2 <= adv {
		t.Errorf("advance with space = %g", adv2)
	}
	if ext2 != ext {
		t.Errorf("extents with space %+v", ext2)
	}

	adv3, ext3 := c.TextExtents("HH")
	if math.Abs(adv3-2*adv) > 1e-9 {
		t.Errorf("advance = %g", adv3)
	}
	if ext3.URx <= ext.URx || ext3.LLy != ext.LLy || ext3.URy != ext.URy {
		t.Errorf("extents %+v", ext3)
	}

	if adv, ext := c.TextExtents(""); adv != 0 || ext != (rect.Rect{}) {
		t.Errorf("empty text: %g, %+v", adv, ext)
	}

	c.SetFontFace(nil)
	if adv, ext := c.TextExtents("H"); adv != 0 || ext != (rect.Rect{}) {
		t.Errorf("no face: %g, %+v", adv, ext)
	}
}

func TestFillText(t *testing.T) {
	s := NewSurface(60, 60)
	c := New(s)
	c.SetFont(testFace(), 40)

	adv := c.FillText("I", vec.Vec2{X: 10, Y: 50})
	if adv <= 0 {
		t.Fatalf("advance = %g", adv)
	}
	if c.CurrentPoint() != (vec.Vec2{}) {
		t.Error("FillText kept the path")
	}

	var inked int
	for _, p := range s.Data() {
		if p>>24 > 128 {
			inked++
		}
	}
	if inked == 0 {
		t.Error("no pixels drawn")
	}

	// without a face, nothing is drawn
	s2 := NewSurface(60, 60)
	c2 := New(s2)
	if adv := c2.FillText("I", vec.Vec2{X: 10, Y: 50}); adv != 0 {
		t.Errorf("advance without face = %g", adv)
	}
	for i, p := range s2.Data() {
		if p != 0 {
			t.Fatalf("pixel %d = %#08x", i, p)
		}
	}
}

func TestCanvasFontMetrics(t *testing.T) {
	c := New(NewSurface(4, 4))
	if got := c.FontMetrics(); got != (FontMetrics{}) {
		t.Errorf("metrics without face: %+v", got)
	}

	c.SetFont(testFace(), 16)
	got := c.FontMetrics()
	want := testFace().Metrics(16)
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
