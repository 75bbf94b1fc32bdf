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
)

func colorNear(a, b Color, eps float64) bool {
	return math.Abs(a.R-b.R) <= eps &&
		math.Abs(a.G-b.G) <= eps &&
		math.Abs(a.B-b.B) <= eps &&
		math.Abs(a.A-b.A) <= eps
}

func TestParseColor(t *testing.T) {
	type testCase struct {
		in       string
		want     Color
		consumed int
	}
	cases := []testCase{
		{"red", Red, 3},
		{" red", Red, 4},
		{"RED", Red, 3},
		{"rebeccapurple", RGBA8(0x66, 0x33, 0x99, 255), 13},
		{"transparent", Transparent, 11},
		{"red, blue", Red, 3},

		{"#f00", Red, 4},
		{"#F00", Red, 4},
		{"#ff0000", Red, 7},
		{"#f008", RGBA(1, 0, 0, 136.0/255), 5},
		{"#ff000080", RGBA(1, 0, 0, 128.0/255), 9},
		{"#1a2b3c", RGBA8(0x1a, 0x2b, 0x3c, 255), 7},

		{"rgb(255, 0, 0)", Red, 14},
		{"rgb(255,0,0)", Red, 12},
		{"rgba(255, 0, 0, 0.5)", RGBA(1, 0, 0, 0.5), 20},
		{"rgb(100%, 0%, 0%)", Red, 17},
		{"rgba(0, 0, 255, 50%)", RGBA(0, 0, 1, 0.5), 20},
		{"rgb(300, -20, 0)", RGB(1, 0, 0), 16},

		{"hsl(0, 100%, 50%)", RGB(1, 0, 0), 17},
		{"hsl(120, 100%, 25%)", RGB(0, 0.5, 0), 19},
		{"hsl(240, 100%, 50%)", RGB(0, 0, 1), 19},
		{"hsl(360, 100%, 50%)", RGB(1, 0, 0), 19},
		{"hsl(0, 0%, 50%)", RGB(0.5, 0.5, 0.5), 15},
		{"hsl(0, 100, 50)", RGB(1, 0, 0), 15},
		{"hsla(0, 100%, 50%, 0.25)", RGBA(1, 0, 0, 0.25), 24},

		{"notacolor", Color{}, 0},
		{"", Color{}, 0},
		{"#zz0000", Color{}, 0},
		{"#ff000", Color{}, 0},
		{"rgb(1, 2", Color{}, 0},
		{"rgb(1, 2, 3", Color{}, 0},
	}
	for _, c := range cases {
		got, consumed := ParseColor(c.in)
		if consumed != c.consumed {
			t.Errorf("ParseColor(%q): consumed %d, want %d",
				c.in, consumed, c.consumed)
			continue
		}
		if !colorNear(got, c.want, 1e-9) {
			t.Errorf("ParseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestColorPremultiply(t *testing.T) {
	cases := []struct {
		in   Color
		want uint32
	}{
		{White, 0xFFFFFFFF},
		{Black, 0xFF000000},
		{Transparent, 0x00000000},
		{Red, 0xFFFF0000},
		{RGBA(1, 0, 0, 0.5), 0x80800000},
		{RGBA(2, -1, 0.5, 1), 0xFFFF0080},
	}
	for _, c := range cases {
		if got := c.in.premul(); got != c.want {
			t.Errorf("%v.premul() = %#08x, want %#08x", c.in, got, c.want)
		}
	}
}

func TestColorUnpremultiply(t *testing.T) {
	if got := unpremul(0); got != (Color{}) {
		t.Errorf("unpremul(0) = %v, want zero colour", got)
	}

	// Round trip through the premultiplied representation must be
	// accurate to within one quantisation step per channel.
	cases := []Color{
		White,
		Black,
		Red,
		RGBA(0.2, 0.4, 0.6, 0.8),
		RGBA(1, 1, 1, 1.0/255),
		RGBA(0.5, 0.25, 0.125, 0.5),
	}
	for _, c := range cases {
		got := unpremul(c.premul())
		if !colorNear(got, c, 1.0/255+1e-9) {
			t.Errorf("unpremul(premul(%v)) = %v", c, got)
		}
	}
}

func TestColorConstructors(t *testing.T) {
	if got := RGB(0.1, 0.2, 0.3); got != (Color{0.1, 0.2, 0.3, 1}) {
		t.Errorf("RGB = %v", got)
	}
	if got := RGBA8(255, 128, 0, 64); !colorNear(got, Color{1, 128.0 / 255, 0, 64.0 / 255}, 1e-9) {
		t.Errorf("RGBA8 = %v", got)
	}
}
