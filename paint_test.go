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
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestAddStop(t *testing.T) {
	g := NewLinearGradient(vec.Vec2{}, vec.Vec2{X: 1})
	g.AddStop(0.5, Red)
	g.AddStop(0.25, Green)
	g.AddStop(2, White)   // clamped to 1
	g.AddStop(-1, Black)  // clamped to 0
	g.AddStop(0.25, Blue) // same offset, inserted after

	wantOffsets := []float64{0, 0.25, 0.25, 0.5, 1}
	wantColors := []Color{Black, Green, Blue, Red, White}
	if len(g.Stops) != len(wantOffsets) {
		t.Fatalf("got %d stops", len(g.Stops))
	}
	for i, s := range g.Stops {
		if s.Offset != wantOffsets[i] || s.Color != wantColors[i] {
			t.Errorf("stop %d = {%g, %v}, want {%g, %v}",
				i, s.Offset, s.Color, wantOffsets[i], wantColors[i])
		}
	}
}

func TestGradientColorAt(t *testing.T) {
	lg := NewLinearGradient(vec.Vec2{}, vec.Vec2{X: 1})
	lg.AddStop(0, Black)
	lg.AddStop(1, White)

	var g gradientSampler
	if !g.initLinear(lg, Identity()) {
		t.Fatal("initLinear failed")
	}
	cases := []struct {
		t    float64
		want uint32
	}{
		{0, 0xFF000000},
		{1, 0xFFFFFFFF},
		{0.5, 0xFF808080},
		{-1, 0xFF000000}, // pad
		{2, 0xFFFFFFFF},  // pad
	}
	for _, c := range cases {
		if got := g.colorAt(c.t); got != c.want {
			t.Errorf("pad: colorAt(%g) = %#08x, want %#08x", c.t, got, c.want)
		}
	}

	lg.Spread = SpreadRepeat
	g.initLinear(lg, Identity())
	cases = []struct {
		t    float64
		want uint32
	}{
		{1.25, 0xFF404040},
		{-0.25, 0xFFBFBFBF},
	}
	for _, c := range cases {
		if got := g.colorAt(c.t); got != c.want {
			t.Errorf("repeat: colorAt(%g) = %#08x, want %#08x", c.t, got, c.want)
		}
	}

	lg.Spread = SpreadReflect
	g.initLinear(lg, Identity())
	cases = []struct {
		t    float64
		want uint32
	}{
		{1.25, 0xFFBFBFBF}, // mirrored on the second run
		{-0.5, 0xFF808080},
	}
	for _, c := range cases {
		if got := g.colorAt(c.t); got != c.want {
			t.Errorf("reflect: colorAt(%g) = %#08x, want %#08x", c.t, got, c.want)
		}
	}
}

func TestGradientHardStop(t *testing.T) {
	// two stops at the same offset give an abrupt color change
	lg := NewLinearGradient(vec.Vec2{}, vec.Vec2{X: 1})
	lg.AddStop(0.5, Green)
	lg.AddStop(0.5, Blue)

	var g gradientSampler
	if !g.initLinear(lg, Identity()) {
		t.Fatal("initLinear failed")
	}
	if got := g.colorAt(0.3); got != Green.premul() {
		t.Errorf("below: %#08x", got)
	}
	if got := g.colorAt(0.5); got != Green.premul() {
		t.Errorf("at stop: %#08x", got)
	}
	if got := g.colorAt(0.7); got != Blue.premul() {
		t.Errorf("above: %#08x", got)
	}
}

func TestGradientInit(t *testing.T) {
	lg := NewLinearGradient(vec.Vec2{}, vec.Vec2{X: 1})
	var g gradientSampler
	if g.initLinear(lg, Identity()) {
		t.Error("gradient without stops must not draw")
	}
	lg.AddStop(0, Black)
	if g.initLinear(lg, Scale(0, 0)) {
		t.Error("singular transform must not draw")
	}
	lg.Matrix = Matrix{}
	if g.initLinear(lg, Identity()) {
		t.Error("singular gradient matrix must not draw")
	}

	rg := NewRadialGradient(vec.Vec2{}, 10, vec.Vec2{}, 0)
	if g.initRadial(rg, Identity()) {
		t.Error("radial gradient without stops must not draw")
	}
	rg.AddStop(0, Black)
	if !g.initRadial(rg, Identity()) {
		t.Error("initRadial failed")
	}
}

func TestLinearGradientFetch(t *testing.T) {
	lg := NewLinearGradient(vec.Vec2{}, vec.Vec2{X: 4})
	lg.AddStop(0, Black)
	lg.AddStop(1, White)

	var g gradientSampler
	if !g.initLinear(lg, Identity()) {
		t.Fatal("initLinear failed")
	}

	// samples are taken at pixel centers
	dst := make([]uint32, 4)
	g.fetch(dst, 0, 0)
	want := []uint32{0xFF202020, 0xFF606060, 0xFF9F9F9F, 0xFFDFDFDF}
	if !slices.Equal(dst, want) {
		t.Errorf("got %08x, want %08x", dst, want)
	}

	// the transform moves the sampling position
	if !g.initLinear(lg, Translate(-2, 0)) {
		t.Fatal("initLinear failed")
	}
	g.fetch(dst[:2], 0, 0)
	if dst[0] != 0xFF9F9F9F || dst[1] != 0xFFDFDFDF {
		t.Errorf("translated fetch = %08x", dst[:2])
	}
}

func TestDegenerateLinearGradient(t *testing.T) {
	lg := NewLinearGradient(vec.Vec2{X: 3, Y: 3}, vec.Vec2{X: 3, Y: 3})
	lg.AddStop(0, Black)
	lg.AddStop(1, White)

	var g gradientSampler
	if !g.initLinear(lg, Identity()) {
		t.Fatal("initLinear failed")
	}
	dst := make([]uint32, 2)
	g.fetch(dst, 0, 0)
	if dst[0] != 0xFFFFFFFF || dst[1] != 0xFFFFFFFF {
		t.Errorf("pad spread: got %08x, want last stop", dst)
	}

	lg.Spread = SpreadRepeat
	g.initLinear(lg, Identity())
	g.fetch(dst, 0, 0)
	if dst[0] != 0 || dst[1] != 0 {
		t.Errorf("repeat spread: got %08x, want transparent", dst)
	}
}

func TestRadialT(t *testing.T) {
	rg := NewRadialGradient(vec.Vec2{}, 10, vec.Vec2{}, 0)
	rg.AddStop(0, Black)
	rg.AddStop(1, White)

	var g gradientSampler
	if !g.initRadial(rg, Identity()) {
		t.Fatal("initRadial failed")
	}

	cases := []struct {
		x, y float64
		want float64
	}{
		{0, 0, 0},
		{5, 0, 0.5},
		{0, -10, 1},
		{15, 0, 1.5}, // outside the end circle
	}
	for _, c := range cases {
		got, ok := g.radialT(c.x, c.y)
		if !ok {
			t.Errorf("radialT(%g, %g): no solution", c.x, c.y)
			continue
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("radialT(%g, %g) = %g, want %g", c.x, c.y, got, c.want)
		}
	}
}

func TestRadialGradientFetch(t *testing.T) {
	rg := NewRadialGradient(vec.Vec2{X: 0.5, Y: 0.5}, 8, vec.Vec2{X: 0.5, Y: 0.5}, 0)
	rg.AddStop(0, Black)
	rg.AddStop(1, White)

	var g gradientSampler
	if !g.initRadial(rg, Identity()) {
		t.Fatal("initRadial failed")
	}

	// the first pixel center coincides with the gradient center
	dst := make([]uint32, 5)
	g.fetch(dst, 0, 0)
	if dst[0] != 0xFF000000 {
		t.Errorf("center pixel = %#08x", dst[0])
	}
	// t = 4/8 at distance 4
	if dst[4] != 0xFF808080 {
		t.Errorf("pixel at distance 4 = %#08x", dst[4])
	}
	for i := 1; i < len(dst); i++ {
		if dst[i] <= dst[i-1] {
			t.Errorf("gradient not increasing at %d: %08x", i, dst)
		}
	}
}

func TestTextureSampler(t *testing.T) {
	src := NewSurface(2, 2)
	src.row(0)[0] = Red.premul()
	src.row(0)[1] = Green.premul()
	src.row(1)[0] = Blue.premul()
	src.row(1)[1] = White.premul()

	var ts textureSampler
	tex := NewTexture(src, TexturePlain)
	if !ts.init(tex, Identity()) {
		t.Fatal("init failed")
	}
	dst := make([]uint32, 4)
	ts.fetch(dst, -1, 0)
	want := []uint32{0, Red.premul(), Green.premul(), 0}
	if !slices.Equal(dst, want) {
		t.Errorf("plain: got %08x, want %08x", dst, want)
	}

	tex.Kind = TextureTiled
	if !ts.init(tex, Identity()) {
		t.Fatal("init failed")
	}
	ts.fetch(dst, -1, 1)
	want = []uint32{White.premul(), Blue.premul(), White.premul(), Blue.premul()}
	if !slices.Equal(dst, want) {
		t.Errorf("tiled: got %08x, want %08x", dst, want)
	}
}

func TestTextureOpacity(t *testing.T) {
	src := NewSurface(1, 1)
	src.row(0)[0] = Red.premul()

	tex := NewTexture(src, TexturePlain)
	tex.Opacity = 0.5

	var ts textureSampler
	if !ts.init(tex, Identity()) {
		t.Fatal("init failed")
	}
	dst := make([]uint32, 1)
	ts.fetch(dst, 0, 0)
	if dst[0] != 0x80800000 {
		t.Errorf("got %#08x, want 0x80800000", dst[0])
	}
}

func TestTextureTransform(t *testing.T) {
	src := NewSurface(2, 1)
	src.row(0)[0] = Red.premul()
	src.row(0)[1] = Green.premul()

	// magnify the texture by two
	tex := NewTexture(src, TexturePlain)
	tex.Matrix = Scale(2, 1)

	var ts textureSampler
	if !ts.init(tex, Identity()) {
		t.Fatal("init failed")
	}
	dst := make([]uint32, 4)
	ts.fetch(dst, 0, 0)
	want := []uint32{Red.premul(), Red.premul(), Green.premul(), Green.premul()}
	if !slices.Equal(dst, want) {
		t.Errorf("got %08x, want %08x", dst, want)
	}
}

func TestTextureInit(t *testing.T) {
	var ts textureSampler
	if ts.init(NewTexture(nil, TexturePlain), Identity()) {
		t.Error("nil surface must not draw")
	}
	if ts.init(NewTexture(NewSurface(0, 5), TexturePlain), Identity()) {
		t.Error("empty surface must not draw")
	}
	if ts.init(NewTexture(NewSurface(2, 2), TexturePlain), Scale(0, 1)) {
		t.Error("singular transform must not draw")
	}
}
