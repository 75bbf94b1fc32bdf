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
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// Color is a color with straight (non-premultiplied) components.
// All components are in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color with the given components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color with the given components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBA8 returns a color from 8-bit components.
func RGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// Frequently used colors.
var (
	Transparent = Color{0, 0, 0, 0}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Cyan        = Color{0, 1, 1, 1}
	Magenta     = Color{1, 0, 1, 1}
)

// premul returns the color as a premultiplied ARGB pixel word.
// Components are clamped to [0, 1] first.
func (c Color) premul() uint32 {
	a := clamp01(c.A)
	r := clamp01(c.R) * a
	g := clamp01(c.G) * a
	b := clamp01(c.B) * a
	return uint32(a*255+0.5)<<24 |
		uint32(r*255+0.5)<<16 |
		uint32(g*255+0.5)<<8 |
		uint32(b*255+0.5)
}

// unpremul converts a premultiplied ARGB pixel word back to a Color
// with straight components.  Zero alpha yields transparent black.
func unpremul(p uint32) Color {
	a := p >> 24
	if a == 0 {
		return Color{}
	}
	return Color{
		R: float64(p>>16&0xff) / float64(a),
		G: float64(p>>8&0xff) / float64(a),
		B: float64(p&0xff) / float64(a),
		A: float64(a) / 255,
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// ParseColor parses a CSS color at the beginning of s and returns it
// together with the number of bytes consumed.  Supported forms are
// named colors, "transparent", "#rgb", "#rgba", "#rrggbb", "#rrggbbaa",
// "rgb(...)", "rgba(...)", "hsl(...)"  and "hsla(...)".  On failure the
// consumed count is 0.
func ParseColor(s string) (Color, int) {
	i := skipSpace(s, 0)
	if i >= len(s) {
		return Color{}, 0
	}

	if s[i] == '#' {
		return parseHexColor(s, i)
	}

	j := i
	for j < len(s) && isLetter(s[j]) {
		j++
	}
	if j == i {
		return Color{}, 0
	}
	name := strings.ToLower(s[i:j])

	k := skipSpace(s, j)
	if k < len(s) && s[k] == '(' {
		switch name {
		case "rgb", "rgba":
			return parseRGBFunc(s, k+1)
		case "hsl", "hsla":
			return parseHSLFunc(s, k+1)
		}
		return Color{}, 0
	}

	if name == "transparent" {
		return Transparent, j
	}
	if v, ok := cssColors[name]; ok {
		return RGBA8(uint8(v>>16), uint8(v>>8), uint8(v), 255), j
	}
	return Color{}, 0
}

func parseHexColor(s string, i int) (Color, int) {
	j := i + 1
	for j < len(s) && isHexDigit(s[j]) {
		j++
	}
	var r, g, b uint8
	a := uint8(255)
	switch j - i - 1 {
	case 3:
		r = hexVal(s[i+1]) * 17
		g = hexVal(s[i+2]) * 17
		b = hexVal(s[i+3]) * 17
	case 4:
		r = hexVal(s[i+1]) * 17
		g = hexVal(s[i+2]) * 17
		b = hexVal(s[i+3]) * 17
		a = hexVal(s[i+4]) * 17
	case 6:
		r = hexVal(s[i+1])<<4 | hexVal(s[i+2])
		g = hexVal(s[i+3])<<4 | hexVal(s[i+4])
		b = hexVal(s[i+5])<<4 | hexVal(s[i+6])
	case 8:
		r = hexVal(s[i+1])<<4 | hexVal(s[i+2])
		g = hexVal(s[i+3])<<4 | hexVal(s[i+4])
		b = hexVal(s[i+5])<<4 | hexVal(s[i+6])
		a = hexVal(s[i+7])<<4 | hexVal(s[i+8])
	default:
		return Color{}, 0
	}
	return RGBA8(r, g, b, a), j
}

// parseColorComponent reads one numeric component, optionally followed
// by a percent sign.  The returned value is scaled so that both "255"
// and "100%" map to 1.0.
func parseColorComponent(s string, i int) (float64, int, bool) {
	i = skipSpace(s, i)
	v, n := strconv.ParseFloat([]byte(s[i:]))
	if n == 0 {
		return 0, i, false
	}
	i += n
	if i < len(s) && s[i] == '%' {
		return clamp01(v / 100), i + 1, true
	}
	return clamp01(v / 255), i, true
}

// parseAlphaComponent reads an alpha value, either a number in [0, 1]
// or a percentage.
func parseAlphaComponent(s string, i int) (float64, int, bool) {
	i = skipSpace(s, i)
	v, n := strconv.ParseFloat([]byte(s[i:]))
	if n == 0 {
		return 0, i, false
	}
	i += n
	if i < len(s) && s[i] == '%' {
		return clamp01(v / 100), i + 1, true
	}
	return clamp01(v), i, true
}

func parseRGBFunc(s string, i int) (Color, int) {
	r, i, ok := parseColorComponent(s, i)
	if !ok {
		return Color{}, 0
	}
	g, i, ok := parseColorComponent(s, skipSeparator(s, i))
	if !ok {
		return Color{}, 0
	}
	b, i, ok := parseColorComponent(s, skipSeparator(s, i))
	if !ok {
		return Color{}, 0
	}
	c := Color{R: r, G: g, B: b, A: 1}

	i = skipSpace(s, i)
	if i < len(s) && (s[i] == ',' || s[i] == '/') {
		a, j, ok := parseAlphaComponent(s, i+1)
		if !ok {
			return Color{}, 0
		}
		c.A = a
		i = j
	}
	i = skipSpace(s, i)
	if i >= len(s) || s[i] != ')' {
		return Color{}, 0
	}
	return c, i + 1
}

func parseHSLFunc(s string, i int) (Color, int) {
	i = skipSpace(s, i)
	h, n := strconv.ParseFloat([]byte(s[i:]))
	if n == 0 {
		return Color{}, 0
	}
	i += n

	sat, i, ok := parsePercentComponent(s, skipSeparator(s, i))
	if !ok {
		return Color{}, 0
	}
	light, i, ok := parsePercentComponent(s, skipSeparator(s, i))
	if !ok {
		return Color{}, 0
	}
	c := hslToRGB(h, sat, light)

	i = skipSpace(s, i)
	if i < len(s) && (s[i] == ',' || s[i] == '/') {
		a, j, ok := parseAlphaComponent(s, i+1)
		if !ok {
			return Color{}, 0
		}
		c.A = a
		i = j
	}
	i = skipSpace(s, i)
	if i >= len(s) || s[i] != ')' {
		return Color{}, 0
	}
	return c, i + 1
}

// parsePercentComponent reads a percentage in [0%, 100%].  The percent
// sign is optional; plain numbers use the same 0-100 scale.
func parsePercentComponent(s string, i int) (float64, int, bool) {
	i = skipSpace(s, i)
	v, n := strconv.ParseFloat([]byte(s[i:]))
	if n == 0 {
		return 0, i, false
	}
	i += n
	if i < len(s) && s[i] == '%' {
		i++
	}
	return clamp01(v / 100), i, true
}

// hslToRGB converts hue (degrees), saturation and lightness (both in
// [0, 1]) to an opaque RGB color.
func hslToRGB(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360
	if s == 0 {
		return Color{R: l, G: l, B: l, A: 1}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return Color{
		R: hueToRGB(p, q, h+1.0/3),
		G: hueToRGB(p, q, h),
		B: hueToRGB(p, q, h-1.0/3),
		A: 1,
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func hexVal(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	}
	return c - 'A' + 10
}

// cssColors lists the SVG 1.1 color keywords.
var cssColors = map[string]uint32{
	"aliceblue":            0xf0f8ff,
	"antiquewhite":         0xfaebd7,
	"aqua":                 0x00ffff,
	"aquamarine":           0x7fffd4,
	"azure":                0xf0ffff,
	"beige":                0xf5f5dc,
	"bisque":               0xffe4c4,
	"black":                0x000000,
	"blanchedalmond":       0xffebcd,
	"blue":                 0x0000ff,
	"blueviolet":           0x8a2be2,
	"brown":                0xa52a2a,
	"burlywood":            0xdeb887,
	"cadetblue":            0x5f9ea0,
	"chartreuse":           0x7fff00,
	"chocolate":            0xd2691e,
	"coral":                0xff7f50,
	"cornflowerblue":       0x6495ed,
	"cornsilk":             0xfff8dc,
	"crimson":              0xdc143c,
	"cyan":                 0x00ffff,
	"darkblue":             0x00008b,
	"darkcyan":             0x008b8b,
	"darkgoldenrod":        0xb8860b,
	"darkgray":             0xa9a9a9,
	"darkgreen":            0x006400,
	"darkgrey":             0xa9a9a9,
	"darkkhaki":            0xbdb76b,
	"darkmagenta":          0x8b008b,
	"darkolivegreen":       0x556b2f,
	"darkorange":           0xff8c00,
	"darkorchid":           0x9932cc,
	"darkred":              0x8b0000,
	"darksalmon":           0xe9967a,
	"darkseagreen":         0x8fbc8f,
	"darkslateblue":        0x483d8b,
	"darkslategray":        0x2f4f4f,
	"darkslategrey":        0x2f4f4f,
	"darkturquoise":        0x00ced1,
	"darkviolet":           0x9400d3,
	"deeppink":             0xff1493,
	"deepskyblue":          0x00bfff,
	"dimgray":              0x696969,
	"dimgrey":              0x696969,
	"dodgerblue":           0x1e90ff,
	"firebrick":            0xb22222,
	"floralwhite":          0xfffaf0,
	"forestgreen":          0x228b22,
	"fuchsia":              0xff00ff,
	"gainsboro":            0xdcdcdc,
	"ghostwhite":           0xf8f8ff,
	"gold":                 0xffd700,
	"goldenrod":            0xdaa520,
	"gray":                 0x808080,
	"green":                0x008000,
	"greenyellow":          0xadff2f,
	"grey":                 0x808080,
	"honeydew":             0xf0fff0,
	"hotpink":              0xff69b4,
	"indianred":            0xcd5c5c,
	"indigo":               0x4b0082,
	"ivory":                0xfffff0,
	"khaki":                0xf0e68c,
	"lavender":             0xe6e6fa,
	"lavenderblush":        0xfff0f5,
	"lawngreen":            0x7cfc00,
	"lemonchiffon":         0xfffacd,
	"lightblue":            0xadd8e6,
	"lightcoral":           0xf08080,
	"lightcyan":            0xe0ffff,
	"lightgoldenrodyellow": 0xfafad2,
	"lightgray":            0xd3d3d3,
	"lightgreen":           0x90ee90,
	"lightgrey":            0xd3d3d3,
	"lightpink":            0xffb6c1,
	"lightsalmon":          0xffa07a,
	"lightseagreen":        0x20b2aa,
	"lightskyblue":         0x87cefa,
	"lightslategray":       0x778899,
	"lightslategrey":       0x778899,
	"lightsteelblue":       0xb0c4de,
	"lightyellow":          0xffffe0,
	"lime":                 0x00ff00,
	"limegreen":            0x32cd32,
	"linen":                0xfaf0e6,
	"magenta":              0xff00ff,
	"maroon":               0x800000,
	"mediumaquamarine":     0x66cdaa,
	"mediumblue":           0x0000cd,
	"mediumorchid":         0xba55d3,
	"mediumpurple":         0x9370db,
	"mediumseagreen":       0x3cb371,
	"mediumslateblue":      0x7b68ee,
	"mediumspringgreen":    0x00fa9a,
	"mediumturquoise":      0x48d1cc,
	"mediumvioletred":      0xc71585,
	"midnightblue":         0x191970,
	"mintcream":            0xf5fffa,
	"mistyrose":            0xffe4e1,
	"moccasin":             0xffe4b5,
	"navajowhite":          0xffdead,
	"navy":                 0x000080,
	"oldlace":              0xfdf5e6,
	"olive":                0x808000,
	"olivedrab":            0x6b8e23,
	"orange":               0xffa500,
	"orangered":            0xff4500,
	"orchid":               0xda70d6,
	"palegoldenrod":        0xeee8aa,
	"palegreen":            0x98fb98,
	"paleturquoise":        0xafeeee,
	"palevioletred":        0xdb7093,
	"papayawhip":           0xffefd5,
	"peachpuff":            0xffdab9,
	"peru":                 0xcd853f,
	"pink":                 0xffc0cb,
	"plum":                 0xdda0dd,
	"powderblue":           0xb0e0e6,
	"purple":               0x800080,
	"rebeccapurple":        0x663399,
	"red":                  0xff0000,
	"rosybrown":            0xbc8f8f,
	"royalblue":            0x4169e1,
	"saddlebrown":          0x8b4513,
	"salmon":               0xfa8072,
	"sandybrown":           0xf4a460,
	"seagreen":             0x2e8b57,
	"seashell":             0xfff5ee,
	"sienna":               0xa0522d,
	"silver":               0xc0c0c0,
	"skyblue":              0x87ceeb,
	"slateblue":            0x6a5acd,
	"slategray":            0x708090,
	"slategrey":            0x708090,
	"snow":                 0xfffafa,
	"springgreen":          0x00ff7f,
	"steelblue":            0x4682b4,
	"tan":                  0xd2b48c,
	"teal":                 0x008080,
	"thistle":              0xd8bfd8,
	"tomato":               0xff6347,
	"turquoise":            0x40e0d0,
	"violet":               0xee82ee,
	"wheat":                0xf5deb3,
	"white":                0xffffff,
	"whitesmoke":           0xf5f5f5,
	"yellow":               0xffff00,
	"yellowgreen":          0x9acd32,
}
