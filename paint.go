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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Paint describes how the interior of a shape is colored.  The
// implementations are [Color], [*LinearGradient], [*RadialGradient]
// and [*Texture].
type Paint interface {
	isPaint()
}

func (Color) isPaint()           {}
func (*LinearGradient) isPaint() {}
func (*RadialGradient) isPaint() {}
func (*Texture) isPaint()        {}

// SpreadMethod determines how a gradient continues outside the
// [0, 1] range of its stop offsets.
type SpreadMethod uint8

const (
	// SpreadPad extends the gradient with the terminal stop colors.
	SpreadPad SpreadMethod = iota

	// SpreadReflect repeats the gradient, mirrored on every other
	// repetition.
	SpreadReflect

	// SpreadRepeat repeats the gradient.
	SpreadRepeat
)

func (s SpreadMethod) String() string {
	switch s {
	case SpreadPad:
		return "pad"
	case SpreadReflect:
		return "reflect"
	case SpreadRepeat:
		return "repeat"
	}
	return "Invalid"
}

// A Stop is one color position on a gradient.
type Stop struct {
	Offset float64
	Color  Color
}

// A LinearGradient blends colors along the line from Start to End.
type LinearGradient struct {
	Start, End vec.Vec2

	// Stops holds the color stops, sorted by ascending offset.
	Stops []Stop

	Spread SpreadMethod

	// Matrix maps gradient coordinates to user coordinates.
	Matrix Matrix
}

// NewLinearGradient returns a gradient along the line from start to
// end, with no stops and pad spread.
func NewLinearGradient(start, end vec.Vec2) *LinearGradient {
	return &LinearGradient{
		Start:  start,
		End:    end,
		Matrix: Identity(),
	}
}

// AddStop adds a color stop.  The offset is clamped to [0, 1], and
// the stop is inserted so that the stop list stays sorted.
func (g *LinearGradient) AddStop(offset float64, c Color) {
	g.Stops = insertStop(g.Stops, offset, c)
}

// A RadialGradient blends colors between two circles: the focal
// circle at offset 0 and the end circle at offset 1.  Setting the
// focal point to the center and the focal radius to zero gives a
// simple radial gradient.
type RadialGradient struct {
	Center vec.Vec2
	Radius float64

	Focal       vec.Vec2
	FocalRadius float64

	// Stops holds the color stops, sorted by ascending offset.
	Stops []Stop

	Spread SpreadMethod

	// Matrix maps gradient coordinates to user coordinates.
	Matrix Matrix
}

// NewRadialGradient returns a two-circle radial gradient.  Negative
// radii are treated as zero.
func NewRadialGradient(center vec.Vec2, radius float64, focal vec.Vec2, focalRadius float64) *RadialGradient {
	return &RadialGradient{
		Center:      center,
		Radius:      max(radius, 0),
		Focal:       focal,
		FocalRadius: max(focalRadius, 0),
		Matrix:      Identity(),
	}
}

// AddStop adds a color stop.  The offset is clamped to [0, 1], and
// the stop is inserted so that the stop list stays sorted.
func (g *RadialGradient) AddStop(offset float64, c Color) {
	g.Stops = insertStop(g.Stops, offset, c)
}

func insertStop(stops []Stop, offset float64, c Color) []Stop {
	offset = clamp01(offset)
	i := len(stops)
	for i > 0 && stops[i-1].Offset > offset {
		i--
	}
	return slices.Insert(stops, i, Stop{Offset: offset, Color: c})
}

// TextureKind selects how a texture repeats.
type TextureKind uint8

const (
	// TexturePlain draws the texture once; pixels outside are
	// transparent.
	TexturePlain TextureKind = iota

	// TextureTiled repeats the texture in both directions.
	TextureTiled
)

func (k TextureKind) String() string {
	switch k {
	case TexturePlain:
		return "plain"
	case TextureTiled:
		return "tiled"
	}
	return "Invalid"
}

// A Texture paints with the pixels of another surface.
type Texture struct {
	Surface *Surface
	Kind    TextureKind

	// Opacity scales the texture's alpha.  Values are clamped to
	// [0, 1].
	Opacity float64

	// Matrix maps texture coordinates to user coordinates.
	Matrix Matrix
}

// NewTexture returns a fully opaque texture paint for the given
// surface.
func NewTexture(surface *Surface, kind TextureKind) *Texture {
	return &Texture{
		Surface: surface,
		Kind:    kind,
		Opacity: 1,
		Matrix:  Identity(),
	}
}
