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
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// A FontFace provides glyph outlines and metrics from a TrueType or
// OpenType font.  Glyph coordinates follow the canvas convention:
// the origin is on the baseline and y grows downwards.
//
// A FontFace holds scratch buffers and is not safe for concurrent
// use.  Use one face per goroutine, or serialize access externally.
type FontFace struct {
	font *sfnt.Font
	buf  sfnt.Buffer
}

// ParseFontFace parses an OpenType font from memory.  The face keeps
// a reference to data, which must not be modified afterwards.
func ParseFontFace(data []byte) (*FontFace, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	return &FontFace{font: f}, nil
}

// LoadFontFace reads an OpenType font from a file.
func LoadFontFace(filename string) (*FontFace, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseFontFace(data)
}

// FontMetrics describes a font face scaled to a given size.  Ascent
// and Descent are positive distances from the baseline; LineGap is
// the extra space between consecutive lines.  BBox is the union of
// all glyph extents, with y growing downwards, so its top edge is
// usually negative.
type FontMetrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
	BBox    rect.Rect
}

// GlyphMetrics describes a single glyph at a given size.  The BBox is
// relative to the glyph origin on the baseline, with y growing
// downwards.  For glyphs without an outline the BBox is the zero
// rectangle.
type GlyphMetrics struct {
	Advance     float64
	LeftBearing float64
	BBox        rect.Rect
}

func sizeToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(size * 64))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Metrics returns the face metrics at the given size.  Non-positive
// sizes yield zero metrics.
func (f *FontFace) Metrics(size float64) FontMetrics {
	if size <= 0 {
		return FontMetrics{}
	}
	ppem := sizeToFixed(size)

	var fm FontMetrics
	if m, err := f.font.Metrics(&f.buf, ppem, font.HintingNone); err == nil {
		fm.Ascent = fromFixed(m.Ascent)
		fm.Descent = fromFixed(m.Descent)
		fm.LineGap = fromFixed(m.Height - m.Ascent - m.Descent)
	}
	if b, err := f.font.Bounds(&f.buf, ppem, font.HintingNone); err == nil {
		fm.BBox = rect.Rect{
			LLx: fromFixed(b.Min.X),
			LLy: fromFixed(b.Min.Y),
			URx: fromFixed(b.Max.X),
			URy: fromFixed(b.Max.Y),
		}
	}
	return fm
}

// glyphIndex maps a rune to its glyph, or 0 if the font has no glyph
// for it.
func (f *FontFace) glyphIndex(r rune) sfnt.GlyphIndex {
	gi, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return gi
}

// GlyphMetrics returns the metrics of the glyph for r at the given
// size.  Runes the font cannot display yield zero metrics.
func (f *FontFace) GlyphMetrics(size float64, r rune) GlyphMetrics {
	if size <= 0 {
		return GlyphMetrics{}
	}
	ppem := sizeToFixed(size)
	gi := f.glyphIndex(r)
	if gi == 0 {
		return GlyphMetrics{}
	}

	var gm GlyphMetrics
	adv, err := f.font.GlyphAdvance(&f.buf, gi, ppem, font.HintingNone)
	if err != nil {
		return GlyphMetrics{}
	}
	gm.Advance = fromFixed(adv)

	segs, err := f.font.LoadGlyph(&f.buf, gi, ppem, nil)
	if err != nil || len(segs) == 0 {
		return gm
	}
	first := true
	for _, seg := range segs {
		numArgs := 1
		switch seg.Op {
		case sfnt.SegmentOpQuadTo:
			numArgs = 2
		case sfnt.SegmentOpCubeTo:
			numArgs = 3
		}
		for i := range numArgs {
			x := fromFixed(seg.Args[i].X)
			y := fromFixed(seg.Args[i].Y)
			if first {
				gm.BBox = rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
				first = false
			} else {
				gm.BBox.LLx = min(gm.BBox.LLx, x)
				gm.BBox.LLy = min(gm.BBox.LLy, y)
				gm.BBox.URx = max(gm.BBox.URx, x)
				gm.BBox.URy = max(gm.BBox.URy, y)
			}
		}
	}
	gm.LeftBearing = gm.BBox.LLx
	return gm
}

// appendGlyph appends the outline of the glyph for r to p, with the
// baseline origin at pen, and returns the advance width.  TrueType
// quadratic segments are converted to cubics by QuadTo.  Runes the
// font cannot display contribute nothing and return 0.
func (f *FontFace) appendGlyph(p *Path, size float64, pen vec.Vec2, r rune) float64 {
	if size <= 0 {
		return 0
	}
	ppem := sizeToFixed(size)
	gi := f.glyphIndex(r)
	if gi == 0 {
		return 0
	}
	adv, err := f.font.GlyphAdvance(&f.buf, gi, ppem, font.HintingNone)
	if err != nil {
		return 0
	}

	segs, err := f.font.LoadGlyph(&f.buf, gi, ppem, nil)
	if err != nil {
		return fromFixed(adv)
	}
	at := func(pt fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{
			X: pen.X + fromFixed(pt.X),
			Y: pen.Y + fromFixed(pt.Y),
		}
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(at(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p.LineTo(at(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p.QuadTo(at(seg.Args[0]), at(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p.CubeTo(at(seg.Args[0]), at(seg.Args[1]), at(seg.Args[2]))
		}
	}
	if open {
		p.Close()
	}
	return fromFixed(adv)
}
