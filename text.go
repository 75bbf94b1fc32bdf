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
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TextEncoding identifies the byte encoding of text data.
type TextEncoding uint8

const (
	// TextEncodingUTF8 is UTF-8.
	TextEncodingUTF8 TextEncoding = iota

	// TextEncodingUTF16 is UTF-16.  A byte order mark selects the
	// endianness; without one, big-endian is assumed.
	TextEncodingUTF16

	// TextEncodingUTF32 is UTF-32.  A byte order mark selects the
	// endianness; without one, big-endian is assumed.
	TextEncodingUTF32

	// TextEncodingLatin1 is ISO 8859-1.
	TextEncodingLatin1
)

// DecodeText converts text data in the given encoding to a Go string.
// Invalid input bytes are replaced with U+FFFD.
func DecodeText(data []byte, enc TextEncoding) (string, error) {
	var dec *encoding.Decoder
	switch enc {
	case TextEncodingUTF8:
		dec = unicode.UTF8.NewDecoder()
	case TextEncodingUTF16:
		dec = unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	case TextEncodingUTF32:
		dec = utf32.UTF32(utf32.BigEndian, utf32.UseBOM).NewDecoder()
	case TextEncodingLatin1:
		dec = charmap.ISO8859_1.NewDecoder()
	default:
		return "", fmt.Errorf("unknown text encoding %d", enc)
	}
	out, err := dec.Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// SetFont sets the font face and size used by the text operations.
func (c *Canvas) SetFont(face *FontFace, size float64) {
	c.state.face = face
	c.state.fontSize = size
}

// SetFontFace sets the font face used by the text operations.
func (c *Canvas) SetFontFace(face *FontFace) {
	c.state.face = face
}

// FontFace returns the font face in effect, or nil if none has been
// set.
func (c *Canvas) FontFace() *FontFace {
	return c.state.face
}

// SetFontSize sets the font size used by the text operations.
func (c *Canvas) SetFontSize(size float64) {
	c.state.fontSize = size
}

// FontSize returns the font size in effect.
func (c *Canvas) FontSize() float64 {
	return c.state.fontSize
}

// AddText appends the outlines of text to the current path, with the
// baseline origin of the first glyph at pos, and returns the total
// advance width.  Without a font face, AddText does nothing.
func (c *Canvas) AddText(text string, pos vec.Vec2) float64 {
	face := c.state.face
	if face == nil || c.state.fontSize <= 0 {
		return 0
	}
	pen := pos
	for _, r := range text {
		pen.X += face.appendGlyph(c.path, c.state.fontSize, pen, r)
	}
	return pen.X - pos.X
}

// FillText fills text with the current paint, with the baseline
// origin at pos.  The current path is discarded.  FillText returns
// the total advance width.
func (c *Canvas) FillText(text string, pos vec.Vec2) float64 {
	c.path.Reset()
	advance := c.AddText(text, pos)
	c.Fill()
	return advance
}

// StrokeText strokes the outlines of text, with the baseline origin
// at pos.  The current path is discarded.  StrokeText returns the
// total advance width.
func (c *Canvas) StrokeText(text string, pos vec.Vec2) float64 {
	c.path.Reset()
	advance := c.AddText(text, pos)
	c.Stroke()
	return advance
}

// ClipText intersects the clip region with the outlines of text.  The
// current path is discarded.  ClipText returns the total advance
// width.
func (c *Canvas) ClipText(text string, pos vec.Vec2) float64 {
	c.path.Reset()
	advance := c.AddText(text, pos)
	c.Clip()
	return advance
}

// TextExtents returns the total advance width of text and the
// bounding box of its inked area, relative to the text origin.
// Without a font face, both results are zero.
func (c *Canvas) TextExtents(text string) (advance float64, extents rect.Rect) {
	face := c.state.face
	if face == nil || c.state.fontSize <= 0 {
		return 0, rect.Rect{}
	}
	first := true
	for _, r := range text {
		gm := face.GlyphMetrics(c.state.fontSize, r)
		if gm.BBox != (rect.Rect{}) {
			box := gm.BBox
			box.LLx += advance
			box.URx += advance
			if first {
				extents = box
				first = false
			} else {
				extents.LLx = min(extents.LLx, box.LLx)
				extents.LLy = min(extents.LLy, box.LLy)
				extents.URx = max(extents.URx, box.URx)
				extents.URy = max(extents.URy, box.URy)
			}
		}
		advance += gm.Advance
	}
	return advance, extents
}

// FontMetrics returns the metrics of the current font face at the
// current font size.  Without a font face, the metrics are zero.
func (c *Canvas) FontMetrics() FontMetrics {
	face := c.state.face
	if face == nil {
		return FontMetrics{}
	}
	return face.Metrics(c.state.fontSize)
}
