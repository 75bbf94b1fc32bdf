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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// clipMask holds per-pixel clip coverage for a whole surface.  A nil
// *clipMask means everything is visible.  Masks are immutable once
// installed in a canvas state, so saved states can share them.
type clipMask struct {
	width, height int
	data          []uint8
}

func newClipMask(width, height int) *clipMask {
	return &clipMask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

func (m *clipMask) row(y int) []uint8 {
	off := y * m.width
	return m.data[off : off+m.width]
}

// writeSpan stores rasteriser coverage into the mask.  It has the
// signature expected by Rasteriser.Fill.
func (m *clipMask) writeSpan(y, x0 int, cov []float32) {
	row := m.row(y)
	for i, c := range cov {
		row[x0+i] = uint8(c*255 + 0.5)
	}
}

// intersect multiplies the mask with an older mask of the same size.
func (m *clipMask) intersect(old *clipMask) {
	for i, v := range old.data {
		m.data[i] = uint8(mul255(uint32(m.data[i]), uint32(v)))
	}
}

// graphicsState is the part of a canvas that Save and Restore manage.
type graphicsState struct {
	ctm      Matrix
	paint    Paint
	rule     FillRule
	op       Operator
	opacity  float64
	stroke   Stroke
	clip     *clipMask
	face     *FontFace
	fontSize float64
}

// A Canvas draws vector graphics onto a Surface.  It keeps a current
// path, built with MoveTo, LineTo and friends, and a graphics state
// holding the transformation, paint, stroke parameters, clip region
// and compositing controls.  Fill, Stroke and Clip consume the
// current path; the Preserve variants keep it.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	surface *Surface
	rast    *Rasteriser
	path    *Path

	state graphicsState
	stack []graphicsState

	str     stroker
	outline *Path
	pt      painter
	ones    []float32
}

// New returns a canvas drawing onto the given surface.  The initial
// state uses the identity transformation, black paint, the nonzero
// fill rule, source-over compositing, opacity 1, and a stroke width
// of 1 with butt caps and miter joins.
func New(surface *Surface) *Canvas {
	clip := rect.Rect{
		URx: float64(surface.width),
		URy: float64(surface.height),
	}
	return &Canvas{
		surface: surface,
		rast:    NewRasteriser(clip),
		path:    NewPath(),
		outline: NewPath(),
		state: graphicsState{
			ctm:     Identity(),
			paint:   Black,
			rule:    FillRuleNonZero,
			op:      OpSrcOver,
			opacity: 1,
			stroke: Stroke{
				Width:      1,
				Cap:        LineCapButt,
				Join:       LineJoinMiter,
				MiterLimit: defaultMiterLimit,
			},
			fontSize: 12,
		},
	}
}

// Surface returns the surface the canvas draws onto.
func (c *Canvas) Surface() *Surface {
	return c.surface
}

// Save pushes a copy of the current graphics state onto the state
// stack.  The current path is not part of the state and is unaffected.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore reverts to the most recently saved graphics state.  If the
// stack is empty, Restore does nothing.
func (c *Canvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.state = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

// Translate moves the origin of the user coordinate system.
func (c *Canvas) Translate(tx, ty float64) {
	c.state.ctm = c.state.ctm.Translated(tx, ty)
}

// Scale scales the user coordinate system.
func (c *Canvas) Scale(sx, sy float64) {
	c.state.ctm = c.state.ctm.Scaled(sx, sy)
}

// Rotate rotates the user coordinate system by the given angle in
// radians.
func (c *Canvas) Rotate(angle float64) {
	c.state.ctm = c.state.ctm.Rotated(angle)
}

// Shear shears the user coordinate system.
func (c *Canvas) Shear(shx, shy float64) {
	c.state.ctm = c.state.ctm.Sheared(shx, shy)
}

// Transform multiplies the current transformation by m.
func (c *Canvas) Transform(m Matrix) {
	c.state.ctm = c.state.ctm.Mul(m)
}

// SetMatrix replaces the current transformation.
func (c *Canvas) SetMatrix(m Matrix) {
	c.state.ctm = m
}

// ResetMatrix restores the identity transformation.
func (c *Canvas) ResetMatrix() {
	c.state.ctm = Identity()
}

// Matrix returns the current transformation.
func (c *Canvas) Matrix() Matrix {
	return c.state.ctm
}

// SetRGB selects an opaque solid color as the paint.
func (c *Canvas) SetRGB(r, g, b float64) {
	c.state.paint = RGB(r, g, b)
}

// SetRGBA selects a solid color as the paint.
func (c *Canvas) SetRGBA(r, g, b, a float64) {
	c.state.paint = RGBA(r, g, b, a)
}

// SetColor selects a solid color as the paint.
func (c *Canvas) SetColor(col Color) {
	c.state.paint = col
}

// SetPaint selects the paint used by fill, stroke and paint
// operations.
func (c *Canvas) SetPaint(p Paint) {
	c.state.paint = p
}

// SetLinearGradient selects a linear gradient as the paint.
func (c *Canvas) SetLinearGradient(g *LinearGradient) {
	c.state.paint = g
}

// SetRadialGradient selects a radial gradient as the paint.
func (c *Canvas) SetRadialGradient(g *RadialGradient) {
	c.state.paint = g
}

// SetTexture selects a texture as the paint.
func (c *Canvas) SetTexture(t *Texture) {
	c.state.paint = t
}

// CurrentPaint returns the paint in effect.
func (c *Canvas) CurrentPaint() Paint {
	return c.state.paint
}

// SetFillRule selects the fill rule used by Fill and Clip.
func (c *Canvas) SetFillRule(rule FillRule) {
	c.state.rule = rule
}

// FillRule returns the fill rule in effect.
func (c *Canvas) FillRule() FillRule {
	return c.state.rule
}

// SetOperator selects the compositing operator.
func (c *Canvas) SetOperator(op Operator) {
	c.state.op = op
}

// Operator returns the compositing operator in effect.
func (c *Canvas) Operator() Operator {
	return c.state.op
}

// SetOpacity sets the global opacity applied to all drawing.  Values
// are clamped to [0, 1].
func (c *Canvas) SetOpacity(opacity float64) {
	c.state.opacity = clamp01(opacity)
}

// Opacity returns the global opacity in effect.
func (c *Canvas) Opacity() float64 {
	return c.state.opacity
}

// SetStrokeStyle replaces all stroke parameters at once.  The dash
// pattern is copied.
func (c *Canvas) SetStrokeStyle(style Stroke) {
	style.DashPattern = slices.Clone(style.DashPattern)
	c.state.stroke = style
}

// StrokeStyle returns the stroke parameters in effect.  The caller
// must not modify the returned dash pattern.
func (c *Canvas) StrokeStyle() Stroke {
	return c.state.stroke
}

// SetLineWidth sets the stroke width.
func (c *Canvas) SetLineWidth(width float64) {
	c.state.stroke.Width = width
}

// LineWidth returns the stroke width in effect.
func (c *Canvas) LineWidth() float64 {
	return c.state.stroke.Width
}

// SetLineCap selects the stroke cap style.
func (c *Canvas) SetLineCap(cap LineCap) {
	c.state.stroke.Cap = cap
}

// LineCap returns the stroke cap style in effect.
func (c *Canvas) LineCap() LineCap {
	return c.state.stroke.Cap
}

// SetLineJoin selects the stroke join style.
func (c *Canvas) SetLineJoin(join LineJoin) {
	c.state.stroke.Join = join
}

// LineJoin returns the stroke join style in effect.
func (c *Canvas) LineJoin() LineJoin {
	return c.state.stroke.Join
}

// SetMiterLimit sets the miter limit.
func (c *Canvas) SetMiterLimit(limit float64) {
	c.state.stroke.MiterLimit = limit
}

// MiterLimit returns the miter limit in effect.
func (c *Canvas) MiterLimit() float64 {
	return c.state.stroke.MiterLimit
}

// SetDash sets the dash offset and pattern together.  The pattern is
// copied; an empty pattern disables dashing.
func (c *Canvas) SetDash(offset float64, pattern []float64) {
	c.state.stroke.DashPhase = offset
	c.state.stroke.DashPattern = slices.Clone(pattern)
}

// SetDashOffset sets the offset into the dash pattern.
func (c *Canvas) SetDashOffset(offset float64) {
	c.state.stroke.DashPhase = offset
}

// DashOffset returns the dash offset in effect.
func (c *Canvas) DashOffset() float64 {
	return c.state.stroke.DashPhase
}

// SetDashArray sets the dash pattern.  The pattern is copied; an
// empty pattern disables dashing.
func (c *Canvas) SetDashArray(pattern []float64) {
	c.state.stroke.DashPattern = slices.Clone(pattern)
}

// DashArray returns the dash pattern in effect.  The caller must not
// modify the returned slice.
func (c *Canvas) DashArray() []float64 {
	return c.state.stroke.DashPattern
}

// MoveTo starts a new subpath of the current path at v.
func (c *Canvas) MoveTo(v vec.Vec2) {
	c.path.MoveTo(v)
}

// LineTo adds a line segment to the current path.
func (c *Canvas) LineTo(v vec.Vec2) {
	c.path.LineTo(v)
}

// QuadTo adds a quadratic Bézier segment to the current path.
func (c *Canvas) QuadTo(q, v vec.Vec2) {
	c.path.QuadTo(q, v)
}

// CubeTo adds a cubic Bézier segment to the current path.
func (c *Canvas) CubeTo(c1, c2, v vec.Vec2) {
	c.path.CubeTo(c1, c2, v)
}

// Close closes the current subpath of the current path.
func (c *Canvas) Close() {
	c.path.Close()
}

// ArcTo adds an elliptical arc to the current path, using SVG
// endpoint parameterization.  The rotation angle is in radians.
func (c *Canvas) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, end vec.Vec2) {
	c.path.ArcTo(rx, ry, rotation, largeArc, sweep, end)
}

// Arc adds a circular arc to the current path.  The angles are in
// radians.
func (c *Canvas) Arc(center vec.Vec2, radius, a0, a1 float64, ccw bool) {
	c.path.Arc(center, radius, a0, a1, ccw)
}

// Rect adds a rectangle to the current path.
func (c *Canvas) Rect(x, y, w, h float64) {
	c.path.Rect(x, y, w, h)
}

// RoundRect adds a rectangle with rounded corners to the current
// path.
func (c *Canvas) RoundRect(x, y, w, h, rx, ry float64) {
	c.path.RoundRect(x, y, w, h, rx, ry)
}

// Ellipse adds an ellipse to the current path.
func (c *Canvas) Ellipse(center vec.Vec2, rx, ry float64) {
	c.path.Ellipse(center, rx, ry)
}

// Circle adds a circle to the current path.
func (c *Canvas) Circle(center vec.Vec2, radius float64) {
	c.path.Circle(center, radius)
}

// AddPath appends a copy of p to the current path.
func (c *Canvas) AddPath(p *Path) {
	c.path.Append(p, Identity())
}

// NewPath discards the current path.
func (c *Canvas) NewPath() {
	c.path.Reset()
}

// CurrentPoint returns the current point of the current path.
func (c *Canvas) CurrentPoint() vec.Vec2 {
	return c.path.CurrentPoint()
}

// fillSeq renders one fill operation.
func (c *Canvas) fillSeq(seq Seq, rule FillRule) {
	c.pt.prepare(c.surface, c.state.paint, c.state.ctm, c.state.op, c.state.opacity, c.state.clip)
	if c.pt.kind == paintNone {
		return
	}
	c.rast.Fill(seq, c.state.ctm, rule, c.pt.paintSpan)
}

// strokeSeq builds the stroke outline of p in user space and fills
// it.  The outline is always filled with the nonzero rule, regardless
// of the canvas fill rule.
func (c *Canvas) strokeSeq(p *Path) {
	c.outline.Reset()
	c.str.appendOutline(c.outline, p, c.state.stroke)
	c.fillSeq(c.outline.Iter(), FillRuleNonZero)
}

// clipSeq intersects the clip region with the filled area of seq.
func (c *Canvas) clipSeq(seq Seq, rule FillRule) {
	mask := newClipMask(c.surface.width, c.surface.height)
	c.rast.Fill(seq, c.state.ctm, rule, mask.writeSpan)
	if c.state.clip != nil {
		mask.intersect(c.state.clip)
	}
	c.state.clip = mask
}

// FillPreserve fills the current path with the current paint, keeping
// the path.
func (c *Canvas) FillPreserve() {
	c.fillSeq(c.path.Iter(), c.state.rule)
}

// Fill fills the current path with the current paint and then clears
// the path.
func (c *Canvas) Fill() {
	c.FillPreserve()
	c.path.Reset()
}

// StrokePreserve strokes the current path with the current paint and
// stroke parameters, keeping the path.
func (c *Canvas) StrokePreserve() {
	c.strokeSeq(c.path)
}

// Stroke strokes the current path and then clears the path.
func (c *Canvas) Stroke() {
	c.StrokePreserve()
	c.path.Reset()
}

// ClipPreserve intersects the clip region with the current path,
// keeping the path.
func (c *Canvas) ClipPreserve() {
	c.clipSeq(c.path.Iter(), c.state.rule)
}

// Clip intersects the clip region with the current path and then
// clears the path.
func (c *Canvas) Clip() {
	c.ClipPreserve()
	c.path.Reset()
}

// ResetClip removes all clipping, making the whole surface writable
// again.
func (c *Canvas) ResetClip() {
	c.state.clip = nil
}

// Paint covers the whole clip region with the current paint.  The
// current path is not used and remains unchanged.
func (c *Canvas) Paint() {
	c.pt.prepare(c.surface, c.state.paint, c.state.ctm, c.state.op, c.state.opacity, c.state.clip)
	if c.pt.kind == paintNone {
		return
	}
	width := c.surface.width
	if width == 0 {
		return
	}
	c.ones = slices.Grow(c.ones[:0], width)[:width]
	for i := range c.ones {
		c.ones[i] = 1
	}
	for y := range c.surface.height {
		c.pt.paintSpan(y, 0, c.ones)
	}
}

// FillRect fills a rectangle, discarding the current path.
func (c *Canvas) FillRect(x, y, w, h float64) {
	c.path.Reset()
	c.path.Rect(x, y, w, h)
	c.Fill()
}

// StrokeRect strokes a rectangle, discarding the current path.
func (c *Canvas) StrokeRect(x, y, w, h float64) {
	c.path.Reset()
	c.path.Rect(x, y, w, h)
	c.Stroke()
}

// ClipRect intersects the clip region with a rectangle, discarding
// the current path.
func (c *Canvas) ClipRect(x, y, w, h float64) {
	c.path.Reset()
	c.path.Rect(x, y, w, h)
	c.Clip()
}

// FillPath fills the given path, discarding the current path.
func (c *Canvas) FillPath(p *Path) {
	c.path.Reset()
	c.fillSeq(p.Iter(), c.state.rule)
}

// StrokePath strokes the given path, discarding the current path.
func (c *Canvas) StrokePath(p *Path) {
	c.path.Reset()
	c.strokeSeq(p)
}

// ClipPath intersects the clip region with the given path, discarding
// the current path.
func (c *Canvas) ClipPath(p *Path) {
	c.path.Reset()
	c.clipSeq(p.Iter(), c.state.rule)
}
