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

	"seehuhn.de/go/geom/vec"
)

// Operator is a Porter-Duff compositing operator.  It controls how
// source pixels combine with the pixels already on the surface.
type Operator uint8

const (
	// OpClear sets the destination to transparent.
	OpClear Operator = iota

	// OpSrc replaces the destination with the source.
	OpSrc

	// OpDst leaves the destination unchanged.
	OpDst

	// OpSrcOver draws the source over the destination.  This is the
	// default operator.
	OpSrcOver

	// OpDstOver draws the source underneath the destination.
	OpDstOver

	// OpSrcIn keeps the source where the destination is opaque.
	OpSrcIn

	// OpDstIn keeps the destination where the source is opaque.
	OpDstIn

	// OpSrcOut keeps the source where the destination is transparent.
	OpSrcOut

	// OpDstOut keeps the destination where the source is transparent.
	OpDstOut

	// OpSrcAtop draws the source over the destination, restricted to
	// where the destination is opaque.
	OpSrcAtop

	// OpDstAtop draws the destination over the source, restricted to
	// where the source is opaque.
	OpDstAtop

	// OpXor keeps source and destination where they do not overlap.
	OpXor
)

func (op Operator) String() string {
	switch op {
	case OpClear:
		return "clear"
	case OpSrc:
		return "src"
	case OpDst:
		return "dst"
	case OpSrcOver:
		return "src-over"
	case OpDstOver:
		return "dst-over"
	case OpSrcIn:
		return "src-in"
	case OpDstIn:
		return "dst-in"
	case OpSrcOut:
		return "src-out"
	case OpDstOut:
		return "dst-out"
	case OpSrcAtop:
		return "src-atop"
	case OpDstAtop:
		return "dst-atop"
	case OpXor:
		return "xor"
	}
	return "Invalid"
}

// alphaOf extracts the alpha byte of a premultiplied ARGB pixel.
func alphaOf(p uint32) uint32 {
	return p >> 24
}

// mul255 multiplies two values in [0, 255], treating them as
// fractions of 255, with correct rounding.
func mul255(a, b uint32) uint32 {
	t := a*b + 128
	return (t + t>>8) >> 8
}

// byteMul scales all four channels of a premultiplied pixel by a,
// a value in [0, 255].  It processes two channels per multiplication.
func byteMul(x, a uint32) uint32 {
	t := (x & 0xff00ff) * a
	t = (t + ((t >> 8) & 0xff00ff) + 0x800080) >> 8
	t &= 0xff00ff
	x = ((x >> 8) & 0xff00ff) * a
	x = x + ((x >> 8) & 0xff00ff) + 0x800080
	x &= 0xff00ff00
	return x | t
}

// interpolatePixel computes byteMul(x, a) + byteMul(y, b).  Callers
// must ensure that the channel sums stay below 256, which holds
// whenever a + b <= 255.
func interpolatePixel(x, a, y, b uint32) uint32 {
	t := (x&0xff00ff)*a + (y&0xff00ff)*b
	t = (t + ((t >> 8) & 0xff00ff) + 0x800080) >> 8
	t &= 0xff00ff
	x = ((x>>8)&0xff00ff)*a + ((y>>8)&0xff00ff)*b
	x = x + ((x >> 8) & 0xff00ff) + 0x800080
	x &= 0xff00ff00
	return x | t
}

// blendPixel combines premultiplied source and destination pixels at
// full coverage.
func blendPixel(s, d uint32, op Operator) uint32 {
	switch op {
	case OpClear:
		return 0
	case OpSrc:
		return s
	case OpDst:
		return d
	case OpSrcOver:
		return s + byteMul(d, 255-alphaOf(s))
	case OpDstOver:
		return d + byteMul(s, 255-alphaOf(d))
	case OpSrcIn:
		return byteMul(s, alphaOf(d))
	case OpDstIn:
		return byteMul(d, alphaOf(s))
	case OpSrcOut:
		return byteMul(s, 255-alphaOf(d))
	case OpDstOut:
		return byteMul(d, 255-alphaOf(s))
	case OpSrcAtop:
		return interpolatePixel(s, alphaOf(d), d, 255-alphaOf(s))
	case OpDstAtop:
		return interpolatePixel(d, alphaOf(s), s, 255-alphaOf(d))
	case OpXor:
		return interpolatePixel(s, 255-alphaOf(d), d, 255-alphaOf(s))
	}
	return d
}

// compositeSolidSpan blends a constant source pixel into dst.  The
// factor slice holds per-pixel coverage in [0, 255].
//
// For src-over, dst-over and dst-out, scaling the source by the
// coverage gives the same result as blending at full coverage and
// then mixing with the destination, so the cheaper form is used.
// The remaining operators mix the full-coverage result with the
// destination, which keeps partially covered pixels continuous with
// their surroundings.
func compositeSolidSpan(dst []uint32, src uint32, factor []uint8, op Operator) {
	switch op {
	case OpDst:
		return

	case OpSrcOver:
		for i, a := range factor {
			if a == 0 {
				continue
			}
			s := src
			if a < 255 {
				s = byteMul(s, uint32(a))
			}
			dst[i] = s + byteMul(dst[i], 255-alphaOf(s))
		}

	case OpDstOver, OpDstOut:
		for i, a := range factor {
			if a == 0 {
				continue
			}
			s := src
			if a < 255 {
				s = byteMul(s, uint32(a))
			}
			dst[i] = blendPixel(s, dst[i], op)
		}

	default:
		for i, a := range factor {
			if a == 0 {
				continue
			}
			r := blendPixel(src, dst[i], op)
			if a == 255 {
				dst[i] = r
			} else {
				dst[i] = interpolatePixel(r, uint32(a), dst[i], 255-uint32(a))
			}
		}
	}
}

// compositeSpan blends per-pixel source values into dst.  The factor
// slice holds per-pixel coverage in [0, 255].  See compositeSolidSpan
// for how coverage is applied.
func compositeSpan(dst, src []uint32, factor []uint8, op Operator) {
	switch op {
	case OpDst:
		return

	case OpSrcOver:
		for i, a := range factor {
			if a == 0 {
				continue
			}
			s := src[i]
			if a < 255 {
				s = byteMul(s, uint32(a))
			}
			dst[i] = s + byteMul(dst[i], 255-alphaOf(s))
		}

	case OpDstOver, OpDstOut:
		for i, a := range factor {
			if a == 0 {
				continue
			}
			s := src[i]
			if a < 255 {
				s = byteMul(s, uint32(a))
			}
			dst[i] = blendPixel(s, dst[i], op)
		}

	default:
		for i, a := range factor {
			if a == 0 {
				continue
			}
			r := blendPixel(src[i], dst[i], op)
			if a == 255 {
				dst[i] = r
			} else {
				dst[i] = interpolatePixel(r, uint32(a), dst[i], 255-uint32(a))
			}
		}
	}
}

// resolvedStop is a gradient stop with premultiplied components
// scaled to [0, 255], ready for interpolation.
type resolvedStop struct {
	offset     float64
	a, r, g, b float64
}

func packStop(s resolvedStop) uint32 {
	return uint32(s.a+0.5)<<24 | uint32(s.r+0.5)<<16 | uint32(s.g+0.5)<<8 | uint32(s.b+0.5)
}

func packLerp(s0, s1 resolvedStop, w float64) uint32 {
	a := s0.a + (s1.a-s0.a)*w
	r := s0.r + (s1.r-s0.r)*w
	g := s0.g + (s1.g-s0.g)*w
	b := s0.b + (s1.b-s0.b)*w
	return uint32(a+0.5)<<24 | uint32(r+0.5)<<16 | uint32(g+0.5)<<8 | uint32(b+0.5)
}

// gradientSampler produces source pixels for linear and radial
// gradients.  The sampler works in device space: for every pixel
// center, the inverse transform gives the position in gradient
// space, from which the gradient parameter t is computed.
type gradientSampler struct {
	inv    Matrix // device space to gradient space
	spread SpreadMethod
	stops  []resolvedStop

	linear bool
	origin vec.Vec2 // linear: start point
	scaled vec.Vec2 // linear: direction divided by its squared length

	fc vec.Vec2 // radial: focal center
	cd vec.Vec2 // radial: end center minus focal center
	fr float64  // radial: focal radius
	rd float64  // radial: end radius minus focal radius
	a  float64  // radial: cd·cd - rd², constant term of the quadratic

	// degenerate marks a gradient with no extent.  Such gradients
	// paint the last stop under pad spread and nothing otherwise.
	degenerate bool
}

func (g *gradientSampler) resolveStops(stops []Stop) {
	g.stops = g.stops[:0]
	for _, s := range stops {
		a := clamp01(s.Color.A) * 255
		g.stops = append(g.stops, resolvedStop{
			offset: clamp01(s.Offset),
			a:      a,
			r:      clamp01(s.Color.R) * a,
			g:      clamp01(s.Color.G) * a,
			b:      clamp01(s.Color.B) * a,
		})
	}
}

// initLinear prepares the sampler for a linear gradient drawn under
// the transform ctm.  It reports whether the gradient can be drawn.
func (g *gradientSampler) initLinear(lg *LinearGradient, ctm Matrix) bool {
	if len(lg.Stops) == 0 {
		return false
	}
	inv, ok := ctm.Mul(lg.Matrix).Invert()
	if !ok {
		return false
	}
	g.inv = inv
	g.spread = lg.Spread
	g.resolveStops(lg.Stops)
	g.linear = true
	g.origin = lg.Start
	g.degenerate = false

	d := lg.End.Sub(lg.Start)
	dd := d.X*d.X + d.Y*d.Y
	if dd == 0 {
		g.degenerate = true
	} else {
		g.scaled = d.Mul(1 / dd)
	}
	return true
}

// initRadial prepares the sampler for a radial gradient drawn under
// the transform ctm.  It reports whether the gradient can be drawn.
func (g *gradientSampler) initRadial(rg *RadialGradient, ctm Matrix) bool {
	if len(rg.Stops) == 0 {
		return false
	}
	inv, ok := ctm.Mul(rg.Matrix).Invert()
	if !ok {
		return false
	}
	g.inv = inv
	g.spread = rg.Spread
	g.resolveStops(rg.Stops)
	g.linear = false
	g.degenerate = false

	g.fc = rg.Focal
	g.cd = rg.Center.Sub(rg.Focal)
	g.fr = max(rg.FocalRadius, 0)
	g.rd = max(rg.Radius, 0) - g.fr
	g.a = g.cd.X*g.cd.X + g.cd.Y*g.cd.Y - g.rd*g.rd
	if g.cd.X == 0 && g.cd.Y == 0 && g.fr == 0 && g.rd == 0 {
		g.degenerate = true
	}
	return true
}

// colorAt returns the gradient color at parameter t as a
// premultiplied pixel.
func (g *gradientSampler) colorAt(t float64) uint32 {
	switch g.spread {
	case SpreadRepeat:
		t -= math.Floor(t)
	case SpreadReflect:
		t = math.Mod(t, 2)
		if t < 0 {
			t += 2
		}
		if t > 1 {
			t = 2 - t
		}
	default:
		t = clamp01(t)
	}

	stops := g.stops
	last := len(stops) - 1
	if t <= stops[0].offset {
		return packStop(stops[0])
	}
	if t >= stops[last].offset {
		return packStop(stops[last])
	}
	for i := 1; i <= last; i++ {
		if t <= stops[i].offset {
			s0, s1 := stops[i-1], stops[i]
			span := s1.offset - s0.offset
			if span <= 0 {
				return packStop(s1)
			}
			return packLerp(s0, s1, (t-s0.offset)/span)
		}
	}
	return packStop(stops[last])
}

// radialT solves for the gradient parameter at a point in gradient
// space.  The parameter is the largest t such that the point lies on
// the circle interpolated between the focal circle (t=0) and the end
// circle (t=1), subject to the interpolated radius being nonnegative.
func (g *gradientSampler) radialT(gx, gy float64) (float64, bool) {
	pdx := gx - g.fc.X
	pdy := gy - g.fc.Y
	b := pdx*g.cd.X + pdy*g.cd.Y + g.fr*g.rd
	c := pdx*pdx + pdy*pdy - g.fr*g.fr

	if g.a == 0 {
		if b == 0 {
			return 0, false
		}
		t := c / (2 * b)
		if g.fr+t*g.rd < 0 {
			return 0, false
		}
		return t, true
	}

	det := b*b - g.a*c
	if det < 0 {
		return 0, false
	}
	s := math.Sqrt(det)
	t1 := (b + s) / g.a
	t2 := (b - s) / g.a
	if t1 < t2 {
		t1, t2 = t2, t1
	}
	if g.fr+t1*g.rd >= 0 {
		return t1, true
	}
	if g.fr+t2*g.rd >= 0 {
		return t2, true
	}
	return 0, false
}

// fetch fills dst with source pixels for the span starting at device
// pixel (x0, y).  Sampling is at pixel centers; since the inverse
// transform is affine, the gradient-space position advances by a
// constant step along the row.
func (g *gradientSampler) fetch(dst []uint32, x0, y int) {
	if g.degenerate {
		var w uint32
		if g.spread == SpreadPad {
			w = packStop(g.stops[len(g.stops)-1])
		}
		for i := range dst {
			dst[i] = w
		}
		return
	}

	px := float64(x0) + 0.5
	py := float64(y) + 0.5
	gx := g.inv.A*px + g.inv.C*py + g.inv.E
	gy := g.inv.B*px + g.inv.D*py + g.inv.F

	if g.linear {
		for i := range dst {
			t := (gx-g.origin.X)*g.scaled.X + (gy-g.origin.Y)*g.scaled.Y
			dst[i] = g.colorAt(t)
			gx += g.inv.A
			gy += g.inv.B
		}
		return
	}

	for i := range dst {
		if t, ok := g.radialT(gx, gy); ok {
			dst[i] = g.colorAt(t)
		} else {
			dst[i] = 0
		}
		gx += g.inv.A
		gy += g.inv.B
	}
}

// textureSampler produces source pixels from another surface, using
// nearest-neighbor sampling.
type textureSampler struct {
	inv     Matrix // device space to texture space
	src     *Surface
	tiled   bool
	opacity uint32 // [0, 255]
}

// init prepares the sampler for a texture drawn under the transform
// ctm.  It reports whether the texture can be drawn.
func (t *textureSampler) init(tex *Texture, ctm Matrix) bool {
	if tex.Surface == nil || tex.Surface.width == 0 || tex.Surface.height == 0 {
		return false
	}
	inv, ok := ctm.Mul(tex.Matrix).Invert()
	if !ok {
		return false
	}
	t.inv = inv
	t.src = tex.Surface
	t.tiled = tex.Kind == TextureTiled
	t.opacity = uint32(clamp01(tex.Opacity)*255 + 0.5)
	return true
}

// fetch fills dst with source pixels for the span starting at device
// pixel (x0, y).
func (t *textureSampler) fetch(dst []uint32, x0, y int) {
	px := float64(x0) + 0.5
	py := float64(y) + 0.5
	gx := t.inv.A*px + t.inv.C*py + t.inv.E
	gy := t.inv.B*px + t.inv.D*py + t.inv.F

	w := t.src.width
	h := t.src.height
	for i := range dst {
		ix := int(math.Floor(gx))
		iy := int(math.Floor(gy))

		var p uint32
		if t.tiled {
			ix %= w
			if ix < 0 {
				ix += w
			}
			iy %= h
			if iy < 0 {
				iy += h
			}
			p = t.src.row(iy)[ix]
		} else if ix >= 0 && ix < w && iy >= 0 && iy < h {
			p = t.src.row(iy)[ix]
		}
		if t.opacity < 255 {
			p = byteMul(p, t.opacity)
		}
		dst[i] = p

		gx += t.inv.A
		gy += t.inv.B
	}
}

type paintKind uint8

const (
	paintNone paintKind = iota
	paintSolid
	paintGradient
	paintTexture
)

// painter composites the spans of one drawing operation onto a
// surface.  Coverage from the rasteriser is folded with the clip mask
// and the global opacity into a per-pixel factor, source pixels come
// from the paint, and the result is blended with the operator.
//
// The scratch buffers are reused between operations.
type painter struct {
	dst     *Surface
	op      Operator
	opacity uint32 // [0, 255]
	clip    *clipMask

	kind  paintKind
	solid uint32
	grad  gradientSampler
	tex   textureSampler

	factor []uint8  // per-pixel blend factors
	src    []uint32 // per-pixel source values
}

// prepare configures the painter for one drawing operation.  Paints
// that cannot produce any output, for example gradients without stops
// or textures with a singular matrix, set the kind to paintNone.
func (p *painter) prepare(dst *Surface, paint Paint, ctm Matrix, op Operator, opacity float64, clip *clipMask) {
	p.dst = dst
	p.op = op
	p.opacity = uint32(clamp01(opacity)*255 + 0.5)
	p.clip = clip
	p.kind = paintNone

	switch pt := paint.(type) {
	case Color:
		p.kind = paintSolid
		p.solid = pt.premul()
	case *LinearGradient:
		if p.grad.initLinear(pt, ctm) {
			p.kind = paintGradient
		}
	case *RadialGradient:
		if p.grad.initRadial(pt, ctm) {
			p.kind = paintGradient
		}
	case *Texture:
		if p.tex.init(pt, ctm) {
			p.kind = paintTexture
		}
	}
}

// paintSpan renders one coverage span.  It has the signature expected
// by Rasteriser.Fill.
func (p *painter) paintSpan(y, x0 int, cov []float32) {
	if p.kind == paintNone || p.op == OpDst {
		return
	}

	n := len(cov)
	p.factor = slices.Grow(p.factor[:0], n)[:n]
	var clipRow []uint8
	if p.clip != nil {
		clipRow = p.clip.row(y)[x0 : x0+n]
	}
	for i, c := range cov {
		a := uint32(c*255 + 0.5)
		if clipRow != nil {
			a = mul255(a, uint32(clipRow[i]))
		}
		if p.opacity < 255 {
			a = mul255(a, p.opacity)
		}
		p.factor[i] = uint8(a)
	}

	dstRow := p.dst.row(y)[x0 : x0+n]
	switch p.kind {
	case paintSolid:
		compositeSolidSpan(dstRow, p.solid, p.factor, p.op)
	case paintGradient:
		p.src = slices.Grow(p.src[:0], n)[:n]
		p.grad.fetch(p.src, x0, y)
		compositeSpan(dstRow, p.src, p.factor, p.op)
	case paintTexture:
		p.src = slices.Grow(p.src[:0], n)[:n]
		p.tex.fetch(p.src, x0, y)
		compositeSpan(dstRow, p.src, p.factor, p.op)
	}
}
