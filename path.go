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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// PathCommand identifies one drawing command within a Path.
type PathCommand uint8

// The four commands a Path can store.  Quadratic Bézier segments are
// degree-elevated to cubics when they are added, so they never appear
// in stored paths.
const (
	CmdMoveTo PathCommand = iota
	CmdLineTo
	CmdCubeTo
	CmdClose
)

func (c PathCommand) String() string {
	switch c {
	case CmdMoveTo:
		return "MoveTo"
	case CmdLineTo:
		return "LineTo"
	case CmdCubeTo:
		return "CubeTo"
	case CmdClose:
		return "Close"
	}
	return "Invalid"
}

// arity returns the number of points stored with the command.
// CmdClose stores the start point of the subpath it closes.
func (c PathCommand) arity() int {
	if c == CmdCubeTo {
		return 3
	}
	return 1
}

// Seq is a lazy traversal over path segments.  The point slice passed
// to yield is only valid for the duration of the call.  A Seq can be
// ranged over repeatedly; each range restarts from the beginning.
type Seq func(yield func(PathCommand, []vec.Vec2) bool)

// Path is a sequence of subpaths, each consisting of line and cubic
// Bézier segments.  Coordinates follow the raster convention with the
// y-axis pointing down.
//
// A Path is a mutable reference type: assigning or passing a *Path
// shares the underlying storage, use [Path.Clone] for an independent
// copy.  Paths must not be mutated concurrently.
//
// The zero value (or NewPath) is an empty path ready for use.
type Path struct {
	cmds   []PathCommand
	coords []vec.Vec2

	cur   vec.Vec2 // current point
	start vec.Vec2 // start point of the current subpath
	open  bool     // a subpath has been started and not yet closed
}

// NewPath returns a new, empty path.
func NewPath() *Path {
	return &Path{}
}

// IsEmpty reports whether the path contains no segments.
func (p *Path) IsEmpty() bool {
	return len(p.cmds) == 0
}

// CurrentPoint returns the point from which the next segment will be
// drawn.  For an empty path this is the origin.
func (p *Path) CurrentPoint() vec.Vec2 {
	return p.cur
}

// Reset removes all segments from the path, keeping allocated storage
// for reuse.
func (p *Path) Reset() {
	p.cmds = p.cmds[:0]
	p.coords = p.coords[:0]
	p.cur = vec.Vec2{}
	p.start = vec.Vec2{}
	p.open = false
}

// ensureOpen starts a new subpath at the current point if none is
// open.  This makes drawing commands after Close continue from the
// start point, and lets an empty path start at the origin.
func (p *Path) ensureOpen() {
	if !p.open {
		p.MoveTo(p.cur)
	}
}

// MoveTo starts a new subpath at v.
func (p *Path) MoveTo(v vec.Vec2) *Path {
	p.cmds = append(p.cmds, CmdMoveTo)
	p.coords = append(p.coords, v)
	p.cur = v
	p.start = v
	p.open = true
	return p
}

// LineTo appends a straight line from the current point to v.
func (p *Path) LineTo(v vec.Vec2) *Path {
	p.ensureOpen()
	p.cmds = append(p.cmds, CmdLineTo)
	p.coords = append(p.coords, v)
	p.cur = v
	return p
}

// QuadTo appends a quadratic Bézier segment with control point q
// ending at v.  The segment is stored as the equivalent cubic.
func (p *Path) QuadTo(q, v vec.Vec2) *Path {
	p.ensureOpen()
	c1 := p.cur.Add(q.Sub(p.cur).Mul(2.0 / 3))
	c2 := v.Add(q.Sub(v).Mul(2.0 / 3))
	return p.CubeTo(c1, c2, v)
}

// CubeTo appends a cubic Bézier segment with control points c1 and c2
// ending at v.
func (p *Path) CubeTo(c1, c2, v vec.Vec2) *Path {
	p.ensureOpen()
	p.cmds = append(p.cmds, CmdCubeTo)
	p.coords = append(p.coords, c1, c2, v)
	p.cur = v
	return p
}

// Close closes the current subpath with a straight line back to its
// start point.  The current point moves to the start point, and
// further drawing commands continue from there.
func (p *Path) Close() *Path {
	if !p.open {
		return p
	}
	p.cmds = append(p.cmds, CmdClose)
	p.coords = append(p.coords, p.start)
	p.cur = p.start
	p.open = false
	return p
}

// ArcTo appends an elliptical arc from the current point to end,
// using the SVG endpoint parameterization: radii rx and ry, the
// rotation of the ellipse's x-axis in radians, and the large-arc and
// sweep flags.  If the current point equals end the call is a no-op;
// a zero radius degrades the arc to a straight line.  Radii too small
// for the chord are scaled up uniformly.
func (p *Path) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, end vec.Vec2) *Path {
	cur := p.cur
	if cur == end {
		return p
	}
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx == 0 || ry == 0 {
		return p.LineTo(end)
	}

	sinPhi, cosPhi := math.Sincos(rotation)

	// chord midpoint in the ellipse's coordinate frame
	dx := (cur.X - end.X) / 2
	dy := (cur.Y - end.Y) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	// scale the radii up if the chord does not fit
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rxy1 := rx * rx * y1p * y1p
	ryx1 := ry * ry * x1p * x1p
	num := rx*rx*ry*ry - rxy1 - ryx1
	if num < 0 {
		num = 0
	}
	co := math.Sqrt(num / (rxy1 + ryx1))
	if largeArc == sweep {
		co = -co
	}
	cxp := co * rx * y1p / ry
	cyp := -co * ry * x1p / rx

	center := vec.Vec2{
		X: cosPhi*cxp - sinPhi*cyp + (cur.X+end.X)/2,
		Y: sinPhi*cxp + cosPhi*cyp + (cur.Y+end.Y)/2,
	}

	theta1 := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	theta2 := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	delta := theta2 - theta1
	if !sweep && delta > 0 {
		delta -= twoPi
	} else if sweep && delta < 0 {
		delta += twoPi
	}

	p.arcSegments(center, rx, ry, rotation, theta1, delta)

	// land exactly on the requested endpoint
	p.coords[len(p.coords)-1] = end
	p.cur = end
	return p
}

// Arc appends a circular arc around center with the given radius,
// from angle a0 to angle a1 (in radians, measured from the positive
// x-axis towards the positive y-axis).  With ccw false the arc sweeps
// in the direction of increasing angles, otherwise in the direction
// of decreasing angles; a1 is shifted by full turns as needed to lie
// on the requested side of a0.  The arc is joined to the current
// point by a straight line, or starts a new subpath if the path is
// empty.
func (p *Path) Arc(center vec.Vec2, radius, a0, a1 float64, ccw bool) *Path {
	da := a1 - a0
	if ccw {
		if da <= -twoPi {
			da = -twoPi
		} else if da > 0 {
			da = math.Mod(da, twoPi) - twoPi
		}
	} else {
		if da >= twoPi {
			da = twoPi
		} else if da < 0 {
			da = math.Mod(da, twoPi) + twoPi
		}
	}

	sa, ca := math.Sincos(a0)
	arcStart := vec.Vec2{X: center.X + radius*ca, Y: center.Y + radius*sa}
	if p.IsEmpty() {
		p.MoveTo(arcStart)
	} else {
		p.LineTo(arcStart)
	}
	if da != 0 && radius > 0 {
		p.arcSegments(center, radius, radius, 0, a0, da)
	}
	return p
}

// arcSegments approximates an arc of the rotated ellipse by cubic
// Bézier segments of at most a quarter turn each.  The current point
// must already be at the arc's start.  da may be negative for
// counterclockwise sweeps.
func (p *Path) arcSegments(center vec.Vec2, rx, ry, phi, a0, da float64) {
	n := int(math.Ceil(math.Abs(da) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	sinPhi, cosPhi := math.Sincos(phi)
	point := func(a float64) (pos, der vec.Vec2) {
		sa, ca := math.Sincos(a)
		pos = vec.Vec2{
			X: center.X + rx*ca*cosPhi - ry*sa*sinPhi,
			Y: center.Y + rx*ca*sinPhi + ry*sa*cosPhi,
		}
		der = vec.Vec2{
			X: -rx*sa*cosPhi - ry*ca*sinPhi,
			Y: -rx*sa*sinPhi + ry*ca*cosPhi,
		}
		return pos, der
	}

	step := da / float64(n)
	alpha := 4.0 / 3 * math.Tan(step/4)
	prevPos, prevDer := point(a0)
	for i := 1; i <= n; i++ {
		pos, der := point(a0 + da*float64(i)/float64(n))
		c1 := prevPos.Add(prevDer.Mul(alpha))
		c2 := pos.Sub(der.Mul(alpha))
		p.CubeTo(c1, c2, pos)
		prevPos, prevDer = pos, der
	}
}

// Rect appends a closed axis-aligned rectangle as a new subpath.
func (p *Path) Rect(x, y, w, h float64) *Path {
	p.MoveTo(vec.Vec2{X: x, Y: y})
	p.LineTo(vec.Vec2{X: x + w, Y: y})
	p.LineTo(vec.Vec2{X: x + w, Y: y + h})
	p.LineTo(vec.Vec2{X: x, Y: y + h})
	return p.Close()
}

// RoundRect appends a closed rectangle with elliptical corners of
// radii rx and ry.  The radii are clamped to half the rectangle's
// dimensions; radii of zero or less produce a plain rectangle.
func (p *Path) RoundRect(x, y, w, h, rx, ry float64) *Path {
	rx = min(math.Abs(rx), math.Abs(w)/2)
	ry = min(math.Abs(ry), math.Abs(h)/2)
	if rx == 0 || ry == 0 {
		return p.Rect(x, y, w, h)
	}

	kx := rx * kappa
	ky := ry * kappa
	p.MoveTo(vec.Vec2{X: x + rx, Y: y})
	p.LineTo(vec.Vec2{X: x + w - rx, Y: y})
	p.CubeTo(
		vec.Vec2{X: x + w - rx + kx, Y: y},
		vec.Vec2{X: x + w, Y: y + ry - ky},
		vec.Vec2{X: x + w, Y: y + ry})
	p.LineTo(vec.Vec2{X: x + w, Y: y + h - ry})
	p.CubeTo(
		vec.Vec2{X: x + w, Y: y + h - ry + ky},
		vec.Vec2{X: x + w - rx + kx, Y: y + h},
		vec.Vec2{X: x + w - rx, Y: y + h})
	p.LineTo(vec.Vec2{X: x + rx, Y: y + h})
	p.CubeTo(
		vec.Vec2{X: x + rx - kx, Y: y + h},
		vec.Vec2{X: x, Y: y + h - ry + ky},
		vec.Vec2{X: x, Y: y + h - ry})
	p.LineTo(vec.Vec2{X: x, Y: y + ry})
	p.CubeTo(
		vec.Vec2{X: x, Y: y + ry - ky},
		vec.Vec2{X: x + rx - kx, Y: y},
		vec.Vec2{X: x + rx, Y: y})
	return p.Close()
}

// Ellipse appends a closed axis-aligned ellipse as a new subpath,
// starting at the rightmost point and sweeping through the bottommost
// point first.
func (p *Path) Ellipse(center vec.Vec2, rx, ry float64) *Path {
	cx, cy := center.X, center.Y
	kx := rx * kappa
	ky := ry * kappa
	p.MoveTo(vec.Vec2{X: cx + rx, Y: cy})
	p.CubeTo(
		vec.Vec2{X: cx + rx, Y: cy + ky},
		vec.Vec2{X: cx + kx, Y: cy + ry},
		vec.Vec2{X: cx, Y: cy + ry})
	p.CubeTo(
		vec.Vec2{X: cx - kx, Y: cy + ry},
		vec.Vec2{X: cx - rx, Y: cy + ky},
		vec.Vec2{X: cx - rx, Y: cy})
	p.CubeTo(
		vec.Vec2{X: cx - rx, Y: cy - ky},
		vec.Vec2{X: cx - kx, Y: cy - ry},
		vec.Vec2{X: cx, Y: cy - ry})
	p.CubeTo(
		vec.Vec2{X: cx + kx, Y: cy - ry},
		vec.Vec2{X: cx + rx, Y: cy - ky},
		vec.Vec2{X: cx + rx, Y: cy})
	return p.Close()
}

// Circle appends a closed circle as a new subpath.
func (p *Path) Circle(center vec.Vec2, radius float64) *Path {
	return p.Ellipse(center, radius, radius)
}

// Append appends a copy of src, transformed by m, to p.
func (p *Path) Append(src *Path, m Matrix) *Path {
	for cmd, pts := range src.Iter() {
		switch cmd {
		case CmdMoveTo:
			p.MoveTo(m.Map(pts[0]))
		case CmdLineTo:
			p.LineTo(m.Map(pts[0]))
		case CmdCubeTo:
			p.CubeTo(m.Map(pts[0]), m.Map(pts[1]), m.Map(pts[2]))
		case CmdClose:
			p.Close()
		}
	}
	return p
}

// Transform applies m to every point of the path, in place.
func (p *Path) Transform(m Matrix) *Path {
	m.MapPoints(p.coords)
	p.cur = m.Map(p.cur)
	p.start = m.Map(p.start)
	return p
}

// Clone returns an independent copy of the path.
func (p *Path) Clone() *Path {
	return &Path{
		cmds:   slices.Clone(p.cmds),
		coords: slices.Clone(p.coords),
		cur:    p.cur,
		start:  p.start,
		open:   p.open,
	}
}

// CloneFlat returns an independent copy with every curve replaced by
// a polyline approximation.  The result contains only MoveTo, LineTo
// and Close commands.
func (p *Path) CloneFlat() *Path {
	return appendSeq(NewPath(), p.Flat())
}

// CloneDashed returns an independent copy of the flattened path cut
// into dashes.  See [Path.Dashed] for the dashing rules.
func (p *Path) CloneDashed(phase float64, pattern []float64) *Path {
	return appendSeq(NewPath(), p.Dashed(phase, pattern))
}

// Iter returns a traversal over the path's stored segments.
// CmdClose is reported with the start point of its subpath.
func (p *Path) Iter() Seq {
	return func(yield func(PathCommand, []vec.Vec2) bool) {
		k := 0
		for _, cmd := range p.cmds {
			n := cmd.arity()
			if !yield(cmd, p.coords[k:k+n]) {
				return
			}
			k += n
		}
	}
}

// Flat returns a traversal over the path with cubic segments
// flattened into line segments on the fly.  Only CmdMoveTo, CmdLineTo
// and CmdClose are reported.
func (p *Path) Flat() Seq {
	return func(yield func(PathCommand, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		var cur vec.Vec2
		k := 0
		for _, cmd := range p.cmds {
			switch cmd {
			case CmdMoveTo, CmdLineTo, CmdClose:
				if !yield(cmd, p.coords[k:k+1]) {
					return
				}
				cur = p.coords[k]
				k++
			case CmdCubeTo:
				end := p.coords[k+2]
				ok := flattenCubic(cur, p.coords[k], p.coords[k+1], end, defaultFlatness,
					func(v vec.Vec2) bool {
						buf[0] = v
						return yield(CmdLineTo, buf[:])
					})
				if !ok {
					return
				}
				cur = end
				k += 3
			}
		}
	}
}

// appendSeq appends all segments of s to dst and returns dst.
func appendSeq(dst *Path, s Seq) *Path {
	for cmd, pts := range s {
		switch cmd {
		case CmdMoveTo:
			dst.MoveTo(pts[0])
		case CmdLineTo:
			dst.LineTo(pts[0])
		case CmdCubeTo:
			dst.CubeTo(pts[0], pts[1], pts[2])
		case CmdClose:
			dst.Close()
		}
	}
	return dst
}

// Extents returns the bounding box of the path.  In loose mode
// (tight == false) this is the bounding box of all control points,
// which is cheap but may overestimate the bounds of curved paths.
// In tight mode the path is flattened first.  An empty path has zero
// extents.
func (p *Path) Extents(tight bool) rect.Rect {
	if len(p.coords) == 0 {
		return rect.Rect{}
	}
	if !tight {
		return boundPoints(p.coords)
	}

	var res rect.Rect
	first := true
	for _, pts := range p.Flat() {
		v := pts[0]
		if first {
			res = rect.Rect{LLx: v.X, LLy: v.Y, URx: v.X, URy: v.Y}
			first = false
			continue
		}
		res.LLx = min(res.LLx, v.X)
		res.LLy = min(res.LLy, v.Y)
		res.URx = max(res.URx, v.X)
		res.URy = max(res.URy, v.Y)
	}
	return res
}

func boundPoints(pts []vec.Vec2) rect.Rect {
	res := rect.Rect{LLx: pts[0].X, LLy: pts[0].Y, URx: pts[0].X, URy: pts[0].Y}
	for _, v := range pts[1:] {
		res.LLx = min(res.LLx, v.X)
		res.LLy = min(res.LLy, v.Y)
		res.URx = max(res.URx, v.X)
		res.URy = max(res.URy, v.Y)
	}
	return res
}

// Length returns the total arc length of the flattened path,
// including the closing lines of closed subpaths.
func (p *Path) Length() float64 {
	var total float64
	var cur vec.Vec2
	for cmd, pts := range p.Flat() {
		switch cmd {
		case CmdMoveTo:
			cur = pts[0]
		case CmdLineTo, CmdClose:
			total += pts[0].Sub(cur).Length()
			cur = pts[0]
		}
	}
	return total
}

const (
	// kappa is the control point ratio approximating a quarter circle
	// by a cubic Bézier segment, 4/3*(sqrt(2)-1).
	kappa = 0.5522847498307936

	twoPi = 2 * math.Pi
)
