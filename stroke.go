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

	"seehuhn.de/go/geom/vec"
)

// LineCap selects the shape added at the ends of stroked open subpaths.
type LineCap uint8

const (
	// LineCapButt cuts the stroke off at the endpoint.
	LineCapButt LineCap = iota

	// LineCapRound appends a half-disc centred on the endpoint.
	LineCapRound

	// LineCapSquare extends the stroke by half the line width past the
	// endpoint before cutting it off.
	LineCapSquare
)

func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	}
	return "Invalid"
}

// LineJoin selects the shape connecting adjacent stroked segments at
// a corner.
type LineJoin uint8

const (
	// LineJoinMiter extends the outer edges until they intersect,
	// falling back to a bevel when the miter limit is exceeded.
	LineJoinMiter LineJoin = iota

	// LineJoinRound connects the outer edges with a circular arc.
	LineJoinRound

	// LineJoinBevel connects the outer edges with a straight chord.
	LineJoinBevel
)

func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	}
	return "Invalid"
}

// Stroke describes how a path is converted into a stroked outline.
type Stroke struct {
	// Width is the stroke width.  A width <= 0 produces no output.
	Width float64

	// Cap is the line cap style for the ends of open subpaths.
	Cap LineCap

	// Join is the line join style for corners between segments.
	Join LineJoin

	// MiterLimit bounds miter joins: when the distance from the corner
	// to the miter tip exceeds MiterLimit times half the line width,
	// the join falls back to a bevel.  Values <= 0 select the default
	// limit of 10.
	MiterLimit float64

	// DashPattern lists alternating "on" and "off" lengths, applied
	// before stroking.  An empty pattern draws a solid line.
	DashPattern []float64

	// DashPhase is the offset into the dash pattern at the start of
	// each subpath.
	DashPhase float64
}

// strokeSegment is a line segment of the flattened path together with
// its precomputed frame.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent (A to B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

// Stroked returns the outline swept when stroking the path with the
// given style.  Curves are flattened and the dash pattern, if any, is
// applied first.  The result is a new path meant to be filled using
// the nonzero winding rule; overlapping dashes and self-intersections
// then paint each covered point exactly once.
func (p *Path) Stroked(style Stroke) *Path {
	out := NewPath()
	var s stroker
	s.appendOutline(out, p, style)
	return out
}

// stroker builds stroke outlines.  The buffers are reused between
// calls to appendOutline.
type stroker struct {
	style Stroke
	out   *Path

	segs             []strokeSegment
	segsOffsets      []int  // start index of each subpath in segs
	subpathClosed    []bool // whether each subpath is closed
	degeneratePoints []vec.Vec2
	contour          []vec.Vec2 // vertices of the contour being built
}

// appendOutline appends the stroke outline of p to out.
func (s *stroker) appendOutline(out *Path, p *Path, style Stroke) {
	if style.Width <= 0 {
		return
	}
	s.style = style
	if s.style.MiterLimit <= 0 {
		s.style.MiterLimit = defaultMiterLimit
	}
	s.out = out

	if len(style.DashPattern) > 0 {
		s.collect(p.Dashed(style.DashPhase, style.DashPattern))
	} else {
		s.collect(p.Iter())
	}

	d := s.style.Width / 2

	// Point subpaths have no direction.  Round and square caps still
	// give them area; butt caps draw nothing.
	for _, pt := range s.degeneratePoints {
		switch s.style.Cap {
		case LineCapRound:
			s.beginContour()
			s.addArc(pt, d, vec.Vec2{X: 1, Y: 0}, -2*math.Pi, true)
			s.endContour()
		case LineCapSquare:
			s.beginContour()
			s.addSquare(pt, vec.Vec2{X: 1, Y: 0}, d)
			s.endContour()
		}
	}

	for i := range s.segsOffsets {
		s.strokeSubpath(s.subpathSegments(i), s.subpathClosed[i])
	}
	s.out = nil
}

// collect flattens the source into line segments with precomputed
// frames, grouped by subpath.  Results are stored in s.segs,
// s.segsOffsets, s.subpathClosed and s.degeneratePoints.
func (s *stroker) collect(src Seq) {
	s.segs = s.segs[:0]
	s.segsOffsets = s.segsOffsets[:0]
	s.subpathClosed = s.subpathClosed[:0]
	s.degeneratePoints = s.degeneratePoints[:0]

	var cur, start vec.Vec2
	subpathStart := 0
	inSubpath := false
	sawDraw := false // distinguishes collapsed subpaths from bare MoveTos

	endSubpath := func(closed bool) {
		if !inSubpath {
			return
		}
		if len(s.segs) == subpathStart {
			if sawDraw || closed {
				// All segments collapsed; the subpath is a point.
				s.degeneratePoints = append(s.degeneratePoints, start)
			}
		} else {
			s.segsOffsets = append(s.segsOffsets, subpathStart)
			s.subpathClosed = append(s.subpathClosed, closed)
		}
		subpathStart = len(s.segs)
		inSubpath = false
		sawDraw = false
	}

	for cmd, pts := range src {
		switch cmd {
		case CmdMoveTo:
			endSubpath(false)
			cur = pts[0]
			start = cur
			subpathStart = len(s.segs)
			inSubpath = true
			sawDraw = false

		case CmdLineTo:
			if !inSubpath {
				continue
			}
			sawDraw = true
			s.addSegment(cur, pts[0])
			cur = pts[0]

		case CmdCubeTo:
			if !inSubpath {
				continue
			}
			sawDraw = true
			from := cur
			flattenCubic(cur, pts[0], pts[1], pts[2], defaultFlatness,
				func(v vec.Vec2) bool {
					s.addSegment(from, v)
					from = v
					return true
				})
			cur = pts[2]

		case CmdClose:
			if !inSubpath {
				continue
			}
			if cur != start {
				s.addSegment(cur, start)
			}
			endSubpath(true)
			cur = start
		}
	}
	endSubpath(false)
}

// addSegment appends a segment to the flattening buffer, skipping
// segments too short to have a direction.
func (s *stroker) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	s.segs = append(s.segs, strokeSegment{A: a, B: b, T: t, N: n})
}

// subpathSegments returns the segments of subpath i as a slice into segs.
func (s *stroker) subpathSegments(i int) []strokeSegment {
	begin := s.segsOffsets[i]
	end := len(s.segs)
	if i+1 < len(s.segsOffsets) {
		end = s.segsOffsets[i+1]
	}
	return s.segs[begin:end]
}

// strokeSubpath appends the outline contours for one subpath.
//
// A closed subpath yields two contours, one along the +N offsets
// walking forward and one along the -N offsets walking backward; under
// the nonzero rule they combine into a ring.  An open subpath yields a
// single contour: the +N side forward, the end cap, the -N side
// backward, and the start cap.  Join geometry is added on the outer
// side of each corner, which depends on the turn direction.
// Zero-length subpaths are handled by the caller.
func (s *stroker) strokeSubpath(segs []strokeSegment, closed bool) {
	if len(segs) == 0 {
		return
	}

	d := s.style.Width / 2

	if closed {
		first := &segs[0]
		last := &segs[len(segs)-1]
		sinThetaClose := last.T.X*first.T.Y - last.T.Y*first.T.X

		// +N side, forward.  The corner between the last and the first
		// segment is handled at the end of the loop; closing the
		// contour supplies the edge back to the start vertex.
		s.beginContour()
		s.vertex(first.A.Add(first.N.Mul(d)))
		for i := range segs {
			seg := &segs[i]
			if i < len(segs)-1 {
				next := &segs[i+1]
				sinTheta := seg.T.X*next.T.Y - seg.T.Y*next.T.X
				if math.Abs(sinTheta) < collinearityThreshold {
					// Nearly collinear: just add offset points
					s.vertex(seg.B.Add(seg.N.Mul(d)))
					s.vertex(next.A.Add(next.N.Mul(d)))
				} else if sinTheta > 0 {
					// Right turn: +N is the inner side
					s.addInnerIntersectionOrOffsets(seg.B, seg.T, next.T, seg.N, next.N, d, true)
				} else {
					// Left turn: +N is the outer side
					s.vertex(seg.B.Add(seg.N.Mul(d)))
					s.addJoin(seg.B, seg.T, next.T, d, true)
					s.vertex(next.A.Add(next.N.Mul(d)))
				}
			} else {
				// Closing corner back to the first segment
				if math.Abs(sinThetaClose) < collinearityThreshold {
					s.vertex(seg.B.Add(seg.N.Mul(d)))
				} else if sinThetaClose > 0 {
					s.addInnerIntersectionOrOffsets(seg.B, seg.T, first.T, seg.N, first.N, d, true)
				} else {
					s.vertex(seg.B.Add(seg.N.Mul(d)))
					s.addJoin(seg.B, seg.T, first.T, d, true)
				}
			}
		}
		s.endContour()

		// -N side, backward.  The closing corner comes first, then the
		// interior corners in reverse order.
		s.beginContour()
		if math.Abs(sinThetaClose) < collinearityThreshold {
			s.vertex(first.A.Sub(first.N.Mul(d)))
			s.vertex(last.B.Sub(last.N.Mul(d)))
		} else if sinThetaClose > 0 {
			// Right turn: -N is the outer side
			s.vertex(first.A.Sub(first.N.Mul(d)))
			s.addJoin(first.A, last.T, first.T, d, false)
			s.vertex(last.B.Sub(last.N.Mul(d)))
		} else {
			// Left turn: -N is the inner side
			s.addInnerIntersectionOrOffsets(first.A, last.T, first.T, last.N, first.N, d, false)
		}
		for i := len(segs) - 1; i > 0; i-- {
			seg := &segs[i]
			prev := &segs[i-1]
			sinTheta := prev.T.X*seg.T.Y - prev.T.Y*seg.T.X
			if math.Abs(sinTheta) < collinearityThreshold {
				s.vertex(seg.A.Sub(seg.N.Mul(d)))
				s.vertex(prev.B.Sub(prev.N.Mul(d)))
			} else if sinTheta > 0 {
				// Right turn: -N is the outer side
				s.vertex(seg.A.Sub(seg.N.Mul(d)))
				s.addJoin(seg.A, prev.T, seg.T, d, false)
				s.vertex(prev.B.Sub(prev.N.Mul(d)))
			} else {
				// Left turn: -N is the inner side
				s.addInnerIntersectionOrOffsets(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
			}
		}
		s.endContour()

	} else {
		first := &segs[0]
		last := &segs[len(segs)-1]

		s.beginContour()

		// Start cap (at first.A, direction = -T)
		s.addCap(first.A, first.T.Mul(-1), d)

		// Forward pass: +N side
		skipNextA := false
		for i := range segs {
			seg := &segs[i]
			if !skipNextA {
				s.vertex(seg.A.Add(seg.N.Mul(d)))
			}
			skipNextA = false
			if i < len(segs)-1 {
				next := &segs[i+1]
				sinTheta := seg.T.X*next.T.Y - seg.T.Y*next.T.X
				if math.Abs(sinTheta) < collinearityThreshold {
					// Nearly collinear: just add offset points
					s.vertex(seg.B.Add(seg.N.Mul(d)))
				} else if sinTheta > 0 {
					// Right turn: +N is the inner side
					skipNextA = s.addInnerIntersectionOrOffsets(seg.B, seg.T, next.T, seg.N, next.N, d, true)
				} else {
					// Left turn: +N is the outer side
					s.vertex(seg.B.Add(seg.N.Mul(d)))
					s.addJoin(seg.B, seg.T, next.T, d, true)
				}
			} else {
				s.vertex(seg.B.Add(seg.N.Mul(d)))
			}
		}

		// End cap (at last.B, direction = T)
		s.addCap(last.B, last.T, d)

		// Backward pass: -N side
		skipNextB := false
		for i := len(segs) - 1; i >= 0; i-- {
			seg := &segs[i]
			if !skipNextB {
				s.vertex(seg.B.Sub(seg.N.Mul(d)))
			}
			skipNextB = false
			if i > 0 {
				prev := &segs[i-1]
				sinTheta := prev.T.X*seg.T.Y - prev.T.Y*seg.T.X
				if math.Abs(sinTheta) < collinearityThreshold {
					// Nearly collinear: just add offset points
					s.vertex(seg.A.Sub(seg.N.Mul(d)))
				} else if sinTheta > 0 {
					// Right turn: -N is the outer side
					s.vertex(seg.A.Sub(seg.N.Mul(d)))
					s.addJoin(seg.A, prev.T, seg.T, d, false)
				} else {
					// Left turn: -N is the inner side
					skipNextB = s.addInnerIntersectionOrOffsets(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
				}
			} else {
				s.vertex(seg.A.Sub(seg.N.Mul(d)))
			}
		}

		s.endContour()
	}
}

// addCap adds a line cap to the contour at point P.
// T is the outward tangent direction (away from the line).
// d is half the stroke width.
func (s *stroker) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch s.style.Cap {
	case LineCapButt:
		// The chord between the two offset points, added by the
		// caller, is the cap.

	case LineCapSquare:
		ext := P.Add(T.Mul(d))
		left := ext.Add(N.Mul(d))
		right := ext.Sub(N.Mul(d))
		s.vertex(left)
		s.vertex(right)

	case LineCapRound:
		// Semicircle from N through T to -N.  The start point is not
		// yet part of the contour, so includeStart is true.
		s.addArc(P, d, N, -math.Pi, true)
	}
}

// computeInnerIntersection returns the intersection point of the two
// inner offset lines at a corner.  For nearly collinear segments there
// is no meaningful intersection and ok is false.
func computeInnerIntersection(P, T1, T2 vec.Vec2, d float64, isPositiveNormalSide bool) (vec.Vec2, bool) {
	cosTheta := T1.Dot(T2)
	if cosTheta > 1-1e-9 {
		return vec.Vec2{}, false
	}

	// cos(theta/2) = sqrt((1 + cos theta) / 2)
	halfAngle := math.Sqrt((1 + cosTheta) / 2)
	if halfAngle < 1e-9 {
		return vec.Vec2{}, false
	}

	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}

	innerDir := N1.Add(N2)
	if !isPositiveNormalSide {
		innerDir = innerDir.Mul(-1)
	}
	innerDirLen := innerDir.Length()
	if innerDirLen < 1e-9 {
		return vec.Vec2{}, false
	}
	innerDir = innerDir.Mul(1 / innerDirLen)

	return P.Add(innerDir.Mul(d / halfAngle)), true
}

// addInnerIntersectionOrOffsets handles the inner side of a corner.
// If an intersection can be computed, only that point is added, and
// the result is true to tell the caller to skip the next offset point.
// Otherwise both offset points are added.
func (s *stroker) addInnerIntersectionOrOffsets(P, T1, T2, N1, N2 vec.Vec2, d float64, isPositiveNormalSide bool) bool {
	if innerPt, ok := computeInnerIntersection(P, T1, T2, d, isPositiveNormalSide); ok {
		s.vertex(innerPt)
		return true
	}
	if isPositiveNormalSide {
		s.vertex(P.Add(N1.Mul(d)))
		s.vertex(P.Add(N2.Mul(d)))
	} else {
		s.vertex(P.Sub(N1.Mul(d)))
		s.vertex(P.Sub(N2.Mul(d)))
	}
	return false
}

// addJoin adds a line join at point P where the tangent changes from
// T1 to T2.  d is half the stroke width.  isPositiveNormalSide
// indicates which side of the stroke is being built.
func (s *stroker) addJoin(P, T1, T2 vec.Vec2, d float64, isPositiveNormalSide bool) {
	cosTheta := T1.Dot(T2)
	sinTheta := T1.X*T2.Y - T1.Y*T2.X

	// Skip if nearly collinear
	if sinTheta > -collinearityThreshold && sinTheta < collinearityThreshold {
		return
	}

	// The path doubles back on itself at a cusp; emit two caps
	// instead of a join.
	if cosTheta < cuspCosineThreshold {
		s.addCap(P, T1, d)
		s.addCap(P, T2.Mul(-1), d)
		return
	}

	switch s.style.Join {
	case LineJoinMiter:
		// The miter tip sits where the two offset lines intersect, at
		// distance d / sin(phi/2) from P, with phi the interior angle
		// of the corner.  With theta the angle between the tangents,
		// sin(phi/2) = cos(theta/2) = sqrt((1 + cos theta) / 2).
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		// Small tolerance for boundary cases
		const miterEpsilon = 1e-10
		if sinHalf > 0 && 1/sinHalf <= s.style.MiterLimit+miterEpsilon {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			N2 := vec.Vec2{X: -T2.Y, Y: T2.X}

			var bisector vec.Vec2
			if isPositiveNormalSide {
				bisector = N1.Add(N2)
			} else {
				bisector = N1.Add(N2).Mul(-1)
			}
			bisectorLen := bisector.Length()
			if bisectorLen > zeroLengthThreshold {
				bisector = bisector.Mul(1 / bisectorLen)
				miterDist := d / sinHalf
				s.vertex(P.Add(bisector.Mul(miterDist)))
			}
			return
		}
		// Miter limit exceeded
		fallthrough

	case LineJoinBevel:
		// The chord between the two offset points, added by the
		// caller, is the bevel.
		return

	case LineJoinRound:
		// Arc curving outward on the current side.  The start point is
		// already part of the contour, so includeStart is false.
		angle := math.Acos(max(-1, min(1, cosTheta)))
		if isPositiveNormalSide {
			// Forward pass: arc from +N of T1 to +N of T2
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			if sinTheta > 0 {
				s.addArc(P, d, N1, angle, false)
			} else {
				s.addArc(P, d, N1, -angle, false)
			}
		} else {
			// Backward pass: the contour already has the offset point
			// for T2's normal, so the arc runs from -N of T2 to -N of
			// T1, with the sweep direction reversed.
			N2 := vec.Vec2{X: T2.Y, Y: -T2.X}
			if sinTheta > 0 {
				s.addArc(P, d, N2, -angle, false)
			} else {
				s.addArc(P, d, N2, angle, false)
			}
		}
	}
}

// addArc adds arc vertices to the contour.  startDir is the unit
// vector from center to the arc start, sweep the sweep angle in
// radians (positive = CCW).  includeStart indicates whether the start
// point itself is added (false if the caller already added it).
func (s *stroker) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	if radius < defaultFlatness {
		// Arc too small to matter, add the end point (and start if needed)
		if includeStart {
			s.vertex(center.Add(startDir.Mul(radius)))
		}
		cos, sin := math.Cos(sweep), math.Sin(sweep)
		endDir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		s.vertex(center.Add(endDir.Mul(radius)))
		return
	}

	// A chord subtending the angle theta deviates from the arc by the
	// sagitta radius*(1 - cos(theta/2)).  Keeping that below the
	// flattening tolerance gives theta = 2*acos(1 - tol/radius).
	absSweep := math.Abs(sweep)

	angleStep := 2 * math.Acos(1-defaultFlatness/radius)
	if angleStep <= 0 || math.IsNaN(angleStep) {
		angleStep = math.Pi / 4 // fallback
	}
	n := max(int(math.Ceil(absSweep/angleStep)), 1)

	dt := sweep / float64(n)
	startI := 0
	if !includeStart {
		startI = 1
	}
	for i := startI; i <= n; i++ {
		angle := float64(i) * dt
		cos, sin := math.Cos(angle), math.Sin(angle)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		s.vertex(center.Add(dir.Mul(radius)))
	}
}

// addSquare adds a square of side 2*d centred on the point, oriented
// by the tangent T.  It is used for point subpaths with square caps.
func (s *stroker) addSquare(center vec.Vec2, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	s.vertex(center.Add(T.Mul(d)).Add(N.Mul(d)))
	s.vertex(center.Add(T.Mul(d)).Sub(N.Mul(d)))
	s.vertex(center.Sub(T.Mul(d)).Sub(N.Mul(d)))
	s.vertex(center.Sub(T.Mul(d)).Add(N.Mul(d)))
}

// beginContour starts a new outline contour.
func (s *stroker) beginContour() {
	s.contour = s.contour[:0]
}

// vertex appends a point to the contour being built.
func (s *stroker) vertex(pt vec.Vec2) {
	s.contour = append(s.contour, pt)
}

// endContour copies the pending contour into the output path as a
// closed subpath.  Contours with fewer than three vertices enclose no
// area and are dropped.
func (s *stroker) endContour() {
	if len(s.contour) < 3 {
		return
	}
	s.out.MoveTo(s.contour[0])
	for _, pt := range s.contour[1:] {
		s.out.LineTo(pt)
	}
	s.out.Close()
}
