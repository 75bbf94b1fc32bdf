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

// Dashed returns a traversal over the flattened path cut into dashes.
//
// The pattern lists alternating "on" and "off" lengths, starting with
// "on"; a pattern of odd length repeats with inverted parity, doubling
// its period.  The phase shifts the pattern start backwards along the
// path and may be negative.  The pattern restarts at the beginning of
// every subpath.  Each dash becomes its own open subpath; closed
// subpaths are dashed like open ones, the last dash is not joined to
// the first.
//
// A pattern that is empty, contains a negative length, or has no
// positive length leaves the path unchanged (except for flattening).
//
// An "on" length of zero yields a point subpath, a MoveTo directly
// followed by a Close.  Stroking inflates such dots into discs or
// squares depending on the cap style.
func (p *Path) Dashed(phase float64, pattern []float64) Seq {
	n := len(pattern)
	valid := n > 0
	anyPositive := false
	period := 0.0
	for _, d := range pattern {
		if d < 0 {
			valid = false
			break
		}
		if d > 0 {
			anyPositive = true
		}
		period += d
	}
	if !valid || !anyPositive {
		return p.Flat()
	}
	if n%2 == 1 {
		period *= 2
	}

	phase = math.Mod(phase, period)
	if phase < 0 {
		phase += period
	}

	// advance the cursor to the position selected by the phase
	idx0 := 0
	rem0 := pattern[0]
	for phase > 0 {
		if phase >= rem0 {
			phase -= rem0
			idx0++
			rem0 = pattern[idx0%n]
		} else {
			rem0 -= phase
			phase = 0
		}
	}

	return func(yield func(PathCommand, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		move := func(v vec.Vec2) bool {
			buf[0] = v
			return yield(CmdMoveTo, buf[:])
		}
		line := func(v vec.Vec2) bool {
			buf[0] = v
			return yield(CmdLineTo, buf[:])
		}
		closeDot := func(v vec.Vec2) bool {
			buf[0] = v
			return yield(CmdClose, buf[:])
		}

		idx := 0
		rem := 0.0
		emptyDash := false
		on := func() bool { return idx%2 == 0 }
		// advance moves to the next run of the pattern; a run of the
		// "on" kind opens a new dash at pos.  A zero-length "on" run
		// is closed into a point subpath when it is left again.
		advance := func(pos vec.Vec2) bool {
			if emptyDash {
				emptyDash = false
				if !closeDot(pos) {
					return false
				}
			}
			idx++
			rem = pattern[idx%n]
			if on() {
				emptyDash = rem == 0
				return move(pos)
			}
			return true
		}

		var cur vec.Vec2
		inSubpath := false
		for cmd, pts := range p.Flat() {
			switch cmd {
			case CmdMoveTo:
				idx, rem = idx0, rem0
				cur = pts[0]
				inSubpath = true
				emptyDash = false
				if on() {
					emptyDash = rem == 0
					if !move(cur) {
						return
					}
				}

			case CmdLineTo, CmdClose:
				if !inSubpath {
					cur = pts[0]
					continue
				}
				target := pts[0]
				seg := target.Sub(cur)
				segLen := seg.Length()
				if segLen > 0 {
					dir := seg.Mul(1 / segLen)
					travelled := 0.0
					for travelled < segLen {
						for rem == 0 {
							if !advance(cur.Add(dir.Mul(travelled))) {
								return
							}
						}
						take := min(rem, segLen-travelled)
						travelled += take
						rem -= take
						if on() {
							if !line(cur.Add(dir.Mul(travelled))) {
								return
							}
						}
					}
				}
				cur = target
				if cmd == CmdClose {
					inSubpath = false
				}
			}
		}
	}
}
