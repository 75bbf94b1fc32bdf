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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func hLine(y, x0, x1 float64) *Path {
	return NewPath().MoveTo(vec.Vec2{X: x0, Y: y}).LineTo(vec.Vec2{X: x1, Y: y})
}

func checkSegments(t *testing.T, got, want []segment) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d segments, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].cmd != want[i].cmd || !vecNear(got[i].pts[0], want[i].pts[0], 1e-9) {
			t.Errorf("segment %d: got %s %v, want %s %v",
				i, got[i].cmd, got[i].pts, want[i].cmd, want[i].pts)
		}
	}
}

func TestDashedBasic(t *testing.T) {
	p := hLine(0, 0, 16)
	got := collectSegments(p.Dashed(0, []float64{4, 4}))
	want := []segment{
		{CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}},
		{CmdLineTo, []vec.Vec2{{X: 4, Y: 0}}},
		{CmdMoveTo, []vec.Vec2{{X: 8, Y: 0}}},
		{CmdLineTo, []vec.Vec2{{X: 12, Y: 0}}},
	}
	checkSegments(t, got, want)
}

func TestDashedPhase(t *testing.T) {
	p := hLine(0, 0, 16)
	want := []segment{
		{CmdMoveTo, []vec.Vec2{{X: 4, Y: 0}}},
		{CmdLineTo, []vec.Vec2{{X: 8, Y: 0}}},
		{CmdMoveTo, []vec.Vec2{{X: 12, Y: 0}}},
		{CmdLineTo, []vec.Vec2{{X: 16, Y: 0}}},
	}

	got := collectSegments(p.Dashed(4, []float64{4, 4}))
	checkSegments(t, got, want)

	// A negative phase wraps around the pattern period.
	got = collectSegments(p.Dashed(-4, []float64{4, 4}))
	checkSegments(t, got, want)
}

func TestDashedOddPattern(t *testing.T) {
	// An odd pattern repeats with inverted parity: on 5, off 5, ...
	p := hLine(0, 0, 20)
	got := collectSegments(p.Dashed(0, []float64{5}))
	want := []segment{
		{CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}},
		{CmdLineTo, []vec.Vec2{{X: 5, Y: 0}}},
		{CmdMoveTo, []vec.Vec2{{X: 10, Y: 0}}},
		{CmdLineTo, []vec.Vec2{{X: 15, Y: 0}}},
	}
	checkSegments(t, got, want)
}

func TestDashedDots(t *testing.T) {
	// Zero-length "on" runs become point subpaths.
	p := hLine(0, 0, 10)
	got := collectSegments(p.Dashed(0, []float64{0, 5}))
	want := []segment{
		{CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}},
		{CmdClose, []vec.Vec2{{X: 0, Y: 0}}},
		{CmdMoveTo, []vec.Vec2{{X: 5, Y: 0}}},
		{CmdClose, []vec.Vec2{{X: 5, Y: 0}}},
	}
	checkSegments(t, got, want)
}

func TestDashedInvalidPattern(t *testing.T) {
	p := NewPath().Rect(0, 0, 10, 10)
	flat := collectSegments(p.Flat())

	for _, pattern := range [][]float64{nil, {}, {4, -1}, {0, 0}} {
		got := collectSegments(p.Dashed(0, pattern))
		checkSegments(t, got, flat)
	}
}

func TestDashedSubpathRestart(t *testing.T) {
	p := hLine(0, 0, 10)
	p.MoveTo(vec.Vec2{X: 0, Y: 5}).LineTo(vec.Vec2{X: 10, Y: 5})
	got := collectSegments(p.Dashed(0, []float64{6, 2}))
	want := []segment{
		{CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}},
		{CmdLineTo, []vec.Vec2{{X: 6, Y: 0}}},
		{CmdMoveTo, []vec.Vec2{{X: 8, Y: 0}}},
		{CmdLineTo, []vec.Vec2{{X: 10, Y: 0}}},
		{CmdMoveTo, []vec.Vec2{{X: 0, Y: 5}}},
		{CmdLineTo, []vec.Vec2{{X: 6, Y: 5}}},
		{CmdMoveTo, []vec.Vec2{{X: 8, Y: 5}}},
		{CmdLineTo, []vec.Vec2{{X: 10, Y: 5}}},
	}
	checkSegments(t, got, want)
}

func TestDashedClosedSubpath(t *testing.T) {
	// Closed subpaths are dashed like open ones; every dash becomes
	// its own open subpath and no Close commands survive.
	p := NewPath().Rect(0, 0, 10, 10)
	got := collectSegments(p.Dashed(0, []float64{5, 5}))

	var moves, lines, closes int
	for _, seg := range got {
		switch seg.cmd {
		case CmdMoveTo:
			moves++
		case CmdLineTo:
			lines++
		case CmdClose:
			closes++
		}
	}
	if moves != 4 || lines != 4 || closes != 0 {
		t.Errorf("got %d moves, %d lines, %d closes, want 4/4/0", moves, lines, closes)
	}
}

func TestDashedAcrossCorner(t *testing.T) {
	// A dash spanning a corner stays a single subpath.
	p := NewPath().Rect(0, 0, 10, 10)
	got := collectSegments(p.Dashed(0, []float64{12, 4}))
	want := []segment{
		{CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}},
		{CmdLineTo, []vec.Vec2{{X: 10, Y: 0}}},
		{CmdLineTo, []vec.Vec2{{X: 10, Y: 2}}},
	}
	if len(got) < 3 {
		t.Fatalf("got %d segments", len(got))
	}
	checkSegments(t, got[:3], want)
}

func TestCloneDashed(t *testing.T) {
	p := hLine(0, 0, 16)
	q := p.CloneDashed(0, []float64{4, 4})
	got := collectSegments(q.Iter())
	if len(got) != 4 {
		t.Fatalf("got %d segments, want 4", len(got))
	}
	if q == p {
		t.Error("CloneDashed returned the receiver")
	}
}
