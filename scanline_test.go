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
	"reflect"
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func vecXY(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func TestTrimZeros(t *testing.T) {
	tests := []struct {
		name       string
		in         []float32
		want       []float32
		wantOffset int
	}{
		{"empty", nil, nil, 0},
		{"all_zero", []float32{0, 0, 0}, nil, 0},
		{"no_zeros", []float32{1, 0.5, 1}, []float32{1, 0.5, 1}, 0},
		{"leading", []float32{0, 0, 1, 1}, []float32{1, 1}, 2},
		{"trailing", []float32{1, 1, 0, 0}, []float32{1, 1}, 0},
		{"both", []float32{0, 0.5, 1, 0.5, 0}, []float32{0.5, 1, 0.5}, 1},
		{"interior_kept", []float32{0, 1, 0, 1, 0}, []float32{1, 0, 1}, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, offset := trimZeros(test.in)
			if !slices.Equal(got, test.want) || offset != test.wantOffset {
				t.Errorf("trimZeros(%v) = %v, %d; want %v, %d",
					test.in, got, offset, test.want, test.wantOffset)
			}
		})
	}
}

func TestIntegrateScanlineNonZero(t *testing.T) {
	tests := []struct {
		name  string
		cover []float32
		area  []float32
		want  []float32
	}{
		{
			"single_crossing",
			[]float32{0, 0, 1, 0, 0},
			[]float32{0, 0, 0.5, 0, 0},
			[]float32{0, 0, 0.5, 1, 1},
		},
		{
			"enter_and_leave",
			[]float32{1, -1, 0},
			[]float32{0.5, -0.5, 0},
			[]float32{0.5, 0.5, 0},
		},
		{
			"winding_two_clamps",
			[]float32{2, 0},
			[]float32{2, 0},
			[]float32{1, 1},
		},
		{
			"negative_winding",
			[]float32{-1, 0},
			[]float32{-1, 0},
			[]float32{1, 1},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := slices.Clone(test.cover)
			integrateScanlineNonZero(got, test.area)
			if !slices.Equal(got, test.want) {
				t.Errorf("got %v, want %v", got, test.want)
			}
		})
	}
}

func TestIntegrateScanlineEvenOdd(t *testing.T) {
	tests := []struct {
		name  string
		cover []float32
		area  []float32
		want  []float32
	}{
		{
			"winding_one",
			[]float32{1, 0},
			[]float32{1, 0},
			[]float32{1, 1},
		},
		{
			"winding_two_folds",
			[]float32{2, 0},
			[]float32{2, 0},
			[]float32{0, 0},
		},
		{
			"raw_one_and_a_half",
			[]float32{1.5, 0},
			[]float32{1.5, 0},
			[]float32{0.5, 0.5},
		},
		{
			"negative_winding",
			[]float32{-1, 0},
			[]float32{-1, 0},
			[]float32{1, 1},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := slices.Clone(test.cover)
			integrateScanlineEvenOdd(got, test.area)
			if !slices.Equal(got, test.want) {
				t.Errorf("got %v, want %v", got, test.want)
			}
		})
	}
}

type span struct {
	y, x int
	cov  []float32
}

func collectSpans(r *Rasteriser, p *Path, ctm Matrix, rule FillRule) []span {
	var spans []span
	r.Fill(p.Iter(), ctm, rule, func(y, xMin int, coverage []float32) {
		spans = append(spans, span{y, xMin, slices.Clone(coverage)})
	})
	return spans
}

func TestFillImplicitClose(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 16, URy: 16})

	open := NewPath().MoveTo(vecXY(0, 0)).LineTo(vecXY(10, 0)).LineTo(vecXY(10, 10))
	closed := open.Clone().Close()

	a := collectSpans(r, open, Identity(), FillRuleNonZero)
	b := collectSpans(r, closed, Identity(), FillRuleNonZero)
	if !reflect.DeepEqual(a, b) {
		t.Error("open subpath not filled as if closed")
	}
	if len(a) == 0 {
		t.Fatal("no coverage emitted")
	}
}

func TestFillClip(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	p := NewPath().Rect(-5, -5, 20, 20)

	for _, rule := range []FillRule{FillRuleNonZero, FillRuleEvenOdd} {
		spans := collectSpans(r, p, Identity(), rule)
		if len(spans) != 10 {
			t.Fatalf("%s: got %d spans, want 10", rule, len(spans))
		}
		for i, s := range spans {
			if s.y != i || s.x != 0 || len(s.cov) != 10 {
				t.Errorf("%s: span %d = y%d x%d len%d", rule, i, s.y, s.x, len(s.cov))
				continue
			}
			for _, c := range s.cov {
				if c != 1 {
					t.Errorf("%s: row %d has coverage %v", rule, s.y, s.cov)
					break
				}
			}
		}
	}
}

func TestFillFractionalRect(t *testing.T) {
	// A 1x1 rectangle straddling the boundary between two pixel
	// columns covers half of each.
	r := NewRasteriser(rect.Rect{URx: 3, URy: 1})
	p := NewPath().Rect(0.5, 0, 1, 1)

	spans := collectSpans(r, p, Identity(), FillRuleNonZero)
	want := []span{{0, 0, []float32{0.5, 0.5}}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("got %v, want %v", spans, want)
	}
}

func TestFillStrategiesMatch(t *testing.T) {
	p := NewPath().Rect(0.5, 0, 1, 1)

	run := func(threshold int) []span {
		r := NewRasteriser(rect.Rect{URx: 3, URy: 1})
		r.smallPathThreshold = threshold
		return collectSpans(r, p, Identity(), FillRuleNonZero)
	}

	small := run(1 << 30) // always use the 2D buffers
	large := run(0)       // always use the active edge list
	if !reflect.DeepEqual(small, large) {
		t.Errorf("strategies disagree: %v vs %v", small, large)
	}
}

func TestFillRuleOverlap(t *testing.T) {
	// Two rectangles with the same winding, overlapping in x=[2,4).
	r := NewRasteriser(rect.Rect{URx: 8, URy: 1})
	p := NewPath().Rect(0, 0, 4, 1).Rect(2, 0, 4, 1)

	spans := collectSpans(r, p, Identity(), FillRuleNonZero)
	want := []span{{0, 0, []float32{1, 1, 1, 1, 1, 1}}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("nonzero: got %v, want %v", spans, want)
	}

	spans = collectSpans(r, p, Identity(), FillRuleEvenOdd)
	want = []span{{0, 0, []float32{1, 1, 0, 0, 1, 1}}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("evenodd: got %v, want %v", spans, want)
	}
}

func TestFillWithTransform(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 4, URy: 4})
	p := NewPath().Rect(0, 0, 1, 1)

	spans := collectSpans(r, p, Scale(2, 2), FillRuleNonZero)
	want := []span{
		{0, 0, []float32{1, 1}},
		{1, 0, []float32{1, 1}},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("got %v, want %v", spans, want)
	}
}

func TestFillEmptyPath(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 8, URy: 8})
	for _, p := range []*Path{
		NewPath(),
		NewPath().MoveTo(vecXY(3, 3)),
		NewPath().MoveTo(vecXY(1, 1)).LineTo(vecXY(5, 1)), // single horizontal edge
	} {
		if spans := collectSpans(r, p, Identity(), FillRuleNonZero); len(spans) != 0 {
			t.Errorf("degenerate path emitted %d spans", len(spans))
		}
	}
}
