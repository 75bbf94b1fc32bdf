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
	"math"
	"strconv"

	pstrconv "github.com/tdewolff/parse/v2/strconv"

	"seehuhn.de/go/geom/vec"
)

// isSpace reports whether c is SVG white space.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// skipSpace advances i past white space in s.
func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// skipSeparator advances i past white space and at most one comma.
func skipSeparator(s string, i int) int {
	i = skipSpace(s, i)
	if i < len(s) && s[i] == ',' {
		i = skipSpace(s, i+1)
	}
	return i
}

// startsNumber reports whether c can begin an SVG number.
func startsNumber(c byte) bool {
	return c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'
}

// ParsePath parses SVG path data and returns the described path.
// All commands of the path mini-language are supported, including
// relative forms, smooth curve shorthands, elliptical arcs and
// implicit command repetition.  On error, ParsePath returns nil and
// no partially built path escapes.
func ParsePath(s string) (*Path, error) {
	pp := pathParser{b: []byte(s), path: NewPath()}
	if err := pp.run(); err != nil {
		return nil, err
	}
	return pp.path, nil
}

type pathParser struct {
	b    []byte
	pos  int
	path *Path

	cur   vec.Vec2 // current point
	start vec.Vec2 // start point of the current subpath

	lastCmd   byte     // previous command letter, 0 before the first
	ctrlCubic vec.Vec2 // last cubic control point, for S
	ctrlQuad  vec.Vec2 // last quadratic control point, for T
}

func (pp *pathParser) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("invalid path data at byte %d: %s", pp.pos, msg)
}

func (pp *pathParser) run() error {
	var cmd byte
	for {
		pp.pos = skipSpaceBytes(pp.b, pp.pos)
		if pp.pos == len(pp.b) {
			return nil
		}
		c := pp.b[pp.pos]
		switch {
		case isCommandLetter(c):
			cmd = c
			pp.pos++
		case cmd == 0:
			return pp.errorf("path must start with a moveto command")
		case startsNumber(c):
			// implicit repetition of the previous command
			switch cmd {
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			case 'Z', 'z':
				return pp.errorf("number after closepath")
			}
		default:
			return pp.errorf("unexpected character %q", rune(c))
		}
		if cmd != 'M' && cmd != 'm' && pp.lastCmd == 0 {
			return pp.errorf("path must start with a moveto command")
		}
		if err := pp.exec(cmd); err != nil {
			return err
		}
		pp.lastCmd = cmd
	}
}

func isCommandLetter(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't',
		'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

// exec consumes the arguments of one command instance and applies it.
func (pp *pathParser) exec(cmd byte) error {
	rel := cmd >= 'a'
	switch cmd {
	case 'M', 'm':
		v, err := pp.point(rel)
		if err != nil {
			return err
		}
		pp.path.MoveTo(v)
		pp.cur = v
		pp.start = v

	case 'L', 'l':
		v, err := pp.point(rel)
		if err != nil {
			return err
		}
		pp.path.LineTo(v)
		pp.cur = v

	case 'H', 'h':
		x, err := pp.number()
		if err != nil {
			return err
		}
		if rel {
			x += pp.cur.X
		}
		v := vec.Vec2{X: x, Y: pp.cur.Y}
		pp.path.LineTo(v)
		pp.cur = v

	case 'V', 'v':
		y, err := pp.number()
		if err != nil {
			return err
		}
		if rel {
			y += pp.cur.Y
		}
		v := vec.Vec2{X: pp.cur.X, Y: y}
		pp.path.LineTo(v)
		pp.cur = v

	case 'C', 'c':
		c1, err := pp.point(rel)
		if err != nil {
			return err
		}
		c2, err := pp.point(rel)
		if err != nil {
			return err
		}
		v, err := pp.point(rel)
		if err != nil {
			return err
		}
		pp.path.CubeTo(c1, c2, v)
		pp.ctrlCubic = c2
		pp.cur = v

	case 'S', 's':
		// reflect the previous cubic control point, if any
		c1 := pp.cur
		switch pp.lastCmd {
		case 'C', 'c', 'S', 's':
			c1 = pp.cur.Mul(2).Sub(pp.ctrlCubic)
		}
		c2, err := pp.point(rel)
		if err != nil {
			return err
		}
		v, err := pp.point(rel)
		if err != nil {
			return err
		}
		pp.path.CubeTo(c1, c2, v)
		pp.ctrlCubic = c2
		pp.cur = v

	case 'Q', 'q':
		q, err := pp.point(rel)
		if err != nil {
			return err
		}
		v, err := pp.point(rel)
		if err != nil {
			return err
		}
		pp.path.QuadTo(q, v)
		pp.ctrlQuad = q
		pp.cur = v

	case 'T', 't':
		// reflect the previous quadratic control point, if any
		q := pp.cur
		switch pp.lastCmd {
		case 'Q', 'q', 'T', 't':
			q = pp.cur.Mul(2).Sub(pp.ctrlQuad)
		}
		v, err := pp.point(rel)
		if err != nil {
			return err
		}
		pp.path.QuadTo(q, v)
		pp.ctrlQuad = q
		pp.cur = v

	case 'A', 'a':
		rx, err := pp.number()
		if err != nil {
			return err
		}
		ry, err := pp.number()
		if err != nil {
			return err
		}
		rot, err := pp.number()
		if err != nil {
			return err
		}
		largeArc, err := pp.flag()
		if err != nil {
			return err
		}
		sweep, err := pp.flag()
		if err != nil {
			return err
		}
		v, err := pp.point(rel)
		if err != nil {
			return err
		}
		pp.path.ArcTo(math.Abs(rx), math.Abs(ry), rot*math.Pi/180, largeArc, sweep, v)
		pp.cur = v

	case 'Z', 'z':
		pp.path.Close()
		pp.cur = pp.start
	}
	return nil
}

func (pp *pathParser) number() (float64, error) {
	pp.pos = skipSeparatorBytes(pp.b, pp.pos)
	v, n := pstrconv.ParseFloat(pp.b[pp.pos:])
	if n == 0 {
		return 0, pp.errorf("number expected")
	}
	pp.pos += n
	return v, nil
}

func (pp *pathParser) point(rel bool) (vec.Vec2, error) {
	x, err := pp.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := pp.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	v := vec.Vec2{X: x, Y: y}
	if rel {
		v = v.Add(pp.cur)
	}
	return v, nil
}

// flag reads an arc flag.  Flags are single digits and need no
// separator, so "1 1", "1,1" and "11" all work.
func (pp *pathParser) flag() (bool, error) {
	pp.pos = skipSeparatorBytes(pp.b, pp.pos)
	if pp.pos < len(pp.b) {
		switch pp.b[pp.pos] {
		case '0':
			pp.pos++
			return false, nil
		case '1':
			pp.pos++
			return true, nil
		}
	}
	return false, pp.errorf("arc flag expected")
}

func skipSpaceBytes(b []byte, i int) int {
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	return i
}

func skipSeparatorBytes(b []byte, i int) int {
	i = skipSpaceBytes(b, i)
	if i < len(b) && b[i] == ',' {
		i = skipSpaceBytes(b, i+1)
	}
	return i
}

// SVG returns the path as SVG path data, using the absolute commands
// M, L, C and Z.  Numbers use the shortest decimal form that parses
// back to the same value, so ParsePath(p.SVG()) reproduces the path
// exactly.
func (p *Path) SVG() string {
	var buf []byte
	k := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case CmdMoveTo:
			buf = append(buf, 'M')
			buf = appendSVGPoint(buf, p.coords[k])
		case CmdLineTo:
			buf = append(buf, 'L')
			buf = appendSVGPoint(buf, p.coords[k])
		case CmdCubeTo:
			buf = append(buf, 'C')
			buf = appendSVGPoint(buf, p.coords[k])
			buf = append(buf, ' ')
			buf = appendSVGPoint(buf, p.coords[k+1])
			buf = append(buf, ' ')
			buf = appendSVGPoint(buf, p.coords[k+2])
		case CmdClose:
			buf = append(buf, 'Z')
		}
		k += cmd.arity()
	}
	return string(buf)
}

func appendSVGPoint(buf []byte, v vec.Vec2) []byte {
	buf = strconv.AppendFloat(buf, v.X, 'g', -1, 64)
	buf = append(buf, ' ')
	buf = strconv.AppendFloat(buf, v.Y, 'g', -1, 64)
	return buf
}

// ParseTransform parses an SVG transform list, for example
// "translate(10 20) rotate(45)", and returns the combined matrix.
// The transforms are composed left to right, so the rightmost
// transform is applied to coordinates first.  Angles are in degrees,
// following the SVG syntax.
func ParseTransform(s string) (Matrix, error) {
	m := Identity()
	i := skipSpace(s, 0)
	for i < len(s) {
		j := i
		for j < len(s) && isLetter(s[j]) {
			j++
		}
		if j == i {
			return Matrix{}, fmt.Errorf("invalid transform at byte %d: function name expected", i)
		}
		name := s[i:j]

		i = skipSpace(s, j)
		if i >= len(s) || s[i] != '(' {
			return Matrix{}, fmt.Errorf("invalid transform at byte %d: %q expected", i, '(')
		}
		i++

		var args [6]float64
		n := 0
		for {
			i = skipSeparator(s, i)
			if i < len(s) && s[i] == ')' {
				break
			}
			if n == len(args) {
				return Matrix{}, fmt.Errorf("invalid transform at byte %d: too many arguments", i)
			}
			v, k := pstrconv.ParseFloat([]byte(s[i:]))
			if k == 0 {
				return Matrix{}, fmt.Errorf("invalid transform at byte %d: number expected", i)
			}
			args[n] = v
			n++
			i += k
		}
		i++ // consume ')'

		var t Matrix
		switch {
		case name == "matrix" && n == 6:
			t = Matrix{args[0], args[1], args[2], args[3], args[4], args[5]}
		case name == "translate" && (n == 1 || n == 2):
			t = Translate(args[0], args[1])
		case name == "scale" && n == 1:
			t = Scale(args[0], args[0])
		case name == "scale" && n == 2:
			t = Scale(args[0], args[1])
		case name == "rotate" && n == 1:
			t = Rotate(args[0] * math.Pi / 180)
		case name == "rotate" && n == 3:
			t = Translate(args[1], args[2]).
				Rotated(args[0] * math.Pi / 180).
				Translated(-args[1], -args[2])
		case name == "skewX" && n == 1:
			t = Shear(args[0]*math.Pi/180, 0)
		case name == "skewY" && n == 1:
			t = Shear(0, args[0]*math.Pi/180)
		default:
			return Matrix{}, fmt.Errorf("invalid transform: bad %s() with %d arguments", name, n)
		}
		m = m.Mul(t)

		i = skipSpace(s, i)
		if i < len(s) && s[i] == ',' {
			i = skipSpace(s, i+1)
		}
	}
	return m, nil
}
