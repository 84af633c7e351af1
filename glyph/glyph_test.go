// seehuhn.de/go/chartwheel - astrological chart wheels
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

package glyph

import (
	"errors"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

func sans(t *testing.T) *Face {
	t.Helper()
	f, err := Sans("")
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestSymbols(t *testing.T) {
	f := sans(t)
	for _, r := range "♈♉♊♋♌♍♎♏♐♑♒♓☉☽☿♀♂♃♄♅♆♇☌☍△□⚹●" {
		if !f.Has(r) {
			t.Errorf("no glyph for %q", r)
		}
	}
	if f.Has('\uE000') {
		t.Error("private use character is supported")
	}
	if got := f.Missing("A\uE000b"); !slices.Equal(got, []rune{'\uE000'}) {
		t.Errorf("Missing: got %q", got)
	}
}

func TestExtents(t *testing.T) {
	f := sans(t)
	e := f.Extents("H", 10)
	if e.Width <= 0 || e.Height <= 0 || e.Advance <= e.Width/2 {
		t.Fatalf("unexpected extents %+v", e)
	}
	if e.YBearing >= 0 || e.YBearing+e.Height > 0.01 {
		t.Errorf("H is not above the baseline: %+v", e)
	}

	e2 := f.Extents("H", 20)
	if math.Abs(e2.Width-2*e.Width) > 1e-6 || math.Abs(e2.Advance-2*e.Advance) > 1e-6 {
		t.Errorf("extents do not scale: %+v vs %+v", e, e2)
	}

	e3 := f.Extents("HH", 10)
	if math.Abs(e3.Advance-2*e.Advance) > 1e-6 {
		t.Errorf("advance of HH is %g, want %g", e3.Advance, 2*e.Advance)
	}

	if e := f.Extents("", 10); e != (Extents{}) {
		t.Errorf("empty string has extents %+v", e)
	}
}

func TestAppend(t *testing.T) {
	f := sans(t)
	d := &path.Data{}
	e := f.Append(d, "♈", 12, matrix.Identity.Translate(100, 50))
	if len(d.Cmds) == 0 {
		t.Fatal("no outline")
	}
	if d.Cmds[0] != path.CmdMoveTo || d.Cmds[len(d.Cmds)-1] != path.CmdClose {
		t.Error("outline is not a closed path")
	}

	minX, minY := math.Inf(1), math.Inf(1)
	for _, c := range d.Coords {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
	}
	// control points may lie outside the ink rectangle, but not much
	if math.Abs(minX-(100+e.XBearing)) > 1 || math.Abs(minY-(50+e.YBearing)) > 1 {
		t.Errorf("outline starts at (%g, %g), extents %+v", minX, minY, e)
	}
}

func TestNewFace(t *testing.T) {
	if _, err := NewFace(); !errors.Is(err, ErrNoFont) {
		t.Errorf("got %v, want ErrNoFont", err)
	}
	if _, err := Sans("/does/not/exist.ttf"); err == nil {
		t.Error("missing font file was accepted")
	}
	if _, err := Parse([]byte("not a font")); err == nil {
		t.Error("garbage was parsed as a font")
	}
}

func TestMono(t *testing.T) {
	f, err := Mono("")
	if err != nil {
		t.Fatal(err)
	}
	a := f.Extents("i", 10).Advance
	b := f.Extents("m", 10).Advance
	if a <= 0 || math.Abs(a-b) > 1e-9 {
		t.Errorf("advances %g and %g differ", a, b)
	}
}
