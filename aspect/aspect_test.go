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

package aspect

import (
	"math"
	"testing"
)

func TestClassifyExact(t *testing.T) {
	cases := []struct {
		a, b float64
		kind Kind
	}{
		{0, 0, Conjunction},
		{0, 180, Opposition},
		{10, 130, Trine},
		{0, 90, Square},
		{0, 72, Quintile},
		{300, 0, Sextile},
		{0, 360.0 / 7, Septile},
		{0, 30, Inconjunct},
		{359, 359, Conjunction},
	}
	for _, c := range cases {
		a := Classify(c.a, c.b)
		if a.Kind != c.kind {
			t.Errorf("Classify(%g, %g).Kind = %s, want %s", c.a, c.b, a.Kind, c.kind)
		}
		if math.Abs(a.Score-100) > 1e-6 {
			t.Errorf("Classify(%g, %g).Score = %g, want 100", c.a, c.b, a.Score)
		}
	}
}

func TestClassifyNoAspect(t *testing.T) {
	a := Classify(0, 45)
	if a.Kind == Conjunction || a.Kind == Opposition {
		t.Errorf("got %s", a.Kind)
	}
	if a.Kind != None || a.Score != 0 {
		t.Errorf("got kind %s score %g, want no aspect", a.Kind, a.Score)
	}
	if a.Nearest == None {
		t.Error("Nearest should report the best fitting divisor")
	}
	if a.Symbol() != " " {
		t.Errorf("symbol %q", a.Symbol())
	}
}

func TestClassifyApproximate(t *testing.T) {
	a := Classify(0, 3)
	if a.Kind != Conjunction {
		t.Fatalf("got %s", a.Kind)
	}
	// (177/180)^18 * 110 - 10
	want := math.Pow(177.0/180, 18)*110 - 10
	if math.Abs(a.Score-want) > 1e-9 {
		t.Errorf("score %g, want %g", a.Score, want)
	}
	if a.Score >= 100 || a.Score <= 0 {
		t.Errorf("score %g out of range", a.Score)
	}
}

func TestClassifySymmetric(t *testing.T) {
	for a := 0.0; a < 360; a += 23.7 {
		for b := 0.0; b < 360; b += 31.1 {
			x := Classify(a, b)
			y := Classify(b, a)
			if x.Kind != y.Kind || x.Score != y.Score {
				t.Errorf("Classify(%g, %g) != Classify(%g, %g)", a, b, b, a)
			}
			if x.Kind != None && x.Score <= 0 {
				t.Errorf("Classify(%g, %g): kind %s with score %g", a, b, x.Kind, x.Score)
			}
		}
	}
}

func TestSeparation(t *testing.T) {
	cases := []struct{ a, b, want float64 }{
		{0, 0, 0},
		{350, 10, 20},
		{10, 350, 20},
		{0, 180, 180},
		{0, 540, 180},
	}
	for _, c := range cases {
		if got := Separation(c.a, c.b); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("Separation(%g, %g) = %g, want %g", c.a, c.b, got, c.want)
		}
	}
}

func TestFind(t *testing.T) {
	// 45° is in no aspect with any of the others, 135° included.
	got := Find([]float64{0, 45, 90, 180})
	want := []struct {
		p1, p2 int
		kind   Kind
	}{
		{0, 2, Square},
		{0, 3, Opposition},
		{2, 3, Square},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d aspects, want %d: %v", len(got), len(want), got)
	}
	for i, w := range want {
		a := got[i]
		if a.P1 != w.p1 || a.P2 != w.p2 || a.Kind != w.kind {
			t.Errorf("%d: got %d-%d %s, want %d-%d %s", i, a.P1, a.P2, a.Kind, w.p1, w.p2, w.kind)
		}
	}
}

func TestTable(t *testing.T) {
	cases := []struct {
		a, b  float64
		kind  Kind
		score float64
		diff  float64
	}{
		{0, 5, Conjunction, 5, -5},
		{0, 95, Square, 1, -95},
		{10, 350, None, 0, 20},
		{185, 10, Opposition, 3, 175},
		{0, 151, Quincunx, 1, -151},
	}
	for _, c := range cases {
		a := DefaultTable.Classify(c.a, c.b)
		if a.Kind != c.kind {
			t.Errorf("(%g, %g): kind %s, want %s", c.a, c.b, a.Kind, c.kind)
		}
		if math.Abs(a.Score-c.score) > 1e-9 || math.Abs(a.Diff-c.diff) > 1e-9 {
			t.Errorf("(%g, %g): score %g diff %g, want %g %g", c.a, c.b, a.Score, a.Diff, c.score, c.diff)
		}
	}
}

func TestTableFind(t *testing.T) {
	got := DefaultTable.Find([]float64{0, 122, 240})
	if len(got) != 3 {
		t.Fatalf("got %d aspects, want 3", len(got))
	}
	for _, a := range got {
		if a.Kind != Trine {
			t.Errorf("%d-%d: %s", a.P1, a.P2, a.Kind)
		}
	}
}

func TestKindStrings(t *testing.T) {
	if Trine.String() != "trine" || Kind(99).String() != "Kind(99)" {
		t.Error("unexpected kind names")
	}
	if Conjunction.Symbol() != "☌" || Kind(99).Symbol() != "." {
		t.Error("unexpected kind symbols")
	}
}
