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

package polar

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

const eps = 1e-9

func near(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestAscendantAtNineOClock(t *testing.T) {
	for _, asc := range []float64{0, 17.5, 123, 359.9} {
		f := NewFrame(200, 100, asc)
		got := f.Project(40, asc)
		want := vec.Vec2{X: 100 - 40, Y: 50}
		if !near(got, want) {
			t.Errorf("asc=%g: got %v, want %v", asc, got, want)
		}
	}
}

func TestClockwise(t *testing.T) {
	// With y pointing down, 90° after the ascendant is at the bottom.
	f := NewFrame(100, 100, 0)
	got := f.Project(10, 90)
	want := vec.Vec2{X: 50, Y: 60}
	if !near(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPeriodicity(t *testing.T) {
	for _, asc := range []float64{0, 45, 200, 333.3} {
		f := NewFrame(300, 300, asc)
		for lon := -720.0; lon <= 720; lon += 37.5 {
			a := f.Project(120, lon)
			b := f.Project(120, lon+360)
			if math.Abs(a.X-b.X) > 1e-6 || math.Abs(a.Y-b.Y) > 1e-6 {
				t.Errorf("asc=%g lon=%g: %v != %v", asc, lon, a, b)
			}
		}
	}
}

func TestDistance(t *testing.T) {
	cases := []struct{ a, b, want float64 }{
		{0, 0, 0},
		{10, 350, 20},
		{350, 10, 20},
		{0, 180, 180},
		{90, 300, 150},
		{-30, 30, 60},
	}
	for _, c := range cases {
		if got := Distance(c.a, c.b); math.Abs(got-c.want) > eps {
			t.Errorf("Distance(%g, %g) = %g, want %g", c.a, c.b, got, c.want)
		}
	}
}

func TestChordDegrees(t *testing.T) {
	for _, deg := range []float64{0.5, 4, 30, 90, 179} {
		l := Chord(deg, 250)
		if got := Degrees(l, 250); math.Abs(got-deg) > 1e-6 {
			t.Errorf("Degrees(Chord(%g)) = %g", deg, got)
		}
	}
	if got := Chord(60, 10); math.Abs(got-10) > eps {
		t.Errorf("Chord(60, 10) = %g, want 10", got)
	}
}

func TestNormalize(t *testing.T) {
	cases := map[float64]float64{-10: 350, 0: 0, 360: 0, 725: 5}
	for in, want := range cases {
		if got := Normalize(in); math.Abs(got-want) > eps {
			t.Errorf("Normalize(%g) = %g, want %g", in, got, want)
		}
	}
}
