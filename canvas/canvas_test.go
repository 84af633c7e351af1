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

package canvas

import (
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestOver(t *testing.T) {
	c := Color{R: 1, G: 0, B: 0, A: 0.25}.Over(White)
	want := Color{R: 1, G: 0.75, B: 0.75, A: 1}
	if c != want {
		t.Errorf("got %v, want %v", c, want)
	}
	if got := Black.Over(White); got != Black {
		t.Errorf("opaque color changed to %v", got)
	}
}

func TestRecorderCopies(t *testing.T) {
	r := &Recorder{}
	p := (&path.Data{}).MoveTo(vec.Vec2{X: 1, Y: 2}).LineTo(vec.Vec2{X: 5, Y: -1})
	s := DefaultStyle()
	s.Dash = []float64{1, 2}
	r.Stroke(p, &s)
	r.Fill(p, Gray(0.5))
	r.Image(nil, vec.Vec2{X: 10, Y: 10}, 4)

	// later changes must not leak into the recording
	p.LineTo(vec.Vec2{X: 100, Y: 100})
	s.Dash[0] = 42

	if r.Count(OpStroke) != 1 || r.Count(OpFill) != 1 || r.Count(OpImage) != 1 {
		t.Fatalf("unexpected ops %v", r.Ops)
	}
	if len(r.Ops[0].Path.Cmds) != 2 {
		t.Errorf("recorded path was modified")
	}
	if r.Ops[0].Style.Dash[0] != 1 {
		t.Errorf("recorded dash was modified")
	}

	want := rect.Rect{LLx: 1, LLy: -1, URx: 5, URy: 2}
	if got := r.Ops[1].Bounds(); got != want {
		t.Errorf("bounds %v, want %v", got, want)
	}
	want = rect.Rect{LLx: 8, LLy: 8, URx: 12, URy: 12}
	if got := r.Ops[2].Bounds(); got != want {
		t.Errorf("image bounds %v, want %v", got, want)
	}

	r.Reset()
	if len(r.Ops) != 0 {
		t.Error("Reset did not clear the recording")
	}
}
