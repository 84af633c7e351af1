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

// Package trace builds the paths for decorated chart lines.
//
// All functions in this package only append to a [path.Data]; nothing is
// drawn.  This allows several traces to be committed to the canvas with a
// single stroke operation.
package trace

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Offsets of the decoration, relative to the length of one subdivision.
const (
	wavyOffset     = 0.5
	sawtoothOffset = 0.1
	zigzagOffset   = 0.33

	// zigzagScale makes zigzag teeth smaller than sawtooth teeth.
	zigzagScale = 2.5
)

// Tracer appends decorated lines to a path.
type Tracer struct {
	// Center is the chart center, used by bulge lines.
	Center vec.Vec2

	// Unit is the length of one decoration period at density 1.
	Unit float64
}

// Trace appends the line from a to b, using the given style, to d.
// A new subpath is started at a.
func (t Tracer) Trace(d *path.Data, s Style, a, b vec.Vec2) {
	dist := b.Sub(a).Length()
	if dist == 0 || t.Unit <= 0 {
		d.MoveTo(a).LineTo(b)
		return
	}

	switch s.Family() {
	case Wavy:
		t.wavy(d, s, a, b, dist)
	case Sawtooth:
		t.sawtooth(d, s, a, b, dist)
	case Zigzag:
		t.zigzag(d, s, a, b, dist)
	case Bulge:
		t.bulge(d, s, a, b)
	default:
		d.MoveTo(a).LineTo(b)
	}
}

// perpendicular returns the offset vector for a decoration of relative
// size k on the segment a→b, which is divided into f parts.
func perpendicular(a, b vec.Vec2, k, f float64) vec.Vec2 {
	return vec.Vec2{X: k * (b.Y - a.Y) / f, Y: -k * (b.X - a.X) / f}
}

func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

func (t Tracer) wavy(d *path.Data, s Style, a, b vec.Vec2, dist float64) {
	f := dist / t.Unit
	off := perpendicular(a, b, wavyOffset, f)
	n := math.Ceil(f * s.Density())

	d.MoveTo(a)
	for i := 1.0; i <= n; i++ {
		next := lerp(a, b, i/n)
		mid := lerp(a, b, (2*i-1)/(2*n))
		d.CubeTo(mid.Add(off), mid.Sub(off), next)
	}
}

func (t Tracer) sawtooth(d *path.Data, s Style, a, b vec.Vec2, dist float64) {
	f := dist / t.Unit
	off := perpendicular(a, b, sawtoothOffset, f)
	n := math.Ceil(f*s.Density()) * 2

	d.MoveTo(a)
	for i := 1.0; i < n; i += 2 {
		mid := lerp(a, b, i/n)
		d.LineTo(mid.Add(off))
		d.LineTo(mid.Sub(off))
	}
	d.LineTo(b)
}

func (t Tracer) zigzag(d *path.Data, s Style, a, b vec.Vec2, dist float64) {
	f := zigzagScale * dist / t.Unit
	off := perpendicular(a, b, zigzagOffset, f)
	n := math.Ceil(f*s.Density()) * 2

	d.MoveTo(a)
	up := false
	for i := 1.0; i < n; i += 2 {
		mid := lerp(a, b, i/n)
		if up {
			d.LineTo(mid.Add(off))
		} else {
			d.LineTo(mid.Sub(off))
		}
		up = !up
	}
	d.LineTo(b)
}

func (t Tracer) bulge(d *path.Data, s Style, a, b vec.Vec2) {
	pr := s.Tension()
	pull := func(p vec.Vec2) vec.Vec2 {
		return p.Mul(pr).Add(t.Center).Mul(1 / (1 + pr))
	}
	d.MoveTo(a).CubeTo(pull(a), pull(b), b)
}
