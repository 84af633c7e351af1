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

package trace

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// minChordFactor is used when the requested arc radius is too small.
// The radius is then set to chord/minChordFactor, slightly more than half
// the chord.
const minChordFactor = 1.9

// maxArcStep is the largest angle covered by a single cubic segment.
const maxArcStep = math.Pi / 2

// Arc is a circular arc in canvas coordinates.
type Arc struct {
	Center vec.Vec2
	Radius float64

	// Start is the angle of the start point in radians.
	Start float64

	// Sweep is the signed angle covered by the arc.  Positive values
	// run in the direction of increasing canvas angles.
	Sweep float64
}

// ArcThroughTwoPoints returns the shorter arc with radius r which starts
// at p1 and ends at p2.  If r is less than half the distance between the
// points, the radius is enlarged so that the arc exists.
//
// The center lies to the left of the direction p1→p2 (in canvas
// coordinates with the y axis pointing down), so swapping the points
// mirrors the arc.
func ArcThroughTwoPoints(p1, p2 vec.Vec2, r float64) Arc {
	q := p2.Sub(p1).Length()
	if q == 0 {
		return Arc{Center: p1, Radius: 0}
	}
	if r < q/2 {
		r = q / minChordFactor
	}

	mid := lerp(p1, p2, 0.5)
	h := math.Sqrt(max(r*r-q*q/4, 0))
	n := vec.Vec2{X: (p1.Y - p2.Y) / q, Y: (p2.X - p1.X) / q}
	c := mid.Add(n.Mul(h))

	a1 := math.Atan2(p1.Y-c.Y, p1.X-c.X)
	a2 := math.Atan2(p2.Y-c.Y, p2.X-c.X)
	sweep := math.Remainder(a2-a1, 2*math.Pi)

	return Arc{Center: c, Radius: r, Start: a1, Sweep: sweep}
}

// StartPoint returns the first point of the arc.
func (a Arc) StartPoint() vec.Vec2 {
	return pointAt(a.Center, a.Radius, a.Start)
}

// EndPoint returns the last point of the arc.
func (a Arc) EndPoint() vec.Vec2 {
	return pointAt(a.Center, a.Radius, a.Start+a.Sweep)
}

// Trace appends the arc to d as a new subpath.
func (a Arc) Trace(d *path.Data) {
	d.MoveTo(a.StartPoint())
	appendArcSegments(d, a.Center, a.Radius, a.Start, a.Sweep)
}

// AppendArc appends a circular arc from angle a1 to angle a2 to d.
// For negative == false the arc runs in the direction of increasing
// angles, otherwise in the direction of decreasing angles.  If d has a
// current point, a straight line connects it to the start of the arc.
func AppendArc(d *path.Data, center vec.Vec2, r, a1, a2 float64, negative bool) {
	sweep := a2 - a1
	if !negative {
		for sweep < 0 {
			sweep += 2 * math.Pi
		}
	} else {
		for sweep > 0 {
			sweep -= 2 * math.Pi
		}
	}

	start := pointAt(center, r, a1)
	if len(d.Cmds) == 0 || d.Cmds[len(d.Cmds)-1] == path.CmdClose {
		d.MoveTo(start)
	} else {
		d.LineTo(start)
	}
	appendArcSegments(d, center, r, a1, sweep)
}

// AppendCircle appends a full circle as a closed subpath.
func AppendCircle(d *path.Data, center vec.Vec2, r float64) {
	d.MoveTo(pointAt(center, r, 0))
	appendArcSegments(d, center, r, 0, 2*math.Pi)
	d.Close()
}

func pointAt(c vec.Vec2, r, angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle)
	return vec.Vec2{X: c.X + r*cos, Y: c.Y + r*sin}
}

// appendArcSegments approximates the arc by cubic Bézier segments.
// The current point must be the start of the arc.
func appendArcSegments(d *path.Data, c vec.Vec2, r, start, sweep float64) {
	if r == 0 || sweep == 0 {
		return
	}
	n := math.Ceil(math.Abs(sweep) / maxArcStep)
	step := sweep / n
	armLen := (4.0 / 3.0) * math.Tan(step/4)

	angle0 := start
	p0 := pointAt(c, r, angle0)
	for range int(n) {
		angle1 := angle0 + step
		p3 := pointAt(c, r, angle1)
		t0 := vec.Vec2{X: -math.Sin(angle0), Y: math.Cos(angle0)}.Mul(r * armLen)
		t1 := vec.Vec2{X: -math.Sin(angle1), Y: math.Cos(angle1)}.Mul(r * armLen)
		d.CubeTo(p0.Add(t0), p3.Sub(t1), p3)
		angle0 = angle1
		p0 = p3
	}
}
