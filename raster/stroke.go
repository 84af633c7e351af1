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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// zeroLengthThreshold is the minimum length of a stroked segment.
const zeroLengthThreshold = 1e-10

// polyline is a flattened subpath, stored as a range of Rasterizer.pts.
type polyline struct {
	start, end int
	closed     bool
}

// Stroke renders the outline of the path.
//
// The stroke is built from simple pieces: one quadrilateral per segment,
// plus join and cap shapes.  All pieces are oriented the same way and
// filled together with the nonzero rule, which yields their union.
func (r *Rasterizer) Stroke(p *path.Data, emit Emitter) {
	r.resetEdges()
	if r.Width <= 0 {
		return
	}

	r.flattenStroke(p)
	lines := r.lines
	if len(r.Dash) > 0 {
		r.applyDash()
		lines = r.dashed
	}

	for _, l := range lines {
		r.strokePolyline(r.pts[l.start:l.end], l.closed)
	}
	r.rasterize(false, emit)
}

// flattenStroke converts p into polylines in r.lines and r.pts.
// Zero-length segments are dropped; a subpath without any remaining
// segments is kept as a single point.  For closed polylines the segment
// from the last point back to the first is not stored.
func (r *Rasterizer) flattenStroke(p *path.Data) {
	r.lines = r.lines[:0]
	r.pts = r.pts[:0]

	open := false
	begin := 0
	var start vec.Vec2
	finish := func(closed bool) {
		if open {
			r.lines = append(r.lines, polyline{start: begin, end: len(r.pts), closed: closed})
		}
		open = false
	}
	add := func(_, b vec.Vec2) {
		if b.Sub(r.pts[len(r.pts)-1]).Length() < zeroLengthThreshold {
			return
		}
		r.pts = append(r.pts, b)
	}

	var cur vec.Vec2
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			start, cur = pts[0], pts[0]
			begin = len(r.pts)
			r.pts = append(r.pts, cur)
			open = true
		case path.CmdLineTo:
			if open {
				add(cur, pts[0])
			}
			cur = pts[0]
		case path.CmdQuadTo:
			if open {
				r.flattenQuad(cur, pts[0], pts[1], add)
			}
			cur = pts[1]
		case path.CmdCubeTo:
			if open {
				r.flattenCubic(cur, pts[0], pts[1], pts[2], add)
			}
			cur = pts[2]
		case path.CmdClose:
			if open {
				// the closing segment is implicit
				if k := len(r.pts); k-begin > 1 && r.pts[k-1].Sub(start).Length() < zeroLengthThreshold {
					r.pts = r.pts[:k-1]
				}
				finish(true)
			}
			cur = start
		}
	}
	finish(false)
}

// applyDash splits r.lines according to the dash pattern.  The result is
// stored in r.dashed; new points are appended to r.pts.
func (r *Rasterizer) applyDash() {
	r.dashed = r.dashed[:0]

	total := 0.0
	for _, d := range r.Dash {
		total += d
	}
	if total <= 0 {
		r.dashed = append(r.dashed, r.lines...)
		return
	}

	for _, l := range r.lines {
		pts := r.pts[l.start:l.end]
		if len(pts) < 2 {
			r.dashed = append(r.dashed, l)
			continue
		}
		n := len(pts)
		if l.closed {
			n++
		}

		// find the position inside the pattern at the start of the line
		idx := 0
		left := r.Dash[0]
		phase := math.Mod(r.DashPhase, total)
		if phase < 0 {
			phase += total
		}
		for phase > 0 {
			if phase < left {
				left -= phase
				break
			}
			phase -= left
			idx = (idx + 1) % len(r.Dash)
			left = r.Dash[idx]
		}
		on := idx%2 == 0

		dashStart := -1
		if on {
			dashStart = len(r.pts)
			r.pts = append(r.pts, pts[0])
		}
		for i := 1; i < n; i++ {
			a := pts[i-1]
			b := pts[i%len(pts)]
			seg := b.Sub(a)
			segLen := seg.Length()
			pos := 0.0
			for segLen-pos > left {
				pos += left
				q := a.Add(seg.Mul(pos / segLen))
				if on {
					r.pts = append(r.pts, q)
					r.dashed = append(r.dashed, polyline{start: dashStart, end: len(r.pts)})
				} else {
					dashStart = len(r.pts)
					r.pts = append(r.pts, q)
				}
				on = !on
				idx = (idx + 1) % len(r.Dash)
				left = r.Dash[idx]
			}
			left -= segLen - pos
			if on {
				r.pts = append(r.pts, b)
			}
		}
		if on {
			r.dashed = append(r.dashed, polyline{start: dashStart, end: len(r.pts)})
		}
	}
}

// strokePolyline adds the outline pieces for one polyline.
func (r *Rasterizer) strokePolyline(pts []vec.Vec2, closed bool) {
	hw := r.Width / 2

	if len(pts) == 1 {
		if r.Cap == graphics.LineCapRound {
			r.addDisc(pts[0], hw)
		}
		return
	}

	n := len(pts) - 1
	if closed {
		n++
	}
	segment := func(i int) (vec.Vec2, vec.Vec2) {
		return pts[i], pts[(i+1)%len(pts)]
	}

	for i := range n {
		a, b := segment(i)
		nrm := normal(a, b).Mul(hw)
		r.addPolygon(a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm))
	}

	// joins
	for i := 1; i < n; i++ {
		a, b := segment(i - 1)
		_, c := segment(i)
		r.addJoin(a, b, c, hw)
	}
	if closed && n > 1 {
		a, b := segment(n - 1)
		_, c := segment(0)
		r.addJoin(a, b, c, hw)
		return
	}

	// caps
	first, second := pts[0], pts[1]
	last, prev := pts[len(pts)-1], pts[len(pts)-2]
	r.addCap(first, first.Sub(second), hw)
	r.addCap(last, last.Sub(prev), hw)
}

// normal returns the unit normal of a→b.
func normal(a, b vec.Vec2) vec.Vec2 {
	d := b.Sub(a)
	l := d.Length()
	return vec.Vec2{X: -d.Y / l, Y: d.X / l}
}

// addJoin adds the join at b between the segments a→b and b→c.
func (r *Rasterizer) addJoin(a, b, c vec.Vec2, hw float64) {
	n1 := normal(a, b)
	n2 := normal(b, c)
	cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
	if math.Abs(cross) < 1e-12*(b.Sub(a).Length()*c.Sub(b).Length()) && n1.Dot(n2) > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addDisc(b, hw)
		return
	}

	// the outer side is opposite to the turning direction
	if cross > 0 {
		n1, n2 = n1.Mul(-1), n2.Mul(-1)
	}
	p1 := b.Add(n1.Mul(hw))
	p2 := b.Add(n2.Mul(hw))

	if r.Join == graphics.LineJoinMiter {
		cosTheta := n1.Dot(n2)
		// ratio of miter length to line width
		if m := math.Sqrt(2 / (1 + cosTheta)); 1+cosTheta > 1e-12 && m <= r.MiterLimit {
			bis := n1.Add(n2)
			tip := b.Add(bis.Mul(hw * m / bis.Length()))
			r.addPolygon(b, p1, tip, p2)
			return
		}
	}
	r.addPolygon(b, p1, p2)
}

// addCap adds a line cap at p.  The vector out points away from the line.
func (r *Rasterizer) addCap(p, out vec.Vec2, hw float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addDisc(p, hw)
	case graphics.LineCapSquare:
		t := out.Mul(hw / out.Length())
		n := vec.Vec2{X: -t.Y, Y: t.X}
		r.addPolygon(p.Add(n), p.Add(n).Add(t), p.Sub(n).Add(t), p.Sub(n))
	}
}

// addDisc adds a polygonal approximation of a circle.
func (r *Rasterizer) addDisc(c vec.Vec2, radius float64) {
	rd := r.deviceLength(vec.Vec2{X: radius})
	n := 8
	if rd > r.Flatness {
		n = max(n, int(math.Ceil(math.Pi/math.Acos(1-r.Flatness/rd))))
	}
	n = min(n, 512)

	r.poly = r.poly[:0]
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		r.poly = append(r.poly, vec.Vec2{X: c.X + radius*cos, Y: c.Y + radius*sin})
	}
	r.addPolygon(r.poly...)
}

// addPolygon adds a closed polygon with positive orientation.
func (r *Rasterizer) addPolygon(pts ...vec.Vec2) {
	area := 0.0
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}
	if area == 0 {
		return
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		if area < 0 {
			a, b = b, a
		}
		r.addEdge(a, b)
	}
}
