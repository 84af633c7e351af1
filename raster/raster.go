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

// Package raster renders chart paths into images.
//
// The [Rasterizer] computes anti-aliased coverage values by accumulating
// the signed area of path edges per pixel.  [ImageCanvas] uses it to
// implement the chart drawing surface on top of an *image.RGBA.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Default values for rasterizer parameters.
const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript.
	defaultMiterLimit = 10.0
)

// horizontalEdgeThreshold is the minimum vertical extent for an edge to
// contribute to coverage.
const horizontalEdgeThreshold = 1e-10

// edge is a line segment in device coordinates, oriented so that
// y0 < y1.  The winding direction is kept in dir.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 for edges which ran downwards, -1 otherwise
}

// Rasterizer converts paths to pixel coverage values between 0 (outside)
// and 1 (inside).  Internal buffers are reused between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip limits the output to this device-space rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximum distance, in device pixels, between a
	// curve and its polygonal approximation.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64

	// Dash holds alternating on/off lengths in user-space units.
	// Nil means a solid line.
	Dash      []float64
	DashPhase float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32

	bbox      rect.Rect
	bboxEmpty bool

	// stroking state
	lines  []polyline
	pts    []vec.Vec2
	dashed []polyline
	poly   []vec.Vec2
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, with
// PDF default values for all other parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// Emitter receives the coverage of one pixel row.  The coverage slice
// starts at column xMin and is only valid during the call.
type Emitter func(y, xMin int, coverage []float32)

// FillNonZero fills the path using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p *path.Data, emit Emitter) {
	r.resetEdges()
	r.addPath(p)
	r.rasterize(false, emit)
}

// FillEvenOdd fills the path using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit Emitter) {
	r.resetEdges()
	r.addPath(p)
	r.rasterize(true, emit)
}

func (r *Rasterizer) resetEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// device maps a user-space point to device space.
func (r *Rasterizer) device(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceLength returns the device-space length of a user-space vector.
func (r *Rasterizer) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}.Length()
}

// addPath flattens p and adds all its edges.  Open subpaths are closed
// implicitly.
func (r *Rasterizer) addPath(p *path.Data) {
	var cur, start vec.Vec2
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur, start = pts[0], pts[0]
		case path.CmdLineTo:
			r.addEdge(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			r.flattenQuad(cur, pts[0], pts[1], r.addEdge)
			cur = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(cur, pts[0], pts[1], pts[2], r.addEdge)
			cur = pts[2]
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	if cur != start {
		r.addEdge(cur, start)
	}
}

// addEdge adds the user-space segment a→b.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	p, q := r.device(a), r.device(b)
	dir := float32(1)
	if q.Y < p.Y {
		p, q = q, p
		dir = -1
	}
	if q.Y-p.Y < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: p.X, y0: p.Y,
		x1: q.X, y1: q.Y,
		dxdy: (q.X - p.X) / (q.Y - p.Y),
		dir:  dir,
	})

	if r.bboxEmpty {
		r.bbox = rect.Rect{LLx: min(p.X, q.X), LLy: p.Y, URx: max(p.X, q.X), URy: q.Y}
		r.bboxEmpty = false
		return
	}
	r.bbox.LLx = min(r.bbox.LLx, p.X, q.X)
	r.bbox.LLy = min(r.bbox.LLy, p.Y)
	r.bbox.URx = max(r.bbox.URx, p.X, q.X)
	r.bbox.URy = max(r.bbox.URy, q.Y)
}

// flattenQuad approximates a quadratic Bézier curve by line segments.
// The number of segments follows from the device-space deviation of the
// control polygon.
func (r *Rasterizer) flattenQuad(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula for the number of segments.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	dd := max(
		r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3)),
	)
	n := 1
	if k := math.Sqrt(3 * dd / (4 * r.Flatness)); k > 1 {
		n = int(math.Ceil(k))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// rasterize scans the collected edges row by row.
//
// For every pixel two values are accumulated: cover, the signed height
// of the edge pieces inside the pixel column, and area, the part of that
// height which lies to the right of the edge inside the pixel.  Summing
// cover from the left and adding area gives the signed coverage.
func (r *Rasterizer) rasterize(evenOdd bool, emit Emitter) {
	if len(r.edges) == 0 {
		return
	}
	xMin := max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].y0 < bot {
			r.active = append(r.active, next)
			next++
		}
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			return r.edges[i].y1 <= top
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], top, bot, xMin, xMax)
		}

		integrate(r.cover, r.area, evenOdd)
		lo, hi := 0, width
		for lo < hi && r.cover[lo] == 0 {
			lo++
		}
		for hi > lo && r.cover[hi-1] == 0 {
			hi--
		}
		if lo < hi {
			emit(y, xMin+lo, r.cover[lo:hi])
		}
	}
}

// accumulate adds the part of e between the scanlines top and bot.
func (r *Rasterizer) accumulate(e *edge, top, bot float64, xMin, xMax int) {
	ya := max(top, e.y0)
	yb := min(bot, e.y1)
	if yb <= ya {
		return
	}
	xa := e.x0 + e.dxdy*(ya-e.y0)
	xb := e.x0 + e.dxdy*(yb-e.y0)

	// Walk the pixel columns crossed by the piece, from left to right.
	if xa > xb {
		xa, xb = xb, xa
	}
	first := int(math.Floor(xa))
	last := int(math.Floor(xb))
	for col := first; col <= last; col++ {
		var y0, y1 float64
		if first == last {
			y0, y1 = ya, yb
		} else {
			// the part of the piece inside this column
			lo := max(float64(col), xa)
			hi := min(float64(col+1), xb)
			y0 = e.y0 + (lo-e.x0)/e.dxdy
			y1 = e.y0 + (hi-e.x0)/e.dxdy
			if y0 > y1 {
				y0, y1 = y1, y0
			}
			y0 = max(y0, ya)
			y1 = min(y1, yb)
		}
		h := y1 - y0
		if h <= 0 {
			continue
		}
		c := e.dir * float32(h)
		xm := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		r.addCell(col, c, c*float32(float64(col+1)-xm), xMin, xMax)
	}
}

// addCell records a contribution for pixel column col.  Contributions left
// of the visible range are carried into the first column.
func (r *Rasterizer) addCell(col int, c, a float32, xMin, xMax int) {
	switch {
	case col < xMin:
		r.cover[0] += c
		r.area[0] += c
	case col < xMax:
		r.cover[col-xMin] += c
		r.area[col-xMin] += a
	}
}

// integrate converts the accumulated values into coverage, in place.
func integrate(cover, area []float32, evenOdd bool) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		if evenOdd {
			v = float32(math.Mod(float64(v), 2))
			if v > 1 {
				v = 2 - v
			}
		} else if v > 1 {
			v = 1
		}
		cover[i] = v
	}
}
