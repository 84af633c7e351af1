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

package stripe

import (
	"math"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/chartwheel/chart"
	"seehuhn.de/go/chartwheel/polar"
	"seehuhn.de/go/chartwheel/trace"
)

const ball = "●"

func (Spacer) paint(*Painter, float64, float64) {}

func (Noop) paint(*Painter, float64, float64) {}

func (Markers) paint(p *Painter, r1, r2 float64) {
	f := p.Figure
	f.SetCode(chart.CodeStrong)
	f.SetTransp(1, 0, 0, 0.5)
	f.Circle(r1)
	f.SetTransp(0, 1, 0, 0.5)
	f.Circle(r2)
}

func (Border) paint(p *Painter, r1, r2 float64) {
	p.Figure.Circle(r1)
	p.Figure.Circle(r2)
}

func (Axis) paint(p *Painter, r1, r2 float64) {
	f, c := p.Figure, p.Chart
	r := (r1 + r2) / 2
	f.SetCode(chart.CodeStrong)
	f.SetLine(36, 1.5)
	for _, lon := range []float64{c.Ascendant, c.Midheaven, c.Node} {
		f.Line(r, lon, r, lon+180)
	}
}

func (AxisDecor) paint(p *Painter, r1, r2 float64) {
	f, c := p.Figure, p.Chart
	sz := math.Abs(r1 - r2)
	f.SetCode(chart.CodeStrong)
	f.Fleuron(r1, c.Ascendant, sz)
	f.Fleuron(r1, c.Midheaven, sz)
	f.NodeHead(r1, c.Node, sz)
}

func (Arrows) paint(p *Painter, r1, r2 float64) {
	f, c := p.Figure, p.Chart
	for _, lon := range []float64{c.Ascendant, c.Midheaven} {
		f.Line(r1, lon+2, r2, lon)
		f.Line(r1, lon-2, r2, lon)
	}
}

// spokes strokes radial lines every step degrees, starting at 0°.
func spokes(p *Painter, r1, r2, step float64) {
	if !(step > 0) {
		return
	}
	d := &path.Data{}
	for a := 0.0; a < 360; a += step {
		p.Figure.TraceSpoke(d, r1, r2, a)
	}
	p.Figure.Stroke(d)
}

func (t Tics) paint(p *Painter, r1, r2 float64) {
	spokes(p, r1, r2, t.Step)
}

func (SignDivs) paint(p *Painter, r1, r2 float64) {
	spokes(p, r1, r2, 30)
}

// scale draws a degree scale.  Sign boundaries get full length spokes,
// the 10° and 20° marks span the middle half of the band and all other
// degrees the middle sixth.  Degrees for which gap returns true are left
// out.
func scale(p *Painter, r1, r2 float64, gap func(deg int) bool) {
	m1 := (3*r1 + r2) / 4
	m2 := (r1 + 3*r2) / 4
	p1 := (2*m1 + m2) / 3
	p2 := (m1 + 2*m2) / 3

	f := p.Figure
	d := &path.Data{}
	for i := range 360 {
		switch deg := i % 30; {
		case deg == 0:
			f.TraceSpoke(d, r1, r2, float64(i))
		case deg == 10 || deg == 20:
			f.TraceSpoke(d, m1, m2, float64(i))
		case gap(deg):
		default:
			f.TraceSpoke(d, p1, p2, float64(i))
		}
	}
	f.Stroke(d)
}

func (MultiTics) paint(p *Painter, r1, r2 float64) {
	scale(p, r1, r2, func(deg int) bool {
		return deg == 5 || deg == 15 || deg == 26
	})
}

func (s SignGlyphs) paint(p *Painter, r1, r2 float64) {
	f := p.Figure
	f.SetFont(math.Abs(r1-r2) * 0.85)
	r := (r1 + r2) / 2
	for i, sym := range chart.SignSymbols {
		lon := 30*float64(i) + 15
		if s.Turned {
			f.GlyphTurned(r, lon, sym)
		} else {
			f.Glyph(r, lon, sym)
		}
	}
}

func (HouseDivs) paint(p *Painter, r1, r2 float64) {
	d := &path.Data{}
	for _, h := range p.Chart.Houses {
		p.Figure.TraceSpoke(d, r1, r2, h.Cusp)
	}
	p.Figure.Stroke(d)
}

func (g PointGlyphs) paint(p *Painter, r1, r2 float64) {
	f, c := p.Figure, p.Chart
	r := (r1 + r2) / 2

	size := math.Abs(r1-r2) * 0.85
	if g.Ball && g.Distribute {
		size = math.Abs(r1 - r2)
	}
	f.SetFont(size)

	lons := c.Longitudes()
	if g.Distribute {
		lons = Distribute(lons, polar.Degrees(size, r))
	}
	for i, pt := range c.Points {
		sym := pt.Symbol
		if g.Ball {
			sym = ball
		}
		f.Glyph(r, lons[i], sym)
	}
}

func (PointPositions) paint(p *Painter, r1, r2 float64) {
	f, c := p.Figure, p.Chart
	rA := (3*r1 + r2) / 4
	rB := (r1 + 3*r2) / 4
	w := math.Abs(r1 - r2)

	pos := Distribute(c.Longitudes(), polar.Degrees(w*0.425, (r1+r2)/2))
	for i, pt := range c.Points {
		f.SetFont(w * 0.333)
		f.Glyph(rA, pos[i], chart.SignDegree(pt.Lon))
		f.SetFont(w * 0.425)
		f.Glyph(rB, pos[i], chart.SignSymbols[chart.Sign(pt.Lon)])
	}
}

// imageOrder lists the points drawn first by [PointImages], from back to
// front.  Every picture is drawn smaller than the previous one.
var imageOrder = []int{7, 0, 1, 6, 8, 9, 3, 4, 2, 10, 5}

func (PointImages) paint(p *Painter, r1, r2 float64) {
	f, c := p.Figure, p.Chart
	if f.Images == nil {
		return
	}

	order := make([]int, 0, len(c.Points))
	seen := make(map[int]bool, len(c.Points))
	for _, i := range imageOrder {
		if i < len(c.Points) {
			order = append(order, i)
			seen[i] = true
		}
	}
	for i := range c.Points {
		if !seen[i] {
			order = append(order, i)
		}
	}

	r := (r1 + r2) / 2
	s := math.Abs(r1 - r2)
	for _, i := range order {
		pt := c.Points[i]
		f.Image(r, pt.Lon, s, f.Images.PointImage(pt.Code))
		s *= 0.88
	}
}

func (LineSamples) paint(p *Painter, r1, r2 float64) {
	f := p.Figure
	f.SetRGB(0.9, 0.4, 0.7)
	for i := range 20 {
		f.SetLine(trace.Style(i), 2)
		f.Spoke(r1, r2, float64(i)*3)
	}
	for i := range 20 {
		f.SetLine(trace.Style(i*10+6), 2)
		f.Spoke(r1, r2, float64(i)*3+270)
	}
	for i := 100; i < 400; i += 10 {
		f.SetLine(trace.Style(i), 2)
		f.Line(r1, float64(i)*0.65, r2, float64(i)*0.65)
	}
}
