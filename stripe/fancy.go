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

	"seehuhn.de/go/chartwheel/aspect"
	"seehuhn.de/go/chartwheel/chart"
	"seehuhn.de/go/chartwheel/polar"
	"seehuhn.de/go/chartwheel/trace"
)

func (ZodiacOpen) paint(p *Painter, r1, r2 float64) {
	f := p.Figure
	f.SetCode(chart.CodeStrong)
	f.SetLine(0, 1.25)
	scale(p, r1, r2, func(deg int) bool {
		return deg >= 14 && deg <= 16
	})

	rM := (r1 + r2) / 2
	gw := polar.Chord(2.2, rM)
	SignGlyphs{Turned: true}.paint(p, rM+gw, rM-gw)
}

func (HouseSlabs) paint(p *Painter, r1, r2 float64) {
	f, c := p.Figure, p.Chart
	rM := (r1 + r2) / 2
	f.SetFont(math.Abs(r1-r2) / 2.8)
	for i := 1; i <= chart.HouseCount; i++ {
		next := i%chart.HouseCount + 1
		from, to := c.Cusp(i), c.Cusp(next)

		f.SetGray(0.65)
		f.Slab(r1, from, r2, to)

		mid := (from + to) / 2
		if from > to {
			mid += 180
		}
		f.SetGray(0.9)
		f.Glyph(rM, mid, c.Houses[i-1].Name)
	}
}

func (DotDotPoints) paint(p *Painter, r1, r2 float64) {
	f, c := p.Figure, p.Chart
	rOut := 0.85*r2 + 0.15*r1
	rSym := 0.68*r2 + 0.32*r1
	rDeg := 0.40*r2 + 0.60*r1
	rSign := 0.24*r2 + 0.76*r1
	rIn := 0.15*r2 + 0.85*r1

	psz := math.Abs(r1-r2) / 3
	pos := Distribute(c.Longitudes(), polar.Degrees(psz, rSym))

	for i, pt := range c.Points {
		f.SetCode(pt.Code)

		f.SetFont(f.Unit())
		f.Glyph(r1, pt.Lon, ball)
		f.Glyph(r2, pt.Lon, ball)

		f.Line(r1, pt.Lon, rIn, pos[i])
		f.Line(r2, pt.Lon, rOut, pos[i])

		f.Glyph(rDeg, pos[i], chart.SignDegree(pt.Lon))
		f.Glyph(rSign, pos[i], chart.SignSymbols[chart.Sign(pt.Lon)])

		f.SetFont(psz)
		f.Glyph(rSym, pos[i], pt.Symbol)
	}
}

func (ExtraHouseSystems) paint(p *Painter, r1, r2 float64) {
	f, c := p.Figure, p.Chart
	f.SetTransp(0.55, 0.25, 0.75, 0.25)
	f.SetLine(0, 1.5)

	n := c.SystemCount()
	dt := polar.Degrees(math.Abs(r1-r2)/2, r1)
	rB := min(r1, r2)
	rT := (r1 + r2) / 2
	up := math.Abs(r1-r2) / float64(n)

	for sys := 1; sys < n; sys++ {
		d := &path.Data{}
		d.MoveTo(f.Frame.Project(rT, c.HouseAlt(1, sys)))
		for h := 1; h <= chart.HouseCount; h++ {
			next := h%chart.HouseCount + 1
			f.TraceArc(d, rB, c.HouseAlt(h, sys)+dt, c.HouseAlt(next, sys)-dt, true)
			if next != 1 {
				d.LineTo(f.Frame.Project(rT, c.HouseAlt(next, sys)))
			}
		}
		d.Close()
		f.Stroke(d)

		rB += up
		rT += up
	}
}

func (BasicAspects) paint(p *Painter, r1, r2 float64) {
	f, c := p.Figure, p.Chart
	f.SetCode(chart.CodeLight)
	f.SetLine(3, 1.5)
	for _, a := range c.Aspects {
		f.Line(r1, c.Points[a.P1].Lon, r1, c.Points[a.P2].Lon)
	}
}

// aspectStyle describes how [FancyAspects] draws one aspect kind.
// The line width is the score divided by widthDiv.
type aspectStyle struct {
	line     trace.Style
	widthDiv float64
	r, g, b  float64
}

var aspectStyles = map[aspect.Kind]aspectStyle{
	aspect.Conjunction: {0, 25, 0.99, 0.6, 0.1},
	aspect.Opposition:  {220, 25, 0.85, 0.25, 0.25},
	aspect.Trine:       {110, 25, 0.4, 0.7, 0},
	aspect.Square:      {320, 25, 0.8, 0.3, 0},
	aspect.Quintile:    {4, 30, 0.5, 0.7, 0.9},
	aspect.Sextile:     {180, 25, 0.2, 0.7, 0.2},
	aspect.Septile:     {7, 30, 0.8, 0.3, 0.9},
	aspect.Inconjunct:  {420, 25, 0.8, 0.7, 0.3},
}

// maxScore scales aspect scores to opacities.
const maxScore = 120

func (FancyAspects) paint(p *Painter, r1, r2 float64) {
	f, c := p.Figure, p.Chart
	conjR := polar.Chord(4, r1)
	for _, a := range c.Aspects {
		lon1 := c.Points[a.P1].Lon
		lon2 := c.Points[a.P2].Lon
		alpha := a.Score / maxScore

		st, ok := aspectStyles[a.Kind]
		if !ok {
			f.SetLine(0, 1)
			f.SetTransp(0, 0, 0, alpha)
			f.Line(r1, lon1, r1, lon2)
			continue
		}

		f.SetLine(st.line, a.Score/st.widthDiv)
		f.SetTransp(st.r, st.g, st.b, alpha)
		if a.Kind == aspect.Conjunction {
			if lon1 < lon2 {
				lon1, lon2 = lon2, lon1
			}
			f.Arc2ptR(r1, lon1, r1, lon2, conjR)
		} else {
			f.Line(r1, lon1, r1, lon2)
		}
	}
}
