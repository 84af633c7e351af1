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

package figure

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chartwheel/polar"
	"seehuhn.de/go/chartwheel/trace"
)

// Stroke strokes d with the current style.  Empty paths are ignored.
func (f *Figure) Stroke(d *path.Data) {
	if len(d.Cmds) == 0 {
		return
	}
	s := f.Style()
	f.Canvas.Stroke(d, &s)
}

// Fill fills d with the current colour.  Empty paths are ignored.
func (f *Figure) Fill(d *path.Data) {
	if len(d.Cmds) == 0 {
		return
	}
	f.Canvas.Fill(d, f.color)
}

// TraceLine appends the line from (r1, z1) to (r2, z2) to d, decorated
// according to the current line style.
func (f *Figure) TraceLine(d *path.Data, r1, z1, r2, z2 float64) {
	a := f.Frame.Project(r1, z1)
	b := f.Frame.Project(r2, z2)
	f.tracer().Trace(d, f.line, a, b)
}

// Line draws a decorated line from (r1, z1) to (r2, z2).
func (f *Figure) Line(r1, z1, r2, z2 float64) {
	d := &path.Data{}
	f.TraceLine(d, r1, z1, r2, z2)
	f.Stroke(d)
}

// TraceSpoke appends a straight radial line at longitude a to d.
func (f *Figure) TraceSpoke(d *path.Data, r1, r2, a float64) {
	d.MoveTo(f.Frame.Project(r1, a)).LineTo(f.Frame.Project(r2, a))
}

// Spoke draws a straight radial line at longitude a.
func (f *Figure) Spoke(r1, r2, a float64) {
	d := &path.Data{}
	f.TraceSpoke(d, r1, r2, a)
	f.Stroke(d)
}

// Edge draws the straight chord between two longitudes at radius r.
func (f *Figure) Edge(r, a1, a2 float64) {
	d := (&path.Data{}).MoveTo(f.Frame.Project(r, a1)).LineTo(f.Frame.Project(r, a2))
	f.Stroke(d)
}

// Circle draws a circle around the chart center.
func (f *Figure) Circle(r float64) {
	d := &path.Data{}
	trace.AppendCircle(d, f.Frame.Center, r)
	f.Stroke(d)
}

// TraceArc appends the arc at radius r from longitude z1 to z2 to d.  For
// forward == true the arc runs through increasing longitudes, otherwise
// through decreasing ones.  Arcs never cover more than a full turn.
func (f *Figure) TraceArc(d *path.Data, r, z1, z2 float64, forward bool) {
	// increasing longitudes have decreasing canvas angles
	trace.AppendArc(d, f.Frame.Center, r, f.Frame.Angle(z1), f.Frame.Angle(z2), forward)
}

// Slab draws the outline of a sector between the longitudes z1 and z2.
// The outer corners at radius r1 are cut off by 2°.
func (f *Figure) Slab(r1, z1, r2, z2 float64) {
	rx := r1 - polar.Chord(2, r1)
	d := &path.Data{}
	d.MoveTo(f.Frame.Project(rx, z1))
	d.LineTo(f.Frame.Project(r2, z1))
	f.TraceArc(d, r2, z1, z2, true)
	d.LineTo(f.Frame.Project(rx, z2))
	f.TraceArc(d, r1, z2-2, z1+2, false)
	d.Close()
	f.Stroke(d)
}

// Arc2ptR draws the shorter arc with radius r from (r1, a1) to (r2, a2).
// If r is too small for the two points, it is enlarged.
func (f *Figure) Arc2ptR(r1, a1, r2, a2, r float64) {
	arc := trace.ArcThroughTwoPoints(f.Frame.Project(r1, a1), f.Frame.Project(r2, a2), r)
	d := &path.Data{}
	arc.Trace(d)
	f.Stroke(d)
}

// fleuronPath holds the control points of the axis ornament, in units of
// 1/100 of the ornament size.  The first row only gives the start point.
var fleuronPath = [22][6]float64{
	{0, 0, 0, 0, 80, 0},
	{110, 0, 110, 20, 110, 30},
	{110, 40, 110, 50, 100, 50},
	{90, 50, 80, 40, 90, 30},
	{0, 0, 0, 0, 90, 30},
	{80, 40, 90, 50, 100, 50},
	{110, 50, 120, 40, 120, 30},
	{120, 10, 110, 0, 80, 0},
	{20, 0, 30, 60, 0, 60},
	{30, 60, 20, 120, 80, 120},
	{110, 120, 120, 110, 120, 90},
	{120, 80, 110, 70, 100, 70},
	{90, 70, 80, 80, 90, 90},
	{80, 80, 90, 70, 100, 70},
	{110, 70, 110, 80, 110, 90},
	{110, 100, 110, 120, 80, 120},
	{60, 120, 50, 110, 50, 90},
	{50, 70, 60, 60, 80, 60},
	{60, 60, 50, 50, 50, 30},
	{50, 10, 60, 0, 80, 0},
	{40, 0, 30, 40, 50, 60},
	{30, 80, 40, 120, 80, 120},
}

// Fleuron draws the ornament which marks an axis at longitude z.  The
// ornament points inwards from radius r and has size sz.
func (f *Figure) Fleuron(r, z, sz float64) {
	inward := f.Frame.Direction(z + 180)
	side := vec.Vec2{X: -inward.Y, Y: inward.X}
	base := f.Frame.Project(r, z)
	k := sz / 100
	pt := func(x, y float64) vec.Vec2 {
		y -= 60
		return base.Add(inward.Mul(k * x)).Add(side.Mul(k * y))
	}

	d := &path.Data{}
	d.MoveTo(pt(fleuronPath[0][4], fleuronPath[0][5]))
	for _, c := range fleuronPath[1:] {
		d.CubeTo(pt(c[0], c[1]), pt(c[2], c[3]), pt(c[4], c[5]))
	}
	f.Stroke(d)
}

// NodeHead draws the dragon's head symbol for the lunar node at
// longitude tn, just inside radius r.
func (f *Figure) NodeHead(r, tn, sz float64) {
	rP := sz / 2
	rF := rP * 0.2
	p := f.Frame.Project(r-rP, tn)
	f1 := p.Add(f.Frame.Direction(tn + 135).Mul(rP + rF))
	f2 := p.Add(f.Frame.Direction(tn - 135).Mul(rP + rF))
	ang := f.Frame.Angle

	f.SetLine(0, defaultLineWidth)
	d := &path.Data{}
	trace.AppendArc(d, f1, rF, ang(tn), ang(tn+315), true)
	trace.AppendArc(d, p, rP, ang(tn+135), ang(tn-135), false)
	trace.AppendArc(d, f2, rF, ang(tn-315), ang(tn), true)
	f.Stroke(d)
}

// Placeholder draws a crossed-out frame with a circle, shown when no
// chart is available.
func (f *Figure) Placeholder() {
	r := (f.Width + f.Height) / 5
	d := &path.Data{}
	d.MoveTo(vec.Vec2{}).
		LineTo(vec.Vec2{X: f.Width, Y: f.Height}).
		LineTo(vec.Vec2{X: f.Width}).
		LineTo(vec.Vec2{Y: f.Height})
	trace.AppendCircle(d, f.Frame.Center, r)
	f.Stroke(d)
}
