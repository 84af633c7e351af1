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
	"math"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chartwheel/chart"
	"seehuhn.de/go/chartwheel/glyph"
	"seehuhn.de/go/chartwheel/internal/logging"
)

// Glyph draws txt in the current font, centered at (r, a).
func (f *Figure) Glyph(r, a float64, txt string) {
	f.showCentered(txt, f.Frame.Project(r, a), 0)
}

// GlyphTurned is like [Figure.Glyph], but turns the text so that its top
// points away from the chart center.
func (f *Figure) GlyphTurned(r, a float64, txt string) {
	f.showCentered(txt, f.Frame.Project(r, a), math.Pi/2+f.Frame.Angle(a))
}

// showCentered fills txt, rotated by angle, so that the center of its
// ink rectangle is at p.
func (f *Figure) showCentered(txt string, p vec.Vec2, angle float64) {
	face := f.Sans
	if face == nil || txt == "" {
		return
	}
	f.checkMissing(face, txt)

	ext := face.Extents(txt, f.fontSize)
	ox := -ext.XBearing - ext.Width/2
	oy := -ext.YBearing - ext.Height/2
	sin, cos := math.Sincos(angle)
	m := matrix.Matrix{
		cos, sin,
		-sin, cos,
		p.X + cos*ox - sin*oy, p.Y + sin*ox + cos*oy,
	}

	d := &path.Data{}
	face.Append(d, txt, f.fontSize, m)
	f.Fill(d)
}

// Text draws txt with its ink rectangle starting at (x, y), in canvas
// coordinates.  The font size is size times the base unit.  Negative
// coordinates are measured from the right and bottom edges.
func (f *Figure) Text(x, y, size float64, txt string) {
	face := f.Sans
	if face == nil || txt == "" {
		return
	}
	f.SetFont(size * f.Unit())
	f.checkMissing(face, txt)

	ext := face.Extents(txt, f.fontSize)
	if x < 0 {
		x += f.Width - ext.Width
	}
	if y < 0 {
		y += f.Height - ext.Height
	}
	d := &path.Data{}
	face.Append(d, txt, f.fontSize, translate(x-ext.XBearing, y-ext.YBearing))
	f.Fill(d)
}

// Paragraph draws the lines of txt in a monospaced font, with the first
// baseline at (x, y).  The line distance is size times the base unit.
// A negative y is measured from the bottom edge.  Empty lines are skipped.
func (f *Figure) Paragraph(x, y, size float64, txt string) {
	face := f.Mono
	if face == nil {
		return
	}
	lines := strings.Split(txt, "\n")
	step := size * f.Unit()
	if y < 0 {
		y += f.Height - step*float64(len(lines))
	}

	d := &path.Data{}
	off := 0.0
	for _, l := range lines {
		if l == "" {
			continue
		}
		f.checkMissing(face, l)
		face.Append(d, l, step, translate(x, y+off))
		off += step
	}
	f.Fill(d)
}

// ChartDetails draws the name, time and place of the chart, starting at
// (x, y).
func (f *Figure) ChartDetails(c *chart.Chart, x, y float64) {
	u := f.Unit()
	f.Text(x, y, 1.5, c.Name)
	f.Text(x, y+1.85*u, 0.75, chart.DateTag(c.Time))
	f.Text(x, y+2.75*u, 0.75, chart.Coords(c.Latitude, c.Longitude))
}

func (f *Figure) checkMissing(face *glyph.Face, txt string) {
	if missing := face.Missing(txt); len(missing) > 0 {
		logging.Logger().Debug("skipping runes without glyph",
			"text", txt, "missing", string(missing))
	}
}

func translate(x, y float64) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, 1, x, y}
}
