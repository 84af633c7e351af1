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

// Package figure draws the elements of a chart wheel in polar coordinates.
//
// A [Figure] combines a canvas with the placement of the wheel and the
// current drawing style.  Style changes only affect later calls on the
// same Figure.
package figure

import (
	"seehuhn.de/go/chartwheel/canvas"
	"seehuhn.de/go/chartwheel/chart"
	"seehuhn.de/go/chartwheel/glyph"
	"seehuhn.de/go/chartwheel/polar"
	"seehuhn.de/go/chartwheel/trace"
)

// defaultLineWidth is the width of lines at the start of every band.
const defaultLineWidth = 2.0

// Figure is the rendering state for one chart.
type Figure struct {
	Canvas canvas.Canvas
	Frame  polar.Frame

	// Width and Height give the canvas size.  They are used to place
	// text relative to the right and bottom edges.
	Width, Height float64

	// Sans is used for labels and symbols, Mono for paragraphs.
	Sans, Mono *glyph.Face

	// Images provides the pictures for the points.  If this is nil, no
	// point images are drawn.
	Images ImageSource

	color     canvas.Color
	line      trace.Style
	lineWidth float64
	fontSize  float64
}

// New returns a figure with the default style.
func New(c canvas.Canvas, frame polar.Frame, w, h float64, sans, mono *glyph.Face) *Figure {
	f := &Figure{
		Canvas: c,
		Frame:  frame,
		Width:  w,
		Height: h,
		Sans:   sans,
		Mono:   mono,
	}
	f.Reset()
	return f
}

// Reset restores the default style: black solid lines of width 2 and
// the base font size.
func (f *Figure) Reset() {
	f.color = canvas.Black
	f.line = 0
	f.lineWidth = defaultLineWidth
	f.fontSize = f.Frame.Unit
}

// Unit returns the base size of the figure.
func (f *Figure) Unit() float64 {
	return f.Frame.Unit
}

// SetCode selects the colour for a point code and resets the line style.
// Negative codes select gray levels, see [chart.CodeLight] and following.
func (f *Figure) SetCode(code int) {
	f.SetLine(0, defaultLineWidth)
	if c, ok := codeColors[code]; ok {
		f.color = c
	} else {
		f.color = canvas.Black
	}
}

var codeColors = map[int]canvas.Color{
	chart.CodeLight:  canvas.Gray(0.75),
	chart.CodeDark:   canvas.Gray(0.25),
	chart.CodeStrong: canvas.Black,
	chart.Sun:        canvas.RGB(1, 0.8, 0),
	chart.Moon:       canvas.RGB(0.82, 0.56, 0.15),
	chart.Mercury:    canvas.RGB(0.8, 0.4, 0),
	chart.Venus:      canvas.RGB(0.9, 0.3, 0.7),
	chart.Mars:       canvas.RGB(0.8, 0, 0.1),
	chart.Jupiter:    canvas.RGB(0.7, 0.4, 0.1),
	chart.Saturn:     canvas.RGB(0.3, 0.5, 0.3),
	chart.Uranus:     canvas.RGB(0, 0.8, 0.8),
	chart.Neptune:    canvas.RGB(0.2, 0.35, 0.7),
	chart.Pluto:      canvas.RGB(0.6, 0.3, 0.1),
	chart.Ceres:      canvas.RGB(0, 0.6, 0.2),
}

// SetGray selects an opaque gray level.
func (f *Figure) SetGray(l float64) {
	f.color = canvas.Gray(l)
}

// SetRGB selects an opaque colour.
func (f *Figure) SetRGB(r, g, b float64) {
	f.color = canvas.RGB(r, g, b)
}

// SetTransp selects a translucent colour.
func (f *Figure) SetTransp(r, g, b, a float64) {
	f.color = canvas.Color{R: r, G: g, B: b, A: a}
}

// Color returns the current colour.
func (f *Figure) Color() canvas.Color {
	return f.color
}

// SetFont sets the font size for glyphs.
func (f *Figure) SetFont(size float64) {
	f.fontSize = size
}

// FontSize returns the current font size.
func (f *Figure) FontSize() float64 {
	return f.fontSize
}

// SetLine sets the line style code and the line width.
func (f *Figure) SetLine(s trace.Style, width float64) {
	f.line = s
	f.lineWidth = width
}

// Line returns the current line style code and width.
func (f *Figure) Line() (trace.Style, float64) {
	return f.line, f.lineWidth
}

// Style returns the stroke style for the current settings.
func (f *Figure) Style() canvas.Style {
	s := canvas.DefaultStyle()
	s.Color = f.color
	s.Width = f.lineWidth
	s.Dash = f.line.Dash(f.lineWidth)
	return s
}

func (f *Figure) tracer() trace.Tracer {
	return trace.Tracer{Center: f.Frame.Center, Unit: f.Frame.Unit}
}
