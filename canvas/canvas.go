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

// Package canvas defines the drawing surface used for chart rendering.
//
// Coordinates are canvas units with the origin in the top-left corner and
// the y axis pointing down.  Text is converted to outlines before it
// reaches a canvas, so a Canvas only needs to fill and stroke paths and
// to place images.
package canvas

import (
	"image"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Canvas is a vector drawing surface.
//
// Implementations must not retain the path or style arguments after the
// call returns.
type Canvas interface {
	// Fill fills the path with the given color, using the nonzero
	// winding rule.
	Fill(p *path.Data, c Color)

	// Stroke strokes the path.
	Stroke(p *path.Data, s *Style)

	// Image draws img scaled to a size×size square centered at center.
	Image(img image.Image, center vec.Vec2, size float64)
}

// Color is a non-premultiplied RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Gray returns an opaque gray level.
func Gray(l float64) Color {
	return Color{R: l, G: l, B: l, A: 1}
}

// Some frequently used colors.
var (
	Black = Gray(0)
	White = Gray(1)
)

// Over returns the color c composited over an opaque background bg.
func (c Color) Over(bg Color) Color {
	a := c.A
	return Color{
		R: c.R*a + bg.R*(1-a),
		G: c.G*a + bg.G*(1-a),
		B: c.B*a + bg.B*(1-a),
		A: 1,
	}
}

// Style describes how a path is stroked.
type Style struct {
	Color Color

	// Width is the line width in canvas units.
	Width float64

	// Dash is the dash pattern in canvas units, or nil for solid lines.
	Dash []float64

	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle
}

// DefaultStyle returns the style used at the start of every band.
func DefaultStyle() Style {
	return Style{
		Color: Black,
		Width: 2,
		Cap:   graphics.LineCapButt,
		Join:  graphics.LineJoinMiter,
	}
}
