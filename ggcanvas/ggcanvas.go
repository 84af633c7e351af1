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

// Package ggcanvas renders chart wheels using the gogpu/gg 2D graphics
// library.
package ggcanvas

import (
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/chartwheel/canvas"
)

// Canvas is a [canvas.Canvas] which draws into a gg context.
//
// Drawing errors are recorded, and the first error is returned by
// [Canvas.WritePNG].
type Canvas struct {
	dc  *gg.Context
	err error
}

var _ canvas.Canvas = (*Canvas)(nil)

// New returns a w×h canvas, cleared to bg.  Every canvas unit is rendered
// as scale×scale pixels.
func New(w, h, scale float64, bg canvas.Color) *Canvas {
	dc := gg.NewContextWithScale(int(math.Ceil(w)), int(math.Ceil(h)), scale)
	bg = bg.Over(canvas.White)
	dc.ClearWithColor(gg.RGB(bg.R, bg.G, bg.B))
	return &Canvas{dc: dc}
}

// Fill implements the [canvas.Canvas] interface.
func (c *Canvas) Fill(p *path.Data, col canvas.Color) {
	c.setPath(p)
	c.dc.SetFillRule(gg.FillRuleNonZero)
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.check(c.dc.Fill())
}

// Stroke implements the [canvas.Canvas] interface.
func (c *Canvas) Stroke(p *path.Data, s *canvas.Style) {
	c.setPath(p)
	c.dc.SetLineWidth(s.Width)
	c.dc.SetLineCap(lineCaps[s.Cap])
	c.dc.SetLineJoin(lineJoins[s.Join])
	c.dc.SetDash(s.Dash...)
	c.dc.SetRGBA(s.Color.R, s.Color.G, s.Color.B, s.Color.A)
	c.check(c.dc.Stroke())
}

// Image implements the [canvas.Canvas] interface.
func (c *Canvas) Image(img image.Image, center vec.Vec2, size float64) {
	if img.Bounds().Empty() || size <= 0 {
		return
	}
	c.dc.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:         center.X - size/2,
		Y:         center.Y - size/2,
		DstWidth:  size,
		DstHeight: size,
		Opacity:   1,
	})
}

// Result returns the rendered image.
func (c *Canvas) Result() image.Image {
	return c.dc.Image()
}

// WritePNG encodes the image in PNG format.
func (c *Canvas) WritePNG(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	return c.dc.EncodePNG(w)
}

// Close releases the resources held by the gg context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

func (c *Canvas) check(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

func (c *Canvas) setPath(p *path.Data) {
	c.dc.ClearPath()
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			c.dc.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			c.dc.LineTo(pts[0].X, pts[0].Y)
		case path.CmdQuadTo:
			c.dc.QuadraticTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case path.CmdCubeTo:
			c.dc.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			c.dc.ClosePath()
		}
	}
}

var lineCaps = map[graphics.LineCapStyle]gg.LineCap{
	graphics.LineCapButt:   gg.LineCapButt,
	graphics.LineCapRound:  gg.LineCapRound,
	graphics.LineCapSquare: gg.LineCapSquare,
}

var lineJoins = map[graphics.LineJoinStyle]gg.LineJoin{
	graphics.LineJoinMiter: gg.LineJoinMiter,
	graphics.LineJoinRound: gg.LineJoinRound,
	graphics.LineJoinBevel: gg.LineJoinBevel,
}
