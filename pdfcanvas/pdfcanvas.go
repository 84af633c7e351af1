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

// Package pdfcanvas renders chart wheels into single page PDF files.
//
// All drawing is opaque: translucent colors are composited over the
// background color before they are written.
package pdfcanvas

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/chartwheel/canvas"
)

// maxCells limits the resolution of embedded images.  Larger images are
// sampled down to maxCells×maxCells cells.
const maxCells = 48

// Canvas is a [canvas.Canvas] which writes a PDF page.
type Canvas struct {
	page *document.Page
	bg   canvas.Color
}

var _ canvas.Canvas = (*Canvas)(nil)

// Create starts a new PDF file with a single w×h page.  Sizes are in
// PDF points.  The page is filled with bg.
func Create(fname string, w, h float64, bg canvas.Color) (*Canvas, error) {
	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	c := &Canvas{page: page, bg: bg.Over(canvas.White)}
	page.SetFillColor(deviceColor(c.bg))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// The chart uses a y axis pointing down.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})
	return c, nil
}

// Close writes the page and closes the file.
func (c *Canvas) Close() error {
	return c.page.Close()
}

// Fill implements the [canvas.Canvas] interface.
func (c *Canvas) Fill(p *path.Data, col canvas.Color) {
	if len(p.Cmds) == 0 {
		return
	}
	c.page.SetFillColor(deviceColor(col.Over(c.bg)))
	c.setPath(p)
	c.page.Fill()
}

// Stroke implements the [canvas.Canvas] interface.
func (c *Canvas) Stroke(p *path.Data, s *canvas.Style) {
	if len(p.Cmds) == 0 {
		return
	}
	c.page.SetStrokeColor(deviceColor(s.Color.Over(c.bg)))
	c.page.SetLineWidth(s.Width)
	c.page.SetLineCap(s.Cap)
	c.page.SetLineJoin(s.Join)
	c.page.SetLineDash(s.Dash, 0)
	c.setPath(p)
	c.page.Stroke()
}

// Image implements the [canvas.Canvas] interface.
//
// The image is drawn as a grid of filled rectangles.  Transparent cells
// are left out.
func (c *Canvas) Image(img image.Image, center vec.Vec2, size float64) {
	cells := sampleImage(img, maxCells)
	if len(cells) == 0 || size <= 0 {
		return
	}
	n := len(cells)
	step := size / float64(n)
	x0 := center.X - size/2
	y0 := center.Y - size/2
	for row, line := range cells {
		for col, cell := range line {
			if cell.A <= 0 {
				continue
			}
			c.page.SetFillColor(deviceColor(cell.Over(c.bg)))
			// neighbouring cells overlap slightly
			c.page.Rectangle(x0+float64(col)*step, y0+float64(row)*step, step*1.02, step*1.02)
			c.page.Fill()
		}
	}
}

func (c *Canvas) setPath(p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			c.page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			c.page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			c.page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			c.page.ClosePath()
		}
	}
}

// deviceColor converts an opaque color to a PDF device color.
func deviceColor(col canvas.Color) color.Color {
	if col.R == col.G && col.G == col.B {
		return color.DeviceGray(col.R)
	}
	return color.DeviceRGB{col.R, col.G, col.B}
}

// sampleImage divides img into an n×n grid, n ≤ maxN, and returns the
// color at the center of every cell.  Rows are returned from top to
// bottom.
func sampleImage(img image.Image, maxN int) [][]canvas.Color {
	b := img.Bounds()
	if b.Empty() {
		return nil
	}
	n := min(max(b.Dx(), b.Dy()), maxN)

	res := make([][]canvas.Color, n)
	for row := range res {
		res[row] = make([]canvas.Color, n)
		y := b.Min.Y + int(math.Floor((float64(row)+0.5)*float64(b.Dy())/float64(n)))
		for col := range res[row] {
			x := b.Min.X + int(math.Floor((float64(col)+0.5)*float64(b.Dx())/float64(n)))
			r, g, bl, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			// un-premultiply
			res[row][col] = canvas.Color{
				R: float64(r) / float64(a),
				G: float64(g) / float64(a),
				B: float64(bl) / float64(a),
				A: float64(a) / 0xffff,
			}
		}
	}
	return res
}
