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
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chartwheel/canvas"
)

// ImageCanvas is a [canvas.Canvas] which draws into an RGBA image.
type ImageCanvas struct {
	// Img holds the rendered pixels.
	Img *image.RGBA

	scale float64
	r     *Rasterizer
}

var _ canvas.Canvas = (*ImageCanvas)(nil)

// NewImageCanvas allocates an image for a w×h canvas.  Every canvas unit
// is rendered as scale×scale pixels.  The image is cleared to bg.
func NewImageCanvas(w, h, scale float64, bg canvas.Color) *ImageCanvas {
	pw := int(w*scale + 0.5)
	ph := int(h*scale + 0.5)
	img := image.NewRGBA(image.Rect(0, 0, pw, ph))

	r := NewRasterizer(rect.Rect{URx: float64(pw), URy: float64(ph)})
	r.CTM = matrix.Scale(scale, scale)

	c := &ImageCanvas{Img: img, scale: scale, r: r}
	c.clear(bg)
	return c
}

func (c *ImageCanvas) clear(bg canvas.Color) {
	bg = bg.Over(canvas.White)
	px := [4]uint8{to8(bg.R), to8(bg.G), to8(bg.B), 255}
	for i := 0; i < len(c.Img.Pix); i += 4 {
		copy(c.Img.Pix[i:i+4], px[:])
	}
}

// Fill implements the [canvas.Canvas] interface.
func (c *ImageCanvas) Fill(p *path.Data, col canvas.Color) {
	c.r.FillNonZero(p, c.painter(col))
}

// Stroke implements the [canvas.Canvas] interface.
func (c *ImageCanvas) Stroke(p *path.Data, s *canvas.Style) {
	c.r.Width = s.Width
	c.r.Cap = s.Cap
	c.r.Join = s.Join
	c.r.Dash = s.Dash
	c.r.DashPhase = 0
	c.r.Stroke(p, c.painter(s.Color))
}

// Image implements the [canvas.Canvas] interface.
func (c *ImageCanvas) Image(img image.Image, center vec.Vec2, size float64) {
	b := img.Bounds()
	if b.Empty() || size <= 0 {
		return
	}
	sx := size * c.scale / float64(b.Dx())
	sy := size * c.scale / float64(b.Dy())
	left := (center.X - size/2) * c.scale
	top := (center.Y - size/2) * c.scale
	s2d := f64.Aff3{
		sx, 0, left - sx*float64(b.Min.X),
		0, sy, top - sy*float64(b.Min.Y),
	}
	draw.BiLinear.Transform(c.Img, s2d, img, b, draw.Over, nil)
}

// WritePNG encodes the image in PNG format.
func (c *ImageCanvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Img)
}

// painter returns an emitter which composites col onto the image,
// weighted by the coverage.
func (c *ImageCanvas) painter(col canvas.Color) Emitter {
	pix := c.Img.Pix
	stride := c.Img.Stride
	return func(y, xMin int, coverage []float32) {
		row := pix[y*stride:]
		for i, cov := range coverage {
			a := float64(cov) * col.A
			if a <= 0 {
				continue
			}
			o := (xMin + i) * 4
			row[o+0] = blend(row[o+0], col.R, a)
			row[o+1] = blend(row[o+1], col.G, a)
			row[o+2] = blend(row[o+2], col.B, a)
			row[o+3] = blend(row[o+3], 1, a)
		}
	}
}

// blend composites the premultiplied value a*v over dst.
func blend(dst uint8, v, a float64) uint8 {
	return to8(v*a + float64(dst)/255*(1-a))
}

func to8(v float64) uint8 {
	v = max(0, min(1, v))
	return uint8(v*255 + 0.5)
}
