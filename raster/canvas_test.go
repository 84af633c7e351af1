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
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chartwheel/canvas"
)

func TestImageCanvasFill(t *testing.T) {
	c := NewImageCanvas(10, 10, 2, canvas.White)
	if got := c.Img.Bounds(); got != image.Rect(0, 0, 20, 20) {
		t.Fatalf("image bounds %v", got)
	}

	c.Fill(rectPath(1, 1, 4, 4), canvas.RGB(1, 0, 0))
	if got, want := c.Img.RGBAAt(4, 4), (color.RGBA{R: 255, A: 255}); got != want {
		t.Errorf("inside: got %v, want %v", got, want)
	}
	if got, want := c.Img.RGBAAt(12, 12), (color.RGBA{R: 255, G: 255, B: 255, A: 255}); got != want {
		t.Errorf("outside: got %v, want %v", got, want)
	}

	c.Fill(rectPath(5, 5, 9, 9), canvas.Color{A: 0.5})
	if got := c.Img.RGBAAt(14, 14); got.R < 126 || got.R > 129 || got.A != 255 {
		t.Errorf("translucent black over white gave %v", got)
	}
}

func TestImageCanvasStroke(t *testing.T) {
	c := NewImageCanvas(20, 20, 1, canvas.White)
	s := canvas.DefaultStyle()
	s.Width = 4
	c.Stroke(rectPath(5, 5, 15, 15), &s)

	if got := c.Img.RGBAAt(5, 10); got.R != 0 {
		t.Errorf("outline pixel %v is not black", got)
	}
	if got := c.Img.RGBAAt(10, 10); got.R != 255 {
		t.Errorf("interior pixel %v is painted", got)
	}
}

func TestImageCanvasImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			src.SetRGBA(x, y, color.RGBA{B: 255, A: 255})
		}
	}

	c := NewImageCanvas(20, 20, 1, canvas.White)
	c.Image(src, vec.Vec2{X: 10, Y: 10}, 8)
	if got := c.Img.RGBAAt(10, 10); got.B != 255 || got.R != 0 {
		t.Errorf("center pixel %v", got)
	}
	if got := c.Img.RGBAAt(2, 2); got.R != 255 {
		t.Errorf("pixel outside the image %v", got)
	}
}

func TestImageCanvasPNG(t *testing.T) {
	c := NewImageCanvas(5, 5, 1, canvas.Gray(0.5))
	buf := &bytes.Buffer{}
	if err := c.WritePNG(buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 5 {
		t.Errorf("decoded width %d", img.Bounds().Dx())
	}
}
