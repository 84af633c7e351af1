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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chartwheel/trace"
)

// wheelSizes are typical output sizes for chart wheels, in pixels.
var wheelSizes = []int{50, 500, 2000}

// BenchmarkRasterizerRing fills the zodiac ring of a wheel.
func BenchmarkRasterizerRing(b *testing.B) {
	for _, size := range wheelSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := NewRasterizer(rect.Rect{URx: float64(size), URy: float64(size)})
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			ring := makeRing(float64(size)/2, float64(size)*0.48, float64(size)*0.40)

			b.ReportAllocs()
			for b.Loop() {
				r.FillEvenOdd(ring, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorRing fills the same ring with x/image/vector.
func BenchmarkVectorRing(b *testing.B) {
	for _, size := range wheelSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})
			c := float32(size) / 2

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addVectorCircle(r, c, float32(size)*0.48, false)
				addVectorCircle(r, c, float32(size)*0.40, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeTics strokes the 360 tick marks of a degree scale.
func BenchmarkStrokeTics(b *testing.B) {
	const size = 1000
	r := NewRasterizer(rect.Rect{URx: size, URy: size})
	r.Width = 1.5
	dst := image.NewAlpha(image.Rect(0, 0, size, size))

	tics := &path.Data{}
	for i := range 360 {
		sin, cos := math.Sincos(float64(i) * math.Pi / 180)
		tics.MoveTo(vec.Vec2{X: 500 + 440*cos, Y: 500 + 440*sin})
		tics.LineTo(vec.Vec2{X: 500 + 470*cos, Y: 500 + 470*sin})
	}

	b.ReportAllocs()
	for b.Loop() {
		r.Stroke(tics, func(y, xMin int, coverage []float32) {
			row := dst.Pix[y*dst.Stride+xMin:]
			for i, c := range coverage {
				row[i] = uint8(c * 255)
			}
		})
	}
}

func makeRing(c, outer, inner float64) *path.Data {
	d := &path.Data{}
	trace.AppendCircle(d, vec.Vec2{X: c, Y: c}, outer)
	trace.AppendCircle(d, vec.Vec2{X: c, Y: c}, inner)
	return d
}

// addVectorCircle adds a circle made of four cubic Bézier curves.
func addVectorCircle(r *vector.Rasterizer, c, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	r.MoveTo(c, c-radius)
	if clockwise {
		r.CubeTo(c-kr, c-radius, c-radius, c-kr, c-radius, c)
		r.CubeTo(c-radius, c+kr, c-kr, c+radius, c, c+radius)
		r.CubeTo(c+kr, c+radius, c+radius, c+kr, c+radius, c)
		r.CubeTo(c+radius, c-kr, c+kr, c-radius, c, c-radius)
	} else {
		r.CubeTo(c+kr, c-radius, c+radius, c-kr, c+radius, c)
		r.CubeTo(c+radius, c+kr, c+kr, c+radius, c, c+radius)
		r.CubeTo(c-kr, c+radius, c-radius, c+kr, c-radius, c)
		r.CubeTo(c-radius, c-kr, c-kr, c-radius, c, c-radius)
	}
	r.ClosePath()
}
