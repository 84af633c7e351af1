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

package canvas

import (
	"image"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// OpKind identifies a recorded canvas operation.
type OpKind int

// These are the recorded operations.
const (
	OpFill OpKind = iota
	OpStroke
	OpImage
)

func (k OpKind) String() string {
	switch k {
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	case OpImage:
		return "image"
	default:
		return "unknown"
	}
}

// Op is one recorded canvas operation.
type Op struct {
	Kind OpKind

	// Path is a copy of the filled or stroked path.
	Path *path.Data

	// Color is the fill color, or the stroke color.
	Color Color

	// Style is set for stroke operations.
	Style Style

	// Center and Size are set for image operations.
	Center vec.Vec2
	Size   float64
}

// Bounds returns the bounding box of the path's points and control points.
// For image operations the image square is returned.
func (op *Op) Bounds() rect.Rect {
	if op.Kind == OpImage {
		h := op.Size / 2
		return rect.Rect{
			LLx: op.Center.X - h, LLy: op.Center.Y - h,
			URx: op.Center.X + h, URy: op.Center.Y + h,
		}
	}
	var r rect.Rect
	for i, p := range op.Path.Coords {
		if i == 0 {
			r = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
			continue
		}
		r.LLx = min(r.LLx, p.X)
		r.LLy = min(r.LLy, p.Y)
		r.URx = max(r.URx, p.X)
		r.URy = max(r.URy, p.Y)
	}
	return r
}

// Recorder is a Canvas which records all operations.
// It is used to test drawing code without rasterising.
type Recorder struct {
	Ops []Op
}

func clonePath(p *path.Data) *path.Data {
	return &path.Data{
		Cmds:   slices.Clone(p.Cmds),
		Coords: slices.Clone(p.Coords),
	}
}

// Fill implements the [Canvas] interface.
func (r *Recorder) Fill(p *path.Data, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Path: clonePath(p), Color: c})
}

// Stroke implements the [Canvas] interface.
func (r *Recorder) Stroke(p *path.Data, s *Style) {
	st := *s
	st.Dash = slices.Clone(s.Dash)
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Path: clonePath(p), Color: s.Color, Style: st})
}

// Image implements the [Canvas] interface.
func (r *Recorder) Image(img image.Image, center vec.Vec2, size float64) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, Center: center, Size: size})
}

// Count returns the number of recorded operations of the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for i := range r.Ops {
		if r.Ops[i].Kind == kind {
			n++
		}
	}
	return n
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
