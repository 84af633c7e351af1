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

// Package glyph converts text into outlines.
//
// A [Face] is a list of fonts which are tried in order for every rune, so
// that symbols missing from the text font can be taken from a fallback.
// Outlines are appended to [path.Data] values in canvas coordinates, with
// the y-axis pointing down.
package glyph

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrNoFont is returned by [NewFace] when no fonts are given.
var ErrNoFont = errors.New("glyph: no font")

// Face renders text using a chain of fonts.
// It is safe for concurrent use.
type Face struct {
	fonts []*sfnt.Font

	mu  sync.Mutex
	buf sfnt.Buffer
}

// Extents describe the ink rectangle and the advance of a piece of text,
// relative to the origin on the baseline.  For text above the baseline
// YBearing is negative.
type Extents struct {
	XBearing, YBearing float64
	Width, Height      float64
	Advance            float64
}

// Parse reads a TrueType or OpenType font.
func Parse(data []byte) (*sfnt.Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: %w", err)
	}
	return f, nil
}

// NewFace returns a face which uses the given fonts in order of preference.
func NewFace(fonts ...*sfnt.Font) (*Face, error) {
	if len(fonts) == 0 {
		return nil, ErrNoFont
	}
	return &Face{fonts: fonts}, nil
}

// Has reports whether any font of the face has a glyph for r.
func (f *Face) Has(r rune) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	fnt, _ := f.lookup(r)
	return fnt != nil
}

// Missing returns the runes of s which no font of the face can show.
func (f *Face) Missing(s string) []rune {
	f.mu.Lock()
	defer f.mu.Unlock()
	var res []rune
	for _, r := range s {
		if fnt, _ := f.lookup(r); fnt == nil {
			res = append(res, r)
		}
	}
	return res
}

// Extents measures s at the given size.
func (f *Face) Extents(s string, size float64) Extents {
	return f.Append(nil, s, size, matrix.Identity)
}

// Append adds the outline of s, set at the given size with the origin at
// (0, 0), to d.  The outline is transformed by m before it is added.
// If d is nil, the text is only measured.  Runes which are not covered by
// any font are skipped.
func (f *Face) Append(d *path.Data, s string, size float64, m matrix.Matrix) Extents {
	f.mu.Lock()
	defer f.mu.Unlock()

	var llx, lly, urx, ury float64
	empty := true
	x := 0.0
	for _, r := range s {
		fnt, gid := f.lookup(r)
		if fnt == nil {
			continue
		}

		// Glyphs are loaded in font units and scaled here, to avoid the
		// rounding of small sizes to 1/64 pixel.
		upem := fnt.UnitsPerEm()
		ppem := fixed.Int26_6(upem) << 6
		q := size / float64(upem)

		segs, err := fnt.LoadGlyph(&f.buf, gid, ppem, nil)
		if err == nil && len(segs) > 0 {
			b := segs.Bounds()
			g0 := x + fromFixed(b.Min.X)*q
			g1 := x + fromFixed(b.Max.X)*q
			h0 := fromFixed(b.Min.Y) * q
			h1 := fromFixed(b.Max.Y) * q
			if empty {
				llx, lly, urx, ury = g0, h0, g1, h1
				empty = false
			} else {
				llx, lly = min(llx, g0), min(lly, h0)
				urx, ury = max(urx, g1), max(ury, h1)
			}
			if d != nil {
				appendSegments(d, segs, x, q, m)
			}
		}

		adv, err := fnt.GlyphAdvance(&f.buf, gid, ppem, font.HintingNone)
		if err == nil {
			x += fromFixed(adv) * q
		}
	}

	return Extents{
		XBearing: llx,
		YBearing: lly,
		Width:    urx - llx,
		Height:   ury - lly,
		Advance:  x,
	}
}

// lookup finds the first font which has a glyph for r.
// The caller must hold f.mu.
func (f *Face) lookup(r rune) (*sfnt.Font, sfnt.GlyphIndex) {
	for _, fnt := range f.fonts {
		gid, err := fnt.GlyphIndex(&f.buf, r)
		if err == nil && gid != 0 {
			return fnt, gid
		}
	}
	return nil, 0
}

func appendSegments(d *path.Data, segs sfnt.Segments, dx, q float64, m matrix.Matrix) {
	pt := func(p fixed.Point26_6) vec.Vec2 {
		return apply(m, vec.Vec2{X: dx + fromFixed(p.X)*q, Y: fromFixed(p.Y) * q})
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				d.Close()
			}
			d.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			d.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			d.QuadTo(pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			d.CubeTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
	if open {
		d.Close()
	}
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
