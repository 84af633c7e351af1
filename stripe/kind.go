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

package stripe

import (
	"maps"
	"slices"
)

// Kind determines what is drawn inside a band.
//
// The set of kinds is closed: all implementations are defined in this
// package.
type Kind interface {
	// Name returns the name used in layout files.
	Name() string

	// paint draws the band between the radii r1 and r2, given in canvas
	// units.  Normally r1 is the outer radius.
	paint(p *Painter, r1, r2 float64)
}

// Spacer leaves the band empty.
type Spacer struct{}

// Markers draws the band boundaries in translucent red (outside) and
// green (inside).  This is used to debug layouts.
type Markers struct{}

// Border draws circles at both band boundaries.
type Border struct{}

// Axis draws the ascendant, midheaven and node axes as dashed lines
// across the chart.
type Axis struct{}

// AxisDecor marks the ascendant and the midheaven with fleurons and the
// node with a node symbol.
type AxisDecor struct{}

// Arrows draws arrow heads pointing to the first and tenth house cusps.
type Arrows struct{}

// Tics draws radial tic marks every Step degrees.
type Tics struct {
	Step float64
}

// MultiTics draws a degree scale with tics of three different lengths.
type MultiTics struct{}

// SignDivs draws the boundaries between the zodiac signs.
type SignDivs struct{}

// SignGlyphs draws the zodiac symbols.
type SignGlyphs struct {
	// Turned rotates the symbols so that their baseline is tangential.
	Turned bool
}

// HouseDivs draws the house cusps.
type HouseDivs struct{}

// PointGlyphs draws a glyph for every point.
type PointGlyphs struct {
	// Ball draws a dot instead of the point's symbol.
	Ball bool

	// Distribute moves glyphs apart which would otherwise overlap.
	Distribute bool
}

// PointPositions writes the degree and the sign of every point.
type PointPositions struct{}

// PointImages draws the picture of every point, as provided by the
// figure's image source.
type PointImages struct{}

// ZodiacOpen draws a degree scale with a gap in the middle of every sign,
// holding the sign's symbol.
type ZodiacOpen struct{}

// HouseSlabs draws every house as a rounded slab, labelled with the house
// name.
type HouseSlabs struct{}

// DotDotPoints marks every point with dots at both band boundaries, and
// labels it with its symbol, degree and sign in the middle.
type DotDotPoints struct{}

// ExtraHouseSystems draws the cusps of the alternate house systems as
// nested scalloped outlines.
type ExtraHouseSystems struct{}

// BasicAspects connects points in aspect by dashed gray lines.
type BasicAspects struct{}

// FancyAspects draws aspects with colors and line shapes depending on the
// aspect kind, and line widths and opacities depending on the score.
type FancyAspects struct{}

// LineSamples draws a sample of every line style.
type LineSamples struct{}

// Noop does nothing.
type Noop struct{}

func (Spacer) Name() string            { return "spacer" }
func (Markers) Name() string           { return "markers" }
func (Border) Name() string            { return "border" }
func (Axis) Name() string              { return "axis" }
func (AxisDecor) Name() string         { return "axis-decor" }
func (Arrows) Name() string            { return "arrows" }
func (Tics) Name() string              { return "tics" }
func (MultiTics) Name() string         { return "multi-tics" }
func (SignDivs) Name() string          { return "sign-divs" }
func (SignGlyphs) Name() string        { return "sign-glyphs" }
func (HouseDivs) Name() string         { return "house-divs" }
func (PointGlyphs) Name() string       { return "point-glyphs" }
func (PointPositions) Name() string    { return "point-positions" }
func (PointImages) Name() string       { return "point-images" }
func (ZodiacOpen) Name() string        { return "zodiac-open" }
func (HouseSlabs) Name() string        { return "house-slabs" }
func (DotDotPoints) Name() string      { return "dot-dot-points" }
func (ExtraHouseSystems) Name() string { return "extra-house-systems" }
func (BasicAspects) Name() string      { return "basic-aspects" }
func (FancyAspects) Name() string      { return "fancy-aspects" }
func (LineSamples) Name() string       { return "line-samples" }
func (Noop) Name() string              { return "noop" }

// Params holds the parameters of all kinds, for kinds which are
// constructed by name.  Kinds ignore the parameters they do not use.
type Params struct {
	Step       float64
	Turned     bool
	Ball       bool
	Distribute bool
}

var kindMakers = map[string]func(Params) Kind{
	"spacer":              func(Params) Kind { return Spacer{} },
	"markers":             func(Params) Kind { return Markers{} },
	"border":              func(Params) Kind { return Border{} },
	"axis":                func(Params) Kind { return Axis{} },
	"axis-decor":          func(Params) Kind { return AxisDecor{} },
	"arrows":              func(Params) Kind { return Arrows{} },
	"tics":                func(p Params) Kind { return Tics{Step: p.Step} },
	"multi-tics":          func(Params) Kind { return MultiTics{} },
	"sign-divs":           func(Params) Kind { return SignDivs{} },
	"sign-glyphs":         func(p Params) Kind { return SignGlyphs{Turned: p.Turned} },
	"house-divs":          func(Params) Kind { return HouseDivs{} },
	"point-glyphs":        func(p Params) Kind { return PointGlyphs{Ball: p.Ball, Distribute: p.Distribute} },
	"point-positions":     func(Params) Kind { return PointPositions{} },
	"point-images":        func(Params) Kind { return PointImages{} },
	"zodiac-open":         func(Params) Kind { return ZodiacOpen{} },
	"house-slabs":         func(Params) Kind { return HouseSlabs{} },
	"dot-dot-points":      func(Params) Kind { return DotDotPoints{} },
	"extra-house-systems": func(Params) Kind { return ExtraHouseSystems{} },
	"basic-aspects":       func(Params) Kind { return BasicAspects{} },
	"fancy-aspects":       func(Params) Kind { return FancyAspects{} },
	"line-samples":        func(Params) Kind { return LineSamples{} },
	"noop":                func(Params) Kind { return Noop{} },
}

// KindByName returns the kind with the given name.
// The boolean result is false if the name is not known.
func KindByName(name string, p Params) (Kind, bool) {
	mk, ok := kindMakers[name]
	if !ok {
		return nil, false
	}
	return mk(p), true
}

// KindNames returns the names of all kinds, in alphabetical order.
func KindNames() []string {
	return slices.Sorted(maps.Keys(kindMakers))
}
