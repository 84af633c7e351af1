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

// Package stripe lays out and paints the concentric bands of a chart wheel.
//
// A chart is described by a list of [Descriptor] values, from the outside
// inwards.  Each descriptor gives some of the band's dimensions, as
// fractions of the chart radius, and a [Kind] which determines what is
// drawn inside the band.  [Resolve] fills in the missing dimensions and
// [Painter] draws the bands.
package stripe

// Descriptor is the partial specification of a band.
//
// Radii are fractions of the chart radius.  Zero values mean "not set".
type Descriptor struct {
	// Begin is the outer radius of the band.
	Begin float64

	// End is the inner radius of the band.
	End float64

	// Width, if positive, fixes the distance between Begin and End.
	Width float64

	// Over makes the band relative to an earlier band, whose Begin and
	// End are added to the values in this descriptor.  A negative value
	// counts backwards from the current band, so that -1 refers to the
	// preceding band.  A positive value is the 1-based position of the
	// band in the list, so that 1 refers to the first band.
	Over int

	Kind Kind
}

// Band is a band with resolved dimensions.
type Band struct {
	// Index is the position of the band's descriptor in the list.
	Index int

	// Begin and End are the outer and inner radius, as fractions of the
	// chart radius.
	Begin, End float64

	// Skipped is set if Over refers to a band which does not exist.
	// Skipped bands keep zero radii and are never painted.
	Skipped bool

	Kind Kind
}

// Degenerate reports whether the band has no inner radius.
// Degenerate bands are not painted.
func (b Band) Degenerate() bool {
	return b.End == 0
}

// Resolve computes the dimensions of all bands.
//
// The descriptors are processed in order, and only bands before the
// current one are consulted:
//
//  1. If Over is set, the Begin and End of the referenced band are added
//     to the descriptor's values.  A reference to the current band, to a
//     later band or to a position before the start of the list marks the
//     band as skipped.
//  2. If Begin is not positive, it is set to End+Width when both are
//     given.  Otherwise the band starts where the last band which was
//     not skipped ends, or at the outer edge of the chart if there is no
//     such band.
//  3. If Width is positive, End is set to Begin-Width, replacing any
//     value found so far.
//
// The descriptors are not modified.
func Resolve(descs []Descriptor) []Band {
	bands := make([]Band, len(descs))
	prevEnd := 1.0
	for i, d := range descs {
		b := Band{Index: i, Kind: d.Kind}
		if abs(d.Over) > i {
			b.Skipped = true
			bands[i] = b
			continue
		}

		begin, end := d.Begin, d.End
		switch {
		case d.Over < 0:
			ref := bands[i+d.Over]
			begin += ref.Begin
			end += ref.End
		case d.Over > 0:
			ref := bands[d.Over-1]
			begin += ref.Begin
			end += ref.End
		}

		if !(begin > 0) {
			if d.Width != 0 && end != 0 {
				begin = end + d.Width
			} else {
				begin = prevEnd
			}
		}

		if d.Width > 0 {
			end = begin - d.Width
		}

		b.Begin, b.End = begin, end
		bands[i] = b
		prevEnd = end
	}
	return bands
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// DefaultLayout returns the layout of the standard chart wheel.
// The points are drawn over the house slabs.
func DefaultLayout() []Descriptor {
	return []Descriptor{
		{Kind: AxisDecor{}, Width: 0.1},
		{Kind: Axis{}, Over: 1},
		{Kind: ZodiacOpen{}, Begin: 0.96, End: 0.88},
		{Kind: ExtraHouseSystems{}, Width: 0.05},
		{Kind: Spacer{}, Width: 0.025},
		{Kind: HouseSlabs{}, Width: 0.3},
		{Kind: FancyAspects{}, Width: 0.3},
		{Kind: DotDotPoints{}, Over: -2},
		{Kind: PointImages{}, Begin: 1, End: 0.84},
	}
}
