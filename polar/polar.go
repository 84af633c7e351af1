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

// Package polar maps ecliptic longitudes onto canvas coordinates.
//
// Longitudes increase counterclockwise on the canvas and the ascendant is always
// drawn at the 9 o'clock position. Canvas coordinates have the y axis
// pointing down, as in image space.
package polar

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// unitFraction is the size of one drawing unit, relative to the chart radius.
const unitFraction = 0.04

// Frame describes the placement of a chart wheel on the canvas.
//
// All radii passed to the methods of Frame are absolute canvas lengths.
type Frame struct {
	// Center is the canvas position of the chart center.
	Center vec.Vec2

	// Radius is the outer radius of the chart.
	Radius float64

	// Ascendant is the longitude (in degrees) which is drawn at the
	// left-most point of the wheel.
	Ascendant float64

	// Unit is the base size used for line decorations and text.
	Unit float64
}

// NewFrame returns the frame for a chart filling a w×h canvas.
func NewFrame(w, h, ascendant float64) Frame {
	r := min(w, h) / 2
	return Frame{
		Center:    vec.Vec2{X: w / 2, Y: h / 2},
		Radius:    r,
		Ascendant: ascendant,
		Unit:      r * unitFraction,
	}
}

// Angle converts a longitude in degrees to a canvas angle in radians.
func (f Frame) Angle(lon float64) float64 {
	return math.Pi + (lon-f.Ascendant)*(-math.Pi/180)
}

// Project returns the canvas position at radius r and longitude lon.
func (f Frame) Project(r, lon float64) vec.Vec2 {
	a := f.Angle(lon)
	return vec.Vec2{
		X: f.Center.X + r*math.Cos(a),
		Y: f.Center.Y + r*math.Sin(a),
	}
}

// Direction returns the unit vector pointing from the center towards lon.
func (f Frame) Direction(lon float64) vec.Vec2 {
	a := f.Angle(lon)
	return vec.Vec2{X: math.Cos(a), Y: math.Sin(a)}
}

// Distance returns the angular distance between two longitudes,
// in the range [0, 180].
func Distance(a, b float64) float64 {
	return 180 - math.Abs(math.Abs(math.Mod(a-b, 360))-180)
}

// Chord returns the length of the chord which spans deg degrees on a
// circle of radius r.
func Chord(deg, r float64) float64 {
	return math.Sqrt(2*r*r - 2*r*r*math.Cos(deg*math.Pi/180))
}

// Degrees returns the angle (in degrees) spanned by a chord of length l
// on a circle of radius r.  This is the inverse of [Chord].
func Degrees(l, r float64) float64 {
	c := 1 - l*l/(2*r*r)
	c = max(-1, min(1, c))
	return math.Acos(c) * 180 / math.Pi
}

// Normalize reduces a longitude to the range [0, 360).
func Normalize(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}
	return lon
}
