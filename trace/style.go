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

package trace

import "fmt"

// Style is a line style code.
//
// The last decimal digit selects a dash pattern (see [Style.Dash]), the
// hundreds select the shape of the line (see [Family]) and the remainder
// modulo 100 sets the density of the decoration.  For example, 36 is a
// densely dashed straight line and 220 is a sawtooth line.
type Style int

// Family is the shape of a traced line.
type Family int

// These are the supported line shapes.
const (
	Straight Family = iota
	Wavy
	Sawtooth
	Zigzag
	Bulge
)

func (f Family) String() string {
	switch f {
	case Straight:
		return "straight"
	case Wavy:
		return "wavy"
	case Sawtooth:
		return "sawtooth"
	case Zigzag:
		return "zigzag"
	case Bulge:
		return "bulge"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Family returns the line shape encoded in the style code.
// Codes outside the known range are traced as straight lines.
func (s Style) Family() Family {
	f := Family(s / 100)
	if s < 0 || f > Bulge {
		return Straight
	}
	return f
}

// Pattern returns the dash pattern number, in the range 0 to 9.
func (s Style) Pattern() int {
	p := int(s) % 10
	if p < 0 {
		p = -p
	}
	return p
}

// Density returns the density factor for wavy, sawtooth and zigzag lines.
// The factor is 0.75 for the plain codes and grows by 0.02 per unit of
// the code modulo 100.
func (s Style) Density() float64 {
	return 0.75 + float64(s.mod100())/50
}

// Tension returns the factor by which the control points of a bulge line
// are pulled towards the chart center.
func (s Style) Tension() float64 {
	return float64(s.mod100()) / 10
}

func (s Style) mod100() int {
	m := int(s) % 100
	if m < 0 {
		m = -m
	}
	return m
}

// dashBase is the basic dash table.  The patterns are slices of this
// table, scaled by the line width.
var dashBase = [7]float64{2, 8, 2, 2, 2, 2, 2}

// Dash returns the dash array for a line of the given width.
// A nil return value means a solid line.
func (s Style) Dash(width float64) []float64 {
	var d [7]float64
	f := width * s.Density()
	for i, v := range dashBase {
		d[i] = v * f
	}

	var pat []float64
	switch s.Pattern() {
	case 1: // --- --- ---
		pat = d[1:3]
	case 2: // ---   ---   ---
		pat = d[1:2]
	case 3: // - - - - - -
		pat = d[2:3]
	case 4: // - -    - -    - -
		pat = d[0:4]
	case 5: // -    -    -
		pat = d[0:2]
	case 6: // ---- - ---- -
		pat = d[1:5]
	case 7: // ---- - - ---- - -
		pat = d[1:7]
	default:
		return nil
	}
	return append([]float64(nil), pat...)
}
