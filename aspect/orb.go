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

package aspect

import "math"

// Orb defines an aspect by its exact angle and the allowed deviation.
type Orb struct {
	Kind  Kind
	Angle float64
	Orb   float64
}

// Table is a list of orb definitions.  The first matching entry wins.
type Table []Orb

// DefaultTable contains the classical major aspects and two minor ones.
var DefaultTable = Table{
	{Conjunction, 0, 10},
	{Opposition, 180, 8},
	{Trine, 120, 7},
	{Square, 90, 6},
	{Sextile, 60, 3},
	{SemiSextile, 30, 2},
	{Quincunx, 150, 2},
}

// signedDiff returns lon1-lon2, normalised to (-180, 180].
func signedDiff(lon1, lon2 float64) float64 {
	d := math.Mod(lon1-lon2, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// Classify returns the first aspect of the table which matches the two
// longitudes.  The score is the unused part of the orb.
func (t Table) Classify(lon1, lon2 float64) Aspect {
	d := signedDiff(lon1, lon2)
	da := math.Abs(d)
	for _, o := range t {
		dev := math.Abs(da - o.Angle)
		if dev < o.Orb {
			return Aspect{Kind: o.Kind, Score: o.Orb - dev, Diff: d}
		}
	}
	return Aspect{Diff: d}
}

// Find returns all aspects between the given longitudes.
func (t Table) Find(lons []float64) []Aspect {
	var res []Aspect
	for i := range lons {
		for k := i + 1; k < len(lons); k++ {
			a := t.Classify(lons[i], lons[k])
			if a.Kind == None {
				continue
			}
			a.P1, a.P2 = i, k
			res = append(res, a)
		}
	}
	return res
}
