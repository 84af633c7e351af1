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
	"math"

	"seehuhn.de/go/chartwheel/polar"
)

// Distribute returns display positions for the given longitudes, so that
// glyphs drawn at these positions overlap less.  Every longitude which is
// closer than minSep degrees to another one is moved away from it by half
// the missing distance.  For two isolated points this gives a separation
// of exactly minSep.
func Distribute(lons []float64, minSep float64) []float64 {
	res := make([]float64, len(lons))
	for i, li := range lons {
		pos := li
		for k, lk := range lons {
			if k == i {
				continue
			}
			d := polar.Distance(li, lk)
			if d >= minSep {
				continue
			}
			delta := (minSep - d) / 2
			diff := math.Remainder(li-lk, 360)
			if diff < 0 || (diff == 0 && i < k) {
				delta = -delta
			}
			pos += delta
		}
		res[i] = polar.Normalize(pos)
	}
	return res
}
