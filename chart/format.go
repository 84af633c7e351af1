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

package chart

import (
	"fmt"
	"math"
	"strings"
	"time"

	"seehuhn.de/go/chartwheel/polar"
)

// Roman writes n in additive roman notation, so 4 becomes "IIII".
func Roman(n int) string {
	digits := []struct {
		value int
		digit byte
	}{
		{1000, 'M'}, {500, 'D'}, {100, 'C'}, {50, 'L'}, {10, 'X'}, {5, 'V'}, {1, 'I'},
	}
	var b strings.Builder
	for _, d := range digits {
		for n >= d.value {
			b.WriteByte(d.digit)
			n -= d.value
		}
	}
	return b.String()
}

// Zodiac formats a longitude as degrees within the sign, the sign glyph
// and the minutes, e.g. "15♈30.000".
func Zodiac(lon float64) string {
	return zodiac(lon, SignSymbols[:])
}

// ZodiacASCII is like [Zodiac], but uses two-letter sign abbreviations.
func ZodiacASCII(lon float64) string {
	return zodiac(lon, signAbbr[:])
}

func zodiac(lon float64, signs []string) string {
	if math.IsNaN(lon) {
		return ""
	}
	lon = lonDegrees(lon)
	sign := int(lon) / 30
	deg, frac := math.Modf(lon - float64(sign*30))
	return fmt.Sprintf("%02.0f%s%06.3f", deg, signs[sign], frac*60)
}

// SignDegree returns the whole degrees of lon within its sign, formatted
// with two digits.
func SignDegree(lon float64) string {
	return fmt.Sprintf("%02d", int(lonDegrees(lon))%30)
}

// Coords formats a geographic position, e.g. "42.25N, 59.75W".
func Coords(lat, lon float64) string {
	ns, ew := 'N', 'E'
	if lat < 0 {
		ns = 'S'
	}
	if lon < 0 {
		ew = 'W'
	}
	return fmt.Sprintf("%.2f%c, %.2f%c", math.Abs(lat), ns, math.Abs(lon), ew)
}

// DateTag formats a time in UTC, e.g. "1997-9-30:12-00 UCT".
func DateTag(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%04d-%d-%d:%02d-%02d UCT",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}

func lonDegrees(lon float64) float64 {
	lon = polar.Normalize(lon)
	if lon >= 360 {
		lon = 0
	}
	return lon
}
