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

// Package aspect classifies the angular relations between chart points.
//
// [Classify] uses a continuous harmonic score: for each divisor n the
// separation is compared to the nearest multiple of 360/n, and the match
// is sharpened with an 18th power.  [Table] implements the traditional
// classification with a fixed orb per aspect.
package aspect

import (
	"fmt"
	"math"
)

// Kind identifies an aspect.  For harmonic aspects the value is the
// divisor of the circle.
type Kind int

// These are the aspect kinds.  SemiSextile and Quincunx are only produced
// by orb tables.
const (
	None        Kind = 0
	Conjunction Kind = 1
	Opposition  Kind = 2
	Trine       Kind = 3
	Square      Kind = 4
	Quintile    Kind = 5
	Sextile     Kind = 6
	Septile     Kind = 7
	Inconjunct  Kind = 12
	SemiSextile Kind = 121
	Quincunx    Kind = 125
)

var kindNames = map[Kind]string{
	None:        "none",
	Conjunction: "conjunction",
	Opposition:  "opposition",
	Trine:       "trine",
	Square:      "square",
	Quintile:    "quintile",
	Sextile:     "sextile",
	Septile:     "septile",
	Inconjunct:  "inconjunct",
	SemiSextile: "semisextile",
	Quincunx:    "quincunx",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var kindSymbols = map[Kind]string{
	None:        " ",
	Conjunction: "☌",
	Opposition:  "☍",
	Trine:       "△",
	Square:      "□",
	Quintile:    "⅕",
	Sextile:     "⚹",
	Septile:     "⅐",
	Inconjunct:  "⚻",
	SemiSextile: "⚺",
	Quincunx:    "⚻",
}

// Symbol returns the glyph used for the aspect kind.
func (k Kind) Symbol() string {
	if s, ok := kindSymbols[k]; ok {
		return s
	}
	return "."
}

// Aspect describes the relation between two chart points.
type Aspect struct {
	// P1 and P2 are the indices of the two points, with P1 < P2.
	P1, P2 int

	Kind Kind

	// Score measures how exact the aspect is.  It is positive whenever
	// Kind is not None.
	Score float64

	// Diff is the angular difference between the two points.
	// For [Classify] this is the separation in [0, 180]; for orb tables
	// it is the signed difference lon1-lon2 in (-180, 180].
	Diff float64

	// Nearest is the best fitting harmonic divisor, even when its score
	// is too low to count as an aspect.  Orb tables leave this at None.
	Nearest Kind
}

// Symbol returns the glyph for the aspect.
func (a Aspect) Symbol() string {
	return a.Kind.Symbol()
}

// Scoring constants for harmonic aspects.
const (
	sharpness = 18
	scale     = 110
	offset    = 10
)

// divisors lists the harmonics in the order they are tested.  On ties the
// earlier divisor wins.
var divisors = []Kind{1, 2, 3, 4, 5, 6, 7, 12}

// Separation returns the angular distance between two longitudes,
// reduced to the range [0, 180].
func Separation(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// HarmonicScore returns the score of the separation diff for the
// harmonic divisor n.  The value ranges from -10 (worst) to 100 (exact).
func HarmonicScore(diff float64, n int) float64 {
	period := 360 / float64(n)
	half := 180 / float64(n)
	m := math.Abs(math.Mod(diff, period)-half) / half
	return math.Pow(m, sharpness)*scale - offset
}

// Classify finds the harmonic aspect between two longitudes.
//
// The kind with the highest positive score wins.  If no divisor scores
// above zero, Kind is None and Score is zero; Nearest then still reports
// the best fitting divisor.
func Classify(lon1, lon2 float64) Aspect {
	diff := Separation(lon1, lon2)
	a := Aspect{Diff: diff}

	best := math.Inf(-1)
	for _, n := range divisors {
		s := HarmonicScore(diff, int(n))
		if s > best {
			best = s
			a.Nearest = n
		}
		if s > a.Score {
			a.Score = s
			a.Kind = n
		}
	}
	return a
}

// Find returns all harmonic aspects between the given longitudes.
// Pairs without an aspect are omitted.
func Find(lons []float64) []Aspect {
	var res []Aspect
	for i := range lons {
		for k := i + 1; k < len(lons); k++ {
			a := Classify(lons[i], lons[k])
			if a.Kind == None {
				continue
			}
			a.P1, a.P2 = i, k
			res = append(res, a)
		}
	}
	return res
}
