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

// Package chart holds the positions which are drawn on a chart wheel.
//
// The positions are computed elsewhere (normally by an ephemeris); this
// package only stores them, loads them from YAML documents and derives
// the aspects between the points.
package chart

import (
	"errors"
	"fmt"
	"time"

	"seehuhn.de/go/chartwheel/aspect"
	"seehuhn.de/go/chartwheel/polar"
)

// HouseCount is the number of houses in every chart.
const HouseCount = 12

// ErrHouses is returned for charts which do not have exactly
// [HouseCount] houses.
var ErrHouses = errors.New("chart: need exactly 12 houses")

// Point is a body or a calculated point in the sky.
type Point struct {
	// Code identifies the point.  Non-negative values use the numbering
	// of the Swiss Ephemeris, see [Sun] and following.
	Code int

	Name   string
	Symbol string

	// Lon and Lat are ecliptic coordinates in degrees.
	Lon, Lat float64

	// Dist is the distance in AU and Speed the daily motion in longitude.
	Dist, Speed float64
}

// House is one of the twelve houses.
type House struct {
	// Cusp is the longitude where the house begins, in the primary house
	// system.
	Cusp float64

	// Alt holds the cusps in the alternate house systems, in the order
	// given by [Chart.Systems].
	Alt []float64

	// Name is the label drawn inside the house.
	Name string
}

// Chart is the input for drawing a chart wheel.
type Chart struct {
	Name string
	Time time.Time

	// Latitude and Longitude give the place of the event, in degrees.
	// Northern latitudes and eastern longitudes are positive.
	Latitude, Longitude float64

	// Systems has one letter for every house system, starting with the
	// primary system.  The letters follow the Swiss Ephemeris
	// conventions, e.g. "P" for Placidus.
	Systems string

	// Ascendant, Midheaven and Node are the longitudes of the chart axes.
	// The ascendant is used even in house systems where the first cusp is
	// elsewhere.
	Ascendant float64
	Midheaven float64
	Node      float64

	Points  []Point
	Houses  []House
	Aspects []aspect.Aspect
}

// Validate checks the structure of the chart.
func (c *Chart) Validate() error {
	if len(c.Houses) != HouseCount {
		return fmt.Errorf("%w, got %d", ErrHouses, len(c.Houses))
	}
	n := c.SystemCount() - 1
	for i, h := range c.Houses {
		if len(h.Alt) != n {
			return fmt.Errorf("chart: house %d has %d alternate cusps, want %d",
				i+1, len(h.Alt), n)
		}
	}
	for _, a := range c.Aspects {
		if a.P1 < 0 || a.P1 >= len(c.Points) || a.P2 < 0 || a.P2 >= len(c.Points) {
			return fmt.Errorf("chart: aspect refers to missing point %d-%d", a.P1, a.P2)
		}
	}
	return nil
}

// SystemCount returns the number of house systems in the chart.
func (c *Chart) SystemCount() int {
	return max(len(c.Systems), 1)
}

// Cusp returns the cusp of house n, for n = 1, ..., 12.
func (c *Chart) Cusp(n int) float64 {
	return c.Houses[n-1].Cusp
}

// HouseAlt returns the cusp of house n in house system sys.
// System 0 is the primary system.
func (c *Chart) HouseAlt(n, sys int) float64 {
	h := c.Houses[n-1]
	if sys == 0 {
		return h.Cusp
	}
	return h.Alt[sys-1]
}

// Longitudes returns the longitudes of all points.
func (c *Chart) Longitudes() []float64 {
	res := make([]float64, len(c.Points))
	for i, p := range c.Points {
		res[i] = p.Lon
	}
	return res
}

// FindAspects replaces the aspect list using the harmonic classifier.
func (c *Chart) FindAspects() {
	c.Aspects = aspect.Find(c.Longitudes())
}

// FindAspectsWithOrbs replaces the aspect list using an orb table.
func (c *Chart) FindAspectsWithOrbs(t aspect.Table) {
	c.Aspects = t.Find(c.Longitudes())
}

// normalize fills in default names and symbols and reduces all
// longitudes to [0, 360).
func (c *Chart) normalize() {
	c.Ascendant = polar.Normalize(c.Ascendant)
	c.Midheaven = polar.Normalize(c.Midheaven)
	c.Node = polar.Normalize(c.Node)
	for i := range c.Points {
		p := &c.Points[i]
		p.Lon = polar.Normalize(p.Lon)
		if p.Symbol == "" {
			p.Symbol = Symbol(p.Code)
		}
		if p.Name == "" {
			p.Name = PointName(p.Code)
		}
	}
	for i := range c.Houses {
		h := &c.Houses[i]
		h.Cusp = polar.Normalize(h.Cusp)
		for k := range h.Alt {
			h.Alt[k] = polar.Normalize(h.Alt[k])
		}
		if h.Name == "" {
			h.Name = Roman(i + 1)
		}
	}
}
