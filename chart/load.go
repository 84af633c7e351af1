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
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/chartwheel/aspect"
)

// document is the YAML representation of a chart.
type document struct {
	Name      string     `yaml:"name"`
	Time      time.Time  `yaml:"time"`
	Latitude  float64    `yaml:"latitude"`
	Longitude float64    `yaml:"longitude"`
	Systems   string     `yaml:"systems,omitempty"`
	Ascendant *float64   `yaml:"ascendant,omitempty"`
	Midheaven *float64   `yaml:"midheaven,omitempty"`
	Node      float64    `yaml:"node"`
	Aspects   string     `yaml:"aspects,omitempty"`
	Points    []pointDoc `yaml:"points"`
	Houses    []houseDoc `yaml:"houses"`
}

type pointDoc struct {
	Code   int     `yaml:"code"`
	Name   string  `yaml:"name,omitempty"`
	Symbol string  `yaml:"symbol,omitempty"`
	Lon    float64 `yaml:"lon"`
	Lat    float64 `yaml:"lat,omitempty"`
	Dist   float64 `yaml:"dist,omitempty"`
	Speed  float64 `yaml:"speed,omitempty"`
}

type houseDoc struct {
	Cusp float64   `yaml:"cusp"`
	Alt  []float64 `yaml:"alt,omitempty,flow"`
	Name string    `yaml:"name,omitempty"`
}

// Aspect methods, as used in the "aspects" field of a chart document.
const (
	AspectsHarmonic = "harmonic"
	AspectsOrbs     = "orbs"
	AspectsNone     = "none"
)

// Decode reads a chart from a YAML document.
//
// If the document gives no ascendant or midheaven, the cusps of the first
// and tenth house are used.  Aspects are computed from the point
// positions, using the method given in the "aspects" field.
func Decode(r io.Reader) (*Chart, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}

	c := &Chart{
		Name:      doc.Name,
		Time:      doc.Time,
		Latitude:  doc.Latitude,
		Longitude: doc.Longitude,
		Systems:   doc.Systems,
		Node:      doc.Node,
	}
	for _, p := range doc.Points {
		c.Points = append(c.Points, Point(p))
	}
	for _, h := range doc.Houses {
		c.Houses = append(c.Houses, House(h))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if doc.Ascendant != nil {
		c.Ascendant = *doc.Ascendant
	} else {
		c.Ascendant = c.Cusp(1)
	}
	if doc.Midheaven != nil {
		c.Midheaven = *doc.Midheaven
	} else {
		c.Midheaven = c.Cusp(10)
	}
	c.normalize()

	switch doc.Aspects {
	case "", AspectsHarmonic:
		c.FindAspects()
	case AspectsOrbs:
		c.FindAspectsWithOrbs(aspect.DefaultTable)
	case AspectsNone:
		// pass
	default:
		return nil, fmt.Errorf("chart: unknown aspect method %q", doc.Aspects)
	}

	return c, nil
}

// ReadFile reads a chart from a YAML file.
func ReadFile(fname string) (*Chart, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	c, err := Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return c, nil
}

// Encode writes the chart as a YAML document.  Aspects are not stored;
// they are recomputed by [Decode].
func Encode(w io.Writer, c *Chart) error {
	asc, mc := c.Ascendant, c.Midheaven
	doc := document{
		Name:      c.Name,
		Time:      c.Time,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Systems:   c.Systems,
		Ascendant: &asc,
		Midheaven: &mc,
		Node:      c.Node,
	}
	for _, p := range c.Points {
		doc.Points = append(doc.Points, pointDoc(p))
	}
	for _, h := range c.Houses {
		doc.Houses = append(doc.Houses, houseDoc(h))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	return enc.Close()
}
