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

// Package testcases holds sample charts and stripe layouts.  They are
// used by the tests of the rendering packages and by the gallery command.
package testcases

import (
	"embed"
	"path"
	"strings"

	"seehuhn.de/go/chartwheel/chart"
	"seehuhn.de/go/chartwheel/config"
)

//go:embed charts/*.yaml
var chartFiles embed.FS

// TestCase is a chart together with the layout used to draw it.
type TestCase struct {
	Name   string // lowercase a-z and _ only
	Chart  string // name of a sample chart, "" for no chart
	Width  float64
	Height float64

	// Stripes gives the layout.  If this is empty, the default layout
	// is used.
	Stripes []config.Stripe

	// Ascendant, if set, overrides the rotation of the chart.
	Ascendant *float64
}

// Config returns the render configuration for the test case.
func (tc *TestCase) Config(backend string) *config.Config {
	cfg := config.Default()
	cfg.Width = tc.Width
	cfg.Height = tc.Height
	cfg.Backend = backend
	cfg.Ascendant = tc.Ascendant
	cfg.Stripes = tc.Stripes
	cfg.Footer = tc.Name
	return cfg
}

// LoadChart returns the sample chart of the test case, or nil if the
// test case has no chart.
func (tc *TestCase) LoadChart() (*chart.Chart, error) {
	if tc.Chart == "" {
		return nil, nil
	}
	return LoadChart(tc.Chart)
}

// LoadChart decodes one of the sample charts.
func LoadChart(name string) (*chart.Chart, error) {
	fd, err := chartFiles.Open(path.Join("charts", name+".yaml"))
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return chart.Decode(fd)
}

// ChartNames lists the sample charts.
func ChartNames() []string {
	entries, _ := chartFiles.ReadDir("charts")
	var res []string
	for _, e := range entries {
		res = append(res, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	return res
}

func deg(x float64) *float64 {
	return &x
}
