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

package testcases

import "seehuhn.de/go/chartwheel/config"

var wheelCases = []TestCase{
	{
		Name:   "equinox",
		Chart:  "equinox",
		Width:  600,
		Height: 600,
	},
	{
		Name:   "stellium",
		Chart:  "stellium",
		Width:  600,
		Height: 600,
	},
	{
		Name:   "wrap",
		Chart:  "wrap",
		Width:  600,
		Height: 600,
	},
	{
		Name:      "wide_rotated",
		Chart:     "equinox",
		Width:     800,
		Height:    500,
		Ascendant: deg(90),
	},
	{
		Name:   "no_chart",
		Width:  300,
		Height: 300,
	},
}

var layoutCases = []TestCase{
	{
		Name:   "classic",
		Chart:  "equinox",
		Width:  500,
		Height: 500,
		Stripes: []config.Stripe{
			{Kind: "border", Width: 0.001},
			{Kind: "multi-tics", Width: 0.06},
			{Kind: "sign-divs", Width: 0.1},
			{Kind: "sign-glyphs", Over: -1},
			{Kind: "house-divs", Width: 0.1},
			{Kind: "point-positions", Width: 0.2},
			{Kind: "point-glyphs", Over: -1, Distribute: true},
			{Kind: "basic-aspects", Width: 0.5},
		},
	},
	{
		Name:   "balls",
		Chart:  "stellium",
		Width:  500,
		Height: 500,
		Stripes: []config.Stripe{
			{Kind: "tics", Step: 5, Width: 0.03},
			{Kind: "tics", Step: 1, Over: -1, End: 0.015},
			{Kind: "arrows", Width: 0.05},
			{Kind: "point-glyphs", Width: 0.06, Ball: true, Distribute: true},
			{Kind: "spacer", Width: 0.05},
			{Kind: "sign-glyphs", Width: 0.12, Turned: true},
			{Kind: "fancy-aspects", Width: 0.5},
		},
	},
	{
		Name:   "overlay",
		Chart:  "wrap",
		Width:  500,
		Height: 500,
		Stripes: []config.Stripe{
			{Kind: "markers", Width: 0.2},
			{Kind: "axis", Over: 1},
			{Kind: "extra-house-systems", Width: 0.1},
			{Kind: "house-slabs", Width: 0.3},
			{Kind: "dot-dot-points", Over: -1},
		},
	},
	{
		// the reference of the second stripe is out of range
		Name:   "skipped",
		Chart:  "wrap",
		Width:  400,
		Height: 400,
		Stripes: []config.Stripe{
			{Kind: "border", Width: 0.1},
			{Kind: "markers", Over: -5},
			{Kind: "noop", Width: 0.1},
			{Kind: "tics", Step: 10, Width: 0.1},
		},
	},
}

var lineCases = []TestCase{
	{
		Name:   "samples",
		Chart:  "equinox",
		Width:  500,
		Height: 500,
		Stripes: []config.Stripe{
			{Kind: "border", Width: 0.05},
			{Kind: "line-samples", Width: 0.8},
		},
	},
}
