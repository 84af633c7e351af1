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

import (
	"regexp"
	"slices"
	"testing"

	"seehuhn.de/go/chartwheel/config"
)

var validName = regexp.MustCompile(`^[a-z_]+$`)

func TestCharts(t *testing.T) {
	names := ChartNames()
	if len(names) == 0 {
		t.Fatal("no sample charts")
	}
	for _, name := range names {
		c, err := LoadChart(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if len(c.Points) == 0 {
			t.Errorf("%s: no points", name)
		}
	}

	if _, err := LoadChart("missing"); err == nil {
		t.Error("missing chart loaded without error")
	}
}

func TestCases(t *testing.T) {
	charts := ChartNames()
	seen := make(map[string]bool)
	for category, cases := range All {
		for _, tc := range cases {
			name := category + "_" + tc.Name
			if !validName.MatchString(tc.Name) {
				t.Errorf("%s: invalid name", name)
			}
			if seen[name] {
				t.Errorf("%s: duplicate name", name)
			}
			seen[name] = true

			if tc.Chart != "" && !slices.Contains(charts, tc.Chart) {
				t.Errorf("%s: unknown chart %q", name, tc.Chart)
			}
			cfg := tc.Config(config.BackendRaster)
			if err := cfg.Validate(); err != nil {
				t.Errorf("%s: %v", name, err)
			}
		}
	}
}
