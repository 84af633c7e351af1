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
	"seehuhn.de/go/chartwheel/chart"
	"seehuhn.de/go/chartwheel/figure"
	"seehuhn.de/go/chartwheel/internal/logging"
)

// Painter draws the bands of a chart wheel.
type Painter struct {
	Figure *figure.Figure

	// Chart provides the positions drawn by the bands.  This must not be
	// nil.
	Chart *chart.Chart
}

// Paint resolves the layout and draws all bands, from the first
// descriptor to the last.  The drawing style of the figure is reset
// before every band.  The resolved bands are returned.
func (p *Painter) Paint(descs []Descriptor) []Band {
	radius := p.Figure.Frame.Radius
	log := logging.Logger()

	bands := Resolve(descs)
	for _, b := range bands {
		name := "none"
		if b.Kind != nil {
			name = b.Kind.Name()
		}
		switch {
		case b.Skipped:
			log.Warn("skipping band with invalid reference",
				"index", b.Index, "kind", name, "over", descs[b.Index].Over)
			continue
		case b.Degenerate():
			log.Debug("skipping band without inner radius",
				"index", b.Index, "kind", name, "begin", b.Begin)
			continue
		case b.Kind == nil:
			continue
		}

		log.Debug("painting band",
			"index", b.Index, "kind", name, "begin", b.Begin, "end", b.End)
		p.Figure.Reset()
		b.Kind.paint(p, b.Begin*radius, b.End*radius)
	}
	return bands
}
