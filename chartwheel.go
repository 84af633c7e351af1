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

// Package chartwheel draws astrological charts as a set of concentric
// bands around a circle.
//
// The layout of the bands is described by a list of [stripe.Descriptor]
// values, usually read from a configuration file with the config package.
// The chart can be drawn onto any [canvas.Canvas]; [WriteFile] selects one
// of the built-in backends and writes a PNG or PDF file.
package chartwheel

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"seehuhn.de/go/chartwheel/canvas"
	"seehuhn.de/go/chartwheel/chart"
	"seehuhn.de/go/chartwheel/config"
	"seehuhn.de/go/chartwheel/figure"
	"seehuhn.de/go/chartwheel/ggcanvas"
	"seehuhn.de/go/chartwheel/glyph"
	"seehuhn.de/go/chartwheel/internal/logging"
	"seehuhn.de/go/chartwheel/pdfcanvas"
	"seehuhn.de/go/chartwheel/polar"
	"seehuhn.de/go/chartwheel/raster"
	"seehuhn.de/go/chartwheel/stripe"
)

// SetLogger sets the logger for chartwheel and the gg backend.
// By default nothing is logged.  Pass nil to disable logging again.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
	gg.SetLogger(l)
}

// Render draws ch onto c, using the layout and fonts given in cfg.
// If ch is nil, a placeholder is drawn instead.  The background is
// left to the canvas.
//
// The resolved bands are returned; bands with an out-of-range
// reference are marked as skipped.
func Render(c canvas.Canvas, ch *chart.Chart, cfg *config.Config) ([]stripe.Band, error) {
	layout, err := cfg.Layout()
	if err != nil {
		return nil, err
	}
	sans, err := glyph.Sans(cfg.Fonts.Sans)
	if err != nil {
		return nil, err
	}
	mono, err := glyph.Mono(cfg.Fonts.Mono)
	if err != nil {
		return nil, err
	}

	asc := 0.0
	if ch != nil {
		if err := ch.Validate(); err != nil {
			return nil, err
		}
		asc = ch.Ascendant
	}
	if cfg.Ascendant != nil {
		asc = *cfg.Ascendant
	}

	frame := polar.NewFrame(cfg.Width, cfg.Height, asc)
	fig := figure.New(c, frame, cfg.Width, cfg.Height, sans, mono)
	if cfg.Images != "" {
		fig.Images = &figure.Dir{Path: cfg.Images}
	}
	u := fig.Unit()

	if ch == nil {
		fig.Placeholder()
		fig.Paragraph(u, -u, 1, "no chart loaded")
		return nil, nil
	}

	p := &stripe.Painter{Figure: fig, Chart: ch}
	bands := p.Paint(layout)

	fig.Reset()
	fig.ChartDetails(ch, u/2, u/2)
	if cfg.Footer != "" {
		fig.Text(-u/2, -u/2, 0.75, cfg.Footer)
	}
	return bands, nil
}

// WriteFile renders ch and writes the result to fname, using the backend
// selected in cfg.  The raster and gg backends produce PNG images, the
// pdf backend produces a PDF file.
func WriteFile(fname string, ch *chart.Chart, cfg *config.Config) error {
	bg := canvas.Gray(cfg.Background)

	switch cfg.Backend {
	case config.BackendPDF:
		c, err := pdfcanvas.Create(fname, cfg.Width, cfg.Height, bg)
		if err != nil {
			return err
		}
		if _, err := Render(c, ch, cfg); err != nil {
			c.Close()
			return err
		}
		return c.Close()

	case config.BackendGG:
		c := ggcanvas.New(cfg.Width, cfg.Height, cfg.Scale, bg)
		defer c.Close()
		if _, err := Render(c, ch, cfg); err != nil {
			return err
		}
		return writePNG(fname, c)

	case config.BackendRaster, "":
		c := raster.NewImageCanvas(cfg.Width, cfg.Height, cfg.Scale, bg)
		if _, err := Render(c, ch, cfg); err != nil {
			return err
		}
		return writePNG(fname, c)

	default:
		return fmt.Errorf("%w %q", config.ErrUnknownBackend, cfg.Backend)
	}
}

type pngWriter interface {
	WritePNG(w io.Writer) error
}

func writePNG(fname string, c pngWriter) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := c.WritePNG(fd); err != nil {
		fd.Close()
		return fmt.Errorf("%s: %w", fname, err)
	}
	return fd.Close()
}
