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

// Package config reads the settings for rendering a chart wheel from TOML
// files.
//
// A configuration file looks like this:
//
//	width = 800
//	height = 800
//	backend = "raster"
//
//	[[stripe]]
//	kind = "axis-decor"
//	width = 0.1
//
//	[[stripe]]
//	kind = "tics"
//	step = 5
//	width = 0.02
//
// If no stripes are given, the default layout is used.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/chartwheel/stripe"
)

// The supported output backends.
const (
	BackendRaster = "raster"
	BackendGG     = "gg"
	BackendPDF    = "pdf"
)

var (
	// ErrUnknownKind is returned for stripes with an unknown kind.
	ErrUnknownKind = errors.New("config: unknown stripe kind")

	// ErrUnknownBackend is returned for unsupported backend names.
	ErrUnknownBackend = errors.New("config: unknown backend")
)

// Config holds the settings for rendering a chart.
type Config struct {
	// Width and Height give the size of the drawing, in pixels for PNG
	// output and in PDF points for PDF output.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// Scale is the number of pixels per unit for PNG output.
	Scale float64 `toml:"scale"`

	// Backend selects the renderer, one of BackendRaster, BackendGG
	// and BackendPDF.
	Backend string `toml:"backend"`

	// Background is the gray level of the background.
	Background float64 `toml:"background"`

	// Ascendant, if set, overrides the rotation of the chart.
	Ascendant *float64 `toml:"ascendant,omitempty"`

	// Images is the directory holding the pictures of the points.
	Images string `toml:"images,omitempty"`

	// Footer is written in the bottom right corner of the drawing.
	Footer string `toml:"footer,omitempty"`

	Fonts Fonts `toml:"fonts"`

	Stripes []Stripe `toml:"stripe,omitempty"`
}

// Fonts selects additional font files.  Glyphs missing from these fonts
// are taken from the built-in fonts.
type Fonts struct {
	Sans string `toml:"sans,omitempty"`
	Mono string `toml:"mono,omitempty"`
}

// Stripe describes one band of the chart.  See [stripe.Descriptor] for the
// meaning of the dimension fields.
type Stripe struct {
	Kind  string  `toml:"kind"`
	Begin float64 `toml:"begin,omitempty"`
	End   float64 `toml:"end,omitempty"`
	Width float64 `toml:"width,omitempty"`
	Over  int     `toml:"over,omitempty"`

	Step       float64 `toml:"step,omitempty"`
	Turned     bool    `toml:"turned,omitempty"`
	Ball       bool    `toml:"ball,omitempty"`
	Distribute bool    `toml:"distribute,omitempty"`
}

// Default returns the default settings.
func Default() *Config {
	return &Config{
		Width:      800,
		Height:     800,
		Scale:      1,
		Backend:    BackendRaster,
		Background: 1,
	}
}

// Decode reads a configuration in TOML format.  Settings which are not
// present in the input keep their default values.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("config: line %d, column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadFile reads a configuration file.
func ReadFile(fname string) (*Config, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	cfg, err := Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

// Encode writes the configuration in TOML format.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).SetIndentTables(true).Encode(c)
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	if !(c.Width > 0 && c.Height > 0) {
		return fmt.Errorf("config: invalid size %gx%g", c.Width, c.Height)
	}
	if !(c.Scale > 0) {
		return fmt.Errorf("config: invalid scale %g", c.Scale)
	}
	if c.Background < 0 || c.Background > 1 {
		return fmt.Errorf("config: background gray level %g outside [0, 1]", c.Background)
	}
	switch c.Backend {
	case BackendRaster, BackendGG, BackendPDF:
	default:
		return fmt.Errorf("%w %q", ErrUnknownBackend, c.Backend)
	}
	_, err := c.Layout()
	return err
}

// Layout returns the stripe descriptors.  If the configuration contains
// no stripes, [stripe.DefaultLayout] is returned.
func (c *Config) Layout() ([]stripe.Descriptor, error) {
	if len(c.Stripes) == 0 {
		return stripe.DefaultLayout(), nil
	}

	res := make([]stripe.Descriptor, len(c.Stripes))
	for i, s := range c.Stripes {
		kind, ok := stripe.KindByName(s.Kind, stripe.Params{
			Step:       s.Step,
			Turned:     s.Turned,
			Ball:       s.Ball,
			Distribute: s.Distribute,
		})
		if !ok {
			return nil, fmt.Errorf("stripe %d: %w %q", i+1, ErrUnknownKind, s.Kind)
		}
		res[i] = stripe.Descriptor{
			Begin: s.Begin,
			End:   s.End,
			Width: s.Width,
			Over:  s.Over,
			Kind:  kind,
		}
	}
	return res, nil
}
