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

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/chartwheel/config"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("", "out.PDF", "", -1)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend != config.BackendPDF {
		t.Errorf("backend %q, want pdf", cfg.Backend)
	}
	if cfg.Ascendant != nil {
		t.Error("ascendant is set")
	}

	cfg, err = loadConfig("", "out.png", "gg", 30)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend != config.BackendGG || cfg.Ascendant == nil || *cfg.Ascendant != 30 {
		t.Errorf("flags are ignored: %+v", cfg)
	}

	_, err = loadConfig("", "out.png", "svg", -1)
	if !errors.Is(err, config.ErrUnknownBackend) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "cfg.toml")
	body := "backend = \"pdf\"\nwidth = 300\nheight = 200\n"
	if err := os.WriteFile(fname, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(fname, "out.pdf", "", -1)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 300 || cfg.Height != 200 {
		t.Errorf("size %gx%g", cfg.Width, cfg.Height)
	}

	if _, err := loadConfig(fname, "out.png", "", -1); err == nil {
		t.Error("PDF backend accepted for a PNG file")
	}
}
