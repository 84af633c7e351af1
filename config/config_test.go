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

package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"seehuhn.de/go/chartwheel/stripe"
)

const sample = `
width = 600
height = 400
backend = "pdf"
background = 0.9
ascendant = 12.5
footer = "sample"

[fonts]
sans = "/usr/share/fonts/extra.ttf"

[[stripe]]
kind = "border"
width = 0.05

[[stripe]]
kind = "tics"
step = 5
over = -1

[[stripe]]
kind = "point-glyphs"
begin = 0.8
end = 0.6
distribute = true
`

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 600 || cfg.Height != 400 || cfg.Backend != BackendPDF {
		t.Errorf("unexpected settings %+v", cfg)
	}
	if cfg.Scale != 1 {
		t.Errorf("default scale lost: %g", cfg.Scale)
	}
	if cfg.Ascendant == nil || *cfg.Ascendant != 12.5 {
		t.Errorf("ascendant %v", cfg.Ascendant)
	}
	if cfg.Fonts.Sans == "" || cfg.Fonts.Mono != "" || cfg.Footer != "sample" {
		t.Errorf("unexpected fonts %+v", cfg.Fonts)
	}

	layout, err := cfg.Layout()
	if err != nil {
		t.Fatal(err)
	}
	want := []stripe.Descriptor{
		{Width: 0.05, Kind: stripe.Border{}},
		{Over: -1, Kind: stripe.Tics{Step: 5}},
		{Begin: 0.8, End: 0.6, Kind: stripe.PointGlyphs{Distribute: true}},
	}
	if len(layout) != len(want) {
		t.Fatalf("got %d stripes", len(layout))
	}
	for i := range want {
		if layout[i] != want[i] {
			t.Errorf("stripe %d: got %+v, want %+v", i, layout[i], want[i])
		}
	}
}

func TestDefaultLayout(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Ascendant != nil || cfg.Backend != BackendRaster || cfg.Background != 1 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	layout, err := cfg.Layout()
	if err != nil {
		t.Fatal(err)
	}
	if len(layout) != len(stripe.DefaultLayout()) {
		t.Errorf("got %d stripes", len(layout))
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"[[stripe]]\nkind = \"zodiac\"\n", ErrUnknownKind},
		{"backend = \"svg\"\n", ErrUnknownBackend},
		{"width = -1\n", nil},
		{"scale = 0\n", nil},
		{"background = 2\n", nil},
		{"colour = 1\n", nil},
		{"width = \n", nil},
	}
	for _, c := range cases {
		_, err := Decode(strings.NewReader(c.in))
		if err == nil {
			t.Errorf("%q: no error", c.in)
			continue
		}
		if c.want != nil && !errors.Is(err, c.want) {
			t.Errorf("%q: got %v, want %v", c.in, err, c.want)
		}
	}
}

func TestEncode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := cfg.Encode(buf); err != nil {
		t.Fatal(err)
	}

	again, err := Decode(buf)
	if err != nil {
		t.Fatalf("cannot read back %q: %v", buf.String(), err)
	}
	if again.Width != cfg.Width || *again.Ascendant != *cfg.Ascendant {
		t.Errorf("settings changed: %+v", again)
	}
	if len(again.Stripes) != len(cfg.Stripes) {
		t.Fatalf("got %d stripes, want %d", len(again.Stripes), len(cfg.Stripes))
	}
	for i := range cfg.Stripes {
		if again.Stripes[i] != cfg.Stripes[i] {
			t.Errorf("stripe %d: got %+v, want %+v", i, again.Stripes[i], cfg.Stripes[i])
		}
	}
}
