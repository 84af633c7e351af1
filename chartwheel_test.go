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

package chartwheel

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/chartwheel/canvas"
	"seehuhn.de/go/chartwheel/chart"
	"seehuhn.de/go/chartwheel/config"
	"seehuhn.de/go/chartwheel/testcases"
)

func TestRenderAll(t *testing.T) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				ch, err := tc.LoadChart()
				if err != nil {
					t.Fatal(err)
				}
				rec := &canvas.Recorder{}
				bands, err := Render(rec, ch, tc.Config(config.BackendRaster))
				if err != nil {
					t.Fatal(err)
				}

				if ch == nil {
					if bands != nil || rec.Count(canvas.OpStroke) != 1 {
						t.Errorf("unexpected placeholder: %d bands, %d strokes",
							len(bands), rec.Count(canvas.OpStroke))
					}
					return
				}
				if rec.Count(canvas.OpFill) == 0 || rec.Count(canvas.OpStroke) == 0 {
					t.Errorf("%d fills, %d strokes",
						rec.Count(canvas.OpFill), rec.Count(canvas.OpStroke))
				}
				m := 0.05 * tc.Width
				for _, op := range rec.Ops {
					b := op.Bounds()
					if b.LLx < -m || b.LLy < -m || b.URx > tc.Width+m || b.URy > tc.Height+m {
						t.Errorf("%s outside the canvas: %v", op.Kind, b)
						break
					}
				}
			})
		}
	}
}

func TestRenderSkipped(t *testing.T) {
	var tc *testcases.TestCase
	for i := range testcases.All["layout"] {
		if testcases.All["layout"][i].Name == "skipped" {
			tc = &testcases.All["layout"][i]
		}
	}
	if tc == nil {
		t.Fatal("test case not found")
	}
	ch, err := tc.LoadChart()
	if err != nil {
		t.Fatal(err)
	}

	bands, err := Render(&canvas.Recorder{}, ch, tc.Config(config.BackendRaster))
	if err != nil {
		t.Fatal(err)
	}
	if len(bands) != 4 {
		t.Fatalf("got %d bands", len(bands))
	}
	for i, b := range bands {
		if b.Skipped != (i == 1) {
			t.Errorf("band %d: skipped=%t", i, b.Skipped)
		}
	}
	if bands[2].Begin != 0.9 {
		t.Errorf("band after the skipped one starts at %g", bands[2].Begin)
	}
}

func TestRenderAscendant(t *testing.T) {
	ch, err := testcases.LoadChart("equinox")
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Stripes = []config.Stripe{{Kind: "axis", Width: 0.5}}

	first := func() canvas.Op {
		rec := &canvas.Recorder{}
		if _, err := Render(rec, ch, cfg); err != nil {
			t.Fatal(err)
		}
		return rec.Ops[0]
	}

	a := first().Bounds()
	asc := ch.Ascendant + 90
	cfg.Ascendant = &asc
	b := first().Bounds()
	if a == b {
		t.Error("ascendant override is ignored")
	}
}

func TestRenderErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Stripes = []config.Stripe{{Kind: "unicorns"}}
	_, err := Render(&canvas.Recorder{}, nil, cfg)
	if !errors.Is(err, config.ErrUnknownKind) {
		t.Errorf("unexpected error %v", err)
	}

	_, err = Render(&canvas.Recorder{}, &chart.Chart{}, config.Default())
	if !errors.Is(err, chart.ErrHouses) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	ch, err := testcases.LoadChart("stellium")
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()

	for _, backend := range []string{config.BackendRaster, config.BackendGG} {
		cfg := config.Default()
		cfg.Width, cfg.Height = 120, 80
		cfg.Scale = 2
		cfg.Backend = backend
		fname := filepath.Join(dir, backend+".png")
		if err := WriteFile(fname, ch, cfg); err != nil {
			t.Fatalf("%s: %v", backend, err)
		}

		fd, err := os.Open(fname)
		if err != nil {
			t.Fatal(err)
		}
		info, err := png.DecodeConfig(fd)
		fd.Close()
		if err != nil {
			t.Fatalf("%s: %v", backend, err)
		}
		if info.Width != 240 || info.Height != 160 {
			t.Errorf("%s: image size %dx%d", backend, info.Width, info.Height)
		}
	}

	cfg := config.Default()
	cfg.Backend = config.BackendPDF
	fname := filepath.Join(dir, "chart.pdf")
	if err := WriteFile(fname, ch, cfg); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output is not a PDF file")
	}

	cfg.Backend = "svg"
	err = WriteFile(filepath.Join(dir, "chart.svg"), ch, cfg)
	if !errors.Is(err, config.ErrUnknownBackend) {
		t.Errorf("unexpected error %v", err)
	}
}
