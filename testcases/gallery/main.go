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

// Command gallery renders every test case with every backend.
//
// The output files are written to a directory, one file per test case and
// backend.  With -gs, the PDF files are also rendered to PNG using
// Ghostscript, for comparison with the PNG backends.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/chartwheel"
	"seehuhn.de/go/chartwheel/config"
	"seehuhn.de/go/chartwheel/testcases"
)

var backends = map[string]string{
	config.BackendRaster: ".png",
	config.BackendGG:     "_gg.png",
	config.BackendPDF:    ".pdf",
}

func main() {
	outDir := flag.String("o", "gallery", "output directory")
	useGS := flag.Bool("gs", false, "render the PDF files with Ghostscript")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	chartwheel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: level})))

	if err := run(*outDir, *useGS); err != nil {
		fmt.Fprintln(os.Stderr, "gallery:", err)
		os.Exit(1)
	}
}

func run(outDir string, useGS bool) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			ch, err := tc.LoadChart()
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			for _, backend := range slices.Sorted(maps.Keys(backends)) {
				fname := filepath.Join(outDir, name+backends[backend])
				err := chartwheel.WriteFile(fname, ch, tc.Config(backend))
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if backend == config.BackendPDF && useGS {
					err := renderPNG(fname, filepath.Join(outDir, name+"_gs.png"))
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
				}
			}
		}
	}
	return nil
}

func renderPNG(pdfPath, pngPath string) error {
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-dTextAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
