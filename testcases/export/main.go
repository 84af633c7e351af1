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

// Command export writes the sample charts and the test case layouts to
// files which can be used with the chartwheel command.
//
// For every test case, a YAML chart file and a TOML configuration file
// are written to the output directory.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/chartwheel/chart"
	"seehuhn.de/go/chartwheel/config"
	"seehuhn.de/go/chartwheel/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/export", "output directory")
	flag.Parse()

	if err := run(*outDir); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

func run(outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	for _, name := range testcases.ChartNames() {
		c, err := testcases.LoadChart(name)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		err = writeFile(filepath.Join(outDir, name+".yaml"), func(fd *os.File) error {
			return chart.Encode(fd, c)
		})
		if err != nil {
			return err
		}
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			cfg := tc.Config(config.BackendRaster)
			fname := filepath.Join(outDir, category+"_"+tc.Name+".toml")
			err := writeFile(fname, func(fd *os.File) error {
				return cfg.Encode(fd)
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func writeFile(fname string, write func(*os.File) error) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := write(fd); err != nil {
		fd.Close()
		return fmt.Errorf("%s: %w", fname, err)
	}
	return fd.Close()
}
