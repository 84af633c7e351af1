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

// Command chartwheel draws a chart wheel.
//
// Usage:
//
//	chartwheel [flags] [chart.yaml]
//
// The chart is read from a YAML file.  Without a chart file, a placeholder
// is drawn.  The layout and the output format are read from a TOML
// configuration file (see -c); if the output file name ends in ".pdf",
// the PDF backend is used.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/chartwheel"
	"seehuhn.de/go/chartwheel/chart"
	"seehuhn.de/go/chartwheel/config"
	"seehuhn.de/go/chartwheel/stripe"
)

func main() {
	configFile := flag.String("c", "", "configuration file (TOML)")
	outFile := flag.String("o", "chart.png", "output file (PNG or PDF)")
	backend := flag.String("backend", "", "override the backend (raster, gg or pdf)")
	asc := flag.Float64("asc", -1, "override the ascendant (degrees)")
	printConfig := flag.Bool("print-config", false, "print the configuration and exit")
	listKinds := flag.Bool("kinds", false, "list the stripe kinds and exit")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [chart.yaml]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	chartwheel.SetLogger(logger)

	if *listKinds {
		for _, name := range stripe.KindNames() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := loadConfig(*configFile, *outFile, *backend, *asc)
	if err != nil {
		logger.Error("cannot load configuration", "error", err)
		os.Exit(1)
	}
	if *printConfig {
		if err := cfg.Encode(os.Stdout); err != nil {
			logger.Error("cannot write configuration", "error", err)
			os.Exit(1)
		}
		return
	}

	var ch *chart.Chart
	switch flag.NArg() {
	case 0:
		logger.Info("no chart given, drawing a placeholder")
	case 1:
		ch, err = chart.ReadFile(flag.Arg(0))
		if err != nil {
			logger.Error("cannot load chart", "error", err)
			os.Exit(1)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err := chartwheel.WriteFile(*outFile, ch, cfg); err != nil {
		logger.Error("cannot draw chart", "error", err)
		os.Exit(1)
	}
	logger.Debug("chart written", "file", *outFile, "backend", cfg.Backend)
}

func loadConfig(fname, outFile, backend string, asc float64) (*config.Config, error) {
	cfg := config.Default()
	if fname != "" {
		var err error
		cfg, err = config.ReadFile(fname)
		if err != nil {
			return nil, err
		}
	}

	switch {
	case backend != "":
		cfg.Backend = backend
	case strings.EqualFold(filepath.Ext(outFile), ".pdf"):
		cfg.Backend = config.BackendPDF
	case cfg.Backend == config.BackendPDF:
		return nil, fmt.Errorf("output file %q is not a PDF file", outFile)
	}
	if asc >= 0 {
		cfg.Ascendant = &asc
	}
	return cfg, cfg.Validate()
}
