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

package glyph

import (
	"fmt"
	"os"
	"sync"

	"github.com/go-fonts/dejavu/dejavusans"
	"github.com/go-fonts/dejavu/dejavusansmono"
	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// The built-in fonts are parsed once, on first use.
var builtin = sync.OnceValues(func() (map[string]*sfnt.Font, error) {
	data := map[string][]byte{
		"lmsans":      lmsans10regular.TTF,
		"lmmono":      lmmono10regular.TTF,
		"dejavu":      dejavusans.TTF,
		"dejavu-mono": dejavusansmono.TTF,
		"goregular":   goregular.TTF,
		"gomono":      gomono.TTF,
	}
	res := make(map[string]*sfnt.Font, len(data))
	for name, body := range data {
		f, err := Parse(body)
		if err != nil {
			return nil, fmt.Errorf("font %q: %w", name, err)
		}
		res[name] = f
	}
	return res, nil
})

// Sans returns the face used for labels and astrological symbols.
// Latin Modern Sans is used for text; the zodiac, planet and aspect
// symbols come from DejaVu Sans.  If extra is not empty, the font in
// this file is tried first.
func Sans(extra string) (*Face, error) {
	return chain(extra, "lmsans", "dejavu", "goregular")
}

// Mono returns a monospaced face, used for text paragraphs.
func Mono(extra string) (*Face, error) {
	return chain(extra, "lmmono", "gomono", "dejavu-mono", "dejavu")
}

func chain(extra string, names ...string) (*Face, error) {
	fonts, err := builtin()
	if err != nil {
		return nil, err
	}

	var list []*sfnt.Font
	if extra != "" {
		body, err := os.ReadFile(extra)
		if err != nil {
			return nil, fmt.Errorf("glyph: %w", err)
		}
		f, err := Parse(body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", extra, err)
		}
		list = append(list, f)
	}
	for _, name := range names {
		list = append(list, fonts[name])
	}
	return NewFace(list...)
}
