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

package figure

import (
	"fmt"
	"image"
	_ "image/png" // register the PNG decoder
	"os"
	"path/filepath"
	"sync"

	_ "golang.org/x/image/bmp"  // register the BMP decoder
	_ "golang.org/x/image/tiff" // register the TIFF decoder
	_ "golang.org/x/image/webp" // register the WebP decoder

	"seehuhn.de/go/chartwheel/internal/logging"
)

// ImageSource provides the pictures drawn for chart points.
type ImageSource interface {
	// PointImage returns the picture for the point code, or nil if there
	// is none.
	PointImage(code int) image.Image
}

// Image draws img scaled to an l×l square centered at (r, z).
// Nothing is drawn for a nil image.
func (f *Figure) Image(r, z, l float64, img image.Image) {
	if img == nil {
		return
	}
	f.Canvas.Image(img, f.Frame.Project(r, z), l)
}

// imageExtensions are tried in order when looking for a point image.
var imageExtensions = []string{".png", ".webp", ".bmp", ".tiff"}

// Dir loads point images from the files "<code>.png" (or .webp, .bmp,
// .tiff) in a directory.  Images are decoded once and kept in memory.
// Missing and broken files are skipped.
type Dir struct {
	Path string

	mu    sync.Mutex
	cache map[int]image.Image
}

// PointImage implements the [ImageSource] interface.
func (d *Dir) PointImage(code int) image.Image {
	d.mu.Lock()
	defer d.mu.Unlock()

	if img, ok := d.cache[code]; ok {
		return img
	}
	if d.cache == nil {
		d.cache = make(map[int]image.Image)
	}

	var img image.Image
	for _, ext := range imageExtensions {
		fname := filepath.Join(d.Path, fmt.Sprintf("%d%s", code, ext))
		var err error
		img, err = decodeFile(fname)
		if err == nil {
			break
		}
		if !os.IsNotExist(err) {
			logging.Logger().Warn("cannot load point image", "file", fname, "error", err)
		}
	}
	d.cache[code] = img
	return img
}

func decodeFile(fname string) (image.Image, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	img, _, err := image.Decode(fd)
	return img, err
}
