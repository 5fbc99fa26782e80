// seehuhn.de/go/tinyrender - a software triangle rasterizer
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

// Package imagefile provides a render target which writes an image file
// every time it is presented.
package imagefile

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	render "seehuhn.de/go/tinyrender"
	"seehuhn.de/go/tinyrender/framebuf"
)

// Format is an image file format.
type Format int

// These are the supported file formats.
const (
	TGA Format = iota
	PNG
	BMP
	TIFF
)

func (f Format) String() string {
	switch f {
	case TGA:
		return "tga"
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "tga":
		return TGA, nil
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return 0, fmt.Errorf("unknown image format %q", s)
	}
}

// FormatFromPath guesses the file format from the extension of name.
func FormatFromPath(name string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return 0, fmt.Errorf("%s: missing file extension", name)
	}
	return ParseFormat(ext)
}

// Target is a frame buffer which is written to a file on Present.
type Target struct {
	*framebuf.FrameBuffer

	Path   string
	Format Format

	// Create opens the output file. If nil, os.Create is used.
	Create func(name string) (io.WriteCloser, error)
}

// New returns a w×h image target writing to path.
// The pixels are cleared to opaque black.
func New(path string, w, h int, f Format) *Target {
	fb := framebuf.New(w, h)
	fb.Clear(render.Black)
	return &Target{
		FrameBuffer: fb,
		Path:        path,
		Format:      f,
	}
}

// Present writes the current pixels to the output file.
// Errors from creating, encoding or closing the file are returned.
func (t *Target) Present() error {
	create := t.Create
	if create == nil {
		create = func(name string) (io.WriteCloser, error) { return os.Create(name) }
	}

	f, err := create(t.Path)
	if err != nil {
		return err
	}
	err = Encode(f, t.FrameBuffer, t.Format)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", t.Path, err)
	}
	return t.FrameBuffer.Present()
}

// Encode writes the frame buffer in the given format.
//
// Pixel row 0 ends up at the bottom of the image: TGA files are written
// with a bottom-left origin, all other formats are flipped vertically.
func Encode(w io.Writer, fb *framebuf.FrameBuffer, f Format) error {
	switch f {
	case TGA:
		return encodeTGA(w, fb)
	case PNG:
		return png.Encode(w, fb.FlipV())
	case BMP:
		return bmp.Encode(w, fb.FlipV())
	case TIFF:
		return tiff.Encode(w, fb.FlipV(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported image format %s", f)
	}
}
