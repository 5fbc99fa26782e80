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


package imagefile

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	render "seehuhn.de/go/tinyrender"
	"seehuhn.de/go/tinyrender/framebuf"
)

// testBuffer returns a 3×2 buffer with a red pixel at (0, 0) and a
// blue pixel at (2, 1).
func testBuffer() *framebuf.FrameBuffer {
	fb := framebuf.New(3, 2)
	fb.Clear(render.Black)
	fb.Set(0, 0, render.Red)
	fb.Set(2, 1, render.Blue)
	return fb
}

func TestEncodeTGA(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(buf, testBuffer(), TGA); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	if len(data) != 18+3*2*3 {
		t.Fatalf("got %d bytes", len(data))
	}
	wantHeader := []byte{
		0, 0, 2, // id length, no color map, true color
		0, 0, 0, 0, 0, // color map spec
		0, 0, 0, 0, // origin
		3, 0, 2, 0, // width, height
		24, 0, // bpp, descriptor
	}
	if !bytes.Equal(data[:18], wantHeader) {
		t.Errorf("header = %v, want %v", data[:18], wantHeader)
	}

	// first row in the file is pixel row 0, in BGR order
	pix := data[18:]
	if !bytes.Equal(pix[0:3], []byte{0, 0, 255}) {
		t.Errorf("pixel (0, 0) = %v", pix[0:3])
	}
	if !bytes.Equal(pix[15:18], []byte{255, 0, 0}) {
		t.Errorf("pixel (2, 1) = %v", pix[15:18])
	}
}

func TestEncodeTGATooLarge(t *testing.T) {
	fb := framebuf.New(70000, 1)
	if err := Encode(io.Discard, fb, TGA); !errors.Is(err, errTGATooLarge) {
		t.Errorf("got %v", err)
	}
}

// TestEncodeFlipped checks that the other formats show pixel row 0 at
// the bottom of the image.
func TestEncodeFlipped(t *testing.T) {
	decoders := map[Format]func(io.Reader) (image.Image, error){
		PNG:  png.Decode,
		BMP:  bmp.Decode,
		TIFF: tiff.Decode,
	}
	for f, decode := range decoders {
		buf := &bytes.Buffer{}
		if err := Encode(buf, testBuffer(), f); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		img, err := decode(buf)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
			t.Fatalf("%s: size %v", f, b)
		}
		if c := render.FromStd(img.At(0, 1)); c != render.Red {
			t.Errorf("%s: bottom left = %v", f, c)
		}
		if c := render.FromStd(img.At(2, 0)); c != render.Blue {
			t.Errorf("%s: top right = %v", f, c)
		}
	}
}

func TestEncodeUnknown(t *testing.T) {
	if err := Encode(io.Discard, testBuffer(), Format(17)); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestPresentWritesFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.png")
	tgt := New(name, 8, 8, PNG)
	tgt.Set(1, 1, render.Green)
	if err := tgt.Present(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if c := render.FromStd(img.At(1, 6)); c != render.Green {
		t.Errorf("pixel = %v", c)
	}
	if c := render.FromStd(img.At(0, 0)); c != render.Black {
		t.Errorf("background = %v", c)
	}
	if tgt.Presented() != 1 {
		t.Errorf("presented %d times", tgt.Presented())
	}
}

type failingFile struct {
	bytes.Buffer
	closeErr error
}

func (f *failingFile) Close() error { return f.closeErr }

func TestPresentErrors(t *testing.T) {
	errCreate := errors.New("disk full")
	tgt := New("x.tga", 4, 4, TGA)
	tgt.Create = func(string) (io.WriteCloser, error) { return nil, errCreate }
	if err := tgt.Present(); !errors.Is(err, errCreate) {
		t.Errorf("got %v, want %v", err, errCreate)
	}

	errClose := errors.New("flush failed")
	out := &failingFile{closeErr: errClose}
	tgt.Create = func(string) (io.WriteCloser, error) { return out, nil }
	if err := tgt.Present(); !errors.Is(err, errClose) {
		t.Errorf("got %v, want %v", err, errClose)
	}
	if out.Len() != 18+4*4*3 {
		t.Errorf("%d bytes written", out.Len())
	}
	if tgt.Presented() != 0 {
		t.Errorf("failed Present counted")
	}
}

// TestPresentErrorFromRenderer checks that the renderer passes encoding
// errors to the caller.
func TestPresentErrorFromRenderer(t *testing.T) {
	errCreate := errors.New("read-only file system")
	tgt := New("x.bmp", 4, 4, BMP)
	tgt.Create = func(string) (io.WriteCloser, error) { return nil, errCreate }

	r := render.NewRenderer(tgt)
	if err := r.Draw(); !errors.Is(err, errCreate) {
		t.Errorf("got %v, want %v", err, errCreate)
	}
}

func TestFormatNames(t *testing.T) {
	cases := map[string]Format{
		"a.tga":      TGA,
		"b.PNG":      PNG,
		"dir/c.bmp":  BMP,
		"d.tif":      TIFF,
		"e.out.tiff": TIFF,
	}
	for name, want := range cases {
		got, err := FormatFromPath(name)
		if err != nil || got != want {
			t.Errorf("FormatFromPath(%q) = %v, %v", name, got, err)
		}
	}
	for _, name := range []string{"noext", "x.jpg"} {
		if _, err := FormatFromPath(name); err == nil {
			t.Errorf("FormatFromPath(%q) succeeded", name)
		}
	}
	for _, f := range []Format{TGA, PNG, BMP, TIFF} {
		if g, err := ParseFormat(f.String()); err != nil || g != f {
			t.Errorf("ParseFormat(%q) = %v, %v", f, g, err)
		}
	}
}
