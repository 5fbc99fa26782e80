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

// Package framebuf provides an in-memory render target.
package framebuf

import (
	"image"

	"golang.org/x/image/draw"

	render "seehuhn.de/go/tinyrender"
)

// FrameBuffer is a render target backed by an *image.RGBA.
//
// Row 0 of the image is pixel row y=0 of the renderer, so that images
// appear upside down compared to the usual mathematical orientation.
// Use FlipV to get an image with y pointing up.
type FrameBuffer struct {
	img       *image.RGBA
	presented int
}

// New allocates a w×h frame buffer. All pixels start transparent black.
func New(w, h int) *FrameBuffer {
	return &FrameBuffer{
		img: image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))),
	}
}

// Width implements the render.Target interface.
func (fb *FrameBuffer) Width() int { return fb.img.Rect.Dx() }

// Height implements the render.Target interface.
func (fb *FrameBuffer) Height() int { return fb.img.Rect.Dy() }

// Set implements the render.Target interface.
// Writes outside the buffer are ignored.
func (fb *FrameBuffer) Set(x, y int, c render.RGBA) {
	if x < 0 || y < 0 || x >= fb.Width() || y >= fb.Height() {
		return
	}
	i := fb.img.PixOffset(x, y)
	pix := fb.img.Pix[i : i+4 : i+4]
	pix[0] = c.R
	pix[1] = c.G
	pix[2] = c.B
	pix[3] = c.A
}

// At returns the color of the pixel at (x, y).
// Positions outside the buffer return the zero color.
func (fb *FrameBuffer) At(x, y int) render.RGBA {
	if x < 0 || y < 0 || x >= fb.Width() || y >= fb.Height() {
		return render.RGBA{}
	}
	i := fb.img.PixOffset(x, y)
	pix := fb.img.Pix[i : i+4 : i+4]
	return render.RGBA{R: pix[0], G: pix[1], B: pix[2], A: pix[3]}
}

// Clear implements the render.Clearer interface.
func (fb *FrameBuffer) Clear(c render.RGBA) {
	draw.Draw(fb.img, fb.img.Rect, image.NewUniform(c.Std()), image.Point{}, draw.Src)
}

// Present implements the render.Target interface.
// The pixels stay in memory, so Present only counts the call.
func (fb *FrameBuffer) Present() error {
	fb.presented++
	return nil
}

// Presented returns how often Present has been called.
func (fb *FrameBuffer) Presented() int {
	return fb.presented
}

// Image returns the underlying image. The image is shared with the frame
// buffer and changes when the buffer is drawn into.
func (fb *FrameBuffer) Image() *image.RGBA {
	return fb.img
}

// Count returns the number of pixels which have color c.
func (fb *FrameBuffer) Count(c render.RGBA) int {
	n := 0
	pix := fb.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		if pix[i] == c.R && pix[i+1] == c.G && pix[i+2] == c.B && pix[i+3] == c.A {
			n++
		}
	}
	return n
}

// FlipV returns a copy of the buffer with the rows in reverse order.
func (fb *FrameBuffer) FlipV() *image.RGBA {
	w, h := fb.Width(), fb.Height()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		src := fb.img.Pix[y*fb.img.Stride : y*fb.img.Stride+4*w]
		dst := out.Pix[(h-1-y)*out.Stride:]
		copy(dst, src)
	}
	return out
}

// Scaled returns a copy of the buffer resized to w×h using nearest
// neighbour sampling, so that individual pixels stay sharp.
func (fb *FrameBuffer) Scaled(w, h int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(out, out.Rect, fb.img, fb.img.Rect, draw.Src, nil)
	return out
}
