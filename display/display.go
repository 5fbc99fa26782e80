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

// Package display connects render targets to tinygo display drivers.
//
// [New] turns any drivers.Displayer (an SPI panel, an e-ink screen, or a
// software framebuffer implementing the same interface) into a render
// target. [AsDisplayer] goes the other way and lets code written for
// tinygo displays, such as the tinyfont text renderer, draw into any
// render target.
package display

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"

	render "seehuhn.de/go/tinyrender"
)

// Target draws into a tinygo display.
type Target struct {
	d    drivers.Displayer
	w, h int
}

// New wraps d as a render target. The display size is read once.
func New(d drivers.Displayer) *Target {
	w, h := d.Size()
	return &Target{d: d, w: int(w), h: int(h)}
}

// Width implements the render.Target interface.
func (t *Target) Width() int { return t.w }

// Height implements the render.Target interface.
func (t *Target) Height() int { return t.h }

// Set implements the render.Target interface.
func (t *Target) Set(x, y int, c render.RGBA) {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return
	}
	t.d.SetPixel(int16(x), int16(y), c.Std())
}

// Present implements the render.Target interface by calling Display on
// the underlying driver.
func (t *Target) Present() error {
	return t.d.Display()
}

// Clear implements the render.Clearer interface.
// If the driver can fill rectangles, this is used instead of writing
// every pixel.
func (t *Target) Clear(c render.RGBA) {
	if f, ok := t.d.(rectFiller); ok {
		if f.FillRectangle(0, 0, int16(t.w), int16(t.h), c.Std()) == nil {
			return
		}
	}
	for y := range t.h {
		for x := range t.w {
			t.d.SetPixel(int16(x), int16(y), c.Std())
		}
	}
}

type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// AsDisplayer returns a drivers.Displayer which draws into t.
// Display calls t.Present.
func AsDisplayer(t render.Target) drivers.Displayer {
	return targetDisplay{t: t}
}

type targetDisplay struct {
	t     render.Target
	flipY bool // display row 0 is target row Height()-1
}

func (d targetDisplay) Size() (x, y int16) {
	return clamp16(d.t.Width()), clamp16(d.t.Height())
}

func (d targetDisplay) SetPixel(x, y int16, c color.RGBA) {
	iy := int(y)
	if d.flipY {
		iy = d.t.Height() - 1 - iy
	}
	d.t.Set(int(x), iy, render.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

func (d targetDisplay) Display() error {
	return d.t.Present()
}

func clamp16(v int) int16 {
	return int16(min(v, math.MaxInt16))
}
