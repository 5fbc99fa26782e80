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

package render

import (
	"fmt"
	"math"
)

// LineDrawer rasterizes a line segment between two pixel positions,
// including both endpoints. All pixels are written via t.Set.
type LineDrawer interface {
	DrawLine(t Target, x0, y0, x1, y1 int, c RGBA)
}

// LineDrawerFunc adapts an ordinary function to the LineDrawer interface.
type LineDrawerFunc func(t Target, x0, y0, x1, y1 int, c RGBA)

// DrawLine calls f(t, x0, y0, x1, y1, c).
func (f LineDrawerFunc) DrawLine(t Target, x0, y0, x1, y1 int, c RGBA) {
	f(t, x0, y0, x1, y1, c)
}

// Bresenham draws lines using integer error accumulation.
//
// Steep lines are transposed before walking and de-transposed on output,
// and the endpoints are ordered so that the walk always proceeds in
// increasing x direction. As a consequence, the set of pixels written does
// not depend on the order of the endpoints. A line with identical
// endpoints writes exactly one pixel.
type Bresenham struct{}

// DrawLine implements the LineDrawer interface.
func (Bresenham) DrawLine(t Target, x0, y0, x1, y1 int, c RGBA) {
	steep, x0, y0, x1, y1 := normalizeLine(x0, y0, x1, y1)

	dx := x1 - x0
	dy := y1 - y0
	yStep := 1
	if dy < 0 {
		yStep = -1
	}

	dErr := abs(2 * dy)
	acc := 0
	y := y0
	for x := x0; x <= x1; x++ {
		if steep {
			t.Set(y, x, c)
		} else {
			t.Set(x, y, c)
		}

		acc += dErr
		if acc > dx {
			y += yStep
			acc -= 2 * dx
		}
	}
}

// FloatLine draws lines by linear interpolation in floating point,
// y = y0 + t*(y1-y0) for t stepping from 0 to 1 across the x-span.
// The result is rounded to the nearest pixel.
//
// FloatLine uses the same transposition and endpoint ordering as
// Bresenham, so it is symmetric in its endpoints as well. It is slower and
// may differ from Bresenham by one pixel on the secondary axis.
type FloatLine struct{}

// DrawLine implements the LineDrawer interface.
func (FloatLine) DrawLine(t Target, x0, y0, x1, y1 int, c RGBA) {
	steep, x0, y0, x1, y1 := normalizeLine(x0, y0, x1, y1)

	span := float64(x1 - x0)
	for x := x0; x <= x1; x++ {
		var s float64
		if span > 0 {
			s = float64(x-x0) / span
		}
		y := int(math.Round(float64(y0) + s*float64(y1-y0)))
		if steep {
			t.Set(y, x, c)
		} else {
			t.Set(x, y, c)
		}
	}
}

// normalizeLine transposes steep lines and orders the endpoints so that
// x0 <= x1 after the call.
func normalizeLine(x0, y0, x1, y1 int) (steep bool, nx0, ny0, nx1, ny1 int) {
	steep = abs(x1-x0) < abs(y1-y0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	return steep, x0, y0, x1, y1
}

// LineDrawerByName returns the line algorithm with the given name.
// Valid names are "bresenham" and "float".
func LineDrawerByName(name string) (LineDrawer, error) {
	switch name {
	case "bresenham", "":
		return Bresenham{}, nil
	case "float":
		return FloatLine{}, nil
	default:
		return nil, fmt.Errorf("unknown line algorithm %q", name)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
