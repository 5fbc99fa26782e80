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

// DrawingContext binds a target, a pair of algorithms and a foreground
// color. It is the only place where the algorithms are called, so the same
// scene code can drive any combination of target and algorithms.
type DrawingContext struct {
	Target Target
	Line   LineDrawer
	Fill   FillStrategy
	Color  RGBA
}

// DrawLine draws a line between two pixel positions.
func (dc *DrawingContext) DrawLine(x0, y0, x1, y1 int) {
	dc.Line.DrawLine(dc.Target, x0, y0, x1, y1, dc.Color)
}

// DrawTriangle fills the triangle v0, v1, v2.
func (dc *DrawingContext) DrawTriangle(v0, v1, v2 PixelPos) {
	dc.Fill.FillTriangle(dc.Target, dc.Line, v0, v1, v2, dc.Color)
}
