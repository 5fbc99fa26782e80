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

// Project maps a vertex in normalized device coordinates to a pixel
// position on a w×h target:
//
//	x = (v.X+1)*w/2,  y = (v.Y+1)*h/2
//
// Both coordinates are truncated toward zero. No clamping is done, so
// vertices outside [-1, 1] give positions outside the target.
func Project(w, h int, v Vec4) PixelPos {
	return PixelPos{
		X: int((v.X + 1) * float64(w) / 2),
		Y: int((v.Y + 1) * float64(h) / 2),
	}
}
