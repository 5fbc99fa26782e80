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

package display

import (
	"tinygo.org/x/tinyfont"

	render "seehuhn.de/go/tinyrender"
)

// LabelFont is the font used by Label.
var LabelFont tinyfont.Fonter = &tinyfont.TomThumb

// Label writes a line of text onto t. The position (x, y) is the left end
// of the baseline, measured from the top-left corner of the visible image.
//
// Renderer targets are shown with y pointing up, so the text is written
// with the rows flipped. Label does not call Present.
func Label(t render.Target, x, y int, text string, c render.RGBA) {
	d := targetDisplay{t: t, flipY: true}
	tinyfont.WriteLine(d, LabelFont, int16(x), int16(y), text, c.Std())
}

// LabelWidth returns the width in pixels of text written by Label.
func LabelWidth(text string) int {
	_, outbox := tinyfont.LineWidth(LabelFont, text)
	return int(outbox)
}
