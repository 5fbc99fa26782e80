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
	"image/color"
	"strconv"
	"strings"
)

// RGBA is a color with 8-bit red, green, blue and alpha channels.
// Colors are not premultiplied; targets overwrite pixels without blending.
type RGBA struct {
	R, G, B, A uint8
}

// Predefined colors.
var (
	Black  = RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = RGBA{R: 255, G: 255, B: 255, A: 255}
	Red    = RGBA{R: 255, G: 0, B: 0, A: 255}
	Green  = RGBA{R: 20, G: 200, B: 50, A: 255}
	Blue   = RGBA{R: 0, G: 0, B: 255, A: 255}
	Purple = RGBA{R: 160, G: 32, B: 240, A: 255}
)

// Std converts c to the standard library color type.
func (c RGBA) Std() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromStd converts a standard library color to RGBA.
// Premultiplied values are converted back to straight alpha.
func FromStd(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

func (c RGBA) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor parses a color name ("white", "green", ...) or a hex value
// of the form "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (RGBA, error) {
	switch strings.ToLower(s) {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	case "purple":
		return Purple, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
