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

// Target is the sink a renderer draws into.
//
// Set must silently ignore coordinates outside [0,Width) x [0,Height),
// so that the rasterizers never need to clip individual pixels.
//
// Present flushes the pixels to their destination (a window, a file, a
// display). Errors are returned to the caller; implementations must not
// retry internally.
type Target interface {
	Width() int
	Height() int
	Set(x, y int, c RGBA)
	Present() error
}

// Clearer is implemented by targets which can reset all pixels to a
// single color.
type Clearer interface {
	Clear(c RGBA)
}

// Interactive is implemented by targets which stay on screen across
// frames, for example desktop windows.
type Interactive interface {
	Target
	Clearer

	// IsOpen reports whether the target still accepts frames.
	IsOpen() bool
}
