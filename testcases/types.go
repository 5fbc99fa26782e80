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

// Package testcases holds scenes which are shared between the renderer
// tests, the JSON export and the PDF reference generator.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	render "seehuhn.de/go/tinyrender"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string           // lowercase a-z, 0-9 and _ only
	Width  int              // canvas width in pixels
	Height int              // canvas height in pixels
	Meshes []*render.Mesh   // vertices in normalized device coordinates
	Style  render.DrawStyle // used for all meshes
}

// Triangles returns the faces of all meshes, projected to pixel
// coordinates of the test canvas.
func (tc *TestCase) Triangles() [][3]render.PixelPos {
	var res [][3]render.PixelPos
	for _, m := range tc.Meshes {
		for _, f := range m.Faces {
			var tri [3]render.PixelPos
			for k := range 3 {
				tri[k] = render.Project(tc.Width, tc.Height, m.Vertices[f.V[k]])
			}
			res = append(res, tri)
		}
	}
	return res
}

// Outline returns the closed path through the corners of a triangle,
// in pixel coordinates.
func Outline(tri [3]render.PixelPos) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(tri[0])}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{pt(tri[1])}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{pt(tri[2])}) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// pt converts a pixel position to a vec.Vec2.
func pt(p render.PixelPos) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// triangle builds a single-face mesh from three (x, y) vertices in
// normalized device coordinates.
func triangle(x0, y0, x1, y1, x2, y2 float64) *render.Mesh {
	return &render.Mesh{
		Vertices: []render.Vec4{
			{X: x0, Y: y0, W: 1},
			{X: x1, Y: y1, W: 1},
			{X: x2, Y: y2, W: 1},
		},
		Faces: []render.Face{render.Tri(0, 1, 2)},
	}
}
