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

package testcases

import render "seehuhn.de/go/tinyrender"

// The four triangles of the demo test scene: a tall isosceles triangle,
// a flat sliver, a right triangle and an upright triangle.
var (
	tallTriangle  = triangle(-0.8, -0.9, -0.6, -0.1, -0.4, -0.9)
	sliver        = triangle(0.2, -0.8, 0.8, -0.6, 0.5, -0.6)
	rightTriangle = triangle(-0.9, 0, -0.3, 0, -0.9, 0.6)
	upright       = triangle(0.2, 0.2, 0.8, 0.2, 0.5, 0.8)
)

var triangleCases = []TestCase{
	{
		Name:   "tall",
		Width:  100,
		Height: 100,
		Meshes: []*render.Mesh{tallTriangle},
		Style:  render.Filled,
	},
	{
		Name:   "sliver",
		Width:  100,
		Height: 100,
		Meshes: []*render.Mesh{sliver},
		Style:  render.Filled,
	},
	{
		Name:   "right",
		Width:  100,
		Height: 100,
		Meshes: []*render.Mesh{rightTriangle},
		Style:  render.Filled,
	},
	{
		Name:   "upright",
		Width:  100,
		Height: 100,
		Meshes: []*render.Mesh{upright},
		Style:  render.Filled,
	},
	{
		Name:   "all_four",
		Width:  256,
		Height: 256,
		Meshes: []*render.Mesh{tallTriangle, sliver, rightTriangle, upright},
		Style:  render.Filled,
	},
	{
		Name:   "non_square",
		Width:  160,
		Height: 90,
		Meshes: []*render.Mesh{upright, rightTriangle},
		Style:  render.Filled,
	},
}

var degenerateCases = []TestCase{
	{
		// all three vertices share the same x coordinate
		Name:   "vertical",
		Width:  64,
		Height: 64,
		Meshes: []*render.Mesh{triangle(0, -0.5, 0, 0, 0, 0.5)},
		Style:  render.Filled,
	},
	{
		Name:   "collinear",
		Width:  64,
		Height: 64,
		Meshes: []*render.Mesh{triangle(-0.5, -0.5, 0, 0, 0.5, 0.5)},
		Style:  render.Filled,
	},
	{
		Name:   "point",
		Width:  64,
		Height: 64,
		Meshes: []*render.Mesh{triangle(0.1, 0.1, 0.1, 0.1, 0.1, 0.1)},
		Style:  render.Filled,
	},
}

var clipCases = []TestCase{
	{
		Name:   "partly_outside",
		Width:  64,
		Height: 64,
		Meshes: []*render.Mesh{triangle(-1.5, -0.5, 0.5, 1.5, 0.5, -0.5)},
		Style:  render.Filled,
	},
	{
		Name:   "covers_canvas",
		Width:  32,
		Height: 32,
		Meshes: []*render.Mesh{triangle(-3, -3, 3, -3, 0, 4)},
		Style:  render.Filled,
	},
	{
		Name:   "fully_outside",
		Width:  32,
		Height: 32,
		Meshes: []*render.Mesh{triangle(1.5, 1.5, 2, 1.5, 2, 2)},
		Style:  render.Filled,
	},
}

var wireframeCases = []TestCase{
	{
		Name:   "single_face",
		Width:  800,
		Height: 800,
		Meshes: []*render.Mesh{triangle(0, 0.5, 0.5, -0.5, -0.5, -0.5)},
		Style:  render.Wireframe,
	},
	{
		Name:   "all_four",
		Width:  256,
		Height: 256,
		Meshes: []*render.Mesh{tallTriangle, sliver, rightTriangle, upright},
		Style:  render.Wireframe,
	},
}
