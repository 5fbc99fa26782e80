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

import (
	"regexp"
	"testing"

	"seehuhn.de/go/geom/path"

	render "seehuhn.de/go/tinyrender"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestCasesWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for category, cases := range All {
		for _, tc := range cases {
			name := category + "_" + tc.Name
			if !validName.MatchString(tc.Name) {
				t.Errorf("%s: invalid name", name)
			}
			if seen[name] {
				t.Errorf("%s: duplicate name", name)
			}
			seen[name] = true

			if tc.Width <= 0 || tc.Height <= 0 {
				t.Errorf("%s: size %dx%d", name, tc.Width, tc.Height)
			}
			faces := 0
			for _, m := range tc.Meshes {
				if err := m.Validate(); err != nil {
					t.Errorf("%s: %v", name, err)
				}
				faces += len(m.Faces)
			}
			if got := len(tc.Triangles()); got != faces || faces == 0 {
				t.Errorf("%s: %d triangles for %d faces", name, got, faces)
			}
		}
	}
}

func TestWireframeExample(t *testing.T) {
	tc := wireframeCases[0]
	want := [3]render.PixelPos{{X: 400, Y: 600}, {X: 600, Y: 200}, {X: 200, Y: 200}}
	if got := tc.Triangles()[0]; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOutline(t *testing.T) {
	tri := [3]render.PixelPos{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 0}}
	var cmds []path.Command
	for cmd, pts := range Outline(tri) {
		cmds = append(cmds, cmd)
		if cmd == path.CmdMoveTo && (pts[0].X != 1 || pts[0].Y != 2) {
			t.Errorf("path starts at %v", pts[0])
		}
	}
	want := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if len(cmds) != len(want) {
		t.Fatalf("got %v", cmds)
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("command %d = %v, want %v", i, cmds[i], want[i])
		}
	}

	// stopping early must be possible
	n := 0
	for range Outline(tri) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("n = %d", n)
	}
}
