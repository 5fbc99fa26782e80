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
	"errors"
	"testing"
)

func TestSceneIDs(t *testing.T) {
	var s Scene
	for i := range 5 {
		id := s.Add(testMesh())
		if id != MeshID(i) {
			t.Fatalf("mesh %d got id %d", i, id)
		}
	}
	if s.Len() != 5 {
		t.Errorf("Len = %d, want 5", s.Len())
	}
}

func TestSceneOwnsMesh(t *testing.T) {
	var s Scene
	m := testMesh()
	id := s.Add(m)
	m.Vertices[0].X = 99

	stored, err := s.Mesh(id)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Vertices[0].X == 99 {
		t.Error("scene mesh changed through the caller's pointer")
	}
}

func TestSceneInvalidID(t *testing.T) {
	var s Scene
	s.Add(testMesh())
	s.Add(testMesh())

	ops := map[string]func(id MeshID) error{
		"scale": func(id MeshID) error { return s.Scale(id, 2) },
		"move":  func(id MeshID) error { return s.Move(id, 1, 1) },
		"style": func(id MeshID) error { return s.SetStyle(id, Wireframe) },
		"mesh": func(id MeshID) error {
			_, err := s.Mesh(id)
			return err
		},
		"get style": func(id MeshID) error {
			_, err := s.Style(id)
			return err
		},
	}
	for name, op := range ops {
		for _, id := range []MeshID{2, 100, -1} {
			err := op(id)
			if !errors.Is(err, ErrInvalidMesh) {
				t.Errorf("%s(%d): got %v, want ErrInvalidMesh", name, id, err)
				continue
			}
			var idErr *MeshIDError
			if !errors.As(err, &idErr) || idErr.ID != id || idErr.Len != 2 {
				t.Errorf("%s(%d): unexpected error details %v", name, id, err)
			}
		}
	}

	// nothing was modified
	for id := range MeshID(2) {
		m, _ := s.Mesh(id)
		if m.Vertices[0] != testMesh().Vertices[0] {
			t.Errorf("mesh %d modified by failed operation", id)
		}
		if st, _ := s.Style(id); st != Filled {
			t.Errorf("mesh %d: style changed to %v", id, st)
		}
	}
}

func TestSceneOperationsTargetOneMesh(t *testing.T) {
	var s Scene
	a := s.Add(testMesh())
	b := s.Add(testMesh())

	if err := s.Move(b, 1, 0); err != nil {
		t.Fatal(err)
	}
	if err := s.SetStyle(b, Wireframe); err != nil {
		t.Fatal(err)
	}

	ma, _ := s.Mesh(a)
	mb, _ := s.Mesh(b)
	if ma.Vertices[0].X != 0 || mb.Vertices[0].X != 1 {
		t.Errorf("got x=%g and x=%g", ma.Vertices[0].X, mb.Vertices[0].X)
	}
	if st, _ := s.Style(a); st != Filled {
		t.Errorf("style of a = %v", st)
	}
	if st, _ := s.Style(b); st != Wireframe {
		t.Errorf("style of b = %v", st)
	}
}

func TestSetStyleInvalid(t *testing.T) {
	var s Scene
	id := s.Add(testMesh())
	if err := s.SetStyle(id, DrawStyle(7)); err == nil {
		t.Error("invalid style accepted")
	}
}

func TestSceneEach(t *testing.T) {
	var s Scene
	for range 4 {
		s.Add(testMesh())
	}

	var seen []MeshID
	s.Each(func(id MeshID, _ *Mesh, _ DrawStyle) bool {
		seen = append(seen, id)
		return id < 1
	})
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 1 {
		t.Errorf("visited %v", seen)
	}
}

func TestParseDrawStyle(t *testing.T) {
	cases := map[string]DrawStyle{
		"filled":    Filled,
		"fill":      Filled,
		"wireframe": Wireframe,
		"line":      Wireframe,
	}
	for in, want := range cases {
		got, err := ParseDrawStyle(in)
		if err != nil || got != want {
			t.Errorf("ParseDrawStyle(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseDrawStyle("points"); err == nil {
		t.Error("unknown style accepted")
	}
	if Wireframe.String() != "wireframe" || DrawStyle(9).String() != "DrawStyle(9)" {
		t.Error("unexpected String output")
	}
}
