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
	"fmt"
)

// DrawStyle selects how the faces of a mesh are drawn.
type DrawStyle uint8

// These are the supported draw styles.
const (
	Filled DrawStyle = iota
	Wireframe
)

func (s DrawStyle) String() string {
	switch s {
	case Filled:
		return "filled"
	case Wireframe:
		return "wireframe"
	default:
		return fmt.Sprintf("DrawStyle(%d)", uint8(s))
	}
}

// ParseDrawStyle converts "filled" or "wireframe" to a DrawStyle.
func ParseDrawStyle(s string) (DrawStyle, error) {
	switch s {
	case "filled", "fill":
		return Filled, nil
	case "wireframe", "line":
		return Wireframe, nil
	default:
		return 0, fmt.Errorf("unknown draw style %q", s)
	}
}

// MeshID identifies a mesh within a Scene.
// IDs are assigned in insertion order, starting at 0.
type MeshID int

// ErrInvalidMesh is returned (wrapped in a *MeshIDError) when an operation
// refers to a mesh which does not exist. This indicates a bug in the
// calling code.
var ErrInvalidMesh = errors.New("invalid mesh id")

// MeshIDError records an operation on a non-existent mesh.
type MeshIDError struct {
	Op  string
	ID  MeshID
	Len int // number of meshes at the time of the call
}

func (e *MeshIDError) Error() string {
	return fmt.Sprintf("%s: mesh id %d out of range [0,%d)", e.Op, e.ID, e.Len)
}

func (e *MeshIDError) Unwrap() error {
	return ErrInvalidMesh
}

// Scene is an append-only collection of meshes, each with its own draw
// style. Meshes cannot be removed, so a MeshID stays valid for the
// lifetime of the scene.
//
// The zero value is an empty scene.
type Scene struct {
	meshes []*Mesh
	styles []DrawStyle
}

// Add stores a copy of m in the scene and returns its id.
// New meshes are drawn filled.
func (s *Scene) Add(m *Mesh) MeshID {
	s.meshes = append(s.meshes, m.Clone())
	s.styles = append(s.styles, Filled)
	return MeshID(len(s.meshes) - 1)
}

// Len returns the number of meshes in the scene.
func (s *Scene) Len() int {
	return len(s.meshes)
}

// Mesh returns the mesh with the given id. The returned mesh is owned by
// the scene and must not be retained beyond the next mutation.
func (s *Scene) Mesh(id MeshID) (*Mesh, error) {
	if err := s.check("mesh", id); err != nil {
		return nil, err
	}
	return s.meshes[id], nil
}

// Scale multiplies the x, y and z coordinates of all vertices of a mesh by
// factor.
func (s *Scene) Scale(id MeshID, factor float64) error {
	if err := s.check("scale", id); err != nil {
		return err
	}
	s.meshes[id].Scale(factor)
	return nil
}

// Move adds dx and dy to the x and y coordinates of all vertices of a mesh.
func (s *Scene) Move(id MeshID, dx, dy float64) error {
	if err := s.check("move", id); err != nil {
		return err
	}
	s.meshes[id].Move(dx, dy)
	return nil
}

// SetStyle changes the draw style of a mesh.
func (s *Scene) SetStyle(id MeshID, style DrawStyle) error {
	if err := s.check("set style", id); err != nil {
		return err
	}
	if style != Filled && style != Wireframe {
		return fmt.Errorf("set style: invalid draw style %d", uint8(style))
	}
	s.styles[id] = style
	return nil
}

// Style returns the draw style of a mesh.
func (s *Scene) Style(id MeshID) (DrawStyle, error) {
	if err := s.check("style", id); err != nil {
		return 0, err
	}
	return s.styles[id], nil
}

// Each calls yield for every mesh, in insertion order, until yield
// returns false.
func (s *Scene) Each(yield func(id MeshID, m *Mesh, style DrawStyle) bool) {
	for i, m := range s.meshes {
		if !yield(MeshID(i), m, s.styles[i]) {
			return
		}
	}
}

func (s *Scene) check(op string, id MeshID) error {
	if id < 0 || int(id) >= len(s.meshes) {
		return &MeshIDError{Op: op, ID: id, Len: len(s.meshes)}
	}
	return nil
}
