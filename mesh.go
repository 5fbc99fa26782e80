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
	"slices"

	"seehuhn.de/go/geom/matrix"
)

// Face is a triangle of a mesh.
//
// V holds 0-based indices into the vertex list of the mesh. VT and VN
// hold indices into the texture coordinate and normal lists, or -1 if
// the face has none. The renderer only uses V.
type Face struct {
	V  [3]int
	VT [3]int
	VN [3]int
}

// Tri returns a face referencing the vertices i, j and k, without texture
// coordinates or normals.
func Tri(i, j, k int) Face {
	return Face{
		V:  [3]int{i, j, k},
		VT: [3]int{-1, -1, -1},
		VN: [3]int{-1, -1, -1},
	}
}

// Mesh is a triangulated mesh in normalized device coordinates.
type Mesh struct {
	Vertices  []Vec4
	Normals   []Vec3
	TexCoords []Vec3
	Faces     []Face
}

// Clone returns a deep copy of m.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Vertices:  slices.Clone(m.Vertices),
		Normals:   slices.Clone(m.Normals),
		TexCoords: slices.Clone(m.TexCoords),
		Faces:     slices.Clone(m.Faces),
	}
}

// Validate checks that all face indices refer to existing vertices,
// normals and texture coordinates. The value -1 is accepted for
// texture and normal indices.
//
// The renderer does not call Validate; meshes with invalid faces cause a
// panic during drawing. Loaders should call Validate before handing a
// mesh to the renderer.
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		for k := range 3 {
			if f.V[k] < 0 || f.V[k] >= len(m.Vertices) {
				return fmt.Errorf("face %d: vertex index %d out of range [0,%d)",
					i, f.V[k], len(m.Vertices))
			}
			if f.VT[k] < -1 || f.VT[k] >= len(m.TexCoords) {
				return fmt.Errorf("face %d: texture index %d out of range [0,%d)",
					i, f.VT[k], len(m.TexCoords))
			}
			if f.VN[k] < -1 || f.VN[k] >= len(m.Normals) {
				return fmt.Errorf("face %d: normal index %d out of range [0,%d)",
					i, f.VN[k], len(m.Normals))
			}
		}
	}
	return nil
}

// Apply transforms the x and y coordinates of all vertices in place, using
// the affine map
//
//	x' = M[0]*x + M[2]*y + M[4]
//	y' = M[1]*x + M[3]*y + M[5]
//
// Z and W are left unchanged.
func (m *Mesh) Apply(M matrix.Matrix) {
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.X, v.Y = M[0]*v.X+M[2]*v.Y+M[4], M[1]*v.X+M[3]*v.Y+M[5]
	}
}

// Scale multiplies the x, y and z coordinates of all vertices by s.
func (m *Mesh) Scale(s float64) {
	m.Apply(matrix.Matrix{s, 0, 0, s, 0, 0})
	for i := range m.Vertices {
		m.Vertices[i].Z *= s
	}
}

// Move adds dx and dy to the x and y coordinates of all vertices.
func (m *Mesh) Move(dx, dy float64) {
	m.Apply(matrix.Matrix{1, 0, 0, 1, dx, dy})
}
