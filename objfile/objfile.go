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

// Package objfile reads meshes from Wavefront OBJ files.
//
// Only geometry is read: vertex positions (v), texture coordinates (vt),
// normals (vn) and faces (f). Faces with more than three vertices are
// split into a triangle fan. All other statements are ignored.
package objfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	render "seehuhn.de/go/tinyrender"
)

// Load reads the OBJ file at path.
func Load(path string) (*render.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Read parses OBJ data from r. The returned mesh has been validated, so
// all face indices are in range.
func Read(r io.Reader) (*render.Mesh, error) {
	m := &render.Mesh{}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "v":
			err = readVertex(m, fields[1:])
		case "vt":
			err = readTexCoord(m, fields[1:])
		case "vn":
			err = readNormal(m, fields[1:])
		case "f":
			err = readFace(m, fields[1:])
		}
		if err != nil {
			return nil, &ParseError{Line: lineNo, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseError reports a malformed line in an OBJ file.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var errMissingValues = errors.New("too few values")

func readVertex(m *render.Mesh, args []string) error {
	if len(args) < 3 {
		return errMissingValues
	}
	x, err := parseFloats(args[:min(len(args), 4)])
	if err != nil {
		return err
	}
	v := render.Vec4{X: x[0], Y: x[1], Z: x[2], W: 1}
	if len(x) > 3 {
		v.W = x[3]
	}
	m.Vertices = append(m.Vertices, v)
	return nil
}

func readTexCoord(m *render.Mesh, args []string) error {
	if len(args) < 1 {
		return errMissingValues
	}
	x, err := parseFloats(args[:min(len(args), 3)])
	if err != nil {
		return err
	}
	var t render.Vec3
	t.X = x[0]
	if len(x) > 1 {
		t.Y = x[1]
	}
	if len(x) > 2 {
		t.Z = x[2]
	}
	m.TexCoords = append(m.TexCoords, t)
	return nil
}

func readNormal(m *render.Mesh, args []string) error {
	if len(args) < 3 {
		return errMissingValues
	}
	x, err := parseFloats(args[:3])
	if err != nil {
		return err
	}
	m.Normals = append(m.Normals, render.Vec3{X: x[0], Y: x[1], Z: x[2]})
	return nil
}

// readFace parses the vertex references of a face and appends one or
// more triangles to the mesh.
func readFace(m *render.Mesh, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("face with %d vertices", len(args))
	}

	type ref struct{ v, vt, vn int }
	refs := make([]ref, len(args))
	for i, arg := range args {
		parts := strings.Split(arg, "/")
		if len(parts) > 3 {
			return fmt.Errorf("invalid vertex reference %q", arg)
		}

		r := ref{v: -1, vt: -1, vn: -1}
		var err error
		r.v, err = resolveIndex(parts[0], len(m.Vertices))
		if err != nil {
			return err
		}
		if len(parts) > 1 && parts[1] != "" {
			if r.vt, err = resolveIndex(parts[1], len(m.TexCoords)); err != nil {
				return err
			}
		}
		if len(parts) > 2 && parts[2] != "" {
			if r.vn, err = resolveIndex(parts[2], len(m.Normals)); err != nil {
				return err
			}
		}
		refs[i] = r
	}

	for i := 1; i+1 < len(refs); i++ {
		a, b, c := refs[0], refs[i], refs[i+1]
		m.Faces = append(m.Faces, render.Face{
			V:  [3]int{a.v, b.v, c.v},
			VT: [3]int{a.vt, b.vt, c.vt},
			VN: [3]int{a.vn, b.vn, c.vn},
		})
	}
	return nil
}

// resolveIndex converts a 1-based (or negative, relative) OBJ index into a
// 0-based index. n is the number of elements defined so far.
func resolveIndex(s string, n int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	switch {
	case idx > 0:
		return idx - 1, nil
	case idx < 0:
		if n+idx < 0 {
			return 0, fmt.Errorf("relative index %d out of range", idx)
		}
		return n + idx, nil
	default:
		return 0, errors.New("index 0 is not allowed")
	}
}

func parseFloats(args []string) ([]float64, error) {
	res := make([]float64, len(args))
	for i, a := range args {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		res[i] = x
	}
	return res, nil
}
