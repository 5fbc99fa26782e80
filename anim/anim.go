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

// Package anim moves meshes of a renderer over time.
//
// There is no global animation manager: callers keep their Motion values
// and call Update once per frame, usually from the update function passed
// to Renderer.Step.
package anim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	render "seehuhn.de/go/tinyrender"
)

// Offset is a displacement in normalized device coordinates.
type Offset struct {
	X, Y float64
}

// Motion moves one mesh from offset From to offset To.
//
// The mesh is taken to be at offset From when the motion starts. Each call
// to Update moves the mesh by the difference between the new and the
// previous eased position, so that after the motion is finished the mesh
// has been moved by To-From in total.
type Motion struct {
	ID       render.MeshID
	From, To Offset

	// Loop makes the motion run back and forth forever.
	Loop bool

	duration float32
	fn       ease.TweenFunc
	tx, ty   *gween.Tween
	cur      Offset
	back     bool // moving from To to From
	done     bool
}

// NewMotion returns a motion of mesh id from a to b, taking duration
// seconds. If fn is nil, ease.Linear is used.
func NewMotion(id render.MeshID, a, b Offset, duration float32, fn ease.TweenFunc) *Motion {
	if fn == nil {
		fn = ease.Linear
	}
	m := &Motion{
		ID:       id,
		From:     a,
		To:       b,
		duration: duration,
		fn:       fn,
		cur:      a,
	}
	m.start(a, b)
	return m
}

func (m *Motion) start(a, b Offset) {
	m.tx = gween.New(float32(a.X), float32(b.X), m.duration, m.fn)
	m.ty = gween.New(float32(a.Y), float32(b.Y), m.duration, m.fn)
}

// Update advances the motion by dt seconds and moves the mesh accordingly.
// Once a non-looping motion is done, Update does nothing.
func (m *Motion) Update(r *render.Renderer, dt float32) error {
	if m.done {
		return nil
	}

	x, xDone := m.tx.Update(dt)
	y, yDone := m.ty.Update(dt)
	next := Offset{X: float64(x), Y: float64(y)}

	err := r.MoveVertices(m.ID, next.X-m.cur.X, next.Y-m.cur.Y)
	if err != nil {
		m.done = true
		return err
	}
	m.cur = next

	if xDone && yDone {
		if !m.Loop {
			m.done = true
			return nil
		}
		m.back = !m.back
		if m.back {
			m.start(m.To, m.From)
		} else {
			m.start(m.From, m.To)
		}
	}
	return nil
}

// Done reports whether the motion has finished.
// A looping motion is only done after an error.
func (m *Motion) Done() bool {
	return m.done
}

// Position returns the current offset of the mesh.
func (m *Motion) Position() Offset {
	return m.cur
}
