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
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Renderer draws a Scene onto a Target.
//
// Each call to Draw projects all vertices with the current target size,
// draws every face of every mesh in insertion order and finally presents
// the target. Apart from the mesh data, no state is kept between frames.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	scene Scene
	dc    DrawingContext

	clearColor RGBA
	logger     *slog.Logger

	projected []PixelPos // per-mesh projection buffer, reused
	stats     FrameStats
}

// FrameStats counts the draw calls issued by the most recent frame.
type FrameStats struct {
	Meshes    int
	Faces     int
	Lines     int
	Triangles int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLineDrawer sets the line algorithm. The default is Bresenham.
func WithLineDrawer(l LineDrawer) Option {
	return func(r *Renderer) {
		r.dc.Line = l
	}
}

// WithFillStrategy sets the triangle fill algorithm.
// The default is Barycentric.
func WithFillStrategy(f FillStrategy) Option {
	return func(r *Renderer) {
		r.dc.Fill = f
	}
}

// WithColor sets the foreground color. The default is White.
func WithColor(c RGBA) Option {
	return func(r *Renderer) {
		r.dc.Color = c
	}
}

// WithClearColor sets the color used by Clear. The default is Black.
func WithClearColor(c RGBA) Option {
	return func(r *Renderer) {
		r.clearColor = c
	}
}

// WithLogger sets the logger for this renderer. By default the logger
// installed with SetLogger is used.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l == nil {
			l = newNopLogger()
		}
		r.logger = l
	}
}

// NewRenderer returns a renderer drawing onto t.
func NewRenderer(t Target, opts ...Option) *Renderer {
	r := &Renderer{
		dc: DrawingContext{
			Target: t,
			Line:   Bresenham{},
			Fill:   Barycentric{},
			Color:  White,
		},
		clearColor: Black,
		logger:     Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Target returns the current render target.
func (r *Renderer) Target() Target {
	return r.dc.Target
}

// SetTarget replaces the render target and returns the previous one.
// The next frame is projected using the size of the new target.
func (r *Renderer) SetTarget(t Target) Target {
	old := r.dc.Target
	r.dc.Target = t
	r.logger.Debug("render target replaced",
		slog.Int("width", t.Width()), slog.Int("height", t.Height()))
	return old
}

// Scene gives read access to the meshes of the renderer.
// Use the renderer's methods to modify the scene.
func (r *Renderer) Scene() *Scene {
	return &r.scene
}

// Stats returns the draw call counts of the most recent frame.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

// AddMesh adds a copy of m to the scene and returns its id.
// The mesh is drawn filled until SetDrawType is called.
func (r *Renderer) AddMesh(m *Mesh) MeshID {
	return r.scene.Add(m)
}

// ScaleVertices multiplies x, y and z of every vertex of the mesh by factor.
// An invalid id returns an error wrapping ErrInvalidMesh and changes nothing.
func (r *Renderer) ScaleVertices(id MeshID, factor float64) error {
	return r.scene.Scale(id, factor)
}

// MoveVertices adds dx and dy to every vertex of the mesh.
// An invalid id returns an error wrapping ErrInvalidMesh and changes nothing.
func (r *Renderer) MoveVertices(id MeshID, dx, dy float64) error {
	return r.scene.Move(id, dx, dy)
}

// SetDrawType selects how the mesh is drawn.
// An invalid id returns an error wrapping ErrInvalidMesh and changes nothing.
func (r *Renderer) SetDrawType(id MeshID, style DrawStyle) error {
	return r.scene.SetStyle(id, style)
}

// Clear resets the target to the clear color, if the target supports this.
func (r *Renderer) Clear() {
	if c, ok := r.dc.Target.(Clearer); ok {
		c.Clear(r.clearColor)
	}
}

// Draw renders all meshes and presents the target.
// Errors from Present are returned unchanged apart from wrapping.
func (r *Renderer) Draw() error {
	t := r.dc.Target
	w, h := t.Width(), t.Height()

	var stats FrameStats
	r.scene.Each(func(_ MeshID, m *Mesh, style DrawStyle) bool {
		r.projected = r.projected[:0]
		for _, v := range m.Vertices {
			r.projected = append(r.projected, Project(w, h, v))
		}

		for _, f := range m.Faces {
			v0 := r.projected[f.V[0]]
			v1 := r.projected[f.V[1]]
			v2 := r.projected[f.V[2]]

			switch style {
			case Wireframe:
				r.dc.DrawLine(v0.X, v0.Y, v1.X, v1.Y)
				r.dc.DrawLine(v1.X, v1.Y, v2.X, v2.Y)
				r.dc.DrawLine(v2.X, v2.Y, v0.X, v0.Y)
				stats.Lines += 3
			default:
				r.dc.DrawTriangle(v0, v1, v2)
				stats.Triangles++
			}
		}
		stats.Meshes++
		stats.Faces += len(m.Faces)
		return true
	})
	r.stats = stats

	r.logger.Debug("frame drawn",
		slog.Int("meshes", stats.Meshes),
		slog.Int("faces", stats.Faces),
		slog.Int("lines", stats.Lines),
		slog.Int("triangles", stats.Triangles))

	if err := t.Present(); err != nil {
		r.logger.Warn("present failed", slog.Any("error", err))
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

// Step runs one frame of an interactive loop: the target is cleared,
// update is called to change the scene, and the scene is drawn.
// A nil update function is allowed.
func (r *Renderer) Step(update func(*Renderer) error) error {
	r.Clear()
	if update != nil {
		if err := update(r); err != nil {
			return err
		}
	}
	return r.Draw()
}

// ErrNotInteractive is returned by Run if the target does not implement
// the Interactive interface.
var ErrNotInteractive = errors.New("render target is not interactive")

// Run calls Step repeatedly until the target is closed, stop returns true,
// or ctx is cancelled. The conditions are checked once before every frame;
// a frame in progress is never interrupted. If ctx is cancelled, Run
// returns ctx.Err().
func (r *Renderer) Run(ctx context.Context, update func(*Renderer) error, stop func() bool) error {
	it, ok := r.dc.Target.(Interactive)
	if !ok {
		return ErrNotInteractive
	}

	for it.IsOpen() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if stop != nil && stop() {
			return nil
		}
		if err := r.Step(update); err != nil {
			return err
		}

		// the target may have been swapped by update
		if it, ok = r.dc.Target.(Interactive); !ok {
			return ErrNotInteractive
		}
	}
	return nil
}
