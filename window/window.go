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

// Package window shows the output of a renderer in a desktop window.
//
// The window is driven by ebiten. Since ebiten owns the event loop, the
// renderer's frame loop is inverted: [Run] calls [render.Renderer.Step]
// once per tick from inside the ebiten game loop.
package window

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	render "seehuhn.de/go/tinyrender"
)

// ErrClosed is returned by Present after the window has been closed.
var ErrClosed = errors.New("window closed")

// Target is a render target shown in a desktop window.
//
// Pixels are drawn into a back buffer. Present copies the back buffer
// to the front buffer, which is shown by the next ebiten draw call.
// The image is shown with y pointing up.
type Target struct {
	w, h   int
	back   []byte // RGBA, row-major, row 0 is y=0
	front  []byte
	img    *ebiten.Image
	closed bool
	frames int
}

// New allocates a w×h window target. The window itself is opened by Run.
func New(w, h int) *Target {
	w, h = max(w, 1), max(h, 1)
	return &Target{
		w:     w,
		h:     h,
		back:  make([]byte, 4*w*h),
		front: make([]byte, 4*w*h),
	}
}

// Width implements the render.Target interface.
func (t *Target) Width() int { return t.w }

// Height implements the render.Target interface.
func (t *Target) Height() int { return t.h }

// Set implements the render.Target interface.
func (t *Target) Set(x, y int, c render.RGBA) {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return
	}
	i := 4 * (y*t.w + x)
	p := t.back[i : i+4 : i+4]
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
	p[3] = c.A
}

// Clear implements the render.Clearer interface.
func (t *Target) Clear(c render.RGBA) {
	for i := 0; i < len(t.back); i += 4 {
		t.back[i] = c.R
		t.back[i+1] = c.G
		t.back[i+2] = c.B
		t.back[i+3] = c.A
	}
}

// Present implements the render.Target interface.
func (t *Target) Present() error {
	if t.closed {
		return ErrClosed
	}
	copy(t.front, t.back)
	t.frames++
	return nil
}

// Frames returns the number of frames presented so far.
func (t *Target) Frames() int {
	return t.frames
}

// IsOpen implements the render.Interactive interface.
func (t *Target) IsOpen() bool {
	return !t.closed && !ebiten.IsWindowBeingClosed()
}

// IsKeyDown reports whether the given key is currently pressed.
// It must be called from within the update function passed to Run.
func (t *Target) IsKeyDown(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

// SetTargetFPS sets the number of frames per second Run aims for.
func (t *Target) SetTargetFPS(fps int) {
	ebiten.SetTPS(fps)
}

// Close marks the window as closed. Run returns after the current frame.
func (t *Target) Close() {
	t.closed = true
}

// Options configure Run.
type Options struct {
	Title string

	// Scale enlarges the window relative to the target size.
	// Values below 1 are treated as 1.
	Scale int

	// QuitKey ends the loop when pressed. The zero value (ebiten.KeyA)
	// selects Escape.
	QuitKey ebiten.Key
}

// Run opens a window for the renderer's target and calls r.Step(update)
// once per tick until the window is closed, the quit key is pressed or ctx
// is cancelled. The stop conditions are checked before every frame.
//
// The renderer's target must be a *Target. Run must be called from the
// main goroutine.
func Run(ctx context.Context, r *render.Renderer, update func(*render.Renderer) error, opt *Options) error {
	t, ok := r.Target().(*Target)
	if !ok {
		return render.ErrNotInteractive
	}
	if opt == nil {
		opt = &Options{}
	}
	quit := opt.QuitKey
	if quit == 0 {
		quit = ebiten.KeyEscape
	}

	ebiten.SetWindowTitle(opt.Title)
	scale := max(opt.Scale, 1)
	ebiten.SetWindowSize(t.w*scale, t.h*scale)
	ebiten.SetWindowClosingHandled(true)

	g := &game{ctx: ctx, t: t, r: r, update: update, quit: quit}
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return g.err
}

type game struct {
	ctx    context.Context
	t      *Target
	r      *render.Renderer
	update func(*render.Renderer) error
	quit   ebiten.Key
	err    error
}

func (g *game) Update() error {
	if err := g.ctx.Err(); err != nil {
		g.err = err
		g.t.Close()
		return ebiten.Termination
	}
	if !g.t.IsOpen() || g.t.IsKeyDown(g.quit) {
		g.t.Close()
		return ebiten.Termination
	}
	return g.r.Step(g.update)
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.t.img == nil {
		g.t.img = ebiten.NewImage(g.t.w, g.t.h)
	}
	g.t.img.WritePixels(g.t.front)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1, -1)
	op.GeoM.Translate(0, float64(g.t.h))
	screen.DrawImage(g.t.img, op)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.t.w, g.t.h
}
