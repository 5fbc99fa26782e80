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

// Command tinyrender draws triangle meshes, either into an image file or
// into a window.
//
// Meshes are read from the OBJ files given on the command line. Without
// arguments, a built-in scene of four triangles is drawn.
//
//	tinyrender -out scene.tga
//	tinyrender -mode window -style wireframe model.obj
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/tanema/gween/ease"

	render "seehuhn.de/go/tinyrender"
	"seehuhn.de/go/tinyrender/anim"
	"seehuhn.de/go/tinyrender/display"
	"seehuhn.de/go/tinyrender/imagefile"
	"seehuhn.de/go/tinyrender/objfile"
	"seehuhn.de/go/tinyrender/window"
)

func main() {
	var (
		mode    = flag.String("mode", "image", "image|window.")
		out     = flag.String("out", "output.tga", "Output file (image mode).")
		format  = flag.String("format", "", "tga|png|bmp|tiff (default: from the file name).")
		width   = flag.Int("width", 800, "Width in pixels.")
		height  = flag.Int("height", 800, "Height in pixels.")
		line    = flag.String("line", "bresenham", "Line algorithm: bresenham|float.")
		fill    = flag.String("fill", "barycentric", "Fill algorithm: barycentric|scanline.")
		style   = flag.String("style", "filled", "filled|wireframe.")
		fg      = flag.String("color", "green", "Drawing color, a name or #rrggbb.")
		scale   = flag.Float64("scale", 1, "Scale factor applied to all meshes.")
		fps     = flag.Int("fps", 120, "Frames per second (window mode).")
		verbose = flag.Bool("v", false, "Log every frame to stderr.")
	)
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		fatalf("invalid size %dx%d", *width, *height)
	}
	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		render.SetLogger(slog.New(h))
	}

	ld, err := render.LineDrawerByName(*line)
	if err != nil {
		fatalf("%v", err)
	}
	fs, err := render.FillStrategyByName(*fill)
	if err != nil {
		fatalf("%v", err)
	}
	ds, err := render.ParseDrawStyle(*style)
	if err != nil {
		fatalf("%v", err)
	}
	c, err := render.ParseColor(*fg)
	if err != nil {
		fatalf("%v", err)
	}
	meshes, err := loadMeshes(flag.Args())
	if err != nil {
		fatalf("%v", err)
	}

	opts := []render.Option{
		render.WithLineDrawer(ld),
		render.WithFillStrategy(fs),
		render.WithColor(c),
	}

	switch strings.ToLower(*mode) {
	case "image":
		f := imagefile.TGA
		if *format != "" {
			f, err = imagefile.ParseFormat(*format)
		} else {
			f, err = imagefile.FormatFromPath(*out)
		}
		if err != nil {
			fatalf("%v", err)
		}
		t := imagefile.New(*out, *width, *height, f)
		r := render.NewRenderer(t, opts...)
		if err := addMeshes(r, meshes, ds, *scale); err != nil {
			fatalf("%v", err)
		}
		if err := r.Draw(); err != nil {
			fatalf("%v", err)
		}

	case "window":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runWindow(ctx, meshes, ds, *scale, *width, *height, *fps, opts); err != nil {
			fatalf("window: %v", err)
		}

	default:
		fatalf("unknown mode: %s", *mode)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func loadMeshes(paths []string) ([]*render.Mesh, error) {
	if len(paths) == 0 {
		return demoScene(), nil
	}
	var res []*render.Mesh
	for _, p := range paths {
		m, err := objfile.Load(p)
		if err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, nil
}

func addMeshes(r *render.Renderer, meshes []*render.Mesh, style render.DrawStyle, scale float64) error {
	for _, m := range meshes {
		id := r.AddMesh(m)
		if err := r.SetDrawType(id, style); err != nil {
			return err
		}
		if scale != 1 {
			if err := r.ScaleVertices(id, scale); err != nil {
				return err
			}
		}
	}
	return nil
}

// runWindow shows the meshes in a window. The first mesh bobs up and
// down, and the frame counter and face count of the previous frame are
// shown in the top-left corner.
func runWindow(ctx context.Context, meshes []*render.Mesh, style render.DrawStyle, scale float64, w, h, fps int, opts []render.Option) error {
	t := window.New(w, h)
	t.SetTargetFPS(fps)
	r := render.NewRenderer(t, opts...)
	if err := addMeshes(r, meshes, style, scale); err != nil {
		return err
	}

	m := anim.NewMotion(0, anim.Offset{}, anim.Offset{Y: -0.5}, 2, ease.InOutQuad)
	m.Loop = true
	dt := 1 / float32(fps)
	frame := 0
	update := func(r *render.Renderer) error {
		frame++
		st := r.Stats()
		hud := fmt.Sprintf("frame %d  faces %d", frame, st.Faces)
		display.Label(r.Target(), 4, 10, hud, render.White)
		return m.Update(r, dt)
	}

	return window.Run(ctx, r, update, &window.Options{Title: "tinyrender"})
}

// demoScene returns four triangles of different shapes.
func demoScene() []*render.Mesh {
	tris := [][6]float64{
		{-0.8, -0.9, -0.6, -0.1, -0.4, -0.9},
		{0.2, -0.8, 0.8, -0.6, 0.5, -0.6},
		{-0.9, 0, -0.3, 0, -0.9, 0.6},
		{0.2, 0.2, 0.8, 0.2, 0.5, 0.8},
	}
	m := &render.Mesh{}
	for i, c := range tris {
		m.Vertices = append(m.Vertices,
			render.Vec4{X: c[0], Y: c[1], W: 1},
			render.Vec4{X: c[2], Y: c[3], W: 1},
			render.Vec4{X: c[4], Y: c[5], W: 1},
		)
		m.Faces = append(m.Faces, render.Tri(3*i, 3*i+1, 3*i+2))
	}
	return []*render.Mesh{m}
}
