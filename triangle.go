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
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FillStrategy fills a triangle given in pixel coordinates.
//
// The line drawer is used for every pixel or span the strategy writes, so
// that the edge algorithm can be exchanged independently of the fill test.
type FillStrategy interface {
	FillTriangle(t Target, line LineDrawer, v0, v1, v2 PixelPos, c RGBA)
}

// Barycentric fills triangles by testing every pixel of the bounding box.
//
// A pixel is filled if all three barycentric weights are non-negative, so
// pixels on edges and vertices are included. Edges shared between adjacent
// triangles are drawn twice; with opaque overwrite this is invisible.
// Triangles with zero area are skipped.
type Barycentric struct{}

// FillTriangle implements the FillStrategy interface.
func (Barycentric) FillTriangle(t Target, line LineDrawer, v0, v1, v2 PixelPos, c RGBA) {
	if math.Abs(DoubleArea(v0, v1, v2)) < degenerateAreaThreshold {
		return
	}

	// sort by y, so that v0 is the top-most vertex
	if v1.Y < v0.Y {
		v0, v1 = v1, v0
	}
	if v2.Y < v1.Y {
		v1, v2 = v2, v1
	}
	if v1.Y < v0.Y {
		v0, v1 = v1, v0
	}

	box := rect.Rect{
		LLx: float64(min(v0.X, v1.X, v2.X)),
		LLy: float64(v0.Y),
		URx: float64(max(v0.X, v1.X, v2.X)),
		URy: float64(v2.Y),
	}
	xMin := max(int(box.LLx), 0)
	xMax := min(int(box.URx), t.Width()-1)
	yMin := max(int(box.LLy), 0)
	yMax := min(int(box.URy), t.Height()-1)

	a, b, d := v0.vec2(), v1.vec2(), v2.vec2()
	n0 := vec.Vec2{X: b.Y - d.Y, Y: d.X - b.X}
	n1 := vec.Vec2{X: d.Y - a.Y, Y: a.X - d.X}
	denom := n0.Dot(a.Sub(d))

	for y := yMin; y <= yMax; y++ {
		for x := xMin; x <= xMax; x++ {
			p := vec.Vec2{X: float64(x), Y: float64(y)}.Sub(d)
			e0 := n0.Dot(p)
			e1 := n1.Dot(p)
			e2 := denom - e0 - e1

			// w_i = e_i/denom >= 0 for all i
			if e0*denom >= 0 && e1*denom >= 0 && e2*denom >= 0 {
				line.DrawLine(t, x, y, x, y, c)
			}
		}
	}
}

// DoubleArea returns twice the signed area of the triangle v0, v1, v2.
// The sign depends on the orientation of the vertices.
func DoubleArea(v0, v1, v2 PixelPos) float64 {
	return float64((v1.Y-v2.Y)*(v0.X-v2.X) + (v2.X-v1.X)*(v0.Y-v2.Y))
}

// Weights returns the barycentric weights of p with respect to the
// triangle v0, v1, v2. The weights sum to 1, and all three are
// non-negative if and only if p lies inside the triangle or on its
// boundary. For degenerate triangles ok is false.
func Weights(p, v0, v1, v2 PixelPos) (w [3]float64, ok bool) {
	denom := DoubleArea(v0, v1, v2)
	if math.Abs(denom) < degenerateAreaThreshold {
		return w, false
	}

	d := p.vec2().Sub(v2.vec2())
	w[0] = vec.Vec2{X: float64(v1.Y - v2.Y), Y: float64(v2.X - v1.X)}.Dot(d) / denom
	w[1] = vec.Vec2{X: float64(v2.Y - v0.Y), Y: float64(v0.X - v2.X)}.Dot(d) / denom
	w[2] = 1 - w[0] - w[1]
	return w, true
}

// Scanline fills triangles by tracing the three edges with the line drawer
// and then filling every row from the left-most to the right-most pixel
// visited on that row. Both ends of each span are included.
//
// This is correct for triangles, because every row between the top and
// bottom vertex is bounded by the traced edges. It is not a general
// polygon fill and must not be used for concave or self-intersecting
// shapes.
//
// The zero value is ready to use. Internal buffers are reused between
// calls; a Scanline is not safe for concurrent use.
type Scanline struct {
	yMin    int
	rowXMin []int // per-row minimum x visited by an edge
	rowXMax []int // per-row maximum x visited by an edge
}

// FillTriangle implements the FillStrategy interface.
func (s *Scanline) FillTriangle(t Target, line LineDrawer, v0, v1, v2 PixelPos, c RGBA) {
	s.yMin = min(v0.Y, v1.Y, v2.Y)
	height := max(v0.Y, v1.Y, v2.Y) - s.yMin + 1

	s.rowXMin = slices.Grow(s.rowXMin[:0], height)[:height]
	s.rowXMax = slices.Grow(s.rowXMax[:0], height)[:height]
	for i := range height {
		s.rowXMin[i] = math.MaxInt
		s.rowXMax[i] = math.MinInt
	}

	rec := &spanRecorder{s: s, w: t.Width(), h: t.Height()}
	line.DrawLine(rec, v0.X, v0.Y, v1.X, v1.Y, c)
	line.DrawLine(rec, v1.X, v1.Y, v2.X, v2.Y, c)
	line.DrawLine(rec, v2.X, v2.Y, v0.X, v0.Y, c)

	w, h := t.Width(), t.Height()
	for row := range height {
		y := s.yMin + row
		if y < 0 || y >= h {
			continue
		}
		xMin := max(s.rowXMin[row], 0)
		xMax := min(s.rowXMax[row], w-1)
		if xMin > xMax {
			continue
		}
		line.DrawLine(t, xMin, y, xMax, y, c)
	}
}

// spanRecorder is a Target which records the horizontal extent of the
// pixels written on each row, instead of storing colors.
// Unlike normal targets it accepts positions outside the target area,
// so that rows partially off screen still get correct span ends.
type spanRecorder struct {
	s    *Scanline
	w, h int
}

func (r *spanRecorder) Width() int     { return r.w }
func (r *spanRecorder) Height() int    { return r.h }
func (r *spanRecorder) Present() error { return nil }

func (r *spanRecorder) Set(x, y int, _ RGBA) {
	row := y - r.s.yMin
	if row < 0 || row >= len(r.s.rowXMin) {
		return
	}
	r.s.rowXMin[row] = min(r.s.rowXMin[row], x)
	r.s.rowXMax[row] = max(r.s.rowXMax[row], x)
}

// FillStrategyByName returns the fill algorithm with the given name.
// Valid names are "barycentric" and "scanline".
func FillStrategyByName(name string) (FillStrategy, error) {
	switch name {
	case "barycentric", "":
		return Barycentric{}, nil
	case "scanline":
		return &Scanline{}, nil
	default:
		return nil, fmt.Errorf("unknown fill algorithm %q", name)
	}
}

// Numerical tolerances for the rasterizers.
const (
	// degenerateAreaThreshold is the magnitude of the signed double area
	// below which a triangle is considered degenerate. Vertices are on
	// the integer grid, so any non-degenerate triangle has |area| >= 1.
	degenerateAreaThreshold = 0x1p-52
)
