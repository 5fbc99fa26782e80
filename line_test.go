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
	"math/rand/v2"
	"testing"
)

var lineAlgorithms = []struct {
	name string
	ld   LineDrawer
}{
	{"bresenham", Bresenham{}},
	{"float", FloatLine{}},
}

func testSegments() [][4]int {
	segs := [][4]int{
		{0, 0, 0, 0},
		{0, 0, 10, 0},
		{0, 0, 0, 10},
		{0, 0, 10, 10},
		{0, 0, 10, -10},
		{3, 7, 12, 9},
		{12, 9, 3, 7},
		{5, 5, 6, 20},
		{20, 1, 1, 2},
		{-5, -5, 25, 12},
		{400, 600, 600, 200},
		{600, 200, 200, 200},
		{200, 200, 400, 600},
	}
	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		segs = append(segs, [4]int{
			rng.IntN(64), rng.IntN(64), rng.IntN(64), rng.IntN(64),
		})
	}
	return segs
}

func TestLineSymmetry(t *testing.T) {
	for _, alg := range lineAlgorithms {
		t.Run(alg.name, func(t *testing.T) {
			for _, s := range testSegments() {
				fwd := pixelSet(1000, 1000, func(tgt Target) {
					alg.ld.DrawLine(tgt, s[0], s[1], s[2], s[3], White)
				})
				rev := pixelSet(1000, 1000, func(tgt Target) {
					alg.ld.DrawLine(tgt, s[2], s[3], s[0], s[1], White)
				})
				if len(fwd) != len(rev) {
					t.Fatalf("%v: %d pixels forward, %d reversed", s, len(fwd), len(rev))
				}
				for p := range fwd {
					if !rev[p] {
						t.Fatalf("%v: pixel %v missing in reversed line", s, p)
					}
				}
			}
		})
	}
}

func TestLineEndpointsAndLength(t *testing.T) {
	for _, alg := range lineAlgorithms {
		t.Run(alg.name, func(t *testing.T) {
			for _, s := range testSegments() {
				x0, y0, x1, y1 := s[0]+100, s[1]+100, s[2]+100, s[3]+100
				tgt := newMemTarget(1000, 1000)
				alg.ld.DrawLine(tgt, x0, y0, x1, y1, White)

				if _, ok := tgt.pix[PixelPos{x0, y0}]; !ok {
					t.Errorf("%v: start point not drawn", s)
				}
				if _, ok := tgt.pix[PixelPos{x1, y1}]; !ok {
					t.Errorf("%v: end point not drawn", s)
				}

				// one pixel per step along the major axis
				want := max(abs(x1-x0), abs(y1-y0)) + 1
				if tgt.sets != want || len(tgt.pix) != want {
					t.Errorf("%v: %d calls to Set, %d pixels, want %d",
						s, tgt.sets, len(tgt.pix), want)
				}
			}
		})
	}
}

func TestSinglePixelLine(t *testing.T) {
	for _, alg := range lineAlgorithms {
		tgt := newMemTarget(10, 10)
		alg.ld.DrawLine(tgt, 4, 7, 4, 7, Red)
		if len(tgt.pix) != 1 || tgt.pix[PixelPos{4, 7}] != Red {
			t.Errorf("%s: got %v", alg.name, tgt.pix)
		}
	}
}

func TestBresenhamPixels(t *testing.T) {
	tgt := newMemTarget(10, 10)
	Bresenham{}.DrawLine(tgt, 0, 0, 4, 2, White)

	want := []PixelPos{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}}
	if len(tgt.pix) != len(want) {
		t.Fatalf("got %d pixels, want %d", len(tgt.pix), len(want))
	}
	for _, p := range want {
		if _, ok := tgt.pix[p]; !ok {
			t.Errorf("pixel %v not set", p)
		}
	}
}

func TestFloatLineRounding(t *testing.T) {
	tgt := newMemTarget(10, 10)
	FloatLine{}.DrawLine(tgt, 0, 0, 4, 2, White)

	// y = x/2, rounded half away from zero
	want := []PixelPos{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}
	for _, p := range want {
		if _, ok := tgt.pix[p]; !ok {
			t.Errorf("pixel %v not set", p)
		}
	}
}

// TestLineAlgorithmsAgree checks that the two line algorithms never differ
// by more than one pixel on the minor axis.
func TestLineAlgorithmsAgree(t *testing.T) {
	for _, s := range testSegments() {
		x0, y0, x1, y1 := s[0]+100, s[1]+100, s[2]+100, s[3]+100
		steep := abs(x1-x0) < abs(y1-y0)

		minor := func(ld LineDrawer) map[int]int {
			tgt := newMemTarget(1000, 1000)
			ld.DrawLine(tgt, x0, y0, x1, y1, White)
			res := make(map[int]int)
			for p := range tgt.pix {
				if steep {
					res[p.Y] = p.X
				} else {
					res[p.X] = p.Y
				}
			}
			return res
		}

		b := minor(Bresenham{})
		f := minor(FloatLine{})
		for major, yb := range b {
			yf, ok := f[major]
			if !ok {
				t.Fatalf("%v: float line has no pixel at %d", s, major)
			}
			if abs(yb-yf) > 1 {
				t.Errorf("%v: at %d, bresenham %d, float %d", s, major, yb, yf)
			}
		}
	}
}

func TestLineOutsideTarget(t *testing.T) {
	for _, alg := range lineAlgorithms {
		tgt := newMemTarget(10, 10)
		alg.ld.DrawLine(tgt, -20, 5, 30, 5, White)
		if len(tgt.pix) != 10 {
			t.Errorf("%s: %d pixels inside the target, want 10", alg.name, len(tgt.pix))
		}
		if tgt.sets != 51 {
			t.Errorf("%s: %d calls to Set, want 51", alg.name, tgt.sets)
		}
	}
}

func TestLineDrawerFunc(t *testing.T) {
	var got lineCall
	ld := LineDrawerFunc(func(_ Target, x0, y0, x1, y1 int, _ RGBA) {
		got = lineCall{x0, y0, x1, y1}
	})
	ld.DrawLine(newMemTarget(1, 1), 1, 2, 3, 4, White)
	if got != (lineCall{1, 2, 3, 4}) {
		t.Errorf("got %v", got)
	}
}

func TestLineDrawerByName(t *testing.T) {
	for _, name := range []string{"", "bresenham", "float"} {
		if _, err := LineDrawerByName(name); err != nil {
			t.Errorf("%q: %v", name, err)
		}
	}
	if _, err := LineDrawerByName("wu"); err == nil {
		t.Error("unknown name accepted")
	}
}
