package render

import "errors"

// memTarget is a minimal in-memory target for tests.
type memTarget struct {
	w, h      int
	pix       map[PixelPos]RGBA
	sets      int // calls to Set, including out-of-bounds ones
	presented int
	err       error // returned by Present
}

func newMemTarget(w, h int) *memTarget {
	return &memTarget{w: w, h: h, pix: make(map[PixelPos]RGBA)}
}

func (t *memTarget) Width() int  { return t.w }
func (t *memTarget) Height() int { return t.h }

func (t *memTarget) Set(x, y int, c RGBA) {
	t.sets++
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return
	}
	t.pix[PixelPos{x, y}] = c
}

func (t *memTarget) Present() error {
	t.presented++
	return t.err
}

func (t *memTarget) Clear(RGBA) {
	clear(t.pix)
}

// windowTarget is an interactive memTarget which closes after a fixed
// number of frames.
type windowTarget struct {
	*memTarget
	framesLeft int
}

func (t *windowTarget) Present() error {
	t.framesLeft--
	return t.memTarget.Present()
}

func (t *windowTarget) IsOpen() bool {
	return t.framesLeft > 0
}

// lineCall records the arguments of a DrawLine call.
type lineCall struct {
	x0, y0, x1, y1 int
}

// lineRecorder is a LineDrawer which records its calls and then draws
// the line with Bresenham's algorithm.
type lineRecorder struct {
	calls []lineCall
}

func (l *lineRecorder) DrawLine(t Target, x0, y0, x1, y1 int, c RGBA) {
	l.calls = append(l.calls, lineCall{x0, y0, x1, y1})
	Bresenham{}.DrawLine(t, x0, y0, x1, y1, c)
}

// pixelSet collects the pixels written by a single drawing operation.
func pixelSet(w, h int, draw func(t Target)) map[PixelPos]bool {
	t := newMemTarget(w, h)
	draw(t)
	res := make(map[PixelPos]bool, len(t.pix))
	for p := range t.pix {
		res[p] = true
	}
	return res
}

var errPresent = errors.New("device lost")

var _ Interactive = (*windowTarget)(nil)
