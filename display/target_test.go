package display_test

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
	"tinygo.org/x/gif/display"
	"tinygo.org/x/gif/header"
)

var errBoom = errors.New("boom")

type fakeFrame struct {
	w, h   int
	pixels []header.RGB565
	idx    int
	err    error
}

func (f *fakeFrame) Size() (int, int)   { return f.w, f.h }
func (f *fakeFrame) Origin() (int, int) { return 0, 0 }
func (f *fakeFrame) Next() (header.RGB565, bool) {
	if f.idx >= len(f.pixels) {
		return 0, false
	}
	px := f.pixels[f.idx]
	f.idx++
	return px, true
}
func (f *fakeFrame) Err() error { return f.err }

// fakeSource serves a single fakeFrame and, once exhausted, closes stop
// itself so Play's test runs stay single-threaded and deterministic
// instead of racing a background goroutine against a timer.
type fakeSource struct {
	frame *fakeFrame
	stop  chan struct{}
	calls int
}

func (s *fakeSource) CanvasSize() (int, int) { return s.frame.w, s.frame.h }
func (s *fakeSource) DelayMS() int           { return 0 }
func (s *fakeSource) NextFrame() (display.FramePixels, error) {
	s.frame.idx = 0
	s.calls++
	if s.calls == 1 {
		// Close stop now so Play's post-Display select sees it closed
		// and returns after exactly one rendered frame, instead of
		// racing a zero-length delay timer for a second iteration.
		close(s.stop)
	}
	return s.frame, s.frame.err
}

type fakeTarget struct {
	width, height int
	written       []header.RGB565
	displayCount  int
}

func (t *fakeTarget) Size() (int, int) { return t.width, t.height }
func (t *fakeTarget) SetPixel(x, y int, c header.RGB565) {
	t.written = append(t.written, c)
}
func (t *fakeTarget) Display() error {
	t.displayCount++
	return nil
}

func TestPlayStopsImmediately(t *testing.T) {
	c := qt.New(t)
	dst := &fakeTarget{width: 1, height: 1}
	stop := make(chan struct{})
	close(stop)
	src := &fakeSource{frame: &fakeFrame{w: 1, h: 1, pixels: []header.RGB565{0xFFFF}}, stop: stop}

	err := display.Play(dst, src, stop)
	c.Assert(err, qt.IsNil)
	c.Assert(dst.displayCount, qt.Equals, 0)
}

func TestPlayRendersFrameThenStops(t *testing.T) {
	c := qt.New(t)
	dst := &fakeTarget{width: 2, height: 1}
	stop := make(chan struct{})
	src := &fakeSource{
		frame: &fakeFrame{w: 2, h: 1, pixels: []header.RGB565{0x0000, 0xFFFF}},
		stop:  stop,
	}

	err := display.Play(dst, src, stop)
	c.Assert(err, qt.IsNil)
	c.Assert(dst.displayCount, qt.Equals, 1)
	c.Assert(dst.written, qt.DeepEquals, []header.RGB565{0x0000, 0xFFFF})
}

func TestPlayPropagatesDecodeError(t *testing.T) {
	c := qt.New(t)
	dst := &fakeTarget{width: 1, height: 1}
	stop := make(chan struct{})
	src := &fakeSource{
		frame: &fakeFrame{w: 1, h: 1, err: errBoom},
		stop:  stop,
	}

	err := display.Play(dst, src, stop)
	c.Assert(err, qt.Equals, errBoom)
}
