package gif_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	qt "github.com/frankban/quicktest"
	gif "tinygo.org/x/gif"
	"tinygo.org/x/gif/header"
)

// minimalNoImages is spec.md §8 scenario 1: a minimal 87a source with no
// image blocks.
func minimalNoImages() []byte {
	return []byte{
		'G', 'I', 'F', '8', '7', 'a',
		0x01, 0x00,
		0x01, 0x00,
		0x00,
		0x00,
		0x00,
		0x3B,
	}
}

func TestNewFrameStreamerNoImages(t *testing.T) {
	c := qt.New(t)
	s, err := gif.NewFrameStreamer(minimalNoImages())
	c.Assert(err, qt.IsNil)
	c.Assert(s.NumFrames(), qt.Equals, 0)
	c.Assert(s.DelayMS(), qt.Equals, 50)
}

// singleWhitePixelGIF is spec.md §8 scenario 2.
func singleWhitePixelGIF() []byte {
	return []byte{
		'G', 'I', 'F', '8', '9', 'a',
		0x01, 0x00,
		0x01, 0x00,
		0x80,
		0x00,
		0x00,
		0x00, 0x00, 0x00,
		0xFF, 0xFF, 0xFF,
		0x2C,
		0x00, 0x00,
		0x00, 0x00,
		0x01, 0x00,
		0x01, 0x00,
		0x00,
		0x02,
		0x02,
		0x4C, 0x01, // LZW data: clear, literal 1 (white), end
		0x00,
		0x3B,
	}
}

func TestSingleFrameSinglePixel(t *testing.T) {
	c := qt.New(t)
	s, err := gif.NewFrameStreamer(singleWhitePixelGIF())
	c.Assert(err, qt.IsNil)
	c.Assert(s.NumFrames(), qt.Equals, 1)

	frame, err := s.NextFrame()
	c.Assert(err, qt.IsNil)
	c.Assert(frame.NumPixels(), qt.Equals, 1)

	px, ok := frame.Next()
	c.Assert(ok, qt.IsTrue)
	c.Assert(px, qt.Equals, header.RGB565(0xFFFF))

	_, ok = frame.Next()
	c.Assert(ok, qt.IsFalse)
	c.Assert(frame.Err(), qt.IsNil)
}

// twoFrameAnimation is spec.md §8 scenario 3: two 1x1 frames with a
// graphics-control delay of 9 hundredths (90ms).
func twoFrameAnimation() []byte {
	return []byte{
		'G', 'I', 'F', '8', '9', 'a',
		0x01, 0x00,
		0x01, 0x00,
		0x80,
		0x00,
		0x00,
		0x00, 0x00, 0x00,
		0xFF, 0xFF, 0xFF,

		0x21, 0xF9,
		0x04,
		0x00,
		0x09, 0x00,
		0x00,
		0x00,

		0x2C,
		0x00, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x01, 0x00,
		0x00,
		0x02,
		0x02, 0x4C, 0x01, // clear, literal 1 (white), end
		0x00,

		0x2C,
		0x00, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x01, 0x00,
		0x00,
		0x02,
		0x02, 0x44, 0x01, // clear, literal 0 (black), end
		0x00,

		0x3B,
	}
}

func TestTwoFrameAnimationDelay(t *testing.T) {
	c := qt.New(t)
	s, err := gif.NewFrameStreamer(twoFrameAnimation())
	c.Assert(err, qt.IsNil)
	c.Assert(s.NumFrames(), qt.Equals, 2)
	c.Assert(s.DelayMS(), qt.Equals, 90)

	for i := 0; i < 2; i++ {
		frame, err := s.NextFrame()
		c.Assert(err, qt.IsNil)
		count := 0
		for {
			if _, ok := frame.Next(); !ok {
				break
			}
			count++
		}
		c.Assert(count, qt.Equals, frame.NumPixels())
		c.Assert(frame.Err(), qt.IsNil)
	}
}

func TestWrapAround(t *testing.T) {
	c := qt.New(t)
	s, err := gif.NewFrameStreamer(twoFrameAnimation())
	c.Assert(err, qt.IsNil)

	// twoFrameAnimation's frames alternate white, black; after NumFrames
	// calls to NextFrame, playback must wrap back to the first frame.
	want := []header.RGB565{0xFFFF, 0x0000, 0xFFFF}
	for _, w := range want {
		frame, err := s.NextFrame()
		c.Assert(err, qt.IsNil)
		px, ok := frame.Next()
		c.Assert(ok, qt.IsTrue)
		c.Assert(px, qt.Equals, w)
	}
}

func TestResetReplaysIdentically(t *testing.T) {
	c := qt.New(t)
	s, err := gif.NewFrameStreamer(twoFrameAnimation())
	c.Assert(err, qt.IsNil)

	first := collectAllFrames(c, s, 2)

	c.Assert(s.Reset(), qt.IsNil)
	second := collectAllFrames(c, s, 2)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("replay after Reset produced different pixels (-first +second):\n%s", diff)
	}
}

func collectAllFrames(c *qt.C, s *gif.FrameStreamer, n int) [][]header.RGB565 {
	var out [][]header.RGB565
	for i := 0; i < n; i++ {
		frame, err := s.NextFrame()
		c.Assert(err, qt.IsNil)
		var pixels []header.RGB565
		for {
			px, ok := frame.Next()
			if !ok {
				break
			}
			pixels = append(pixels, px)
		}
		out = append(out, pixels)
	}
	return out
}

// localColorTableGIF is spec.md §8's "frame with a local color table"
// scenario: the global table's first entry is white, the local table's
// first entry is black, and the frame's single pixel must come from the
// local table.
func localColorTableGIF() []byte {
	return []byte{
		'G', 'I', 'F', '8', '9', 'a',
		0x01, 0x00,
		0x01, 0x00,
		0x80,
		0x00,
		0x00,
		0xFF, 0xFF, 0xFF, // global[0] = white
		0x00, 0x00, 0x00, // global[1] = black

		0x2C,
		0x00, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x01, 0x00,
		0x80,             // packed: local table present, 2 entries
		0x00, 0x00, 0x00, // local[0] = black
		0xFF, 0xFF, 0xFF, // local[1] = white
		0x02,
		0x02, 0x44, 0x01, // clear, literal 0 (local black), end
		0x00,

		0x3B,
	}
}

func TestLocalColorTableOverridesGlobal(t *testing.T) {
	c := qt.New(t)
	s, err := gif.NewFrameStreamer(localColorTableGIF())
	c.Assert(err, qt.IsNil)

	frame, err := s.NextFrame()
	c.Assert(err, qt.IsNil)

	px, ok := frame.Next()
	c.Assert(ok, qt.IsTrue)
	c.Assert(px, qt.Equals, header.RGB565(0x0000)) // local table's black, not global's white
}
