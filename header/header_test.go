package header_test

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
	"tinygo.org/x/gif/cursor"
	"tinygo.org/x/gif/header"
)

// minimalNoImages builds a minimal 87a source with no images, matching the first
// concrete scenario in spec.md §8.
func minimalNoImages() []byte {
	return []byte{
		'G', 'I', 'F', '8', '7', 'a',
		0x01, 0x00, // width = 1
		0x01, 0x00, // height = 1
		0x00,       // packed: no global color table
		0x00,       // background color index
		0x00,       // pixel aspect ratio
		0x3B,       // trailer
	}
}

func TestScanMinimalNoImages(t *testing.T) {
	c := qt.New(t)
	cur := cursor.New(minimalNoImages())

	info, err := header.Scan(&cur)
	c.Assert(err, qt.IsNil)
	c.Assert(info.NumImages(), qt.Equals, 0)
	c.Assert(info.DelayMS(), qt.Equals, 50)
}

func TestScanBadMagic(t *testing.T) {
	c := qt.New(t)
	src := minimalNoImages()
	src[3] = '9'
	src[4] = '9'
	src[5] = 'z'
	cur := cursor.New(src)

	_, err := header.Scan(&cur)
	c.Assert(errors.Is(err, header.ErrBadGifFile), qt.IsTrue)
}

// singleWhitePixelGIF encodes a 1x1 frame with a 2-color global palette
// (black, white) whose single LZW-encoded symbol selects the white
// entry — spec.md §8 scenario 2.
func singleWhitePixelGIF() []byte {
	return []byte{
		'G', 'I', 'F', '8', '9', 'a',
		0x01, 0x00, // width = 1
		0x01, 0x00, // height = 1
		0x80,       // packed: global table present, 2 entries, 1bpp
		0x00,       // background color index
		0x00,       // pixel aspect ratio
		0x00, 0x00, 0x00, // palette[0] = black
		0xFF, 0xFF, 0xFF, // palette[1] = white
		0x2C,       // image separator
		0x00, 0x00, // left
		0x00, 0x00, // top
		0x01, 0x00, // width
		0x01, 0x00, // height
		0x00,       // packed: no local table, not interlaced
		0x02,       // LZW minimum code size
		0x02,       // sub-block length
		0x4C, 0x01, // LZW data: clear(4), code 1 (white), end(5)
		0x00,       // sub-block terminator
		0x3B,       // trailer
	}
}

func TestScanSingleImage(t *testing.T) {
	c := qt.New(t)
	cur := cursor.New(singleWhitePixelGIF())

	info, err := header.Scan(&cur)
	c.Assert(err, qt.IsNil)
	c.Assert(info.NumImages(), qt.Equals, 1)

	table, ok := info.GlobalTable()
	c.Assert(ok, qt.IsTrue)
	c.Assert(table.Len(), qt.Equals, 2)

	white, ok := table.At(1)
	c.Assert(ok, qt.IsTrue)
	c.Assert(white, qt.Equals, header.RGB565(0xFFFF))
}

func TestGraphicsControlDelay(t *testing.T) {
	c := qt.New(t)
	src := []byte{
		'G', 'I', 'F', '8', '9', 'a',
		0x01, 0x00,
		0x01, 0x00,
		0x00,
		0x00,
		0x00,
		0x21, 0xF9, // graphics control extension
		0x04,       // block size
		0x00,       // flags: no transparency
		0x09, 0x00, // delay = 9 hundredths -> 90ms
		0x00, // transparent index
		0x00, // terminator
		0x3B,
	}
	cur := cursor.New(src)
	info, err := header.Scan(&cur)
	c.Assert(err, qt.IsNil)
	c.Assert(info.DelayMS(), qt.Equals, 90)
}

func TestDisposalMethodMasksThreeBits(t *testing.T) {
	c := qt.New(t)
	src := []byte{
		'G', 'I', 'F', '8', '9', 'a',
		0x01, 0x00,
		0x01, 0x00,
		0x00,
		0x00,
		0x00,
		0x21, 0xF9,
		0x04,
		0b00011100, // disposal method = 0b111 = 7
		0x00, 0x00,
		0x00,
		0x00,
		0x3B,
	}
	cur := cursor.New(src)
	info, err := header.Scan(&cur)
	c.Assert(err, qt.IsNil)
	ctrl, ok := info.GraphicsControl()
	c.Assert(ok, qt.IsTrue)
	c.Assert(ctrl.DisposalMethod(), qt.Equals, byte(7))
}

func TestScanIncorrectBlockLabel(t *testing.T) {
	c := qt.New(t)
	src := minimalNoImages()
	src[len(src)-1] = 0x99 // replace trailer with a bogus label
	cur := cursor.New(src)

	_, err := header.Scan(&cur)
	c.Assert(errors.Is(err, header.ErrIncorrectBlockLabel), qt.IsTrue)
}
