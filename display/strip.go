package display

import (
	"tinygo.org/x/gif/header"
	"tinygo.org/x/gif/ws2812"
)

// StripTarget adapts a ws2812.Device — a single addressable LED strip —
// into a 2-D Target by laying the canvas out in serpentine order: even
// rows run left to right, odd rows run right to left, matching how most
// LED matrix panels are wired so adjacent pixels are adjacent LEDs.
type StripTarget struct {
	strip  ws2812.Device
	width  int
	height int
	pixels []header.RGB565
	row    []header.RGB565
}

// NewStripTarget returns a StripTarget driving strip, which must already
// be wired for a width*height matrix.
func NewStripTarget(strip ws2812.Device, width, height int) *StripTarget {
	return &StripTarget{
		strip:  strip,
		width:  width,
		height: height,
		pixels: make([]header.RGB565, width*height),
		row:    make([]header.RGB565, width),
	}
}

func (t *StripTarget) Size() (width, height int) {
	return t.width, t.height
}

func (t *StripTarget) SetPixel(x, y int, c header.RGB565) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	t.pixels[y*t.width+x] = c
}

// Display flushes the buffered frame to the strip in serpentine order.
func (t *StripTarget) Display() error {
	for y := 0; y < t.height; y++ {
		copy(t.row, t.pixels[y*t.width:(y+1)*t.width])
		if y%2 == 1 {
			for l, r := 0, len(t.row)-1; l < r; l, r = l+1, r-1 {
				t.row[l], t.row[r] = t.row[r], t.row[l]
			}
		}
		if err := t.strip.WritePixels(t.row); err != nil {
			return err
		}
	}
	return nil
}
