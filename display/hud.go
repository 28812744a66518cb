package display

import (
	"image/color"

	"tinygo.org/x/gif/header"
	"tinygo.org/x/tinyfont"
)

// hudColor is the fixed ink color for overlay text: pure white, chosen
// so it reads against any frame content on both the LED strip and the
// e-paper targets (the latter buckets anything this bright to its white
// plane, see epd2in66b.Device.SetPixel).
var hudColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// fontAdapter makes a Target usable as a tinyfont.Displayer: tinyfont
// draws in 16-bit coordinates and 32-bit color, the core speaks RGB565
// in int coordinates, so this is the one place that boundary gets
// crossed.
type fontAdapter struct {
	target Target
	width  int16
	height int16
}

func newFontAdapter(t Target) fontAdapter {
	w, h := t.Size()
	return fontAdapter{target: t, width: int16(w), height: int16(h)}
}

func (a fontAdapter) Size() (x, y int16) { return a.width, a.height }

func (a fontAdapter) SetPixel(x, y int16, c color.RGBA) {
	if c.R == 0 && c.G == 0 && c.B == 0 && c.A == 0 {
		return // tinyfont clears glyph backgrounds by writing transparent black; leave the frame underneath alone
	}
	a.target.SetPixel(int(x), int(y), rgb565From(c))
}

func (a fontAdapter) Display() error { return nil } // DrawHUD's caller flushes via the underlying Target

func rgb565From(c color.RGBA) header.RGB565 {
	return header.RGB565(uint16(c.R&0xF8)<<8 | uint16(c.G&0xFC)<<3 | uint16(c.B&0xF8)>>3)
}

// DrawHUD overlays text (typically a frame counter or delay readout) at
// (x, y) onto a decoded frame already written to dst, using font. Call
// it after the frame's pixels are set and before dst.Display so the
// flush picks up both.
func DrawHUD(dst Target, font *tinyfont.Font, x, y int16, text string) {
	tinyfont.WriteLine(newFontAdapter(dst), font, x, y, text, hudColor)
}
