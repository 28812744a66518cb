package display

import (
	"tinygo.org/x/gif/header"
	"tinygo.org/x/gif/waveshare-epd/epd2in66b"
)

// EPaperTarget adapts an epd2in66b.Device to Target. The panel only
// refreshes a handful of times a second at best, so Display's caller
// (display.Play) ends up gating GIF playback to the panel's own pace
// rather than the source's declared delay — fine for a status display,
// wrong for anything meant to look like smooth animation.
type EPaperTarget struct {
	panel epd2in66b.Device
}

// NewEPaperTarget wraps an already-configured epd2in66b.Device.
func NewEPaperTarget(panel epd2in66b.Device) *EPaperTarget {
	return &EPaperTarget{panel: panel}
}

func (t *EPaperTarget) Size() (width, height int) {
	w, h := t.panel.Size()
	return int(w), int(h)
}

func (t *EPaperTarget) SetPixel(x, y int, c header.RGB565) {
	t.panel.SetPixel(int16(x), int16(y), c)
}

func (t *EPaperTarget) Display() error {
	return t.panel.Display()
}
