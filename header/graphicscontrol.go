package header

import "tinygo.org/x/gif/cursor"

// GraphicsControl holds the single graphics-control extension active for
// a GIF — per spec.md §3, only the latest one seen during the header
// scan is kept.
type GraphicsControl struct {
	ctrl           byte
	transparentIdx byte
	delayHundreds  uint16
}

// DefaultDelayMS is used by FrameStreamer when a source carries no
// graphics-control extension at all.
const DefaultDelayMS = 50

// DelayMS returns the frame delay in milliseconds (raw hundredths × 10).
func (g *GraphicsControl) DelayMS() int {
	return int(g.delayHundreds) * 10
}

// TransparentIndex returns the transparent palette index and whether the
// transparent-color flag is set. The core does not mask against it
// (spec.md §1 Non-goals); it is exposed for an integrating layer that
// wants to.
func (g *GraphicsControl) TransparentIndex() (idx byte, ok bool) {
	return g.transparentIdx, g.ctrl&0x01 == 0x01
}

// DisposalMethod returns the 3-bit disposal method field. spec.md §9
// flags a sibling implementation that masks with 0x02 after the shift,
// which fails to isolate the 3-bit field; the correct mask is 0x07.
func (g *GraphicsControl) DisposalMethod() byte {
	return (g.ctrl >> 2) & 0x07
}

// parseGraphicsControl reads a Graphics Control Extension body, assuming
// the 0x21 0xF9 block/extension label bytes have already been consumed.
func parseGraphicsControl(cur *cursor.Cursor) (GraphicsControl, error) {
	var g GraphicsControl

	blockSize, err := cur.TakeByte()
	if err != nil {
		return g, wrapCursorErr("graphics control size", err)
	}
	_ = blockSize // tolerated even when != 4, per spec.md §4.2

	ctrl, err := cur.TakeByte()
	if err != nil {
		return g, wrapCursorErr("graphics control flags", err)
	}
	g.ctrl = ctrl

	delay, err := cur.TakeU16LE()
	if err != nil {
		return g, wrapCursorErr("graphics control delay", err)
	}
	g.delayHundreds = delay

	idx, err := cur.TakeByte()
	if err != nil {
		return g, wrapCursorErr("graphics control transparent index", err)
	}
	g.transparentIdx = idx

	if _, err := cur.TakeByte(); err != nil { // terminator, must be 0
		return g, wrapCursorErr("graphics control terminator", err)
	}
	return g, nil
}
