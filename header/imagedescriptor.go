package header

import "tinygo.org/x/gif/cursor"

// LocalImageDescriptor is the per-frame placement and palette record
// parsed from the 9 bytes (8 bytes of position and size + packed field)
// following a 0x2C image block label, plus an optional local color table.
type LocalImageDescriptor struct {
	Left, Top     int
	Width, Height int
	Interlaced    bool

	hasLocalTable bool
	localTable    ColorTable
}

// ColorTable returns the frame's effective color table: the local table
// if this frame carries one, otherwise ok is false and the caller (the
// FrameStreamer) must fall back to the global table.
func (d *LocalImageDescriptor) ColorTable() (*ColorTable, bool) {
	if !d.hasLocalTable {
		return nil, false
	}
	return &d.localTable, true
}

// NumPixels returns width*height, the exact pixel count a FrameDecoder
// for this descriptor must yield (spec.md §3 invariant).
func (d *LocalImageDescriptor) NumPixels() int {
	return d.Width * d.Height
}

// ParseFrameDescriptor reads a LocalImageDescriptor from cur, positioned
// just after a 0x2C image block label — the exact offset GifInfo
// records for each frame. Exported for FrameStreamer, which needs to
// re-parse the descriptor every time it seeks to a frame (the
// HeaderScanner does not keep them around).
func ParseFrameDescriptor(cur *cursor.Cursor) (LocalImageDescriptor, error) {
	return parseLocalImageDescriptor(cur)
}

// parseLocalImageDescriptor reads left/top/width/height and the packed
// field, then the local color table if the packed field's high bit is
// set. Assumes the 0x2C label byte has already been consumed, so cur is
// positioned at the first byte of the descriptor — the offset the
// HeaderScanner records and GifInfo.ImageOffset returns.
func parseLocalImageDescriptor(cur *cursor.Cursor) (LocalImageDescriptor, error) {
	var d LocalImageDescriptor

	left, err := cur.TakeU16LE()
	if err != nil {
		return d, wrapCursorErr("image descriptor left", err)
	}
	top, err := cur.TakeU16LE()
	if err != nil {
		return d, wrapCursorErr("image descriptor top", err)
	}
	width, err := cur.TakeU16LE()
	if err != nil {
		return d, wrapCursorErr("image descriptor width", err)
	}
	height, err := cur.TakeU16LE()
	if err != nil {
		return d, wrapCursorErr("image descriptor height", err)
	}
	packed, err := cur.TakeByte()
	if err != nil {
		return d, wrapCursorErr("image descriptor packed field", err)
	}

	d.Left, d.Top = int(left), int(top)
	d.Width, d.Height = int(width), int(height)
	d.Interlaced = packed&0x40 == 0x40

	if packed&0x80 == 0x80 {
		// Entry count from the low 3 bits, matching the global-table
		// convention — see SPEC_FULL.md §4.1–4.5 for why this reading
		// (rather than bits 4-6) is the one this implementation uses.
		n := 1 << ((packed & 0x07) + 1)
		table, err := parseColorTable(cur, n)
		if err != nil {
			return d, err
		}
		d.localTable = table
		d.hasLocalTable = true
	}

	return d, nil
}

// skipImageData walks the LZW-minimum-code-size byte and the chained
// data sub-blocks of an image, leaving cur positioned at the next block
// label. Used by the HeaderScanner, which only needs to find block
// offsets and does not decode pixels.
func skipImageData(cur *cursor.Cursor) error {
	if _, err := cur.TakeByte(); err != nil { // LZW minimum code size
		return wrapCursorErr("lzw min code size", err)
	}
	return skipSubBlocks(cur)
}

// skipSubBlocks walks a length-prefixed sub-block chain to its zero
// terminator, discarding the payload. Shared by image-data skipping and
// unrecognized-extension skipping (spec.md §4.2 step 6).
func skipSubBlocks(cur *cursor.Cursor) error {
	for {
		n, err := cur.TakeByte()
		if err != nil {
			return wrapCursorErr("sub-block length", err)
		}
		if n == 0 {
			return nil
		}
		if err := cur.Skip(int(n)); err != nil {
			return wrapCursorErr("sub-block data", err)
		}
	}
}
