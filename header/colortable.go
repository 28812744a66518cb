package header

import "tinygo.org/x/gif/cursor"

// RGB565 is a 16-bit packed pixel: 5 bits red, 6 bits green, 5 bits blue.
type RGB565 uint16

// rgb565 truncates 8-bit-per-channel color into RGB565 using the
// standard 8→5/6/5 shift (no rounding, matching the GIF-to-display
// conversion every embedded GIF viewer in the wild uses).
func rgb565(r, g, b byte) RGB565 {
	return RGB565(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b&0xF8)>>3)
}

// RGB expands a packed RGB565 value back to 8-bit-per-channel color, by
// replicating the truncated low bits so white (0x1F, 0x3F, 0x1F) round-trips
// to (0xFF, 0xFF, 0xFF). Display targets that speak 24-bit color (ws2812,
// an HTML canvas) use this; targets that threshold on luminance or hue
// don't need the full round trip.
func (c RGB565) RGB() (r, g, b byte) {
	r5 := byte(c>>11) & 0x1F
	g6 := byte(c>>5) & 0x3F
	b5 := byte(c) & 0x1F
	r = r5<<3 | r5>>2
	g = g6<<2 | g6>>4
	b = b5<<3 | b5>>2
	return r, g, b
}

// maxColorTableEntries is the largest palette a GIF color table field can
// describe (1 << (7+1)).
const maxColorTableEntries = 256

// ColorTable is a fixed-capacity RGB565 palette: inline storage, no heap
// traffic regardless of whether it came from a global or local color
// table. A color table can have at most 256 entries, so it is always
// stack- or struct-embeddable.
type ColorTable struct {
	entries [maxColorTableEntries]RGB565
	n       int
}

// Len returns the number of populated entries.
func (t *ColorTable) Len() int {
	return t.n
}

// At returns the RGB565 value at index idx. ok is false when idx is out
// of range for this table — the caller (FrameDecoder) treats that as a
// malformed source rather than indexing out of bounds.
func (t *ColorTable) At(idx int) (RGB565, bool) {
	if idx < 0 || idx >= t.n {
		return 0, false
	}
	return t.entries[idx], true
}

// parseColorTable reads n RGB triplets from cur and converts each to
// RGB565 in place, with no intermediate allocation.
func parseColorTable(cur *cursor.Cursor, n int) (ColorTable, error) {
	var t ColorTable
	if n > maxColorTableEntries {
		return t, wrapCursorErr("color table", ErrBadGifFile)
	}
	var rgb [3]byte
	for i := 0; i < n; i++ {
		if err := cur.TakeBytes(rgb[:]); err != nil {
			return t, wrapCursorErr("color table entry", err)
		}
		t.entries[i] = rgb565(rgb[0], rgb[1], rgb[2])
	}
	t.n = n
	return t, nil
}
