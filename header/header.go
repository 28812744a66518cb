// Package header implements the one-pass structural index of a GIF
// container: HeaderScanner walks a cursor.Cursor exactly once and
// produces an immutable GifInfo recording canvas size, color tables, the
// single active graphics-control extension, and the byte offset of every
// image block.
package header

import "tinygo.org/x/gif/cursor"

// block labels, per the GIF 87a/89a grammar.
const (
	blockImage     = 0x2C
	blockExtension = 0x21
	blockTrailer   = 0x3B
)

// extension labels.
const (
	extGraphicsControl = 0xF9
	extApplication     = 0xFF
	extComment         = 0xFE
	extPlainText       = 0x01
)

// inlineImageOffsets is the number of image-block offsets GifInfo stores
// without spilling to a heap-allocated slice — spec.md §5 and §9 suggest
// 128 as large enough for "typical short animations".
const inlineImageOffsets = 128

// GifInfo is the immutable structural index produced by Scan. Once
// built it never changes: FrameStreamer only ever reads from it.
type GifInfo struct {
	Width, Height int

	globalTable *ColorTable
	control     *GraphicsControl

	offsetsInline   [inlineImageOffsets]int
	offsetsInlineN  int
	offsetsOverflow []int
}

// NumImages returns the number of image blocks recorded during the scan.
func (g *GifInfo) NumImages() int {
	return g.offsetsInlineN + len(g.offsetsOverflow)
}

// ImageOffset returns the absolute byte offset of the i'th image block's
// local image descriptor (the byte following its 0x2C label).
func (g *GifInfo) ImageOffset(i int) (int, bool) {
	if i < 0 || i >= g.NumImages() {
		return 0, false
	}
	if i < g.offsetsInlineN {
		return g.offsetsInline[i], true
	}
	return g.offsetsOverflow[i-g.offsetsInlineN], true
}

func (g *GifInfo) pushImageOffset(offset int) {
	if g.offsetsInlineN < inlineImageOffsets {
		g.offsetsInline[g.offsetsInlineN] = offset
		g.offsetsInlineN++
		return
	}
	g.offsetsOverflow = append(g.offsetsOverflow, offset)
}

// GlobalTable returns the global color table and whether one was
// present in the source.
func (g *GifInfo) GlobalTable() (*ColorTable, bool) {
	if g.globalTable == nil {
		return nil, false
	}
	return g.globalTable, true
}

// GraphicsControl returns the single active graphics-control extension
// (the latest one seen), if any was present.
func (g *GifInfo) GraphicsControl() (*GraphicsControl, bool) {
	if g.control == nil {
		return nil, false
	}
	return g.control, true
}

// DelayMS returns the frame delay implied by the graphics-control
// extension, or header.DefaultDelayMS when none was present.
func (g *GifInfo) DelayMS() int {
	if g.control == nil {
		return DefaultDelayMS
	}
	return g.control.DelayMS()
}

var gif87aMagic = []byte("GIF87a")
var gif89aMagic = []byte("GIF89a")

// Scan consumes cur exactly once, from its current offset, and produces
// a GifInfo. On success cur has been advanced past the trailer (0x3B);
// on failure cur's position is undefined and must not be reused.
func Scan(cur *cursor.Cursor) (*GifInfo, error) {
	var magic [6]byte
	if err := cur.TakeBytes(magic[:]); err != nil {
		return nil, wrapCursorErr("magic", err)
	}
	if !cursor.Equal(magic[:], gif87aMagic) && !cursor.Equal(magic[:], gif89aMagic) {
		return nil, wrapCursorErr("magic", ErrBadGifFile)
	}

	width, err := cur.TakeU16LE()
	if err != nil {
		return nil, wrapCursorErr("canvas width", err)
	}
	height, err := cur.TakeU16LE()
	if err != nil {
		return nil, wrapCursorErr("canvas height", err)
	}

	packed, err := cur.TakeByte()
	if err != nil {
		return nil, wrapCursorErr("logical screen descriptor", err)
	}
	hasGlobalTable := packed&0x80 == 0x80

	// Two unconditional bytes follow the packed field before the global
	// table (if any) or the first block: background color index, then
	// pixel aspect ratio. See SPEC_FULL.md §4.1–4.5 for why this reading
	// (rather than conditionally skipping one byte) is the one this
	// implementation uses.
	if _, err := cur.TakeByte(); err != nil { // background color index
		return nil, wrapCursorErr("background color index", err)
	}
	if _, err := cur.TakeByte(); err != nil { // pixel aspect ratio
		return nil, wrapCursorErr("pixel aspect ratio", err)
	}

	info := &GifInfo{Width: int(width), Height: int(height)}

	if hasGlobalTable {
		n := 1 << ((packed & 0x07) + 1)
		table, err := parseColorTable(cur, n)
		if err != nil {
			return nil, err
		}
		info.globalTable = &table
	}

	for {
		label, err := cur.TakeByte()
		if err != nil {
			return nil, wrapCursorErr("block label", err)
		}
		switch label {
		case blockImage:
			info.pushImageOffset(cur.Offset())
			if _, err := parseLocalImageDescriptor(cur); err != nil {
				return nil, err
			}
			if err := skipImageData(cur); err != nil {
				return nil, err
			}

		case blockExtension:
			extLabel, err := cur.TakeByte()
			if err != nil {
				return nil, wrapCursorErr("extension label", err)
			}
			switch extLabel {
			case extGraphicsControl:
				ctrl, err := parseGraphicsControl(cur)
				if err != nil {
					return nil, err
				}
				info.control = &ctrl
			case extApplication, extComment, extPlainText:
				if err := skipSubBlocks(cur); err != nil {
					return nil, err
				}
			default:
				return nil, wrapCursorErr("extension label", ErrIncorrectExtension)
			}

		case blockTrailer:
			return info, nil

		default:
			return nil, wrapCursorErr("block label", ErrIncorrectBlockLabel)
		}
	}
}

// FrameColorTable picks the effective color table for a frame: the
// descriptor's local table if present, otherwise the source's global
// table. Returns ok=false when neither is present, which spec.md §3
// calls a malformed source.
func (g *GifInfo) FrameColorTable(d *LocalImageDescriptor) (*ColorTable, bool) {
	if t, ok := d.ColorTable(); ok {
		return t, true
	}
	return g.GlobalTable()
}
