package gif

import (
	"tinygo.org/x/gif/cursor"
	"tinygo.org/x/gif/header"
	"tinygo.org/x/gif/lzw"
)

// decodeState names the states of the FrameDecoder's refill state
// machine (spec.md §4.5).
type decodeState uint8

const (
	stateNewSubBlock decodeState = iota
	stateProcessingSubBlock
	stateBlockDone
	stateFrameDone
)

// blockBufferCap is the largest a single GIF data sub-block can be.
const blockBufferCap = 255

// pixelBufferCap bounds the FrameDecoder's translated-pixel output
// buffer; spec.md §5 sizes it at 512 entries to comfortably absorb a
// 256-byte LZW decode step.
const pixelBufferCap = 512

// lzwStagingCap is the scratch region each LZW decode step writes raw
// color-table indexes into, before they are translated to RGB565 and
// copied into the pixel buffer.
const lzwStagingCap = 256

// FrameDecoder is a per-frame pixel producer. It owns a cloned cursor
// positioned at the frame's LZW data, its own copy of the frame's
// descriptor and effective color table, a fixed 255-byte sub-block
// reassembly buffer, a fixed 512-entry RGB565 pixel buffer, and an LZW
// decoder — no heap allocation happens after construction. The
// descriptor and color table are copied out of the FrameStreamer at
// construction time rather than referenced by pointer, because the
// streamer overwrites its own copies in place on every seek; a decoder
// that outlives the next SeekToNextFrame/NextFrame call must not see
// that mutation.
type FrameDecoder struct {
	bytes      cursor.Cursor
	colorTable header.ColorTable
	descriptor header.LocalImageDescriptor
	lzw        *lzw.Decoder

	blockBuf  [blockBufferCap]byte
	blockIdx  int
	blockSize int

	pixelBuf  [pixelBufferCap]header.RGB565
	pixelIdx  int
	pixelSize int

	state decodeState
	err   error
}

func newFrameDecoder(bytes cursor.Cursor, table *header.ColorTable, desc header.LocalImageDescriptor) (*FrameDecoder, error) {
	minCodeSize, err := bytes.TakeByte()
	if err != nil {
		return nil, err
	}
	return &FrameDecoder{
		bytes:      bytes,
		colorTable: *table,
		descriptor: desc,
		lzw:        lzw.New(minCodeSize),
		state:      stateNewSubBlock,
	}, nil
}

// Origin returns the frame's placement within the logical screen.
func (f *FrameDecoder) Origin() (x, y int) {
	return f.descriptor.Left, f.descriptor.Top
}

// Size returns the frame's pixel dimensions.
func (f *FrameDecoder) Size() (width, height int) {
	return f.descriptor.Width, f.descriptor.Height
}

// NumPixels returns width*height — the exact number of pixels Next will
// yield before reporting end-of-frame.
func (f *FrameDecoder) NumPixels() int {
	return f.descriptor.NumPixels()
}

// Done reports whether the frame has been fully decoded.
func (f *FrameDecoder) Done() bool {
	return f.state == stateFrameDone && f.pixelIdx >= f.pixelSize
}

// Err returns the error that terminated decoding early, if any. A
// frame that reaches its natural end (the zero-length terminator
// sub-block) has a nil Err even though Done is true.
func (f *FrameDecoder) Err() error {
	return f.err
}

// Next pulls the next pixel, translated from a color-table index to
// RGB565. ok is false once the frame is exhausted or a malformed source
// has terminated decoding early (see Err).
func (f *FrameDecoder) Next() (header.RGB565, bool) {
	if f.pixelIdx < f.pixelSize {
		px := f.pixelBuf[f.pixelIdx]
		f.pixelIdx++
		return px, true
	}

	for {
		if f.state == stateFrameDone {
			return 0, false
		}

		if f.state == stateNewSubBlock || f.state == stateBlockDone {
			if err := f.fillBlockBuffer(); err != nil {
				f.fail(err)
				return 0, false
			}
			if f.state == stateFrameDone {
				return 0, false
			}
		}

		var staging [lzwStagingCap]byte
		consumedIn, consumedOut, status, err := f.lzw.Decode(f.blockBuf[f.blockIdx:f.blockSize], staging[:])
		if err != nil {
			f.fail(err)
			return 0, false
		}
		f.blockIdx += consumedIn

		switch status {
		case lzw.StatusOk:
			f.state = stateProcessingSubBlock
		case lzw.StatusNoProgress, lzw.StatusDone:
			f.state = stateBlockDone
		}

		if consumedOut > 0 {
			for i := 0; i < consumedOut; i++ {
				px, ok := f.colorTable.At(int(staging[i]))
				if !ok {
					f.fail(header.ErrBadGifFile)
					return 0, false
				}
				f.pixelBuf[i] = px
			}
			f.pixelSize = consumedOut
			f.pixelIdx = 1
			return f.pixelBuf[0], true
		}

		if status == lzw.StatusDone {
			f.state = stateFrameDone
			return 0, false
		}
	}
}

func (f *FrameDecoder) fail(err error) {
	f.err = err
	f.state = stateFrameDone
}

// fillBlockBuffer reads the next length-prefixed data sub-block into
// blockBuf, or transitions to stateFrameDone on the zero-length
// terminator (spec.md §4.5).
func (f *FrameDecoder) fillBlockBuffer() error {
	n, err := f.bytes.TakeByte()
	if err != nil {
		return err
	}
	if n == 0 {
		f.state = stateFrameDone
		return nil
	}
	if err := f.bytes.TakeBytes(f.blockBuf[:n]); err != nil {
		return err
	}
	f.blockIdx = 0
	f.blockSize = int(n)
	f.state = stateNewSubBlock
	return nil
}
