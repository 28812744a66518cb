// Package cursor implements a cloneable, seekable byte-oriented view over
// an in-memory GIF source.
//
// A Cursor never copies the backing slice: cloning duplicates only the
// slice header and the position, so the header scan, the FrameStreamer
// and every gif.FrameDecoder it spawns can each hold an independent read
// position over the same bytes with no extra allocation.
package cursor

import "golang.org/x/xerrors"

// ErrUnexpectedEOF is returned whenever a read or forward seek runs past
// the end of the source.
var ErrUnexpectedEOF = xerrors.New("cursor: unexpected EOF")

// Cursor is a value type: copying it (assignment, passing by value)
// yields an independent cursor over the same backing bytes.
type Cursor struct {
	src []byte
	pos int
}

// New wraps src for reading, starting at offset 0.
func New(src []byte) Cursor {
	return Cursor{src: src}
}

// Clone returns an independent cursor over the same backing bytes at the
// current offset. Equivalent to a value copy; provided for readability at
// call sites that want to make the independence explicit.
func (c Cursor) Clone() Cursor {
	return c
}

// Offset returns the current absolute byte offset.
func (c Cursor) Offset() int {
	return c.pos
}

// Len returns the number of bytes remaining after the current offset.
func (c Cursor) Len() int {
	return len(c.src) - c.pos
}

// TakeByte reads and consumes one byte.
func (c *Cursor) TakeByte() (byte, error) {
	if c.pos >= len(c.src) {
		return 0, ErrUnexpectedEOF
	}
	b := c.src[c.pos]
	c.pos++
	return b, nil
}

// TakeU16LE reads and consumes a little-endian uint16.
func (c *Cursor) TakeU16LE() (uint16, error) {
	if c.pos+2 > len(c.src) {
		return 0, ErrUnexpectedEOF
	}
	v := uint16(c.src[c.pos]) | uint16(c.src[c.pos+1])<<8
	c.pos += 2
	return v, nil
}

// TakeBytes reads exactly n bytes into dst and consumes them. dst must
// have length n; the caller owns dst's backing storage, so no allocation
// happens here.
func (c *Cursor) TakeBytes(dst []byte) error {
	if c.pos+len(dst) > len(c.src) {
		return ErrUnexpectedEOF
	}
	copy(dst, c.src[c.pos:c.pos+len(dst)])
	c.pos += len(dst)
	return nil
}

// Peek returns the next n bytes without consuming them. The returned
// slice aliases the backing source and must not be retained past the
// next mutating call on c's source.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if c.pos+n > len(c.src) {
		return nil, ErrUnexpectedEOF
	}
	return c.src[c.pos : c.pos+n], nil
}

// Skip advances the cursor by n bytes without reading them.
func (c *Cursor) Skip(n int) error {
	if c.pos+n > len(c.src) {
		return ErrUnexpectedEOF
	}
	c.pos += n
	return nil
}

// SeekTo repositions the cursor to an absolute offset, forward or
// backward. Forward movement past the end of the source fails with
// ErrUnexpectedEOF; any backward movement within [0, len(src)] succeeds.
func (c *Cursor) SeekTo(offset int) error {
	if offset < 0 || offset > len(c.src) {
		return ErrUnexpectedEOF
	}
	c.pos = offset
	return nil
}

// Equal reports whether a and b hold the same bytes, without
// allocating. Adapted from the Rabin-Karp helper's sibling `equal` in
// tinygo.org/x/drivers/enc28j60, which exists for the same reason: avoid
// pulling in the `bytes` package on a target that may not want it.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}
