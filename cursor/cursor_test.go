package cursor_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"tinygo.org/x/gif/cursor"
)

func TestTakeByte(t *testing.T) {
	c := qt.New(t)
	cur := cursor.New([]byte{0x01, 0x02, 0x03})

	b, err := cur.TakeByte()
	c.Assert(err, qt.IsNil)
	c.Assert(b, qt.Equals, byte(0x01))
	c.Assert(cur.Offset(), qt.Equals, 1)
}

func TestTakeU16LE(t *testing.T) {
	c := qt.New(t)
	cur := cursor.New([]byte{0x34, 0x12})

	v, err := cur.TakeU16LE()
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint16(0x1234))
}

func TestTakeBytesEOF(t *testing.T) {
	c := qt.New(t)
	cur := cursor.New([]byte{0x01})

	dst := make([]byte, 2)
	err := cur.TakeBytes(dst)
	c.Assert(err, qt.Equals, cursor.ErrUnexpectedEOF)
}

func TestSeekToForwardAndBackward(t *testing.T) {
	c := qt.New(t)
	cur := cursor.New([]byte{0x00, 0x01, 0x02, 0x03, 0x04})

	c.Assert(cur.SeekTo(3), qt.IsNil)
	b, err := cur.TakeByte()
	c.Assert(err, qt.IsNil)
	c.Assert(b, qt.Equals, byte(0x03))

	c.Assert(cur.SeekTo(0), qt.IsNil)
	b, err = cur.TakeByte()
	c.Assert(err, qt.IsNil)
	c.Assert(b, qt.Equals, byte(0x00))
}

func TestSeekPastEndFails(t *testing.T) {
	c := qt.New(t)
	cur := cursor.New([]byte{0x00})
	c.Assert(cur.SeekTo(5), qt.Equals, cursor.ErrUnexpectedEOF)
}

func TestCloneIsIndependent(t *testing.T) {
	c := qt.New(t)
	cur := cursor.New([]byte{0x01, 0x02, 0x03})
	_, _ = cur.TakeByte()

	clone := cur.Clone()
	_, _ = clone.TakeByte()

	c.Assert(cur.Offset(), qt.Equals, 1)
	c.Assert(clone.Offset(), qt.Equals, 2)
}

func TestEqual(t *testing.T) {
	c := qt.New(t)
	c.Assert(cursor.Equal([]byte("GIF89a"), []byte("GIF89a")), qt.IsTrue)
	c.Assert(cursor.Equal([]byte("GIF89a"), []byte("GIF87a")), qt.IsFalse)
	c.Assert(cursor.Equal([]byte("GIF89a"), []byte("short")), qt.IsFalse)
}
