// Package lzw implements the variable-width, LSB-first LZW dictionary
// decoder GIF image data is encoded with. It is deliberately not
// compress/lzw: GIF needs the encoder/decoder's code size to start at
// minCodeSize+1 and its clear/end-of-information codes fixed at
// 1<<minCodeSize and +1, and it needs a push-style API that can be fed
// one chunked sub-block at a time rather than through an io.Reader.
//
// The decoder never allocates: its entire dictionary (4096 entries) and
// expansion scratch space live in the Decoder value itself, so a caller
// can embed one inline in a per-frame struct.
package lzw

import "golang.org/x/xerrors"

// maxCode is the largest dictionary size a 12-bit code space allows.
const maxCode = 1 << 12

// Status reports what Decode accomplished on a single call.
type Status uint8

const (
	// StatusOk means at least one code was decoded; the caller should
	// call Decode again with fresh input/output once either is
	// exhausted.
	StatusOk Status = iota
	// StatusNoProgress means no complete code could be decoded from
	// the input given — the caller should supply the next input
	// sub-block.
	StatusNoProgress
	// StatusDone means the end-of-information code was reached; no
	// further calls will produce output.
	StatusDone
)

// ErrInvalidCode is returned when the bitstream references a dictionary
// code that has not yet been defined (and isn't the single valid
// lookahead case covered by the KwKwK rule).
var ErrInvalidCode = xerrors.New("lzw: invalid code")

// Decoder is a variable code-width LZW decoder. The zero value is not
// usable; construct with New.
type Decoder struct {
	minCodeSize byte

	codeSize  uint32
	clearCode uint16
	endCode   uint16
	nextCode  uint16

	oldCode      uint16
	oldCodeValid bool
	done         bool

	bitBuf   uint32
	bitCount uint

	// prefix/suffix form the dictionary: code c (c > endCode) expands
	// to the string for prefix[c] followed by the single byte
	// suffix[c]. Codes below clearCode are literal single bytes and
	// are never stored here.
	prefix [maxCode]uint16
	suffix [maxCode]byte

	// expand is reused scratch space for the string a single code
	// expands to (bounded by the current dictionary depth, at most
	// maxCode bytes), plus the portion of it not yet copied into a
	// caller's output buffer.
	expand     [maxCode]byte
	pendingPos int
	pendingLen int
}

// New returns a Decoder ready to decode a frame whose LZW-minimum-code-size
// byte was minCodeSize.
func New(minCodeSize byte) *Decoder {
	d := &Decoder{minCodeSize: minCodeSize}
	d.resetDict()
	return d
}

func (d *Decoder) resetDict() {
	d.codeSize = uint32(d.minCodeSize) + 1
	d.clearCode = 1 << d.minCodeSize
	d.endCode = d.clearCode + 1
	d.nextCode = d.endCode + 1
	d.oldCodeValid = false
}

// Decode consumes bytes from in and writes decoded color-table indexes to
// out, returning how much of each it used. It must be called again with
// fresh input once consumedIn == len(in) and status is StatusNoProgress,
// and again with fresh output space once consumedOut == len(out) and
// more data is expected.
func (d *Decoder) Decode(in, out []byte) (consumedIn, consumedOut int, status Status, err error) {
	if d.done {
		return 0, 0, StatusDone, nil
	}

	outPos := 0
	if d.pendingPos < d.pendingLen {
		n := copy(out, d.expand[d.pendingPos:d.pendingLen])
		d.pendingPos += n
		outPos += n
		if outPos == len(out) {
			return 0, outPos, StatusOk, nil
		}
	}

	inPos := 0
	for outPos < len(out) {
		code, ok := d.readCode(in, &inPos)
		if !ok {
			if inPos == 0 && outPos == 0 {
				return 0, 0, StatusNoProgress, nil
			}
			if outPos == 0 {
				return inPos, 0, StatusNoProgress, nil
			}
			return inPos, outPos, StatusOk, nil
		}

		switch code {
		case d.clearCode:
			d.resetDict()
			continue
		case d.endCode:
			d.done = true
			return inPos, outPos, StatusDone, nil
		}

		n, ferr := d.expandCode(code)
		if ferr != nil {
			return inPos, outPos, StatusDone, ferr
		}

		d.pendingPos, d.pendingLen = 0, 0
		m := copy(out[outPos:], d.expand[:n])
		outPos += m
		if m < n {
			d.pendingPos = m
			d.pendingLen = n
		}

		d.addDictEntry(code)
		d.oldCode = code
		d.oldCodeValid = true
	}
	return inPos, outPos, StatusOk, nil
}

// readCode pulls codeSize bits (LSB first) out of in, persisting any
// partial-byte remainder across calls in d.bitBuf. ok is false when in
// is exhausted before a full code could be assembled; already-buffered
// bits are kept for the next call.
func (d *Decoder) readCode(in []byte, inPos *int) (code uint16, ok bool) {
	for d.bitCount < uint(d.codeSize) {
		if *inPos >= len(in) {
			return 0, false
		}
		d.bitBuf |= uint32(in[*inPos]) << d.bitCount
		d.bitCount += 8
		*inPos++
	}
	mask := uint32(1)<<d.codeSize - 1
	code = uint16(d.bitBuf & mask)
	d.bitBuf >>= d.codeSize
	d.bitCount -= uint(d.codeSize)
	return code, true
}

// expandCode writes the byte string for code into d.expand[:n]. It
// handles the KwKwK case (code == nextCode, not yet defined) per the
// standard LZW decode rule: the string is the previous code's string
// with its own first byte appended.
func (d *Decoder) expandCode(code uint16) (n int, err error) {
	cur := code
	special := false
	if code >= d.nextCode {
		if !d.oldCodeValid || code != d.nextCode {
			return 0, ErrInvalidCode
		}
		special = true
		cur = d.oldCode
	}

	i := len(d.expand)
	for {
		if cur < d.clearCode {
			i--
			d.expand[i] = byte(cur)
			break
		}
		i--
		d.expand[i] = d.suffix[cur]
		cur = d.prefix[cur]
	}
	n = copy(d.expand[:], d.expand[i:])

	if special {
		d.expand[n] = d.expand[0]
		n++
	}
	return n, nil
}

// addDictEntry extends the dictionary with oldCode's string followed by
// the first byte of code's string (d.expand[0], populated by the
// preceding expandCode call), growing the code width once the
// dictionary crosses a power-of-two boundary. No entry is added right
// after a clear code, matching GIF's "K is undefined" rule for the
// first code of a fresh dictionary.
func (d *Decoder) addDictEntry(code uint16) {
	if !d.oldCodeValid {
		return
	}
	if d.nextCode >= maxCode {
		return
	}
	d.prefix[d.nextCode] = d.oldCode
	d.suffix[d.nextCode] = d.expand[0]
	d.nextCode++
	if d.nextCode == 1<<d.codeSize && d.codeSize < 12 {
		d.codeSize++
	}
}
