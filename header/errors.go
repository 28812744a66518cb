package header

import (
	"golang.org/x/xerrors"

	"tinygo.org/x/gif/cursor"
)

// ParseError is a comparable, zero-allocation error value describing why
// a GIF source failed to parse. It satisfies error via Error, and is
// comparable with == so callers can branch on the exact failure without
// an errors.As type assertion.
type ParseError struct {
	kind kind
	msg  string
}

type kind uint8

const (
	kindBadGifFile kind = iota
	kindUnexpectedEOF
	kindIncorrectBlockLabel
	kindIncorrectExtension
	kindSeekFail
	kindNoImagesLeft
)

func (e ParseError) Error() string {
	return e.msg
}

// Sentinel errors covering every way a source can fail to parse.
var (
	ErrBadGifFile          = ParseError{kindBadGifFile, "header: bad gif file"}
	ErrUnexpectedEOF       = ParseError{kindUnexpectedEOF, "header: unexpected EOF"}
	ErrIncorrectBlockLabel = ParseError{kindIncorrectBlockLabel, "header: incorrect block label"}
	ErrIncorrectExtension  = ParseError{kindIncorrectExtension, "header: incorrect extension label"}
	ErrSeekFail            = ParseError{kindSeekFail, "header: seek past end of source"}
	ErrNoImagesLeft        = ParseError{kindNoImagesLeft, "header: no images left"}
)

// wrapCursorErr maps a cursor-level I/O failure onto the parser's own
// error taxonomy, the way ostafen-digler's gif.go wraps reader errors
// with fmt.Errorf at every call site; here it's done once, centrally.
func wrapCursorErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if xerrors.Is(err, cursor.ErrUnexpectedEOF) {
		return xerrors.Errorf("gif: %s: %w", op, ErrUnexpectedEOF)
	}
	return xerrors.Errorf("gif: %s: %w", op, err)
}
