package gif

import (
	"tinygo.org/x/gif/cursor"
	"tinygo.org/x/gif/header"
)

// FrameStreamer owns the parsed structural index of a GIF source and a
// single sequential cursor used to seek between frames. It is the only
// piece of the decoder that mutates across calls by design — each
// FrameDecoder it hands out clones its own independent cursor and holds
// its own copy of the frame descriptor and color table, so interleaving
// decoder pulls with streamer seeks never changes a decoder already in
// flight.
type FrameStreamer struct {
	info  *header.GifInfo
	bytes cursor.Cursor

	frameIdx   int
	descriptor header.LocalImageDescriptor
	hasCurrent bool
}

// NewFrameStreamer parses data's header and returns a streamer
// positioned before its first frame. data is never copied; every cursor
// derived from it (the streamer's own, and every FrameDecoder's clone)
// is a view over the same backing slice.
func NewFrameStreamer(data []byte) (*FrameStreamer, error) {
	bytes := cursor.New(data)
	info, err := header.Scan(&bytes)
	if err != nil {
		return nil, err
	}
	if err := bytes.SeekTo(0); err != nil {
		return nil, err
	}
	return &FrameStreamer{info: info, bytes: bytes}, nil
}

// NumFrames returns the number of image blocks found during the header
// scan.
func (s *FrameStreamer) NumFrames() int {
	return s.info.NumImages()
}

// DelayMS returns the delay to wait between frames, from the source's
// graphics-control extension, or the 50ms default when it has none.
func (s *FrameStreamer) DelayMS() int {
	return s.info.DelayMS()
}

// CanvasSize returns the logical screen dimensions declared in the
// header.
func (s *FrameStreamer) CanvasSize() (width, height int) {
	return s.info.Width, s.info.Height
}

// Reset rewinds playback to the first frame.
func (s *FrameStreamer) Reset() error {
	if err := s.bytes.SeekTo(0); err != nil {
		return err
	}
	s.frameIdx = 0
	s.hasCurrent = false
	return nil
}

// SeekToNextFrame advances to the next image block, wrapping back to
// frame 0 once the last frame has been consumed so that playback loops
// by default. It fails with header.ErrBadGifFile only when the source
// has no image blocks at all.
func (s *FrameStreamer) SeekToNextFrame() error {
	offset, ok := s.info.ImageOffset(s.frameIdx)
	if !ok {
		s.frameIdx = 0
		offset, ok = s.info.ImageOffset(0)
		if !ok {
			return header.ErrBadGifFile
		}
	}
	s.frameIdx++

	if err := s.bytes.SeekTo(offset); err != nil {
		return err
	}
	desc, err := header.ParseFrameDescriptor(&s.bytes)
	if err != nil {
		return err
	}
	s.descriptor = desc
	s.hasCurrent = true
	return nil
}

// CurrentFrame builds a FrameDecoder for the frame most recently seeked
// to by SeekToNextFrame or NextFrame.
func (s *FrameStreamer) CurrentFrame() (*FrameDecoder, error) {
	if !s.hasCurrent {
		return nil, header.ErrNoImagesLeft
	}
	table, ok := s.info.FrameColorTable(&s.descriptor)
	if !ok {
		return nil, header.ErrBadGifFile
	}
	// table and s.descriptor are copied into the new decoder by value
	// (newFrameDecoder), not aliased: s.descriptor is overwritten in
	// place on the streamer's next seek, and a local color table lives
	// inside it.
	return newFrameDecoder(s.bytes.Clone(), table, s.descriptor)
}

// NextFrame seeks to the next frame and builds its decoder in one call.
func (s *FrameStreamer) NextFrame() (*FrameDecoder, error) {
	if err := s.SeekToNextFrame(); err != nil {
		return nil, err
	}
	return s.CurrentFrame()
}
