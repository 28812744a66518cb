// Package gif implements a streaming GIF (87a/89a) decoder for
// resource-constrained targets: a one-pass header scan over the
// container, followed by a pull-driven per-frame pixel producer that
// never needs more than a 255-byte sub-block buffer and a 512-entry
// pixel buffer.
//
// A typical playback loop:
//
//	streamer, err := gif.NewFrameStreamer(data)
//	for {
//		frame, err := streamer.NextFrame()
//		for {
//			px, ok := frame.Next()
//			if !ok {
//				break
//			}
//			// px is an RGB565 pixel, row-major within the rectangle
//			// given by frame.Origin() and frame.Size().
//		}
//		time.Sleep(time.Duration(streamer.DelayMS()) * time.Millisecond)
//	}
//
// The decoder does not interpret interlacing, frame disposal, or
// transparency; see SPEC_FULL.md for the full list of non-goals and how
// an integrating layer (a display.Target, for instance) is expected to
// layer those behaviors on top.
package gif
