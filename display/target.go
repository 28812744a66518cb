// Package display adapts the decoded pixel stream from a
// gif.FrameDecoder onto the Displayer-shaped device drivers the rest of
// this module's teacher stack exposes: a WS2812 LED strip and a
// Waveshare e-paper panel. Both speak RGB565 directly, so no frame ever
// needs translating into image/color on its way to the wire.
package display

import (
	"time"

	gif "tinygo.org/x/gif"
	"tinygo.org/x/gif/header"
)

// Target is the minimal surface a device needs to play a GIF:
// dimensions, per-pixel writes, and a way to flush a frame to the
// physical device. It mirrors the Size/SetPixel/Display shape shared by
// tinygo.org/x/drivers' Displayer implementations.
type Target interface {
	Size() (width, height int)
	SetPixel(x, y int, c header.RGB565)
	Display() error
}

// FrameSource is the subset of *gif.FrameStreamer that Play needs. Kept
// as an interface so tests can drive Play with a fake streamer.
type FrameSource interface {
	CanvasSize() (width, height int)
	DelayMS() int
	NextFrame() (FramePixels, error)
}

// FramePixels is the subset of *gif.FrameDecoder that Play needs.
type FramePixels interface {
	Size() (width, height int)
	Origin() (x, y int)
	Next() (header.RGB565, bool)
	Err() error
}

// Streamer adapts a *gif.FrameStreamer to FrameSource: Go's interfaces
// are structural, but NextFrame's concrete *gif.FrameDecoder return type
// doesn't automatically satisfy an interface-typed return, so this one
// indirection is unavoidable at the boundary between the decoder and
// display packages.
type Streamer struct {
	*gif.FrameStreamer
}

func (s Streamer) NextFrame() (FramePixels, error) {
	return s.FrameStreamer.NextFrame()
}

// Play pulls frames from src and renders each one onto dst, looping
// forever until stop is closed. It sleeps for the source's declared
// inter-frame delay between Display calls, and returns the first
// decode error it encounters (a malformed source), if any.
func Play(dst Target, src FrameSource, stop <-chan struct{}) error {
	delay := time.Duration(src.DelayMS()) * time.Millisecond
	for {
		select {
		case <-stop:
			return nil
		default:
		}

		frame, err := src.NextFrame()
		if err != nil {
			DefaultLogger.Logf("display: next frame: %v", err)
			return err
		}

		ox, oy := frame.Origin()
		fw, _ := frame.Size()
		x, y := ox, oy
		for {
			px, ok := frame.Next()
			if !ok {
				break
			}
			dst.SetPixel(x, y, px)
			x++
			if x >= ox+fw {
				x = ox
				y++
			}
		}
		if err := frame.Err(); err != nil {
			DefaultLogger.Logf("display: decode: %v", err)
			return err
		}
		if err := dst.Display(); err != nil {
			return err
		}

		select {
		case <-stop:
			return nil
		case <-time.After(delay):
		}
	}
}
