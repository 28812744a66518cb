// Command gifplay is a host-side REPL for exercising the decoder
// against real GIF files without any hardware attached: it renders each
// frame as a block of 24-bit-color ANSI cells, standing in for a
// display.Target, with a tinyfont frame-counter overlay drawn on top.
//
// Usage:
//
//	gifplay [-mqtt tcp://host:1883] path/to/file.gif
//
// Once loaded, commands are read from stdin, one per line, tokenized
// with github.com/google/shlex so quoted paths with spaces work the
// same way a shell would handle them:
//
//	load path/to/other.gif
//	play
//	step
//	quit
//
// When -mqtt names a broker, every frame shown by play or step is
// reported there (see tinygo.org/x/gif/telemetry).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/shlex"

	gif "tinygo.org/x/gif"
	"tinygo.org/x/gif/display"
	"tinygo.org/x/gif/header"
	"tinygo.org/x/gif/telemetry"

	"tinygo.org/x/tinyfont/freemono"
)

func main() {
	mqttAddr := flag.String("mqtt", "", "MQTT broker URL to report per-frame telemetry to, e.g. tcp://localhost:1883 (disabled when empty)")
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: gifplay [-mqtt tcp://host:1883] <file.gif>")
		os.Exit(1)
	}

	session := &session{}
	if *mqttAddr != "" {
		pub, err := telemetry.NewMQTTHostPublisher(*mqttAddr, "gifplay", "gif/telemetry")
		if err != nil {
			fmt.Fprintf(os.Stderr, "gifplay: telemetry: %v\n", err)
			os.Exit(1)
		}
		session.telemetry = pub
		defer pub.Close()
	}
	if err := session.load(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "gifplay: %v\n", err)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprintf(os.Stderr, "loaded %s (%dx%d, %d frames)\n", args[0], session.width, session.height, session.streamer.NumFrames())
	for scanner.Scan() {
		args, err := shlex.Split(scanner.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "gifplay: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if err := session.dispatch(args); err != nil {
			if err == errQuit {
				return
			}
			fmt.Fprintf(os.Stderr, "gifplay: %v\n", err)
		}
	}
}

var errQuit = fmt.Errorf("quit")

type session struct {
	streamer      *gif.FrameStreamer
	width, height int
	stop          chan struct{}
	frameNum      int
	telemetry     *telemetry.Publisher
}

// report publishes a telemetry event for the frame just produced, if a
// -mqtt broker was configured; a no-op otherwise.
func (s *session) report(err error) {
	if s.telemetry == nil {
		return
	}
	s.telemetry.Report(telemetry.Event{FrameIndex: s.frameNum, Err: err})
}

func (s *session) load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	streamer, err := gif.NewFrameStreamer(data)
	if err != nil {
		return err
	}
	s.streamer = streamer
	s.width, s.height = streamer.CanvasSize()
	s.frameNum = 0
	return nil
}

func (s *session) dispatch(args []string) error {
	switch args[0] {
	case "load":
		if len(args) < 2 {
			return fmt.Errorf("load: missing path")
		}
		return s.load(args[1])
	case "play":
		s.stop = make(chan struct{})
		return s.play()
	case "stop":
		if s.stop != nil {
			close(s.stop)
			s.stop = nil
		}
		return nil
	case "step":
		frame, err := s.streamer.NextFrame()
		if err != nil {
			return err
		}
		s.frameNum++
		dst := newTermTarget(s.width, s.height)
		renderFrame(dst, frame)
		err = frame.Err()
		s.report(err)
		if err != nil {
			return err
		}
		s.drawHUD(dst)
		return dst.Display()
	case "reset":
		s.frameNum = 0
		return s.streamer.Reset()
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// renderFrame copies frame's pixels into dst. The caller draws any HUD
// overlay and flushes with dst.Display() afterward.
func renderFrame(dst *termTarget, frame *gif.FrameDecoder) {
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
}

// drawHUD overlays the current frame number in the top-left corner of
// dst, using tinyfont the same way an on-device build would.
func (s *session) drawHUD(dst *termTarget) {
	display.DrawHUD(dst, &freemono.Regular9pt7b, 0, 8, fmt.Sprintf("#%d", s.frameNum))
}

// play runs the streamer forward, frame after frame, until "stop" closes
// s.stop, overlaying a frame counter and reporting telemetry for each
// frame shown.
func (s *session) play() error {
	delay := time.Duration(s.streamer.DelayMS()) * time.Millisecond
	dst := newTermTarget(s.width, s.height)
	for {
		select {
		case <-s.stop:
			return nil
		default:
		}

		frame, err := s.streamer.NextFrame()
		if err != nil {
			return err
		}
		s.frameNum++
		renderFrame(dst, frame)
		err = frame.Err()
		s.report(err)
		if err != nil {
			return err
		}
		s.drawHUD(dst)
		if err := dst.Display(); err != nil {
			return err
		}

		select {
		case <-s.stop:
			return nil
		case <-time.After(delay):
		}
	}
}

// termTarget renders a frame as one row of two-space cells per scanline,
// each cell's background colored with a 24-bit ANSI escape derived from
// the pixel's RGB565 value.
type termTarget struct {
	width, height int
	cells         []header.RGB565
}

func newTermTarget(width, height int) *termTarget {
	return &termTarget{width: width, height: height, cells: make([]header.RGB565, width*height)}
}

func (t *termTarget) Size() (int, int) { return t.width, t.height }

func (t *termTarget) SetPixel(x, y int, c header.RGB565) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	t.cells[y*t.width+x] = c
}

func (t *termTarget) Display() error {
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			r, g, b := t.cells[y*t.width+x].RGB()
			fmt.Printf("\x1b[48;2;%d;%d;%dm  ", r, g, b)
		}
		fmt.Print("\x1b[0m\n")
	}
	return nil
}
