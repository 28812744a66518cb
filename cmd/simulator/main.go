// Command simulator serves a browser-based stand-in for an embedded
// RGB565 display: it streams decoded frames over a WebSocket connection
// and a small HTML page paints them onto a <canvas>, so a GIF can be
// eyeballed without flashing it to real hardware. When -mqtt names a
// broker, every streamed frame is also reported there (see
// tinygo.org/x/gif/telemetry).
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"golang.org/x/net/websocket"

	gif "tinygo.org/x/gif"
	"tinygo.org/x/gif/telemetry"
)

func main() {
	addr := flag.String("addr", ":8088", "http listen address")
	path := flag.String("gif", "", "path to the GIF file to stream")
	mqttAddr := flag.String("mqtt", "", "MQTT broker URL to report per-frame telemetry to, e.g. tcp://localhost:1883 (disabled when empty)")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: simulator -gif path/to/file.gif")
		os.Exit(1)
	}
	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("simulator: %v", err)
	}
	streamer, err := gif.NewFrameStreamer(data)
	if err != nil {
		log.Fatalf("simulator: %v", err)
	}
	width, height := streamer.CanvasSize()

	var pub *telemetry.Publisher
	if *mqttAddr != "" {
		pub, err = telemetry.NewMQTTHostPublisher(*mqttAddr, "simulator", "gif/telemetry")
		if err != nil {
			log.Fatalf("simulator: telemetry: %v", err)
		}
		defer pub.Close()
	}

	http.HandleFunc("/", servePage(width, height))
	http.Handle("/stream", websocket.Handler(streamFrames(streamer, width, height, pub)))

	log.Printf("simulator: serving %s (%dx%d) on http://localhost%s", *path, width, height, *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

// streamFrames writes one binary WebSocket message per frame: a 2-byte
// little-endian RGB565 value for every pixel, row-major. The browser
// side unpacks it straight into a canvas ImageData buffer. pub may be
// nil, in which case no telemetry is reported.
func streamFrames(streamer *gif.FrameStreamer, width, height int, pub *telemetry.Publisher) func(*websocket.Conn) {
	return func(ws *websocket.Conn) {
		defer ws.Close()
		ws.PayloadType = websocket.BinaryFrame

		buf := make([]byte, width*height*2)
		delay := time.Duration(streamer.DelayMS()) * time.Millisecond

		for frameIdx := 0; ; frameIdx++ {
			frame, err := streamer.NextFrame()
			if err != nil {
				log.Printf("simulator: %v", err)
				return
			}

			ox, oy := frame.Origin()
			fw, _ := frame.Size()
			x, y := ox, oy
			for {
				px, ok := frame.Next()
				if !ok {
					break
				}
				off := (y*width + x) * 2
				binary.LittleEndian.PutUint16(buf[off:], uint16(px))
				x++
				if x >= ox+fw {
					x = ox
					y++
				}
			}
			decodeErr := frame.Err()
			if pub != nil {
				pub.Report(telemetry.Event{FrameIndex: frameIdx, Err: decodeErr})
			}
			if decodeErr != nil {
				log.Printf("simulator: %v", decodeErr)
				return
			}

			if _, err := ws.Write(buf); err != nil {
				return
			}
			time.Sleep(delay)
		}
	}
}

func servePage(width, height int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, simulatorHTML, width, height, width, height)
	}
}

const simulatorHTML = `<!DOCTYPE html>
<html><head><title>gif simulator</title></head>
<body style="background:#222">
<canvas id="c" width="%d" height="%d" style="image-rendering:pixelated;width:512px;height:512px"></canvas>
<script>
const canvas = document.getElementById("c");
const ctx = canvas.getContext("2d");
const width = %d, height = %d;
const img = ctx.createImageData(width, height);
const ws = new WebSocket("ws://" + location.host + "/stream");
ws.binaryType = "arraybuffer";
ws.onmessage = (ev) => {
	const view = new DataView(ev.data);
	for (let i = 0; i < width * height; i++) {
		const px = view.getUint16(i * 2, true);
		const r = (px >> 11) & 0x1F, g = (px >> 5) & 0x3F, b = px & 0x1F;
		img.data[i*4+0] = (r << 3) | (r >> 2);
		img.data[i*4+1] = (g << 2) | (g >> 4);
		img.data[i*4+2] = (b << 3) | (b >> 2);
		img.data[i*4+3] = 255;
	}
	ctx.putImageData(img, 0, 0);
};
</script>
</body></html>
`
