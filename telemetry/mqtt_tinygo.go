//go:build tinygo

// TinyGo build: paho.mqtt.golang pulls in net/http and reflection-heavy
// machinery no microcontroller target can carry, so the embedded build
// links soypat/natiu-mqtt instead — a non-allocating client built for
// exactly this kind of constrained target.
package telemetry

import (
	"context"
	"net"
	"strconv"
	"time"

	mqtt "github.com/soypat/natiu-mqtt"
)

// NewMQTTTinyGoPublisher sends an MQTT CONNECT to the broker over conn
// (an already-open transport; TinyGo has no single portable way to open a
// TCP socket) and returns a Publisher that publishes each Event as a small text payload
// to topic, QoS 0.
func NewMQTTTinyGoPublisher(conn net.Conn, clientID, topic string) (*Publisher, error) {
	var rxBuf, txBuf [512]byte
	client := mqtt.NewClient(mqtt.ClientConfig{
		Decoder: mqtt.DecoderNoAlloc{UserBuffer: rxBuf[:]},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	connectFlags := mqtt.Connect{
		ClientID:  []byte(clientID),
		Protocol:  mqtt.ProtocolLevel(4),
		KeepAlive: 30,
		CleanSession: true,
	}
	if err := client.Connect(ctx, conn, &connectFlags); err != nil {
		return nil, err
	}

	var varPub mqtt.VariablesPublish
	varPub.TopicName = []byte(topic)

	return NewPublisher(16, func(e Event) error {
		payload := append(txBuf[:0], "frame="...)
		payload = strconv.AppendInt(payload, int64(e.FrameIndex), 10)
		if e.Err != nil {
			payload = append(payload, " err="...)
			payload = append(payload, e.Err.Error()...)
		}
		return client.PublishQoS0(ctx, varPub, payload)
	}), nil
}
