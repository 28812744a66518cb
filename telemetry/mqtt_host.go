//go:build !tinygo

// Host build: telemetry rides on eclipse/paho.mqtt.golang, the same
// full-featured client the rest of the host tooling (cmd/simulator)
// links against.
package telemetry

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// NewMQTTHostPublisher connects to an MQTT broker at brokerURL (e.g.
// "tcp://localhost:1883") and returns a Publisher that publishes each
// Event as a small text payload to topic, QoS 0.
func NewMQTTHostPublisher(brokerURL, clientID, topic string) (*Publisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetConnectTimeout(5 * time.Second).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}

	return NewPublisher(32, func(e Event) error {
		payload := fmt.Sprintf("frame=%d", e.FrameIndex)
		if e.Err != nil {
			payload += fmt.Sprintf(" err=%q", e.Err.Error())
		}
		token := client.Publish(topic, 0, false, payload)
		token.Wait()
		return token.Error()
	}), nil
}
