package stream

import (
	"context"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Publisher is the part of mqtt.Client a MQTTSink needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MQTTSink publishes the markup of every frame to a topic.
type MQTTSink struct {
	client  Publisher
	topic   string
	qos     byte
	timeout time.Duration
}

// NewMQTTSink creates a sink publishing to topic with QoS 0.
func NewMQTTSink(client Publisher, topic string) *MQTTSink {
	return &MQTTSink{client: client, topic: topic, timeout: 5 * time.Second}
}

// WithQoS sets the quality of service of published frames.
func (m *MQTTSink) WithQoS(qos byte) *MQTTSink {
	m.qos = qos
	return m
}

// Send implements the Sink interface.
func (m *MQTTSink) Send(ctx context.Context, f Frame) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	token := m.client.Publish(m.topic, m.qos, false, []byte(f.SVG))
	if !token.WaitTimeout(m.timeout) {
		return fmt.Errorf("publishing frame %d to %s: timed out", f.Index, m.topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publishing frame %d to %s: %w", f.Index, m.topic, err)
	}
	return nil
}

// Connect creates and connects a client to broker.
func Connect(broker, clientID, username, password string) (mqtt.Client, error) {
	options := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetUsername(username).
		SetPassword(password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second)
	client := mqtt.NewClient(options)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connecting to %s: %w", broker, token.Error())
	}
	return client, nil
}
