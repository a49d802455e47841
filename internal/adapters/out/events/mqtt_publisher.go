// Package events publishes order lifecycle events to an MQTT broker.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"courierdispatch/internal/core/ports"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Client is the part of the paho client the publisher needs.
type Client interface {
	IsConnected() bool
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// DefaultTimeout applies when MQTTConfig.Timeout is not positive.
const DefaultTimeout = 5 * time.Second

// MQTTConfig holds the broker connection and publishing settings.
type MQTTConfig struct {
	// Broker is the broker URL, e.g. "tcp://localhost:1883".
	Broker      string
	ClientID    string
	TopicPrefix string
	// QoS is the MQTT quality of service level: 0, 1 or 2.
	QoS byte
	// Timeout bounds the broker connect and each publish acknowledgement.
	Timeout time.Duration
}

func (c MQTTConfig) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

type message struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"orderId"`
	CourierID  string    `json:"courierId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// MQTTPublisher implements ports.EventPublisher. Each event goes to
// "<prefix>/<event type>", e.g. "dispatch/order.assigned".
type MQTTPublisher struct {
	client  Client
	prefix  string
	qos     byte
	timeout time.Duration
}

// NewMQTTPublisher connects to the broker and returns a ready publisher.
func NewMQTTPublisher(cfg MQTTConfig) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetConnectTimeout(cfg.timeout()).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect to mqtt broker %s: %w", cfg.Broker, token.Error())
	}

	return NewMQTTPublisherWithClient(client, cfg), nil
}

// NewMQTTPublisherWithClient wraps an already connected client. Broker and ClientID
// of cfg are ignored.
func NewMQTTPublisherWithClient(client Client, cfg MQTTConfig) *MQTTPublisher {
	return &MQTTPublisher{
		client:  client,
		prefix:  cfg.TopicPrefix,
		qos:     cfg.QoS,
		timeout: cfg.timeout(),
	}
}

// ErrPublishTimeout is returned when the broker does not acknowledge in time.
var ErrPublishTimeout = errors.New("mqtt publish timed out")

// Publish sends event as JSON and waits for the broker acknowledgement.
func (p *MQTTPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(message{
		Type:       string(event.Type),
		OrderID:    event.OrderID.String(),
		CourierID:  event.CourierID.String(),
		OccurredAt: event.OccurredAt.UTC(),
	})
	if err != nil {
		return err
	}

	token := p.client.Publish(p.Topic(event.Type), p.qos, false, payload)
	if !token.WaitTimeout(p.timeout) {
		return ErrPublishTimeout
	}
	return token.Error()
}

// Topic returns the topic events of eventType are published to.
func (p *MQTTPublisher) Topic(eventType ports.OrderEventType) string {
	if p.prefix == "" {
		return string(eventType)
	}
	return p.prefix + "/" + string(eventType)
}

// Close disconnects from the broker, giving in-flight messages 250ms to drain.
func (p *MQTTPublisher) Close() {
	if p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}
