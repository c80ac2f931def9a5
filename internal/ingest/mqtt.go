package ingest

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"home_relay/internal/config"
	"home_relay/internal/logger"
	"home_relay/internal/models"
)

// Recorder stores sensor readings.
type Recorder interface {
	Record(ctx context.Context, r models.SensorReading) error
}

const (
	recordTimeout  = 5 * time.Second
	disconnectWait = 250 // ms
)

// Subscriber records the readings published on one MQTT topic.
type Subscriber struct {
	client mqtt.Client
	topic  string
	env    Recorder
	log    *logger.Logger
}

func NewSubscriber(cfg config.MQTTConfig, env Recorder, log *logger.Logger) *Subscriber {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)

	if strings.HasPrefix(cfg.Broker, "ssl://") || strings.HasPrefix(cfg.Broker, "wss://") {
		opts.SetTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12})
	}
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	opts.SetAutoReconnect(true)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Warnw("mqtt_connection_lost", "error", err)
	})
	opts.SetReconnectingHandler(func(mqtt.Client, *mqtt.ClientOptions) {
		log.Infow("mqtt_reconnecting", "broker", cfg.Broker)
	})

	return &Subscriber{
		client: mqtt.NewClient(opts),
		topic:  cfg.Topic,
		env:    env,
		log:    log,
	}
}

// Start connects to the broker and subscribes to the topic.
func (s *Subscriber) Start() error {
	if token := s.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connect to mqtt broker: %w", token.Error())
	}
	if token := s.client.Subscribe(s.topic, 0, s.onMessage); token.Wait() && token.Error() != nil {
		s.client.Disconnect(disconnectWait)
		return fmt.Errorf("subscribe to %s: %w", s.topic, token.Error())
	}
	s.log.Infow("mqtt_subscribed", "topic", s.topic)
	return nil
}

func (s *Subscriber) Stop() {
	s.client.Disconnect(disconnectWait)
	s.log.Infow("mqtt_disconnected")
}

func (s *Subscriber) onMessage(_ mqtt.Client, msg mqtt.Message) {
	s.handle(msg.Topic(), msg.Payload())
}

// handle decodes and records one payload. Bad payloads are logged and dropped.
func (s *Subscriber) handle(topic string, payload []byte) {
	r, err := DecodeReading(payload)
	if err != nil {
		s.log.Warnw("mqtt_bad_payload", "topic", topic, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	if err := s.env.Record(ctx, r); err != nil {
		s.log.Errorw("mqtt_record_failed", "topic", topic, "error", err)
		return
	}
	s.log.Debugw("mqtt_reading_recorded", "topic", topic, "temperature", r.Temperature, "humidity", r.Humidity)
}
