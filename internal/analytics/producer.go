package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// IntentEvent is published for every bot reply so downstream consumers can
// measure what visitors actually ask for.
type IntentEvent struct {
	SessionID string            `json:"session_id"`
	Intent    string            `json:"intent"`
	Entities  map[string]string `json:"entities,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Producer sends chat analytics events to Kafka. A nil *Producer is a valid
// no-op publisher, so callers never have to branch on whether analytics is
// configured.
type Producer struct {
	writer *kafka.Writer
	log    *zap.Logger
}

// NewProducer creates a Kafka producer for the intent topic.
func NewProducer(brokers []string, topic string, log *zap.Logger) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
			Async:    true,
		},
		log: log.With(zap.String("component", "analytics")),
	}
}

// PublishIntent sends one intent event keyed by session so a session's
// events land on the same partition in order.
func (p *Producer) PublishIntent(ctx context.Context, event IntentEvent) error {
	if p == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.SessionID),
		Value: data,
	})
	if err != nil {
		p.log.Warn("Failed to publish intent event",
			zap.Error(err),
			zap.String("session_id", event.SessionID),
		)
		return err
	}

	return nil
}

// Close closes the Kafka writer.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
