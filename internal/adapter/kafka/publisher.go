// Package kafka publishes booking events with segmentio/kafka-go.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"

	"billboard-ops/internal/config/configs"
	"billboard-ops/internal/core/domain"
)

// messageWriter is the part of kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements port.EventPublisher. Messages are keyed by billboard
// id so the events of one billboard stay ordered within a partition.
type Publisher struct {
	writer messageWriter
}

// NewPublisher returns nil when no brokers are configured; callers treat a
// nil publisher as disabled.
func NewPublisher(cfg configs.Kafka) *Publisher {
	if len(cfg.Brokers) == 0 {
		return nil
	}
	return &Publisher{writer: &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: cfg.WriteTimeout,
		BatchTimeout: 10 * time.Millisecond,
	}}
}

// PublishBookingEvents writes all events of one operation in a single
// WriteMessages call.
func (p *Publisher) PublishBookingEvents(ctx context.Context, evs []domain.BookingEvent) error {
	if len(evs) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(evs))
	for _, ev := range evs {
		payload, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("marshal booking event: %w", err)
		}
		msg := kafka.Message{
			Key:   []byte(ev.BillboardID.String()),
			Value: payload,
			Time:  ev.OccurredAt,
		}
		// carry the trace context to consumers
		otel.GetTextMapPropagator().Inject(ctx, headerCarrier{msg: &msg})
		msgs = append(msgs, msg)
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d booking events: %w", len(msgs), err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// headerCarrier adapts kafka message headers to propagation.TextMapCarrier.
type headerCarrier struct {
	msg *kafka.Message
}

func (c headerCarrier) Get(key string) string {
	for _, h := range c.msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c headerCarrier) Set(key, value string) {
	for i, h := range c.msg.Headers {
		if h.Key == key {
			c.msg.Headers[i].Value = []byte(value)
			return
		}
	}
	c.msg.Headers = append(c.msg.Headers, kafka.Header{Key: key, Value: []byte(value)})
}

func (c headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c.msg.Headers))
	for _, h := range c.msg.Headers {
		keys = append(keys, h.Key)
	}
	return keys
}
