package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"billboard-ops/internal/config/configs"
	"billboard-ops/internal/core/domain"
)

type recordingWriter struct {
	msgs  []kafka.Message
	calls int
	err   error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.calls++
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *recordingWriter) Close() error { return nil }

func TestNewPublisher_DisabledWithoutBrokers(t *testing.T) {
	assert.Nil(t, NewPublisher(configs.Kafka{Topic: "billboard.booking-events"}))
	assert.NotNil(t, NewPublisher(configs.Kafka{Brokers: []string{"localhost:9092"}, Topic: "billboard.booking-events"}))
}

func TestPublishBookingEvents(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	w := &recordingWriter{}
	p := &Publisher{writer: w}
	ev := domain.BookingEvent{
		Type:          domain.BookingEventCreated,
		BookingID:     uuid.New(),
		ReferenceCode: "BK-2024-0001",
		BillboardID:   uuid.New(),
		Status:        domain.BookingCreated,
		OccurredAt:    time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC),
	}

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		SpanID:     trace.SpanID{1, 2, 3, 4, 5, 6, 7, 8},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	require.NoError(t, p.PublishBookingEvents(ctx, []domain.BookingEvent{ev}))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, ev.BillboardID.String(), string(msg.Key))

	var got domain.BookingEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, ev, got)

	carrier := headerCarrier{msg: &msg}
	assert.Contains(t, carrier.Get("traceparent"), sc.TraceID().String())
}

func TestPublishBookingEvent_WriteError(t *testing.T) {
	p := &Publisher{writer: &recordingWriter{err: errors.New("leader not available")}}
	err := p.PublishBookingEvents(context.Background(), []domain.BookingEvent{{BookingID: uuid.New()}})
	assert.ErrorContains(t, err, "leader not available")
}

func TestPublishBookingEvents_SingleWrite(t *testing.T) {
	w := &recordingWriter{}
	p := &Publisher{writer: w}

	evs := make([]domain.BookingEvent, 0, 5)
	for i := 1; i <= 5; i++ {
		evs = append(evs, domain.BookingEvent{
			Type:          domain.BookingEventCreated,
			BookingID:     uuid.New(),
			ReferenceCode: domain.FormatReference("BK", 2024, int64(i)),
			BillboardID:   uuid.New(),
			Status:        domain.BookingCreated,
		})
	}
	require.NoError(t, p.PublishBookingEvents(context.Background(), evs))
	assert.Equal(t, 1, w.calls)
	require.Len(t, w.msgs, 5)
	for i, msg := range w.msgs {
		assert.Equal(t, evs[i].BillboardID.String(), string(msg.Key))
	}

	require.NoError(t, p.PublishBookingEvents(context.Background(), nil))
	assert.Equal(t, 1, w.calls)
}
