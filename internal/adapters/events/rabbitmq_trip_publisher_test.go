package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"trip-log-service/internal/domain"

	amqp "github.com/rabbitmq/amqp091-go"
)

type mockChannel struct {
	publishFn func(ctx context.Context, exchange, key string, msg amqp.Publishing) error
	exchanges []string
	msgs      []amqp.Publishing
}

func (m *mockChannel) PublishWithContext(ctx context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	m.exchanges = append(m.exchanges, exchange)
	m.msgs = append(m.msgs, msg)
	if m.publishFn != nil {
		return m.publishFn(ctx, exchange, key, msg)
	}
	return nil
}

func TestPublishTripPlanned(t *testing.T) {
	ch := &mockChannel{}
	pub := newRabbitMQTripPublisher(ch)
	pub.now = func() time.Time { return time.Unix(1767225600, 0) }

	trip := &domain.Trip{
		TripID:          42,
		PickupLocation:  "Denver, CO",
		DropoffLocation: "Dallas, TX",
		Plan: &domain.RoutePlan{
			DistanceMiles: 662.6,
			DurationHours: 14,
			Logs:          make([]domain.DayLog, 2),
		},
	}

	if err := pub.PublishTripPlanned(context.Background(), trip); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ch.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(ch.msgs))
	}
	if ch.exchanges[0] != exchangeName {
		t.Errorf("exchange = %q, want %q", ch.exchanges[0], exchangeName)
	}

	msg := ch.msgs[0]
	if msg.ContentType != "application/json" || msg.Type != "trip.planned" {
		t.Errorf("unexpected headers: %q %q", msg.ContentType, msg.Type)
	}

	var got tripPlannedMessage
	if err := json.Unmarshal(msg.Body, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := tripPlannedMessage{
		TripID:          42,
		PickupLocation:  "Denver, CO",
		DropoffLocation: "Dallas, TX",
		DistanceMiles:   662.6,
		DurationHours:   14,
		Days:            2,
		PlannedAt:       1767225600,
	}
	if got != want {
		t.Errorf("message = %+v, want %+v", got, want)
	}
}

func TestPublishTripPlanned_Error(t *testing.T) {
	ch := &mockChannel{
		publishFn: func(context.Context, string, string, amqp.Publishing) error {
			return errors.New("channel closed")
		},
	}

	err := newRabbitMQTripPublisher(ch).PublishTripPlanned(context.Background(), &domain.Trip{TripID: 1})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestNoopTripPublisher(t *testing.T) {
	if err := (NoopTripPublisher{}).PublishTripPlanned(context.Background(), &domain.Trip{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
