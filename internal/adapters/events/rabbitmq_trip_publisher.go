package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"trip-log-service/internal/domain"
	"trip-log-service/internal/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

var _ ports.TripEventPublisher = (*RabbitMQTripPublisher)(nil)

const (
	exchangeName = "trips.events"
	queueName    = "trip_planned"
)

type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitMQTripPublisher announces planned trips on a fanout exchange.
type RabbitMQTripPublisher struct {
	ch  publishChannel
	now func() time.Time
}

// Dial connects to the broker at url.
func Dial(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq connect: %w", err)
	}
	return conn, nil
}

// NewRabbitMQTripPublisher opens a channel and declares the exchange and
// the durable queue bound to it.
func NewRabbitMQTripPublisher(conn *amqp.Connection) (*RabbitMQTripPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(queueName, "", exchangeName, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	return newRabbitMQTripPublisher(ch), nil
}

func newRabbitMQTripPublisher(ch publishChannel) *RabbitMQTripPublisher {
	return &RabbitMQTripPublisher{ch: ch, now: time.Now}
}

type tripPlannedMessage struct {
	TripID          int64   `json:"trip_id"`
	PickupLocation  string  `json:"pickup_location"`
	DropoffLocation string  `json:"dropoff_location"`
	DistanceMiles   float64 `json:"distance_miles"`
	DurationHours   float64 `json:"duration_hours"`
	Days            int     `json:"days"`
	PlannedAt       int64   `json:"planned_at"`
}

func (p *RabbitMQTripPublisher) PublishTripPlanned(ctx context.Context, trip *domain.Trip) error {
	msg := tripPlannedMessage{
		TripID:          trip.TripID,
		PickupLocation:  trip.PickupLocation,
		DropoffLocation: trip.DropoffLocation,
		PlannedAt:       p.now().Unix(),
	}
	if trip.Plan != nil {
		msg.DistanceMiles = trip.Plan.DistanceMiles
		msg.DurationHours = trip.Plan.DurationHours
		msg.Days = len(trip.Plan.Logs)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal trip planned: %w", err)
	}

	return p.ch.PublishWithContext(ctx, exchangeName, "", false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         "trip.planned",
		Body:         body,
	})
}
