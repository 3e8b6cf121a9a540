package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher sends events to RabbitMQ. A connection is established per
// publish so the publisher never holds broker state; failures are logged
// and returned, and callers are expected to ignore them rather than fail
// the request.
type Publisher struct {
	url string
	log *zap.Logger
}

// NewPublisher returns a Publisher, or nil when no AMQP URL is configured.
func NewPublisher(url string, log *zap.Logger) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{
		url: url,
		log: log.With(zap.String("component", "queue")),
	}
}

// PublishBookingCreated publishes to the booking.created queue.
func (p *Publisher) PublishBookingCreated(ctx context.Context, event BookingCreatedEvent) error {
	return p.publish(ctx, QueueBookingCreated, event)
}

// PublishBookingCancelled publishes to the booking.cancelled queue.
func (p *Publisher) PublishBookingCancelled(ctx context.Context, event BookingCancelledEvent) error {
	return p.publish(ctx, QueueBookingCancelled, event)
}

func (p *Publisher) publish(ctx context.Context, queueName string, event any) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("Failed to dial broker", zap.Error(err), zap.String("queue", queueName))
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("Failed to open channel", zap.Error(err), zap.String("queue", queueName))
		return err
	}
	defer func() { _ = ch.Close() }()

	// Durable queue so messages survive broker restarts. Declare is idempotent.
	if _, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		p.log.Warn("Failed to declare queue", zap.Error(err), zap.String("queue", queueName))
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Warn("Failed to marshal event", zap.Error(err), zap.String("queue", queueName))
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		pub,
	); err != nil {
		p.log.Warn("Failed to publish event", zap.Error(err), zap.String("queue", queueName))
		return err
	}

	return nil
}
