// Package consumer receives location events from RabbitMQ and imports the
// referenced city (and transitively its country) into the store. The result
// of the resolution is discarded; the consumer exists only for its
// side effect.
package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexivanou/worldinfo-api/internal/model"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// CityResolver is the resolution surface the consumer triggers.
type CityResolver interface {
	ResolveCities(ctx context.Context, pattern string) ([]model.CityResult, error)
}

// locationEvent is the queue message payload.
type locationEvent struct {
	City       string `json:"city"`
	Alpha2Code string `json:"alpha2code"`
}

// Consumer reads location events off a queue. Malformed payloads are logged
// and dropped; there is no retry and no dead-letter handling.
type Consumer struct {
	resolver CityResolver
	logger   *zap.Logger

	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

// New connects to RabbitMQ and declares the queue.
func New(uri, queue string, resolver CityResolver, logger *zap.Logger) (*Consumer, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := channel.QueueDeclare(queue, false, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %q: %w", queue, err)
	}

	return &Consumer{
		resolver: resolver,
		logger:   logger,
		conn:     conn,
		channel:  channel,
		queue:    queue,
	}, nil
}

// Run consumes messages until the context is canceled or the delivery
// channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	deliveries, err := c.channel.ConsumeWithContext(ctx, c.queue, "", true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}
	c.logger.Info("started events consuming", zap.String("queue", c.queue))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return nil
			}
			c.handle(ctx, delivery.Body)
		}
	}
}

// handle parses, validates and processes one message body.
func (c *Consumer) handle(ctx context.Context, body []byte) {
	c.logger.Info("received event data", zap.ByteString("body", body))

	event, err := parseEvent(body)
	if err != nil {
		c.logger.Error("error during event parsing", zap.Error(err))
		return
	}

	// Import city and country data if it is not stored yet; the result
	// itself is not forwarded anywhere.
	if _, err := c.resolver.ResolveCities(ctx, event.City); err != nil {
		c.logger.Error("failed to import location data",
			zap.String("city", event.City), zap.Error(err))
		return
	}
	c.logger.Info("location data has been imported", zap.String("city", event.City))
}

// parseEvent decodes and validates a queue payload.
func parseEvent(body []byte) (*locationEvent, error) {
	var event locationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("malformed payload: %w", err)
	}
	if event.City == "" {
		return nil, fmt.Errorf("missing city")
	}
	if len(event.Alpha2Code) != 2 {
		return nil, fmt.Errorf("alpha2code must be exactly 2 characters")
	}
	return &event, nil
}

// Close shuts down the channel and connection.
func (c *Consumer) Close() error {
	if err := c.channel.Close(); err != nil {
		c.conn.Close()
		return err
	}
	return c.conn.Close()
}
