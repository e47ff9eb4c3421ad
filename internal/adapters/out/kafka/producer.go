// Package kafka publishes order status events to a Kafka topic.
//
// Each event becomes one message keyed by the order id, so all changes of one order
// land on the same partition in the order they were committed.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/order"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// StatusChangedMessage is the JSON value of an order.status_changed message.
type StatusChangedMessage struct {
	OrderID    string    `json:"orderId"`
	UserID     string    `json:"userId"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurredAt"`
}

type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer implements ports.EventPublisher on top of a kafka-go writer.
type Producer struct {
	w     writer
	topic string
}

// NewProducer creates a producer for topic on the given brokers.
func NewProducer(brokers []string, topic string) *Producer {
	return newProducerWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}, topic)
}

func newProducerWithWriter(w writer, topic string) *Producer {
	return &Producer{w: w, topic: topic}
}

// Publish writes all events in one batch.
func (p *Producer) Publish(ctx context.Context, events []order.StatusChanged) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(StatusChangedMessage{
			OrderID:    e.OrderID.String(),
			UserID:     e.UserID.String(),
			From:       e.From.String(),
			To:         e.To.String(),
			OccurredAt: e.OccurredAt.UTC(),
		})
		if err != nil {
			return errors.Wrap(err, "kafka encode")
		}
		msgs = append(msgs, kafka.Message{
			Topic: p.topic,
			Key:   []byte(e.OrderID.String()),
			Value: value,
		})
	}

	if err := p.w.WriteMessages(ctx, msgs...); err != nil {
		return errors.Wrap(err, "kafka publish")
	}
	return nil
}

// Close flushes pending writes and closes the connection.
func (p *Producer) Close() error {
	return p.w.Close()
}
