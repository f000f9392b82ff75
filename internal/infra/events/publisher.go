package events

import (
	"context"
	"encoding/json"
	"strconv"

	"bookwise/internal/pkg/config"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher hands booking-created events to downstream notification and
// payment consumers. Keyed by provider id so one provider's bookings stay
// ordered on a single partition.
type KafkaPublisher struct {
	writer *kafka.Writer
	topic  string
}

func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		Balancer: &kafka.Hash{},
	})
	return &KafkaPublisher{writer: writer, topic: cfg.Topic}
}

func (p *KafkaPublisher) PublishBookingCreated(ctx context.Context, ev shared.BookingCreatedEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "encode booking event")
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(ev.ProviderID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(uuid.NewString())},
			{Key: "event_type", Value: []byte(p.topic)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "publish booking event")
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
