// Package kafka publishes shipment lifecycle events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/metrics"

	skafka "github.com/segmentio/kafka-go"
)

const DefaultTopic = "shipment-lifecycle"

// Writer is the subset of kafka.Writer the publisher uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

type Config struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// Publisher implements ports.EventPublisher. Messages are keyed by shipment id so that
// one shipment's events stay ordered within a partition.
type Publisher struct {
	writer  Writer
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewPublisher(config Config, logger *slog.Logger, m *metrics.Metrics) *Publisher {
	topic := config.Topic
	if topic == "" {
		topic = DefaultTopic
	}
	writeTimeout := config.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}

	w := &skafka.Writer{
		Addr:                   skafka.TCP(config.Brokers...),
		Topic:                  topic,
		Balancer:               &skafka.Hash{},
		RequiredAcks:           skafka.RequireAll,
		WriteTimeout:           writeTimeout,
		AllowAutoTopicCreation: true,
	}
	return NewPublisherWithWriter(w, logger, m)
}

// NewPublisherWithWriter allows injecting a test writer.
func NewPublisherWithWriter(w Writer, logger *slog.Logger, m *metrics.Metrics) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		writer:  w,
		logger:  logger.With("component", "kafka.Publisher"),
		metrics: m,
	}
}

func (p *Publisher) Publish(ctx context.Context, event shipment.Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	msg := skafka.Message{
		Key:   []byte(strconv.FormatInt(event.ShipmentID, 10)),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []skafka.Header{
			{Key: "type", Value: []byte(event.Type)},
			{Key: "content-type", Value: []byte("application/json")},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.metrics.RecordEventPublished(string(event.Type), metrics.OutcomeFailure)
		return fmt.Errorf("publish %s event for shipment %d: %w", event.Type, event.ShipmentID, err)
	}

	p.metrics.RecordEventPublished(string(event.Type), metrics.OutcomeSuccess)
	p.logger.DebugContext(ctx, "event published", "type", event.Type, "shipmentId", event.ShipmentID)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops events. It is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, shipment.Event) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
