package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"grainauth/internal/domain/service"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// kafkaPublisher sends user events to a Kafka topic with a sync producer.
type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewKafkaPublisher connects a sync producer to brokers.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (service.EventPublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("no kafka brokers specified")
	}
	if topic == "" {
		return nil, errors.New("kafka topic is required")
	}

	producer, err := sarama.NewSyncProducer(brokers, newProducerConfig())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka producer")
	}

	logger.Info("Kafka publisher initialized",
		slog.Any("brokers", brokers),
		slog.String("topic", topic),
	)

	return newKafkaPublisher(producer, topic, logger), nil
}

func newKafkaPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

func newProducerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = "grainauth"
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Retry.Backoff = 500 * time.Millisecond
	cfg.Producer.Timeout = 10 * time.Second
	cfg.Producer.RequiredAcks = sarama.WaitForAll

	return cfg
}

// PublishUserCreated keys the message by user id so events for one user stay ordered.
func (p *kafkaPublisher) PublishUserCreated(ctx context.Context, event *service.UserCreatedEvent) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "context done before sending")
	}

	value, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	key := strconv.FormatInt(event.User.ID, 10)
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}
	if event.RequestID != "" {
		msg.Headers = []sarama.RecordHeader{
			{Key: []byte("request_id"), Value: []byte(event.RequestID)},
		}
	}

	start := time.Now()
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return errors.Wrapf(err, "send to topic %s", p.topic)
	}

	p.logger.Info("[Kafka] Event published",
		slog.String("topic", p.topic),
		slog.String("key", key),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
		slog.Duration("latency", time.Since(start)),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	if p.producer == nil {
		return nil
	}

	return errors.WithStack(p.producer.Close())
}
