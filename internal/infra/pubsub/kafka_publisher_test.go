package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"grainauth/internal/domain/service"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *service.UserCreatedEvent {
	return &service.UserCreatedEvent{
		RequestID: "req-1",
		Message:   service.UserCreatedMessage,
		User: service.EventUser{
			ID:       42,
			Username: "alice",
			Email:    "alice@example.com",
		},
	}
}

func TestKafkaPublisher_PublishUserCreated(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "new-user" {
			return errors.Errorf("unexpected topic %q", msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "42" {
			return errors.Errorf("unexpected key %q", key)
		}

		return nil
	})
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got service.UserCreatedEvent
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got.Message != service.UserCreatedMessage || got.User.Username != "alice" {
			return errors.Errorf("unexpected payload %s", val)
		}

		return nil
	})

	publisher := newKafkaPublisher(producer, "new-user", slog.New(slog.DiscardHandler))

	require.NoError(t, publisher.PublishUserCreated(context.Background(), testEvent()))
	require.NoError(t, publisher.PublishUserCreated(context.Background(), testEvent()))
	require.NoError(t, publisher.Close())
}

func TestKafkaPublisher_SendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := newKafkaPublisher(producer, "new-user", slog.New(slog.DiscardHandler))

	err := publisher.PublishUserCreated(context.Background(), testEvent())
	require.Error(t, err)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, publisher.Close())
}

func TestKafkaPublisher_CancelledContext(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	publisher := newKafkaPublisher(producer, "new-user", slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, publisher.PublishUserCreated(ctx, testEvent()), context.Canceled)
	require.NoError(t, publisher.Close())
}

func TestNewKafkaPublisher_Validation(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	_, err := NewKafkaPublisher(nil, "new-user", logger)
	assert.EqualError(t, err, "no kafka brokers specified")

	_, err = NewKafkaPublisher([]string{"localhost:9092"}, "", logger)
	assert.EqualError(t, err, "kafka topic is required")
}

func TestNewProducerConfig(t *testing.T) {
	cfg := newProducerConfig()

	assert.True(t, cfg.Producer.Return.Successes)
	assert.Equal(t, sarama.WaitForAll, cfg.Producer.RequiredAcks)
	require.NoError(t, cfg.Validate())
}
