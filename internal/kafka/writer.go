package kafka

import (
	"context"
	"fmt"
	"github.com/bgstats/play-service/internal/config"
	"github.com/bgstats/play-service/internal/repository/model"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"strconv"
	"time"
)

const writeTopic = "bg-stats-plays"

const (
	PlaysSavedEvent             = "PlaysSaved"
	PlaysDeletedEvent           = "PlaysDeleted"
	BoardGameStatusUpdatedEvent = "BoardGameStatusUpdated"
)

//go:generate mockgen -destination=../mocks/mock_notifier.go -package=mocks github.com/bgstats/play-service/internal/kafka Notifier

type Notifier interface {
	PlaysSaved(ctx context.Context, objectID int, count int) error
	PlaysDeleted(ctx context.Context, objectID int) error
	BoardGameStatusUpdated(ctx context.Context, status *model.BoardGameStatus) error

	Close() error
}

type kafkaNotifier struct {
	w *kafka.Writer
}

func NewKafkaNotifier(cfg config.KafkaConfig, logger *zap.SugaredLogger) Notifier {
	w := &kafka.Writer{
		Addr:            kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:           writeTopic,
		Balancer:        &kafka.Hash{},
		Async:           true,
		WriteBackoffMin: 10 * time.Millisecond,
		BatchSize:       100,
		BatchTimeout:    100 * time.Millisecond,
		ErrorLogger:     kafka.LoggerFunc(logger.Errorf),
	}

	return &kafkaNotifier{w: w}
}

func (n *kafkaNotifier) PlaysSaved(ctx context.Context, objectID int, count int) error {
	return n.write(ctx, PlaysSavedEvent, objectID, map[string]any{"count": count})
}

func (n *kafkaNotifier) PlaysDeleted(ctx context.Context, objectID int) error {
	return n.write(ctx, PlaysDeletedEvent, objectID, nil)
}

func (n *kafkaNotifier) BoardGameStatusUpdated(ctx context.Context, status *model.BoardGameStatus) error {
	return n.write(ctx, BoardGameStatusUpdatedEvent, status.ObjectID, map[string]any{
		"importSuccessful": status.ImportSuccessful,
		"playCount":        status.PlayCount,
		"lastImportedPage": status.LastImportedPage,
	})
}

func (n *kafkaNotifier) Close() error {
	return n.w.Close()
}

func (n *kafkaNotifier) write(ctx context.Context, eventType string, objectID int, fields map[string]any) error {
	msg, err := newEventMessage(eventType, objectID, fields)
	if err != nil {
		return err
	}

	if err := n.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

// newEventMessage keys the message by object id so every event for a game lands on the same partition.
func newEventMessage(eventType string, objectID int, fields map[string]any) (kafka.Message, error) {
	values := map[string]any{
		"eventId":    uuid.NewString(),
		"type":       eventType,
		"objectId":   objectID,
		"occurredAt": time.Now().UTC().Format(time.RFC3339Nano),
	}
	for k, v := range fields {
		values[k] = v
	}

	payload, err := structpb.NewStruct(values)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to build event payload: %w", err)
	}

	bytes, err := proto.Marshal(payload)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal proto to bytes: %w", err)
	}

	return kafka.Message{
		Key: []byte(strconv.Itoa(objectID)),
		Headers: []kafka.Header{
			{Key: "X-Proto-Type", Value: []byte(payload.ProtoReflect().Descriptor().FullName())},
			{Key: "X-Event-Type", Value: []byte(eventType)},
		},
		Value: bytes,
	}, nil
}

type noopNotifier struct{}

// NewNoopNotifier is used when no Kafka broker is configured.
func NewNoopNotifier() Notifier {
	return noopNotifier{}
}

func (noopNotifier) PlaysSaved(context.Context, int, int) error { return nil }

func (noopNotifier) PlaysDeleted(context.Context, int) error { return nil }

func (noopNotifier) BoardGameStatusUpdated(context.Context, *model.BoardGameStatus) error { return nil }

func (noopNotifier) Close() error { return nil }
