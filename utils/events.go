package utils

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

// Event is the JSON envelope written to the topic.
type Event struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// KafkaPublisher writes lifecycle events asynchronously. Failures are logged and dropped.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(broker, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(broker),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           50 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish never blocks the caller; the write runs on its own context so a finished
// request does not cancel it.
func (p *KafkaPublisher) Publish(_ context.Context, event string, payload interface{}) {
	value, err := json.Marshal(Event{Type: event, OccurredAt: time.Now().UTC(), Payload: payload})
	if err != nil {
		GetLogger().Error("Failed to encode event", zap.String("event", event), zap.Error(err))
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		err := p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(event),
			Value: value,
		})
		if err != nil {
			GetLogger().Warn("Failed to publish event", zap.String("event", event), zap.Error(err))
		}
	}()
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
