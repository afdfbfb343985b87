package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/yahya159/bidinsouk-sub002/internal/domain"
)

// AuctionEventPublisher writes auction domain events to a kafka topic, keyed
// by auction id so events for one auction stay in order.
type AuctionEventPublisher struct {
	writer *kafka.Writer
}

func NewAuctionEventPublisher(brokers []string, topic string) *AuctionEventPublisher {
	return &AuctionEventPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *AuctionEventPublisher) PublishAuctionEvent(ctx context.Context, event domain.AuctionEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.AuctionID),
		Value: value,
		Time:  time.Now(),
	})
}

func (p *AuctionEventPublisher) Close() error {
	return p.writer.Close()
}
