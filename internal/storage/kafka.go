package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/PraneethAmbegoda/restaurant-menu-app/internal/domain"
)

// KafkaPublisher streams order events keyed by table ID so events for one
// table stay in partition order.
type KafkaPublisher struct {
	Writer *kafka.Writer
	ctx    context.Context
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{
		Writer: writer,
		ctx:    context.Background(),
	}
}

func (p *KafkaPublisher) PublishOrderEvent(event domain.OrderEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(p.ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.TableID), 10)),
		Value: payload,
	})
}
