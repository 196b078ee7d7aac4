package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/Gunvolt24/party_registry/internal/domain"
	"github.com/Gunvolt24/party_registry/internal/ports"
	"github.com/Gunvolt24/party_registry/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var (
	_ ports.PartyEventPublisher = (*Producer)(nil)
	_ ports.PartyEventPublisher = NoopPublisher{}
)

// writer — то, что продюсеру нужно от kafka.Writer.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ProducerConfig — параметры публикации событий.
type ProducerConfig struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration // 0 — значение kafka-go по умолчанию
}

// Producer — публикует PartyEvent в JSON; ключ сообщения — id партии,
// так что события одной партии попадают в одну партицию по порядку.
type Producer struct {
	w     writer
	topic string
}

func NewProducer(cfg *ProducerConfig) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
		topic: cfg.Topic,
	}
}

func (p *Producer) Publish(ctx context.Context, event domain.PartyEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.Party.ID, 10)),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		metrics.EventsPublished.WithLabelValues(string(event.Type), "error").Inc()
		return fmt.Errorf("publish %s to %s: %w", event.Type, p.topic, err)
	}
	metrics.EventsPublished.WithLabelValues(string(event.Type), "ok").Inc()
	return nil
}

func (p *Producer) Close() error { return p.w.Close() }

// NoopPublisher — публикация выключена.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, domain.PartyEvent) error { return nil }
func (NoopPublisher) Close() error                                    { return nil }
