package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/segmentio/kafka-go"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// publishBatchTimeout limita a espera do writer por um lote, já que Publish
// roda dentro da requisição
const publishBatchTimeout = 5 * time.Millisecond

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher envia os alertas do promotor para os tópicos configurados por tipo de evento
type KafkaPublisher struct {
	writer       messageWriter
	topicByEvent map[string]string
}

func NewKafkaPublisher(brokers []string, topicByEvent map[string]string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("o publicador kafka exige ao menos um broker")
	}

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           publishBatchTimeout,
			WriteTimeout:           5 * time.Second,
		},
		topicByEvent: topicByEvent,
	}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.AlertEvent) error {
	topic := event.Type
	if mapped, ok := p.topicByEvent[event.Type]; ok && mapped != "" {
		topic = mapped
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("erro ao codificar evento %s: %w", event.Type, err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(event.PartitionKey()),
		Value: payload,
		Time:  event.OccurredAt.UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("erro ao publicar evento %s no tópico %s: %w", event.Type, topic, err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher apenas registra o evento; usado quando KAFKA_BROKERS não está configurado
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Publish(ctx context.Context, event domain.AlertEvent) error {
	log.ForContext(ctx).WithFields(log.Fields{
		"event":       event.Type,
		"store":       event.Store,
		"product_sku": event.ProductSKU,
		"severity":    event.Severity,
	}).Info(event.Message)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
