package messaging

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/segmentio/kafka-go"
	"github.com/vfg2006/saturation-api/internal/config"
	"github.com/vfg2006/saturation-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ForecastPublisher publica um evento a cada previsão concluída
type ForecastPublisher interface {
	Publish(ctx context.Context, event domain.ForecastEvent) error
	Close() error
}

// messageWriter é a parte do kafka.Writer usada pelo publisher
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaForecastPublisher struct {
	writer messageWriter
}

func NewKafkaForecastPublisher(cfg config.Kafka) (ForecastPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("publisher de previsões exige ao menos um broker")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("publisher de previsões exige um tópico")
	}

	return newForecastPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}), nil
}

func newForecastPublisher(writer messageWriter) *kafkaForecastPublisher {
	return &kafkaForecastPublisher{writer: writer}
}

// Publish usa o id da campanha como chave para manter os eventos de uma campanha na mesma partição
func (p *kafkaForecastPublisher) Publish(ctx context.Context, event domain.ForecastEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("erro ao serializar evento de previsão: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.CampaignID),
		Value: payload,
		Time:  event.GeneratedAt.UTC(),
		Headers: []kafka.Header{
			{Key: "model_version", Value: []byte(event.ModelVersion)},
		},
	})
	if err != nil {
		return fmt.Errorf("erro ao publicar evento de previsão: %w", err)
	}

	return nil
}

func (p *kafkaForecastPublisher) Close() error {
	return p.writer.Close()
}
