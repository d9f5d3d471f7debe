package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"arthive/config"
	"arthive/infras/otel"
	"arthive/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// Producer publishes domain events to the message broker. Consumers (the
// notification worker, analytics sinks) live outside this service.
type Producer interface {
	Publish(ctx context.Context, topic string, messages ...Message) error
}

type producerImpl struct {
	config *config.Config
	writer *kafkaGo.Writer
	otel   otel.Otel
}

func New(config *config.Config, ot otel.Otel) Producer {
	mechanism := plain.Mechanism{
		Username: config.External.Kafka.SASL.Username,
		Password: config.External.Kafka.SASL.Password,
	}

	writer := &kafkaGo.Writer{
		Addr:     kafkaGo.TCP(config.External.Kafka.Brokers...),
		Balancer: &kafkaGo.LeastBytes{},
		Transport: &kafkaGo.Transport{
			SASL: mechanism,
		},
	}

	log.Info().Strs("brokers", config.External.Kafka.Brokers).Msg("Kafka producer initialized")

	return &producerImpl{
		config: config,
		writer: writer,
		otel:   ot,
	}
}

func (p *producerImpl) Publish(ctx context.Context, topic string, messages ...Message) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelKafkaScopeName, constant.OtelKafkaScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("kafka.topic", topic)

	kafkaMessages := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		kafkaMessage, err := message.ToKafkaMessage()
		if err != nil {
			return err
		}

		kafkaMessage.Topic = topic
		kafkaMessages = append(kafkaMessages, kafkaMessage)
	}

	if err = p.writer.WriteMessages(ctx, kafkaMessages...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to publish messages")

		return fmt.Errorf("failed to publish messages to %s: %w", topic, err)
	}

	return nil
}
