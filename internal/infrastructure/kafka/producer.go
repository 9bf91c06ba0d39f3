package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/cartcraft/backend/internal/cfg"
	"github.com/cartcraft/backend/internal/usecase"
	"github.com/cartcraft/backend/pkg/e"
	"github.com/cartcraft/backend/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

// Producer публикует события order.placed в Kafka.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// PublishOrderPlaced отправляет событие размещения заказа.
// Ключ сообщения — идентификатор заказа, чтобы события одного заказа
// попадали в одну партицию.
func (p *Producer) PublishOrderPlaced(ctx context.Context, msg *usecase.OrderPlacedMsg) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(msg.OrderID, 10)),
		Value: value,
	})
}

// Close останавливает writer, дожидаясь отправки накопленных сообщений.
func (p *Producer) Close() error {
	return p.writer.Close()
}
