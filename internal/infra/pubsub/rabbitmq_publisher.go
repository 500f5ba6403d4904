package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"ecommerce/config"
	"ecommerce/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitMQPublisher sends events to a queue through the default exchange.
type rabbitMQPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *slog.Logger

	// amqp channels are not safe for concurrent publishing
	mu sync.Mutex
}

// NewRabbitMQPublisher dials the broker and declares the queue.
func NewRabbitMQPublisher(cfg config.RabbitMQConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("rabbitmq url is required")
	}
	if strings.TrimSpace(cfg.Queue) == "" {
		return nil, errors.New("rabbitmq queue is required")
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "open rabbitmq channel")
	}

	if _, err := ch.QueueDeclare(cfg.Queue, cfg.QueueDurable, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrapf(err, "declare queue %s", cfg.Queue)
	}

	logger.Info("RabbitMQ publisher initialized", slog.String("queue", cfg.Queue))

	return &rabbitMQPublisher{
		conn:    conn,
		channel: ch,
		queue:   cfg.Queue,
		logger:  logger,
	}, nil
}

func (p *rabbitMQPublisher) PublishProductEvent(ctx context.Context, event *service.ProductEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{"product_id": event.ProductID}
	for key, value := range eventAttributes(event) {
		headers[key] = value
	}

	msg := amqp.Publishing{
		ContentType:   "application/json",
		MessageId:     uuid.NewString(),
		CorrelationId: event.RequestID,
		Timestamp:     event.OccurredAt,
		Type:          string(event.Type),
		Headers:       headers,
		Body:          data,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return errors.Wrap(err, "publish to rabbitmq")
	}

	return nil
}

// Close closes the underlying channel and connection.
func (p *rabbitMQPublisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return errors.WithStack(p.conn.Close())
	}

	return nil
}
