package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"eats/internal/domain/service"
	"eats/internal/infra/rabbitmq"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

type rabbitMQPublisher struct {
	conn     rabbitmq.Connection
	topology rabbitmq.Topology
	logger   *slog.Logger
}

// NewRabbitMQPublisher publishes mail events as persistent JSON messages on the topology's exchange.
func NewRabbitMQPublisher(conn rabbitmq.Connection, topology rabbitmq.Topology, logger *slog.Logger) service.EventPublisher {
	return &rabbitMQPublisher{
		conn:     conn,
		topology: topology,
		logger:   logger,
	}
}

func (p *rabbitMQPublisher) PublishMailEvent(ctx context.Context, event *service.MailEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := p.topology.DeclareExchange(ch); err != nil {
		return err
	}

	headers := amqp.Table{}
	for key, value := range eventAttributes(event) {
		headers[key] = value
	}

	err = ch.PublishWithContext(ctx, p.topology.Exchange, rabbitmq.MailRoutingKey, false, false, amqp.Publishing{
		DeliveryMode:  amqp.Persistent,
		ContentType:   "application/json",
		MessageId:     event.EventID,
		CorrelationId: event.RequestID,
		Timestamp:     time.Now().UTC(),
		Headers:       headers,
		Body:          body,
	})
	if err != nil {
		return errors.Wrap(err, "publish mail event")
	}

	p.logger.InfoContext(ctx, "[RabbitMQ] Event published",
		slog.String("exchange", p.topology.Exchange),
		slog.String("event_id", event.EventID),
	)

	return nil
}

func (p *rabbitMQPublisher) Close() error {
	return p.conn.Close()
}
