package rabbitmq

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const defaultReconnectDelay = 5 * time.Second

// Handler processes one message body.
// Errors implementing Temporary() bool with true are requeued, all others go to the dead-letter queue.
type Handler func(ctx context.Context, body []byte) error

type Consumer struct {
	conn           Connection
	topology       Topology
	prefetch       int
	reconnectDelay time.Duration
	logger         *slog.Logger
}

func NewConsumer(conn Connection, topology Topology, prefetch int, logger *slog.Logger) *Consumer {
	if prefetch <= 0 {
		prefetch = 1
	}

	return &Consumer{
		conn:           conn,
		topology:       topology,
		prefetch:       prefetch,
		reconnectDelay: defaultReconnectDelay,
		logger:         logger,
	}
}

// Run consumes until ctx is cancelled, reopening the channel after broker failures.
func (c *Consumer) Run(ctx context.Context, handler Handler) error {
	for {
		err := c.consume(ctx, handler)
		if ctx.Err() != nil {
			return nil
		}
		if errors.Is(err, ErrConnectionClosed) {
			return err
		}

		c.logger.Warn("Mail consumer disconnected, reconnecting",
			slog.Any("error", err),
			slog.Duration("delay", c.reconnectDelay),
		)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(c.reconnectDelay):
		}
	}
}

func (c *Consumer) consume(ctx context.Context, handler Handler) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	closed := ch.NotifyClose(make(chan *amqp.Error, 1))

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return errors.Wrap(err, "set QoS")
	}
	if err := c.topology.Declare(ch); err != nil {
		return err
	}

	deliveries, err := ch.Consume(c.topology.Queue, "", false, false, false, false, nil)
	if err != nil {
		return errors.Wrap(err, "start consuming")
	}
	c.logger.Info("Mail consumer started", slog.String("queue", c.topology.Queue))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case amqpErr := <-closed:
			if amqpErr != nil {
				return errors.Wrap(amqpErr, "channel closed")
			}

			return errors.New("channel closed")

		case delivery, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}

			c.dispatch(ctx, handler, delivery)
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, handler Handler, delivery amqp.Delivery) {
	err := handler(ctx, delivery.Body)
	if err == nil {
		if ackErr := delivery.Ack(false); ackErr != nil {
			c.logger.Error("Failed to ack message", slog.Any("error", ackErr))
		}

		return
	}

	requeue := isTemporary(err)
	c.logger.Warn("Mail message rejected",
		slog.Any("error", err),
		slog.Bool("requeue", requeue),
	)
	if nackErr := delivery.Nack(false, requeue); nackErr != nil {
		c.logger.Error("Failed to nack message", slog.Any("error", nackErr))
	}
}

func isTemporary(err error) bool {
	var temporary interface{ Temporary() bool }

	return errors.As(err, &temporary) && temporary.Temporary()
}
