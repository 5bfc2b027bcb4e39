package worker

import (
	"context"
	"log/slog"
	"sync"

	"eats/config"
	"eats/internal/delivery"
	"eats/internal/delivery/worker/handler"
	"eats/internal/domain/constants"
	"eats/internal/infra/rabbitmq"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// queueConsumer feeds RabbitMQ deliveries to the mail processor.
type queueConsumer struct {
	enabled   bool
	cfg       *config.RabbitMQConfig
	dial      func(*config.RabbitMQConfig) (rabbitmq.Connection, error)
	processor *handler.MailProcessor
	logger    *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// ConsumerParams holds dependencies for the queue consumer
type ConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *handler.MailProcessor
}

// NewConsumer creates the RabbitMQ delivery. It idles unless pubsub.provider is rabbitmq.
func NewConsumer(params ConsumerParams) (delivery.Delivery, error) {
	enabled := params.Cfg.PubSub != nil && params.Cfg.PubSub.Provider == constants.PubSubProviderRabbitMQ
	if enabled && params.Cfg.RabbitMQ == nil {
		return nil, errors.New("rabbitmq provider selected without rabbitmq config")
	}

	c := &queueConsumer{
		enabled:   enabled,
		cfg:       params.Cfg.RabbitMQ,
		dial:      rabbitmq.Dial,
		processor: params.Processor,
		logger:    params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c, nil
}

// Serve blocks while consuming.
func (c *queueConsumer) Serve(ctx context.Context) error {
	if !c.enabled {
		c.logger.Info("RabbitMQ consumer disabled")

		return nil
	}

	conn, err := c.dial(c.cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	defer close(done)

	c.mu.Lock()
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()

	topology := rabbitmq.Topology{Exchange: c.cfg.Exchange, Queue: c.cfg.Queue}
	consumer := rabbitmq.NewConsumer(conn, topology, c.cfg.Prefetch, c.logger)

	return consumer.Run(ctx, c.processor.HandleMessage)
}

func (c *queueConsumer) stop(ctx context.Context) error {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.mu.Unlock()

	if cancel == nil {
		return nil
	}

	c.logger.Info("Stopping RabbitMQ consumer")
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
