package pubsub

import (
	"context"
	"log/slog"

	"eats/config"
	"eats/internal/domain/constants"
	"eats/internal/domain/service"
	"eats/internal/infra/rabbitmq"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is used when no provider is configured
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishMailEvent(ctx context.Context, event *service.MailEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_id", event.EventID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	psCfg := cfg.PubSub
	if psCfg == nil || psCfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	switch psCfg.Provider {
	case constants.PubSubProviderLocal:
		if psCfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", psCfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(psCfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if psCfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if psCfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", psCfg.ProjectID),
			slog.String("topic_id", psCfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, psCfg.ProjectID, psCfg.TopicID, logger)

	case constants.PubSubProviderRabbitMQ:
		if cfg.RabbitMQ == nil {
			return nil, errors.New("rabbitmq configuration is required for rabbitmq provider")
		}
		conn, err := rabbitmq.Dial(cfg.RabbitMQ)
		if err != nil {
			return nil, err
		}
		logger.Info("Using RabbitMQ publisher",
			slog.String("host", cfg.RabbitMQ.Host),
			slog.String("exchange", cfg.RabbitMQ.Exchange),
		)

		return NewRabbitMQPublisher(conn, rabbitmq.Topology{
			Exchange: cfg.RabbitMQ.Exchange,
			Queue:    cfg.RabbitMQ.Queue,
		}, logger), nil

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", psCfg.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
