package main

import (
	"context"
	"log/slog"
	"os"

	"eats/config"
	"eats/internal/delivery"
	"eats/internal/delivery/gql"
	"eats/internal/delivery/http"
	"eats/internal/delivery/http/middleware"
	"eats/internal/delivery/http/validator"
	"eats/internal/infra/auth"
	logs "eats/internal/infra/log"
	"eats/internal/infra/mail"
	"eats/internal/infra/notification"
	"eats/internal/infra/persistence/postgres"
	"eats/internal/infra/pubsub"
	"eats/internal/infra/qrcode"
	"eats/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewVerificationRepository,
			postgres.NewRestaurantRepository,
			postgres.NewCategoryRepository,
			postgres.NewDishRepository,
			postgres.NewOrderRepository,
			postgres.NewPaymentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeServiceFromConfig,
			mail.NewSMTPSender,
			notification.NewNotifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewRestaurantService,
			impl.NewOrderService,
			impl.NewPaymentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				middleware.NewAuthMiddleware,
				fx.As(fx.Self()),
				fx.As(new(gql.Authenticator)),
			),
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				validator.New,
				fx.As(new(gql.Validator)),
			),
			gql.NewResolver,
			gql.NewHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
