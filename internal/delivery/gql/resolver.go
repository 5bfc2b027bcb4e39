// Package gql exposes the use cases as a GraphQL schema.
package gql

import (
	"context"
	"log/slog"

	deliverycontext "eats/internal/delivery/context"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/usecase"

	"github.com/graphql-go/graphql"
	"go.uber.org/fx"
)

// Validator checks struct tags on decoded inputs.
type Validator interface {
	Validate(i any) error
}

// Resolver binds GraphQL fields to use cases.
type Resolver struct {
	accounts    usecase.AccountUsecase
	restaurants usecase.RestaurantUsecase
	orders      usecase.OrderUsecase
	payments    usecase.PaymentUsecase
	validator   Validator
	logger      *slog.Logger
}

// ResolverParams holds dependencies for Resolver.
type ResolverParams struct {
	fx.In

	AccountSvc    usecase.AccountUsecase
	RestaurantSvc usecase.RestaurantUsecase
	OrderSvc      usecase.OrderUsecase
	PaymentSvc    usecase.PaymentUsecase
	Validator     Validator
	Logger        *slog.Logger
}

// NewResolver is the constructor for Resolver.
func NewResolver(params ResolverParams) *Resolver {
	return &Resolver{
		accounts:    params.AccountSvc,
		restaurants: params.RestaurantSvc,
		orders:      params.OrderSvc,
		payments:    params.PaymentSvc,
		validator:   params.Validator,
		logger:      params.Logger,
	}
}

func (r *Resolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// validate runs struct validation on an already decoded input.
func (r *Resolver) validate(input any) error {
	return r.validator.Validate(input)
}

// succeeded builds an {ok: true} result with the given payload.
func succeeded(payload map[string]any) map[string]any {
	out := map[string]any{"ok": true, "error": nil}
	for key, value := range payload {
		out[key] = value
	}

	return out
}

// failed builds an {ok: false} result. Only client-safe messages leave this function.
func (r *Resolver) failed(ctx context.Context, err error, fallback *domainerrors.BaseError) map[string]any {
	message := domainerrors.UserMessage(err, fallback)
	r.log(ctx).Debug("GraphQL operation failed",
		slog.String("message", message),
		slog.Any("error", err),
	)

	return map[string]any{"ok": false, "error": message}
}

// decode reads the "input" argument into out and validates it.
func (r *Resolver) decode(p graphql.ResolveParams, out any) error {
	if err := decodeArg(p, "input", out); err != nil {
		return err
	}

	return r.validate(out)
}
