package impl

import (
	"context"
	"log/slog"

	domainerrors "eats/internal/domain/errors"

	"github.com/pkg/errors"
)

// safeError keeps domain errors as they are and replaces anything else with
// fallback, logging the cause so it never reaches the client.
func safeError(ctx context.Context, logger *slog.Logger, err error, fallback *domainerrors.BaseError, msg string) error {
	var baseErr *domainerrors.BaseError
	if errors.As(err, &baseErr) {
		return err
	}

	logger.ErrorContext(ctx, msg, slog.Any("error", err))

	return fallback
}
