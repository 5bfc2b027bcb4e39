package repository

import (
	"context"
	"errors"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVerificationNotFound is returned when no verification matches.
var ErrVerificationNotFound = errors.New("verification not found")

// VerificationRepository persists single-use verification codes.
type VerificationRepository interface {
	Create(ctx context.Context, verification *entity.Verification) error

	// FindByCode loads the verification together with its user.
	FindByCode(ctx context.Context, code string) (*entity.Verification, error)

	DeleteByID(ctx context.Context, id uuid.UUID) error

	// DeleteByUserID removes any live verification of the user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
