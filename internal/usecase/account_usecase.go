// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateAccountInput defines the data required to open an account.
type CreateAccountInput struct {
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Role     entity.Role `json:"role" validate:"required,oneof=Client Owner Delivery"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// EditProfileInput carries the fields to change. Nil fields are left untouched.
type EditProfileInput struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=1"`
}

// --- Output DTOs ---

// LoginOutput returns the signed identity token.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// AccountUsecase covers registration, authentication and email verification.
// Every returned error carries a client-safe message (see domainerrors.UserMessage).
type AccountUsecase interface {
	CreateAccount(ctx context.Context, input *CreateAccountInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	EditProfile(ctx context.Context, userID uuid.UUID, input *EditProfileInput) (*entity.User, error)
	VerifyEmail(ctx context.Context, code string) error
}
