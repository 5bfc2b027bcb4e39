// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID. PasswordHash is left empty.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindCredentialsByEmail retrieves a user including the password hash.
	FindCredentialsByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether an account uses the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new user. PasswordHash must already be hashed.
	Create(ctx context.Context, user *entity.User) error

	// Update saves email, role and verified flag.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
