// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can order food, own restaurants or deliver orders.
type User struct {
	ID           uuid.UUID // Global unique identifier.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt hash. Empty unless loaded explicitly for credential checks.
	Role         Role      // Client, Owner or Delivery.
	Verified     bool      // Set once a verification code is consumed.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Verification binds a single-use code to a user.
type Verification struct {
	ID        uuid.UUID
	Code      string
	UserID    uuid.UUID
	User      *User // Populated when looked up by code.
	CreatedAt time.Time
}
