// Package service declares the ports the use cases depend on. Implementations
// live under internal/infra.
package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// PasswordHasher hashes account passwords before they are stored.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}

// Claims is the payload of an identity token. The user id travels as "id".
type Claims struct {
	UserID uuid.UUID `json:"id"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies identity tokens carrying a user ID.
type TokenService interface {
	Sign(userID uuid.UUID) (string, error)

	// Verify checks signature and expiry and returns the claims.
	Verify(tokenString string) (*Claims, error)
}
