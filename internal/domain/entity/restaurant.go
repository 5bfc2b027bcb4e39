package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups restaurants. Slug is derived from Name.
type Category struct {
	ID              uuid.UUID
	Name            string
	Slug            string
	CoverImage      string
	RestaurantCount int64 // Filled by listing queries only.
}

// Restaurant is owned by a user with the Owner role and serves a menu of dishes.
type Restaurant struct {
	ID         uuid.UUID
	Name       string
	Address    string
	CoverImage string
	OwnerID    uuid.UUID
	CategoryID *uuid.UUID
	Category   *Category
	Dishes     []*Dish
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOwnedBy reports whether userID owns the restaurant.
func (r *Restaurant) IsOwnedBy(userID uuid.UUID) bool {
	return r != nil && r.OwnerID == userID
}
