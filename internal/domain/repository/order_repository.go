package repository

import (
	"context"
	"errors"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order lookup misses.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows order listings. Exactly one of the party IDs is expected.
type OrderFilter struct {
	CustomerID *uuid.UUID
	DriverID   *uuid.UUID
	OwnerID    *uuid.UUID // Orders of restaurants owned by this user.
	Status     *entity.OrderStatus
}

// OrderRepository persists orders and their items.
type OrderRepository interface {
	// Create inserts the order and all of its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID loads the order with items and restaurant.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
}

// PaymentRepository persists payment records.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error)
}
