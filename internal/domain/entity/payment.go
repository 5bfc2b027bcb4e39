package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payment records a transaction reported by a client for one of its orders.
type Payment struct {
	ID            uuid.UUID
	TransactionID string
	UserID        uuid.UUID
	OrderID       uuid.UUID
	CreatedAt     time.Time
}
