package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus tracks an order from placement to delivery.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCooking   OrderStatus = "Cooking"
	OrderStatusCooked    OrderStatus = "Cooked"
	OrderStatusPickedUp  OrderStatus = "PickedUp"
	OrderStatusDelivered OrderStatus = "Delivered"
)

// IsValid reports whether s is a known status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCooking, OrderStatusCooked, OrderStatusPickedUp, OrderStatusDelivered:
		return true
	default:
		return false
	}
}

// OrderStatuses lists every status in lifecycle order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusPending, OrderStatusCooking, OrderStatusCooked, OrderStatusPickedUp, OrderStatusDelivered}
}

// Order is placed by a client against a single restaurant.
type Order struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	DriverID     *uuid.UUID
	RestaurantID uuid.UUID
	Restaurant   *Restaurant // Populated by lookups that need ownership checks.
	Total        decimal.Decimal
	Status       OrderStatus
	Items        []*OrderItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderItem is one dish of an order together with the selected options.
type OrderItem struct {
	ID      uuid.UUID
	DishID  uuid.UUID
	Dish    *Dish
	Options []OrderItemOption
}

// OrderItemOption selects an option by name and, optionally, one of its choices.
// Prices are never stored here.
type OrderItemOption struct {
	Name   string `json:"name"`
	Choice string `json:"choice,omitempty"`
}

// CanBeSeenBy reports whether userID is the customer, the driver or the restaurant owner.
func (o *Order) CanBeSeenBy(userID uuid.UUID) bool {
	if o == nil {
		return false
	}
	if o.CustomerID == userID {
		return true
	}
	if o.DriverID != nil && *o.DriverID == userID {
		return true
	}

	return o.Restaurant.IsOwnedBy(userID)
}
