package usecase

import (
	"context"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderItemInput picks a dish and its option selections.
type CreateOrderItemInput struct {
	DishID  uuid.UUID                `json:"dishId" validate:"required"`
	Options []entity.OrderItemOption `json:"options"`
}

// CreateOrderInput places an order against one restaurant.
type CreateOrderInput struct {
	RestaurantID uuid.UUID              `json:"restaurantId" validate:"required"`
	Items        []CreateOrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// GetOrdersInput optionally filters orders by status.
type GetOrdersInput struct {
	Status *entity.OrderStatus `json:"status,omitempty"`
}

// OrderUsecase prices, places and lists orders.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, customer *entity.User, input *CreateOrderInput) (*entity.Order, error)
	// GetOrders lists the orders the user takes part in, according to its role.
	GetOrders(ctx context.Context, user *entity.User, input *GetOrdersInput) ([]*entity.Order, error)
	GetOrder(ctx context.Context, user *entity.User, id uuid.UUID) (*entity.Order, error)
}
