package usecase

import (
	"context"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateRestaurantInput describes a new restaurant. The category is created on demand.
type CreateRestaurantInput struct {
	Name         string `json:"name" validate:"required"`
	Address      string `json:"address" validate:"required"`
	CoverImage   string `json:"coverImg"`
	CategoryName string `json:"categoryName" validate:"required"`
}

// RestaurantsInput selects one page of restaurants, optionally within a category.
type RestaurantsInput struct {
	Page         int    `json:"page" validate:"gte=0"`
	CategorySlug string `json:"categorySlug"`
}

// RestaurantsOutput is one page of restaurants.
type RestaurantsOutput struct {
	Restaurants  []*entity.Restaurant
	TotalPages   int
	TotalResults int64
}

// CreateDishInput describes a new menu entry.
type CreateDishInput struct {
	RestaurantID uuid.UUID           `json:"restaurantId" validate:"required"`
	Name         string              `json:"name" validate:"required"`
	Description  string              `json:"description"`
	Price        decimal.Decimal     `json:"price"`
	Options      []entity.DishOption `json:"options"`
}

// RestaurantUsecase manages the restaurant catalog.
type RestaurantUsecase interface {
	CreateRestaurant(ctx context.Context, owner *entity.User, input *CreateRestaurantInput) (*entity.Restaurant, error)
	Restaurants(ctx context.Context, input *RestaurantsInput) (*RestaurantsOutput, error)
	Restaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	Categories(ctx context.Context) ([]*entity.Category, error)
	CreateDish(ctx context.Context, owner *entity.User, input *CreateDishInput) (*entity.Dish, error)
	// RestaurantQRCode renders a PNG QR code linking to the restaurant page.
	RestaurantQRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}
