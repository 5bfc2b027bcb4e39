package repository

import (
	"context"
	"errors"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrRestaurantNotFound is returned when a restaurant lookup misses.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrCategoryNotFound is returned when a category lookup misses.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDishNotFound is returned when a dish lookup misses.
	ErrDishNotFound = errors.New("dish not found")
)

// RestaurantFilter narrows restaurant listings.
type RestaurantFilter struct {
	CategorySlug string
	Offset       int
	Limit        int
}

// RestaurantRepository persists restaurants.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error

	// FindByID loads the restaurant with its category and dishes.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// List returns one page of restaurants and the total number of matches.
	List(ctx context.Context, filter RestaurantFilter) ([]*entity.Restaurant, int64, error)
}

// CategoryRepository persists restaurant categories.
type CategoryRepository interface {
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error

	// List returns all categories with RestaurantCount filled.
	List(ctx context.Context) ([]*entity.Category, error)
}

// DishRepository persists dishes.
type DishRepository interface {
	Create(ctx context.Context, dish *entity.Dish) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error)
}
