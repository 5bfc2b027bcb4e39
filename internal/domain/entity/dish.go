package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dish is a menu entry of a restaurant.
type Dish struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Price        decimal.Decimal
	RestaurantID uuid.UUID
	Options      []DishOption
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DishOption is a named modifier. It either carries a flat Extra or a list of Choices.
type DishOption struct {
	Name    string           `json:"name"`
	Extra   *decimal.Decimal `json:"extra,omitempty"`
	Choices []DishChoice     `json:"choices,omitempty"`
}

// DishChoice is a named alternative inside an option.
type DishChoice struct {
	Name  string           `json:"name"`
	Extra *decimal.Decimal `json:"extra,omitempty"`
}
