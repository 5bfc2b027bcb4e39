package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	Base
	Name       string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Slug       string `gorm:"type:varchar(120);uniqueIndex;not null"`
	CoverImage string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// RestaurantModel mirrors the 'restaurants' table.
type RestaurantModel struct {
	Base
	Name       string         `gorm:"type:varchar(100);not null"`
	Address    string         `gorm:"type:varchar(255);not null"`
	CoverImage string         `gorm:"type:text"`
	OwnerID    uuid.UUID      `gorm:"type:uuid;index;not null"`
	Owner      *UserModel     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	CategoryID *uuid.UUID     `gorm:"type:uuid;index"`
	Category   *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Dishes     []DishModel    `gorm:"foreignKey:RestaurantID"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// DishOptionJSON is the stored form of a dish option.
type DishOptionJSON struct {
	Name    string           `json:"name"`
	Extra   *decimal.Decimal `json:"extra,omitempty"`
	Choices []DishChoiceJSON `json:"choices,omitempty"`
}

// DishChoiceJSON is the stored form of an option choice.
type DishChoiceJSON struct {
	Name  string           `json:"name"`
	Extra *decimal.Decimal `json:"extra,omitempty"`
}

// DishModel mirrors the 'dishes' table. Options live in a JSON column.
type DishModel struct {
	Base
	Name         string                              `gorm:"type:varchar(100);not null"`
	Description  string                              `gorm:"type:varchar(255)"`
	Price        decimal.Decimal                     `gorm:"type:numeric(10,2);not null"`
	RestaurantID uuid.UUID                           `gorm:"type:uuid;index;not null"`
	Restaurant   *RestaurantModel                    `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Options      datatypes.JSONSlice[DishOptionJSON] `gorm:"type:json"`
}

// TableName explicitly sets the table name for GORM.
func (DishModel) TableName() string {
	return "dishes"
}
