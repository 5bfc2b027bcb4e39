package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	Base
	CustomerID   uuid.UUID        `gorm:"type:uuid;index;not null"`
	Customer     *UserModel       `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	DriverID     *uuid.UUID       `gorm:"type:uuid;index"`
	Driver       *UserModel       `gorm:"foreignKey:DriverID;constraint:OnDelete:SET NULL"`
	RestaurantID uuid.UUID        `gorm:"type:uuid;index;not null"`
	Restaurant   *RestaurantModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Total        decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	Status       string           `gorm:"type:varchar(20);index;not null"`
	Items        []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemOptionJSON is the stored selection of an option and choice.
type OrderItemOptionJSON struct {
	Name   string `json:"name"`
	Choice string `json:"choice,omitempty"`
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	Base
	OrderID  uuid.UUID                                `gorm:"type:uuid;index;not null"`
	Position int                                      `gorm:"not null;default:0"`
	DishID   uuid.UUID                                `gorm:"type:uuid;index;not null"`
	Dish     *DishModel                               `gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE"`
	Options  datatypes.JSONSlice[OrderItemOptionJSON] `gorm:"type:json"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// PaymentModel mirrors the 'payments' table.
type PaymentModel struct {
	Base
	TransactionID string      `gorm:"type:varchar(255);not null"`
	UserID        uuid.UUID   `gorm:"type:uuid;index;not null"`
	User          *UserModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	OrderID       uuid.UUID   `gorm:"type:uuid;index;not null"`
	Order         *OrderModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
