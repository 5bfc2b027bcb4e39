// Package model holds the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the primary key and timestamps shared by every table.
// IDs are generated in the application so the schema stays portable.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (b *Base) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	return nil
}

// All lists every model in dependency order for migrations.
func All() []any {
	return []any{
		&UserModel{},
		&VerificationModel{},
		&CategoryModel{},
		&RestaurantModel{},
		&DishModel{},
		&OrderModel{},
		&OrderItemModel{},
		&PaymentModel{},
	}
}

// AutoMigrate creates or updates every table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
