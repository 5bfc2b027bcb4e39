// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"eats/internal/domain/entity"
	"eats/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database with the full schema.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Discard,
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the shared in-memory database alive and serialises writers.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, model.AutoMigrate(db))

	return db
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SeedUser inserts a user row directly.
func SeedUser(t *testing.T, db *gorm.DB, email string, role entity.Role) *entity.User {
	t.Helper()

	userM := &model.UserModel{Email: email, Password: "hash", Role: role.String()}
	require.NoError(t, db.WithContext(context.Background()).Create(userM).Error)

	return &entity.User{ID: userM.ID, Email: email, Role: role}
}

// SeedRestaurant inserts a restaurant owned by ownerID.
func SeedRestaurant(t *testing.T, db *gorm.DB, ownerID uuid.UUID, name string) *entity.Restaurant {
	t.Helper()

	restaurantM := &model.RestaurantModel{Name: name, Address: "1 Main St", OwnerID: ownerID}
	require.NoError(t, db.Omit("Owner", "Category", "Dishes").Create(restaurantM).Error)

	return &entity.Restaurant{ID: restaurantM.ID, Name: name, OwnerID: ownerID}
}

// SeedDish inserts a dish with the given price and options.
func SeedDish(t *testing.T, db *gorm.DB, restaurantID uuid.UUID, name string, price int64, options ...model.DishOptionJSON) *entity.Dish {
	t.Helper()

	dishM := &model.DishModel{
		Name:         name,
		Price:        decimal.NewFromInt(price),
		RestaurantID: restaurantID,
		Options:      options,
	}
	require.NoError(t, db.Omit("Restaurant").Create(dishM).Error)

	return &entity.Dish{ID: dishM.ID, Name: name, Price: dishM.Price, RestaurantID: restaurantID}
}

// Count returns the number of rows in the table backing m.
func Count(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)

	return n
}
