package postgres

import (
	"context"
	"fmt"
	"testing"

	"eats/internal/domain/entity"
	"eats/internal/domain/repository"
	"eats/internal/infra/persistence/model"
	"eats/internal/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantRepository_ListAndFilter(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	owner := testutil.SeedUser(t, db, "owner@x.com", entity.RoleOwner)
	restaurants := NewRestaurantRepository(db)
	categories := NewCategoryRepository(db)

	pizza := &entity.Category{Name: "Pizza", Slug: "pizza"}
	require.NoError(t, categories.Create(ctx, pizza))
	sushi := &entity.Category{Name: "Sushi", Slug: "sushi"}
	require.NoError(t, categories.Create(ctx, sushi))

	for idx := range 3 {
		require.NoError(t, restaurants.Create(ctx, &entity.Restaurant{
			Name: fmt.Sprintf("Pizza %d", idx), Address: "street", OwnerID: owner.ID, CategoryID: &pizza.ID,
		}))
	}
	require.NoError(t, restaurants.Create(ctx, &entity.Restaurant{
		Name: "Sushi Go", Address: "street", OwnerID: owner.ID, CategoryID: &sushi.ID,
	}))

	page, total, err := restaurants.List(ctx, repository.RestaurantFilter{Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, page, 2)

	rest, _, err := restaurants.List(ctx, repository.RestaurantFilter{Offset: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, rest, 2)

	filtered, total, err := restaurants.List(ctx, repository.RestaurantFilter{CategorySlug: "pizza", Limit: 25})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, filtered, 3)
	for _, restaurant := range filtered {
		require.NotNil(t, restaurant.Category)
		assert.Equal(t, "pizza", restaurant.Category.Slug)
	}

	listed, err := categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Pizza", listed[0].Name)
	assert.EqualValues(t, 3, listed[0].RestaurantCount)
	assert.EqualValues(t, 1, listed[1].RestaurantCount)

	found, err := categories.FindBySlug(ctx, "sushi")
	require.NoError(t, err)
	assert.Equal(t, sushi.ID, found.ID)

	_, err = categories.FindBySlug(ctx, "tacos")
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestRestaurantRepository_FindByIDWithDishes(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	owner := testutil.SeedUser(t, db, "owner@x.com", entity.RoleOwner)
	restaurant := testutil.SeedRestaurant(t, db, owner.ID, "Luigi's")

	extra := decimal.NewFromInt(2)
	dishes := NewDishRepository(db)
	dish := &entity.Dish{
		Name:         "Margherita",
		Price:        decimal.RequireFromString("10.50"),
		RestaurantID: restaurant.ID,
		Options: []entity.DishOption{
			{Name: "Extra cheese", Extra: &extra},
			{Name: "Size", Choices: []entity.DishChoice{{Name: "L", Extra: &extra}}},
		},
	}
	require.NoError(t, dishes.Create(ctx, dish))

	found, err := NewRestaurantRepository(db).FindByID(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, found.OwnerID)
	require.Len(t, found.Dishes, 1)
	assert.True(t, decimal.RequireFromString("10.5").Equal(found.Dishes[0].Price))
	require.Len(t, found.Dishes[0].Options, 2)
	assert.Equal(t, "L", found.Dishes[0].Options[1].Choices[0].Name)

	loaded, err := dishes.FindByID(ctx, dish.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Options[0].Extra)
	assert.True(t, extra.Equal(*loaded.Options[0].Extra))

	_, err = NewRestaurantRepository(db).FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)
	_, err = dishes.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrDishNotFound)
}

func TestOrderRepository_CreateAndList(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	client := testutil.SeedUser(t, db, "client@x.com", entity.RoleClient)
	owner := testutil.SeedUser(t, db, "owner@x.com", entity.RoleOwner)
	otherOwner := testutil.SeedUser(t, db, "other@x.com", entity.RoleOwner)
	driver := testutil.SeedUser(t, db, "driver@x.com", entity.RoleDelivery)
	restaurant := testutil.SeedRestaurant(t, db, owner.ID, "Luigi's")
	otherRestaurant := testutil.SeedRestaurant(t, db, otherOwner.ID, "Mario's")
	dish := testutil.SeedDish(t, db, restaurant.ID, "Margherita", 10)
	otherDish := testutil.SeedDish(t, db, otherRestaurant.ID, "Calzone", 8)
	repo := NewOrderRepository(db)

	order := &entity.Order{
		CustomerID:   client.ID,
		DriverID:     &driver.ID,
		RestaurantID: restaurant.ID,
		Total:        decimal.NewFromInt(23),
		Status:       entity.OrderStatusPending,
		Items: []*entity.OrderItem{
			{DishID: dish.ID, Options: []entity.OrderItemOption{{Name: "Size", Choice: "L"}}},
			{DishID: dish.ID},
		},
	}
	require.NoError(t, repo.Create(ctx, order))
	assert.NotEqual(t, uuid.Nil, order.Items[0].ID)
	assert.EqualValues(t, 2, testutil.Count(t, db, &model.OrderItemModel{}))

	require.NoError(t, repo.Create(ctx, &entity.Order{
		CustomerID:   client.ID,
		RestaurantID: otherRestaurant.ID,
		Total:        decimal.NewFromInt(8),
		Status:       entity.OrderStatusCooking,
		Items:        []*entity.OrderItem{{DishID: otherDish.ID}},
	}))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(23).Equal(found.Total))
	require.NotNil(t, found.Restaurant)
	assert.Equal(t, owner.ID, found.Restaurant.OwnerID)
	require.Len(t, found.Items, 2)
	assert.Equal(t, []entity.OrderItemOption{{Name: "Size", Choice: "L"}}, found.Items[0].Options)
	require.NotNil(t, found.Items[0].Dish)
	assert.Equal(t, "Margherita", found.Items[0].Dish.Name)

	byCustomer, err := repo.List(ctx, repository.OrderFilter{CustomerID: &client.ID})
	require.NoError(t, err)
	assert.Len(t, byCustomer, 2)

	byDriver, err := repo.List(ctx, repository.OrderFilter{DriverID: &driver.ID})
	require.NoError(t, err)
	require.Len(t, byDriver, 1)
	assert.Equal(t, order.ID, byDriver[0].ID)

	byOwner, err := repo.List(ctx, repository.OrderFilter{OwnerID: &owner.ID})
	require.NoError(t, err)
	require.Len(t, byOwner, 1)
	assert.Equal(t, order.ID, byOwner[0].ID)

	cooking := entity.OrderStatusCooking
	byStatus, err := repo.List(ctx, repository.OrderFilter{CustomerID: &client.ID, Status: &cooking})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, otherRestaurant.ID, byStatus[0].RestaurantID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestPaymentRepository(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	client := testutil.SeedUser(t, db, "client@x.com", entity.RoleClient)
	owner := testutil.SeedUser(t, db, "owner@x.com", entity.RoleOwner)
	restaurant := testutil.SeedRestaurant(t, db, owner.ID, "Luigi's")
	order := &entity.Order{CustomerID: client.ID, RestaurantID: restaurant.ID, Total: decimal.NewFromInt(5), Status: entity.OrderStatusPending}
	require.NoError(t, NewOrderRepository(db).Create(ctx, order))

	repo := NewPaymentRepository(db)
	payment := &entity.Payment{TransactionID: "tx-1", UserID: client.ID, OrderID: order.ID}
	require.NoError(t, repo.Create(ctx, payment))
	assert.NotEqual(t, uuid.Nil, payment.ID)

	payments, err := repo.ListByUser(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "tx-1", payments[0].TransactionID)

	none, err := repo.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}
