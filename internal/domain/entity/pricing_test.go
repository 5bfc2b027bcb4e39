package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)

	return &d
}

func testDish() *Dish {
	return &Dish{
		Name:  "Pizza",
		Price: decimal.NewFromInt(10),
		Options: []DishOption{
			{Name: "Extra cheese", Extra: dec("2")},
			{Name: "Spice", Choices: []DishChoice{
				{Name: "Mild"},
				{Name: "Hot", Extra: dec("1")},
			}},
			{Name: "Size", Extra: dec("0"), Choices: []DishChoice{
				{Name: "L", Extra: dec("3.5")},
			}},
		},
	}
}

func TestDish_ItemPrice(t *testing.T) {
	tests := []struct {
		name     string
		selected []OrderItemOption
		want     string
	}{
		{"no options keeps base price", nil, "10"},
		{"flat option extra", []OrderItemOption{{Name: "Extra cheese"}}, "12"},
		{"option extra and matched choice", []OrderItemOption{{Name: "Extra cheese"}, {Name: "Spice", Choice: "Hot"}}, "13"},
		{"choice without extra", []OrderItemOption{{Name: "Spice", Choice: "Mild"}}, "10"},
		{"unmatched option contributes zero", []OrderItemOption{{Name: "Pineapple"}}, "10"},
		{"unmatched choice contributes zero", []OrderItemOption{{Name: "Spice", Choice: "Volcanic"}}, "10"},
		{"zero option extra falls back to choice", []OrderItemOption{{Name: "Size", Choice: "L"}}, "13.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testDish().ItemPrice(tt.selected)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestOrder_CanBeSeenBy(t *testing.T) {
	customer, driver, owner, stranger := newID(), newID(), newID(), newID()
	order := &Order{
		CustomerID: customer,
		DriverID:   &driver,
		Restaurant: &Restaurant{OwnerID: owner},
	}

	assert.True(t, order.CanBeSeenBy(customer))
	assert.True(t, order.CanBeSeenBy(driver))
	assert.True(t, order.CanBeSeenBy(owner))
	assert.False(t, order.CanBeSeenBy(stranger))

	order.Restaurant = nil
	assert.False(t, order.CanBeSeenBy(owner))
}

func TestRoles_Admits(t *testing.T) {
	assert.True(t, Roles{RoleAny}.Admits(RoleDelivery))
	assert.True(t, Roles{RoleOwner}.Admits(RoleOwner))
	assert.False(t, Roles{RoleOwner}.Admits(RoleClient))
	assert.False(t, RoleAny.IsValid())
}

func TestRoundMoney(t *testing.T) {
	assert.True(t, decimal.RequireFromString("10.33").Equal(RoundMoney(decimal.RequireFromString("10.333"))))
	assert.True(t, decimal.RequireFromString("10.01").Equal(RoundMoney(decimal.RequireFromString("10.005"))))
	assert.True(t, decimal.NewFromInt(13).Equal(RoundMoney(decimal.NewFromInt(13))))
}
