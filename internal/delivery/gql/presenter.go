package gql

import (
	"encoding/base64"
	"time"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Presenters flatten entities into maps so the default field resolver can read them.

func presentTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}

	return t.UTC().Format(time.RFC3339)
}

func presentMoney(d decimal.Decimal) float64 {
	f, _ := d.Float64()

	return f
}

func presentOptionalMoney(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}

	return presentMoney(*d)
}

func presentOptionalID(id *uuid.UUID) any {
	if id == nil {
		return nil
	}

	return id.String()
}

func presentUser(user *entity.User) any {
	if user == nil {
		return nil
	}

	return map[string]any{
		"id":        user.ID.String(),
		"email":     user.Email,
		"role":      user.Role.String(),
		"verified":  user.Verified,
		"createdAt": presentTime(user.CreatedAt),
		"updatedAt": presentTime(user.UpdatedAt),
	}
}

func presentCategory(category *entity.Category) any {
	if category == nil {
		return nil
	}

	return map[string]any{
		"id":              category.ID.String(),
		"name":            category.Name,
		"slug":            category.Slug,
		"coverImg":        category.CoverImage,
		"restaurantCount": int(category.RestaurantCount),
	}
}

func presentCategories(categories []*entity.Category) []any {
	out := make([]any, 0, len(categories))
	for _, category := range categories {
		out = append(out, presentCategory(category))
	}

	return out
}

func presentDishOptions(options []entity.DishOption) []any {
	out := make([]any, 0, len(options))
	for _, option := range options {
		choices := make([]any, 0, len(option.Choices))
		for _, choice := range option.Choices {
			choices = append(choices, map[string]any{
				"name":  choice.Name,
				"extra": presentOptionalMoney(choice.Extra),
			})
		}

		out = append(out, map[string]any{
			"name":    option.Name,
			"extra":   presentOptionalMoney(option.Extra),
			"choices": choices,
		})
	}

	return out
}

func presentDish(dish *entity.Dish) any {
	if dish == nil {
		return nil
	}

	return map[string]any{
		"id":           dish.ID.String(),
		"name":         dish.Name,
		"description":  dish.Description,
		"price":        presentMoney(dish.Price),
		"restaurantId": dish.RestaurantID.String(),
		"options":      presentDishOptions(dish.Options),
	}
}

func presentRestaurant(restaurant *entity.Restaurant) any {
	if restaurant == nil {
		return nil
	}

	menu := make([]any, 0, len(restaurant.Dishes))
	for _, dish := range restaurant.Dishes {
		menu = append(menu, presentDish(dish))
	}

	return map[string]any{
		"id":         restaurant.ID.String(),
		"name":       restaurant.Name,
		"address":    restaurant.Address,
		"coverImg":   restaurant.CoverImage,
		"ownerId":    restaurant.OwnerID.String(),
		"categoryId": presentOptionalID(restaurant.CategoryID),
		"category":   presentCategory(restaurant.Category),
		"menu":       menu,
		"createdAt":  presentTime(restaurant.CreatedAt),
	}
}

func presentRestaurants(restaurants []*entity.Restaurant) []any {
	out := make([]any, 0, len(restaurants))
	for _, restaurant := range restaurants {
		out = append(out, presentRestaurant(restaurant))
	}

	return out
}

func presentOrder(order *entity.Order) any {
	if order == nil {
		return nil
	}

	items := make([]any, 0, len(order.Items))
	for _, item := range order.Items {
		options := make([]any, 0, len(item.Options))
		for _, option := range item.Options {
			options = append(options, map[string]any{"name": option.Name, "choice": option.Choice})
		}

		items = append(items, map[string]any{
			"id":      item.ID.String(),
			"dishId":  item.DishID.String(),
			"dish":    presentDish(item.Dish),
			"options": options,
		})
	}

	return map[string]any{
		"id":           order.ID.String(),
		"customerId":   order.CustomerID.String(),
		"driverId":     presentOptionalID(order.DriverID),
		"restaurantId": order.RestaurantID.String(),
		"total":        presentMoney(order.Total),
		"status":       string(order.Status),
		"items":        items,
		"createdAt":    presentTime(order.CreatedAt),
	}
}

func presentOrders(orders []*entity.Order) []any {
	out := make([]any, 0, len(orders))
	for _, order := range orders {
		out = append(out, presentOrder(order))
	}

	return out
}

func presentPayment(payment *entity.Payment) any {
	if payment == nil {
		return nil
	}

	return map[string]any{
		"id":            payment.ID.String(),
		"transactionId": payment.TransactionID,
		"orderId":       payment.OrderID.String(),
		"userId":        payment.UserID.String(),
		"createdAt":     presentTime(payment.CreatedAt),
	}
}

func presentPayments(payments []*entity.Payment) []any {
	out := make([]any, 0, len(payments))
	for _, payment := range payments {
		out = append(out, presentPayment(payment))
	}

	return out
}

func presentPNG(png []byte) string {
	return base64.StdEncoding.EncodeToString(png)
}
