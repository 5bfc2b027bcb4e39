package gql

import (
	domainerrors "eats/internal/domain/errors"
	"eats/internal/usecase"

	"github.com/graphql-go/graphql"
)

func (r *Resolver) createRestaurant(p graphql.ResolveParams) (any, error) {
	var input usecase.CreateRestaurantInput
	if err := r.decode(p, &input); err != nil {
		return r.failed(p.Context, err, domainerrors.ErrRestaurantCreationFailed), nil
	}

	restaurant, err := r.restaurants.CreateRestaurant(p.Context, authUser(p), &input)
	if err != nil {
		return r.failed(p.Context, err, domainerrors.ErrRestaurantCreationFailed), nil
	}

	return succeeded(map[string]any{"restaurantId": restaurant.ID.String()}), nil
}

func (r *Resolver) listRestaurants(p graphql.ResolveParams) (any, error) {
	var input usecase.RestaurantsInput
	if err := r.decode(p, &input); err != nil {
		return r.failed(p.Context, err, domainerrors.ErrLoadRestaurantsFailed), nil
	}

	out, err := r.restaurants.Restaurants(p.Context, &input)
	if err != nil {
		return r.failed(p.Context, err, domainerrors.ErrLoadRestaurantsFailed), nil
	}

	return succeeded(map[string]any{
		"restaurants":  presentRestaurants(out.Restaurants),
		"totalPages":   out.TotalPages,
		"totalResults": int(out.TotalResults),
	}), nil
}

func (r *Resolver) restaurant(p graphql.ResolveParams) (any, error) {
	id, err := idArg(p, "restaurantId")
	if err != nil {
		return r.failed(p.Context, err, domainerrors.ErrRestaurantNotFound), nil
	}

	restaurant, err := r.restaurants.Restaurant(p.Context, id)
	if err != nil {
		return r.failed(p.Context, err, domainerrors.ErrRestaurantNotFound), nil
	}

	return succeeded(map[string]any{"restaurant": presentRestaurant(restaurant)}), nil
}

func (r *Resolver) categories(p graphql.ResolveParams) (any, error) {
	categories, err := r.restaurants.Categories(p.Context)
	if err != nil {
		return r.failed(p.Context, err, domainerrors.ErrLoadCategoriesFailed), nil
	}

	return succeeded(map[string]any{"categories": presentCategories(categories)}), nil
}

func (r *Resolver) createDish(p graphql.ResolveParams) (any, error) {
	var input usecase.CreateDishInput
	if err := r.decode(p, &input); err != nil {
		return r.failed(p.Context, err, domainerrors.ErrDishCreationFailed), nil
	}

	dish, err := r.restaurants.CreateDish(p.Context, authUser(p), &input)
	if err != nil {
		return r.failed(p.Context, err, domainerrors.ErrDishCreationFailed), nil
	}

	return succeeded(map[string]any{"dish": presentDish(dish)}), nil
}

func (r *Resolver) restaurantQRCode(p graphql.ResolveParams) (any, error) {
	id, err := idArg(p, "restaurantId")
	if err != nil {
		return r.failed(p.Context, err, domainerrors.ErrRestaurantNotFound), nil
	}

	png, err := r.restaurants.RestaurantQRCode(p.Context, id)
	if err != nil {
		return r.failed(p.Context, err, domainerrors.ErrQRCodeFailed), nil
	}

	return succeeded(map[string]any{"qrCode": presentPNG(png)}), nil
}
