package gql

import (
	"eats/internal/domain/entity"

	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"
)

// NewSchema builds the executable schema around r.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	owner := entity.Roles{entity.RoleOwner}
	client := entity.Roles{entity.RoleClient}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type:    userType,
				Resolve: guard(anyRole(), r.me),
			},
			"userProfile": &graphql.Field{
				Type:    graphql.NewNonNull(userProfileOutput),
				Args:    idArgs("userId"),
				Resolve: guard(anyRole(), r.userProfile),
			},
			"restaurants": &graphql.Field{
				Type: graphql.NewNonNull(restaurantsOutput),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: restaurantsInput},
				},
				Resolve: r.listRestaurants,
			},
			"restaurant": &graphql.Field{
				Type:    graphql.NewNonNull(restaurantOutput),
				Args:    idArgs("restaurantId"),
				Resolve: r.restaurant,
			},
			"categories": &graphql.Field{
				Type:    graphql.NewNonNull(allCategoriesOutput),
				Resolve: r.categories,
			},
			"restaurantQRCode": &graphql.Field{
				Type:    graphql.NewNonNull(restaurantQRCodeOutput),
				Args:    idArgs("restaurantId"),
				Resolve: r.restaurantQRCode,
			},
			"orders": &graphql.Field{
				Type: getOrdersOutput,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: getOrdersInput},
				},
				Resolve: guard(anyRole(), r.getOrders),
			},
			"order": &graphql.Field{
				Type:    getOrderOutput,
				Args:    idArgs("orderId"),
				Resolve: guard(anyRole(), r.getOrder),
			},
			"payments": &graphql.Field{
				Type:    getPaymentsOutput,
				Resolve: guard(client, r.listPayments),
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createAccount": &graphql.Field{
				Type:    graphql.NewNonNull(createAccountOutput),
				Args:    inputArg(createAccountInput),
				Resolve: r.createAccount,
			},
			"login": &graphql.Field{
				Type:    graphql.NewNonNull(loginOutput),
				Args:    inputArg(loginInput),
				Resolve: r.login,
			},
			"editProfile": &graphql.Field{
				Type:    editProfileOutput,
				Args:    inputArg(editProfileInput),
				Resolve: guard(anyRole(), r.editProfile),
			},
			"verifyEmail": &graphql.Field{
				Type:    graphql.NewNonNull(verifyEmailOutput),
				Args:    inputArg(verifyEmailInput),
				Resolve: r.verifyEmail,
			},
			"createRestaurant": &graphql.Field{
				Type:    createRestaurantOutput,
				Args:    inputArg(createRestaurantInput),
				Resolve: guard(owner, r.createRestaurant),
			},
			"createDish": &graphql.Field{
				Type:    createDishOutput,
				Args:    inputArg(createDishInput),
				Resolve: guard(owner, r.createDish),
			},
			"createOrder": &graphql.Field{
				Type:    createOrderOutput,
				Args:    inputArg(createOrderInput),
				Resolve: guard(client, r.createOrder),
			},
			"createPayment": &graphql.Field{
				Type:    createPaymentOutput,
				Args:    inputArg(createPaymentInput),
				Resolve: guard(client, r.createPayment),
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
	if err != nil {
		return graphql.Schema{}, errors.Wrap(err, "build GraphQL schema")
	}

	return schema, nil
}
