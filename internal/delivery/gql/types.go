package gql

import (
	"eats/internal/domain/entity"

	"github.com/graphql-go/graphql"
)

var userRoleEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "UserRole",
	Values: graphql.EnumValueConfigMap{
		entity.RoleClient.String():   &graphql.EnumValueConfig{Value: entity.RoleClient.String()},
		entity.RoleOwner.String():    &graphql.EnumValueConfig{Value: entity.RoleOwner.String()},
		entity.RoleDelivery.String(): &graphql.EnumValueConfig{Value: entity.RoleDelivery.String()},
	},
})

var orderStatusEnum = func() *graphql.Enum {
	values := graphql.EnumValueConfigMap{}
	for _, status := range entity.OrderStatuses() {
		values[string(status)] = &graphql.EnumValueConfig{Value: string(status)}
	}

	return graphql.NewEnum(graphql.EnumConfig{Name: "OrderStatus", Values: values})
}()

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"role":      &graphql.Field{Type: graphql.NewNonNull(userRoleEnum)},
		"verified":  &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"createdAt": &graphql.Field{Type: graphql.String},
		"updatedAt": &graphql.Field{Type: graphql.String},
	},
})

var categoryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Category",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":            &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"slug":            &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"coverImg":        &graphql.Field{Type: graphql.String},
		"restaurantCount": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var dishChoiceType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DishChoice",
	Fields: graphql.Fields{
		"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"extra": &graphql.Field{Type: graphql.Float},
	},
})

var dishOptionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DishOption",
	Fields: graphql.Fields{
		"name":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"extra":   &graphql.Field{Type: graphql.Float},
		"choices": &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(dishChoiceType))},
	},
})

var dishType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Dish",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description":  &graphql.Field{Type: graphql.String},
		"price":        &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"restaurantId": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"options":      &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(dishOptionType))},
	},
})

var restaurantType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Restaurant",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"address":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"coverImg":   &graphql.Field{Type: graphql.String},
		"ownerId":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"categoryId": &graphql.Field{Type: graphql.ID},
		"category":   &graphql.Field{Type: categoryType},
		"menu":       &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(dishType))},
		"createdAt":  &graphql.Field{Type: graphql.String},
	},
})

var orderItemOptionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrderItemOption",
	Fields: graphql.Fields{
		"name":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"choice": &graphql.Field{Type: graphql.String},
	},
})

var orderItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrderItem",
	Fields: graphql.Fields{
		"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"dishId":  &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"dish":    &graphql.Field{Type: dishType},
		"options": &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(orderItemOptionType))},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"customerId":   &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"driverId":     &graphql.Field{Type: graphql.ID},
		"restaurantId": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"total":        &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"status":       &graphql.Field{Type: graphql.NewNonNull(orderStatusEnum)},
		"items":        &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(orderItemType))},
		"createdAt":    &graphql.Field{Type: graphql.String},
	},
})

var paymentType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Payment",
	Fields: graphql.Fields{
		"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"transactionId": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"orderId":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"userId":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"createdAt":     &graphql.Field{Type: graphql.String},
	},
})

// outputType builds a mutation/query result carrying ok and error plus the given payload fields.
func outputType(name string, payload graphql.Fields) *graphql.Object {
	fields := graphql.Fields{
		"ok":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"error": &graphql.Field{Type: graphql.String},
	}
	for key, field := range payload {
		fields[key] = field
	}

	return graphql.NewObject(graphql.ObjectConfig{Name: name, Fields: fields})
}

var (
	createAccountOutput = outputType("CreateAccountOutput", nil)
	loginOutput         = outputType("LoginOutput", graphql.Fields{
		"token": &graphql.Field{Type: graphql.String},
	})
	userProfileOutput = outputType("UserProfileOutput", graphql.Fields{
		"user": &graphql.Field{Type: userType},
	})
	editProfileOutput = outputType("EditProfileOutput", graphql.Fields{
		"user": &graphql.Field{Type: userType},
	})
	verifyEmailOutput      = outputType("VerifyEmailOutput", nil)
	createRestaurantOutput = outputType("CreateRestaurantOutput", graphql.Fields{
		"restaurantId": &graphql.Field{Type: graphql.ID},
	})
	restaurantsOutput = outputType("RestaurantsOutput", graphql.Fields{
		"restaurants":  &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(restaurantType))},
		"totalPages":   &graphql.Field{Type: graphql.Int},
		"totalResults": &graphql.Field{Type: graphql.Int},
	})
	restaurantOutput = outputType("RestaurantOutput", graphql.Fields{
		"restaurant": &graphql.Field{Type: restaurantType},
	})
	allCategoriesOutput = outputType("AllCategoriesOutput", graphql.Fields{
		"categories": &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(categoryType))},
	})
	createDishOutput = outputType("CreateDishOutput", graphql.Fields{
		"dish": &graphql.Field{Type: dishType},
	})
	restaurantQRCodeOutput = outputType("RestaurantQRCodeOutput", graphql.Fields{
		"qrCode": &graphql.Field{Type: graphql.String, Description: "Base64 encoded PNG"},
	})
	createOrderOutput = outputType("CreateOrderOutput", graphql.Fields{
		"orderId": &graphql.Field{Type: graphql.ID},
		"total":   &graphql.Field{Type: graphql.Float},
	})
	getOrdersOutput = outputType("GetOrdersOutput", graphql.Fields{
		"orders": &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(orderType))},
	})
	getOrderOutput = outputType("GetOrderOutput", graphql.Fields{
		"order": &graphql.Field{Type: orderType},
	})
	createPaymentOutput = outputType("CreatePaymentOutput", graphql.Fields{
		"payment": &graphql.Field{Type: paymentType},
	})
	getPaymentsOutput = outputType("GetPaymentsOutput", graphql.Fields{
		"payments": &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(paymentType))},
	})
)
