package gql

import "github.com/graphql-go/graphql"

func inputField(t graphql.Input) *graphql.InputObjectFieldConfig {
	return &graphql.InputObjectFieldConfig{Type: t}
}

func required(t graphql.Input) *graphql.InputObjectFieldConfig {
	return &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(t)}
}

func inputArg(t *graphql.InputObject) graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t)},
	}
}

func idArgs(name string) graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		name: &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}
}

var createAccountInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateAccountInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":    required(graphql.String),
		"password": required(graphql.String),
		"role":     required(userRoleEnum),
	},
})

var loginInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "LoginInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":    required(graphql.String),
		"password": required(graphql.String),
	},
})

var editProfileInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "EditProfileInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":    inputField(graphql.String),
		"password": inputField(graphql.String),
	},
})

var verifyEmailInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "VerifyEmailInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"code": required(graphql.String),
	},
})

var createRestaurantInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateRestaurantInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":         required(graphql.String),
		"address":      required(graphql.String),
		"coverImg":     inputField(graphql.String),
		"categoryName": required(graphql.String),
	},
})

var restaurantsInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "RestaurantsInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"page":         inputField(graphql.Int),
		"categorySlug": inputField(graphql.String),
	},
})

var dishChoiceInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "DishChoiceInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":  required(graphql.String),
		"extra": inputField(graphql.Float),
	},
})

var dishOptionInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "DishOptionInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":    required(graphql.String),
		"extra":   inputField(graphql.Float),
		"choices": inputField(graphql.NewList(graphql.NewNonNull(dishChoiceInput))),
	},
})

var createDishInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateDishInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"restaurantId": required(graphql.ID),
		"name":         required(graphql.String),
		"description":  inputField(graphql.String),
		"price":        required(graphql.Float),
		"options":      inputField(graphql.NewList(graphql.NewNonNull(dishOptionInput))),
	},
})

var orderItemOptionInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderItemOptionInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":   required(graphql.String),
		"choice": inputField(graphql.String),
	},
})

var createOrderItemInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateOrderItemInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"dishId":  required(graphql.ID),
		"options": inputField(graphql.NewList(graphql.NewNonNull(orderItemOptionInput))),
	},
})

var createOrderInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateOrderInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"restaurantId": required(graphql.ID),
		"items":        required(graphql.NewList(graphql.NewNonNull(createOrderItemInput))),
	},
})

var getOrdersInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "GetOrdersInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"status": inputField(orderStatusEnum),
	},
})

var createPaymentInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreatePaymentInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"orderId":       required(graphql.ID),
		"transactionId": required(graphql.String),
	},
})
