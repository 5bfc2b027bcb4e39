package gql

import (
	"context"
	"testing"

	deliverycontext "eats/internal/delivery/context"
	"eats/internal/delivery/http/validator"
	"eats/internal/domain/entity"
	mockUsecase "eats/internal/mocks/usecase"
	"eats/internal/testutil"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func resolveParams(ctx context.Context, args map[string]any) graphql.ResolveParams {
	return graphql.ResolveParams{Context: ctx, Args: args}
}

func TestGuard(t *testing.T) {
	reached := func(graphql.ResolveParams) (any, error) { return "ok", nil }
	ownerOnly := guard(entity.Roles{entity.RoleOwner}, reached)
	anyone := guard(anyRole(), reached)

	client := deliverycontext.WithUser(context.Background(), &entity.User{ID: uuid.New(), Role: entity.RoleClient})
	owner := deliverycontext.WithUser(context.Background(), &entity.User{ID: uuid.New(), Role: entity.RoleOwner})

	tests := []struct {
		name    string
		resolve graphql.FieldResolveFn
		ctx     context.Context
		allowed bool
	}{
		{"anonymous denied", anyone, context.Background(), false},
		{"any admits client", anyone, client, true},
		{"owner admitted", ownerOnly, owner, true},
		{"client denied owner field", ownerOnly, client, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.resolve(resolveParams(tt.ctx, nil))
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, "ok", got)

				return
			}

			require.Error(t, err)
			assert.Equal(t, "Forbidden resource", err.Error())
			assert.Equal(t, "FORBIDDEN_RESOURCE", errForbiddenResource.Extensions()["code"])
		})
	}
}

func TestDecodeArg(t *testing.T) {
	restaurantID := uuid.New()
	dishID := uuid.New()

	t.Run("dish with options", func(t *testing.T) {
		var input usecase.CreateDishInput
		err := decodeArg(resolveParams(context.Background(), map[string]any{
			"input": map[string]any{
				"restaurantId": restaurantID.String(),
				"name":         "Burger",
				"price":        10.5,
				"options": []any{
					map[string]any{"name": "Pickle", "extra": 2},
					map[string]any{"name": "Size", "choices": []any{map[string]any{"name": "L", "extra": 1.25}}},
				},
			},
		}), "input", &input)
		require.NoError(t, err)

		assert.Equal(t, restaurantID, input.RestaurantID)
		assert.True(t, decimal.RequireFromString("10.5").Equal(input.Price))
		require.Len(t, input.Options, 2)
		require.NotNil(t, input.Options[0].Extra)
		assert.True(t, decimal.NewFromInt(2).Equal(*input.Options[0].Extra))
		require.Len(t, input.Options[1].Choices, 1)
		assert.True(t, decimal.RequireFromString("1.25").Equal(*input.Options[1].Choices[0].Extra))
	})

	t.Run("order items", func(t *testing.T) {
		var input usecase.CreateOrderInput
		err := decodeArg(resolveParams(context.Background(), map[string]any{
			"input": map[string]any{
				"restaurantId": restaurantID.String(),
				"items": []any{map[string]any{
					"dishId":  dishID.String(),
					"options": []any{map[string]any{"name": "Size", "choice": "L"}},
				}},
			},
		}), "input", &input)
		require.NoError(t, err)

		require.Len(t, input.Items, 1)
		assert.Equal(t, dishID, input.Items[0].DishID)
		assert.Equal(t, []entity.OrderItemOption{{Name: "Size", Choice: "L"}}, input.Items[0].Options)
	})

	t.Run("status filter", func(t *testing.T) {
		var input usecase.GetOrdersInput
		err := decodeArg(resolveParams(context.Background(), map[string]any{
			"input": map[string]any{"status": "Cooking"},
		}), "input", &input)
		require.NoError(t, err)
		require.NotNil(t, input.Status)
		assert.Equal(t, entity.OrderStatusCooking, *input.Status)
	})

	t.Run("missing argument leaves zero value", func(t *testing.T) {
		var input usecase.RestaurantsInput
		require.NoError(t, decodeArg(resolveParams(context.Background(), nil), "input", &input))
		assert.Zero(t, input.Page)
	})

	t.Run("bad id", func(t *testing.T) {
		var input usecase.CreatePaymentInput
		err := decodeArg(resolveParams(context.Background(), map[string]any{
			"input": map[string]any{"orderId": "nope", "transactionId": "tx"},
		}), "input", &input)
		require.Error(t, err)
		assert.Equal(t, "Invalid input", err.Error())
	})
}

func TestIDArg(t *testing.T) {
	id := uuid.New()

	got, err := idArg(resolveParams(context.Background(), map[string]any{"orderId": id.String()}), "orderId")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = idArg(resolveParams(context.Background(), map[string]any{}), "orderId")
	assert.Error(t, err)
}

func TestPresenters(t *testing.T) {
	extra := decimal.RequireFromString("1.5")
	categoryID := uuid.New()
	dish := &entity.Dish{
		ID:    uuid.New(),
		Name:  "Burger",
		Price: decimal.RequireFromString("9.99"),
		Options: []entity.DishOption{
			{Name: "Size", Choices: []entity.DishChoice{{Name: "L", Extra: &extra}}},
		},
	}

	restaurant := presentRestaurant(&entity.Restaurant{
		ID:         uuid.New(),
		Name:       "Barn",
		CategoryID: &categoryID,
		Dishes:     []*entity.Dish{dish},
	}).(map[string]any)
	assert.Equal(t, categoryID.String(), restaurant["categoryId"])
	assert.Nil(t, restaurant["category"])
	assert.Nil(t, restaurant["createdAt"])

	menu := restaurant["menu"].([]any)
	require.Len(t, menu, 1)
	presented := menu[0].(map[string]any)
	assert.InDelta(t, 9.99, presented["price"], 0.0001)

	choice := presented["options"].([]any)[0].(map[string]any)["choices"].([]any)[0].(map[string]any)
	assert.InDelta(t, 1.5, choice["extra"], 0.0001)

	user := presentUser(&entity.User{ID: uuid.New(), Email: "a@x.com", Role: entity.RoleOwner, PasswordHash: "secret"}).(map[string]any)
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "passwordHash")

	assert.Nil(t, presentUser(nil))
	assert.Nil(t, presentOrder(nil))
	assert.Equal(t, "AQID", presentPNG([]byte{1, 2, 3}))
}

func newMockResolver(t *testing.T) (*Resolver, *mockUsecase.MockAccountUsecase) {
	t.Helper()

	accounts := mockUsecase.NewMockAccountUsecase(t)

	return NewResolver(ResolverParams{
		AccountSvc: accounts,
		Validator:  validator.New(),
		Logger:     testutil.DiscardLogger(),
	}), accounts
}

func TestResolver_NeverLeaksUnexpectedErrors(t *testing.T) {
	r, accounts := newMockResolver(t)

	accounts.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp 10.0.0.1:5432: connection refused"))

	out, err := r.login(resolveParams(context.Background(), map[string]any{
		"input": map[string]any{"email": "a@x.com", "password": "pw"},
	}))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ok": false, "error": "Could not log in"}, out)
}

func TestResolver_ValidatesBeforeCallingUsecase(t *testing.T) {
	r, _ := newMockResolver(t)

	out, err := r.createAccount(resolveParams(context.Background(), map[string]any{
		"input": map[string]any{"email": "not-an-email", "password": "pw", "role": "Client"},
	}))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ok": false, "error": "Invalid input"}, out)
}

func TestResolver_UserProfile(t *testing.T) {
	r, accounts := newMockResolver(t)
	userID := uuid.New()

	accounts.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID, Email: "a@x.com", Role: entity.RoleClient}, nil)

	out, err := r.userProfile(resolveParams(context.Background(), map[string]any{"userId": userID.String()}))
	require.NoError(t, err)

	result := out.(map[string]any)
	assert.Equal(t, true, result["ok"])
	assert.Equal(t, "a@x.com", result["user"].(map[string]any)["email"])
}

func TestNewSchema(t *testing.T) {
	r, _ := newMockResolver(t)

	schema, err := NewSchema(r)
	require.NoError(t, err)

	for _, name := range []string{"me", "userProfile", "restaurants", "restaurant", "categories", "restaurantQRCode", "orders", "order", "payments"} {
		assert.Contains(t, schema.QueryType().Fields(), name)
	}
	for _, name := range []string{"createAccount", "login", "editProfile", "verifyEmail", "createRestaurant", "createDish", "createOrder", "createPayment"} {
		assert.Contains(t, schema.MutationType().Fields(), name)
	}
}
