package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eats/config"
	"eats/internal/delivery/gql"
	"eats/internal/delivery/http/middleware"
	"eats/internal/delivery/http/router"
	"eats/internal/delivery/http/validator"
	"eats/internal/domain/constants"
	"eats/internal/infra/auth"
	"eats/internal/infra/persistence/postgres"
	"eats/internal/infra/qrcode"
	mockSvc "eats/internal/mocks/service"
	"eats/internal/testutil"
	"eats/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type gqlResponse struct {
	Data   map[string]any `json:"data"`
	Errors []struct {
		Message    string         `json:"message"`
		Extensions map[string]any `json:"extensions"`
	} `json:"errors"`
}

type apiEnv struct {
	echo  *echo.Echo
	codes chan string
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()

	db := testutil.NewDB(t)
	logger := testutil.DiscardLogger()
	txManager := postgres.NewTransactionManager(db)

	cfg := &config.Config{}
	cfg.SecretKey.Private = "test-secret"
	cfg.HTTP.MaxRequestBodySize = "100KB"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	codes := make(chan string, 8)
	notifier := mockSvc.NewMockNotifier(t)
	notifier.EXPECT().SendVerificationEmail(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, code string) error {
			codes <- code

			return nil
		}).Maybe()

	accounts := impl.NewAccountService(impl.AccountServiceParams{
		TxManager:    txManager,
		UserRepo:     postgres.NewUserRepository(db),
		Hasher:       auth.NewBcryptHasherWithCost(4),
		TokenService: tokens,
		Notifier:     notifier,
		Logger:       logger,
	})
	restaurants := impl.NewRestaurantService(impl.RestaurantServiceParams{
		TxManager:      txManager,
		RestaurantRepo: postgres.NewRestaurantRepository(db),
		CategoryRepo:   postgres.NewCategoryRepository(db),
		DishRepo:       postgres.NewDishRepository(db),
		QRCodeService:  qrcode.NewQRCodeService(128, "M", "https://eats.test/restaurants"),
		Logger:         logger,
	})
	orders := impl.NewOrderService(impl.OrderServiceParams{
		TxManager: txManager,
		OrderRepo: postgres.NewOrderRepository(db),
		Logger:    logger,
	})
	payments := impl.NewPaymentService(impl.PaymentServiceParams{
		OrderRepo:   postgres.NewOrderRepository(db),
		PaymentRepo: postgres.NewPaymentRepository(db),
		Logger:      logger,
	})

	authMiddleware := middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
		TokenService: tokens,
		AccountSvc:   accounts,
		Logger:       logger,
	})
	handler, err := gql.NewHandler(gql.HandlerParams{
		Resolver: gql.NewResolver(gql.ResolverParams{
			AccountSvc:    accounts,
			RestaurantSvc: restaurants,
			OrderSvc:      orders,
			PaymentSvc:    payments,
			Validator:     validator.New(),
			Logger:        logger,
		}),
		Auth:   authMiddleware,
		Logger: logger,
	})
	require.NoError(t, err)

	e := NewEcho(cfg, logger, middleware.NewErrorMiddleware(logger), router.RouterParams{
		GraphQLHandler: handler,
		AuthMiddleware: authMiddleware,
	})

	return &apiEnv{echo: e, codes: codes}
}

func (env *apiEnv) post(t *testing.T, token string, body map[string]any) *gqlResponse {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(raw))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(constants.HeaderJWT, token)
	}
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp gqlResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return &resp
}

func (env *apiEnv) do(t *testing.T, token, query string, vars map[string]any) *gqlResponse {
	t.Helper()

	return env.post(t, token, map[string]any{"query": query, "variables": vars})
}

func (env *apiEnv) nextCode(t *testing.T) string {
	t.Helper()

	select {
	case code := <-env.codes:
		return code
	case <-time.After(5 * time.Second):
		t.Fatal("verification code was not dispatched")

		return ""
	}
}

func field(t *testing.T, resp *gqlResponse, name string) map[string]any {
	t.Helper()

	require.Empty(t, resp.Errors)
	out, ok := resp.Data[name].(map[string]any)
	require.True(t, ok, "missing %s in %v", name, resp.Data)

	return out
}

const (
	createAccountMutation = `mutation($input: CreateAccountInput!) { createAccount(input: $input) { ok error } }`
	loginMutation         = `mutation($input: LoginInput!) { login(input: $input) { ok error token } }`
	meQuery               = `{ me { email role verified } }`
	verifyEmailMutation   = `mutation($code: String!) { verifyEmail(input: {code: $code}) { ok error } }`
)

func (env *apiEnv) signUp(t *testing.T, email, password, role string) string {
	t.Helper()

	created := field(t, env.do(t, "", createAccountMutation, map[string]any{
		"input": map[string]any{"email": email, "password": password, "role": role},
	}), "createAccount")
	require.Equal(t, true, created["ok"], created["error"])
	env.nextCode(t)

	login := field(t, env.do(t, "", loginMutation, map[string]any{
		"input": map[string]any{"email": email, "password": password},
	}), "login")
	require.Equal(t, true, login["ok"], login["error"])

	return login["token"].(string)
}

func TestGraphQL_AccountScenario(t *testing.T) {
	env := newAPIEnv(t)
	accountInput := map[string]any{"input": map[string]any{"email": "a@x.com", "password": "pw1", "role": "Client"}}

	created := field(t, env.do(t, "", createAccountMutation, accountInput), "createAccount")
	assert.Equal(t, true, created["ok"])
	assert.Nil(t, created["error"])
	code := env.nextCode(t)
	assert.Len(t, code, 32)

	duplicate := field(t, env.do(t, "", createAccountMutation, accountInput), "createAccount")
	assert.Equal(t, false, duplicate["ok"])
	assert.Equal(t, "There is a user with this email already", duplicate["error"])

	wrong := field(t, env.do(t, "", loginMutation, map[string]any{
		"input": map[string]any{"email": "a@x.com", "password": "nope"},
	}), "login")
	assert.Equal(t, false, wrong["ok"])
	assert.Equal(t, "Wrong password", wrong["error"])
	assert.Nil(t, wrong["token"])

	unknown := field(t, env.do(t, "", loginMutation, map[string]any{
		"input": map[string]any{"email": "b@x.com", "password": "pw1"},
	}), "login")
	assert.Equal(t, "User not found", unknown["error"])

	login := field(t, env.do(t, "", loginMutation, map[string]any{
		"input": map[string]any{"email": "a@x.com", "password": "pw1"},
	}), "login")
	require.Equal(t, true, login["ok"])
	token, _ := login["token"].(string)
	require.NotEmpty(t, token)

	me := field(t, env.do(t, token, meQuery, nil), "me")
	assert.Equal(t, "a@x.com", me["email"])
	assert.Equal(t, "Client", me["role"])
	assert.Equal(t, false, me["verified"])

	verified := field(t, env.do(t, "", verifyEmailMutation, map[string]any{"code": code}), "verifyEmail")
	assert.Equal(t, true, verified["ok"])

	again := field(t, env.do(t, "", verifyEmailMutation, map[string]any{"code": code}), "verifyEmail")
	assert.Equal(t, false, again["ok"])
	assert.Equal(t, "Verification not found", again["error"])

	me = field(t, env.do(t, token, meQuery, nil), "me")
	assert.Equal(t, true, me["verified"])
}

func TestGraphQL_Guard(t *testing.T) {
	env := newAPIEnv(t)
	token := env.signUp(t, "client@x.com", "pw", "Client")

	t.Run("anonymous me is forbidden", func(t *testing.T) {
		resp := env.do(t, "", meQuery, nil)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "Forbidden resource", resp.Errors[0].Message)
		assert.Equal(t, "FORBIDDEN_RESOURCE", resp.Errors[0].Extensions["code"])
		assert.Nil(t, resp.Data["me"])
	})

	t.Run("invalid token is anonymous", func(t *testing.T) {
		resp := env.do(t, "not-a-token", meQuery, nil)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "Forbidden resource", resp.Errors[0].Message)
	})

	t.Run("token from connection params", func(t *testing.T) {
		resp := env.post(t, "", map[string]any{
			"query": meQuery,
			"extensions": map[string]any{
				"connectionParams": map[string]any{constants.HeaderJWT: token},
			},
		})
		assert.Equal(t, "client@x.com", field(t, resp, "me")["email"])
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		resp := env.do(t, token, `mutation { createRestaurant(input: {name: "X", address: "Y", categoryName: "Z"}) { ok } }`, nil)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "Forbidden resource", resp.Errors[0].Message)
	})
}

func TestGraphQL_EditProfile(t *testing.T) {
	env := newAPIEnv(t)
	token := env.signUp(t, "old@x.com", "pw", "Delivery")

	resp := field(t, env.do(t, token,
		`mutation($input: EditProfileInput!) { editProfile(input: $input) { ok error user { email verified } } }`,
		map[string]any{"input": map[string]any{"email": "new@x.com"}},
	), "editProfile")
	require.Equal(t, true, resp["ok"], resp["error"])
	user := resp["user"].(map[string]any)
	assert.Equal(t, "new@x.com", user["email"])
	assert.Equal(t, false, user["verified"])
	env.nextCode(t)

	invalid := field(t, env.do(t, token,
		`mutation { editProfile(input: {email: "not-an-email"}) { ok error } }`, nil,
	), "editProfile")
	assert.Equal(t, false, invalid["ok"])
	assert.Equal(t, "Invalid input", invalid["error"])
}

func TestGraphQL_OrderingScenario(t *testing.T) {
	env := newAPIEnv(t)
	ownerToken := env.signUp(t, "owner@x.com", "pw", "Owner")
	clientToken := env.signUp(t, "client@x.com", "pw", "Client")

	created := field(t, env.do(t, ownerToken,
		`mutation($input: CreateRestaurantInput!) { createRestaurant(input: $input) { ok error restaurantId } }`,
		map[string]any{"input": map[string]any{
			"name": "Burger Barn", "address": "1 Main St", "coverImg": "https://img/b.png", "categoryName": "Fast Food",
		}},
	), "createRestaurant")
	require.Equal(t, true, created["ok"], created["error"])
	restaurantID := created["restaurantId"].(string)

	dish := field(t, env.do(t, ownerToken,
		`mutation($input: CreateDishInput!) { createDish(input: $input) { ok error dish { id price options { name extra choices { name extra } } } } }`,
		map[string]any{"input": map[string]any{
			"restaurantId": restaurantID,
			"name":         "Burger",
			"price":        10,
			"options": []any{
				map[string]any{"name": "Pickle", "extra": 2},
				map[string]any{"name": "Size", "choices": []any{
					map[string]any{"name": "S"},
					map[string]any{"name": "L", "extra": 1},
				}},
			},
		}},
	), "createDish")
	require.Equal(t, true, dish["ok"], dish["error"])
	dishID := dish["dish"].(map[string]any)["id"].(string)
	assert.InDelta(t, 10.0, dish["dish"].(map[string]any)["price"], 0.001)

	categories := field(t, env.do(t, "", `{ categories { ok categories { slug restaurantCount } } }`, nil), "categories")
	require.Len(t, categories["categories"], 1)
	category := categories["categories"].([]any)[0].(map[string]any)
	assert.Equal(t, "fast-food", category["slug"])
	assert.InDelta(t, 1, category["restaurantCount"], 0)

	list := field(t, env.do(t, "",
		`{ restaurants(input: {page: 1, categorySlug: "fast-food"}) { ok totalPages totalResults restaurants { name } } }`, nil,
	), "restaurants")
	assert.InDelta(t, 1, list["totalPages"], 0)
	assert.InDelta(t, 1, list["totalResults"], 0)

	detail := field(t, env.do(t, "",
		`query($id: ID!) { restaurant(restaurantId: $id) { ok restaurant { name menu { name } } } }`,
		map[string]any{"id": restaurantID},
	), "restaurant")
	assert.Equal(t, "Burger Barn", detail["restaurant"].(map[string]any)["name"])
	assert.Len(t, detail["restaurant"].(map[string]any)["menu"], 1)

	qr := field(t, env.do(t, "",
		`query($id: ID!) { restaurantQRCode(restaurantId: $id) { ok qrCode } }`,
		map[string]any{"id": restaurantID},
	), "restaurantQRCode")
	assert.Equal(t, true, qr["ok"])
	assert.NotEmpty(t, qr["qrCode"])

	order := field(t, env.do(t, clientToken,
		`mutation($input: CreateOrderInput!) { createOrder(input: $input) { ok error orderId total } }`,
		map[string]any{"input": map[string]any{
			"restaurantId": restaurantID,
			"items": []any{map[string]any{
				"dishId":  dishID,
				"options": []any{map[string]any{"name": "Pickle"}, map[string]any{"name": "Size", "choice": "L"}},
			}},
		}},
	), "createOrder")
	require.Equal(t, true, order["ok"], order["error"])
	assert.InDelta(t, 13.0, order["total"], 0.001)
	orderID := order["orderId"].(string)

	ownerOrders := field(t, env.do(t, ownerToken, `{ orders(input: {status: Pending}) { ok orders { id status total } } }`, nil), "orders")
	require.Len(t, ownerOrders["orders"], 1)
	assert.Equal(t, "Pending", ownerOrders["orders"].([]any)[0].(map[string]any)["status"])

	one := field(t, env.do(t, clientToken,
		`query($id: ID!) { order(orderId: $id) { ok error order { items { options { name choice } } } } }`,
		map[string]any{"id": orderID},
	), "order")
	assert.Equal(t, true, one["ok"], one["error"])

	payment := field(t, env.do(t, clientToken,
		`mutation($input: CreatePaymentInput!) { createPayment(input: $input) { ok error payment { transactionId } } }`,
		map[string]any{"input": map[string]any{"orderId": orderID, "transactionId": "tx-1"}},
	), "createPayment")
	require.Equal(t, true, payment["ok"], payment["error"])

	payments := field(t, env.do(t, clientToken, `{ payments { ok payments { transactionId orderId } } }`, nil), "payments")
	require.Len(t, payments["payments"], 1)
	assert.Equal(t, orderID, payments["payments"].([]any)[0].(map[string]any)["orderId"])

	missing := field(t, env.do(t, clientToken,
		`mutation($input: CreateOrderInput!) { createOrder(input: $input) { ok error } }`,
		map[string]any{"input": map[string]any{
			"restaurantId": "00000000-0000-0000-0000-000000000001",
			"items":        []any{map[string]any{"dishId": dishID}},
		}},
	), "createOrder")
	assert.Equal(t, "Restaurant not found", missing["error"])
}

func TestHTTP_HealthAndMalformedRequests(t *testing.T) {
	env := newAPIEnv(t)

	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewBufferString(`{"query":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")

	rec = httptest.NewRecorder()
	env.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graphql?query=%7B+categories+%7B+ok+%7D+%7D", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"categories":{"ok":true}}}`, rec.Body.String())
}
