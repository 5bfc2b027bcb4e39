package impl

import (
	"log/slog"
	"testing"

	"eats/config"
	"eats/internal/domain/repository"
	"eats/internal/infra/auth"
	"eats/internal/infra/persistence/postgres"
	"eats/internal/infra/qrcode"
	mockSvc "eats/internal/mocks/service"
	"eats/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db        *gorm.DB
	txManager repository.TransactionManager
	notifier  *mockSvc.MockNotifier
	logger    *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.NewDB(t)

	return &testEnv{
		db:        db,
		txManager: postgres.NewTransactionManager(db),
		notifier:  mockSvc.NewMockNotifier(t),
		logger:    testutil.DiscardLogger(),
	}
}

func (env *testEnv) accountService(t *testing.T) *accountService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Private = "test-secret"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	srv := NewAccountService(AccountServiceParams{
		TxManager:    env.txManager,
		UserRepo:     postgres.NewUserRepository(env.db),
		Hasher:       auth.NewBcryptHasherWithCost(4),
		TokenService: tokens,
		Notifier:     env.notifier,
		Logger:       env.logger,
	})

	return srv.(*accountService)
}

func (env *testEnv) restaurantService() *restaurantService {
	return NewRestaurantService(RestaurantServiceParams{
		TxManager:      env.txManager,
		RestaurantRepo: postgres.NewRestaurantRepository(env.db),
		CategoryRepo:   postgres.NewCategoryRepository(env.db),
		DishRepo:       postgres.NewDishRepository(env.db),
		QRCodeService:  qrcode.NewQRCodeService(128, "M", "https://eats.test/restaurants"),
		Logger:         env.logger,
	}).(*restaurantService)
}

func (env *testEnv) orderService() *orderService {
	return NewOrderService(OrderServiceParams{
		TxManager: env.txManager,
		OrderRepo: postgres.NewOrderRepository(env.db),
		Logger:    env.logger,
	}).(*orderService)
}

func (env *testEnv) paymentService() *paymentService {
	return NewPaymentService(PaymentServiceParams{
		OrderRepo:   postgres.NewOrderRepository(env.db),
		PaymentRepo: postgres.NewPaymentRepository(env.db),
		Logger:      env.logger,
	}).(*paymentService)
}

func ptr[T any](v T) *T {
	return &v
}
