package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "eats/internal/delivery/context"
	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type paymentService struct {
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	PaymentRepo repository.PaymentRepository
	Logger      *slog.Logger
}

func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		orderRepo:   params.OrderRepo,
		paymentRepo: params.PaymentRepo,
		logger:      params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePayment records a payment for one of the caller's own orders.
func (srv *paymentService) CreatePayment(ctx context.Context, user *entity.User, input *usecase.CreatePaymentInput) (*entity.Payment, error) {
	transactionID := strings.TrimSpace(input.TransactionID)
	if transactionID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("transaction id is required")
	}

	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, safeError(ctx, srv.log(ctx), err, domainerrors.ErrPaymentCreationFailed, "Failed to load order")
	}
	// Other users' orders are reported as missing.
	if order.CustomerID != user.ID {
		return nil, domainerrors.ErrOrderNotFound
	}

	payment := &entity.Payment{
		TransactionID: transactionID,
		UserID:        user.ID,
		OrderID:       order.ID,
	}
	if err := srv.paymentRepo.Create(ctx, payment); err != nil {
		return nil, safeError(ctx, srv.log(ctx), err, domainerrors.ErrPaymentCreationFailed, "Failed to create payment")
	}

	return payment, nil
}

func (srv *paymentService) Payments(ctx context.Context, user *entity.User) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, safeError(ctx, srv.log(ctx), err, domainerrors.ErrGetPaymentsFailed, "Failed to list payments")
	}

	return payments, nil
}
