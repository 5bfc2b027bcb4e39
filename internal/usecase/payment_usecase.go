package usecase

import (
	"context"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePaymentInput records a payment made outside the platform.
type CreatePaymentInput struct {
	OrderID       uuid.UUID `json:"orderId" validate:"required"`
	TransactionID string    `json:"transactionId" validate:"required"`
}

// PaymentUsecase records and lists passive payment records.
type PaymentUsecase interface {
	CreatePayment(ctx context.Context, user *entity.User, input *CreatePaymentInput) (*entity.Payment, error)
	Payments(ctx context.Context, user *entity.User) ([]*entity.Payment, error)
}
