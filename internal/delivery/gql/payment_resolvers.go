package gql

import (
	domainerrors "eats/internal/domain/errors"
	"eats/internal/usecase"

	"github.com/graphql-go/graphql"
)

func (r *Resolver) createPayment(p graphql.ResolveParams) (any, error) {
	var input usecase.CreatePaymentInput
	if err := r.decode(p, &input); err != nil {
		return r.failed(p.Context, err, domainerrors.ErrPaymentCreationFailed), nil
	}

	payment, err := r.payments.CreatePayment(p.Context, authUser(p), &input)
	if err != nil {
		return r.failed(p.Context, err, domainerrors.ErrPaymentCreationFailed), nil
	}

	return succeeded(map[string]any{"payment": presentPayment(payment)}), nil
}

func (r *Resolver) listPayments(p graphql.ResolveParams) (any, error) {
	payments, err := r.payments.Payments(p.Context, authUser(p))
	if err != nil {
		return r.failed(p.Context, err, domainerrors.ErrGetPaymentsFailed), nil
	}

	return succeeded(map[string]any{"payments": presentPayments(payments)}), nil
}
