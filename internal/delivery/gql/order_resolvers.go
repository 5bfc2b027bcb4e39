package gql

import (
	domainerrors "eats/internal/domain/errors"
	"eats/internal/usecase"

	"github.com/graphql-go/graphql"
)

func (r *Resolver) createOrder(p graphql.ResolveParams) (any, error) {
	var input usecase.CreateOrderInput
	if err := r.decode(p, &input); err != nil {
		return r.failed(p.Context, err, domainerrors.ErrOrderCreationFailed), nil
	}

	order, err := r.orders.CreateOrder(p.Context, authUser(p), &input)
	if err != nil {
		return r.failed(p.Context, err, domainerrors.ErrOrderCreationFailed), nil
	}

	return succeeded(map[string]any{
		"orderId": order.ID.String(),
		"total":   presentMoney(order.Total),
	}), nil
}

func (r *Resolver) getOrders(p graphql.ResolveParams) (any, error) {
	var input usecase.GetOrdersInput
	if err := r.decode(p, &input); err != nil {
		return r.failed(p.Context, err, domainerrors.ErrGetOrdersFailed), nil
	}

	orders, err := r.orders.GetOrders(p.Context, authUser(p), &input)
	if err != nil {
		return r.failed(p.Context, err, domainerrors.ErrGetOrdersFailed), nil
	}

	return succeeded(map[string]any{"orders": presentOrders(orders)}), nil
}

func (r *Resolver) getOrder(p graphql.ResolveParams) (any, error) {
	id, err := idArg(p, "orderId")
	if err != nil {
		return r.failed(p.Context, err, domainerrors.ErrOrderNotFound), nil
	}

	order, err := r.orders.GetOrder(p.Context, authUser(p), id)
	if err != nil {
		return r.failed(p.Context, err, domainerrors.ErrGetOrderFailed), nil
	}

	return succeeded(map[string]any{"order": presentOrder(order)}), nil
}
