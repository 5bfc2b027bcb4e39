package impl

import (
	"context"
	"log/slog"

	deliverycontext "eats/internal/delivery/context"
	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder prices every item from the current menu and stores the order with its items.
func (srv *orderService) CreateOrder(ctx context.Context, customer *entity.User, input *usecase.CreateOrderInput) (*entity.Order, error) {
	order := &entity.Order{
		CustomerID:   customer.ID,
		RestaurantID: input.RestaurantID,
		Status:       entity.OrderStatusPending,
		Total:        decimal.Zero,
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		restaurant, err := factory.NewRestaurantRepository().FindByID(ctx, input.RestaurantID)
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return domainerrors.ErrRestaurantNotFound
		}
		if err != nil {
			return err
		}
		order.Restaurant = restaurant

		dishes := factory.NewDishRepository()
		order.Items = make([]*entity.OrderItem, 0, len(input.Items))
		for _, item := range input.Items {
			dish, err := dishes.FindByID(ctx, item.DishID)
			if errors.Is(err, repository.ErrDishNotFound) {
				return domainerrors.ErrDishNotFound
			}
			if err != nil {
				return err
			}
			if dish.RestaurantID != restaurant.ID {
				return domainerrors.ErrDishNotFound.WrapMessage("dish belongs to another restaurant")
			}

			order.Total = order.Total.Add(dish.ItemPrice(item.Options))
			order.Items = append(order.Items, &entity.OrderItem{
				DishID:  dish.ID,
				Dish:    dish,
				Options: item.Options,
			})
		}
		// The caller sees the same total the column stores
		order.Total = entity.RoundMoney(order.Total)

		return factory.NewOrderRepository().Create(ctx, order)
	})
	if err != nil {
		return nil, safeError(ctx, srv.log(ctx), err, domainerrors.ErrOrderCreationFailed, "Failed to create order")
	}

	srv.log(ctx).Info("Order created",
		slog.String("order_id", order.ID.String()),
		slog.String("total", order.Total.String()),
		slog.Int("items", len(order.Items)),
	)

	return order, nil
}

// GetOrders lists orders by the caller's role: customers see their orders,
// drivers the orders they deliver and owners the orders of their restaurants.
func (srv *orderService) GetOrders(ctx context.Context, user *entity.User, input *usecase.GetOrdersInput) ([]*entity.Order, error) {
	filter := repository.OrderFilter{}
	if input != nil && input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status")
		}
		filter.Status = input.Status
	}

	switch user.Role {
	case entity.RoleClient:
		filter.CustomerID = &user.ID
	case entity.RoleDelivery:
		filter.DriverID = &user.ID
	case entity.RoleOwner:
		filter.OwnerID = &user.ID
	default:
		return nil, domainerrors.ErrForbidden
	}

	orders, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, safeError(ctx, srv.log(ctx), err, domainerrors.ErrGetOrdersFailed, "Failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) GetOrder(ctx context.Context, user *entity.User, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, safeError(ctx, srv.log(ctx), err, domainerrors.ErrGetOrderFailed, "Failed to load order")
	}

	if !order.CanBeSeenBy(user.ID) {
		return nil, domainerrors.ErrOrderNotVisible
	}

	return order, nil
}
