package postgres

import (
	"context"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order row and its items in one statement batch.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("Customer", "Driver", "Restaurant").Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("order references missing rows")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for idx, item := range order.Items {
		item.ID = orderM.Items[idx].ID
	}

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.withDetails(repo.db.WithContext(ctx)).
		Where("orders.id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// List returns orders visible to one party, newest first.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	query := repo.withDetails(repo.db.WithContext(ctx)).Model(&model.OrderModel{}).Select("orders.*")

	if filter.CustomerID != nil {
		query = query.Where("orders.customer_id = ?", *filter.CustomerID)
	}
	if filter.DriverID != nil {
		query = query.Where("orders.driver_id = ?", *filter.DriverID)
	}
	if filter.OwnerID != nil {
		query = query.
			Joins("JOIN restaurants ON restaurants.id = orders.restaurant_id").
			Where("restaurants.owner_id = ?", *filter.OwnerID)
	}
	if filter.Status != nil {
		query = query.Where("orders.status = ?", string(*filter.Status))
	}

	var orderMs []model.OrderModel
	if err := query.Order("orders.created_at DESC, orders.id").Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for idx := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[idx]))
	}

	return orders, nil
}

func (repo *orderRepository) withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Restaurant").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.position") }).
		Preload("Items.Dish")
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := &model.PaymentModel{
		Base:          model.Base{ID: payment.ID},
		TransactionID: payment.TransactionID,
		UserID:        payment.UserID,
		OrderID:       payment.OrderID,
	}

	if err := repo.db.WithContext(ctx).Omit("User", "Order").Create(paymentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

func (repo *paymentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error) {
	var paymentMs []model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id").
		Find(&paymentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentMs))
	for idx := range paymentMs {
		payments = append(payments, toPaymentDomain(&paymentMs[idx]))
	}

	return payments, nil
}
