package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "eats/internal/delivery/context"
	"eats/internal/domain/constants"
	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/domain/service"
	"eats/internal/usecase"
	"eats/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type restaurantService struct {
	txManager      repository.TransactionManager
	restaurantRepo repository.RestaurantRepository
	categoryRepo   repository.CategoryRepository
	dishRepo       repository.DishRepository
	qrCodeService  service.QRCodeService
	logger         *slog.Logger
}

// RestaurantServiceParams holds dependencies for RestaurantService, injected by Fx.
type RestaurantServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RestaurantRepo repository.RestaurantRepository
	CategoryRepo   repository.CategoryRepository
	DishRepo       repository.DishRepository
	QRCodeService  service.QRCodeService
	Logger         *slog.Logger
}

func NewRestaurantService(params RestaurantServiceParams) usecase.RestaurantUsecase {
	return &restaurantService{
		txManager:      params.TxManager,
		restaurantRepo: params.RestaurantRepo,
		categoryRepo:   params.CategoryRepo,
		dishRepo:       params.DishRepo,
		qrCodeService:  params.QRCodeService,
		logger:         params.Logger,
	}
}

func (srv *restaurantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRestaurant files the restaurant under the named category, creating the category if needed.
func (srv *restaurantService) CreateRestaurant(ctx context.Context, owner *entity.User, input *usecase.CreateRestaurantInput) (*entity.Restaurant, error) {
	categoryName := strings.TrimSpace(input.CategoryName)
	slug := util.Slugify(categoryName)
	if slug == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category name is required")
	}

	restaurant := &entity.Restaurant{
		Name:       strings.TrimSpace(input.Name),
		Address:    strings.TrimSpace(input.Address),
		CoverImage: input.CoverImage,
		OwnerID:    owner.ID,
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		categories := factory.NewCategoryRepository()

		category, err := categories.FindBySlug(ctx, slug)
		if errors.Is(err, repository.ErrCategoryNotFound) {
			category = &entity.Category{Name: categoryName, Slug: slug}
			err = categories.Create(ctx, category)
		}
		if err != nil {
			return err
		}

		restaurant.CategoryID = &category.ID
		restaurant.Category = category

		return factory.NewRestaurantRepository().Create(ctx, restaurant)
	})
	if err != nil {
		return nil, safeError(ctx, srv.log(ctx), err, domainerrors.ErrRestaurantCreationFailed, "Failed to create restaurant")
	}

	srv.log(ctx).Info("Restaurant created",
		slog.String("restaurant_id", restaurant.ID.String()),
		slog.String("category", slug),
	)

	return restaurant, nil
}

// Restaurants returns one page of restaurants. Pages start at 1.
func (srv *restaurantService) Restaurants(ctx context.Context, input *usecase.RestaurantsInput) (*usecase.RestaurantsOutput, error) {
	page := min(max(input.Page, 1), constants.MaxRestaurantPage)

	restaurants, total, err := srv.restaurantRepo.List(ctx, repository.RestaurantFilter{
		CategorySlug: input.CategorySlug,
		Offset:       (page - 1) * constants.RestaurantPageSize,
		Limit:        constants.RestaurantPageSize,
	})
	if err != nil {
		return nil, safeError(ctx, srv.log(ctx), err, domainerrors.ErrLoadRestaurantsFailed, "Failed to list restaurants")
	}

	return &usecase.RestaurantsOutput{
		Restaurants:  restaurants,
		TotalPages:   totalPages(total, constants.RestaurantPageSize),
		TotalResults: total,
	}, nil
}

func totalPages(total int64, pageSize int) int {
	if total <= 0 {
		return 0
	}

	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

func (srv *restaurantService) Restaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRestaurantNotFound) {
		return nil, domainerrors.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, safeError(ctx, srv.log(ctx), err, domainerrors.ErrLoadRestaurantsFailed, "Failed to load restaurant")
	}

	return restaurant, nil
}

func (srv *restaurantService) Categories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, safeError(ctx, srv.log(ctx), err, domainerrors.ErrLoadCategoriesFailed, "Failed to list categories")
	}

	return categories, nil
}

// CreateDish adds a dish to a restaurant the caller owns.
func (srv *restaurantService) CreateDish(ctx context.Context, owner *entity.User, input *usecase.CreateDishInput) (*entity.Dish, error) {
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	restaurant, err := srv.restaurantRepo.FindByID(ctx, input.RestaurantID)
	if errors.Is(err, repository.ErrRestaurantNotFound) {
		return nil, domainerrors.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, safeError(ctx, srv.log(ctx), err, domainerrors.ErrDishCreationFailed, "Failed to load restaurant")
	}
	if !restaurant.IsOwnedBy(owner.ID) {
		return nil, domainerrors.ErrForbidden
	}

	dish := &entity.Dish{
		Name:         strings.TrimSpace(input.Name),
		Description:  input.Description,
		Price:        entity.RoundMoney(input.Price),
		RestaurantID: restaurant.ID,
		Options:      input.Options,
	}
	if err := srv.dishRepo.Create(ctx, dish); err != nil {
		return nil, safeError(ctx, srv.log(ctx), err, domainerrors.ErrDishCreationFailed, "Failed to create dish")
	}

	return dish, nil
}

func (srv *restaurantService) RestaurantQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.Restaurant(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateRestaurantQR(id)
	if err != nil {
		return nil, safeError(ctx, srv.log(ctx), err, domainerrors.ErrQRCodeFailed, "Failed to generate QR code")
	}

	return png, nil
}
