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

type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Omit("Owner", "Category", "Dishes").Create(restaurantM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRestaurantCreationFailed.WrapMessage("owner or category does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	restaurant.ID = restaurantM.ID
	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

func (repo *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Dishes", func(db *gorm.DB) *gorm.DB { return db.Order("dishes.created_at, dishes.id") }).
		Where("id = ?", id).
		First(&restaurantM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by id")
	}

	return toRestaurantDomain(&restaurantM), nil
}

func (repo *restaurantRepository) List(ctx context.Context, filter repository.RestaurantFilter) ([]*entity.Restaurant, int64, error) {
	scoped := func() *gorm.DB {
		query := repo.db.WithContext(ctx).Model(&model.RestaurantModel{})
		if filter.CategorySlug != "" {
			query = query.
				Joins("JOIN categories ON categories.id = restaurants.category_id").
				Where("categories.slug = ?", filter.CategorySlug)
		}

		return query
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count restaurants")
	}

	var restaurantMs []model.RestaurantModel
	query := scoped().
		Select("restaurants.*").
		Preload("Category").
		Order("restaurants.created_at DESC, restaurants.id").
		Offset(filter.Offset)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if err := query.Find(&restaurantMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantMs))
	for idx := range restaurantMs {
		restaurants = append(restaurants, toRestaurantDomain(&restaurantMs[idx]))
	}

	return restaurants, total, nil
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).Where("slug = ?", slug).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by slug")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := &model.CategoryModel{
		Base:       model.Base{ID: category.ID},
		Name:       category.Name,
		Slug:       category.Slug,
		CoverImage: category.CoverImage,
	}

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("category already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID

	return nil
}

// categoryCount is one row of the per-category restaurant count query.
type categoryCount struct {
	CategoryID uuid.UUID
	Count      int64
}

func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryMs []model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	var counts []categoryCount
	err := repo.db.WithContext(ctx).Model(&model.RestaurantModel{}).
		Select("category_id, count(*) AS count").
		Where("category_id IS NOT NULL").
		Group("category_id").
		Scan(&counts).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count restaurants per category")
	}

	countByID := make(map[uuid.UUID]int64, len(counts))
	for _, row := range counts {
		countByID[row.CategoryID] = row.Count
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for idx := range categoryMs {
		category := toCategoryDomain(&categoryMs[idx])
		category.RestaurantCount = countByID[category.ID]
		categories = append(categories, category)
	}

	return categories, nil
}

type dishRepository struct {
	db *gorm.DB
}

// NewDishRepository is the constructor for dishRepository.
func NewDishRepository(db *gorm.DB) repository.DishRepository {
	return &dishRepository{db: db}
}

func (repo *dishRepository) Create(ctx context.Context, dish *entity.Dish) error {
	dishM := fromDishDomain(dish)

	if err := repo.db.WithContext(ctx).Omit("Restaurant").Create(dishM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dish")
	}

	dish.ID = dishM.ID
	dish.CreatedAt = dishM.CreatedAt
	dish.UpdatedAt = dishM.UpdatedAt

	return nil
}

func (repo *dishRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error) {
	var dishM model.DishModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&dishM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDishNotFound
		}

		return nil, errors.Wrap(err, "failed to find dish by id")
	}

	return toDishDomain(&dishM), nil
}
