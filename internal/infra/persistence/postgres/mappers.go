package postgres

import (
	"eats/internal/domain/entity"
	"eats/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.Password,
		Role:         entity.Role(data.Role),
		Verified:     data.Verified,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		Base:     model.Base{ID: data.ID},
		Email:    data.Email,
		Password: data.PasswordHash,
		Role:     data.Role.String(),
		Verified: data.Verified,
	}
}

func toVerificationDomain(data *model.VerificationModel) *entity.Verification {
	if data == nil {
		return nil
	}

	return &entity.Verification{
		ID:        data.ID,
		Code:      data.Code,
		UserID:    data.UserID,
		User:      toUserDomain(data.User),
		CreatedAt: data.CreatedAt,
	}
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:         data.ID,
		Name:       data.Name,
		Slug:       data.Slug,
		CoverImage: data.CoverImage,
	}
}

func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	dishes := make([]*entity.Dish, 0, len(data.Dishes))
	for idx := range data.Dishes {
		dishes = append(dishes, toDishDomain(&data.Dishes[idx]))
	}

	return &entity.Restaurant{
		ID:         data.ID,
		Name:       data.Name,
		Address:    data.Address,
		CoverImage: data.CoverImage,
		OwnerID:    data.OwnerID,
		CategoryID: data.CategoryID,
		Category:   toCategoryDomain(data.Category),
		Dishes:     dishes,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	return &model.RestaurantModel{
		Base:       model.Base{ID: data.ID},
		Name:       data.Name,
		Address:    data.Address,
		CoverImage: data.CoverImage,
		OwnerID:    data.OwnerID,
		CategoryID: data.CategoryID,
	}
}

func toDishDomain(data *model.DishModel) *entity.Dish {
	if data == nil {
		return nil
	}

	options := make([]entity.DishOption, 0, len(data.Options))
	for _, opt := range data.Options {
		choices := make([]entity.DishChoice, 0, len(opt.Choices))
		for _, choice := range opt.Choices {
			choices = append(choices, entity.DishChoice{Name: choice.Name, Extra: choice.Extra})
		}
		options = append(options, entity.DishOption{Name: opt.Name, Extra: opt.Extra, Choices: choices})
	}

	return &entity.Dish{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		Price:        data.Price,
		RestaurantID: data.RestaurantID,
		Options:      options,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromDishDomain(data *entity.Dish) *model.DishModel {
	options := make(datatypes.JSONSlice[model.DishOptionJSON], 0, len(data.Options))
	for _, opt := range data.Options {
		choices := make([]model.DishChoiceJSON, 0, len(opt.Choices))
		for _, choice := range opt.Choices {
			choices = append(choices, model.DishChoiceJSON{Name: choice.Name, Extra: choice.Extra})
		}
		options = append(options, model.DishOptionJSON{Name: opt.Name, Extra: opt.Extra, Choices: choices})
	}

	return &model.DishModel{
		Base:         model.Base{ID: data.ID},
		Name:         data.Name,
		Description:  data.Description,
		Price:        data.Price,
		RestaurantID: data.RestaurantID,
		Options:      options,
	}
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for idx := range data.Items {
		item := &data.Items[idx]
		selected := make([]entity.OrderItemOption, 0, len(item.Options))
		for _, opt := range item.Options {
			selected = append(selected, entity.OrderItemOption{Name: opt.Name, Choice: opt.Choice})
		}
		items = append(items, &entity.OrderItem{
			ID:      item.ID,
			DishID:  item.DishID,
			Dish:    toDishDomain(item.Dish),
			Options: selected,
		})
	}

	return &entity.Order{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		DriverID:     data.DriverID,
		RestaurantID: data.RestaurantID,
		Restaurant:   toRestaurantDomain(data.Restaurant),
		Total:        data.Total,
		Status:       entity.OrderStatus(data.Status),
		Items:        items,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	items := make([]model.OrderItemModel, 0, len(data.Items))
	for position, item := range data.Items {
		selected := make(datatypes.JSONSlice[model.OrderItemOptionJSON], 0, len(item.Options))
		for _, opt := range item.Options {
			selected = append(selected, model.OrderItemOptionJSON{Name: opt.Name, Choice: opt.Choice})
		}
		items = append(items, model.OrderItemModel{
			Base:     model.Base{ID: item.ID},
			Position: position,
			DishID:   item.DishID,
			Options:  selected,
		})
	}

	return &model.OrderModel{
		Base:         model.Base{ID: data.ID},
		CustomerID:   data.CustomerID,
		DriverID:     data.DriverID,
		RestaurantID: data.RestaurantID,
		Total:        data.Total,
		Status:       string(data.Status),
		Items:        items,
	}
}

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	return &entity.Payment{
		ID:            data.ID,
		TransactionID: data.TransactionID,
		UserID:        data.UserID,
		OrderID:       data.OrderID,
		CreatedAt:     data.CreatedAt,
	}
}
