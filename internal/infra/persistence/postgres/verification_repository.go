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

type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository is the constructor for verificationRepository.
func NewVerificationRepository(db *gorm.DB) repository.VerificationRepository {
	return &verificationRepository{db: db}
}

func (repo *verificationRepository) Create(ctx context.Context, verification *entity.Verification) error {
	verificationM := &model.VerificationModel{
		Base:   model.Base{ID: verification.ID},
		Code:   verification.Code,
		UserID: verification.UserID,
	}

	if err := repo.db.WithContext(ctx).Create(verificationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("verification already exists for user")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create verification")
	}

	verification.ID = verificationM.ID
	verification.CreatedAt = verificationM.CreatedAt

	return nil
}

func (repo *verificationRepository) FindByCode(ctx context.Context, code string) (*entity.Verification, error) {
	var verificationM model.VerificationModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Where("code = ?", code).
		First(&verificationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification by code")
	}

	verification := toVerificationDomain(&verificationM)
	if verification.User != nil {
		verification.User.PasswordHash = ""
	}

	return verification, nil
}

func (repo *verificationRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VerificationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete verification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVerificationNotFound
	}

	return nil
}

func (repo *verificationRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.VerificationModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user verifications")
	}

	return nil
}
