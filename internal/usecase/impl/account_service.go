// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "eats/internal/delivery/context"
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

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	notifications *verificationDispatcher
	logger        *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Notifier     service.Notifier
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		notifications: &verificationDispatcher{notifier: params.Notifier},
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAccount stores the user and its first verification code, then mails the code.
func (srv *accountService) CreateAccount(ctx context.Context, input *usecase.CreateAccountInput) (*entity.User, error) {
	email := util.NormalizeEmail(input.Email)
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role")
	}

	exists, err := srv.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, safeError(ctx, srv.log(ctx), err, domainerrors.ErrAccountCreationFailed, "Failed to check email")
	}
	if exists {
		return nil, domainerrors.ErrUserAlreadyExists
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, safeError(ctx, srv.log(ctx), err, domainerrors.ErrAccountCreationFailed, "Failed to hash password")
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Role:         input.Role,
	}
	verification := &entity.Verification{Code: util.NewVerificationCode()}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewUserRepository().Create(ctx, user); err != nil {
			return err
		}
		verification.UserID = user.ID

		return factory.NewVerificationRepository().Create(ctx, verification)
	})
	if err != nil {
		return nil, safeError(ctx, srv.log(ctx), err, domainerrors.ErrAccountCreationFailed, "Failed to create account")
	}

	srv.log(ctx).Info("Account created", slog.String("user_id", user.ID.String()), slog.String("role", user.Role.String()))
	srv.notifications.dispatch(ctx, srv.log(ctx), user.Email, verification.Code)

	user.PasswordHash = ""

	return user, nil
}

// Login checks the password and signs a token. Unverified accounts may log in.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindCredentialsByEmail(ctx, util.NormalizeEmail(input.Email))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, safeError(ctx, srv.log(ctx), err, domainerrors.ErrLoginFailed, "Failed to load credentials")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrWrongPassword
	}

	token, err := srv.tokenService.Sign(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to sign token", slog.Any("error", err))

		return nil, domainerrors.ErrLoginFailed
	}
	user.PasswordHash = ""

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

func (srv *accountService) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, safeError(ctx, srv.log(ctx), err, domainerrors.ErrInternalError, "Failed to load user")
	}

	return user, nil
}

// EditProfile changes email and/or password. A new email drops the verified
// flag and replaces the user's verification code.
func (srv *accountService) EditProfile(ctx context.Context, userID uuid.UUID, input *usecase.EditProfileInput) (*entity.User, error) {
	var newHash string
	if input.Password != nil && *input.Password != "" {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, safeError(ctx, srv.log(ctx), err, domainerrors.ErrProfileUpdateFailed, "Failed to hash password")
		}
		newHash = hash
	}

	var (
		user         *entity.User
		verification *entity.Verification
	)
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.NewUserRepository()

		found, err := userRepo.FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return err
		}
		user = found

		if input.Email != nil && *input.Email != "" {
			user.Email = util.NormalizeEmail(*input.Email)
			user.Verified = false
			if err := userRepo.Update(ctx, user); err != nil {
				return err
			}

			verifications := factory.NewVerificationRepository()
			if err := verifications.DeleteByUserID(ctx, user.ID); err != nil {
				return err
			}
			verification = &entity.Verification{Code: util.NewVerificationCode(), UserID: user.ID}
			if err := verifications.Create(ctx, verification); err != nil {
				return err
			}
		}

		if newHash != "" {
			return userRepo.UpdatePassword(ctx, user.ID, newHash)
		}

		return nil
	})
	if err != nil {
		return nil, safeError(ctx, srv.log(ctx), err, domainerrors.ErrProfileUpdateFailed, "Failed to update profile")
	}

	if verification != nil {
		srv.notifications.dispatch(ctx, srv.log(ctx), user.Email, verification.Code)
	}

	return user, nil
}

// VerifyEmail consumes the code and marks its user verified. A code works once.
func (srv *accountService) VerifyEmail(ctx context.Context, code string) error {
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		verifications := factory.NewVerificationRepository()

		verification, err := verifications.FindByCode(ctx, code)
		if errors.Is(err, repository.ErrVerificationNotFound) {
			return domainerrors.ErrVerificationNotFound
		}
		if err != nil {
			return err
		}

		user := verification.User
		if user == nil {
			if user, err = factory.NewUserRepository().FindByID(ctx, verification.UserID); err != nil {
				return err
			}
		}
		user.Verified = true
		if err := factory.NewUserRepository().Update(ctx, user); err != nil {
			return err
		}

		return verifications.DeleteByID(ctx, verification.ID)
	})
	if err != nil {
		return safeError(ctx, srv.log(ctx), err, domainerrors.ErrVerifyEmailFailed, "Failed to verify email")
	}

	return nil
}
