package middleware

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "eats/internal/delivery/context"
	"eats/internal/domain/constants"
	"eats/internal/domain/service"
	"eats/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddleware resolves the x-jwt token to a user and stores it in the request context.
// Requests without a valid token continue anonymously; resolvers decide what they require.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	accountSvc usecase.AccountUsecase
	logger     *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	AccountSvc   usecase.AccountUsecase
	Logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:   params.TokenService,
		accountSvc: params.AccountSvc,
		logger:     params.Logger,
	}
}

// Handle reads the x-jwt header.
func (m *AuthMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(constants.HeaderJWT)
		if token != "" {
			ctx := m.Authenticate(c.Request().Context(), token)
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// Authenticate returns ctx with the token's user attached. ctx is returned
// unchanged when the token is invalid or its user no longer exists.
func (m *AuthMiddleware) Authenticate(ctx context.Context, token string) context.Context {
	token = strings.TrimSpace(token)
	if token == "" {
		return ctx
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

	claims, err := m.tokenSvc.Verify(token)
	if err != nil {
		logger.Debug("Ignoring invalid identity token", slog.Any("error", err))

		return ctx
	}

	user, err := m.accountSvc.FindByID(ctx, claims.UserID)
	if err != nil {
		logger.Debug("Identity token user not found",
			slog.String("user_id", claims.UserID.String()),
			slog.Any("error", err),
		)

		return ctx
	}

	return deliverycontext.WithUser(ctx, user)
}
