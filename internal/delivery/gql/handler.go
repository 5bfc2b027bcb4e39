package gql

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "eats/internal/delivery/context"
	"eats/internal/domain/constants"
	domainerrors "eats/internal/domain/errors"

	"github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Authenticator attaches the user behind a token to ctx.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) context.Context
}

// Request is a GraphQL-over-HTTP request body.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
	Extensions    struct {
		// ConnectionParams carries the connection-init payload of transports that forward it.
		ConnectionParams map[string]any `json:"connectionParams,omitempty"`
	} `json:"extensions"`
}

// Handler executes GraphQL requests.
type Handler struct {
	schema graphql.Schema
	auth   Authenticator
	logger *slog.Logger
}

// HandlerParams holds dependencies for Handler.
type HandlerParams struct {
	fx.In

	Resolver *Resolver
	Auth     Authenticator
	Logger   *slog.Logger
}

// NewHandler builds the schema and returns the HTTP handler.
func NewHandler(params HandlerParams) (*Handler, error) {
	schema, err := NewSchema(params.Resolver)
	if err != nil {
		return nil, err
	}

	return &Handler{
		schema: schema,
		auth:   params.Auth,
		logger: params.Logger,
	}, nil
}

// Serve handles GET /graphql?query= and POST /graphql.
func (h *Handler) Serve(c echo.Context) error {
	req, err := h.readRequest(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if deliverycontext.GetUser(ctx) == nil {
		if token, ok := req.Extensions.ConnectionParams[constants.HeaderJWT].(string); ok {
			ctx = h.auth.Authenticate(ctx, token)
		}
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})

	if result.HasErrors() {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("GraphQL request returned errors",
			slog.String("operation", req.OperationName),
			slog.Any("errors", result.Errors),
		)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) readRequest(c echo.Context) (*Request, error) {
	req := new(Request)

	if c.Request().Method == http.MethodGet {
		req.Query = c.QueryParam("query")
		req.OperationName = c.QueryParam("operationName")
		if raw := c.QueryParam("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				return nil, domainerrors.ErrValidationFailed.WithDetails("variables must be a JSON object")
			}
		}
	} else if err := c.Bind(req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed GraphQL request body")
	}

	if strings.TrimSpace(req.Query) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("query is required")
	}

	return req, nil
}
