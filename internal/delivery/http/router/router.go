// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"eats/internal/delivery/gql"
	"eats/internal/delivery/http/middleware"
	"eats/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GraphQLHandler *gql.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	graphqlHandler *gql.Handler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		graphqlHandler: params.GraphQLHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", response.HealthCheck)

	// Authentication is optional here; field guards enforce roles.
	graphqlGroup := e.Group("/graphql", r.authMiddleware.Handle)
	{
		graphqlGroup.POST("", r.graphqlHandler.Serve)
		graphqlGroup.GET("", r.graphqlHandler.Serve)
	}
}
