// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"identity/internal/delivery/api/middleware"
	"identity/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.healthHandler.Info)
	e.GET("/health", r.healthHandler.HealthCheck)

	users := e.Group("/api/users")
	users.POST("/register", r.sessionHandler.Register)
	users.POST("/login", r.sessionHandler.Login)
	users.POST("/refresh", r.sessionHandler.Refresh)

	// Protected routes
	users.POST("/logout", r.sessionHandler.Logout, r.authMiddleware.Authenticate)
	users.GET("/profile", r.sessionHandler.Profile, r.authMiddleware.Authenticate)
}
