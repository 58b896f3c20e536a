// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	BlogHandler    *handler.BlogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	blogHandler    *handler.BlogHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		blogHandler:    params.BlogHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Account routes
	userGroup := api.Group("/user")
	{
		userGroup.POST("/signup", r.userHandler.Signup)
		userGroup.POST("/signin", r.userHandler.Signin)
	}

	// Blog routes; reads are public, writes require a bearer token.
	blogGroup := api.Group("/blog")
	{
		blogGroup.GET("/bulk", r.blogHandler.ListBlogs)
		blogGroup.GET("/:id", r.blogHandler.GetBlog)
		blogGroup.POST("", r.blogHandler.CreateBlog, r.authMiddleware.Authenticate)
		blogGroup.PUT("/:id", r.blogHandler.UpdateBlog, r.authMiddleware.Authenticate)
	}
}
