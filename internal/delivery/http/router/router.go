// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/http/cookie"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	ProductHandler    *handler.ProductHandler
	OrderHandler      *handler.OrderHandler
	SessionMiddleware *middleware.SessionMiddleware
	AuthMiddleware    *middleware.AuthMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	productHandler    *handler.ProductHandler
	orderHandler      *handler.OrderHandler
	sessionMiddleware *middleware.SessionMiddleware
	authMiddleware    *middleware.AuthMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		productHandler:    params.ProductHandler,
		orderHandler:      params.OrderHandler,
		sessionMiddleware: params.SessionMiddleware,
		authMiddleware:    params.AuthMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes installs the session pipeline and every route.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Cookies, then session, then principal: each step reads what the previous one stored.
	e.Use(cookie.Middleware)
	e.Use(r.sessionMiddleware.Handle)
	e.Use(r.authMiddleware.Authenticate)

	jsonLimit := echomiddleware.BodyLimit(r.config.HTTP.MaxRequestBodySize)
	uploadLimit := echomiddleware.BodyLimit(r.config.Storage.MaxUploadSize)
	adminOnly := []echo.MiddlewareFunc{r.authMiddleware.RequireAuth, r.authMiddleware.RequireRole(entity.RoleAdmin)}

	e.GET("/health", handler.HealthCheck)

	// Account routes
	e.POST("/registration", r.userHandler.Register, jsonLimit)
	e.POST("/login", r.userHandler.Login, jsonLimit)
	e.POST("/logout", r.userHandler.Logout)
	e.GET("/user", r.userHandler.Me, r.authMiddleware.RequireAuth)

	// Catalog routes; writes are admin only
	e.GET("/products", r.productHandler.ListProducts)
	e.GET("/products/:id", r.productHandler.GetProduct)
	e.POST("/products", r.productHandler.CreateProduct, append(adminOnly, uploadLimit)...)
	e.GET("/images/:id", r.productHandler.GetImage)
	e.POST("/images", r.productHandler.UploadImage, append(adminOnly, uploadLimit)...)

	// The whole group is gated, whatever the verb
	orderGroup := e.Group("/order")
	orderGroup.Use(r.authMiddleware.RequireAuth, jsonLimit)
	{
		orderGroup.GET("", r.orderHandler.GetCart)
		orderGroup.POST("", r.orderHandler.AddToCart)
		orderGroup.PUT("", r.orderHandler.UpdateCart)
		orderGroup.DELETE("", r.orderHandler.ClearCart)
		orderGroup.PATCH("/:id", r.orderHandler.PatchOrder)
	}
}
