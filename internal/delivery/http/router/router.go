// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"souq/internal/delivery/http/middleware"
	"souq/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomerHandler *handler.CustomerHandler
	CartHandler     *handler.CartHandler
	AddressHandler  *handler.AddressHandler
	OrderHandler    *handler.OrderHandler
	CatalogHandler  *handler.CatalogHandler
	SettingsHandler *handler.SettingsHandler
	HealthHandler   *handler.HealthHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler *handler.CustomerHandler
	cartHandler     *handler.CartHandler
	addressHandler  *handler.AddressHandler
	orderHandler    *handler.OrderHandler
	catalogHandler  *handler.CatalogHandler
	settingsHandler *handler.SettingsHandler
	healthHandler   *handler.HealthHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler: params.CustomerHandler,
		cartHandler:     params.CartHandler,
		addressHandler:  params.AddressHandler,
		orderHandler:    params.OrderHandler,
		catalogHandler:  params.CatalogHandler,
		settingsHandler: params.SettingsHandler,
		healthHandler:   params.HealthHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.Check)

	api := e.Group("/api")

	// Public routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.customerHandler.Register)
		authGroup.POST("/login", r.customerHandler.Login)
	}
	api.GET("/category-attributes/:categoryId/filters", r.catalogHandler.ResolveFilters)
	api.GET("/settings", r.settingsHandler.GetSettings)

	// Customer routes that require authentication
	customerGroup := api.Group("")
	customerGroup.Use(r.authMiddleware.Authenticate)
	{
		customerGroup.GET("/profile", r.customerHandler.GetProfile)
		customerGroup.PUT("/profile/device-token", r.customerHandler.UpdateDeviceToken)

		cartGroup := customerGroup.Group("/cart")
		{
			cartGroup.GET("", r.cartHandler.GetCart)
			cartGroup.DELETE("", r.cartHandler.ClearCart)
			cartGroup.POST("/items", r.cartHandler.AddItem)
			cartGroup.PUT("/items/:productId", r.cartHandler.UpdateItemQuantity)
			cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
			cartGroup.POST("/coupon", r.cartHandler.ApplyCoupon)
		}

		addressGroup := customerGroup.Group("/addresses")
		{
			addressGroup.GET("", r.addressHandler.ListAddresses)
			addressGroup.POST("", r.addressHandler.CreateAddress)
			addressGroup.PUT("/:id", r.addressHandler.UpdateAddress)
			addressGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
			addressGroup.PUT("/:id/default", r.addressHandler.SetDefault)
		}

		orderGroup := customerGroup.Group("/orders")
		{
			orderGroup.POST("", r.orderHandler.Checkout)
			orderGroup.GET("", r.orderHandler.ListOrders)
			orderGroup.GET("/:id", r.orderHandler.GetOrder)
			orderGroup.POST("/:id/cancel", r.orderHandler.CancelOrder)
			orderGroup.GET("/:id/qrcode", r.orderHandler.TrackingQR)
		}
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.PUT("/orders/:id/status", r.orderHandler.TransitionStatus)
		adminGroup.PUT("/orders/:id/payment-status", r.orderHandler.TransitionPayment)
		adminGroup.PUT("/category-attributes/:categoryId", r.catalogHandler.ReplaceAttributes)
		adminGroup.PUT("/settings", r.settingsHandler.UpdateSettings)
	}
}
