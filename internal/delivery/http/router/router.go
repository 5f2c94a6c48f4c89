// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	VendorHandler   *handler.VendorHandler
	CustomerHandler *handler.CustomerHandler
	SearchHandler   *handler.SearchHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	vendorHandler   *handler.VendorHandler
	customerHandler *handler.CustomerHandler
	searchHandler   *handler.SearchHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		vendorHandler:   params.VendorHandler,
		customerHandler: params.CustomerHandler,
		searchHandler:   params.SearchHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// User account routes
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.CreateUser)
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.PATCH("/:id", r.userHandler.UpdateUser)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser)
		userGroup.GET("/:userId/vendor-profile", r.vendorHandler.GetProfileByUser)
		userGroup.GET("/:userId/customer-profile", r.customerHandler.GetProfileByUser)
	}

	// Vendor profile routes
	vendorGroup := e.Group("/vendors")
	{
		vendorGroup.POST("", r.vendorHandler.CreateProfile)
		vendorGroup.GET("", r.vendorHandler.ListProfiles)
		vendorGroup.GET("/:id", r.vendorHandler.GetProfile)
		vendorGroup.PATCH("/:id", r.vendorHandler.UpdateProfile)
		vendorGroup.DELETE("/:id", r.vendorHandler.DeleteProfile)
		vendorGroup.POST("/:id/services", r.vendorHandler.AddService)
		vendorGroup.POST("/:id/operating-hours", r.vendorHandler.AddOperatingHours)
		vendorGroup.POST("/:id/locations", r.vendorHandler.AddBusinessLocation)
		vendorGroup.POST("/:id/social-media", r.vendorHandler.AddSocialMedia)
	}

	// Customer profile routes
	customerGroup := e.Group("/customers")
	{
		customerGroup.POST("", r.customerHandler.CreateProfile)
		customerGroup.GET("", r.customerHandler.ListProfiles)
		customerGroup.GET("/:id", r.customerHandler.GetProfile)
		customerGroup.PATCH("/:id", r.customerHandler.UpdateProfile)
		customerGroup.DELETE("/:id", r.customerHandler.DeleteProfile)
		customerGroup.PUT("/:id/search-preference", r.customerHandler.UpsertSearchPreference)
	}

	// Proximity search routes
	searchGroup := e.Group("/search")
	{
		searchGroup.GET("/vendors", r.searchHandler.FindNearbyVendors)
	}
}
