// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"homestay/internal/delivery/http/middleware"
	"homestay/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	AmenityHandler *handler.AmenityHandler
	PlaceHandler   *handler.PlaceHandler
	ReviewHandler  *handler.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	amenityHandler *handler.AmenityHandler
	placeHandler   *handler.PlaceHandler
	reviewHandler  *handler.ReviewHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		amenityHandler: params.AmenityHandler,
		placeHandler:   params.PlaceHandler,
		reviewHandler:  params.ReviewHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads are public; every mutation goes through JWT authentication, with
// fine-grained ownership checks enforced in the service layer.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")
	authenticated := r.authMiddleware.Authenticate

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// User routes
	userGroup := api.Group("/users")
	{
		userGroup.GET("", r.userHandler.List)
		userGroup.GET("/:id", r.userHandler.Get)
		userGroup.GET("/:id/places", r.userHandler.ListPlaces)
		userGroup.GET("/:id/reviews", r.userHandler.ListReviews)
		userGroup.POST("", r.userHandler.Create, authenticated)
		userGroup.PUT("/:id", r.userHandler.Update, authenticated)
		userGroup.DELETE("/:id", r.userHandler.Delete, authenticated)
	}

	// Amenity routes
	amenityGroup := api.Group("/amenities")
	{
		amenityGroup.GET("", r.amenityHandler.List)
		amenityGroup.GET("/:id", r.amenityHandler.Get)
		amenityGroup.POST("", r.amenityHandler.Create, authenticated)
		amenityGroup.PUT("/:id", r.amenityHandler.Update, authenticated)
		amenityGroup.DELETE("/:id", r.amenityHandler.Delete, authenticated)
	}

	// Place routes
	placeGroup := api.Group("/places")
	{
		placeGroup.GET("", r.placeHandler.List)
		placeGroup.GET("/nearby", r.placeHandler.SearchNearby)
		placeGroup.GET("/:id", r.placeHandler.Get)
		placeGroup.GET("/:id/qrcode", r.placeHandler.QRCode)
		placeGroup.GET("/:id/reviews", r.reviewHandler.ListByPlace)
		placeGroup.POST("", r.placeHandler.Create, authenticated)
		placeGroup.PUT("/:id", r.placeHandler.Update, authenticated)
		placeGroup.DELETE("/:id", r.placeHandler.Delete, authenticated)
		placeGroup.POST("/:id/amenities/:amenity_id", r.placeHandler.AttachAmenity, authenticated)
		placeGroup.DELETE("/:id/amenities/:amenity_id", r.placeHandler.DetachAmenity, authenticated)
		placeGroup.POST("/:id/reviews", r.reviewHandler.CreateForPlace, authenticated)
	}

	// Review routes
	reviewGroup := api.Group("/reviews")
	{
		reviewGroup.GET("", r.reviewHandler.List)
		reviewGroup.GET("/:id", r.reviewHandler.Get)
		reviewGroup.POST("", r.reviewHandler.Create, authenticated)
		reviewGroup.PUT("/:id", r.reviewHandler.Update, authenticated)
		reviewGroup.DELETE("/:id", r.reviewHandler.Delete, authenticated)
	}
}
