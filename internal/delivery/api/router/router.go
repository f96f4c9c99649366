// Package router wires handlers and middleware onto the echo instance.
package router

import (
	"grainauth/internal/delivery/api/middleware"
	"grainauth/internal/delivery/api/router/handler"
	"grainauth/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	TarifHandler        *handler.TarifHandler
	SubscriptionHandler *handler.SubscriptionHandler
	PaymentHandler      *handler.PaymentHandler
	ItemHandler         *handler.ItemHandler
	HealthHandler       *handler.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	tarifHandler        *handler.TarifHandler
	subscriptionHandler *handler.SubscriptionHandler
	paymentHandler      *handler.PaymentHandler
	itemHandler         *handler.ItemHandler
	healthHandler       *handler.HealthHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		tarifHandler:        params.TarifHandler,
		subscriptionHandler: params.SubscriptionHandler,
		paymentHandler:      params.PaymentHandler,
		itemHandler:         params.ItemHandler,
		healthHandler:       params.HealthHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.authMiddleware.Authenticate
	requireMe := r.authMiddleware.RequireScope(entity.ScopeMe)
	requireItems := r.authMiddleware.RequireScope(entity.ScopeItems)

	e.GET("/health", r.healthHandler.Check)

	// Public
	e.POST("/users", r.userHandler.Register)
	e.POST("/token", r.userHandler.Login)

	e.POST("/logout", r.userHandler.Logout, auth)

	usersGroup := e.Group("/users", auth)
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/me", r.userHandler.Me, requireMe)
		usersGroup.GET("/me/items", r.itemHandler.ListMyItems, requireItems)
		usersGroup.DELETE("/me/items/:id", r.itemHandler.RemoveMyItem, requireItems)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser, requireMe)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser, requireMe)
	}

	tarifsGroup := e.Group("/tarifs", auth)
	{
		tarifsGroup.POST("", r.tarifHandler.CreateTarif)
		tarifsGroup.GET("", r.tarifHandler.ListTarifs)
		tarifsGroup.GET("/:id", r.tarifHandler.GetTarif)
		tarifsGroup.PUT("/:id", r.tarifHandler.UpdateTarif)
		tarifsGroup.DELETE("/:id", r.tarifHandler.DeleteTarif)
	}

	subscriptionsGroup := e.Group("/subscriptions", auth)
	{
		subscriptionsGroup.POST("", r.subscriptionHandler.Subscribe)
		subscriptionsGroup.GET("", r.subscriptionHandler.ListSubscriptions)
		subscriptionsGroup.GET("/:id", r.subscriptionHandler.GetSubscription)
		subscriptionsGroup.PATCH("/:id", r.subscriptionHandler.UpdateSubscription)
		subscriptionsGroup.POST("/:id/cancel", r.subscriptionHandler.CancelSubscription)
	}

	paymentsGroup := e.Group("/payments", auth)
	{
		paymentsGroup.POST("", r.paymentHandler.RecordPayment)
		paymentsGroup.GET("", r.paymentHandler.ListPayments)
		paymentsGroup.GET("/:id", r.paymentHandler.GetPayment)
	}

	itemsGroup := e.Group("/items", auth)
	{
		itemsGroup.POST("", r.itemHandler.CreateItem, requireItems)
		itemsGroup.GET("/:id", r.itemHandler.GetItem)
		itemsGroup.PUT("/:id", r.itemHandler.UpdateItem, requireItems)
		itemsGroup.POST("/:id/link", r.itemHandler.LinkItem, requireItems)
	}
}
