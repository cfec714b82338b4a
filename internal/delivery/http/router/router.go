// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
	UserHandler     *handler.UserHandler
	CategoryHandler *handler.CategoryHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
	userHandler     *handler.UserHandler
	categoryHandler *handler.CategoryHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		productHandler:  params.ProductHandler,
		orderHandler:    params.OrderHandler,
		userHandler:     params.UserHandler,
		categoryHandler: params.CategoryHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. The paths
// keep the dashboard's historical URL grammar.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	e.POST("/admin-login", r.authHandler.Login)
	e.POST("/admin-register", r.authHandler.Register)
	e.POST("/logout", r.authHandler.Logout)

	// Dashboard routes that require authentication
	views := e.Group("")
	views.Use(r.authMiddleware.Authenticate)
	{
		views.GET("/dashboard", r.orderHandler.Dashboard)

		views.GET("/get-products", r.productHandler.List)
		views.POST("/add-product", r.productHandler.Add)
		views.PUT("/update-product/:id", r.productHandler.Update)
		views.GET("/product-details/:id", r.productHandler.Detail)
		views.PATCH("/toggle-publish/:id", r.productHandler.TogglePublish)
		views.DELETE("/delete-product/:id", r.productHandler.Delete)

		views.GET("/orders", r.orderHandler.List)
		views.GET("/order-status-options", r.orderHandler.StatusOptions)
		views.PUT("/update-order-status/:id", r.orderHandler.ChangeStatus)
		views.DELETE("/delete-order/:id", r.orderHandler.Delete)
		views.GET("/download-invoice/:id", r.orderHandler.DownloadInvoice)
		views.POST("/export-template/:id", r.orderHandler.ExportTemplate)

		views.GET("/customers", r.userHandler.Customers)
		views.GET("/staffs", r.userHandler.Staff)
		views.POST("/add-staff", r.userHandler.AddStaff)
		views.PUT("/update-staff/:id", r.userHandler.UpdateStaff)
		views.GET("/user-details/:id", r.userHandler.Detail)
		views.PATCH("/toggle-user-status/:id", r.userHandler.ToggleStatus)
		views.DELETE("/delete-user/:id", r.userHandler.Delete)

		views.GET("/categories", r.categoryHandler.List)
		views.POST("/add-category", r.categoryHandler.Add)
		views.PUT("/update-category/:id", r.categoryHandler.Update)
		views.DELETE("/delete-category/:id", r.categoryHandler.Delete)
	}
}
